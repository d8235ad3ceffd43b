package nlp

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"lowercases", "BONJOUR", "bonjour"},
		{"trims", "  salut  ", "salut"},
		{"collapses runs", "solde   de    congés", "solde de congés"},
		{"tabs and newlines", "ma\tfiche\nde paie", "ma fiche de paie"},
		{"accents preserved", "Congés Payés", "congés payés"},
		{"already normalized", "demande de congé", "demande de congé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "  Bonjour  LE   Monde ", "déjà normalisé", "A\t\tB\nC",
		"Combien de jours de congés me reste-t-il ?",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
		if strings.Contains(once, "  ") {
			t.Errorf("Normalize(%q) contains doubled whitespace: %q", in, once)
		}
		if once != strings.TrimSpace(once) {
			t.Errorf("Normalize(%q) has leading/trailing whitespace: %q", in, once)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("solde de congés")
	want := []string{"solde", "de", "congés"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize returned %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}
