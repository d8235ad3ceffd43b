package nlp

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func trainingCorpus() []Example {
	return []Example{
		{Text: "combien de jours de congés me reste-t-il", Label: "conge_solde"},
		{Text: "quel est mon solde de congés", Label: "conge_solde"},
		{Text: "il me reste combien de congés", Label: "conge_solde"},
		{Text: "je veux poser des congés", Label: "conge_demande"},
		{Text: "comment demander un congé", Label: "conge_demande"},
		{Text: "poser une semaine de vacances", Label: "conge_demande"},
		{Text: "quand est versé le salaire", Label: "paie_date"},
		{Text: "date du prochain virement de paie", Label: "paie_date"},
		{Text: "quel jour tombe la paie", Label: "paie_date"},
	}
}

func TestClassifierMissingArtifacts(t *testing.T) {
	classifier := NewStatisticalClassifier(FileStore{Dir: t.TempDir()}, testLogger())

	if classifier.Loaded() {
		t.Fatal("classifier reported loaded artifacts from an empty directory")
	}

	label, confidence, scored := classifier.Resolve(context.Background(), "combien de congés")
	if label != IntentUnknownModel {
		t.Errorf("label = %q, want %q", label, IntentUnknownModel)
	}
	if confidence != 0 || scored {
		t.Errorf("confidence = %v scored = %v, want fixed zero sentinel", confidence, scored)
	}
}

func TestTrainPredictRoundTrip(t *testing.T) {
	vectorizer, model, err := Train(trainingCorpus(), 5000)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	dir := t.TempDir()
	if err := SaveArtifacts(dir, vectorizer, model); err != nil {
		t.Fatalf("SaveArtifacts: %v", err)
	}
	for _, name := range []string{VectorizerArtifact, ClassifierArtifact} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("artifact %s not written: %v", name, err)
		}
	}

	classifier := NewStatisticalClassifier(FileStore{Dir: dir}, testLogger())
	if !classifier.Loaded() {
		t.Fatal("classifier failed to load freshly written artifacts")
	}

	tests := []struct {
		text string
		want string
	}{
		{"combien de congés me reste-t-il", "conge_solde"},
		{"je souhaite poser des congés", "conge_demande"},
		{"date du virement du salaire", "paie_date"},
	}
	for _, tt := range tests {
		label, confidence, scored := classifier.Resolve(context.Background(), Normalize(tt.text))
		if label != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.text, label, tt.want)
		}
		if confidence != 0 || scored {
			t.Errorf("Resolve(%q) confidence = %v scored = %v, want fixed zero sentinel", tt.text, confidence, scored)
		}
	}
}

func TestTrainEmptyCorpus(t *testing.T) {
	if _, _, err := Train(nil, 100); err != ErrEmptyCorpus {
		t.Errorf("Train(nil) error = %v, want ErrEmptyCorpus", err)
	}
	if _, _, err := Train([]Example{{Text: " ", Label: ""}}, 100); err != ErrEmptyCorpus {
		t.Errorf("Train(blank rows) error = %v, want ErrEmptyCorpus", err)
	}
}

func TestLoadExamplesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.csv")
	csv := "example,intent\n" +
		"combien de congés,conge_solde\n" +
		",conge_solde\n" +
		"sans label,\n" +
		"\"poser, des congés\",conge_demande\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	examples, err := LoadExamplesCSV(path)
	if err != nil {
		t.Fatalf("LoadExamplesCSV: %v", err)
	}
	if len(examples) != 2 {
		t.Fatalf("got %d examples, want 2 (header and incomplete rows dropped)", len(examples))
	}
	if examples[1].Text != "poser, des congés" || examples[1].Label != "conge_demande" {
		t.Errorf("unexpected example: %+v", examples[1])
	}
}

func TestLoadExamplesCSVMissingFile(t *testing.T) {
	if _, err := LoadExamplesCSV(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("expected error for a missing corpus file")
	}
}
