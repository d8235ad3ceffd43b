package nlp

import (
	"context"
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type staticSource struct {
	intents []Intent
	err     error
}

func (s *staticSource) FetchActive(context.Context) ([]Intent, error) {
	return s.intents, s.err
}

func loadedHandle(t *testing.T, intents []Intent) *Handle {
	t.Helper()
	handle := NewHandle(&staticSource{intents: intents}, testLogger())
	if err := handle.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	return handle
}

func TestLexicalScore(t *testing.T) {
	cfg := DefaultConfig()
	scorer := NewLexicalScorer(NewHandle(&staticSource{}, testLogger()), unavailableAnnotator{}, cfg)

	tests := []struct {
		name   string
		text   string
		intent Intent
		want   float64
	}{
		{
			name:   "no keywords is unselectable",
			text:   "bonjour",
			intent: Intent{Name: "vide"},
			want:   0,
		},
		{
			name:   "exact substring match",
			text:   "quel est mon solde",
			intent: Intent{Name: "solde", Keywords: []string{"solde"}},
			want:   1,
		},
		{
			name:   "partial token match",
			text:   "mes congés annuels",
			intent: Intent{Name: "congé", Keywords: []string{"congésannuels"}},
			want:   0.5,
		},
		{
			name:   "no match",
			text:   "bonjour",
			intent: Intent{Name: "paie", Keywords: []string{"virement"}},
			want:   0,
		},
		{
			name:   "one exact one miss",
			text:   "solde svp",
			intent: Intent{Name: "solde", Keywords: []string{"solde", "virement"}},
			want:   0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(Normalize(tt.text), tt.intent)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveThreshold(t *testing.T) {
	handle := loadedHandle(t, []Intent{
		{Name: "paie_date", Keywords: []string{"virement", "salaire", "paie", "date"}, Priority: 1, Active: true},
	})
	scorer := NewLexicalScorer(handle, unavailableAnnotator{}, DefaultConfig())

	label, confidence, scored := scorer.Resolve(context.Background(), Normalize("zzz yyy xxx"))
	if label != IntentUnknown {
		t.Errorf("label = %q, want %q", label, IntentUnknown)
	}
	if confidence != 0 {
		t.Errorf("confidence = %v, want 0 (hard floor discards the score)", confidence)
	}
	if !scored {
		t.Error("lexical strategy must report scored=true")
	}
}

func TestResolveTieBreakFirstSeen(t *testing.T) {
	// Identical keywords and priority: the intent listed first in
	// priority-descending catalog order must win.
	handle := loadedHandle(t, []Intent{
		{Name: "premier", Keywords: []string{"solde"}, Priority: 5, Active: true},
		{Name: "second", Keywords: []string{"solde"}, Priority: 5, Active: true},
	})
	scorer := NewLexicalScorer(handle, unavailableAnnotator{}, DefaultConfig())

	for i := 0; i < 10; i++ {
		label, _, _ := scorer.Resolve(context.Background(), "mon solde")
		if label != "premier" {
			t.Fatalf("label = %q, want stable first-seen winner %q", label, "premier")
		}
	}
}

func TestResolvePriorityBias(t *testing.T) {
	cfg := DefaultConfig()
	scorer := NewLexicalScorer(NewHandle(&staticSource{}, testLogger()), unavailableAnnotator{}, cfg)

	base := Intent{Name: "a", Keywords: []string{"solde"}, Priority: 0, Active: true}
	raised := base
	raised.Priority = 7

	text := Normalize("mon solde")
	lowScore := scorer.Score(text, base) + float64(base.Priority)*cfg.PriorityStep
	highScore := scorer.Score(text, raised) + float64(raised.Priority)*cfg.PriorityStep

	delta := highScore - lowScore
	want := 7 * cfg.PriorityStep
	if math.Abs(delta-want) > 1e-9 {
		t.Errorf("priority delta = %v, want exactly %v", delta, want)
	}
}

func TestResolvePriorityWinsNearTie(t *testing.T) {
	handle := loadedHandle(t, []Intent{
		{Name: "prioritaire", Keywords: []string{"congés"}, Priority: 10, Active: true},
		{Name: "ordinaire", Keywords: []string{"congés"}, Priority: 1, Active: true},
	})
	scorer := NewLexicalScorer(handle, unavailableAnnotator{}, DefaultConfig())

	label, confidence, _ := scorer.Resolve(context.Background(), Normalize("mes congés"))
	if label != "prioritaire" {
		t.Errorf("label = %q, want %q", label, "prioritaire")
	}
	if confidence <= 0.15 {
		t.Errorf("confidence = %v, want above threshold", confidence)
	}
}

func TestResolveSemanticBlend(t *testing.T) {
	handle := loadedHandle(t, []Intent{
		{Name: "conge_solde", Keywords: []string{"congés", "solde"}, Priority: 0, Active: true},
	})
	annotator := newLexiconAnnotator(testLexicon())
	cfg := DefaultConfig()
	blended := NewLexicalScorer(handle, annotator, cfg)
	plain := NewLexicalScorer(handle, unavailableAnnotator{}, cfg)

	text := Normalize("solde de congés")
	withSem := blended.Score(text, handle.Snapshot().Intents()[0])
	withoutSem := plain.Score(text, handle.Snapshot().Intents()[0])

	if withSem > 1 || withoutSem > 1 {
		t.Fatalf("scores out of range: %v, %v", withSem, withoutSem)
	}
	// Both keywords match exactly, so the pure lexical score is 1 and the
	// blend can only move it through the semantic term.
	if withoutSem != 1 {
		t.Errorf("lexical-only score = %v, want 1", withoutSem)
	}
	wantMin := cfg.LexicalBlend // semantic in [0,1] keeps blend >= 0.6
	if withSem < wantMin {
		t.Errorf("blended score = %v, want >= %v", withSem, wantMin)
	}
}

func TestFoldTextStripsAccents(t *testing.T) {
	cases := map[string]string{
		"Congés Payés":  "conges payes",
		"échéance RH":   "echeance rh",
		"déjà ASCII ok": "deja ascii ok",
		"noël":          "noel",
	}
	for in, want := range cases {
		if got := foldText(in); got != want {
			t.Errorf("foldText(%q) = %q, want %q", in, got, want)
		}
	}
}
