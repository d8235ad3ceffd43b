package nlp

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

type recordingSink struct {
	mu      sync.Mutex
	records []ConversationRecord
	err     error
}

func (s *recordingSink) Append(_ context.Context, record ConversationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, record)
	return nil
}

func (s *recordingSink) all() []ConversationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ConversationRecord(nil), s.records...)
}

type staticBalance struct {
	balance float64
	ok      bool
}

func (b staticBalance) LeaveBalance(context.Context, string) (float64, bool) {
	return b.balance, b.ok
}

type panicResolver struct{}

func (panicResolver) Resolve(context.Context, string) (string, float64, bool) {
	panic("resolver blew up")
}

func hrIntents() []Intent {
	return []Intent{
		{
			Name:     "conge_solde",
			Category: "conges",
			Response: "Vous pouvez consulter le détail de vos congés dans votre espace employé.",
			Keywords: []string{"congés", "solde"},
			Priority: 10,
			Active:   true,
		},
		{
			Name:     "paie_date",
			Category: "paie",
			Response: "La paie est versée le 28 de chaque mois.",
			Keywords: []string{"paie", "virement", "salaire"},
			Priority: 5,
			Active:   true,
		},
	}
}

func newTestEngine(t *testing.T, sink ConversationSink, balances BalanceProvider) *Engine {
	t.Helper()
	handle := loadedHandle(t, hrIntents())
	scorer := NewLexicalScorer(handle, unavailableAnnotator{}, DefaultConfig())
	return NewEngine(testLogger(), handle, scorer, NewExtractor(unavailableAnnotator{}), sink, balances)
}

func TestEngineResolveLeaveBalanceScenario(t *testing.T) {
	sink := &recordingSink{}
	engine := newTestEngine(t, sink, staticBalance{balance: 12, ok: true})

	result := engine.Resolve(context.Background(), "Combien de jours de congés me reste-t-il ?", "emp-7", "sess-1")

	if result.Intent != "conge_solde" {
		t.Errorf("Intent = %q, want conge_solde", result.Intent)
	}
	if result.Confidence <= 0.15 {
		t.Errorf("Confidence = %v, want above threshold", result.Confidence)
	}
	if !strings.Contains(result.Answer, "12") {
		t.Errorf("Answer = %q, want the balance embedded", result.Answer)
	}
	if !strings.HasPrefix(result.Answer, "Votre solde de congés actuel est de 12 jours.") {
		t.Errorf("Answer = %q, want balance prefix sentence", result.Answer)
	}
	if result.SessionID != "sess-1" {
		t.Errorf("SessionID = %q, want echoed back unchanged", result.SessionID)
	}
	if result.ConversationID == "" {
		t.Error("ConversationID missing")
	}

	records := sink.all()
	if len(records) != 1 {
		t.Fatalf("sink holds %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Intent != "conge_solde" || rec.EmployeeID != "emp-7" || rec.SessionID != "sess-1" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Confidence != result.Confidence {
		t.Errorf("record confidence = %v, want %v", rec.Confidence, result.Confidence)
	}
}

func TestEngineResolveUnknown(t *testing.T) {
	sink := &recordingSink{}
	engine := newTestEngine(t, sink, nil)

	result := engine.Resolve(context.Background(), "xyzzy plugh 42", "", "sess-2")

	if result.Intent != IntentUnknown {
		t.Errorf("Intent = %q, want unknown", result.Intent)
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", result.Confidence)
	}
	if result.Answer != clarificationAnswer {
		t.Errorf("Answer = %q, want the fixed clarification", result.Answer)
	}
	if len(result.Suggestions) == 0 {
		t.Error("Suggestions empty, want the fixed default set")
	}
	// Entities found in an unresolved message do not change the answer.
	result2 := engine.Resolve(context.Background(), "xyzzy 5 jours plugh", "", "sess-2")
	if result2.Answer != clarificationAnswer {
		t.Errorf("Answer = %q, want clarification regardless of entities", result2.Answer)
	}
	if len(result2.Entities.Durations) != 1 {
		t.Errorf("Durations = %v, want extraction to still run", result2.Entities.Durations)
	}
}

func TestEngineLoggingIndependence(t *testing.T) {
	sink := &recordingSink{err: errors.New("conversation store down")}
	engine := newTestEngine(t, sink, nil)

	result := engine.Resolve(context.Background(), "quel est mon solde de congés", "emp-1", "sess-3")

	if result.Intent != "conge_solde" {
		t.Errorf("Intent = %q, want resolution unaffected by sink failure", result.Intent)
	}
	if result.Answer == "" || result.Answer == errorAnswer {
		t.Errorf("Answer = %q, want the composed response", result.Answer)
	}
}

func TestEngineRecoversFromPanic(t *testing.T) {
	handle := loadedHandle(t, hrIntents())
	engine := NewEngine(testLogger(), handle, panicResolver{}, NewExtractor(unavailableAnnotator{}), &recordingSink{}, nil)

	result := engine.Resolve(context.Background(), "bonjour", "", "sess-4")

	if result.Intent != IntentError {
		t.Errorf("Intent = %q, want error sentinel", result.Intent)
	}
	if result.Answer != errorAnswer {
		t.Errorf("Answer = %q, want the apologetic answer", result.Answer)
	}
	if result.SessionID != "sess-4" {
		t.Errorf("SessionID = %q, want preserved", result.SessionID)
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", result.Confidence)
	}
}

func TestEngineSentinelRecordInvariant(t *testing.T) {
	sink := &recordingSink{}
	handle := loadedHandle(t, hrIntents())
	classifier := NewStatisticalClassifier(FileStore{Dir: t.TempDir()}, testLogger())
	engine := NewEngine(testLogger(), handle, classifier, NewExtractor(unavailableAnnotator{}), sink, nil)

	result := engine.Resolve(context.Background(), "bonjour", "", "sess-5")
	if result.Intent != IntentUnknownModel {
		t.Errorf("Intent = %q, want unknown_intent sentinel surfaced to the caller", result.Intent)
	}

	records := sink.all()
	if len(records) != 1 {
		t.Fatalf("sink holds %d records, want 1", len(records))
	}
	if records[0].Intent != IntentUnknown {
		t.Errorf("record intent = %q, want collapsed to the unknown sentinel", records[0].Intent)
	}
}
