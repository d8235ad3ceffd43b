package nlp

import (
	"reflect"
	"strings"
	"testing"
)

func TestRespondUnknown(t *testing.T) {
	catalog := NewCatalog([]Intent{
		{Name: "conge_solde", Response: "Réponse congés.", Active: true},
	})

	for _, label := range []string{IntentUnknown, IntentUnknownModel} {
		answer, suggestions := Respond(catalog, label, CallerContext{})
		if answer != clarificationAnswer {
			t.Errorf("Respond(%q) answer = %q, want the fixed clarification", label, answer)
		}
		if !reflect.DeepEqual(suggestions, suggestionsByIntent[IntentUnknown]) {
			t.Errorf("Respond(%q) suggestions = %v, want the unknown set", label, suggestions)
		}
	}
}

func TestRespondKnownIntent(t *testing.T) {
	catalog := NewCatalog([]Intent{
		{Name: "paie_date", Response: "La paie est versée le 28.", Active: true},
	})

	answer, suggestions := Respond(catalog, "paie_date", CallerContext{})
	if answer != "La paie est versée le 28." {
		t.Errorf("answer = %q", answer)
	}
	if !reflect.DeepEqual(suggestions, suggestionsByIntent["paie_date"]) {
		t.Errorf("suggestions = %v", suggestions)
	}
}

func TestRespondNoActiveEntry(t *testing.T) {
	catalog := NewCatalog(nil)

	answer, suggestions := Respond(catalog, "intent_disparu", CallerContext{})
	if answer != noAnswerFound {
		t.Errorf("answer = %q, want the no-answer fallback", answer)
	}
	if !reflect.DeepEqual(suggestions, defaultSuggestions) {
		t.Errorf("suggestions = %v, want the default list", suggestions)
	}
}

func TestRespondBalancePrefix(t *testing.T) {
	catalog := NewCatalog([]Intent{
		{Name: "conge_solde", Response: "Vous pouvez consulter vos congés en ligne.", Active: true},
	})

	balance := 12.0
	answer, _ := Respond(catalog, "conge_solde", CallerContext{EmployeeID: "emp-1", LeaveBalance: &balance})
	if !strings.HasPrefix(answer, "Votre solde de congés actuel est de 12 jours.") {
		t.Errorf("answer = %q, want balance prefix", answer)
	}
	if !strings.HasSuffix(answer, "Vous pouvez consulter vos congés en ligne.") {
		t.Errorf("answer = %q, want the canned response preserved", answer)
	}

	// No balance in context: the canned response stays untouched.
	answer, _ = Respond(catalog, "conge_solde", CallerContext{EmployeeID: "emp-1"})
	if answer != "Vous pouvez consulter vos congés en ligne." {
		t.Errorf("answer = %q, want unprefixed response", answer)
	}
}
