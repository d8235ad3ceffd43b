package nlp

import "fmt"

const (
	clarificationAnswer = "Je ne suis pas sûr de comprendre votre question. " +
		"Pouvez-vous reformuler ? Vous pouvez me demander de l'aide " +
		"sur les congés, la paie, les avantages sociaux, ou faire une demande."
	noAnswerFound = "Je n'ai pas trouvé de réponse à cette question. Contactez le service RH."
	errorAnswer   = "Une erreur s'est produite. Veuillez réessayer."
)

var defaultSuggestions = []string{"Aide", "Contacter RH"}

var suggestionsByIntent = map[string][]string{
	"conge_solde":    {"Comment demander un congé ?", "Quels types de congés ?"},
	"conge_demande":  {"Voir mon solde de congés", "Types de congés disponibles"},
	"paie_date":      {"Voir ma fiche de paie", "Quelles sont mes primes ?"},
	"paie_fiche":     {"Date du prochain virement", "Demander une attestation"},
	"avantage_sante": {"Transport", "Tickets restaurant", "Formation"},
	"salutation":     {"Solde de congés", "Date de paie", "Mes avantages"},
	"aide":           {"Demander un congé", "Ma fiche de paie", "Mes avantages"},
	IntentUnknown:    {"Congés", "Paie", "Avantages sociaux", "Faire une demande"},
}

// balanceIntents is the designated set of intents whose response embeds
// the caller's leave balance when known.
var balanceIntents = map[string]bool{
	"conge_solde": true,
}

// Respond maps a resolved label to the final response text plus follow-up
// suggestions. The catalog snapshot is the source of all canned
// responses; the caller context is the only place caller-specific state
// enters the answer.
func Respond(catalog *Catalog, label string, caller CallerContext) (string, []string) {
	if label == IntentUnknown || label == IntentUnknownModel {
		return clarificationAnswer, Suggestions(IntentUnknown)
	}

	answer := noAnswerFound
	if intent, ok := catalog.Lookup(label); ok {
		answer = intent.Response
	}

	if balanceIntents[label] && caller.LeaveBalance != nil {
		answer = fmt.Sprintf("Votre solde de congés actuel est de %g jours. %s", *caller.LeaveBalance, answer)
	}

	return answer, Suggestions(label)
}

// Suggestions returns the static follow-up prompts for a label, falling
// back to the generic list for unmapped labels.
func Suggestions(label string) []string {
	if s, ok := suggestionsByIntent[label]; ok {
		return s
	}
	return defaultSuggestions
}
