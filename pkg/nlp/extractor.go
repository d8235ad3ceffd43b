package nlp

import (
	"regexp"
	"strings"
)

var (
	durationRe = regexp.MustCompile(`(\d+)\s*(jours?|semaines?|mois|ans?)\b`)
	numericRe  = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
)

// Extractor pulls structured entities out of raw text. It runs
// independently of intent resolution and never fails: without the
// linguistic annotator only the manual duration and date patterns
// produce results.
type Extractor struct {
	annotator Annotator
}

func NewExtractor(annotator Annotator) *Extractor {
	if annotator == nil {
		annotator = unavailableAnnotator{}
	}
	return &Extractor{annotator: annotator}
}

func (e *Extractor) Extract(text string) EntityBag {
	bag := EntityBag{}

	for _, span := range e.annotator.Annotate(text) {
		switch span.Label {
		case SpanDate:
			bag.Dates = append(bag.Dates, span.Text)
		case SpanMoney:
			bag.Amounts = append(bag.Amounts, span.Text)
		case SpanPerson:
			bag.Persons = append(bag.Persons, span.Text)
		}
	}

	lower := strings.ToLower(text)
	for _, m := range durationRe.FindAllStringSubmatch(lower, -1) {
		bag.Durations = append(bag.Durations, m[1]+" "+m[2])
	}

	bag.Dates = append(bag.Dates, numericRe.FindAllString(text, -1)...)

	return bag
}
