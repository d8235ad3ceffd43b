package nlp

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Annotator is the optional linguistic capability of the engine. The
// lexicon-backed variant produces date/money/person spans and a semantic
// similarity measure; the unavailable variant produces neither, which
// downgrades extraction to pattern-only mode.
type Annotator interface {
	Annotate(text string) []Span
	Similarity(text string, keywords []string) (float64, bool)
}

type lexicon struct {
	Persons    []string             `json:"persons"`
	Months     []string             `json:"months"`
	Currencies []string             `json:"currencies"`
	Vectors    map[string][]float64 `json:"vectors"`
}

// NewAnnotator loads the lexicon at path and returns the full annotator.
// A missing or unreadable lexicon selects the unavailable variant; this
// is a degraded mode, never an error.
func NewAnnotator(path string, log *logrus.Logger) Annotator {
	data, err := os.ReadFile(path)
	if err != nil {
		log.WithFields(logrus.Fields{
			"path":  path,
			"error": err.Error(),
		}).Warn("Lexicon not available, entity annotation runs in pattern-only mode")
		return unavailableAnnotator{}
	}

	var lex lexicon
	if err := jsoniter.Unmarshal(data, &lex); err != nil {
		log.WithFields(logrus.Fields{
			"path":  path,
			"error": err.Error(),
		}).Warn("Lexicon unreadable, entity annotation runs in pattern-only mode")
		return unavailableAnnotator{}
	}

	return newLexiconAnnotator(lex)
}

type unavailableAnnotator struct{}

func (unavailableAnnotator) Annotate(string) []Span { return nil }

func (unavailableAnnotator) Similarity(string, []string) (float64, bool) { return 0, false }

type lexiconAnnotator struct {
	persons map[string]bool
	vectors map[string][]float64
	dateRe  *regexp.Regexp
	moneyRe *regexp.Regexp
}

func newLexiconAnnotator(lex lexicon) *lexiconAnnotator {
	persons := make(map[string]bool, len(lex.Persons))
	for _, name := range lex.Persons {
		persons[foldText(name)] = true
	}

	vectors := make(map[string][]float64, len(lex.Vectors))
	for word, vec := range lex.Vectors {
		vectors[foldText(word)] = vec
	}

	months := make([]string, 0, len(lex.Months))
	for _, m := range lex.Months {
		months = append(months, regexp.QuoteMeta(foldText(m)))
	}

	currencies := make([]string, 0, len(lex.Currencies))
	for _, c := range lex.Currencies {
		currencies = append(currencies, regexp.QuoteMeta(foldText(c)))
	}

	return &lexiconAnnotator{
		persons: persons,
		vectors: vectors,
		dateRe: regexp.MustCompile(
			fmt.Sprintf(`(?i)\b(\d{1,2})(?:er)?\s+(%s)(?:\s+(\d{4}))?\b`, strings.Join(months, "|"))),
		moneyRe: regexp.MustCompile(
			fmt.Sprintf(`(?i)(\d+(?:[.,]\d+)?)\s*(€|\$|%s)`, strings.Join(currencies, "|"))),
	}
}

func (a *lexiconAnnotator) Annotate(text string) []Span {
	folded := foldText(text)
	var spans []Span

	for _, loc := range a.dateRe.FindAllStringIndex(folded, -1) {
		spans = append(spans, Span{Label: SpanDate, Text: sliceOriginal(text, folded, loc), Start: loc[0]})
	}

	for _, loc := range a.moneyRe.FindAllStringIndex(folded, -1) {
		spans = append(spans, Span{Label: SpanMoney, Text: sliceOriginal(text, folded, loc), Start: loc[0]})
	}

	spans = append(spans, a.personSpans(text, folded)...)

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

// personSpans matches capitalized tokens against the first-name lexicon
// and extends each hit with a following capitalized surname when present.
func (a *lexiconAnnotator) personSpans(text, folded string) []Span {
	words := strings.Fields(text)
	var spans []Span

	offset := 0
	starts := make([]int, len(words))
	for i, w := range words {
		starts[i] = strings.Index(text[offset:], w) + offset
		offset = starts[i] + len(w)
	}

	for i := 0; i < len(words); i++ {
		word := strings.Trim(words[i], ".,;:!?()\"'")
		if word == "" || !startsUpper(word) || !a.persons[foldText(word)] {
			continue
		}

		span := word
		start := starts[i]
		if i+1 < len(words) {
			next := strings.Trim(words[i+1], ".,;:!?()\"'")
			if next != "" && startsUpper(next) {
				span = span + " " + next
				i++
			}
		}

		spans = append(spans, Span{Label: SpanPerson, Text: span, Start: start})
	}

	return spans
}

// Similarity reports the cosine similarity between the averaged word
// vectors of the message and of the keyword set. It reports ok=false when
// either side has no vector coverage.
func (a *lexiconAnnotator) Similarity(text string, keywords []string) (float64, bool) {
	textVec, okText := a.averageVector(Tokenize(Normalize(text)))
	kwVec, okKw := a.averageVector(Tokenize(Normalize(strings.Join(keywords, " "))))
	if !okText || !okKw {
		return 0, false
	}

	sim := cosine(textVec, kwVec)
	if math.IsNaN(sim) {
		return 0, false
	}
	if sim < 0 {
		sim = 0
	}
	return math.Min(1, sim), true
}

func (a *lexiconAnnotator) averageVector(tokens []string) ([]float64, bool) {
	var sum []float64
	covered := 0

	for _, tok := range tokens {
		vec, ok := a.vectors[foldText(tok)]
		if !ok {
			continue
		}
		if sum == nil {
			sum = make([]float64, len(vec))
		}
		if len(vec) != len(sum) {
			continue
		}
		for i := range vec {
			sum[i] += vec[i]
		}
		covered++
	}

	if covered == 0 {
		return nil, false
	}
	for i := range sum {
		sum[i] /= float64(covered)
	}
	return sum, true
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// foldText lowercases and strips combining marks so accented and plain
// spellings compare equal. Folding never changes byte positions of ASCII
// text; for accented input span text is recovered via sliceOriginal.
func foldText(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		return strings.ToLower(text)
	}
	return folded
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

// sliceOriginal maps a match range in the folded text back onto the
// original string. When folding changed the byte length the folded slice
// itself is returned, which only loses diacritics in the reported span.
func sliceOriginal(text, folded string, loc []int) string {
	if len(text) == len(folded) && loc[1] <= len(text) {
		return text[loc[0]:loc[1]]
	}
	return folded[loc[0]:loc[1]]
}
