package nlp

import (
	"math"
	"sort"
)

// frenchStopWords mirrors the stopword filtering of the historical
// training job; it only affects the statistical strategy's vocabulary.
var frenchStopWords = map[string]bool{
	"au": true, "aux": true, "avec": true, "ce": true, "ces": true,
	"cette": true, "dans": true, "de": true, "des": true, "du": true,
	"elle": true, "en": true, "est": true, "et": true, "eux": true,
	"il": true, "ils": true, "je": true, "la": true, "le": true,
	"les": true, "leur": true, "lui": true, "ma": true, "mais": true,
	"me": true, "mes": true, "moi": true, "mon": true, "ne": true,
	"nos": true, "notre": true, "nous": true, "on": true, "ou": true,
	"par": true, "pas": true, "pour": true, "qu": true, "que": true,
	"qui": true, "sa": true, "se": true, "ses": true, "son": true,
	"sur": true, "ta": true, "te": true, "tes": true, "toi": true,
	"ton": true, "tu": true, "un": true, "une": true, "vos": true,
	"votre": true, "vous": true,
}

// Vectorizer is a TF-IDF text vectorizer fit once by the offline
// training pipeline and read-only afterwards.
type Vectorizer struct {
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	MaxFeatures int            `json:"max_features"`
	Documents   int            `json:"documents"`
}

func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{
		Vocabulary:  make(map[string]int),
		MaxFeatures: maxFeatures,
	}
}

func vectorizerTokens(doc string) []string {
	var tokens []string
	for _, tok := range Tokenize(Normalize(doc)) {
		if !frenchStopWords[tok] {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Fit builds the vocabulary from the corpus, keeping the MaxFeatures
// terms with the highest document frequency, and computes smoothed IDF
// weights.
func (v *Vectorizer) Fit(docs []string) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range vectorizerTokens(doc) {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		terms = terms[:v.MaxFeatures]
	}
	sort.Strings(terms)

	v.Documents = len(docs)
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log(float64(1+v.Documents)/float64(1+df[term])) + 1
	}
}

// Transform maps a document onto the fitted vocabulary as an
// L2-normalized TF-IDF vector.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.IDF))

	for _, tok := range vectorizerTokens(doc) {
		if i, ok := v.Vocabulary[tok]; ok {
			vec[i]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= v.IDF[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}
