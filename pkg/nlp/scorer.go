package nlp

import (
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/context"
)

// Config carries the tunable weights of the lexical strategy. The
// defaults reproduce the historical behavior; none of them is hard-coded
// law.
type Config struct {
	// Threshold is the hard confidence floor: a winning score below it
	// resolves to the unknown sentinel with confidence zero.
	Threshold float64
	// ExactWeight is the contribution of a keyword found verbatim in the
	// normalized message; it also scales the score denominator.
	ExactWeight float64
	// PartialWeight is the contribution of a keyword sharing a substring
	// relation with a single message token.
	PartialWeight float64
	// LexicalBlend and SemanticBlend combine the keyword score with the
	// annotator's semantic similarity when the latter is available.
	LexicalBlend  float64
	SemanticBlend float64
	// PriorityStep converts an intent's integer priority into a score
	// bias that breaks near-ties toward administratively ranked intents.
	PriorityStep float64
}

func DefaultConfig() Config {
	return Config{
		Threshold:     envFloat("CHAT_CONFIDENCE_THRESHOLD", 0.15),
		ExactWeight:   envFloat("CHAT_EXACT_MATCH_WEIGHT", 2),
		PartialWeight: envFloat("CHAT_PARTIAL_MATCH_WEIGHT", 1),
		LexicalBlend:  envFloat("CHAT_LEXICAL_BLEND", 0.6),
		SemanticBlend: envFloat("CHAT_SEMANTIC_BLEND", 0.4),
		PriorityStep:  envFloat("CHAT_PRIORITY_STEP", 0.01),
	}
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

// LexicalScorer resolves intents by keyword similarity against the
// catalog, optionally blended with the annotator's semantic measure.
type LexicalScorer struct {
	catalog   *Handle
	annotator Annotator
	cfg       Config
}

func NewLexicalScorer(catalog *Handle, annotator Annotator, cfg Config) *LexicalScorer {
	return &LexicalScorer{catalog: catalog, annotator: annotator, cfg: cfg}
}

// Score computes the per-intent score in [0,1] for a normalized message.
// An intent without keywords is unselectable by lexical means.
func (s *LexicalScorer) Score(normalized string, intent Intent) float64 {
	if len(intent.Keywords) == 0 {
		return 0
	}

	tokens := Tokenize(normalized)
	raw := 0.0

	for _, keyword := range intent.Keywords {
		kw := strings.ToLower(keyword)
		if kw == "" {
			continue
		}

		if strings.Contains(normalized, kw) {
			raw += s.cfg.ExactWeight
			continue
		}

		for _, token := range tokens {
			if strings.Contains(token, kw) || strings.Contains(kw, token) {
				raw += s.cfg.PartialWeight
				break
			}
		}
	}

	base := math.Min(1, raw/(s.cfg.ExactWeight*float64(len(intent.Keywords))))

	if raw > 0 {
		if semantic, ok := s.annotator.Similarity(normalized, intent.Keywords); ok {
			return math.Min(1, base*s.cfg.LexicalBlend+semantic*s.cfg.SemanticBlend)
		}
	}

	return base
}

// Resolve scans one catalog snapshot and picks the intent with the
// strictly highest priority-adjusted score; catalog order breaks exact
// ties. A winner below the threshold collapses to ("unknown", 0).
func (s *LexicalScorer) Resolve(_ context.Context, normalized string) (string, float64, bool) {
	snapshot := s.catalog.Snapshot()

	best := IntentUnknown
	bestScore := 0.0

	for _, intent := range snapshot.Intents() {
		adjusted := s.Score(normalized, intent) + float64(intent.Priority)*s.cfg.PriorityStep
		if adjusted > bestScore {
			bestScore = adjusted
			best = intent.Name
		}
	}

	if bestScore < s.cfg.Threshold {
		return IntentUnknown, 0, true
	}

	return best, math.Min(1, bestScore), true
}
