package nlp

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	VectorizerArtifact = "vectorizer.json"
	ClassifierArtifact = "classifier.json"
)

// ArtifactStore reads named serialized blobs from the fixed storage
// location holding the classifier artifacts.
type ArtifactStore interface {
	Load(name string) ([]byte, error)
}

// FileStore reads artifacts from a local directory.
type FileStore struct {
	Dir string
}

func (s FileStore) Load(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Dir, name))
}

// LinearModel is a multinomial logistic-regression classifier produced by
// the offline training pipeline. Weights are indexed [class][feature].
type LinearModel struct {
	Classes []string    `json:"classes"`
	Weights [][]float64 `json:"weights"`
	Bias    []float64   `json:"bias"`
}

// Predict returns the class with the highest linear score. Probabilities
// are not exposed; the statistical strategy is an uncalibrated label
// source.
func (m *LinearModel) Predict(features []float64) string {
	best := 0
	bestScore := 0.0

	for c := range m.Classes {
		score := m.Bias[c]
		for i, w := range m.Weights[c] {
			if i < len(features) {
				score += w * features[i]
			}
		}
		if c == 0 || score > bestScore {
			best = c
			bestScore = score
		}
	}

	if len(m.Classes) == 0 {
		return IntentUnknownModel
	}
	return m.Classes[best]
}

// StatisticalClassifier resolves intents with a pre-fit vectorizer and
// linear model pair. Missing artifacts are not fatal: resolution then
// deterministically yields the unknown-model sentinel.
type StatisticalClassifier struct {
	log        *logrus.Logger
	vectorizer *Vectorizer
	model      *LinearModel
}

func NewStatisticalClassifier(store ArtifactStore, log *logrus.Logger) *StatisticalClassifier {
	c := &StatisticalClassifier{log: log}

	vectorizer, err := loadVectorizer(store)
	if err != nil {
		log.WithFields(logrus.Fields{
			"artifact": VectorizerArtifact,
			"error":    err.Error(),
		}).Warn("Classifier artifacts not loaded, resolution degrades to the unknown_intent sentinel")
		return c
	}

	model, err := loadModel(store)
	if err != nil {
		log.WithFields(logrus.Fields{
			"artifact": ClassifierArtifact,
			"error":    err.Error(),
		}).Warn("Classifier artifacts not loaded, resolution degrades to the unknown_intent sentinel")
		return c
	}

	c.vectorizer = vectorizer
	c.model = model

	log.WithFields(logrus.Fields{
		"classes":  len(model.Classes),
		"features": len(vectorizer.IDF),
	}).Info("Classifier artifacts loaded")

	return c
}

// Loaded reports whether both artifacts are in memory.
func (c *StatisticalClassifier) Loaded() bool {
	return c.vectorizer != nil && c.model != nil
}

// Resolve labels the message with the trained model. The statistical
// strategy never reports a calibrated confidence, so scored is always
// false and confidence stays at the fixed zero sentinel.
func (c *StatisticalClassifier) Resolve(_ context.Context, normalized string) (string, float64, bool) {
	if !c.Loaded() {
		return IntentUnknownModel, 0, false
	}
	return c.model.Predict(c.vectorizer.Transform(normalized)), 0, false
}

func loadVectorizer(store ArtifactStore) (*Vectorizer, error) {
	data, err := store.Load(VectorizerArtifact)
	if err != nil {
		return nil, err
	}
	var v Vectorizer
	if err := jsoniter.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func loadModel(store ArtifactStore) (*LinearModel, error) {
	data, err := store.Load(ClassifierArtifact)
	if err != nil {
		return nil, err
	}
	var m LinearModel
	if err := jsoniter.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
