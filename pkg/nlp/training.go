package nlp

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Example is one labeled training row.
type Example struct {
	Text  string
	Label string
}

var ErrEmptyCorpus = errors.New("training corpus is empty")

// LoadExamplesCSV reads a (example,intent) corpus. Rows with a missing
// text or label are dropped before fitting, matching the offline job's
// historical behavior.
func LoadExamplesCSV(path string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var examples []Example
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 2 {
			continue
		}

		text := strings.TrimSpace(row[0])
		label := strings.TrimSpace(row[1])

		if first {
			first = false
			if strings.EqualFold(text, "example") && strings.EqualFold(label, "intent") {
				continue
			}
		}
		if text == "" || label == "" {
			continue
		}

		examples = append(examples, Example{Text: text, Label: label})
	}

	return examples, nil
}

// Train fits the TF-IDF vectorizer on the corpus and a multinomial
// logistic regression on the vectorized corpus against the labels. The
// pass over the examples is deterministic, so retraining on the same
// corpus reproduces the same artifacts.
func Train(examples []Example, maxFeatures int) (*Vectorizer, *LinearModel, error) {
	clean := examples[:0:0]
	for _, ex := range examples {
		if strings.TrimSpace(ex.Text) != "" && strings.TrimSpace(ex.Label) != "" {
			clean = append(clean, ex)
		}
	}
	if len(clean) == 0 {
		return nil, nil, ErrEmptyCorpus
	}

	docs := make([]string, len(clean))
	for i, ex := range clean {
		docs[i] = ex.Text
	}

	vectorizer := NewVectorizer(maxFeatures)
	vectorizer.Fit(docs)

	classSet := make(map[string]bool)
	for _, ex := range clean {
		classSet[ex.Label] = true
	}
	classes := make([]string, 0, len(classSet))
	for class := range classSet {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	classIndex := make(map[string]int, len(classes))
	for i, class := range classes {
		classIndex[class] = i
	}

	features := len(vectorizer.IDF)
	model := &LinearModel{
		Classes: classes,
		Weights: make([][]float64, len(classes)),
		Bias:    make([]float64, len(classes)),
	}
	for c := range model.Weights {
		model.Weights[c] = make([]float64, features)
	}

	vectors := make([][]float64, len(clean))
	for i, doc := range docs {
		vectors[i] = vectorizer.Transform(doc)
	}

	const (
		epochs       = 200
		learningRate = 0.5
	)

	scores := make([]float64, len(classes))
	for epoch := 0; epoch < epochs; epoch++ {
		for i, x := range vectors {
			target := classIndex[clean[i].Label]

			for c := range classes {
				scores[c] = model.Bias[c]
				for j, w := range model.Weights[c] {
					scores[c] += w * x[j]
				}
			}
			probs := softmax(scores)

			for c := range classes {
				gradient := probs[c]
				if c == target {
					gradient--
				}
				model.Bias[c] -= learningRate * gradient
				for j := range x {
					if x[j] != 0 {
						model.Weights[c][j] -= learningRate * gradient * x[j]
					}
				}
			}
		}
	}

	return vectorizer, model, nil
}

func softmax(scores []float64) []float64 {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}

	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// SaveArtifacts serializes the fitted pair into dir for later loading by
// the serving process.
func SaveArtifacts(dir string, vectorizer *Vectorizer, model *LinearModel) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	vecData, err := jsoniter.MarshalIndent(vectorizer, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal vectorizer: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, VectorizerArtifact), vecData, 0o644); err != nil {
		return err
	}

	modelData, err := jsoniter.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal classifier: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, ClassifierArtifact), modelData, 0o644)
}
