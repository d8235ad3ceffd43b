package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/Abdouldav-cyber/chat/pkg/log"
	"github.com/Abdouldav-cyber/chat/pkg/nlp"
	"github.com/Abdouldav-cyber/chat/pkg/s3"
	"github.com/sirupsen/logrus"
)

// Offline training job. Fits the TF-IDF vectorizer and the linear
// classifier on a labeled corpus and writes both artifacts for the
// serving process to pick up.
func main() {
	logger := log.NewLogger()

	corpus := flag.String("corpus", "training/intents.csv", "labeled corpus, one example,intent row per line")
	out := flag.String("out", "models", "output directory for the artifacts")
	maxFeatures := flag.Int("max-features", 5000, "vocabulary cap for the vectorizer")
	upload := flag.Bool("upload", false, "push the artifacts to the configured S3 bucket")
	flag.Parse()

	examples, err := nlp.LoadExamplesCSV(*corpus)
	if err != nil {
		logger.Fatalf("Failed to read training corpus %s: %v", *corpus, err)
	}

	vectorizer, model, err := nlp.Train(examples, *maxFeatures)
	if err != nil {
		logger.Fatalf("Training failed: %v", err)
	}

	if err := nlp.SaveArtifacts(*out, vectorizer, model); err != nil {
		logger.Fatalf("Failed to write artifacts: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"examples": len(examples),
		"classes":  len(model.Classes),
		"features": len(vectorizer.IDF),
		"out":      *out,
	}).Info("Classifier artifacts written")

	if *upload {
		client, err := s3.New()
		if err != nil {
			logger.Fatalf("Failed to create S3 client: %v", err)
		}
		if err := uploadArtifacts(client, *out); err != nil {
			logger.Fatalf("Failed to upload artifacts: %v", err)
		}
		logger.WithField("bucket", os.Getenv("AWS_BUCKET_NAME")).Info("Classifier artifacts uploaded")
	}
}

func uploadArtifacts(client s3.ItfS3, dir string) error {
	for _, name := range []string{nlp.VectorizerArtifact, nlp.ClassifierArtifact} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if err := client.Upload(name, data); err != nil {
			return err
		}
	}

	return nil
}
