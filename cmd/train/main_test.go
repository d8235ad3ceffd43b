package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Abdouldav-cyber/chat/pkg/nlp"
)

type fakeStore struct {
	objects map[string][]byte
}

func (f *fakeStore) Load(name string) ([]byte, error) {
	return f.objects[name], nil
}

func (f *fakeStore) Upload(name string, data []byte) error {
	f.objects[name] = data
	return nil
}

func TestUploadArtifacts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{nlp.VectorizerArtifact, nlp.ClassifierArtifact} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	store := &fakeStore{objects: map[string][]byte{}}
	if err := uploadArtifacts(store, dir); err != nil {
		t.Fatalf("uploadArtifacts: %v", err)
	}

	for _, name := range []string{nlp.VectorizerArtifact, nlp.ClassifierArtifact} {
		if string(store.objects[name]) != "{}" {
			t.Errorf("artifact %s not uploaded", name)
		}
	}
}

func TestUploadArtifactsMissingFile(t *testing.T) {
	store := &fakeStore{objects: map[string][]byte{}}
	if err := uploadArtifacts(store, t.TempDir()); err == nil {
		t.Fatal("expected an error for a directory without artifacts")
	}
}
