package classifier

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/mikey/phish-triage/internal/core"
)

// The fitted vectorizer and classifier are persisted as two opaque gob
// blobs, written once by the offline trainer and loaded read-only at
// inference time.

// SaveVectorizer persists a fitted vectorizer
func SaveVectorizer(path string, v *Vectorizer) error {
	return saveArtifact(path, v)
}

// SaveModel persists a fitted classifier
func SaveModel(path string, m *LogisticModel) error {
	return saveArtifact(path, m)
}

// LoadVectorizer loads a persisted vectorizer
func LoadVectorizer(path string) (*Vectorizer, error) {
	var v Vectorizer
	if err := loadArtifact(path, &v); err != nil {
		return nil, err
	}
	if len(v.Vocabulary) == 0 || len(v.IDF) != len(v.Vocabulary) {
		return nil, &core.ArtifactLoadError{Path: path, Err: fmt.Errorf("vectorizer artifact is inconsistent")}
	}
	return &v, nil
}

// LoadModel loads a persisted classifier
func LoadModel(path string) (*LogisticModel, error) {
	var m LogisticModel
	if err := loadArtifact(path, &m); err != nil {
		return nil, err
	}
	if len(m.Weights) == 0 || m.Classes[0] == "" || m.Classes[1] == "" {
		return nil, &core.ArtifactLoadError{Path: path, Err: fmt.Errorf("classifier artifact is inconsistent")}
	}
	return &m, nil
}

func saveArtifact(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create artifact file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("failed to encode artifact: %w", err)
	}
	return nil
}

func loadArtifact(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return &core.ArtifactLoadError{Path: path, Err: err}
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return &core.ArtifactLoadError{Path: path, Err: err}
	}
	return nil
}
