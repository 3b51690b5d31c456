// Package rubric holds the scoring policy text given to the LLM. The
// rubric is a versioned asset, not code: it ships embedded but can be
// overridden by file so it can evolve without redeploying logic.
package rubric

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed rubric.txt
var defaultRubric string

// Default returns the embedded rubric text
func Default() string {
	return defaultRubric
}

// Load returns the rubric from the given path, or the embedded default
// when path is empty
func Load(path string) (string, error) {
	if path == "" {
		return defaultRubric, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read rubric file: %w", err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("rubric file %s is empty", path)
	}
	return text, nil
}
