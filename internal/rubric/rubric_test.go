package rubric

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRubric(t *testing.T) {
	text := Default()
	assert.NotEmpty(t, text)
	// The response contract is the part the parser depends on
	assert.Contains(t, text, `"score"`)
	assert.Contains(t, text, `"verdict"`)
	assert.Contains(t, text, `"message"`)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	text, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), text)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubric.txt")
	require.NoError(t, os.WriteFile(path, []byte("score emails from 0 to 100"), 0644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "score emails from 0 to 100", text)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubric.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
