package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpusFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTrainFromCSV(t *testing.T) {
	path := writeCorpusFile(t, `text,label
urgent verify your account password,phishing
claim your lottery prize now winner,phishing
account suspended click to verify,PHISHING
weekly meeting agenda attached,ham
quarterly report draft for review,ham
lunch plans for friday,Ham
`)

	v, m, err := TrainFromCSV(path, DefaultTrainingOptions())
	require.NoError(t, err)
	assert.Greater(t, v.Dim(), 0)

	// Labels are normalized to lower case before training
	assert.Equal(t, LabelPhishing, m.Classes[1])
	assert.Equal(t, LabelPhishing, m.Predict(v.Transform("urgent verify account")))
}

func TestTrainFromCSVAlternateColumnNames(t *testing.T) {
	path := writeCorpusFile(t, `class,subject
phishing,urgent verify your password
phishing,claim your prize winner
ham,meeting agenda attached
ham,project status update
`)

	v, m, err := TrainFromCSV(path, DefaultTrainingOptions())
	require.NoError(t, err)
	assert.Equal(t, LabelPhishing, m.Predict(v.Transform("urgent verify password")))
}

func TestTrainFromCSVEmptyCorpus(t *testing.T) {
	path := writeCorpusFile(t, "text,label\n")

	_, _, err := TrainFromCSV(path, DefaultTrainingOptions())
	assert.Error(t, err)
}

func TestTrainFromCSVMissingFile(t *testing.T) {
	_, _, err := TrainFromCSV(filepath.Join(t.TempDir(), "nope.csv"), DefaultTrainingOptions())
	assert.Error(t, err)
}
