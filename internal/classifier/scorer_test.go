package classifier

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/phish-triage/internal/core"
)

func TestScorerPredict(t *testing.T) {
	v, m := trainTestModel(t)
	scorer := NewScorer(v, m, zap.NewNop())

	p, err := scorer.Predict("urgent verify your account password")
	require.NoError(t, err)
	assert.Equal(t, LabelPhishing, p.Label)
	assert.Equal(t, "Avoid clicking on suspicious links or giving personal info.", p.Advisory)
	assert.GreaterOrEqual(t, p.Confidence, 50.0)
	assert.LessOrEqual(t, p.Confidence, 100.0)
}

func TestScorerPredictBenign(t *testing.T) {
	v, m := trainTestModel(t)
	scorer := NewScorer(v, m, zap.NewNop())

	p, err := scorer.Predict("team meeting agenda attached")
	require.NoError(t, err)
	assert.Equal(t, "ham", p.Label)
	assert.Equal(t, "Looks safe, but stay cautious.", p.Advisory)
	// Confidence still reports the phishing probability, not the winner's
	assert.Less(t, p.Confidence, 50.0)
}

func TestScorerConfidenceRounding(t *testing.T) {
	v, m := trainTestModel(t)
	scorer := NewScorer(v, m, zap.NewNop())

	p, err := scorer.Predict("urgent verify account")
	require.NoError(t, err)
	// Two decimal places
	assert.Equal(t, p.Confidence, math.Round(p.Confidence*100)/100)
}

func TestScorerAlternateLabelScheme(t *testing.T) {
	// A corpus labeled spam/ham has no literal phishing class; the
	// confidence must still track the trained positive class instead of
	// collapsing to zero
	labels := make([]string, len(trainingLabels))
	for i, l := range trainingLabels {
		if l == LabelPhishing {
			labels[i] = "spam"
		} else {
			labels[i] = l
		}
	}
	v, m, err := Train(trainingSubjects, labels, DefaultTrainingOptions())
	require.NoError(t, err)
	require.Equal(t, "spam", m.Classes[1])

	scorer := NewScorer(v, m, zap.NewNop())

	p, err := scorer.Predict("urgent verify your account password")
	require.NoError(t, err)
	assert.Equal(t, "spam", p.Label)
	assert.GreaterOrEqual(t, p.Confidence, 50.0)
	assert.Equal(t, "Avoid clicking on suspicious links or giving personal info.", p.Advisory)

	p, err = scorer.Predict("team meeting agenda attached")
	require.NoError(t, err)
	assert.Equal(t, "ham", p.Label)
	assert.Less(t, p.Confidence, 50.0)
	assert.Equal(t, "Looks safe, but stay cautious.", p.Advisory)
}

func TestArtifactRoundTrip(t *testing.T) {
	v, m := trainTestModel(t)
	dir := t.TempDir()
	vecPath := filepath.Join(dir, "vectorizer.gob")
	modelPath := filepath.Join(dir, "classifier.gob")

	require.NoError(t, SaveVectorizer(vecPath, v))
	require.NoError(t, SaveModel(modelPath, m))

	scorer, err := LoadScorer(vecPath, modelPath, zap.NewNop())
	require.NoError(t, err)

	fresh := NewScorer(v, m, zap.NewNop())
	for _, subject := range []string{"urgent verify password", "lunch plans friday"} {
		want, err := fresh.Predict(subject)
		require.NoError(t, err)
		got, err := scorer.Predict(subject)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLoadScorerMissingArtifact(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadScorer(filepath.Join(dir, "missing.gob"), filepath.Join(dir, "missing2.gob"), zap.NewNop())
	var artifactErr *core.ArtifactLoadError
	require.ErrorAs(t, err, &artifactErr)
}

func TestLoadScorerCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	vecPath := filepath.Join(dir, "vectorizer.gob")
	require.NoError(t, os.WriteFile(vecPath, []byte("not a gob stream"), 0644))

	_, err := LoadVectorizer(vecPath)
	var artifactErr *core.ArtifactLoadError
	require.ErrorAs(t, err, &artifactErr)
	assert.Equal(t, vecPath, artifactErr.Path)
}
