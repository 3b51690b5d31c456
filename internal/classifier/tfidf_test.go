package classifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitVectorizer(t *testing.T) {
	docs := []string{
		"verify account password",
		"meeting agenda attached",
		"verify password reset",
	}

	v := FitVectorizer(docs)

	assert.Equal(t, len(v.Vocabulary), v.Dim())
	assert.Len(t, v.IDF, v.Dim())

	// "verify" appears in two docs, "meeting" in one; rarer terms weigh more
	verifyIdx, ok := v.Vocabulary["verify"]
	require.True(t, ok)
	meetingIdx, ok := v.Vocabulary["meeting"]
	require.True(t, ok)
	assert.Greater(t, v.IDF[meetingIdx], v.IDF[verifyIdx])

	// All smoothed IDF weights are strictly positive
	for _, w := range v.IDF {
		assert.Greater(t, w, 0.0)
	}
}

func TestTransformL2Normalized(t *testing.T) {
	v := FitVectorizer([]string{
		"verify account password",
		"meeting agenda attached",
	})

	x := v.Transform("verify account password password")
	require.NotEmpty(t, x)

	var norm float64
	for _, w := range x {
		norm += w * w
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestTransformOutOfVocabulary(t *testing.T) {
	v := FitVectorizer([]string{"verify account"})

	x := v.Transform("completely unrelated words")
	assert.Empty(t, x)
}
