package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPayload(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "plain json",
			raw:      `{"score": 90}`,
			expected: `{"score": 90}`,
		},
		{
			name:     "surrounding whitespace",
			raw:      "\n  {\"score\": 90}  \n",
			expected: `{"score": 90}`,
		},
		{
			name:     "json fence",
			raw:      "```json\n{\"score\": 90}\n```",
			expected: `{"score": 90}`,
		},
		{
			name:     "bare fence",
			raw:      "```\n{\"score\": 90}\n```",
			expected: `{"score": 90}`,
		},
		{
			name:     "uppercase fence label",
			raw:      "```JSON\n{\"score\": 90}\n```",
			expected: `{"score": 90}`,
		},
		{
			name:     "fence with prose around it",
			raw:      "Here is my analysis:\n```json\n{\"score\": 90}\n```\nHope that helps!",
			expected: `{"score": 90}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPayload(tt.raw))
		})
	}
}

func TestParseVerdict(t *testing.T) {
	t.Run("valid phishing verdict", func(t *testing.T) {
		raw := `{"score": 95, "verdict": "Phishing", "message": "Credential harvesting attempt"}`
		v, err := ParseVerdict(raw)
		require.NoError(t, err)
		assert.Equal(t, 95, v.Score)
		assert.Equal(t, VerdictPhishing, v.Verdict)
		assert.Equal(t, "Credential harvesting attempt", v.Message)
	})

	t.Run("fenced verdict", func(t *testing.T) {
		raw := "```json\n{\"score\": 20, \"verdict\": \"Safe\", \"message\": \"Routine newsletter\"}\n```"
		v, err := ParseVerdict(raw)
		require.NoError(t, err)
		assert.Equal(t, 20, v.Score)
		assert.Equal(t, VerdictSafe, v.Verdict)
	})

	t.Run("float score is rounded", func(t *testing.T) {
		raw := `{"score": 84.6, "verdict": "Phishing", "message": "x"}`
		v, err := ParseVerdict(raw)
		require.NoError(t, err)
		assert.Equal(t, 85, v.Score)
	})

	t.Run("object padded with prose", func(t *testing.T) {
		raw := `Sure! {"score": 65, "verdict": "Suspicious", "message": "Urgency cues"} as requested.`
		v, err := ParseVerdict(raw)
		require.NoError(t, err)
		assert.Equal(t, 65, v.Score)
		assert.Equal(t, VerdictSuspicious, v.Verdict)
	})

	t.Run("non-json response", func(t *testing.T) {
		raw := "I think this email is probably phishing."
		v, err := ParseVerdict(raw)
		assert.Nil(t, v)

		var formatErr *ResponseFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, raw, formatErr.Raw)
	})

	t.Run("missing score", func(t *testing.T) {
		raw := `{"verdict": "Phishing", "message": "x"}`
		_, err := ParseVerdict(raw)

		var formatErr *ResponseFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, raw, formatErr.Raw)
	})

	t.Run("verdict inconsistent with score", func(t *testing.T) {
		raw := `{"score": 95, "verdict": "Safe", "message": "x"}`
		_, err := ParseVerdict(raw)

		var formatErr *ResponseFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, raw, formatErr.Raw)
	})

	t.Run("unknown verdict label", func(t *testing.T) {
		raw := `{"score": 95, "verdict": "Dangerous", "message": "x"}`
		_, err := ParseVerdict(raw)

		var formatErr *ResponseFormatError
		require.ErrorAs(t, err, &formatErr)
	})

	t.Run("score out of range", func(t *testing.T) {
		raw := `{"score": 150, "verdict": "Phishing", "message": "x"}`
		_, err := ParseVerdict(raw)

		var formatErr *ResponseFormatError
		require.ErrorAs(t, err, &formatErr)
	})

	t.Run("format error unwraps cause", func(t *testing.T) {
		_, err := ParseVerdict("not json at all")
		var formatErr *ResponseFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.True(t, errors.Unwrap(err) != nil)
	})
}
