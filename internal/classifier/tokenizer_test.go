package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "lowercases and splits on non-letters",
			text:     "Verify Your Account NOW!!!",
			expected: []string{"verify", "account", "now"},
		},
		{
			name:     "drops stop words",
			text:     "the quick brown fox is on the run",
			expected: []string{"quick", "brown", "fox", "run"},
		},
		{
			name:     "drops single letters and digits",
			text:     "a 1000 x prize",
			expected: []string{"prize"},
		},
		{
			name:     "drops reply and forward markers",
			text:     "Re: Fw: invoice attached",
			expected: []string{"invoice", "attached"},
		},
		{
			name:     "empty input",
			text:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.text))
		})
	}
}
