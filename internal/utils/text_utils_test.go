package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTruncateText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	short := "short text"
	assert.Equal(t, short, tp.TruncateText(short, 100))
	assert.Equal(t, short, tp.TruncateText(short, 0))

	long := strings.Repeat("a", 200)
	truncated := tp.TruncateText(long, 50)
	assert.True(t, strings.HasPrefix(truncated, strings.Repeat("a", 50)))
	assert.Contains(t, truncated, "Content truncated")
}

func TestTruncateTextPreservesUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	// Cut point lands in the middle of a multi-byte rune
	text := "abécdef" // é is 2 bytes
	truncated := tp.TruncateText(text, 3)
	assert.NotContains(t, truncated, "�")
}

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "valid", tp.SanitizeUTF8("valid"))

	invalid := "bad\xffbytes"
	sanitized := tp.SanitizeUTF8(invalid)
	assert.Equal(t, "badbytes", sanitized)
}

func TestProcessText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	out := tp.ProcessText("hello\xffworld", 100)
	assert.Equal(t, "helloworld", out)
}
