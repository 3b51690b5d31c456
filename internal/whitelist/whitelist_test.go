package whitelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIsWhitelisted(t *testing.T) {
	checker := NewChecker([]string{"Example.com", " trusted.org "}, zap.NewNop())

	assert.True(t, checker.IsWhitelisted("alice@example.com"))
	assert.True(t, checker.IsWhitelisted("bob@EXAMPLE.COM"))
	assert.True(t, checker.IsWhitelisted("carol@trusted.org"))

	assert.False(t, checker.IsWhitelisted("mallory@evil.com"))
	assert.False(t, checker.IsWhitelisted("not-an-address"))
	assert.False(t, checker.IsWhitelisted(""))
	assert.False(t, checker.IsWhitelisted("two@ats@example.com"))
}

func TestIsWhitelistedSubdomainNotMatched(t *testing.T) {
	checker := NewChecker([]string{"example.com"}, zap.NewNop())

	assert.False(t, checker.IsWhitelisted("alice@mail.example.com"))
}

func TestNilAndEmptyChecker(t *testing.T) {
	var nilChecker *Checker
	assert.False(t, nilChecker.IsWhitelisted("alice@example.com"))

	empty := NewChecker(nil, zap.NewNop())
	assert.False(t, empty.IsWhitelisted("alice@example.com"))
}
