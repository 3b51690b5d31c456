package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessageBodyOnly(t *testing.T) {
	msg := UserMessage("please verify your account", "", nil)

	assert.True(t, strings.HasPrefix(msg, "Email body:\n"))
	assert.Contains(t, msg, "please verify your account")
	assert.NotContains(t, msg, "Subject:")
	assert.NotContains(t, msg, "auxiliary machine-learning model")
	assert.True(t, strings.HasSuffix(msg, "Analyze this email."))
}

func TestUserMessageWithSubject(t *testing.T) {
	msg := UserMessage("body text", "Urgent: verify now", nil)

	assert.Contains(t, msg, "Subject: Urgent: verify now")
}

func TestUserMessageWithHint(t *testing.T) {
	hint := &StatisticalPrediction{
		Label:      "phishing",
		Confidence: 92.51,
		Advisory:   "Avoid clicking on suspicious links or giving personal info.",
	}
	msg := UserMessage("body text", "Urgent", hint)

	assert.Contains(t, msg, "potentially phishing")
	assert.Contains(t, msg, "92.51%")
	assert.Contains(t, msg, "Avoid clicking on suspicious links or giving personal info.")
	assert.Contains(t, msg, "your rubric evaluation takes precedence")
}
