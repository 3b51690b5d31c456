package core

import (
	"fmt"
	"strings"
)

// UserMessage builds the user half of the adjudication exchange. The body
// passed here may already be truncated by the caller. The statistical hint
// is framed as auxiliary context so the rubric evaluation keeps authority.
func UserMessage(body, subject string, hint *StatisticalPrediction) string {
	var b strings.Builder

	b.WriteString("Email body:\n")
	b.WriteString(body)
	b.WriteString("\n")
	if subject != "" {
		fmt.Fprintf(&b, "\nSubject: %s\n", subject)
	}
	if hint != nil {
		fmt.Fprintf(&b,
			"\nAn auxiliary machine-learning model scored the subject line as potentially %s, with a phishing probability of %.2f%%. %s Treat this as supplementary context only; your rubric evaluation takes precedence.\n",
			hint.Label, hint.Confidence, hint.Advisory)
	}
	b.WriteString("\nAnalyze this email.")

	return b.String()
}
