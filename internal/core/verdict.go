package core

import "fmt"

// Verdict labels the adjudicator is allowed to emit
const (
	VerdictPhishing   = "Phishing"
	VerdictSuspicious = "Suspicious"
	VerdictSafeMinor  = "Safe with minor flags"
	VerdictSafe       = "Safe"
)

type scoreBand struct {
	verdict  string
	min, max int
}

// Bands mirror the score-to-verdict table in the rubric. The Safe band is
// only reachable through the rubric's override conditions.
var scoreBands = []scoreBand{
	{VerdictPhishing, 80, 100},
	{VerdictSuspicious, 60, 79},
	{VerdictSafeMinor, 30, 59},
	{VerdictSafe, 0, 29},
}

// VerdictForScore returns the verdict the rubric mandates for a score
func VerdictForScore(score int) (string, error) {
	for _, b := range scoreBands {
		if score >= b.min && score <= b.max {
			return b.verdict, nil
		}
	}
	return "", fmt.Errorf("score %d outside the 0-100 range", score)
}

// ValidateVerdict checks that the verdict label is one of the four
// literals and that the score falls in that label's band
func ValidateVerdict(v *Verdict) error {
	expected, err := VerdictForScore(v.Score)
	if err != nil {
		return err
	}
	known := false
	for _, b := range scoreBands {
		if v.Verdict == b.verdict {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown verdict %q", v.Verdict)
	}
	if v.Verdict != expected {
		return fmt.Errorf("verdict %q does not match score %d (expected %q)", v.Verdict, v.Score, expected)
	}
	return nil
}
