package core

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
)

// Models frequently wrap their JSON in a fenced code block, optionally
// labelled "json". Only the fenced content counts when a fence is present.
var fenceRegex = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")

// rawVerdict tolerates models that emit the score as a JSON float
type rawVerdict struct {
	Score   *float64 `json:"score"`
	Verdict string   `json:"verdict"`
	Message string   `json:"message"`
}

// ExtractPayload strips surrounding whitespace and, if the response wraps
// its payload in a fenced code block, returns only the fenced content
func ExtractPayload(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if m := fenceRegex.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}
	return trimmed
}

// ParseVerdict turns a free-text model response into a validated Verdict.
// Any failure yields a ResponseFormatError carrying the original text.
func ParseVerdict(raw string) (*Verdict, error) {
	payload := ExtractPayload(raw)

	var rv rawVerdict
	if err := json.Unmarshal([]byte(payload), &rv); err != nil {
		// Some models pad the object with prose; retry on the outermost
		// brace-delimited region before giving up.
		start := strings.IndexByte(payload, '{')
		end := strings.LastIndexByte(payload, '}')
		if start < 0 || end <= start {
			return nil, &ResponseFormatError{Raw: raw, Err: err}
		}
		if err2 := json.Unmarshal([]byte(payload[start:end+1]), &rv); err2 != nil {
			return nil, &ResponseFormatError{Raw: raw, Err: err2}
		}
	}

	if rv.Score == nil {
		return nil, &ResponseFormatError{Raw: raw, Err: errMissingScore}
	}

	v := &Verdict{
		Score:   int(math.Round(*rv.Score)),
		Verdict: rv.Verdict,
		Message: rv.Message,
	}
	if err := ValidateVerdict(v); err != nil {
		return nil, &ResponseFormatError{Raw: raw, Err: err}
	}
	return v, nil
}
