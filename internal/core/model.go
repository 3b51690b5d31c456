package core

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// EmailRequest represents a single email submitted for analysis
type EmailRequest struct {
	Body    string
	Subject string
	From    string
	To      []string
	Headers map[string][]string
}

// ContentHash returns a stable cache key derived from the subject and body
func (r *EmailRequest) ContentHash() string {
	h := sha256.New()
	h.Write([]byte(r.Subject))
	h.Write([]byte{0})
	h.Write([]byte(r.Body))
	return hex.EncodeToString(h.Sum(nil))
}

// StatisticalPrediction is the output of the subject-line classifier
type StatisticalPrediction struct {
	Label      string
	Confidence float64 // probability of the phishing class, 0-100, 2 decimals
	Advisory   string
}

// Verdict is the final adjudication result for an email
type Verdict struct {
	Score   int    `json:"score"`
	Verdict string `json:"verdict"`
	Message string `json:"message"`

	AnalyzedAt   time.Time `json:"-"`
	ModelUsed    string    `json:"-"`
	ProcessingID string    `json:"-"`
}

type CacheEntry struct {
	ContentHash string
	Score       int
	Verdict     string
	Message     string
	LastSeen    time.Time
	ExpiresAt   time.Time
}
