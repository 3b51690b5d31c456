package core

import (
	"context"
)

// Adjudicator produces the final verdict for an email, optionally informed
// by the statistical scorer's output
type Adjudicator interface {
	Adjudicate(ctx context.Context, req *EmailRequest, hint *StatisticalPrediction) (*Verdict, error)
}

// SubjectScorer maps an email subject to a statistical phishing prediction
type SubjectScorer interface {
	Predict(subject string) (*StatisticalPrediction, error)
}

// VerdictCache stores adjudication results keyed by content hash
type VerdictCache interface {
	// Get retrieves a cached entry for a content hash
	Get(ctx context.Context, contentHash string) (*CacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, contentHash string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}
