package core

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/mikey/phish-triage/internal/whitelist"
	"go.uber.org/zap"
)

// TriageService is the core service for phishing analysis
type TriageService struct {
	adjudicator  Adjudicator
	scorer       SubjectScorer
	cache        VerdictCache
	whitelist    *whitelist.Checker
	logger       *zap.Logger
	cacheEnabled bool
	cacheTTL     time.Duration
	timeout      time.Duration
	maxAttempts  int
	retryBackoff time.Duration
}

// NewTriageService creates a new triage service. scorer may be nil when no
// classifier artifacts are configured; requests carrying a subject will
// then fail with an ArtifactLoadError rather than silently skipping the
// statistical hint.
func NewTriageService(
	adjudicator Adjudicator,
	scorer SubjectScorer,
	cache VerdictCache,
	wl *whitelist.Checker,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
	timeout time.Duration,
	maxAttempts int,
	retryBackoff time.Duration,
) *TriageService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &TriageService{
		adjudicator:  adjudicator,
		scorer:       scorer,
		cache:        cache,
		whitelist:    wl,
		logger:       logger,
		cacheEnabled: cacheEnabled,
		cacheTTL:     cacheTTL,
		timeout:      timeout,
		maxAttempts:  maxAttempts,
		retryBackoff: retryBackoff,
	}
}

// Analyze runs the two-stage pipeline for a single email
func (s *TriageService) Analyze(ctx context.Context, req *EmailRequest) (*Verdict, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, ErrInvalidInput
	}

	// Trusted sender domains skip adjudication entirely (SMTP path only;
	// the HTTP API carries no sender address)
	if req.From != "" && s.whitelist.IsWhitelisted(req.From) {
		s.logger.Info("Skipping analysis for whitelisted domain",
			zap.String("sender", req.From),
			zap.String("action", "whitelist_bypass"))
		return &Verdict{
			Score:      0,
			Verdict:    VerdictSafe,
			Message:    "Sender domain is whitelisted",
			AnalyzedAt: time.Now(),
			ModelUsed:  "whitelist",
		}, nil
	}

	key := req.ContentHash()
	if s.cacheEnabled {
		if entry, err := s.cache.Get(ctx, key); err == nil {
			s.logger.Debug("Cache hit for content hash", zap.String("hash", key))
			return &Verdict{
				Score:      entry.Score,
				Verdict:    entry.Verdict,
				Message:    entry.Message,
				AnalyzedAt: time.Now(),
				ModelUsed:  "cache",
			}, nil
		}
	}

	// The statistical scorer only runs when a subject is present; its
	// output is folded into the prompt as auxiliary context
	var hint *StatisticalPrediction
	if req.Subject != "" {
		if s.scorer == nil {
			return nil, &ArtifactLoadError{Path: "", Err: errors.New("subject classifier is not configured")}
		}
		prediction, err := s.scorer.Predict(req.Subject)
		if err != nil {
			return nil, err
		}
		hint = prediction
		s.logger.Debug("Statistical prediction",
			zap.String("label", prediction.Label),
			zap.Float64("confidence", prediction.Confidence))
	}

	verdict, err := s.adjudicate(ctx, req, hint)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled {
		entry := &CacheEntry{
			ContentHash: key,
			Score:       verdict.Score,
			Verdict:     verdict.Verdict,
			Message:     verdict.Message,
			LastSeen:    time.Now(),
			ExpiresAt:   time.Now().Add(s.cacheTTL),
		}
		if err := s.cache.Set(ctx, entry); err != nil {
			s.logger.Error("Failed to update cache", zap.Error(err))
		}
	}

	return verdict, nil
}

// adjudicate calls the LLM with a per-attempt timeout and bounded retry.
// Only upstream failures are retried; a malformed response would come back
// identical and just burn tokens.
func (s *TriageService) adjudicate(ctx context.Context, req *EmailRequest, hint *StatisticalPrediction) (*Verdict, error) {
	backoff := s.retryBackoff
	for attempt := 1; ; attempt++ {
		callCtx := ctx
		var cancel context.CancelFunc
		if s.timeout > 0 {
			callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		}
		verdict, err := s.adjudicator.Adjudicate(callCtx, req, hint)
		if cancel != nil {
			cancel()
		}
		if err == nil {
			return verdict, nil
		}

		var upstream *UpstreamServiceError
		if !errors.As(err, &upstream) || attempt >= s.maxAttempts {
			return nil, err
		}

		sleep := backoff + time.Duration(rand.Int63n(int64(backoff)/2+1))
		s.logger.Warn("Upstream call failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", sleep),
			zap.Error(err))
		select {
		case <-time.After(sleep):
		case <-ctx.Done():
			return nil, &UpstreamServiceError{Provider: upstream.Provider, Err: ctx.Err()}
		}
		backoff *= 2
	}
}
