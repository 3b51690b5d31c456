package factory

import (
	"fmt"

	"github.com/mikey/phish-triage/internal/classifier"
	"github.com/mikey/phish-triage/internal/config"
	"github.com/mikey/phish-triage/internal/core"
	"go.uber.org/zap"
)

// ScorerFactory creates subject scorers from persisted training artifacts
type ScorerFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewScorerFactory creates a new scorer factory
func NewScorerFactory(cfg *config.Config, logger *zap.Logger) *ScorerFactory {
	return &ScorerFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateSubjectScorer loads the vectorizer and classifier artifacts and
// returns a scorer. Returns (nil, nil) when the classifier is disabled;
// triage then runs on the adjudicator alone.
func (f *ScorerFactory) CreateSubjectScorer() (core.SubjectScorer, error) {
	classifierCfg := f.cfg.GetClassifier()
	if !classifierCfg.Enabled {
		f.logger.Info("Subject classifier disabled")
		return nil, nil
	}

	scorer, err := classifier.LoadScorer(classifierCfg.VectorizerPath, classifierCfg.ModelPath, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load classifier artifacts: %w", err)
	}

	f.logger.Info("Subject classifier loaded",
		zap.String("vectorizer_path", classifierCfg.VectorizerPath),
		zap.String("model_path", classifierCfg.ModelPath))

	return scorer, nil
}
