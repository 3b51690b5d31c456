package classifier

import (
	"math"

	"github.com/mikey/phish-triage/internal/core"
	"go.uber.org/zap"
)

// LabelPhishing is pinned as the positive class whenever the training
// corpus uses it; otherwise the positive class comes from the model
const LabelPhishing = "phishing"

const (
	advisoryPhishing = "Avoid clicking on suspicious links or giving personal info."
	advisoryDefault  = "Looks safe, but stay cautious."
)

// Scorer runs the pre-trained subject-line classifier. Artifacts are
// loaded once and held immutably for the process lifetime.
type Scorer struct {
	vectorizer *Vectorizer
	model      *LogisticModel
	logger     *zap.Logger
}

// NewScorer creates a scorer from already-loaded artifacts
func NewScorer(v *Vectorizer, m *LogisticModel, logger *zap.Logger) *Scorer {
	return &Scorer{
		vectorizer: v,
		model:      m,
		logger:     logger,
	}
}

// LoadScorer loads both persisted artifacts and builds a scorer
func LoadScorer(vectorizerPath, modelPath string, logger *zap.Logger) (*Scorer, error) {
	v, err := LoadVectorizer(vectorizerPath)
	if err != nil {
		return nil, err
	}
	m, err := LoadModel(modelPath)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded classifier artifacts",
		zap.String("vectorizer", vectorizerPath),
		zap.String("model", modelPath),
		zap.Int("vocabulary_size", v.Dim()))
	return NewScorer(v, m, logger), nil
}

// Predict classifies a subject line. Confidence is the probability of the
// positive (phishing-side) class specifically, as a percentage rounded to
// 2 decimals, regardless of which label wins. The positive class comes
// from the trained model, so corpora labeled with an equivalent scheme
// (e.g. spam/ham) still report a meaningful confidence.
func (s *Scorer) Predict(subject string) (*core.StatisticalPrediction, error) {
	x := s.vectorizer.Transform(subject)
	label := s.model.Predict(x)
	probs := s.model.PredictProba(x)
	positive := s.model.Classes[1]
	confidence := math.Round(probs[positive]*100*100) / 100

	advisory := advisoryDefault
	if label == positive {
		advisory = advisoryPhishing
	}

	s.logger.Debug("Subject classified",
		zap.String("label", label),
		zap.Float64("confidence", confidence))

	return &core.StatisticalPrediction{
		Label:      label,
		Confidence: confidence,
		Advisory:   advisory,
	}, nil
}
