package factory

import (
	"fmt"

	"github.com/mikey/phish-triage/internal/adapters/bedrock"
	"github.com/mikey/phish-triage/internal/adapters/gemini"
	"github.com/mikey/phish-triage/internal/adapters/openai"
	"github.com/mikey/phish-triage/internal/config"
	"github.com/mikey/phish-triage/internal/core"
	"github.com/mikey/phish-triage/internal/rubric"
	"github.com/mikey/phish-triage/internal/utils"
	"go.uber.org/zap"
)

// LLMFactory creates adjudicator clients
type LLMFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewLLMFactory creates a new LLM factory
func NewLLMFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *LLMFactory {
	return &LLMFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateAdjudicator creates a new adjudicator based on the configuration.
// The rubric is resolved once here and shared by whichever provider is
// selected.
func (f *LLMFactory) CreateAdjudicator() (core.Adjudicator, error) {
	systemPrompt, err := rubric.Load(f.cfg.GetString("rubric.path"))
	if err != nil {
		return nil, fmt.Errorf("failed to load rubric: %w", err)
	}

	llmConfig := f.cfg.GetLLM()

	switch llmConfig.Provider {
	case "bedrock":
		factory := bedrock.NewFactory(f.cfg, f.logger, f.textProcessor, systemPrompt)
		return factory.CreateClient()
	case "gemini":
		factory := gemini.NewFactory(f.cfg, f.logger, f.textProcessor, systemPrompt)
		return factory.CreateClient()
	case "openai":
		factory := openai.NewFactory(f.cfg, f.logger, f.textProcessor, systemPrompt)
		return factory.CreateClient()
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", llmConfig.Provider)
	}
}
