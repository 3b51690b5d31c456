package di

import (
	"flag"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/phish-triage/internal/config"
	"github.com/mikey/phish-triage/internal/core"
	"github.com/mikey/phish-triage/internal/factory"
	"github.com/mikey/phish-triage/internal/logging"
	"github.com/mikey/phish-triage/internal/ports"
	"github.com/mikey/phish-triage/internal/utils"
)

// CLIFlags contains all command line flags for the one-shot analyzer
type CLIFlags struct {
	// LLM provider flags
	Provider    string
	MaxTokens   int
	Temperature float64
	TopP        float64
	MaxBodySize int

	// Bedrock flags
	BedrockRegion  string
	BedrockModelID string

	// Gemini flags
	GeminiAPIKey    string
	GeminiModelName string

	// OpenAI flags
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModelName string

	// Classifier flags
	ClassifierEnabled bool
	VectorizerPath    string
	ModelPath         string

	// Rubric flags
	RubricPath string

	// Input flags
	InputFile  string
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	// LLM provider flags
	flag.StringVar(&flags.Provider, "provider", "openai", "LLM provider (openai, gemini, bedrock)")
	flag.IntVar(&flags.MaxTokens, "max-tokens", 1000, "Maximum tokens for LLM response")
	flag.Float64Var(&flags.Temperature, "temperature", 1.0, "Temperature for LLM generation")
	flag.Float64Var(&flags.TopP, "top-p", 1.0, "Top-p for LLM generation")
	flag.IntVar(&flags.MaxBodySize, "max-body-size", 8192, "Maximum email body size to send to the LLM")

	// Bedrock flags
	flag.StringVar(&flags.BedrockRegion, "bedrock-region", "us-east-1", "AWS region for Bedrock")
	flag.StringVar(&flags.BedrockModelID, "bedrock-model", "anthropic.claude-v2", "Bedrock model ID")

	// Gemini flags
	flag.StringVar(&flags.GeminiAPIKey, "gemini-api-key", "", "API key for Google Gemini")
	flag.StringVar(&flags.GeminiModelName, "gemini-model", "gemini-pro", "Gemini model name")

	// OpenAI flags
	flag.StringVar(&flags.OpenAIAPIKey, "openai-api-key", "", "API key for the OpenAI-compatible endpoint")
	flag.StringVar(&flags.OpenAIBaseURL, "openai-base-url", "https://models.github.ai/inference", "Base URL for the OpenAI-compatible endpoint")
	flag.StringVar(&flags.OpenAIModelName, "openai-model", "openai/gpt-4.1", "OpenAI model name")

	// Classifier flags
	flag.BoolVar(&flags.ClassifierEnabled, "classifier", false, "Enable the statistical subject classifier")
	flag.StringVar(&flags.VectorizerPath, "vectorizer", "./models/vectorizer.gob", "Path to the vectorizer artifact")
	flag.StringVar(&flags.ModelPath, "model", "./models/classifier.gob", "Path to the classifier artifact")

	// Rubric flags
	flag.StringVar(&flags.RubricPath, "rubric", "", "Path to a rubric file (uses the embedded rubric if empty)")

	// Input flags
	flag.StringVar(&flags.InputFile, "file", "", "Input email file (use stdin if not specified)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container
// for the one-shot analyzer
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewScorerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFrontendFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register adjudicator
	if err := container.Provide(func(f *factory.LLMFactory) (core.Adjudicator, error) {
		return f.CreateAdjudicator()
	}); err != nil {
		return nil, err
	}

	// Register subject scorer
	if err := container.Provide(func(f *factory.ScorerFactory) (core.SubjectScorer, error) {
		return f.CreateSubjectScorer()
	}); err != nil {
		return nil, err
	}

	// Register triage service with no cache and no whitelist
	if err := container.Provide(func(
		adjudicator core.Adjudicator,
		scorer core.SubjectScorer,
		logger *zap.Logger,
	) *core.TriageService {
		return core.NewTriageService(
			adjudicator,
			scorer,
			nil, // no cache for one-shot runs
			nil, // no whitelist
			logger,
			false,
			time.Duration(0),
			60*time.Second,
			1,
			time.Duration(0),
		)
	}); err != nil {
		return nil, err
	}

	// Register email frontend
	if err := container.Provide(func(f *factory.FrontendFactory) (ports.EmailFrontend, error) {
		return f.CreateEmailFrontend()
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	v.Set("server.mode", "cli")
	v.Set("cli.verbose", flags.Verbose)

	v.Set("llm.provider", flags.Provider)

	switch flags.Provider {
	case "bedrock":
		v.Set("bedrock.region", flags.BedrockRegion)
		v.Set("bedrock.model_id", flags.BedrockModelID)
		v.Set("bedrock.max_tokens", flags.MaxTokens)
		v.Set("bedrock.temperature", flags.Temperature)
		v.Set("bedrock.top_p", flags.TopP)
		v.Set("bedrock.max_body_size", flags.MaxBodySize)
	case "gemini":
		v.Set("gemini.api_key", flags.GeminiAPIKey)
		v.Set("gemini.model_name", flags.GeminiModelName)
		v.Set("gemini.max_tokens", flags.MaxTokens)
		v.Set("gemini.temperature", flags.Temperature)
		v.Set("gemini.top_p", flags.TopP)
		v.Set("gemini.max_body_size", flags.MaxBodySize)
	case "openai":
		v.Set("openai.api_key", flags.OpenAIAPIKey)
		v.Set("openai.base_url", flags.OpenAIBaseURL)
		v.Set("openai.model_name", flags.OpenAIModelName)
		v.Set("openai.max_tokens", flags.MaxTokens)
		v.Set("openai.temperature", flags.Temperature)
		v.Set("openai.top_p", flags.TopP)
		v.Set("openai.max_body_size", flags.MaxBodySize)
	}

	v.Set("rubric.path", flags.RubricPath)

	v.Set("classifier.enabled", flags.ClassifierEnabled)
	v.Set("classifier.vectorizer_path", flags.VectorizerPath)
	v.Set("classifier.model_path", flags.ModelPath)

	return config.NewFromViper(v)
}
