package config

import "time"

// LLMConfig represents the configuration for the LLM provider
type LLMConfig struct {
	Provider string
}

// OpenAIConfig represents the configuration for an OpenAI-compatible endpoint
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// ClassifierConfig represents the configuration for the statistical scorer
type ClassifierConfig struct {
	Enabled        bool
	VectorizerPath string
	ModelPath      string
}

// TriageConfig represents the orchestration knobs of the core service
type TriageConfig struct {
	Timeout            time.Duration
	MaxAttempts        int
	RetryBackoff       time.Duration
	WhitelistedDomains []string
}

// GetLLM returns the LLM configuration
func (c *Config) GetLLM() LLMConfig {
	return LLMConfig{
		Provider: c.GetString("llm.provider"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:      c.GetString("openai.api_key"),
		BaseURL:     c.GetString("openai.base_url"),
		ModelName:   c.GetString("openai.model_name"),
		MaxTokens:   c.GetInt("openai.max_tokens"),
		Temperature: float32(c.GetFloat64("openai.temperature")),
		TopP:        float32(c.GetFloat64("openai.top_p")),
		MaxBodySize: c.GetInt("openai.max_body_size"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
		TopP:        float32(c.GetFloat64("gemini.top_p")),
		MaxBodySize: c.GetInt("gemini.max_body_size"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
		TopP:        float32(c.GetFloat64("bedrock.top_p")),
		MaxBodySize: c.GetInt("bedrock.max_body_size"),
	}
}

// GetClassifier returns the statistical scorer configuration
func (c *Config) GetClassifier() ClassifierConfig {
	return ClassifierConfig{
		Enabled:        c.GetBool("classifier.enabled"),
		VectorizerPath: c.GetString("classifier.vectorizer_path"),
		ModelPath:      c.GetString("classifier.model_path"),
	}
}

// GetTriage returns the core service configuration
func (c *Config) GetTriage() (TriageConfig, error) {
	timeout, err := c.GetDuration("triage.timeout")
	if err != nil {
		return TriageConfig{}, err
	}
	backoff, err := c.GetDuration("triage.retry_backoff")
	if err != nil {
		return TriageConfig{}, err
	}
	return TriageConfig{
		Timeout:            timeout,
		MaxAttempts:        c.GetInt("triage.max_attempts"),
		RetryBackoff:       backoff,
		WhitelistedDomains: c.GetStringSlice("triage.whitelisted_domains"),
	}, nil
}
