package openai

import (
	"context"
	"time"

	"github.com/mikey/phish-triage/internal/core"
	"github.com/mikey/phish-triage/internal/utils"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIClient is an implementation of the Adjudicator interface backed by
// an OpenAI-compatible chat-completion endpoint
type OpenAIClient struct {
	client        *openai.Client
	modelName     string
	maxTokens     int
	temperature   float32
	topP          float32
	maxBodySize   int
	systemPrompt  string
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewOpenAIClient creates a new OpenAI adjudicator. systemPrompt carries
// the full scoring rubric.
func NewOpenAIClient(
	client *openai.Client,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	systemPrompt string,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *OpenAIClient {
	return &OpenAIClient{
		client:        client,
		modelName:     modelName,
		maxTokens:     maxTokens,
		temperature:   temperature,
		topP:          topP,
		maxBodySize:   maxBodySize,
		systemPrompt:  systemPrompt,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// Adjudicate scores an email against the rubric
func (c *OpenAIClient) Adjudicate(ctx context.Context, req *core.EmailRequest, hint *core.StatisticalPrediction) (*core.Verdict, error) {
	body := c.textProcessor.ProcessText(req.Body, c.maxBodySize)
	userMessage := core.UserMessage(body, req.Subject, hint)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: c.systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userMessage,
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		TopP:        c.topP,
	})
	if err != nil {
		return nil, &core.UpstreamServiceError{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &core.UpstreamServiceError{Provider: "openai", Err: errEmptyResponse}
	}

	verdict, err := core.ParseVerdict(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	verdict.AnalyzedAt = time.Now()
	verdict.ModelUsed = c.modelName
	verdict.ProcessingID = resp.ID

	return verdict, nil
}
