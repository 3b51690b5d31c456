package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/mikey/phish-triage/internal/core"
	"github.com/mikey/phish-triage/internal/utils"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiClient is an implementation of the Adjudicator interface using
// Google Gemini
type GeminiClient struct {
	client        *genai.Client
	model         *genai.GenerativeModel
	modelName     string
	maxBodySize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewGeminiClient creates a new Gemini adjudicator. The rubric rides as
// the model's system instruction.
func NewGeminiClient(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	systemPrompt string,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(int32(maxTokens))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	return &GeminiClient{
		client:        client,
		model:         model,
		modelName:     modelName,
		maxBodySize:   maxBodySize,
		logger:        logger,
		textProcessor: textProcessor,
	}, nil
}

// Close closes the Gemini client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Adjudicate scores an email against the rubric
func (c *GeminiClient) Adjudicate(ctx context.Context, req *core.EmailRequest, hint *core.StatisticalPrediction) (*core.Verdict, error) {
	body := c.textProcessor.ProcessText(req.Body, c.maxBodySize)
	userMessage := core.UserMessage(body, req.Subject, hint)

	resp, err := c.model.GenerateContent(ctx, genai.Text(userMessage))
	if err != nil {
		return nil, &core.UpstreamServiceError{Provider: "gemini", Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &core.UpstreamServiceError{Provider: "gemini", Err: fmt.Errorf("empty response from Gemini")}
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])

	verdict, err := core.ParseVerdict(responseText)
	if err != nil {
		return nil, err
	}

	verdict.AnalyzedAt = time.Now()
	verdict.ModelUsed = c.modelName
	// Gemini responses carry no request identifier
	verdict.ProcessingID = uuid.NewString()

	return verdict, nil
}
