package llm

import (
	"context"
	"strings"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/pkg/exceptions"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client  *genai.Client
	modelID string
	Log     *zap.Logger
}

// NewGeminiClient is the alternative inference backend, selected with
// LLM_PROVIDER=gemini.
func NewGeminiClient(ctx context.Context, internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.LLMClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(internalConfig.LLM.GeminiApiKey))
	if err != nil {
		return nil, exceptions.ErrUpstreamRequest(err)
	}

	return &geminiClient{
		client:  client,
		modelID: internalConfig.LLM.GeminiModel,
		Log:     logger,
	}, nil
}

func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.modelID)
	model.SetTemperature(0.2)

	response, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", exceptions.ErrUpstreamTimeout(err)
		}
		return "", exceptions.ErrUpstreamRequest(err)
	}

	if len(response.Candidates) == 0 {
		return "", nil
	}
	candidate := response.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", nil
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if chunk, ok := part.(genai.Text); ok {
			text.WriteString(string(chunk))
		}
	}
	return strings.TrimSpace(text.String()), nil
}
