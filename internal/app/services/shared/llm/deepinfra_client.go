package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type deepInfraClient struct {
	apiKey     string
	baseUrl    string
	model      string
	httpClient *http.Client
	Log        *zap.Logger
}

// NewDeepInfraClient talks to DeepInfra's OpenAI-compatible chat completions
// endpoint.
func NewDeepInfraClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.LLMClient {
	return &deepInfraClient{
		apiKey:  internalConfig.LLM.ApiKey,
		baseUrl: internalConfig.LLM.BaseUrl,
		model:   internalConfig.LLM.Model,
		httpClient: &http.Client{
			Timeout: time.Duration(internalConfig.LLM.TimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *deepInfraClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	request := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.2,
		MaxTokens:   400,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseUrl, bytes.NewReader(body))
	if err != nil {
		return "", exceptions.ErrUpstreamRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpRequest.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", exceptions.ErrUpstreamTimeout(err)
		}
		return "", exceptions.ErrUpstreamRequest(err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		responseBody, _ := io.ReadAll(httpResponse.Body)
		c.Log.Error("deepInfraClient.GenerateText upstream returned non-200",
			zap.Int("status_code", httpResponse.StatusCode),
			zap.ByteString("body", responseBody),
		)
		return "", exceptions.ErrUpstreamRequest(fmt.Errorf("status %d", httpResponse.StatusCode))
	}

	var response chatResponse
	if err := json.NewDecoder(httpResponse.Body).Decode(&response); err != nil {
		return "", exceptions.ErrUpstreamRequest(err)
	}

	if len(response.Choices) == 0 {
		return "", nil
	}
	return response.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
