package llm

import (
	"context"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"

	"go.uber.org/zap"
)

func NewClient(ctx context.Context, internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.LLMClient, error) {
	switch internalConfig.LLM.Provider {
	case "gemini":
		return NewGeminiClient(ctx, internalConfig, logger)
	default:
		return NewDeepInfraClient(internalConfig, logger), nil
	}
}
