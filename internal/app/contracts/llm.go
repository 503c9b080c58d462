package contracts

import "context"

// LLMClient is the inference boundary for the booking assistant. Implementations
// return the raw generated text; intent parsing stays on the caller's side.
type LLMClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
