// Package llm contains the generative-language backend client used by
// the chat endpoint.
package llm

import "context"

// GenerateRequest contains the parameters for a single generation call.
type GenerateRequest struct {
	Model           string
	Prompt          string
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

// Provider is a generative-language backend. Generate returns the fully
// accumulated response text; streaming transports collect all chunks
// before returning, so no partial response is ever acted upon.
type Provider interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	// Name returns the name of this provider.
	Name() string
}
