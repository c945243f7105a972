package llm

import (
	"fmt"
	"os"
)

// APIKeyEnvVar is the environment variable holding the Gemini API key.
const APIKeyEnvVar = "GEMINI_API_KEY"

// NewFromEnv creates a Gemini provider from the GEMINI_API_KEY
// environment variable, optionally wrapped with a rate limiter when
// rpm > 0.
func NewFromEnv(rpm int) (Provider, error) {
	apiKey := os.Getenv(APIKeyEnvVar)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable is not set", APIKeyEnvVar)
	}

	var p Provider = NewGeminiProvider(apiKey)
	if rpm > 0 {
		p = NewRateLimitedProvider(p, rpm)
	}
	return p, nil
}

// Configured reports whether the backend credential is present without
// constructing a provider.
func Configured() bool {
	return os.Getenv(APIKeyEnvVar) != ""
}
