package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aravindvh/portfolio-api/internal/classify"
	"github.com/aravindvh/portfolio-api/internal/llm"
)

// DefaultModels is the fallback model list, ordered by speed.
var DefaultModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-flash-latest",
	"gemini-pro-latest",
}

// Generation sampling parameters shared by every attempt.
const (
	topP            = 0.9
	topK            = 40
	maxOutputTokens = 500

	tempGeneral   = 0.7
	tempPortfolio = 0.6
)

// ExhaustedError reports that every fallback model failed, carrying the
// last failure for diagnostics.
type ExhaustedError struct {
	LastModel  string
	LastReason string
	LastErr    error
}

func (e *ExhaustedError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("no model could satisfy the request (last: %s: %v)", e.LastModel, e.LastErr)
	}
	return fmt.Sprintf("no model could satisfy the request (last: %s: %s)", e.LastModel, e.LastReason)
}

func (e *ExhaustedError) Unwrap() error { return e.LastErr }

// runFallback tries each model in order until one produces a validated
// response. Attempts are strictly sequential; a fatal (auth) error
// aborts the loop immediately. It returns the accepted text and the
// model that produced it.
func runFallback(ctx context.Context, provider llm.Provider, models []string, prompt string, cls classify.Result) (string, string, error) {
	temperature := tempPortfolio
	if cls.ResponseType == classify.GeneralKnowledge {
		temperature = tempGeneral
	}

	var last ExhaustedError

	for _, model := range models {
		last.LastModel = model

		text, err := provider.Generate(ctx, llm.GenerateRequest{
			Model:           model,
			Prompt:          prompt,
			Temperature:     temperature,
			TopP:            topP,
			TopK:            topK,
			MaxOutputTokens: maxOutputTokens,
		})
		if err != nil {
			if llm.KindOf(err).Fatal() {
				return "", model, err
			}
			log.Printf("chat: model %s failed: %v", model, err)
			last.LastErr = err
			last.LastReason = ""
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			log.Printf("chat: model %s returned empty response", model)
			last.LastErr = nil
			last.LastReason = "empty response"
			continue
		}

		outcome := ValidateResponse(text, cls)
		if !outcome.Valid && outcome.ShouldRetry {
			log.Printf("chat: model %s response rejected: %s", model, outcome.Reason)
			last.LastErr = nil
			last.LastReason = outcome.Reason
			continue
		}

		if outcome.Trimmed != "" {
			return outcome.Trimmed, model, nil
		}
		return text, model, nil
	}

	return "", last.LastModel, &last
}
