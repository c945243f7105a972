package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const geminiAPIBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiProvider implements Provider against the Google generative
// language API via direct HTTP, using the streaming endpoint and
// accumulating all chunks before returning.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// GeminiOption configures a GeminiProvider.
type GeminiOption func(*GeminiProvider)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(url string) GeminiOption {
	return func(p *GeminiProvider) { p.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) GeminiOption {
	return func(p *GeminiProvider) { p.client = c }
}

// NewGeminiProvider creates a Gemini provider using the given API key.
func NewGeminiProvider(apiKey string, opts ...GeminiOption) *GeminiProvider {
	p := &GeminiProvider{
		apiKey:  apiKey,
		baseURL: geminiAPIBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
	Error      *geminiError      `json:"error,omitempty"`
}

type geminiCandidate struct {
	Content      *geminiContent `json:"content"`
	FinishReason string         `json:"finishReason"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Generate issues a single streaming generation call and returns the
// concatenation of all streamed text chunks.
func (p *GeminiProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	apiReq := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: req.Prompt}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     req.Temperature,
			TopP:            req.TopP,
			TopK:            req.TopK,
			MaxOutputTokens: req.MaxOutputTokens,
		},
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return "", fmt.Errorf("marshalling gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse&key=%s", p.baseURL, req.Model, p.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return "", &Error{Kind: classifyTransportErr(err), Model: req.Model, Err: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		return "", &Error{
			Kind:  classifyStatus(httpResp.StatusCode),
			Model: req.Model,
			Err:   fmt.Errorf("gemini returned status %d: %s", httpResp.StatusCode, apiErrorMessage(respBody)),
		}
	}

	// The stream is a finite SSE sequence of data: lines, each holding a
	// partial geminiResponse. Collect every chunk's text.
	var full strings.Builder
	scanner := bufio.NewScanner(httpResp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")

		var chunk geminiResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		if chunk.Error != nil {
			return "", &Error{
				Kind:  classifyStatus(chunk.Error.Code),
				Model: req.Model,
				Err:   fmt.Errorf("gemini API error (%s): %s", chunk.Error.Status, chunk.Error.Message),
			}
		}
		if len(chunk.Candidates) > 0 && chunk.Candidates[0].Content != nil {
			for _, part := range chunk.Candidates[0].Content.Parts {
				full.WriteString(part.Text)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", &Error{Kind: classifyTransportErr(err), Model: req.Model, Err: fmt.Errorf("reading gemini stream: %w", err)}
	}

	return full.String(), nil
}

// apiErrorMessage extracts the error message from a non-200 body, falling
// back to the raw body.
func apiErrorMessage(body []byte) string {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != nil {
		return fmt.Sprintf("%s: %s", resp.Error.Status, resp.Error.Message)
	}
	return string(body)
}

// ModelInfo describes a model available on the backend.
type ModelInfo struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	Description                string   `json:"description"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

// SupportsGeneration reports whether the model can serve generateContent
// calls.
func (m ModelInfo) SupportsGeneration() bool {
	for _, method := range m.SupportedGenerationMethods {
		if method == "generateContent" {
			return true
		}
	}
	return false
}

// ShortName returns the model name without the "models/" prefix, the
// form accepted by generation requests.
func (m ModelInfo) ShortName() string {
	return strings.TrimPrefix(m.Name, "models/")
}

// ListModels queries the backend for the models available to this API key.
func (p *GeminiProvider) ListModels(ctx context.Context) ([]ModelInfo, error) {
	url := fmt.Sprintf("%s/models?key=%s", p.baseURL, p.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating list models request: %w", err)
	}

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, &Error{Kind: classifyTransportErr(err), Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading list models response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, &Error{
			Kind: classifyStatus(httpResp.StatusCode),
			Err:  fmt.Errorf("gemini returned status %d: %s", httpResp.StatusCode, apiErrorMessage(respBody)),
		}
	}

	var parsed struct {
		Models []ModelInfo `json:"models"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshalling list models response: %w", err)
	}
	return parsed.Models, nil
}
