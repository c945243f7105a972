package chat

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aravindvh/portfolio-api/internal/classify"
	"github.com/aravindvh/portfolio-api/internal/llm"
	"github.com/aravindvh/portfolio-api/internal/profile"
)

// maxHistoryTurns caps the caller-supplied history before it reaches
// classification and prompt construction.
const maxHistoryTurns = 10

// Service handles chat requests: classify, build prompt, run the model
// fallback, validate. It holds no per-request state.
type Service struct {
	provider     llm.Provider // nil when the backend credential is absent
	models       []string
	prompts      *PromptBuilder
	contactEmail string
	contactPhone string
}

// NewService creates the chat service. provider may be nil, in which
// case every chat request reports the service as not configured.
func NewService(provider llm.Provider, models []string, prof *profile.Profile) *Service {
	if len(models) == 0 {
		models = DefaultModels
	}
	return &Service{
		provider:     provider,
		models:       models,
		prompts:      NewPromptBuilder(prof),
		contactEmail: prof.Contact.Email,
		contactPhone: prof.Contact.Phone,
	}
}

// Models returns the fallback model list in attempt order.
func (s *Service) Models() []string { return s.models }

// Configured reports whether a backend provider is available.
func (s *Service) Configured() bool { return s.provider != nil }

// RegisterRoutes mounts the chat endpoints on the given router.
func RegisterRoutes(r chi.Router, s *Service) {
	r.Route("/api/chat", func(r chi.Router) {
		r.Post("/", s.handleChat)
		r.Get("/", s.handleStatus)
		r.Options("/", s.handleOptions)
	})
}

type chatRequest struct {
	Message             string `json:"message"`
	ConversationHistory []Turn `json:"conversationHistory"`
}

type classificationView struct {
	Category           *string               `json:"category"`
	Confidence         int                   `json:"confidence"`
	ResponseType       classify.ResponseType `json:"responseType"`
	IsPortfolioRelated bool                  `json:"isPortfolioRelated"`
}

type chatResponse struct {
	Success        bool                `json:"success"`
	Message        string              `json:"message"`
	Model          string              `json:"model,omitempty"`
	Classification *classificationView `json:"classification,omitempty"`
	Error          string              `json:"error,omitempty"`
	Timestamp      string              `json:"timestamp"`
}

func (s *Service) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeFailure(w, http.StatusBadRequest, "Invalid request body", "malformed JSON", "")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, chatResponse{
			Success:   false,
			Message:   "Message is required",
			Error:     "empty message",
			Timestamp: timestamp(),
		})
		return
	}

	if s.provider == nil {
		log.Print("chat: backend API key not configured")
		writeJSON(w, http.StatusInternalServerError, chatResponse{
			Success:   false,
			Message:   "AI service is not properly configured.",
			Error:     "missing API key",
			Timestamp: timestamp(),
		})
		return
	}

	history := req.ConversationHistory
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	cls := classify.Classify(req.Message)
	log.Printf("chat: classified query category=%q confidence=%d type=%s",
		cls.MatchedCategory, cls.ConfidenceScore, cls.ResponseType)

	prompt := s.prompts.Build(req.Message, cls, history)

	text, model, err := runFallback(r.Context(), s.provider, s.models, prompt, cls)
	if err != nil {
		log.Printf("chat: generation failed (model %s): %v", model, err)
		status, userMsg := statusForError(err)
		s.writeFailure(w, status, userMsg, err.Error(), model)
		return
	}

	var category *string
	if cls.MatchedCategory != "" {
		category = &cls.MatchedCategory
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Success: true,
		Message: text,
		Model:   model,
		Classification: &classificationView{
			Category:           category,
			Confidence:         cls.ConfidenceScore,
			ResponseType:       cls.ResponseType,
			IsPortfolioRelated: cls.IsPortfolioRelated,
		},
		Timestamp: timestamp(),
	})
}

// statusForError maps a fallback failure to an HTTP status and a
// user-facing message.
func statusForError(err error) (int, string) {
	switch llm.KindOf(err) {
	case llm.KindAuth:
		return http.StatusUnauthorized, "Configuration error. Please contact Aravind."
	case llm.KindTimeout:
		return http.StatusGatewayTimeout, "Request timed out. Please try again."
	case llm.KindNetwork:
		return http.StatusServiceUnavailable, "Network error. Please check your connection."
	case llm.KindRateLimit:
		return http.StatusTooManyRequests, "Rate limited. Please wait a moment."
	default:
		return http.StatusInternalServerError, "I'm temporarily unavailable. Please try again in a moment."
	}
}

// writeFailure sends a failure response with the human contact channel
// appended to the user-facing message.
func (s *Service) writeFailure(w http.ResponseWriter, status int, userMsg, diag, model string) {
	writeJSON(w, status, chatResponse{
		Success:   false,
		Message:   fmt.Sprintf("%s Contact: %s or %s", userMsg, s.contactEmail, s.contactPhone),
		Error:     diag,
		Model:     model,
		Timestamp: timestamp(),
	})
}

type statusResponse struct {
	Status          string   `json:"status"`
	Message         string   `json:"message"`
	Service         string   `json:"service"`
	AvailableModels []string `json:"availableModels"`
	Features        []string `json:"features"`
	Timestamp       string   `json:"timestamp"`
}

func (s *Service) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Status:          "configured",
		Message:         "Gemini chat API is running with intelligent portfolio matching",
		Service:         "Portfolio chat with query classification",
		AvailableModels: s.models,
		Features: []string{
			"Intelligent query classification",
			"Semantic relevance scoring",
			"Hybrid portfolio + general knowledge mode",
			"Response validation",
			"Confidence-based routing",
		},
		Timestamp: timestamp(),
	}
	if s.provider == nil {
		resp.Status = "missing"
		resp.Message = "Gemini API key is not configured."
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) handleOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, POST, OPTIONS")
	w.WriteHeader(http.StatusOK)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
