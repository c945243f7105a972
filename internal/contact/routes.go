package contact

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the contact endpoint on the given router.
func RegisterRoutes(r chi.Router, d *Dispatcher) {
	r.Post("/api/contact", handleSubmit(d))
}

type contactResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	MessageIDs *MessageIDs `json:"messageIds,omitempty"`
}

func handleSubmit(d *Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			writeJSON(w, http.StatusBadRequest, contactResponse{Success: false, Error: "invalid request body"})
			return
		}

		if err := sub.Validate(); err != nil {
			msg := "Missing required fields"
			if errors.Is(err, ErrInvalidEmail) {
				msg = "Invalid email address"
			}
			writeJSON(w, http.StatusBadRequest, contactResponse{Success: false, Error: msg})
			return
		}

		ids, err := d.Dispatch(r.Context(), sub)
		if err != nil {
			log.Printf("contact: dispatch failed: %v", err)
			msg := "Failed to send emails"
			if errors.Is(err, ErrUnavailable) {
				msg = "Email service unavailable"
			}
			writeJSON(w, http.StatusInternalServerError, contactResponse{Success: false, Error: msg})
			return
		}

		writeJSON(w, http.StatusOK, contactResponse{
			Success:    true,
			Message:    "Emails sent successfully",
			MessageIDs: &ids,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
