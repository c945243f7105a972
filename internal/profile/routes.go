package profile

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the portfolio content endpoints on the given router.
func RegisterRoutes(r chi.Router, p *Profile) {
	r.Route("/api/profile", func(r chi.Router) {
		r.Get("/", handleProfile(p))
	})
	r.Get("/api/projects", handleProjects(p))
	r.Get("/api/research", handleResearch(p))
}

func handleProfile(p *Profile) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, p)
	}
}

func handleProjects(p *Profile) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, p.Projects)
	}
}

func handleResearch(p *Profile) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, p.Research)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
