package profile

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestContextBlockContainsCoreSections(t *testing.T) {
	block := Default().ContextBlock()

	for _, want := range []string{
		"Aravind V H",
		"PROFESSIONAL SUMMARY:",
		"TECHNICAL SKILLS:",
		"PROJECTS:",
		"1. Eduvocate",
		"CONTACT:",
		"- Email: aravindhari1718@gmail.com",
		"Keep responses SHORT (2-3 sentences max)",
	} {
		if !strings.Contains(block, want) {
			t.Errorf("context block missing %q", want)
		}
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Name != "Aravind V H" {
		t.Errorf("name = %q, want default", p.Name)
	}
}

func TestLoadOverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yml")
	data := "name: Test Person\ntitle: Engineer\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Name != "Test Person" {
		t.Errorf("name = %q, want override", p.Name)
	}
	// Untouched fields keep defaults.
	if p.Contact.Email == "" {
		t.Error("contact email should keep default value")
	}
}

func TestProfileRoutes(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, Default())

	for _, path := range []string{"/api/profile", "/api/projects", "/api/research"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != 200 {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("GET %s content type = %q", path, ct)
		}
	}
}
