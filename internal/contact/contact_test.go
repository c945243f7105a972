package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/aravindvh/portfolio-api/internal/profile"
)

// fakeTransport records calls and can be scripted to fail.
type fakeTransport struct {
	mu        sync.Mutex
	verifyErr error
	sendErr   error
	failTo    string // when set, only sends to this address fail
	verified  int
	sent      []Email
}

func (f *fakeTransport) Verify(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verified++
	return f.verifyErr
}

func (f *fakeTransport) Send(ctx context.Context, e Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil && (f.failTo == "" || f.failTo == e.To) {
		return f.sendErr
	}
	f.sent = append(f.sent, e)
	return nil
}

func (f *fakeTransport) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func validSubmission() Submission {
	return Submission{
		Name:        "Jordan Client",
		Email:       "jordan@example.com",
		ServiceType: "Web Development",
		Message:     "I would like a website built.",
	}
}

func newDispatcher(t *fakeTransport) *Dispatcher {
	return NewDispatcher(t, "admin@example.com", profile.Default())
}

// --- validation ---

func TestSubmissionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Submission)
		wantErr error
	}{
		{"valid", func(s *Submission) {}, nil},
		{"missing name", func(s *Submission) { s.Name = "" }, ErrMissingFields},
		{"missing email", func(s *Submission) { s.Email = "" }, ErrMissingFields},
		{"missing message", func(s *Submission) { s.Message = "" }, ErrMissingFields},
		{"malformed email", func(s *Submission) { s.Email = "not-an-email" }, ErrInvalidEmail},
		{"email without domain", func(s *Submission) { s.Email = "user@" }, ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)
			err := sub.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// --- dispatcher ---

func TestDispatchSendsBothEmails(t *testing.T) {
	ft := &fakeTransport{}
	d := newDispatcher(ft)

	ids, err := d.Dispatch(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if ids.Admin == "" || ids.User == "" {
		t.Error("both message IDs must be returned")
	}
	if ids.Admin == ids.User {
		t.Error("message IDs must differ")
	}
	if ft.verified != 1 {
		t.Errorf("verify calls = %d, want 1", ft.verified)
	}
	if ft.sentCount() != 2 {
		t.Fatalf("sent = %d, want 2", ft.sentCount())
	}

	var admin, user *Email
	for i := range ft.sent {
		switch ft.sent[i].To {
		case "admin@example.com":
			admin = &ft.sent[i]
		case "jordan@example.com":
			user = &ft.sent[i]
		}
	}
	if admin == nil || user == nil {
		t.Fatal("one email to the admin and one to the submitter expected")
	}
	if admin.ReplyTo != "jordan@example.com" {
		t.Errorf("admin reply-to = %q", admin.ReplyTo)
	}
	if !strings.Contains(admin.Subject, "Jordan Client") {
		t.Errorf("admin subject = %q", admin.Subject)
	}
	if !strings.Contains(admin.HTML, "I would like a website built.") {
		t.Error("admin email must carry the message body")
	}
	if !strings.Contains(user.Subject, "Thank you for reaching out") {
		t.Errorf("user subject = %q", user.Subject)
	}
	if !strings.Contains(user.HTML, "Aravind V H") {
		t.Error("user email must carry the owner signature")
	}
	if !strings.Contains(user.HTML, "Web Development") {
		t.Error("user email must echo the submission summary")
	}
}

func TestDispatchVerificationFailure(t *testing.T) {
	ft := &fakeTransport{verifyErr: errors.New("connection refused")}
	d := newDispatcher(ft)

	_, err := d.Dispatch(context.Background(), validSubmission())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
	if ft.sentCount() != 0 {
		t.Error("no email should be sent after a failed verification")
	}
}

func TestDispatchEitherSendFailingFailsAll(t *testing.T) {
	for _, failTo := range []string{"admin@example.com", "jordan@example.com"} {
		ft := &fakeTransport{sendErr: errors.New("smtp 550"), failTo: failTo}
		d := newDispatcher(ft)

		_, err := d.Dispatch(context.Background(), validSubmission())
		if err == nil {
			t.Errorf("failTo=%s: expected error when one send fails", failTo)
		}
	}
}

func TestUserTemplateDefaultsOptionalFields(t *testing.T) {
	ft := &fakeTransport{}
	d := newDispatcher(ft)

	sub := validSubmission()
	sub.ServiceType = ""
	sub.Budget = ""
	sub.Timeline = ""

	if _, err := d.Dispatch(context.Background(), sub); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	for _, e := range ft.sent {
		if e.To == "jordan@example.com" && !strings.Contains(e.HTML, "Not specified") {
			t.Error("user email must default unset optional fields")
		}
	}
}

// --- routes ---

func postContact(t *testing.T, d *Dispatcher, body string) (*httptest.ResponseRecorder, contactResponse) {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, d)

	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp contactResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return w, resp
}

func TestContactEndpointSuccess(t *testing.T) {
	ft := &fakeTransport{}
	w, resp := postContact(t, newDispatcher(ft),
		`{"name":"Jordan","email":"jordan@example.com","message":"Hello"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !resp.Success || resp.MessageIDs == nil {
		t.Errorf("response = %+v", resp)
	}
}

func TestContactEndpointMissingField(t *testing.T) {
	ft := &fakeTransport{}
	w, resp := postContact(t, newDispatcher(ft),
		`{"name":"Jordan","email":"jordan@example.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if resp.Error != "Missing required fields" {
		t.Errorf("error = %q", resp.Error)
	}
	if ft.verified != 0 {
		t.Error("no SMTP connection should be attempted on validation failure")
	}
}

func TestContactEndpointInvalidEmail(t *testing.T) {
	ft := &fakeTransport{}
	w, resp := postContact(t, newDispatcher(ft),
		`{"name":"Jordan","email":"nope","message":"Hello"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if resp.Error != "Invalid email address" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestContactEndpointUnavailable(t *testing.T) {
	ft := &fakeTransport{verifyErr: errors.New("dial tcp: refused")}
	w, resp := postContact(t, newDispatcher(ft),
		`{"name":"Jordan","email":"jordan@example.com","message":"Hello"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if resp.Error != "Email service unavailable" {
		t.Errorf("error = %q", resp.Error)
	}
}
