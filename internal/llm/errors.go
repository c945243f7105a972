package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind classifies a backend failure so callers can decide between
// advancing to the next fallback model and aborting outright, without
// matching on error message substrings.
type Kind int

const (
	// KindBackend is any backend-side failure not covered below.
	KindBackend Kind = iota
	// KindAuth is an authentication or API-key problem. Fatal: retrying
	// another model with the same credential cannot succeed.
	KindAuth
	// KindRateLimit is a quota or rate-limit rejection.
	KindRateLimit
	// KindTimeout is a deadline expiry on the call.
	KindTimeout
	// KindNetwork is a transport-level failure reaching the backend.
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindRateLimit:
		return "rate_limit"
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	default:
		return "backend"
	}
}

// Fatal reports whether the failure should abort the whole fallback
// sequence instead of advancing to the next model.
func (k Kind) Fatal() bool { return k == KindAuth }

// Error is a classified backend failure.
type Error struct {
	Kind  Kind
	Model string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm %s error (model %s): %v", e.Kind, e.Model, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or KindBackend if err carries no
// classification.
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindBackend
}

// classifyTransportErr maps a transport-level error from the HTTP client
// to a Kind.
func classifyTransportErr(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindNetwork
}

// classifyStatus maps an HTTP response status from the backend to a Kind.
func classifyStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 429:
		return KindRateLimit
	case status == 504 || status == 408:
		return KindTimeout
	default:
		return KindBackend
	}
}
