// Package contact implements the contact-form endpoint: payload
// validation and transactional email dispatch over SMTP.
package contact

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Submission is the contact form payload.
type Submission struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone,omitempty"`
	ServiceType string `json:"serviceType,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Timeline    string `json:"timeline,omitempty"`
	Message     string `json:"message" validate:"required"`
}

var validate = validator.New()

// Validation failures surfaced to the caller.
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
)

// Validate checks the required fields and the email format.
func (s Submission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Email" && fe.Tag() == "email" {
				return ErrInvalidEmail
			}
		}
	}
	return ErrMissingFields
}

// MessageIDs carries the transport-assigned identifiers of the two
// emails sent per submission.
type MessageIDs struct {
	Admin string `json:"admin"`
	User  string `json:"user"`
}
