package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNoTransportConfigured is returned when a submission arrives while no
// notification transport is available for the active dispatch mode. It is a
// configuration error, not a send failure, and is surfaced to the caller
// immediately instead of silently swallowing the message.
var ErrNoTransportConfigured = errors.New("no notification transport configured")

// ErrDispatchFailed is returned in synchronous-debug mode when every
// configured transport failed to deliver the message.
var ErrDispatchFailed = errors.New("message dispatch failed")

// ContactRequest represents a contact form submission as received from the
// website. Binds from JSON or url-encoded form bodies.
type ContactRequest struct {
	FirstName string `json:"firstName" form:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" form:"lastName" binding:"required,min=1,max=100"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Company   string `json:"company" form:"company" binding:"omitempty,max=200"`
	Phone     string `json:"phone" form:"phone" binding:"omitempty,max=20,digits_min=7"`
	Service   string `json:"service" form:"service" binding:"required"`
	Message   string `json:"message" form:"message" binding:"required,min=10,max=2000"`
}

// ContactSubmission is the validated, immutable record built from a
// ContactRequest. It lives in memory only for the duration of dispatch.
type ContactSubmission struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// NewContactSubmission constructs a submission from an already validated
// request.
func NewContactSubmission(req *ContactRequest) *ContactSubmission {
	return &ContactSubmission{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Company:   strings.TrimSpace(req.Company),
		Phone:     strings.TrimSpace(req.Phone),
		Service:   strings.TrimSpace(req.Service),
		Message:   req.Message,
		Timestamp: time.Now().UTC(),
		Status:    "new",
	}
}

// FullName returns "First Last" for message templates and CRM task titles.
func (s *ContactSubmission) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// ContactResponse is the acknowledgment returned to the form submitter.
type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contact_id,omitempty"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact builds a submission from a validated request and
	// schedules (or, in synchronous-debug mode, awaits) its delivery.
	SubmitContact(ctx context.Context, req *ContactRequest) (*ContactSubmission, error)
}
