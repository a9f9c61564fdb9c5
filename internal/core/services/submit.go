package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/oakline-labs/deskmate/internal/core/domain"
	"github.com/oakline-labs/deskmate/internal/core/ports/driven"
	"github.com/oakline-labs/deskmate/internal/core/ports/driving"
	"github.com/oakline-labs/deskmate/internal/logger"
)

// Ensure SubmitService implements the interface.
var _ driving.SubmitService = (*SubmitService)(nil)

// submitSubject is the fixed subject line for forwarded user queries.
const submitSubject = "User Query"

// SubmitService forwards user-submitted queries to the operator inbox.
type SubmitService struct {
	mailer   driven.Mailer
	operator string
}

// NewSubmitService creates a submit service. operator is the address
// user queries are forwarded to.
func NewSubmitService(mailer driven.Mailer, operator string) *SubmitService {
	return &SubmitService{mailer: mailer, operator: operator}
}

// Submit mails the user's message to the operator. The user's email
// goes in the body, not the envelope, so the operator replies manually.
func (s *SubmitService) Submit(ctx context.Context, email, message string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email", domain.ErrMissingField)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return fmt.Errorf("%w: message", domain.ErrMissingField)
	}
	if s.operator == "" {
		return fmt.Errorf("%w: no operator address configured", domain.ErrMailerUnavailable)
	}

	body := fmt.Sprintf("From: %s\nMessage: %s", email, message)
	if err := s.mailer.Send(ctx, s.operator, submitSubject, body); err != nil {
		return fmt.Errorf("forwarding query: %w", err)
	}

	logger.Debug("forwarded query from %s to %s", email, s.operator)
	return nil
}
