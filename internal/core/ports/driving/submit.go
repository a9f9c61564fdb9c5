package driving

import "context"

// SubmitService forwards a user's free-form message to the operator.
type SubmitService interface {
	// Submit mails the message to the configured operator address, with
	// the user's email embedded in the body for a manual reply.
	Submit(ctx context.Context, email, message string) error
}
