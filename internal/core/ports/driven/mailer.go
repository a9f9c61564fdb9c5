package driven

import "context"

// Mailer dispatches a single plain-text notification.
// Failures are reported per call; the caller decides whether to continue.
type Mailer interface {
	// Send delivers one message. to and body are always non-empty when
	// called from the core.
	Send(ctx context.Context, to, subject, body string) error
}
