// Package console provides a dry-run mailer that prints messages
// instead of dispatching them.
package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/oakline-labs/deskmate/internal/core/ports/driven"
)

// Ensure Mailer implements the interface.
var _ driven.Mailer = (*Mailer)(nil)

// Mailer writes each message to an io.Writer, one divider per message.
type Mailer struct {
	mu  sync.Mutex
	out io.Writer
}

// New creates a console mailer writing to out.
func New(out io.Writer) *Mailer {
	return &Mailer{out: out}
}

// Send prints the message. It never fails unless the writer does.
func (m *Mailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := fmt.Fprintf(m.out,
		"--- mail (dry run) ---\nTo: %s\nSubject: %s\n\n%s\n----------------------\n",
		to, subject, body)
	if err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	return nil
}
