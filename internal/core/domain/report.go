package domain

import "time"

// IngestReport summarises one product upload.
type IngestReport struct {
	// Kind is the resolved upload format.
	Kind FileKind

	// Ingested is the number of documents written.
	Ingested int

	// Skipped counts rows rejected for missing required fields.
	Skipped int

	// Overwritten counts writes that replaced an existing id.
	Overwritten int
}

// Answer is the result of a single interactive query.
type Answer struct {
	// Text is the retrieved document text, or NoMatchMessage.
	Text string

	// DocumentID identifies the matched document; empty on a miss.
	DocumentID string

	// Score is the similarity of the match; zero on a miss.
	Score float64

	// Found reports whether retrieval produced a match.
	Found bool
}

// RowStatus is the outcome of one customer-query row in a batch.
type RowStatus string

const (
	// RowSent means a reply was dispatched.
	RowSent RowStatus = "sent"

	// RowSkipped means the row failed validation and no send was
	// attempted.
	RowSkipped RowStatus = "skipped"

	// RowFailed means the send was attempted and the sender reported an
	// error. The batch continues.
	RowFailed RowStatus = "failed"
)

// RowOutcome records what happened to one row.
type RowOutcome struct {
	// Line is the 1-based data row number in the upload.
	Line int

	// Email is the destination, when present.
	Email string

	// Intent is the classified intent, when the row was processed.
	Intent Intent

	// Status is the row's final disposition.
	Status RowStatus

	// Err holds the validation or send error text, when any.
	Err string
}

// BatchReport summarises one customer-query batch run.
type BatchReport struct {
	// ID identifies the run.
	ID string

	// StartedAt is when processing began.
	StartedAt time.Time

	// Rows holds per-row outcomes in upload order.
	Rows []RowOutcome

	// Sent, Skipped and Failed are counters over Rows.
	Sent    int
	Skipped int
	Failed  int
}
