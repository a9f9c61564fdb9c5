package driven

import (
	"context"

	"github.com/oakline-labs/deskmate/internal/core/domain"
)

// DocumentStore persists documents in named collections.
// Backed by SQLite; a memory implementation exists for tests and
// ephemeral runs.
type DocumentStore interface {
	// Put stores or silently overwrites the document with the same
	// (collection, id). Overwrite is intentional: re-uploading a dataset
	// replaces content.
	Put(ctx context.Context, doc domain.Document) error

	// Get retrieves a document by collection and id.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, collection, id string) (*domain.Document, error)

	// List returns every document in the collection. Order is
	// implementation-defined and not stable across calls.
	List(ctx context.Context, collection string) ([]domain.Document, error)

	// Count returns the number of documents in the collection.
	Count(ctx context.Context, collection string) (int, error)

	// Delete removes a document. Deleting an absent id is not an error.
	Delete(ctx context.Context, collection, id string) error

	// Close releases the underlying storage.
	Close() error
}
