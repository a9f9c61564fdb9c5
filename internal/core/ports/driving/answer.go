package driving

import (
	"context"

	"github.com/oakline-labs/deskmate/internal/core/domain"
)

// AnswerService answers free-text queries from the product collection.
type AnswerService interface {
	// Ask retrieves the nearest stored product description. A miss is a
	// defined answer (NoMatchMessage), not an error. The interactive path
	// never runs the intent classifier.
	Ask(ctx context.Context, query string) (domain.Answer, error)
}

// ResponderService processes customer-query batches into dispatched
// replies.
type ResponderService interface {
	// ProcessBatch parses the upload, validates the required columns once
	// up front, then sequentially retrieves, classifies and replies to
	// each row. Invalid rows are skipped and send failures recorded; the
	// batch never aborts past column validation.
	ProcessBatch(ctx context.Context, filename string, content []byte) (*domain.BatchReport, error)
}

// CatalogService lists and maintains stored products.
type CatalogService interface {
	// Products returns the catalog in store order.
	Products(ctx context.Context) ([]domain.ProductListing, error)

	// Remove deletes one product and rebuilds the retrieval index.
	// Returns domain.ErrNotFound for an unknown id.
	Remove(ctx context.Context, id string) error
}
