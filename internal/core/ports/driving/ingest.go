package driving

import (
	"context"

	"github.com/oakline-labs/deskmate/internal/core/domain"
)

// IngestService normalises heterogeneous uploads into stored documents.
type IngestService interface {
	// IngestProducts parses a product dataset (csv/xlsx/pdf) and upserts
	// one document per valid row (one document total for a PDF).
	// Malformed rows are skipped, not fatal; an unsupported kind rejects
	// the whole file with nothing written.
	IngestProducts(ctx context.Context, filename string, content []byte) (*domain.IngestReport, error)

	// IngestQueries archives a customer-query dataset (csv/xlsx) into the
	// customer_queries collection. Write-only; the read path never
	// consults it.
	IngestQueries(ctx context.Context, filename string, content []byte) (*domain.IngestReport, error)
}
