package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oakline-labs/deskmate/internal/core/domain"
	"github.com/oakline-labs/deskmate/internal/core/ports/driven"
	"github.com/oakline-labs/deskmate/internal/core/ports/driving"
	"github.com/oakline-labs/deskmate/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService normalises uploads into stored documents and keeps the
// product index fresh.
type IngestService struct {
	store     driven.DocumentStore
	reader    driven.TableReader
	retrieval *RetrievalService
}

// NewIngestService creates an ingest service.
func NewIngestService(store driven.DocumentStore, reader driven.TableReader, retrieval *RetrievalService) *IngestService {
	return &IngestService{
		store:     store,
		reader:    reader,
		retrieval: retrieval,
	}
}

// IngestProducts parses a product dataset and upserts one document per
// valid row. A PDF collapses into a single document under a fixed id.
// Malformed rows are skipped; an unsupported kind rejects the whole
// file with nothing written.
func (s *IngestService) IngestProducts(ctx context.Context, filename string, content []byte) (*domain.IngestReport, error) {
	kind := domain.KindFromFilename(filename)
	if kind == domain.FileKindUnsupported {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, filename)
	}

	table, err := s.reader.Read(content, kind)
	if err != nil {
		return nil, err
	}

	logger.Section("ingest products")
	logger.Debug("parsed %s: %d rows, columns %v", kind, len(table.Rows), table.Columns)

	report := &domain.IngestReport{Kind: kind}
	now := time.Now().UTC()

	if kind == domain.FileKindPDF {
		if err := s.putCounted(ctx, report, domain.Document{
			ID:         domain.PDFDocumentID,
			Collection: domain.CollectionProducts,
			Text:       table.Rows[0][domain.ColumnText],
			CreatedAt:  now,
			UpdatedAt:  now,
		}); err != nil {
			return nil, err
		}
	} else {
		for i, row := range table.Rows {
			record, err := domain.ProductFromRow(row)
			if err != nil {
				logger.Warn("skipping row %d: %v", i+1, err)
				report.Skipped++
				continue
			}
			if err := s.putCounted(ctx, report, record.Document(now)); err != nil {
				return nil, err
			}
		}
	}

	if err := s.retrieval.Reindex(ctx, domain.CollectionProducts); err != nil {
		return nil, fmt.Errorf("reindexing after ingest: %w", err)
	}

	logger.Info("ingested %d, skipped %d, overwrote %d",
		report.Ingested, report.Skipped, report.Overwritten)
	return report, nil
}

// IngestQueries archives a customer-query dataset. Write-only; only
// rows with both required values are kept.
func (s *IngestService) IngestQueries(ctx context.Context, filename string, content []byte) (*domain.IngestReport, error) {
	kind := domain.KindFromFilename(filename)
	if kind == domain.FileKindUnsupported || kind == domain.FileKindPDF {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, filename)
	}

	table, err := s.reader.Read(content, kind)
	if err != nil {
		return nil, err
	}

	logger.Section("ingest queries")

	report := &domain.IngestReport{Kind: kind}
	now := time.Now().UTC()
	for i, row := range table.Rows {
		q, err := domain.CustomerQueryFromRow(row)
		if err != nil {
			logger.Warn("skipping row %d: %v", i+1, err)
			report.Skipped++
			continue
		}
		if err := s.putCounted(ctx, report, domain.Document{
			ID:         q.Email,
			Collection: domain.CollectionQueries,
			Text:       q.Text,
			CreatedAt:  now,
			UpdatedAt:  now,
		}); err != nil {
			return nil, err
		}
	}

	logger.Info("archived %d queries, skipped %d", report.Ingested, report.Skipped)
	return report, nil
}

// putCounted writes one document, tracking whether it replaced an
// existing id.
func (s *IngestService) putCounted(ctx context.Context, report *domain.IngestReport, doc domain.Document) error {
	_, err := s.store.Get(ctx, doc.Collection, doc.ID)
	switch {
	case err == nil:
		report.Overwritten++
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("checking %s: %w", doc.ID, err)
	}

	if err := s.store.Put(ctx, doc); err != nil {
		return fmt.Errorf("storing %s: %w", doc.ID, err)
	}
	report.Ingested++
	return nil
}
