package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/oakline-labs/deskmate/internal/core/domain"
	"github.com/oakline-labs/deskmate/internal/core/ports/driven"
	"github.com/oakline-labs/deskmate/internal/core/ports/driving"
	"github.com/oakline-labs/deskmate/internal/logger"
)

// Ensure ResponderService implements the interfaces.
var (
	_ driving.AnswerService    = (*ResponderService)(nil)
	_ driving.ResponderService = (*ResponderService)(nil)
)

// DefaultSendRate limits outgoing mail to avoid tripping provider
// throttles on large batches.
var DefaultSendRate = rate.Limit(1) // one message per second

// ResponderService answers interactive queries and processes
// customer-query batches into dispatched replies.
type ResponderService struct {
	retrieval *RetrievalService
	reader    driven.TableReader
	mailer    driven.Mailer
	limiter   *rate.Limiter
}

// NewResponderService creates a responder. sendRate bounds outgoing
// mail; zero or negative falls back to DefaultSendRate.
func NewResponderService(retrieval *RetrievalService, reader driven.TableReader, mailer driven.Mailer, sendRate rate.Limit) *ResponderService {
	if sendRate <= 0 {
		sendRate = DefaultSendRate
	}
	return &ResponderService{
		retrieval: retrieval,
		reader:    reader,
		mailer:    mailer,
		limiter:   rate.NewLimiter(sendRate, 1),
	}
}

// Ask retrieves the nearest stored product description. A miss is a
// defined answer, not an error.
func (s *ResponderService) Ask(ctx context.Context, query string) (domain.Answer, error) {
	if query == "" {
		return domain.Answer{}, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}

	hits, err := s.retrieval.Nearest(ctx, domain.CollectionProducts, query, 1)
	if err != nil {
		return domain.Answer{}, err
	}
	if len(hits) == 0 {
		return domain.Answer{Text: domain.NoMatchMessage}, nil
	}

	hit := hits[0]
	return domain.Answer{
		Text:       hit.Document.Text,
		DocumentID: hit.Document.ID,
		Score:      hit.Score,
		Found:      true,
	}, nil
}

// ProcessBatch parses the upload, validates required columns once up
// front, then sequentially retrieves, classifies and replies to each
// row. Invalid rows are skipped and send failures recorded; past column
// validation the batch never aborts.
func (s *ResponderService) ProcessBatch(ctx context.Context, filename string, content []byte) (*domain.BatchReport, error) {
	kind := domain.KindFromFilename(filename)
	if kind == domain.FileKindUnsupported || kind == domain.FileKindPDF {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, filename)
	}

	table, err := s.reader.Read(content, kind)
	if err != nil {
		return nil, err
	}
	if !domain.HasQueryColumns(table) {
		return nil, fmt.Errorf("%w: need %q and %q", domain.ErrMissingColumns,
			domain.ColumnCustomerEmail, domain.ColumnQuery)
	}

	report := &domain.BatchReport{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	logger.Section("batch " + report.ID)

	for i, row := range table.Rows {
		outcome := s.processRow(ctx, i+1, row)
		report.Rows = append(report.Rows, outcome)
		switch outcome.Status {
		case domain.RowSent:
			report.Sent++
		case domain.RowSkipped:
			report.Skipped++
		case domain.RowFailed:
			report.Failed++
		}
	}

	logger.Info("batch %s: %d sent, %d skipped, %d failed",
		report.ID, report.Sent, report.Skipped, report.Failed)
	return report, nil
}

// processRow handles one customer-query row end to end.
func (s *ResponderService) processRow(ctx context.Context, line int, row domain.Row) domain.RowOutcome {
	q, err := domain.CustomerQueryFromRow(row)
	if err != nil {
		logger.Warn("row %d skipped: %v", line, err)
		return domain.RowOutcome{
			Line:   line,
			Email:  row[domain.ColumnCustomerEmail],
			Status: domain.RowSkipped,
			Err:    err.Error(),
		}
	}

	intent := domain.ClassifyIntent(q.Text)
	tmpl := domain.TemplateFor(intent)

	var retrieved string
	hits, err := s.retrieval.Nearest(ctx, domain.CollectionProducts, q.Text, 1)
	if err != nil {
		// Retrieval trouble degrades to the template fallback rather
		// than dropping the reply.
		logger.Warn("row %d retrieval failed: %v", line, err)
	} else if len(hits) > 0 {
		retrieved = hits[0].Document.Text
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return domain.RowOutcome{
			Line: line, Email: q.Email, Intent: intent,
			Status: domain.RowFailed, Err: err.Error(),
		}
	}

	if err := s.mailer.Send(ctx, q.Email, tmpl.Subject, tmpl.Render(retrieved)); err != nil {
		logger.Warn("row %d send to %s failed: %v", line, q.Email, err)
		return domain.RowOutcome{
			Line: line, Email: q.Email, Intent: intent,
			Status: domain.RowFailed, Err: err.Error(),
		}
	}

	logger.Debug("row %d replied to %s (intent=%s)", line, q.Email, intent)
	return domain.RowOutcome{
		Line: line, Email: q.Email, Intent: intent, Status: domain.RowSent,
	}
}
