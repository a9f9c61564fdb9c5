package cli

import (
	"context"

	"github.com/oakline-labs/deskmate/internal/core/domain"
)

// fakeAnswerService returns a canned answer.
type fakeAnswerService struct {
	answer domain.Answer
	err    error
}

func (s *fakeAnswerService) Ask(_ context.Context, _ string) (domain.Answer, error) {
	return s.answer, s.err
}

// fakeCatalogService returns canned listings and records removals.
type fakeCatalogService struct {
	listings []domain.ProductListing
	removed  []string
	err      error
}

func (s *fakeCatalogService) Products(_ context.Context) ([]domain.ProductListing, error) {
	return s.listings, s.err
}

func (s *fakeCatalogService) Remove(_ context.Context, id string) error {
	s.removed = append(s.removed, id)
	return s.err
}

// fakeResponderService returns a canned batch report.
type fakeResponderService struct {
	report *domain.BatchReport
	err    error
}

func (s *fakeResponderService) ProcessBatch(_ context.Context, _ string, _ []byte) (*domain.BatchReport, error) {
	return s.report, s.err
}

func (s *fakeResponderService) Ask(_ context.Context, _ string) (domain.Answer, error) {
	return domain.Answer{}, nil
}

// fakeIngestService records ingest calls.
type fakeIngestService struct {
	files  []string
	report *domain.IngestReport
	err    error
}

func (s *fakeIngestService) IngestProducts(_ context.Context, filename string, _ []byte) (*domain.IngestReport, error) {
	s.files = append(s.files, filename)
	return s.report, s.err
}

func (s *fakeIngestService) IngestQueries(_ context.Context, filename string, _ []byte) (*domain.IngestReport, error) {
	s.files = append(s.files, filename)
	return s.report, s.err
}

// fakeSubmitService records submitted queries.
type fakeSubmitService struct {
	email   string
	message string
	err     error
}

func (s *fakeSubmitService) Submit(_ context.Context, email, message string) error {
	s.email = email
	s.message = message
	return s.err
}
