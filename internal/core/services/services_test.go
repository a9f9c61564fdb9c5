package services

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/time/rate"

	tfidf "github.com/oakline-labs/deskmate/internal/adapters/driven/embedding/tfidf"
	memindex "github.com/oakline-labs/deskmate/internal/adapters/driven/index/memory"
	"github.com/oakline-labs/deskmate/internal/adapters/driven/reader"
	memstore "github.com/oakline-labs/deskmate/internal/adapters/driven/storage/memory"
	"github.com/oakline-labs/deskmate/internal/core/domain"
	"github.com/oakline-labs/deskmate/internal/core/ports/driven"
)

// sentMail records one dispatched message.
type sentMail struct {
	To      string
	Subject string
	Body    string
}

// fakeMailer records sends and can fail selected recipients.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentMail
	failFor map[string]bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failFor: make(map[string]bool)}
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[to] {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// fixture wires the full service stack on in-memory adapters.
type fixture struct {
	store     *memstore.DocumentStore
	retrieval *RetrievalService
	ingest    *IngestService
	responder *ResponderService
	catalog   *CatalogService
	mailer    *fakeMailer
}

func newFixture() *fixture {
	store := memstore.NewDocumentStore()
	retrieval := NewRetrievalService(store, tfidf.New(), memindex.New())
	tables := reader.New()
	mailer := newFakeMailer()
	return &fixture{
		store:     store,
		retrieval: retrieval,
		ingest:    NewIngestService(store, tables, retrieval),
		responder: NewResponderService(retrieval, tables, mailer, rate.Inf),
		catalog:   NewCatalogService(store, retrieval),
		mailer:    mailer,
	}
}

// stubReader returns a fixed table for any kind, for paths a real file
// would be awkward to construct.
type stubReader struct {
	table *domain.Table
	err   error
}

var _ driven.TableReader = (*stubReader)(nil)

func (r *stubReader) Read(_ []byte, _ domain.FileKind) (*domain.Table, error) {
	return r.table, r.err
}

const productCSV = "model,price,processor_brand,num_cores,ram_capacity,internal_memory,brand_name\n" +
	"iPhone 11,39999,Bionic,6,4,64,Apple\n" +
	"Galaxy S21,49999,Exynos,8,8,128,Samsung\n" +
	"OnePlus 9,44999,Snapdragon,8,12,256,OnePlus\n"
