package memory

import (
	"context"
	"sync"

	"github.com/oakline-labs/deskmate/internal/core/domain"
	"github.com/oakline-labs/deskmate/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Used in tests and for ephemeral runs without a data directory.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		collections: make(map[string]map[string]domain.Document),
	}
}

// Put stores or overwrites a document.
func (s *DocumentStore) Put(_ context.Context, doc domain.Document) error {
	if doc.ID == "" || doc.Collection == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	coll, ok := s.collections[doc.Collection]
	if !ok {
		coll = make(map[string]domain.Document)
		s.collections[doc.Collection] = coll
	}
	if prev, exists := coll[doc.ID]; exists {
		doc.CreatedAt = prev.CreatedAt
	}
	coll[doc.ID] = doc
	return nil
}

// Get retrieves a document by collection and id.
func (s *DocumentStore) Get(_ context.Context, collection, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// List returns every document in the collection, in map order.
func (s *DocumentStore) List(_ context.Context, collection string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Document
	for id := range s.collections[collection] {
		result = append(result, s.collections[collection][id])
	}
	return result, nil
}

// Count returns the number of documents in the collection.
func (s *DocumentStore) Count(_ context.Context, collection string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection]), nil
}

// Delete removes a document. Absent ids are not an error.
func (s *DocumentStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections[collection], id)
	return nil
}

// Close releases nothing; present for interface parity with SQLite.
func (s *DocumentStore) Close() error {
	return nil
}
