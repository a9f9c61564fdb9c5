// Package services contains the core application logic, wired to
// driven ports and exposed through driving ports.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/oakline-labs/deskmate/internal/core/domain"
	"github.com/oakline-labs/deskmate/internal/core/ports/driven"
	"github.com/oakline-labs/deskmate/internal/logger"
)

// RetrievalService maintains the vector index over a collection and
// answers nearest-neighbour lookups. The index is a cache rebuilt from
// the store; the store is the only source of truth.
type RetrievalService struct {
	store    driven.DocumentStore
	embedder driven.Embedder
	index    driven.VectorIndex
}

// NewRetrievalService creates a retrieval service.
func NewRetrievalService(store driven.DocumentStore, embedder driven.Embedder, index driven.VectorIndex) *RetrievalService {
	return &RetrievalService{
		store:    store,
		embedder: embedder,
		index:    index,
	}
}

// Reindex rebuilds the vector index from the collection's documents.
// Corpus-dependent embedders refit first, so every stored vector shares
// one vocabulary. Runs at startup and after every ingest.
func (s *RetrievalService) Reindex(ctx context.Context, collection string) error {
	logger.Section("reindex " + collection)

	docs, err := s.store.List(ctx, collection)
	if err != nil {
		return fmt.Errorf("listing %s: %w", collection, err)
	}

	corpus := make([]string, len(docs))
	for i, doc := range docs {
		corpus[i] = doc.Text
	}
	if err := s.embedder.Fit(ctx, corpus); err != nil {
		return fmt.Errorf("fitting embedder: %w", err)
	}

	if err := s.index.Reset(s.embedder.Dimensions()); err != nil {
		return fmt.Errorf("resetting index: %w", err)
	}
	for _, doc := range docs {
		vec, err := s.embedder.Embed(ctx, doc.Text)
		if err != nil {
			return fmt.Errorf("embedding %s: %w", doc.ID, err)
		}
		if err := s.index.Add(ctx, doc.ID, vec); err != nil {
			return fmt.Errorf("indexing %s: %w", doc.ID, err)
		}
	}

	logger.Info("indexed %d documents from %s (model=%s, dims=%d)",
		len(docs), collection, s.embedder.ModelName(), s.embedder.Dimensions())
	return nil
}

// Nearest returns up to k documents closest to the query text, best
// first. An empty collection yields an empty slice and no error; the
// caller maps that to the no-match answer.
func (s *RetrievalService) Nearest(ctx context.Context, collection, query string, k int) ([]domain.RetrievalHit, error) {
	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrEmbedderUnavailable) {
			// Unfitted embedder means nothing was ever indexed.
			return nil, nil
		}
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	hits, err := s.index.Search(ctx, vec, k)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	results := make([]domain.RetrievalHit, 0, len(hits))
	for _, hit := range hits {
		doc, err := s.store.Get(ctx, collection, hit.DocumentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Index lagging behind a delete; skip the ghost entry.
				logger.Warn("indexed document %s missing from store", hit.DocumentID)
				continue
			}
			return nil, fmt.Errorf("loading %s: %w", hit.DocumentID, err)
		}
		results = append(results, domain.RetrievalHit{
			Document: *doc,
			Score:    hit.Similarity,
		})
	}
	return results, nil
}
