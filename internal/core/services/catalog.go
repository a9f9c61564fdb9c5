package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/oakline-labs/deskmate/internal/core/domain"
	"github.com/oakline-labs/deskmate/internal/core/ports/driven"
	"github.com/oakline-labs/deskmate/internal/core/ports/driving"
	"github.com/oakline-labs/deskmate/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService lists and maintains stored products.
type CatalogService struct {
	store     driven.DocumentStore
	retrieval *RetrievalService
}

// NewCatalogService creates a catalog service.
func NewCatalogService(store driven.DocumentStore, retrieval *RetrievalService) *CatalogService {
	return &CatalogService{store: store, retrieval: retrieval}
}

// Products returns the catalog sorted by id for stable output.
func (s *CatalogService) Products(ctx context.Context) ([]domain.ProductListing, error) {
	docs, err := s.store.List(ctx, domain.CollectionProducts)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	listings := make([]domain.ProductListing, len(docs))
	for i, doc := range docs {
		listings[i] = domain.ListingFromDocument(doc)
	}
	sort.Slice(listings, func(a, b int) bool {
		return listings[a].ID < listings[b].ID
	})
	return listings, nil
}

// Remove deletes one product and rebuilds the index so retrieval stops
// returning it.
func (s *CatalogService) Remove(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, domain.CollectionProducts, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		return fmt.Errorf("checking %s: %w", id, err)
	}

	if err := s.store.Delete(ctx, domain.CollectionProducts, id); err != nil {
		return fmt.Errorf("deleting %s: %w", id, err)
	}
	if err := s.retrieval.Reindex(ctx, domain.CollectionProducts); err != nil {
		return fmt.Errorf("reindexing after delete: %w", err)
	}

	logger.Info("removed product %s", id)
	return nil
}
