package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakline-labs/deskmate/internal/core/domain"
)

func TestRetrievalService_Reindex_EmptyCollection(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	require.NoError(t, f.retrieval.Reindex(ctx, domain.CollectionProducts))

	hits, err := f.retrieval.Nearest(ctx, domain.CollectionProducts, "anything", 1)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestRetrievalService_Nearest_ReturnsBestFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.ingest.IngestProducts(ctx, "products.csv", []byte(productCSV))
	require.NoError(t, err)

	hits, err := f.retrieval.Nearest(ctx, domain.CollectionProducts, "Bionic iPhone", 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, "Apple", hits[0].Document.ID)
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestRetrievalService_Nearest_SkipsDeletedDocuments(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.ingest.IngestProducts(ctx, "products.csv", []byte(productCSV))
	require.NoError(t, err)

	// Delete behind the index's back; the stale entry is dropped from
	// results rather than failing the query.
	require.NoError(t, f.store.Delete(ctx, domain.CollectionProducts, "Apple"))

	hits, err := f.retrieval.Nearest(ctx, domain.CollectionProducts, "Bionic iPhone", 3)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
	for _, hit := range hits {
		assert.NotEqual(t, "Apple", hit.Document.ID)
	}
}

func TestRetrievalService_Reindex_ReplacesStaleVectors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.ingest.IngestProducts(ctx, "products.csv", []byte(productCSV))
	require.NoError(t, err)

	// Second ingest with a different catalog rebuilds the index from
	// scratch.
	csv := "model,price,processor_brand,num_cores,ram_capacity,internal_memory,brand_name\n" +
		"Pixel 8,74999,Tensor,8,8,128,Google\n"
	_, err = f.ingest.IngestProducts(ctx, "products.csv", []byte(csv))
	require.NoError(t, err)

	hits, err := f.retrieval.Nearest(ctx, domain.CollectionProducts, "Tensor Pixel", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Google", hits[0].Document.ID)
}
