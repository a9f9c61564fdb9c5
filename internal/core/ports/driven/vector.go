package driven

import "context"

// VectorIndex provides similarity search over document embeddings.
// The index is rebuilt from the document store after every ingest; it is
// a cache, never the source of truth.
type VectorIndex interface {
	// Reset clears the index and fixes the vector dimensionality.
	Reset(dimensions int) error

	// Add inserts a vector for the given document id, replacing any
	// previous vector under that id.
	Add(ctx context.Context, documentID string, embedding []float32) error

	// Search finds the k nearest neighbours to the query vector.
	// An empty index yields an empty result, never an error.
	Search(ctx context.Context, query []float32, k int) ([]VectorHit, error)

	// Len returns the number of indexed vectors.
	Len() int
}

// VectorHit represents a similarity search result.
type VectorHit struct {
	// DocumentID is the matched document.
	DocumentID string

	// Similarity is the cosine similarity score (0-1).
	Similarity float64
}
