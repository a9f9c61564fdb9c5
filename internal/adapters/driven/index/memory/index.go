// Package memory provides an in-memory vector index with brute-force
// cosine similarity search. The catalog is small enough that a linear
// scan beats any approximate structure.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/oakline-labs/deskmate/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index holds normalised document vectors keyed by document id.
type Index struct {
	mu         sync.RWMutex
	dimensions int
	vectors    map[string][]float32
}

// New creates an empty index. Reset must run before Add.
func New() *Index {
	return &Index{vectors: make(map[string][]float32)}
}

// Reset clears the index and fixes the vector dimensionality.
func (i *Index) Reset(dimensions int) error {
	if dimensions < 0 {
		return fmt.Errorf("invalid dimensions %d", dimensions)
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.dimensions = dimensions
	i.vectors = make(map[string][]float32)
	return nil
}

// Add inserts a vector, replacing any previous vector under that id.
func (i *Index) Add(_ context.Context, documentID string, embedding []float32) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if len(embedding) != i.dimensions {
		return fmt.Errorf("dimension mismatch: got %d, index has %d", len(embedding), i.dimensions)
	}
	vec := make([]float32, len(embedding))
	copy(vec, embedding)
	i.vectors[documentID] = vec
	return nil
}

// Search returns the k most similar documents, best first.
// An empty index yields an empty result, never an error.
func (i *Index) Search(_ context.Context, query []float32, k int) ([]driven.VectorHit, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if len(i.vectors) == 0 || k <= 0 {
		return nil, nil
	}
	if len(query) != i.dimensions {
		return nil, fmt.Errorf("dimension mismatch: got %d, index has %d", len(query), i.dimensions)
	}

	hits := make([]driven.VectorHit, 0, len(i.vectors))
	for id, vec := range i.vectors {
		hits = append(hits, driven.VectorHit{
			DocumentID: id,
			Similarity: dot(query, vec),
		})
	}

	sort.Slice(hits, func(a, b int) bool {
		if hits[a].Similarity != hits[b].Similarity {
			return hits[a].Similarity > hits[b].Similarity
		}
		return hits[a].DocumentID < hits[b].DocumentID
	})

	if k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}

// Len returns the number of indexed vectors.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.vectors)
}

// dot assumes both vectors are L2-normalised, so the dot product is the
// cosine similarity.
func dot(a, b []float32) float64 {
	var sum float64
	for idx := range a {
		sum += float64(a[idx]) * float64(b[idx])
	}
	return sum
}
