package driven

import "context"

// Embedder generates vector embeddings from text.
//
// The default implementation is a local TF-IDF vectoriser whose
// vocabulary depends on the corpus, so Fit must be called before Embed
// and re-called whenever the corpus changes. Remote implementations
// (Ollama) have a fixed model and treat Fit as a no-op.
type Embedder interface {
	// Fit prepares the embedder for the given corpus.
	Fit(ctx context.Context, corpus []string) error

	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string
}
