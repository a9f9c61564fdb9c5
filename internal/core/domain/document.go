package domain

import "time"

// Collection names are fixed: the store holds exactly two disjoint
// namespaces, one for product descriptions and one for archived
// customer queries.
const (
	// CollectionProducts holds the searchable product descriptions.
	CollectionProducts = "product_data"

	// CollectionQueries archives uploaded customer queries.
	// Write-only: nothing in the read path consults it.
	CollectionQueries = "customer_queries"
)

// Document is a unit of text stored in a named collection.
type Document struct {
	// ID is unique within a collection. Caller-supplied; inserting an
	// existing ID silently replaces the stored text.
	ID string

	// Collection is the namespace this document belongs to.
	Collection string

	// Text is the canonical textual representation: a one-sentence
	// product description, or the extracted full text of a PDF.
	Text string

	// CreatedAt is when the document was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the document was last overwritten.
	UpdatedAt time.Time
}

// RetrievalHit is a single nearest-neighbour match.
type RetrievalHit struct {
	// Document is the matched document.
	Document Document

	// Score is the cosine similarity of the query to the document text.
	Score float64
}
