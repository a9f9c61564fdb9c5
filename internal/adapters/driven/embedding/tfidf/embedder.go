// Package tfidf provides a local, dependency-free embedding service.
// It builds a vocabulary from the stored corpus and produces L2-normalised
// TF-IDF vectors, so cosine similarity reduces to a dot product.
package tfidf

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/oakline-labs/deskmate/internal/core/domain"
	"github.com/oakline-labs/deskmate/internal/core/ports/driven"
)

// Ensure Embedder implements the interface.
var _ driven.Embedder = (*Embedder)(nil)

// Embedder is a TF-IDF vectoriser. The vocabulary is corpus-dependent:
// Fit must run before Embed and re-run whenever documents change.
type Embedder struct {
	mu           sync.RWMutex
	vocabulary   map[string]int
	idf          []float32
	dimensions   int
	fitted       bool
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// New creates an unfitted TF-IDF embedder.
func New() *Embedder {
	return &Embedder{
		vocabulary:   make(map[string]int),
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}\p{N}]+)*`),
		stopwords:    defaultStopwords(),
	}
}

// ModelName returns the identifier of this embedder implementation.
func (e *Embedder) ModelName() string { return "tfidf" }

// Fit builds the vocabulary and IDF values from the provided corpus.
// An empty corpus leaves the embedder unfitted; Embed then returns
// domain.ErrEmbedderUnavailable, which retrieval treats as a miss.
func (e *Embedder) Fit(_ context.Context, corpus []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.fitted = false
	e.dimensions = 0
	if len(corpus) == 0 {
		return nil
	}

	// Document frequency per term
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range e.tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return nil
	}

	// Stable vocabulary ordering
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	e.vocabulary = make(map[string]int, len(terms))
	e.idf = make([]float32, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		e.vocabulary[term] = i
		// Smoothed IDF
		e.idf[i] = float32(math.Log((1+n)/(1+float64(df[term]))) + 1.0)
	}
	e.dimensions = len(terms)
	e.fitted = true
	return nil
}

// Embed computes the TF-IDF embedding for the given text.
func (e *Embedder) Embed(_ context.Context, text string) ([]float32, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.fitted {
		return nil, domain.ErrEmbedderUnavailable
	}

	vec := make([]float32, e.dimensions)
	tf := make(map[int]int)
	total := 0
	for _, tok := range e.tokenize(text) {
		if idx, ok := e.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}
	for idx, count := range tf {
		tfv := float32(count) / float32(total)
		vec[idx] = tfv * e.idf[idx]
	}

	// L2 normalise so cosine similarity is a plain dot product
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
	}
	return vec, nil
}

// Dimensions returns the vocabulary size of the fitted embedder.
func (e *Embedder) Dimensions() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dimensions
}

func (e *Embedder) tokenize(text string) []string {
	raw := e.tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := e.stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "this", "that",
		"these", "those", "from", "up", "down", "over", "under", "than",
		"so", "such", "into", "about", "between", "through", "during",
		"before", "after", "too", "very", "can", "will", "just", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
