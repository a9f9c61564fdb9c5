package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	e := New(Config{})

	assert.Equal(t, DefaultModel, e.ModelName())
	assert.Equal(t, DefaultDimensions, e.Dimensions())
}

func TestNew_CustomConfig(t *testing.T) {
	e := New(Config{Model: "all-minilm", Dimensions: 384})

	assert.Equal(t, "all-minilm", e.ModelName())
	assert.Equal(t, 384, e.Dimensions())
}

func TestEmbedder_Fit_IsNoop(t *testing.T) {
	// No server: Fit must not touch the network.
	e := New(Config{BaseURL: "http://127.0.0.1:1"})

	assert.NoError(t, e.Fit(context.Background(), []string{"corpus"}))
}

func TestEmbedder_Embed_Success(t *testing.T) {
	var gotReq embedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embeddings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := embedResponse{Embedding: []float64{0.1, 0.2, 0.3}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	e := New(Config{BaseURL: server.URL, Model: "test-model", Dimensions: 3})

	vec, err := e.Embed(context.Background(), "hello world")
	require.NoError(t, err)

	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, "hello world", gotReq.Prompt)
	require.Len(t, vec, 3)
	assert.InDelta(t, 0.1, vec[0], 1e-6)
	assert.InDelta(t, 0.3, vec[2], 1e-6)
}

func TestEmbedder_Embed_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	e := New(Config{BaseURL: server.URL})

	_, err := e.Embed(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestEmbedder_Embed_ConnectionRefused(t *testing.T) {
	e := New(Config{BaseURL: "http://127.0.0.1:1"})

	_, err := e.Embed(context.Background(), "hello")
	assert.Error(t, err)
}

func TestEmbedder_Ping_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	e := New(Config{BaseURL: server.URL})
	assert.NoError(t, e.Ping(context.Background()))
}

func TestEmbedder_Ping_Unreachable(t *testing.T) {
	e := New(Config{BaseURL: "http://127.0.0.1:1"})

	assert.Error(t, e.Ping(context.Background()))
}
