package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOllama serves the embeddings endpoint of the Ollama API.
func fakeOllama(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/embeddings", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestOllamaEmbedder_Embed(t *testing.T) {
	srv := fakeOllama(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nomic-embed-text", req["model"])
		assert.Equal(t, "some resume text", req["prompt"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"embedding": []float64{0.1, 0.2, 0.3},
		})
	})

	embedder, err := NewOllamaEmbedder(OllamaConfig{Host: srv.URL, Retries: 1}, nil)
	require.NoError(t, err)

	vec, err := embedder.Embed(context.Background(), "some resume text")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vec)
}

func TestOllamaEmbedder_BackendError(t *testing.T) {
	srv := fakeOllama(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusInternalServerError)
	})

	embedder, err := NewOllamaEmbedder(OllamaConfig{Host: srv.URL, Retries: 1}, nil)
	require.NoError(t, err)

	_, err = embedder.Embed(context.Background(), "text")
	assert.Error(t, err)
}

func TestOllamaEmbedder_CanceledContext(t *testing.T) {
	srv := fakeOllama(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"embedding": []float64{1}})
	})

	embedder, err := NewOllamaEmbedder(OllamaConfig{Host: srv.URL, Retries: 1}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = embedder.Embed(ctx, "text")
	assert.Error(t, err)
}

func TestNewOllamaEmbedder_Defaults(t *testing.T) {
	embedder, err := NewOllamaEmbedder(OllamaConfig{Host: "http://localhost:11434"}, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, embedder.model)
	assert.Equal(t, DefaultTimeout, embedder.timeout)
	assert.Equal(t, DefaultRetries, embedder.retries)
}

func TestNewOllamaEmbedder_InvalidHost(t *testing.T) {
	_, err := NewOllamaEmbedder(OllamaConfig{Host: "://bad"}, nil)
	assert.Error(t, err)
}
