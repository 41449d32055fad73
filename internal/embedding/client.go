// Package embedding provides dense sentence embeddings via a local Ollama
// server, plus the vector math used for semantic comparison.
package embedding

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

// Embedder encodes a document into a fixed-size dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Default inference settings. Embedding is the heaviest call in a scoring
// request, so every attempt runs under a bounded timeout.
const (
	DefaultModel   = "nomic-embed-text"
	DefaultTimeout = 10 * time.Second
	DefaultRetries = 3

	retryBaseDelay = 1 * time.Second
)

// OllamaConfig configures the Ollama embedding backend.
type OllamaConfig struct {
	// Host is the Ollama server base URL. Empty means the OLLAMA_HOST
	// environment variable or the local default.
	Host string
	// Model is the embedding model name.
	Model string
	// Timeout bounds a single inference request.
	Timeout time.Duration
	// Retries is the number of attempts before giving up.
	Retries int
}

// OllamaEmbedder implements Embedder against the Ollama embeddings API.
// The underlying HTTP client is safe for concurrent use, so one embedder
// can serve concurrent scoring requests without coordination.
type OllamaEmbedder struct {
	client  *api.Client
	model   string
	timeout time.Duration
	retries int
	logger  *zap.Logger
}

// NewOllamaEmbedder creates an embedder for the given configuration.
// A nil logger disables retry logging.
func NewOllamaEmbedder(cfg OllamaConfig, logger *zap.Logger) (*OllamaEmbedder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var client *api.Client
	if cfg.Host == "" {
		c, err := api.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		client = c
	} else {
		base, err := url.Parse(cfg.Host)
		if err != nil {
			return nil, fmt.Errorf("invalid ollama host %q: %w", cfg.Host, err)
		}
		client = api.NewClient(base, http.DefaultClient)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	retries := cfg.Retries
	if retries <= 0 {
		retries = DefaultRetries
	}

	return &OllamaEmbedder{
		client:  client,
		model:   model,
		timeout: timeout,
		retries: retries,
		logger:  logger,
	}, nil
}

// Embed encodes text into a dense vector, retrying with exponential backoff
// on transient failures. Each attempt runs under its own timeout.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	req := &api.EmbeddingRequest{
		Model:  e.model,
		Prompt: text,
	}

	var lastErr error
	for attempt := 0; attempt < e.retries; attempt++ {
		reqCtx, cancel := context.WithTimeout(ctx, e.timeout)
		resp, err := e.client.Embeddings(reqCtx, req)
		cancel()

		if err == nil {
			return resp.Embedding, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == e.retries-1 {
			break
		}

		delay := time.Duration(math.Pow(2, float64(attempt))) * retryBaseDelay
		e.logger.Debug("embedding attempt failed",
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", e.retries),
			zap.Duration("retry_in", delay),
			zap.Error(err))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("embedding canceled: %w", ctx.Err())
		}
	}

	return nil, fmt.Errorf("embedding failed after %d attempts: %w", e.retries, lastErr)
}
