package main

import (
	"fmt"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/embedding"
	"github.com/jonathan/ats-scorer/internal/logger"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"go.uber.org/zap"
)

// loadConfig resolves configuration from the optional config file, the
// environment, and package defaults, in that order of precedence.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}

	if path != "" {
		fileCfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	cfg = cfg.Merge(config.FromEnv())
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildScorer wires the embedding backend and scoring engine from config.
func buildScorer(cfg *config.Config, log *zap.Logger) (*scoring.Scorer, error) {
	embedder, err := embedding.NewOllamaEmbedder(embedding.OllamaConfig{
		Host:    cfg.OllamaHost,
		Model:   cfg.EmbedModel,
		Timeout: cfg.EmbedTimeoutDuration(),
		Retries: cfg.EmbedRetries,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	return scoring.New(embedder, log), nil
}

// buildLogger creates the process logger from config.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLogs, cfg.Verbose)
}
