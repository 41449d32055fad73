// Package config provides configuration loading and validation for the
// ATS scorer CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Embedding backend
	OllamaHost   string `json:"ollama_host,omitempty"`   // Ollama server base URL
	EmbedModel   string `json:"embed_model,omitempty"`   // Embedding model name
	EmbedTimeout int    `json:"embed_timeout,omitempty"` // Per-request timeout in seconds
	EmbedRetries int    `json:"embed_retries,omitempty"` // Attempts before degrading

	// Behavior
	JSONLogs bool `json:"json_logs,omitempty"` // Emit JSON-encoded logs
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed debug information
}

// Default values applied when neither the config file nor the environment
// provides one.
const (
	DefaultPort = 8080
)

// Load reads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Unset variables
// leave the zero value in place for ApplyDefaults to fill.
func FromEnv() *Config {
	cfg := &Config{
		OllamaHost: os.Getenv("OLLAMA_HOST"),
		EmbedModel: os.Getenv("EMBED_MODEL"),
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}

	return cfg
}

// Merge returns a new Config with empty fields filled from fallback.
func (c *Config) Merge(fallback *Config) *Config {
	result := *c

	if result.Port == 0 {
		result.Port = fallback.Port
	}
	if result.OllamaHost == "" {
		result.OllamaHost = fallback.OllamaHost
	}
	if result.EmbedModel == "" {
		result.EmbedModel = fallback.EmbedModel
	}
	if result.EmbedTimeout == 0 {
		result.EmbedTimeout = fallback.EmbedTimeout
	}
	if result.EmbedRetries == 0 {
		result.EmbedRetries = fallback.EmbedRetries
	}
	result.JSONLogs = result.JSONLogs || fallback.JSONLogs
	result.Verbose = result.Verbose || fallback.Verbose

	return &result
}

// ApplyDefaults fills remaining zero values with package defaults.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.EmbedTimeout < 0 {
		return fmt.Errorf("config error: 'embed_timeout' must be non-negative")
	}
	if c.EmbedRetries < 0 {
		return fmt.Errorf("config error: 'embed_retries' must be non-negative")
	}
	return nil
}

// EmbedTimeoutDuration returns the embedding timeout as a duration, or 0
// when unset so the embedding package applies its own default.
func (c *Config) EmbedTimeoutDuration() time.Duration {
	return time.Duration(c.EmbedTimeout) * time.Second
}
