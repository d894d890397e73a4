// Package ai defines the embedding capability the search layer depends on.
// Implementations live in subpackages; tests use the deterministic mock.
package ai

import (
	"context"
	"errors"
	"strings"
)

// Embedder generates vector embeddings from text for semantic similarity
// search. Implementations must be safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single query string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates embeddings for multiple texts in a batch,
	// returned in input order. Used for the one-time corpus build.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Config holds the embedding backend settings.
type Config struct {
	// Host is the base URL of the OpenAI-compatible embedding API.
	// Example: "http://localhost:11434/v1" for a local server.
	Host string

	// Model is the embedding model identifier.
	// Example: "all-minilm", "text-embedding-3-small".
	Model string
}

// DefaultConfig targets a local OpenAI-compatible server with a small
// sentence-embedding model.
func DefaultConfig() Config {
	return Config{
		Host:  "http://localhost:11434/v1",
		Model: "all-minilm",
	}
}

// ErrInvalidConfig indicates a Config with a missing host or model.
var ErrInvalidConfig = errors.New("embedding host and model are required")

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" || strings.TrimSpace(c.Model) == "" {
		return ErrInvalidConfig
	}
	return nil
}
