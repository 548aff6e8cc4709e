// Package embedding provides text embedding backends for semantic similarity scoring.
package embedding

import (
	"context"
	"fmt"
)

// Embedder converts free text into a fixed-dimension numeric vector.
// Implementations must be safe for concurrent use; the ranker calls Embed
// from multiple goroutines against a single shared instance.
type Embedder interface {
	// Name returns the identifier of this embedder implementation.
	Name() string
	// Embed returns an embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float64, error)
	// Dimension returns the dimensionality of produced vectors, or 0 if
	// not yet known (some backends learn it on first call).
	Dimension() int
	// Close releases any resources held by the backend.
	Close() error
}

// Provider identifies an embedding backend implementation.
type Provider string

const (
	// ProviderGemini uses the Google Gemini embedding API.
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI uses any OpenAI-compatible /v1/embeddings endpoint.
	ProviderOpenAI Provider = "openai"
)

// Config configures the embedding backend chosen by the composition root.
type Config struct {
	Provider Provider
	Model    string
	BaseURL  string // OpenAI-compatible endpoints only
	APIKey   string
}

// NewEmbedder constructs the configured embedding backend. The returned
// instance is intended to be created once at startup and shared.
func NewEmbedder(ctx context.Context, cfg Config) (Embedder, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiEmbedder(ctx, cfg.Model, cfg.APIKey)
	case ProviderOpenAI:
		return NewOpenAIEmbedder(OpenAIConfig{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
		})
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}
