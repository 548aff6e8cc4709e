package embedding

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "text-embedding-004"

// GeminiEmbedder produces embeddings via the Google Gemini API.
// The underlying client is safe for concurrent use.
type GeminiEmbedder struct {
	client *genai.Client
	model  string

	// dimension is learned from the first successful Embed call and may be
	// read and written from concurrent goroutines.
	dimension atomic.Int64
}

// NewGeminiEmbedder creates a Gemini embedding backend.
func NewGeminiEmbedder(ctx context.Context, model, apiKey string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

// Name returns the identifier of this embedder implementation.
func (e *GeminiEmbedder) Name() string { return "gemini" }

// Dimension returns the vector dimensionality, learned on first Embed call.
func (e *GeminiEmbedder) Dimension() int { return int(e.dimension.Load()) }

// Embed returns an embedding vector for the given text.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	// The API rejects empty content; a single space embeds deterministically.
	if text == "" {
		text = " "
	}

	em := e.client.EmbeddingModel(e.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embed content: %w", err)
	}
	if resp == nil || resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("gemini returned no embedding")
	}

	vec := make([]float64, len(resp.Embedding.Values))
	for i, v := range resp.Embedding.Values {
		vec[i] = float64(v)
	}
	e.dimension.CompareAndSwap(0, int64(len(vec)))
	return vec, nil
}

// Close releases the underlying API client.
func (e *GeminiEmbedder) Close() error {
	return e.client.Close()
}
