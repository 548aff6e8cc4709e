package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "text-embedding-3-small"
	openAIMaxRetries     = 3
)

// OpenAIEmbedder produces embeddings through any OpenAI-compatible
// /v1/embeddings endpoint, including local servers such as Ollama.
// It is safe for concurrent use.
type OpenAIEmbedder struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client

	// dimension is learned from the first successful Embed call and may be
	// read and written from concurrent goroutines.
	dimension atomic.Int64
}

// OpenAIConfig configures the OpenAI-compatible embeddings backend.
type OpenAIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// NewOpenAIEmbedder creates an OpenAI-compatible embedding backend.
func NewOpenAIEmbedder(cfg OpenAIConfig) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenAIBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &OpenAIEmbedder{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Name returns the identifier of this embedder implementation.
func (e *OpenAIEmbedder) Name() string { return "openai" }

// Dimension returns the vector dimensionality, learned on first Embed call.
func (e *OpenAIEmbedder) Dimension() int { return int(e.dimension.Load()) }

// Embed returns an embedding vector for the given text, retrying transient
// failures with exponential backoff.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	// The API rejects empty input; a single space embeds deterministically.
	if text == "" {
		text = " "
	}

	var lastErr error
	for attempt := 0; attempt <= openAIMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay(attempt)):
			}
		}

		vec, retryable, err := e.embedOnce(ctx, text)
		if err == nil {
			e.dimension.CompareAndSwap(0, int64(len(vec)))
			return vec, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}
	return nil, lastErr
}

// embedOnce performs a single embeddings request. The second return value
// reports whether the failure is worth retrying.
func (e *OpenAIEmbedder) embedOnce(ctx context.Context, text string) ([]float64, bool, error) {
	body, err := json.Marshal(map[string]string{
		"input": text,
		"model": e.model,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode embeddings request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("failed to build embeddings request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("embeddings request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, true, fmt.Errorf("embeddings request failed: %s", resp.Status)
	}
	if resp.StatusCode >= 300 {
		return nil, false, fmt.Errorf("embeddings request failed: %s", resp.Status)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read embeddings response: %w", err)
	}

	var out struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, false, fmt.Errorf("failed to parse embeddings response: %w", err)
	}
	if len(out.Data) == 0 || len(out.Data[0].Embedding) == 0 {
		return nil, false, fmt.Errorf("no embedding returned")
	}
	return out.Data[0].Embedding, false, nil
}

// Close is a no-op; the backend holds no long-lived resources.
func (e *OpenAIEmbedder) Close() error { return nil }

func retryDelay(attempt int) time.Duration {
	base := 200 * time.Millisecond
	d := base << attempt
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}
