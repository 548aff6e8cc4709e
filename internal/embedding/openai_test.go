package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAITestServer(t *testing.T, handler http.HandlerFunc) *OpenAIEmbedder {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	embedder, err := NewOpenAIEmbedder(OpenAIConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
	})
	require.NoError(t, err)
	return embedder
}

func TestOpenAIEmbedder_Embed(t *testing.T) {
	embedder := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "some resume text", body["input"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"embedding": []float64{0.1, 0.2, 0.3}},
			},
		})
	})

	vec, err := embedder.Embed(context.Background(), "some resume text")
	require.NoError(t, err)

	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vec)
	assert.Equal(t, 3, embedder.Dimension())
}

func TestOpenAIEmbedder_EmbedEmptyText(t *testing.T) {
	embedder := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotEmpty(t, body["input"], "empty text must not reach the backend as-is")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"embedding": []float64{1, 0}},
			},
		})
	})

	vec, err := embedder.Embed(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, vec, 2)
}

func TestOpenAIEmbedder_RetriesServerErrors(t *testing.T) {
	attempts := 0
	embedder := newOpenAITestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"embedding": []float64{0.5}},
			},
		})
	})

	vec, err := embedder.Embed(context.Background(), "text")
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5}, vec)
	assert.Equal(t, 3, attempts)
}

func TestOpenAIEmbedder_ClientErrorDoesNotRetry(t *testing.T) {
	attempts := 0
	embedder := newOpenAITestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := embedder.Embed(context.Background(), "text")

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestOpenAIEmbedder_NoEmbeddingReturned(t *testing.T) {
	embedder := newOpenAITestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{}})
	})

	_, err := embedder.Embed(context.Background(), "text")

	assert.ErrorContains(t, err, "no embedding returned")
}

func TestOpenAIEmbedder_ConcurrentEmbed(t *testing.T) {
	embedder := newOpenAITestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"embedding": []float64{0.1, 0.2, 0.3}},
			},
		})
	})

	// Batch ranking embeds many texts in parallel against one shared
	// embedder, so Embed and Dimension must tolerate concurrent callers.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vec, err := embedder.Embed(context.Background(), "text")
			assert.NoError(t, err)
			assert.Len(t, vec, 3)
			_ = embedder.Dimension()
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, embedder.Dimension())
}

func TestNewOpenAIEmbedder_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIEmbedder(OpenAIConfig{})

	assert.Error(t, err)
}

func TestNewEmbedder_UnknownProvider(t *testing.T) {
	_, err := NewEmbedder(context.Background(), Config{Provider: "word2vec"})

	assert.Error(t, err)
}
