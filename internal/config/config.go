// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-relevance/internal/embedding"
	"github.com/jonathan/resume-relevance/internal/matching"
)

// Default values applied when neither the config file nor flags provide one.
const (
	DefaultAPIKeyEnv      = "EMBEDDING_API_KEY"
	DefaultTimeoutSeconds = 60
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Scoring
	HardWeight     float64 `json:"hard_weight,omitempty"`     // Lexical sub-score weight (default 0.40)
	SemanticWeight float64 `json:"semantic_weight,omitempty"` // Semantic sub-score weight (default 0.60)
	FuzzyThreshold float64 `json:"fuzzy_threshold,omitempty"` // 0-100 ratio a fuzzy pair must exceed (default 85)

	// Embedding backend
	Provider  string `json:"provider,omitempty"`    // "gemini" or "openai"
	Model     string `json:"model,omitempty"`       // Embedding model name
	BaseURL   string `json:"base_url,omitempty"`    // OpenAI-compatible endpoint base URL
	APIKeyEnv string `json:"api_key_env,omitempty"` // Env var holding the API key

	// Behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // Overall per-invocation timeout
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed breakdown information
}

// DefaultConfig returns the configuration used when no file or flags are given.
func DefaultConfig() Config {
	return Config{
		HardWeight:     matching.DefaultHardWeight,
		SemanticWeight: matching.DefaultSemanticWeight,
		FuzzyThreshold: matching.DefaultFuzzyThreshold,
		Provider:       string(embedding.ProviderGemini),
		APIKeyEnv:      DefaultAPIKeyEnv,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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

// Validate checks that the configuration has valid values. Weight validation
// happens here, at configuration time, so match calls never see bad weights.
func (c *Config) Validate() error {
	if err := c.Weights().Validate(); err != nil {
		// Defaults only apply when both weights are omitted, so a config
		// with a single weight set deserves a pointed message rather than
		// a bare sum complaint.
		if (c.HardWeight == 0) != (c.SemanticWeight == 0) {
			return fmt.Errorf("config error: 'hard_weight' and 'semantic_weight' must be set together: %w", err)
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be in [0,100], got %v", c.FuzzyThreshold)
	}

	switch embedding.Provider(c.Provider) {
	case embedding.ProviderGemini, embedding.ProviderOpenAI:
	default:
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}

	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be positive")
	}

	return nil
}

// Weights returns the configured fusion weights.
func (c *Config) Weights() matching.Weights {
	return matching.Weights{Hard: c.HardWeight, Semantic: c.SemanticWeight}
}

// Timeout returns the configured per-invocation timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// APIKey resolves the embedding API key from the configured environment
// variable. The key never lives in the config file itself.
func (c *Config) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// EmbeddingConfig returns the embedding backend configuration.
func (c *Config) EmbeddingConfig() embedding.Config {
	return embedding.Config{
		Provider: embedding.Provider(c.Provider),
		Model:    c.Model,
		BaseURL:  c.BaseURL,
		APIKey:   c.APIKey(),
	}
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values on top of the built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.HardWeight == 0 && result.SemanticWeight == 0 {
		result.HardWeight = defaults.HardWeight
		result.SemanticWeight = defaults.SemanticWeight
	}
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.APIKeyEnv == "" {
		result.APIKeyEnv = defaults.APIKeyEnv
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	return result
}
