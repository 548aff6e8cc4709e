package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-relevance/internal/config"
	"github.com/jonathan/resume-relevance/internal/embedding"
	"github.com/jonathan/resume-relevance/internal/matching"
	"github.com/jonathan/resume-relevance/internal/profiles"
	"github.com/jonathan/resume-relevance/internal/types"
)

// resolveConfig loads the optional config file, layers it over the built-in
// defaults, and validates the result.
func resolveConfig(configPath string) (config.Config, error) {
	cfg := config.DefaultConfig()

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildEngine constructs the embedding backend and the scoring engine around
// it. The embedder is created once here and shared by every match in the
// invocation; callers own closing it.
func buildEngine(ctx context.Context, cfg config.Config) (*matching.Engine, embedding.Embedder, error) {
	embedder, err := embedding.NewEmbedder(ctx, cfg.EmbeddingConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize embedding backend: %w", err)
	}

	engine, err := matching.NewEngine(embedder, cfg.Weights(), cfg.FuzzyThreshold)
	if err != nil {
		_ = embedder.Close()
		return nil, nil, err
	}
	return engine, embedder, nil
}

// loadResumeProfile reads and decodes one resume payload from disk. Dropped
// skill entries are reported on stderr so lenient degradation stays visible.
func loadResumeProfile(path string) (*types.ResumeProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	profile, report, err := profiles.DecodeResumeProfile(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode resume %s: %w", path, err)
	}
	if report.DroppedSkills > 0 {
		fmt.Fprintf(os.Stderr, "warning: dropped %d malformed skill entries from %s\n", report.DroppedSkills, path)
	}
	return profile, nil
}

// loadJobProfile reads and decodes one job payload from disk.
func loadJobProfile(path string) (*types.JobProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	profile, report, err := profiles.DecodeJobProfile(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode job %s: %w", path, err)
	}
	if report.DroppedSkills > 0 {
		fmt.Fprintf(os.Stderr, "warning: dropped %d malformed skill entries from %s\n", report.DroppedSkills, path)
	}
	return profile, nil
}
