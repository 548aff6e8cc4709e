// Package matching implements the résumé-to-job relevance scoring engine:
// lexical skill overlap, embedding-based semantic similarity, weighted
// fusion, and verdict classification.
package matching

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-relevance/internal/embedding"
	"github.com/jonathan/resume-relevance/internal/skills"
	"github.com/jonathan/resume-relevance/internal/types"
)

// MatchResult is the full, explainable outcome of scoring one résumé
// against one job. It is computed on demand and never persisted here.
type MatchResult struct {
	FinalScore    int      `json:"final_score"`
	Verdict       Verdict  `json:"verdict"`
	HardScore     float64  `json:"hard_score"`
	SemanticScore float64  `json:"semantic_score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// Engine scores résumés against job profiles. It holds no per-call state;
// a single Engine is safe for concurrent use as long as its embedder is.
type Engine struct {
	embedder       embedding.Embedder
	weights        Weights
	fuzzyThreshold float64
}

// NewEngine constructs a scoring engine around a shared embedding backend.
// The weights are validated once here; invalid configurations never reach
// a match call.
func NewEngine(embedder embedding.Embedder, weights Weights, fuzzyThreshold float64) (*Engine, error) {
	if embedder == nil {
		return nil, &EngineUnavailableError{Message: "no embedding backend configured"}
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if fuzzyThreshold < 0 || fuzzyThreshold > 100 {
		return nil, fmt.Errorf("fuzzy threshold must be in [0,100], got %v", fuzzyThreshold)
	}

	return &Engine{
		embedder:       embedder,
		weights:        weights,
		fuzzyThreshold: fuzzyThreshold,
	}, nil
}

// Match scores one résumé against one job and returns the explainable
// breakdown. An embedding failure aborts the whole computation; no partial
// score is ever returned.
func (e *Engine) Match(ctx context.Context, resume *types.ResumeProfile, job *types.JobProfile) (*MatchResult, error) {
	required := skills.Normalize(job.RequiredSkills())
	candidate := skills.Normalize(resume.Skills)

	lexical := MatchLexical(required, candidate, e.fuzzyThreshold)

	semanticScore, err := e.semanticScore(ctx, resume.RawText, job.RawText)
	if err != nil {
		return nil, err
	}

	finalScore := e.weights.FinalScore(lexical.HardScore, semanticScore)

	return &MatchResult{
		FinalScore:    finalScore,
		Verdict:       VerdictFor(finalScore),
		HardScore:     lexical.HardScore,
		SemanticScore: semanticScore,
		MatchedSkills: lexical.Matched.Sorted(),
		MissingSkills: lexical.Missing.Sorted(),
	}, nil
}

// semanticScore embeds both texts and scales their cosine similarity to a
// 0-100 percentage. Negative cosine values clamp to 0 so the documented
// score range holds even for adversarial inputs.
func (e *Engine) semanticScore(ctx context.Context, resumeText, jobText string) (float64, error) {
	resumeVec, err := e.embedder.Embed(ctx, resumeText)
	if err != nil {
		return 0, &EngineUnavailableError{Message: "failed to embed resume text", Cause: err}
	}
	jobVec, err := e.embedder.Embed(ctx, jobText)
	if err != nil {
		return 0, &EngineUnavailableError{Message: "failed to embed job text", Cause: err}
	}

	score := embedding.CosineSimilarity(resumeVec, jobVec) * 100.0
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}
