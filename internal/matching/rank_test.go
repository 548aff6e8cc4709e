package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-relevance/internal/types"
)

func TestEngine_Rank_SortsByScoreDescending(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float64{
		"strong candidate": {1, 0, 0},
		"weak candidate":   {0.2, 0.9, 0},
		"job description":  {1, 0, 0},
	}}
	engine := newTestEngine(t, embedder)

	job := &types.JobProfile{
		ID:             "jd-1",
		RawText:        "job description",
		MustHaveSkills: []string{"go"},
	}
	resumes := []*types.ResumeProfile{
		{ID: "weak", DisplayName: "weak.pdf", RawText: "weak candidate"},
		{ID: "strong", DisplayName: "strong.pdf", RawText: "strong candidate", Skills: []string{"go"}},
	}

	entries, err := engine.Rank(context.Background(), job, resumes)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "strong", entries[0].ResumeID)
	assert.Equal(t, "strong.pdf", entries[0].DisplayName)
	assert.Greater(t, entries[0].Score, entries[1].Score)
}

func TestEngine_Rank_StableOnTies(t *testing.T) {
	// Identical résumés score identically; input order must survive.
	engine := newTestEngine(t, &stubEmbedder{})

	job := &types.JobProfile{ID: "jd-1", MustHaveSkills: []string{"go"}}
	resumes := []*types.ResumeProfile{
		{ID: "first", Skills: []string{"go"}},
		{ID: "second", Skills: []string{"go"}},
		{ID: "third", Skills: []string{"go"}},
	}

	entries, err := engine.Rank(context.Background(), job, resumes)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "first", entries[0].ResumeID)
	assert.Equal(t, "second", entries[1].ResumeID)
	assert.Equal(t, "third", entries[2].ResumeID)
}

func TestEngine_Rank_Deterministic(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float64{
		"text a": {0.3, 0.7, 0.2},
		"text b": {0.9, 0.1, 0.4},
		"text c": {0.5, 0.5, 0.5},
	}}
	engine := newTestEngine(t, embedder)

	job := &types.JobProfile{ID: "jd-1", RawText: "text c", MustHaveSkills: []string{"go", "sql"}}
	resumes := []*types.ResumeProfile{
		{ID: "a", RawText: "text a", Skills: []string{"go"}},
		{ID: "b", RawText: "text b", Skills: []string{"sql"}},
	}

	first, err := engine.Rank(context.Background(), job, resumes)
	require.NoError(t, err)
	second, err := engine.Rank(context.Background(), job, resumes)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_Rank_EmptyInput(t *testing.T) {
	engine := newTestEngine(t, &stubEmbedder{})

	entries, err := engine.Rank(context.Background(), &types.JobProfile{ID: "jd-1"}, nil)
	require.NoError(t, err)

	assert.Empty(t, entries)
}

func TestEngine_Rank_FailureAbortsBatch(t *testing.T) {
	cause := errors.New("backend down")
	embedder := &stubEmbedder{failOn: map[string]error{"broken": cause}}
	engine := newTestEngine(t, embedder)

	job := &types.JobProfile{ID: "jd-1"}
	resumes := []*types.ResumeProfile{
		{ID: "ok-1", RawText: "fine"},
		{ID: "bad", RawText: "broken"},
		{ID: "ok-2", RawText: "also fine"},
	}

	entries, err := engine.Rank(context.Background(), job, resumes)

	assert.Nil(t, entries, "no partial ranking on failure")
	var rankErr *RankError
	require.ErrorAs(t, err, &rankErr)
	assert.Equal(t, "bad", rankErr.ResumeID)
	assert.ErrorIs(t, err, cause)
}

func TestEngine_Rank_CancelledContext(t *testing.T) {
	engine := newTestEngine(t, &stubEmbedder{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Completed entries are discarded; the caller sees a failure, never a
	// partial list presented as complete.
	entries, err := engine.Rank(ctx, &types.JobProfile{ID: "jd-1"}, []*types.ResumeProfile{
		{ID: "resume-1"},
	})

	if err != nil {
		assert.Nil(t, entries)
	}
}
