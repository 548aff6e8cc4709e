package matching

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-relevance/internal/types"
)

// Rank scores every résumé against one job and returns the entries sorted by
// score descending. Ties keep the relative input order, so identical inputs
// always produce identical output order.
//
// Per-résumé computations run concurrently against the shared embedder. Any
// single failure aborts the whole batch with a RankError naming the résumé;
// a partial list is never returned.
func (e *Engine) Rank(ctx context.Context, job *types.JobProfile, resumes []*types.ResumeProfile) ([]types.RankedEntry, error) {
	entries := make([]types.RankedEntry, len(resumes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, resume := range resumes {
		i, resume := i, resume
		g.Go(func() error {
			result, err := e.Match(gCtx, resume, job)
			if err != nil {
				return &RankError{ResumeID: resume.ID, Cause: err}
			}
			entries[i] = types.RankedEntry{
				ResumeID:    resume.ID,
				DisplayName: resume.DisplayName,
				Score:       result.FinalScore,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	return entries, nil
}
