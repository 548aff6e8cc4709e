package matching

import (
	"fmt"
	"math"
)

// Default fusion weights, matching the documented scoring policy.
const (
	DefaultHardWeight     = 0.40
	DefaultSemanticWeight = 0.60
)

// weightSumTolerance absorbs float representation noise when checking that
// weights sum to 1.0.
const weightSumTolerance = 1e-9

// Weights controls how the lexical and semantic sub-scores fuse into the
// final score. Both must be non-negative and sum to 1.0.
type Weights struct {
	Hard     float64 `json:"hard"`
	Semantic float64 `json:"semantic"`
}

// DefaultWeights returns the standard 0.40/0.60 hard/semantic split.
func DefaultWeights() Weights {
	return Weights{Hard: DefaultHardWeight, Semantic: DefaultSemanticWeight}
}

// Validate checks the weight configuration. Invalid weights are rejected
// here, at configuration time, so match calls never see them.
func (w Weights) Validate() error {
	if w.Hard < 0 || w.Semantic < 0 {
		return &InvalidWeightsError{Message: fmt.Sprintf("weights must be non-negative, got hard=%v semantic=%v", w.Hard, w.Semantic)}
	}
	if sum := w.Hard + w.Semantic; math.Abs(sum-1.0) > weightSumTolerance {
		return &InvalidWeightsError{Message: fmt.Sprintf("weights must sum to 1.0, got %v", sum)}
	}
	return nil
}

// FinalScore fuses the two sub-scores and rounds half away from zero to the
// nearest integer. The rounding policy is fixed: 84.5 rounds to 85.
// Given sub-scores in [0,100] and valid weights, the result is in [0,100].
func (w Weights) FinalScore(hardScore, semanticScore float64) int {
	return int(math.Round(hardScore*w.Hard + semanticScore*w.Semantic))
}
