package matching

import "fmt"

// EngineUnavailableError indicates the embedding backend failed to initialize
// or is unreachable. It is fatal to the whole match computation; the engine
// never substitutes a partial or zero score for it.
type EngineUnavailableError struct {
	Message string
	Cause   error
}

func (e *EngineUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("matching engine unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("matching engine unavailable: %s", e.Message)
}

func (e *EngineUnavailableError) Unwrap() error {
	return e.Cause
}

// InvalidWeightsError indicates a scoring weight configuration that is
// negative or does not sum to 1.0. It is raised at configuration time, never
// per match call.
type InvalidWeightsError struct {
	Message string
}

func (e *InvalidWeightsError) Error() string {
	return fmt.Sprintf("invalid scoring weights: %s", e.Message)
}

// RankError identifies which résumé failed while ranking a batch.
type RankError struct {
	ResumeID string
	Cause    error
}

func (e *RankError) Error() string {
	return fmt.Sprintf("ranking failed for resume %s: %v", e.ResumeID, e.Cause)
}

func (e *RankError) Unwrap() error {
	return e.Cause
}
