package matching

// Verdict is the categorical label derived from the final composite score.
type Verdict string

const (
	VerdictExcellent   Verdict = "Excellent Match"
	VerdictGood        Verdict = "Good Match"
	VerdictNeedsReview Verdict = "Needs Review"
	VerdictPoor        Verdict = "Poor Match"
)

// VerdictFor maps a final score to its verdict. Thresholds are closed at the
// lower bound: 85 is already Excellent, 70 already Good, 50 already
// Needs Review.
func VerdictFor(score int) Verdict {
	switch {
	case score >= 85:
		return VerdictExcellent
	case score >= 70:
		return VerdictGood
	case score >= 50:
		return VerdictNeedsReview
	default:
		return VerdictPoor
	}
}
