package matching

import (
	"github.com/hbollon/go-edlib"

	"github.com/jonathan/resume-relevance/internal/skills"
)

// DefaultFuzzyThreshold is the 0-100 similarity ratio a near-duplicate skill
// pair must strictly exceed to count as a match.
const DefaultFuzzyThreshold = 85.0

// LexicalMatch is the outcome of the hard (keyword and fuzzy) matching pass.
type LexicalMatch struct {
	// Matched holds the required skills satisfied exactly or fuzzily.
	Matched skills.Set
	// Missing holds the required skills the candidate does not cover.
	// Matched and Missing always partition the required set.
	Missing skills.Set
	// HardScore is the 0-100 coverage of the required set, 100 when the
	// job declares no required skills.
	HardScore float64
}

// MatchLexical computes exact plus fuzzy overlap between a job's required
// skills and a candidate's skills. Both sets must already be normalized.
//
// The fuzzy pass is greedy: each unmatched required skill is compared against
// candidate skills in sorted order and the first pair whose similarity ratio
// strictly exceeds threshold wins; remaining candidates are not considered
// for that required skill. This is not an optimal bipartite assignment.
func MatchLexical(required, candidate skills.Set, threshold float64) LexicalMatch {
	matched := required.Intersect(candidate)

	candidateSorted := candidate.Sorted()
	for _, req := range required.Difference(matched).Sorted() {
		for _, cand := range candidateSorted {
			if fuzzyRatio(req, cand) > threshold {
				matched.Add(req)
				break
			}
		}
	}

	hardScore := 100.0
	if required.Len() > 0 {
		hardScore = 100.0 * float64(matched.Len()) / float64(required.Len())
	}

	return LexicalMatch{
		Matched:   matched,
		Missing:   required.Difference(matched),
		HardScore: hardScore,
	}
}

// fuzzyRatio returns a 0-100 character-level similarity ratio based on
// Levenshtein edit distance. The ratio is computed in float64 from the
// integer distance so exact boundary values like 85 stay exact; edlib's
// float32 similarity carries enough noise to push a true 85 past a
// strict threshold comparison.
func fuzzyRatio(a, b string) float64 {
	if a == b {
		return 100.0
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 100.0
	}
	dist := edlib.LevenshteinDistance(a, b)
	return 100.0 * (1.0 - float64(dist)/float64(maxLen))
}
