package skills

import "strings"

// Normalize canonicalizes raw skill names into a Set: every entry is
// lower-cased and trimmed, empty entries are dropped, and duplicates collapse.
// Normalize never fails; nil or empty input yields an empty Set.
func Normalize(raw []string) Set {
	out := make(Set, len(raw))
	for _, name := range raw {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		out.Add(normalized)
	}
	return out
}
