// Package skills provides skill name normalization and set operations used by the matching engine.
package skills

import "sort"

// Set is a collection of normalized skill names with set semantics.
// Keys are always lower-cased, trimmed, non-empty strings; order is irrelevant.
type Set map[string]struct{}

// NewSet builds a Set from already-normalized skill names.
// Use Normalize to build a Set from raw input.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is a member of the set.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Len returns the number of skills in the set.
func (s Set) Len() int {
	return len(s)
}

// Intersect returns the skills present in both sets.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for name := range s {
		if other.Contains(name) {
			out.Add(name)
		}
	}
	return out
}

// Difference returns the skills present in s but not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for name := range s {
		if !other.Contains(name) {
			out.Add(name)
		}
	}
	return out
}

// Union returns the skills present in either set.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for name := range s {
		out.Add(name)
	}
	for name := range other {
		out.Add(name)
	}
	return out
}

// Sorted returns the members as an alphabetically sorted slice.
// This is the canonical output representation for match breakdowns.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
