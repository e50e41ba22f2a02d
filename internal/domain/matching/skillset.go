package matching

import (
	"strings"

	"golang.org/x/text/cases"
)

// SkillSet is an ordered list of free-text skill labels. Comparison is
// case-insensitive and duplicates carry no meaning.
type SkillSet []string

// NewSkillSet trims labels, collapses inner whitespace, drops blanks and
// removes case-insensitive duplicates. The first spelling wins.
func NewSkillSet(labels ...string) SkillSet {
	out := make(SkillSet, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		l = strings.Join(strings.Fields(l), " ")
		if l == "" {
			continue
		}
		k := fold(l)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, l)
	}
	return out
}

func (s SkillSet) Len() int {
	return len(s)
}

func (s SkillSet) Labels() []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Contains reports whether any label matches skill in either substring
// direction, case-folded.
func (s SkillSet) Contains(skill string) bool {
	k := fold(skill)
	if k == "" {
		return false
	}
	for _, l := range s {
		if overlaps(fold(l), k) {
			return true
		}
	}
	return false
}

// folded returns the normalised labels in folded form, keyed by position in
// the normalised set.
func (s SkillSet) folded() (labels []string, keys []string) {
	labels = NewSkillSet(s...)
	keys = make([]string, len(labels))
	for i, l := range labels {
		keys[i] = fold(l)
	}
	return labels, keys
}

func overlaps(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// fold is not shared across goroutines because a cases.Caser holds state.
func fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}
