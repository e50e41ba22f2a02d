package skillgap

import (
	"sort"
	"strings"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Canonical tier boundaries, inclusive.
const (
	LowMaxGap    = 20
	MediumMaxGap = 50
)

const (
	minLevel = 0
	maxLevel = 100
)

type Gap struct {
	Skill         string   `json:"skill"`
	CurrentLevel  int      `json:"current_level"`
	RequiredLevel int      `json:"required_level"`
	Gap           int      `json:"gap"`
	Priority      Priority `json:"priority"`
}

// NewGap clamps both levels to [0,100] and derives the gap and its tier.
func NewGap(skill string, current, required int) Gap {
	current = clampInt(current, minLevel, maxLevel)
	required = clampInt(required, minLevel, maxLevel)
	gap := clampInt(required-current, minLevel, maxLevel)

	return Gap{
		Skill:         strings.TrimSpace(skill),
		CurrentLevel:  current,
		RequiredLevel: required,
		Gap:           gap,
		Priority:      PriorityFor(gap),
	}
}

func PriorityFor(gap int) Priority {
	switch {
	case gap <= LowMaxGap:
		return PriorityLow
	case gap <= MediumMaxGap:
		return PriorityMedium
	default:
		return PriorityHigh
	}
}

// Prioritise returns a copy ordered by gap, largest first. Equal gaps keep
// their input order.
func Prioritise(gaps []Gap) []Gap {
	out := make([]Gap, len(gaps))
	copy(out, gaps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Gap > out[j].Gap
	})
	return out
}

// Summary counts gaps per tier.
func Summary(gaps []Gap) map[Priority]int {
	out := map[Priority]int{PriorityLow: 0, PriorityMedium: 0, PriorityHigh: 0}
	for _, g := range gaps {
		out[PriorityFor(g.Gap)]++
	}
	return out
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
