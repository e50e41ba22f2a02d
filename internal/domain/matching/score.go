package matching

import "math"

const (
	MinScore = 40
	MaxScore = 100

	// sparse scores land in [MinScore, MinScore+sparseSpan).
	sparseSpan = 40
	jitterSpan = 20
)

// Breakdown is the deterministic part of a match: which required skills the
// user covers and the resulting base percentage.
type Breakdown struct {
	Matched   []string
	Missing   []string
	BaseScore int
	// Sparse is set when either side had no usable skills.
	Sparse bool
}

func Match(required, user SkillSet) Breakdown {
	reqLabels, reqKeys := required.folded()
	_, userKeys := user.folded()

	b := Breakdown{
		Matched: make([]string, 0, len(reqLabels)),
		Missing: make([]string, 0, len(reqLabels)),
	}
	if len(reqKeys) == 0 || len(userKeys) == 0 {
		b.Sparse = true
		b.Missing = append(b.Missing, reqLabels...)
		return b
	}

	for i, rk := range reqKeys {
		if anyOverlap(rk, userKeys) {
			b.Matched = append(b.Matched, reqLabels[i])
			continue
		}
		b.Missing = append(b.Missing, reqLabels[i])
	}
	b.BaseScore = int(math.Round(baseRatio(len(b.Matched), len(reqKeys))))
	return b
}

// Score estimates fit between required and user skills. Sparse input yields
// a value in [40,80); otherwise the base percentage gets a jitter in
// [-10,+10) and is clamped to [40,100]. A nil rnd uses DefaultSource.
func Score(required, user SkillSet, rnd RandomSource) int {
	if rnd == nil {
		rnd = DefaultSource()
	}

	_, reqKeys := required.folded()
	_, userKeys := user.folded()
	if len(reqKeys) == 0 || len(userKeys) == 0 {
		return sparseScore(rnd)
	}

	matched := 0
	for _, rk := range reqKeys {
		if anyOverlap(rk, userKeys) {
			matched++
		}
	}

	base := baseRatio(matched, len(reqKeys))
	jitter := unit(rnd)*jitterSpan - jitterSpan/2
	return int(math.Round(clampFloat(base+jitter, MinScore, MaxScore)))
}

func sparseScore(rnd RandomSource) int {
	v := MinScore + int(math.Floor(unit(rnd)*sparseSpan))
	return clampInt(v, MinScore, MinScore+sparseSpan-1)
}

func baseRatio(matched, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(matched) / float64(total) * 100
}

func anyOverlap(key string, keys []string) bool {
	for _, k := range keys {
		if overlaps(key, k) {
			return true
		}
	}
	return false
}

func clampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
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
