package matching

import (
	"math"
	"math/rand/v2"
)

// RandomSource yields values in [0,1). *rand.Rand from math/rand/v2
// satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource is safe for concurrent use.
func DefaultSource() RandomSource {
	return globalSource{}
}

// NewSeededSource returns a reproducible source. It must not be shared
// between goroutines.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// unit keeps whatever the source returns inside [0,1).
func unit(rnd RandomSource) float64 {
	if rnd == nil {
		rnd = DefaultSource()
	}
	v := rnd.Float64()
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}
