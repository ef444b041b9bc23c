package timens

import "math/rand/v2"

// Randomize returns t perturbed by up to percent of its own
// magnitude, uniformly: the result is t scaled by a factor drawn
// from [1-percent, 1+percent]. Deterministic given a seeded r.
//
// percent must be in [0, 1]; anything else panics.
func (t Span) Randomize(r *rand.Rand, percent float64) Span {
	if percent < 0 || percent > 1 {
		panic("timens: Randomize percent must be in [0, 1]")
	}
	factor := 1 + percent*(2*r.Float64()-1)
	return t.Scale(factor)
}
