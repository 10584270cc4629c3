package synth

import (
	"math"
	"math/rand"
)

// Symmetric variation bounds applied to nonzero hours.
const (
	variationMin = 0.10
	variationMax = 0.15
)

// withVariation perturbs a positive usage value by ±10-15% and floors at
// zero. Callers must not pass zero: untouched zero hours preserve the
// table's sparsity statistics.
func withVariation(rnd *rand.Rand, usage float64) float64 {
	sign := -1.0
	if rnd.Float64() < 0.5 {
		sign = 1.0
	}
	pct := uniform(rnd, variationMin, variationMax)
	out := usage * (1 + sign*pct)
	if out < 0 {
		return 0
	}
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
