package synth

import (
	"math/rand"
	"testing"
)

func TestWithVariationBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	const usage = 0.5

	for i := 0; i < 1000; i++ {
		got := withVariation(rnd, usage)
		if got < usage*(1-variationMax)-1e-12 || got > usage*(1+variationMax)+1e-12 {
			t.Fatalf("draw %d: %v outside ±%v%% of %v", i, got, variationMax*100, usage)
		}
		// A perturbation of at least 10% always moves the value.
		if got > usage*(1-variationMin) && got < usage*(1+variationMin) {
			t.Fatalf("draw %d: %v inside the excluded ±%v%% core", i, got, variationMin*100)
		}
	}
}

func TestWithVariationNeverNegative(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		if got := withVariation(rnd, 0.001); got < 0 {
			t.Fatalf("draw %d: negative usage %v", i, got)
		}
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		in   float64
		fn   func(float64) float64
		want float64
	}{
		{0.12345, round3, 0.123},
		{0.9995, round3, 1.0},
		{0.0004999, round3, 0},
		{0.1234564, round6, 0.123456},
		{0.0291666666, round6, 0.029167},
	}

	for _, tt := range tests {
		if got := tt.fn(tt.in); got != tt.want {
			t.Errorf("rounding %v: got %v, want %v", tt.in, got, tt.want)
		}
	}
}
