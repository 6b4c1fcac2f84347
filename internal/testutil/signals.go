package testutil

import (
	"math"
	"math/rand"
)

// Tone returns n samples of a sine at freqHz for the given sample rate,
// scaled by amplitude. Phase starts at zero, matching a freshly started
// oscillator.
func Tone(freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	cycles := freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*cycles*float64(i))
	}
	return out
}

// SeededNoise returns n samples of uniform noise in [-amplitude,
// amplitude), generated from a fixed seed so failures reproduce.
func SeededNoise(seed int64, amplitude float64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// Impulse returns n zeros with a single unit sample at index at, or all
// zeros when at is out of range.
func Impulse(n, at int) []float64 {
	out := make([]float64, n)
	if at >= 0 && at < n {
		out[at] = 1
	}
	return out
}
