package synth

import "fmt"

// Waveform holds the harmonic coefficients describing a custom periodic
// waveform. Sine[0] is always zero so the fundamental carries no phase
// offset; Cosine has the same length. Amplitude is the positive peak of
// the sine coefficients, sign-corrected when all of them are negative.
type Waveform struct {
	Sine      []float64
	Cosine    []float64
	Amplitude float64
}

// NewWaveform builds a waveform from explicit coefficient slices of equal
// length. The slices are copied and Sine[0] is forced to zero.
func NewWaveform(sine, cosine []float64) (Waveform, error) {
	if err := validateWaveformLength(len(sine)); err != nil {
		return Waveform{}, err
	}
	if len(cosine) != len(sine) {
		return Waveform{}, fmt.Errorf("synth: sine and cosine coefficient counts differ: %d vs %d", len(sine), len(cosine))
	}

	w := Waveform{
		Sine:   append([]float64(nil), sine...),
		Cosine: append([]float64(nil), cosine...),
	}
	w.Sine[0] = 0
	w.Amplitude = waveformAmplitude(w.Sine)
	return w, nil
}

// WaveformFromFunc builds a waveform by sampling f at harmonics 1..n-1:
// the sine coefficients become [0, f(1), ..., f(n-1)] and the cosine
// coefficients are all zero. The call is O(n) and pure aside from
// whatever f does.
func WaveformFromFunc(f func(harmonic int) float64, n int) (Waveform, error) {
	if f == nil {
		return Waveform{}, ErrNilGenerator
	}
	if err := validateWaveformLength(n); err != nil {
		return Waveform{}, err
	}

	sine := make([]float64, n)
	for i := 1; i < n; i++ {
		sine[i] = f(i)
	}
	return Waveform{
		Sine:      sine,
		Cosine:    make([]float64, n),
		Amplitude: waveformAmplitude(sine),
	}, nil
}

// waveformAmplitude returns max(sine) when that is positive, otherwise
// -min(sine). The result is positive for any coefficient set with at
// least one nonzero value, including all-negative generators.
func waveformAmplitude(sine []float64) float64 {
	maxV := sine[0]
	minV := sine[0]
	for _, v := range sine[1:] {
		if v > maxV {
			maxV = v
		}
		if v < minV {
			minV = v
		}
	}
	if maxV > 0 {
		return maxV
	}
	return -minV
}
