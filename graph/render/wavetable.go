package render

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// wavetableSize is the length of the rendered single-cycle table.
// Power of two, so phase lookup can mask instead of mod.
const wavetableSize = 4096

// periodicWave is a single-cycle wavetable synthesized from harmonic
// coefficients. It is immutable after construction and can be shared
// by any number of oscillators.
type periodicWave struct {
	table     []float64
	harmonics int
}

func (w *periodicWave) HarmonicCount() int {
	return w.harmonics
}

// sample reads the table at phase in [0, 1) with linear interpolation.
func (w *periodicWave) sample(phase float64) float64 {
	pos := phase * wavetableSize
	i0 := int(pos) & (wavetableSize - 1)
	i1 := (i0 + 1) & (wavetableSize - 1)
	frac := pos - float64(int(pos))

	return w.table[i0] + frac*(w.table[i1]-w.table[i0])
}

// newPeriodicWave renders the harmonic series into a wavetable.
// sine[k] and cosine[k] weight the k-th harmonic; index 0 is the DC
// offset and stays silent. Unless normalization is disabled the table
// is scaled to a peak magnitude of 1.
func newPeriodicWave(sine, cosine []float64, disableNormalization bool) (*periodicWave, error) {
	plan, err := algofft.NewPlan64(wavetableSize)
	if err != nil {
		return nil, fmt.Errorf("render: failed to create FFT plan: %w", err)
	}

	limit := len(sine)
	if limit > wavetableSize/2 {
		limit = wavetableSize / 2
	}

	// The inverse transform divides by N, so bin k carries
	// (N/2)*(cosine[k] - i*sine[k]) and its conjugate mirror to land
	// cosine[k]*cos + sine[k]*sin in the time domain.
	spectrum := make([]complex128, wavetableSize)
	for k := 1; k < limit; k++ {
		bin := complex(wavetableSize/2, 0) * complex(cosine[k], -sine[k])
		spectrum[k] = bin
		spectrum[wavetableSize-k] = cmplx.Conj(bin)
	}

	timeDomain := make([]complex128, wavetableSize)

	err = plan.Inverse(timeDomain, spectrum)
	if err != nil {
		return nil, err
	}

	table := make([]float64, wavetableSize)
	for i := range table {
		table[i] = real(timeDomain[i])
	}

	if !disableNormalization {
		peak := vecmath.MaxAbs(table)
		if peak > 0 {
			vecmath.ScaleBlockInPlace(table, 1/peak)
		}
	}

	return &periodicWave{table: table, harmonics: len(sine)}, nil
}
