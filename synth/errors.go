package synth

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph is returned by constructors given a nil graph.
	ErrNilGraph = errors.New("synth: graph must not be nil")

	// ErrNilFilter is returned by constructors given a nil filter.
	ErrNilFilter = errors.New("synth: filter must not be nil")

	// ErrPeriodicWavesUnsupported is returned by NewCustom when the graph
	// cannot create custom periodic waveforms.
	ErrPeriodicWavesUnsupported = errors.New("synth: periodic waveforms not supported by this graph")

	// ErrNilGenerator is returned by WaveformFromFunc given a nil
	// generator function.
	ErrNilGenerator = errors.New("synth: waveform generator must not be nil")
)

func validateWaveformLength(n int) error {
	if n < 2 {
		return fmt.Errorf("synth: waveform needs at least 2 coefficients: %d", n)
	}
	return nil
}

func validateFrequency(hz float64) error {
	if !isFinite(hz) || hz <= 0 {
		return fmt.Errorf("synth: frequency must be positive and finite: %f", hz)
	}
	return nil
}

func validateQ(q float64) error {
	if !isFinite(q) || q <= 0 {
		return fmt.Errorf("synth: q must be positive and finite: %f", q)
	}
	return nil
}
