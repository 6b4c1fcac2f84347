package render

import (
	"math"

	"github.com/cwbudde/algo-synth/graph"
)

// oscNode is a phase-accumulator oscillator. It renders silence until
// Start is called. The phase runs in [0, 1) so both the builtin shapes
// and wavetable lookup share one accumulator.
type oscNode struct {
	nodeCore
	freq    param
	shape   graph.Shape
	wave    *periodicWave
	phase   float64
	started bool
}

func (o *oscNode) Connect(dst graph.Node) {
	connectNodes(o, dst)
}

// SetShape selects a builtin waveform, replacing any custom wave.
func (o *oscNode) SetShape(shape graph.Shape) {
	if !shape.Valid() {
		return
	}

	o.shape = shape
	o.wave = nil
}

// SetWave installs a custom wavetable. Waves from a different graph
// implementation are ignored.
func (o *oscNode) SetWave(w graph.Wave) {
	pw, ok := w.(*periodicWave)
	if !ok {
		return
	}

	o.wave = pw
}

func (o *oscNode) SetFrequency(hz float64) {
	o.freq.set(hz)
}

func (o *oscNode) RampFrequencyLinear(hz, atTime float64) {
	o.freq.rampTo(hz, atTime, o.e.Now(), curveLinear)
}

func (o *oscNode) RampFrequencyExponential(hz, atTime float64) {
	o.freq.rampTo(hz, atTime, o.e.Now(), curveExponential)
}

func (o *oscNode) Start() {
	o.started = true
}

func (o *oscNode) renderBlock(pass uint64) []float64 {
	if !o.begin(pass) {
		return o.out
	}

	if !o.started {
		clear(o.out)
		return o.out
	}

	t0 := o.e.Now()
	dt := 1 / o.e.sampleRate

	for i := range o.out {
		o.out[i] = o.waveform(o.phase)

		o.phase += o.freq.at(t0+float64(i)*dt) * dt
		if o.phase >= 1 || o.phase < 0 {
			o.phase -= math.Floor(o.phase)
		}
	}

	return o.out
}

func (o *oscNode) waveform(phase float64) float64 {
	if o.wave != nil {
		return o.wave.sample(phase)
	}

	switch o.shape {
	case graph.ShapeSquare:
		if phase < 0.5 {
			return 1
		}

		return -1
	case graph.ShapeSawtooth:
		return 2*phase - 1
	case graph.ShapeTriangle:
		switch {
		case phase < 0.25:
			return 4 * phase
		case phase < 0.75:
			return 2 - 4*phase
		default:
			return 4*phase - 4
		}
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
