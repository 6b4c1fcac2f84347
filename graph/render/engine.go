package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/graph"
	"github.com/cwbudde/algo-vecmath"
)

// Engine construction errors.
var (
	ErrInvalidSampleRate = errors.New("render: sample rate must be positive and finite")
	ErrCoefficientLength = errors.New("render: sine and cosine coefficients must have equal length")
)

// defaultOscFrequency is the frequency of a freshly created oscillator.
const defaultOscFrequency = 440.0

// Engine is a software implementation of [graph.Graph]. It renders its
// node graph block by block into caller-provided slices, with no
// real-time dependency: an offline caller can render as fast as the CPU
// allows, a live caller renders from its audio callback.
//
// Engine and node methods are not safe for concurrent use. A caller
// mixing a control thread with an audio callback must serialize the two,
// for example with the beep speaker lock.
type Engine struct {
	sampleRate float64
	blockSize  int
	masterGain float64

	dest    *destinationNode
	pass    uint64
	samples int64
	carry   []float64
	pending []float64
}

// New creates an engine rendering at sampleRate Hz.
func New(sampleRate float64, opts ...Option) (*Engine, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	cfg := ApplyOptions(opts...)

	e := &Engine{
		sampleRate: sampleRate,
		blockSize:  cfg.BlockSize,
		masterGain: cfg.MasterGain,
	}
	e.dest = &destinationNode{mixCore: e.newMixCore()}
	e.carry = make([]float64, cfg.BlockSize)

	return e, nil
}

// SampleRate returns the rendering sample rate in Hz.
func (e *Engine) SampleRate() float64 {
	return e.sampleRate
}

// BlockSize returns the internal render quantum in samples.
func (e *Engine) BlockSize() int {
	return e.blockSize
}

// SetMasterGain replaces the gain applied to the final mix. Negative
// values are ignored.
func (e *Engine) SetMasterGain(gain float64) {
	if gain >= 0 {
		e.masterGain = gain
	}
}

// NewOscillator creates an unstarted sine oscillator at 440 Hz.
func (e *Engine) NewOscillator() graph.Oscillator {
	return &oscNode{
		nodeCore: e.newCore(),
		freq:     newParam(defaultOscFrequency),
		shape:    graph.ShapeSine,
	}
}

// NewGain creates a gain node with unity gain.
func (e *Engine) NewGain() graph.Gain {
	return &gainNode{
		mixCore: e.newMixCore(),
		gain:    newParam(1),
	}
}

// NewFilterNode creates a biquad filter stage. An invalid kind falls
// back to lowpass; out-of-range frequencies are clamped at design time.
func (e *Engine) NewFilterNode(kind graph.FilterType, frequency, gain, q float64) graph.FilterNode {
	if !kind.Valid() {
		kind = graph.FilterTypeLowpass
	}

	return &filterNode{
		mixCore: e.newMixCore(),
		kind:    kind,
		freq:    frequency,
		gainDB:  gain,
		q:       q,
		dirty:   true,
	}
}

// NewPeriodicWave renders the harmonic coefficients into a shared
// wavetable.
func (e *Engine) NewPeriodicWave(sine, cosine []float64, disableNormalization bool) (graph.Wave, error) {
	if len(sine) != len(cosine) {
		return nil, fmt.Errorf("%w: %d != %d", ErrCoefficientLength, len(sine), len(cosine))
	}

	return newPeriodicWave(sine, cosine, disableNormalization)
}

// SupportsPeriodicWaves reports true: the engine renders custom
// wavetables.
func (e *Engine) SupportsPeriodicWaves() bool {
	return true
}

// Destination returns the terminal mix bus.
func (e *Engine) Destination() graph.Node {
	return e.dest
}

// Now returns the graph clock in seconds. The clock starts at zero and
// advances in whole render quanta as Render produces blocks.
func (e *Engine) Now() float64 {
	return float64(e.samples) / e.sampleRate
}

// Render fills dst with mono samples in [-1, 1]. dst may have any
// length; partial blocks carry over to the next call, so the clock can
// run up to one block ahead of the samples consumed so far.
func (e *Engine) Render(dst []float64) {
	for len(dst) > 0 {
		if len(e.pending) == 0 {
			e.renderNextBlock()
		}

		n := copy(dst, e.pending)
		e.pending = e.pending[n:]
		dst = dst[n:]
	}
}

func (e *Engine) renderNextBlock() {
	e.pass++
	copy(e.carry, e.dest.renderBlock(e.pass))

	if e.masterGain != 1 {
		vecmath.ScaleBlockInPlace(e.carry, e.masterGain)
	}

	for i, x := range e.carry {
		e.carry[i] = clamp(x, -1, 1)
	}

	e.pending = e.carry
	e.samples += int64(e.blockSize)
}

func (e *Engine) newCore() nodeCore {
	return nodeCore{e: e, out: make([]float64, e.blockSize)}
}

func (e *Engine) newMixCore() mixCore {
	return mixCore{nodeCore: e.newCore()}
}
