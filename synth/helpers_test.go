package synth

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-synth/graph"
)

// testGraph is an in-memory recording implementation of graph.Graph used
// to observe what the state machine schedules.
type testGraph struct {
	now     float64
	noWaves bool
	waveErr error

	oscillators []*testOscillator
	gains       []*testGain
	filterNodes []*testFilterNode
	waves       []*testWave

	destination testDestination
}

// scheduled records one ramp call on a fake node.
type scheduled struct {
	value  float64
	atTime float64
	curve  string
}

type testOscillator struct {
	shape     graph.Shape
	hasShape  bool
	wave      graph.Wave
	frequency float64
	freqSets  []float64
	freqRamps []scheduled
	connected []graph.Node
	started   int
}

func (o *testOscillator) Connect(dst graph.Node) { o.connected = append(o.connected, dst) }

func (o *testOscillator) SetShape(s graph.Shape) {
	o.shape = s
	o.hasShape = true
}

func (o *testOscillator) SetWave(w graph.Wave) { o.wave = w }

func (o *testOscillator) SetFrequency(hz float64) {
	o.frequency = hz
	o.freqSets = append(o.freqSets, hz)
}

func (o *testOscillator) RampFrequencyLinear(hz, atTime float64) {
	o.freqRamps = append(o.freqRamps, scheduled{hz, atTime, "linear"})
}

func (o *testOscillator) RampFrequencyExponential(hz, atTime float64) {
	o.freqRamps = append(o.freqRamps, scheduled{hz, atTime, "exponential"})
}

func (o *testOscillator) Start() { o.started++ }

type testGain struct {
	gain      float64
	gainSets  []float64
	gainRamps []scheduled
	connected []graph.Node
}

func (g *testGain) Connect(dst graph.Node) { g.connected = append(g.connected, dst) }

func (g *testGain) SetGain(v float64) {
	g.gain = v
	g.gainSets = append(g.gainSets, v)
}

func (g *testGain) RampGainLinear(v, atTime float64) {
	g.gainRamps = append(g.gainRamps, scheduled{v, atTime, "linear"})
}

type testFilterNode struct {
	kind      graph.FilterType
	frequency float64
	gain      float64
	q         float64

	kindSets []graph.FilterType
	freqSets []float64
	gainSets []float64
	qSets    []float64

	connected []graph.Node
}

func (n *testFilterNode) Connect(dst graph.Node) { n.connected = append(n.connected, dst) }

func (n *testFilterNode) SetKind(k graph.FilterType) {
	n.kind = k
	n.kindSets = append(n.kindSets, k)
}

func (n *testFilterNode) SetFrequency(hz float64) {
	n.frequency = hz
	n.freqSets = append(n.freqSets, hz)
}

func (n *testFilterNode) SetGain(db float64) {
	n.gain = db
	n.gainSets = append(n.gainSets, db)
}

func (n *testFilterNode) SetQ(q float64) {
	n.q = q
	n.qSets = append(n.qSets, q)
}

type testWave struct {
	harmonics            int
	disableNormalization bool
}

func (w *testWave) HarmonicCount() int { return w.harmonics }

type testDestination struct{}

func (*testDestination) Connect(dst graph.Node) {}

func (g *testGraph) NewOscillator() graph.Oscillator {
	o := &testOscillator{}
	g.oscillators = append(g.oscillators, o)
	return o
}

func (g *testGraph) NewGain() graph.Gain {
	n := &testGain{gain: 1}
	g.gains = append(g.gains, n)
	return n
}

func (g *testGraph) NewFilterNode(kind graph.FilterType, frequency, gain, q float64) graph.FilterNode {
	n := &testFilterNode{kind: kind, frequency: frequency, gain: gain, q: q}
	g.filterNodes = append(g.filterNodes, n)
	return n
}

func (g *testGraph) NewPeriodicWave(sine, cosine []float64, disableNormalization bool) (graph.Wave, error) {
	if g.waveErr != nil {
		return nil, g.waveErr
	}
	if g.noWaves {
		return nil, errors.New("periodic waves disabled")
	}
	w := &testWave{harmonics: len(sine), disableNormalization: disableNormalization}
	g.waves = append(g.waves, w)
	return w, nil
}

func (g *testGraph) SupportsPeriodicWaves() bool { return !g.noWaves }

func (g *testGraph) Destination() graph.Node { return &g.destination }

func (g *testGraph) Now() float64 { return g.now }

// newTestRig builds a graph, a lowpass filter on it and a basic
// synthesizer, failing the test on any construction error.
func newTestRig(t *testing.T, opts ...Option) (*testGraph, *Filter, *Synthesizer) {
	t.Helper()
	g := &testGraph{}
	f, err := NewFilter(g, graph.FilterTypeLowpass, 350, 0, 1)
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	s, err := New(g, f, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, f, s
}
