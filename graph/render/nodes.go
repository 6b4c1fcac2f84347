package render

import (
	"github.com/cwbudde/algo-synth/graph"
	"github.com/cwbudde/algo-vecmath"
)

// renderer produces one block of samples for a render pass. The returned
// slice stays valid until the next pass and must not be modified by the
// caller.
type renderer interface {
	renderBlock(pass uint64) []float64
}

// inputAdder is implemented by nodes that accept incoming connections.
type inputAdder interface {
	addInput(src renderer)
}

// connectNodes routes src into dst. Source-only nodes do not implement
// inputAdder, so connecting into them does nothing.
func connectNodes(src renderer, dst graph.Node) {
	if sink, ok := dst.(inputAdder); ok {
		sink.addInput(src)
	}
}

// nodeCore carries render state shared by every node kind. The pass
// counter makes a node render once per block no matter how many nodes
// pull from it; a feedback cycle reads the previous block instead of
// recursing forever.
type nodeCore struct {
	e        *Engine
	out      []float64
	lastPass uint64
}

// begin reports whether the node still has to render for pass.
func (n *nodeCore) begin(pass uint64) bool {
	if n.lastPass == pass {
		return false
	}

	n.lastPass = pass

	return true
}

// mixCore extends nodeCore with summing over incoming connections.
type mixCore struct {
	nodeCore
	inputs []renderer
}

func (m *mixCore) addInput(src renderer) {
	m.inputs = append(m.inputs, src)
}

func (m *mixCore) sumInputs(pass uint64) {
	clear(m.out)
	for _, in := range m.inputs {
		vecmath.AddBlockInPlace(m.out, in.renderBlock(pass))
	}
}

// gainNode scales its mixed input by an automatable gain.
type gainNode struct {
	mixCore
	gain param
}

func (g *gainNode) Connect(dst graph.Node) {
	connectNodes(g, dst)
}

func (g *gainNode) SetGain(v float64) {
	g.gain.set(v)
}

func (g *gainNode) RampGainLinear(v, atTime float64) {
	g.gain.rampTo(v, atTime, g.e.Now(), curveLinear)
}

func (g *gainNode) renderBlock(pass uint64) []float64 {
	if !g.begin(pass) {
		return g.out
	}

	g.sumInputs(pass)

	t0 := g.e.Now()
	v := g.gain.at(t0)
	if !g.gain.active {
		if v != 1 {
			vecmath.ScaleBlockInPlace(g.out, v)
		}

		return g.out
	}

	dt := 1 / g.e.sampleRate
	for i := range g.out {
		g.out[i] *= g.gain.at(t0 + float64(i)*dt)
	}

	return g.out
}

// filterNode shapes its mixed input with a single RBJ biquad. Parameter
// changes rebuild the coefficients at the next block boundary; the
// delay-line state carries across, so updates do not click.
type filterNode struct {
	mixCore
	section biquadSection

	kind   graph.FilterType
	freq   float64
	gainDB float64
	q      float64
	dirty  bool
}

func (f *filterNode) Connect(dst graph.Node) {
	connectNodes(f, dst)
}

func (f *filterNode) SetKind(kind graph.FilterType) {
	if kind == f.kind {
		return
	}

	f.kind = kind
	f.dirty = true
}

func (f *filterNode) SetFrequency(hz float64) {
	if hz == f.freq {
		return
	}

	f.freq = hz
	f.dirty = true
}

func (f *filterNode) SetGain(db float64) {
	if db == f.gainDB {
		return
	}

	f.gainDB = db
	f.dirty = true
}

func (f *filterNode) SetQ(q float64) {
	if q == f.q {
		return
	}

	f.q = q
	f.dirty = true
}

func (f *filterNode) rebuild() {
	freq := clamp(f.freq, 1, f.e.sampleRate*0.49)
	f.section.setCoefficients(designBiquad(f.kind, freq, f.gainDB, f.q, f.e.sampleRate))
	f.dirty = false
}

func (f *filterNode) renderBlock(pass uint64) []float64 {
	if !f.begin(pass) {
		return f.out
	}

	f.sumInputs(pass)

	if f.dirty {
		f.rebuild()
	}

	f.section.processBlock(f.out)

	return f.out
}

// destinationNode is the terminal mix bus the engine reads from.
type destinationNode struct {
	mixCore
}

func (d *destinationNode) Connect(dst graph.Node) {
	connectNodes(d, dst)
}

func (d *destinationNode) renderBlock(pass uint64) []float64 {
	if !d.begin(pass) {
		return d.out
	}

	d.sumInputs(pass)

	return d.out
}

func clamp(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}

	return v
}
