package synth

import (
	"fmt"

	"github.com/cwbudde/algo-synth/graph"
)

// maxFilterGainDB caps the gain stored and pushed to the filter node.
// Larger requests are clamped, not rejected.
const maxFilterGainDB = 100

// Filter wraps one tone-shaping stage of the graph and remembers the
// parameters last applied to it. The Update methods take an optional
// value: with a value they replace the stored parameter and push it to
// the node, without one they re-apply the stored parameter unchanged.
// An explicit zero counts as a value, not as an omission.
type Filter struct {
	node             graph.FilterNode
	kind             graph.FilterType
	frequency        float64
	defaultFrequency float64
	gain             float64
	q                float64
}

// NewFilter creates a filter node on g and the wrapper tracking its
// parameters. The construction-time frequency becomes the default the
// filter returns to when a voice is released.
func NewFilter(g graph.Graph, kind graph.FilterType, frequency, gain, q float64) (*Filter, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("synth: invalid filter type: %v", kind)
	}
	if err := validateFrequency(frequency); err != nil {
		return nil, err
	}
	if err := validateQ(q); err != nil {
		return nil, err
	}
	if gain > maxFilterGainDB {
		gain = maxFilterGainDB
	}

	return &Filter{
		node:             g.NewFilterNode(kind, frequency, gain, q),
		kind:             kind,
		frequency:        frequency,
		defaultFrequency: frequency,
		gain:             gain,
		q:                q,
	}, nil
}

// UpdateKind replaces the filter type when one is given and valid,
// otherwise re-applies the current type to the node.
func (f *Filter) UpdateKind(kind ...graph.FilterType) {
	if len(kind) > 0 && kind[0].Valid() {
		f.kind = kind[0]
	}
	f.node.SetKind(f.kind)
}

// UpdateFrequency replaces the frequency when one is given, otherwise
// re-applies the current frequency to the node.
func (f *Filter) UpdateFrequency(hz ...float64) {
	if len(hz) > 0 {
		f.frequency = hz[0]
	}
	f.node.SetFrequency(f.frequency)
}

// UpdateGain replaces the gain when one is given, clamped to
// maxFilterGainDB, otherwise re-applies the current gain to the node.
func (f *Filter) UpdateGain(db ...float64) {
	if len(db) > 0 {
		v := db[0]
		if v > maxFilterGainDB {
			v = maxFilterGainDB
		}
		f.gain = v
	}
	f.node.SetGain(f.gain)
}

// UpdateQ replaces the quality factor when one is given, otherwise
// re-applies the current value to the node.
func (f *Filter) UpdateQ(q ...float64) {
	if len(q) > 0 {
		f.q = q[0]
	}
	f.node.SetQ(f.q)
}

// Connect wires the filter output into dst. Each call adds one route;
// connecting twice duplicates the route, matching the graph's semantics.
func (f *Filter) Connect(dst graph.Node) {
	f.node.Connect(dst)
}

// Kind returns the current filter type.
func (f *Filter) Kind() graph.FilterType { return f.kind }

// Frequency returns the current frequency in Hz.
func (f *Filter) Frequency() float64 { return f.frequency }

// DefaultFrequency returns the construction-time frequency baseline.
func (f *Filter) DefaultFrequency() float64 { return f.defaultFrequency }

// Gain returns the current gain in dB.
func (f *Filter) Gain() float64 { return f.gain }

// Q returns the current quality factor.
func (f *Filter) Q() float64 { return f.q }

// resetFrequency restores the construction-time frequency and pushes it
// to the node.
func (f *Filter) resetFrequency() {
	f.frequency = f.defaultFrequency
	f.node.SetFrequency(f.frequency)
}
