package synth

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/graph"
)

func newTestFilter(t *testing.T) (*testGraph, *Filter, *testFilterNode) {
	t.Helper()
	g := &testGraph{}
	f, err := NewFilter(g, graph.FilterTypeLowpass, 350, 0, 1)
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	return g, f, g.filterNodes[0]
}

func TestNewFilterInitializesNode(t *testing.T) {
	g := &testGraph{}
	f, err := NewFilter(g, graph.FilterTypePeak, 1200, 6, 2.5)
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	node := g.filterNodes[0]
	if node.kind != graph.FilterTypePeak || node.frequency != 1200 || node.gain != 6 || node.q != 2.5 {
		t.Errorf("node initialized as (%v, %v, %v, %v), want (peak, 1200, 6, 2.5)",
			node.kind, node.frequency, node.gain, node.q)
	}
	if f.DefaultFrequency() != 1200 {
		t.Errorf("DefaultFrequency() = %v, want 1200", f.DefaultFrequency())
	}
}

func TestNewFilterValidation(t *testing.T) {
	g := &testGraph{}

	if _, err := NewFilter(nil, graph.FilterTypeLowpass, 350, 0, 1); err == nil {
		t.Error("nil graph should fail")
	}
	if _, err := NewFilter(g, graph.FilterType(99), 350, 0, 1); err == nil {
		t.Error("invalid filter type should fail")
	}
	if _, err := NewFilter(g, graph.FilterTypeLowpass, 0, 0, 1); err == nil {
		t.Error("zero frequency should fail")
	}
	if _, err := NewFilter(g, graph.FilterTypeLowpass, math.NaN(), 0, 1); err == nil {
		t.Error("NaN frequency should fail")
	}
	if _, err := NewFilter(g, graph.FilterTypeLowpass, 350, 0, 0); err == nil {
		t.Error("zero q should fail")
	}
}

func TestNewFilterClampsGain(t *testing.T) {
	g := &testGraph{}
	f, err := NewFilter(g, graph.FilterTypePeak, 350, 150, 1)
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	if f.Gain() != 100 {
		t.Errorf("Gain() = %v, want 100", f.Gain())
	}
	if g.filterNodes[0].gain != 100 {
		t.Errorf("node gain = %v, want 100", g.filterNodes[0].gain)
	}
}

func TestUpdateGainClampAndReapply(t *testing.T) {
	_, f, node := newTestFilter(t)

	f.UpdateGain(150)
	if f.Gain() != 100 {
		t.Errorf("Gain() = %v, want 100 (clamped)", f.Gain())
	}

	// No argument re-applies the stored value to the node.
	f.UpdateGain()
	if len(node.gainSets) != 2 {
		t.Fatalf("node received %d gain writes, want 2", len(node.gainSets))
	}
	if node.gainSets[0] != 100 || node.gainSets[1] != 100 {
		t.Errorf("node gain writes = %v, want [100 100]", node.gainSets)
	}

	// Negative gains pass through unclamped.
	f.UpdateGain(-30)
	if f.Gain() != -30 {
		t.Errorf("Gain() = %v, want -30", f.Gain())
	}
}

func TestUpdateFrequencyExplicitZero(t *testing.T) {
	_, f, node := newTestFilter(t)

	// Zero is a value, not an omission.
	f.UpdateFrequency(0)
	if f.Frequency() != 0 {
		t.Errorf("Frequency() = %v, want 0", f.Frequency())
	}
	if len(node.freqSets) != 1 || node.freqSets[0] != 0 {
		t.Errorf("node frequency writes = %v, want [0]", node.freqSets)
	}

	f.UpdateFrequency()
	if len(node.freqSets) != 2 || node.freqSets[1] != 0 {
		t.Errorf("re-apply should push the stored 0, got %v", node.freqSets)
	}
}

func TestUpdateKind(t *testing.T) {
	_, f, node := newTestFilter(t)

	f.UpdateKind(graph.FilterTypeHighShelf)
	if f.Kind() != graph.FilterTypeHighShelf {
		t.Errorf("Kind() = %v, want highshelf", f.Kind())
	}

	// An unknown kind is ignored; the current one is re-applied.
	f.UpdateKind(graph.FilterType(99))
	if f.Kind() != graph.FilterTypeHighShelf {
		t.Errorf("Kind() = %v after invalid update, want highshelf", f.Kind())
	}
	if len(node.kindSets) != 2 || node.kindSets[1] != graph.FilterTypeHighShelf {
		t.Errorf("node kind writes = %v, want highshelf re-applied", node.kindSets)
	}
}

func TestUpdateQ(t *testing.T) {
	_, f, node := newTestFilter(t)

	f.UpdateQ(0.5)
	f.UpdateQ()

	if f.Q() != 0.5 {
		t.Errorf("Q() = %v, want 0.5", f.Q())
	}
	if len(node.qSets) != 2 || node.qSets[1] != 0.5 {
		t.Errorf("node q writes = %v, want [0.5 0.5]", node.qSets)
	}
}

func TestFilterConnect(t *testing.T) {
	g, f, node := newTestFilter(t)

	f.Connect(g.Destination())
	f.Connect(g.Destination())

	if len(node.connected) != 2 {
		t.Errorf("node has %d connections, want 2 (one per call)", len(node.connected))
	}
}

func TestResetFrequency(t *testing.T) {
	_, f, node := newTestFilter(t)

	f.UpdateFrequency(990)
	f.resetFrequency()

	if f.Frequency() != 350 {
		t.Errorf("Frequency() = %v, want 350", f.Frequency())
	}
	if got := node.freqSets[len(node.freqSets)-1]; got != 350 {
		t.Errorf("node frequency = %v, want 350", got)
	}
}
