package synth

import (
	"math"
	"testing"
)

func TestNoteFrequencyReference(t *testing.T) {
	if got := NoteFrequency(69); !almostEqual(got, 440, 1e-12) {
		t.Fatalf("NoteFrequency(69) = %v, want 440", got)
	}
}

func TestNoteFrequencyOctaveDoubling(t *testing.T) {
	for note := -24.0; note <= 120; note++ {
		lo := NoteFrequency(note)
		hi := NoteFrequency(note + 12)
		if math.Abs(hi-2*lo) > 1e-9*lo {
			t.Fatalf("NoteFrequency(%v+12) = %v, want 2*%v", note, hi, lo)
		}
	}
}

func TestNoteFrequencyKnownNotes(t *testing.T) {
	tests := []struct {
		note float64
		want float64
	}{
		{57, 220},
		{60, 261.6255653005986},
		{69, 440},
		{69.5, 452.8929841231365},
		{81, 880},
	}
	for _, tt := range tests {
		if got := NoteFrequency(tt.note); !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("NoteFrequency(%v) = %v, want %v", tt.note, got, tt.want)
		}
	}
}

func TestNoteFrequencyFiniteAndPositive(t *testing.T) {
	for _, note := range []float64{-200, -69, 0, 34.7, 127, 300} {
		got := NoteFrequency(note)
		if !isFinite(got) || got <= 0 {
			t.Errorf("NoteFrequency(%v) = %v, want finite and positive", note, got)
		}
	}
}

func BenchmarkNoteFrequency(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = NoteFrequency(float64(i % 128))
	}
	_ = sink
}
