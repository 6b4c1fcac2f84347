package testutil

import (
	"math"
	"testing"
)

func TestRMS(t *testing.T) {
	if got := RMS(nil); got != 0 {
		t.Fatalf("RMS(nil) = %v, want 0", got)
	}
	if got := RMS([]float64{1, -1, 1, -1}); got != 1 {
		t.Fatalf("RMS = %v, want 1", got)
	}
	if got, want := RMS([]float64{3, 4}), math.Sqrt(12.5); math.Abs(got-want) > 1e-15 {
		t.Fatalf("RMS = %v, want %v", got, want)
	}
}

func TestRMSOfFullCycleSine(t *testing.T) {
	// Over a whole number of periods the RMS of a sine is amplitude/sqrt(2).
	s := Tone(1000, 48000, 2.0, 48)
	if got, want := RMS(s), math.Sqrt2; math.Abs(got-want) > 1e-12 {
		t.Fatalf("RMS = %v, want %v", got, want)
	}
}

func TestRisingCrossings(t *testing.T) {
	cases := []struct {
		name string
		buf  []float64
		want int
	}{
		{"empty", nil, 0},
		{"constant", []float64{1, 1, 1}, 0},
		{"single", []float64{-1, 1}, 1},
		{"square wave", []float64{1, -1, 1, -1, 1, -1, 1}, 3},
		{"touching zero counts", []float64{-1, 0, -1, 1}, 2},
		{"falling only", []float64{1, -1}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RisingCrossings(tc.buf); got != tc.want {
				t.Fatalf("RisingCrossings = %d, want %d", got, tc.want)
			}
		})
	}
}
