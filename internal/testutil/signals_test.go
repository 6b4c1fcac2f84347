package testutil

import (
	"math"
	"testing"
)

func TestTone(t *testing.T) {
	s := Tone(1000, 48000, 0.5, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0 (phase starts at zero)", s[0])
	}
	for i, v := range s {
		if v < -0.5 || v > 0.5 {
			t.Fatalf("s[%d] = %v outside the amplitude bound", i, v)
		}
	}
}

func TestToneCycleCount(t *testing.T) {
	// 2.5 cycles; both full upward zero passes land mid-buffer.
	s := Tone(250, 48000, 1, 480)
	if got := RisingCrossings(s); got != 2 {
		t.Fatalf("crossings = %d, want 2", got)
	}
}

func TestSeededNoiseReproducible(t *testing.T) {
	a := SeededNoise(42, 1, 64)
	b := SeededNoise(42, 1, 64)
	RequireSliceNearlyEqual(t, a, b, 0)
}

func TestSeededNoiseBoundsAndSeeds(t *testing.T) {
	a := SeededNoise(1, 0.25, 128)
	for i, v := range a {
		if v < -0.25 || v >= 0.25 {
			t.Fatalf("a[%d] = %v outside [-0.25, 0.25)", i, v)
		}
	}

	b := SeededNoise(2, 0.25, 128)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulse(t *testing.T) {
	for i, v := range Impulse(8, 3) {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("Impulse(8, 3)[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestImpulsePositionOutOfRange(t *testing.T) {
	for _, at := range []int{-1, 4, 10} {
		for i, v := range Impulse(4, at) {
			if v != 0 {
				t.Fatalf("Impulse(4, %d)[%d] = %v, want 0", at, i, v)
			}
		}
	}
}
