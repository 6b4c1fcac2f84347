package testutil

import "math"

// RMS returns the root-mean-square level of the signal. An empty slice
// has level 0.
func RMS(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range buf {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(buf)))
}

// RisingCrossings counts upward zero crossings, one per waveform cycle
// for periodic signals. Useful as a cheap frequency estimate.
func RisingCrossings(buf []float64) int {
	n := 0
	for i := 1; i < len(buf); i++ {
		if buf[i-1] < 0 && buf[i] >= 0 {
			n++
		}
	}
	return n
}
