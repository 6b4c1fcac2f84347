package synth_test

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth"
)

func ExampleNoteFrequency() {
	fmt.Printf("%.0f\n", synth.NoteFrequency(69))
	fmt.Printf("%.0f\n", synth.NoteFrequency(81))
	fmt.Printf("%.2f\n", synth.NoteFrequency(60))

	// Output:
	// 440
	// 880
	// 261.63
}

func ExampleWaveformFromFunc() {
	// Harmonics falling off as 1/n approximate a sawtooth timbre.
	w, err := synth.WaveformFromFunc(func(n int) float64 { return 1 / float64(n) }, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(w.Sine)
	fmt.Println(w.Cosine)
	fmt.Println(w.Amplitude)

	// Output:
	// [0 1 0.5 0.3333333333333333 0.25]
	// [0 0 0 0 0]
	// 1
}
