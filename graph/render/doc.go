// Package render is a software implementation of the audio graph
// contract in [github.com/cwbudde/algo-synth/graph].
//
// An [Engine] owns a set of nodes, a monotonic sample clock, and a
// terminal mix bus. Rendering is pull-based: each call to
// [Engine.Render] evaluates the graph in fixed-size blocks and writes
// mono samples in [-1, 1] into the caller's slice. There is no internal
// real-time dependency, so the same engine serves both offline
// bounce-to-disk rendering and live playback from an audio callback.
//
// # Usage
//
//	engine, err := render.New(48000)
//	if err != nil {
//		...
//	}
//
//	osc := engine.NewOscillator()
//	amp := engine.NewGain()
//	osc.Connect(amp)
//	amp.Connect(engine.Destination())
//	osc.Start()
//
//	buf := make([]float64, 48000)
//	engine.Render(buf) // one second of audio
//
// # Scheduling
//
// Ramp methods such as [graph.Gain.RampGainLinear] schedule a segment
// from the parameter's current value toward a target, ending at a time
// on the graph clock. At most one segment per parameter is in flight;
// scheduling again replaces it, so the most recent call wins. The clock
// ([Engine.Now]) advances only when Render consumes samples, which
// keeps scheduled times meaningful for offline rendering.
//
// # Custom waveforms
//
// [Engine.NewPeriodicWave] renders harmonic sine and cosine
// coefficients into a shared single-cycle wavetable via an inverse FFT.
// Oscillators play the table with linear interpolation instead of the
// built-in shapes.
//
// # Concurrency
//
// Engine and node methods are not safe for concurrent use. Callers that
// drive the graph from a control thread while an audio callback renders
// must serialize the two, for example with the beep speaker lock.
package render
