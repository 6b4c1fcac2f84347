// Package synth implements a monophonic-per-channel synthesizer engine.
//
// A [Synthesizer] consumes performance events (note on/off, pressure,
// pitch bend, control change) addressed to independent channels and turns
// them into parameter updates on a [graph.Graph]: each channel owns at
// most one oscillator/gain pair (its voice), created on the first note,
// then retuned and reused, never reallocated. A shared [Filter] shapes
// the mix of all voices.
//
// Two variants share the same state machine: [New] plays one of the
// built-in waveform shapes, [NewCustom] plays a periodic waveform built
// from harmonic coefficients with [NewWaveform] or [WaveformFromFunc].
//
// Dispatching is single-threaded and non-blocking. Time-based changes
// (fades, glides) are scheduled as ramps on the graph's clock and
// rendered asynchronously by the graph.
package synth
