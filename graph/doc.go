// Package graph defines the audio-rendering capability consumed by the
// synthesizer core.
//
// A [Graph] creates oscillator, gain and filter nodes and exposes the audio
// clock. Nodes are wired with [Node.Connect] and driven through immediate
// setters and scheduled ramps. Ramps are future automation on the graph's
// own timeline: scheduling returns immediately, and a newer ramp on the same
// parameter supersedes the prior one (last-scheduled-wins).
//
// This package contains interfaces and node vocabulary only. A software
// implementation lives in graph/render; other implementations (for example a
// browser audio context behind a JS bridge) can satisfy the same interfaces.
package graph
