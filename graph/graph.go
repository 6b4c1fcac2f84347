package graph

// Node is anything that can be wired into the rendering graph.
// Connect routes this node's output into dst. Connecting the same pair
// twice creates two routes; deduplication is the caller's responsibility.
type Node interface {
	Connect(dst Node)
}

// Oscillator is a periodic signal source. It renders silence until Start
// is called. Frequency changes are either immediate or scheduled ramps
// ending at atTime (seconds on the graph clock).
type Oscillator interface {
	Node

	// SetShape selects one of the built-in waveform shapes.
	SetShape(shape Shape)

	// SetWave replaces the built-in shape with a custom periodic waveform
	// previously created by the owning Graph.
	SetWave(wave Wave)

	// SetFrequency sets the oscillator frequency in Hz immediately.
	SetFrequency(hz float64)

	// RampFrequencyLinear schedules a linear glide to hz ending at atTime.
	RampFrequencyLinear(hz, atTime float64)

	// RampFrequencyExponential schedules an exponential glide to hz ending
	// at atTime. Implementations fall back to a linear segment when the
	// current and target values straddle zero.
	RampFrequencyExponential(hz, atTime float64)

	// Start begins rendering. Calling Start more than once has no effect.
	Start()
}

// Gain scales its summed input by a gain factor.
type Gain interface {
	Node

	// SetGain sets the gain factor immediately.
	SetGain(value float64)

	// RampGainLinear schedules a linear gain change ending at atTime.
	RampGainLinear(value, atTime float64)
}

// FilterNode is a single tone-shaping stage. Parameter setters take effect
// immediately (no ramps); gain is interpreted in dB for the shelf and peak
// kinds and ignored by the others.
type FilterNode interface {
	Node

	SetKind(kind FilterType)
	SetFrequency(hz float64)
	SetGain(db float64)
	SetQ(q float64)
}

// Wave is an opaque handle to a custom periodic waveform. Handles are
// created by a Graph and are only meaningful when passed back to an
// Oscillator of the same Graph.
type Wave interface {
	// HarmonicCount reports the number of harmonic coefficient pairs the
	// wave was built from.
	HarmonicCount() int
}

// Graph creates nodes and owns the audio clock.
//
// All methods are single-threaded: callers must not invoke them
// concurrently with each other or with the graph's rendering.
type Graph interface {
	// NewOscillator creates an unstarted oscillator with default shape
	// and frequency.
	NewOscillator() Oscillator

	// NewGain creates a gain node with unity gain.
	NewGain() Gain

	// NewFilterNode creates a filter stage with the given initial
	// parameters. Implementations clamp rather than reject out-of-range
	// values.
	NewFilterNode(kind FilterType, frequency, gain, q float64) FilterNode

	// NewPeriodicWave builds a custom waveform from harmonic sine and
	// cosine coefficient slices of equal length (index 0 is the DC term).
	// Unless disableNormalization is set, the waveform is scaled to unit
	// peak amplitude. Graphs without periodic-waveform support return an
	// error; check SupportsPeriodicWaves first.
	NewPeriodicWave(sine, cosine []float64, disableNormalization bool) (Wave, error)

	// SupportsPeriodicWaves reports whether NewPeriodicWave is available
	// on this graph.
	SupportsPeriodicWaves() bool

	// Destination returns the terminal mix bus. Sound reaches the output
	// only through nodes connected (directly or transitively) to it.
	Destination() Node

	// Now returns the current time of the graph's monotonic audio clock
	// in seconds.
	Now() float64
}
