package synth

import "github.com/cwbudde/algo-synth/graph"

// Config holds the construction-time settings of a Synthesizer.
type Config struct {
	// Name labels the instrument. It has no effect on sound.
	Name string

	// Gain offsets the divisor used when mapping pressure to loudness:
	// a pressure value p ramps the voice gain toward p/(128+Gain).
	Gain float64

	// FadeTime is how long a released voice takes to fade to silence,
	// in seconds.
	FadeTime float64

	// Shape selects the oscillator waveform of the basic synthesizer.
	// Custom synthesizers ignore it.
	Shape graph.Shape

	// DisableNormalization keeps a custom waveform at the amplitude its
	// coefficients describe instead of scaling the rendered table to a
	// peak of 1. Basic synthesizers ignore it.
	DisableNormalization bool
}

// DefaultConfig returns the standard instrument settings.
func DefaultConfig() Config {
	return Config{
		Gain:     0,
		FadeTime: 0.2,
		Shape:    graph.ShapeSine,
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithName sets the instrument label.
func WithName(name string) Option {
	return func(cfg *Config) {
		cfg.Name = name
	}
}

// WithGain sets the pressure scaling offset. Values at or below -128
// are ignored to keep the pressure divisor positive.
func WithGain(gain float64) Option {
	return func(cfg *Config) {
		if gain > -pressureDivisorBase {
			cfg.Gain = gain
		}
	}
}

// WithFadeTime sets the release fade duration in seconds.
func WithFadeTime(seconds float64) Option {
	return func(cfg *Config) {
		if seconds > 0 {
			cfg.FadeTime = seconds
		}
	}
}

// WithShape selects the basic oscillator waveform.
func WithShape(shape graph.Shape) Option {
	return func(cfg *Config) {
		if shape.Valid() {
			cfg.Shape = shape
		}
	}
}

// WithDisableNormalization makes NewCustom keep the waveform's natural
// coefficient amplitude instead of peak-normalizing it.
func WithDisableNormalization() Option {
	return func(cfg *Config) {
		cfg.DisableNormalization = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
