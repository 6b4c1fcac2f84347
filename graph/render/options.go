package render

// Config holds engine settings applied at construction.
type Config struct {
	BlockSize  int
	MasterGain float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		BlockSize:  128,
		MasterGain: 1,
	}
}

// WithBlockSize sets the internal render quantum in samples.
func WithBlockSize(blockSize int) Option {
	return func(cfg *Config) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithMasterGain sets the gain applied to the final mix before clipping.
func WithMasterGain(gain float64) Option {
	return func(cfg *Config) {
		if gain >= 0 {
			cfg.MasterGain = gain
		}
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
