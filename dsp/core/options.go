package core

// ProcessorConfig defines the sampling settings shared by a transmit chain.
type ProcessorConfig struct {
	// SampleRate is fs. A value of 1 selects discrete-time pulse normalization.
	SampleRate float64
	// SamplesPerSymbol is fsT, the oversampling factor of the pulse shaper.
	SamplesPerSymbol int
	// FFTSize is the transform length used for spectrum estimates.
	FFTSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns discrete-time defaults: fs=1, eight samples
// per symbol and a 1024-point transform.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:       1,
		SamplesPerSymbol: 8,
		FFTSize:          1024,
	}
}

// WithSampleRate sets the sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSamplesPerSymbol sets the oversampling factor.
func WithSamplesPerSymbol(fsT int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if fsT > 0 {
			cfg.SamplesPerSymbol = fsT
		}
	}
}

// WithFFTSize sets the spectrum transform length.
func WithFFTSize(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.FFTSize = n
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
