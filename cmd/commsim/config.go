package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/dsp/pulse"
	"github.com/cwbudde/algo-comms/modem/constellation"
)

// Config is the merged result of defaults, config file, COMMSIM_* environment
// variables and command-line flags, in increasing priority.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Sampling SamplingConfig `mapstructure:"sampling"`
	// Workers bounds the demodulator goroutines; 0 selects GOMAXPROCS.
	Workers int `mapstructure:"workers"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// SamplingConfig holds the transmit chain settings.
type SamplingConfig struct {
	SampleRate       float64 `mapstructure:"sample_rate"`
	SamplesPerSymbol int     `mapstructure:"samples_per_symbol"`
	FFTSize          int     `mapstructure:"fft_size"`
	Alpha            float64 `mapstructure:"alpha"`
	Pulse            string  `mapstructure:"pulse"`  // pulse name or "all"
	Scheme           string  `mapstructure:"scheme"` // scheme name
}

func setDefaults(v *viper.Viper) {
	def := core.DefaultProcessorConfig()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("sampling.sample_rate", def.SampleRate)
	v.SetDefault("sampling.samples_per_symbol", def.SamplesPerSymbol)
	v.SetDefault("sampling.fft_size", def.FFTSize)
	v.SetDefault("sampling.alpha", 0.99)
	v.SetDefault("sampling.pulse", pulse.TypeRect.String())
	v.SetDefault("sampling.scheme", "qpsk")

	v.SetDefault("workers", 0)
}

// loadConfig reads configuration into cfg. An explicitly named file must
// exist; without one, commsim.{yaml,toml,json} is looked up in the working
// directory and ~/.config/commsim and silently skipped when absent.
func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("commsim")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/commsim")
	}

	v.SetEnvPrefix("COMMSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return &cfg, nil
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format: %w: %q (want text or json)", core.ErrInvalidInput, c.Log.Format)
	}

	s := c.Sampling
	if !(s.SampleRate > 0) {
		return fmt.Errorf("sampling.sample_rate: %w: %v", core.ErrInvalidInput, s.SampleRate)
	}
	if s.SamplesPerSymbol < 1 {
		return fmt.Errorf("sampling.samples_per_symbol: %w: %d", core.ErrInvalidInput, s.SamplesPerSymbol)
	}
	if s.FFTSize < s.SamplesPerSymbol {
		return fmt.Errorf("sampling.fft_size: %w: %d is shorter than the pulse (%d)", core.ErrInvalidInput, s.FFTSize, s.SamplesPerSymbol)
	}
	if !(s.Alpha > 0 && s.Alpha < 1) {
		return fmt.Errorf("sampling.alpha: %w: %v", core.ErrInvalidInput, s.Alpha)
	}
	if _, err := c.pulseTypes(); err != nil {
		return fmt.Errorf("sampling.pulse: %w", err)
	}
	if _, err := constellation.ParseScheme(s.Scheme); err != nil {
		return fmt.Errorf("sampling.scheme: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers: %w: %d", core.ErrInvalidInput, c.Workers)
	}
	return nil
}

// pulseTypes resolves Sampling.Pulse, expanding "all".
func (c *Config) pulseTypes() ([]pulse.Type, error) {
	if strings.EqualFold(c.Sampling.Pulse, "all") {
		return pulse.Types(), nil
	}
	t, err := pulse.ParseType(c.Sampling.Pulse)
	if err != nil {
		return nil, err
	}
	return []pulse.Type{t}, nil
}

// processorOptions converts the sampling section for link and core consumers.
func (c *Config) processorOptions() []core.ProcessorOption {
	return []core.ProcessorOption{
		core.WithSampleRate(c.Sampling.SampleRate),
		core.WithSamplesPerSymbol(c.Sampling.SamplesPerSymbol),
		core.WithFFTSize(c.Sampling.FFTSize),
	}
}

func newLogger(cfg LogConfig) *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log
}
