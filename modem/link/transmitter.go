package link

import (
	"fmt"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/dsp/pulse"
	"github.com/cwbudde/algo-comms/dsp/spectrum"
	"github.com/cwbudde/algo-comms/dsp/window"
	"github.com/cwbudde/algo-comms/measure/bandwidth"
	"github.com/cwbudde/algo-comms/modem/bits"
	"github.com/cwbudde/algo-comms/modem/constellation"
	"github.com/cwbudde/algo-comms/modem/mapping"
)

// Burst is the output of one Transmit call.
type Burst struct {
	Symbols []complex128
	Samples []complex128
}

// Transmitter maps bits to shaped baseband samples.
type Transmitter struct {
	table     *constellation.Table
	pulseType pulse.Type
	pulse     []float64
	cfg       core.ProcessorConfig
}

// chain resolves the table and pulse shared by transmitter and receiver.
func chain(scheme constellation.Scheme, pt pulse.Type, opts []core.ProcessorOption) (*constellation.Table, []float64, core.ProcessorConfig, error) {
	cfg := core.ApplyProcessorOptions(opts...)

	table := constellation.For(scheme)
	if table == nil {
		return nil, nil, cfg, fmt.Errorf("link: %w: %d", constellation.ErrUnknownScheme, int(scheme))
	}

	p, err := pulse.Generate(pt, cfg.SamplesPerSymbol, pulse.WithSampleRate(cfg.SampleRate))
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("link: %w", err)
	}
	return table, p, cfg, nil
}

// NewTransmitter returns a transmitter for the given scheme and pulse type.
// Sampling settings default to core.DefaultProcessorConfig.
func NewTransmitter(scheme constellation.Scheme, pt pulse.Type, opts ...core.ProcessorOption) (*Transmitter, error) {
	table, p, cfg, err := chain(scheme, pt, opts)
	if err != nil {
		return nil, err
	}
	return &Transmitter{table: table, pulseType: pt, pulse: p, cfg: cfg}, nil
}

// Table returns the constellation in use.
func (tx *Transmitter) Table() *constellation.Table { return tx.table }

// PulseType returns the pulse shape in use.
func (tx *Transmitter) PulseType() pulse.Type { return tx.pulseType }

// Config returns the sampling settings.
func (tx *Transmitter) Config() core.ProcessorConfig { return tx.cfg }

// Pulse returns a copy of the pulse samples.
func (tx *Transmitter) Pulse() []float64 {
	return append([]float64(nil), tx.pulse...)
}

// Transmit modulates b and shapes the resulting symbols. len(b) must be a
// multiple of the scheme's bits per symbol.
func (tx *Transmitter) Transmit(b []uint8) (Burst, error) {
	symbols, err := mapping.Modulate(b, tx.table)
	if err != nil {
		return Burst{}, err
	}
	samples, err := pulse.Shape(symbols, tx.pulse, tx.cfg.SamplesPerSymbol)
	if err != nil {
		return Burst{}, err
	}
	return Burst{Symbols: symbols, Samples: samples}, nil
}

// TransmitString sends the UTF-8 bytes of s.
func (tx *Transmitter) TransmitString(s string) (Burst, error) {
	return tx.Transmit(bits.FromString(s))
}

// Spectrum returns the frequency grid and PSD of the pulse, evaluated with
// the configured FFT size. For uncorrelated equiprobable symbols this is the
// shape of the transmitted PSD up to the average symbol energy.
func (tx *Transmitter) Spectrum() (ff, ss []float64, err error) {
	return spectrum.PSD(tx.pulse, tx.cfg.SampleRate, tx.cfg.FFTSize)
}

// Bandwidth analyses the pulse spectrum with containment fraction alpha.
func (tx *Transmitter) Bandwidth(alpha float64) (bandwidth.Analysis, error) {
	ff, ss, err := tx.Spectrum()
	if err != nil {
		return bandwidth.Analysis{}, err
	}
	return bandwidth.Analyze(ff, ss, alpha)
}

// MeasuredSpectrum estimates the PSD of transmitted samples with Welch
// averaging over segments of the configured FFT size.
func (tx *Transmitter) MeasuredSpectrum(samples []complex128, win window.Type) (ff, ss []float64, err error) {
	return spectrum.Welch(samples, tx.cfg.SampleRate, tx.cfg.FFTSize, win)
}
