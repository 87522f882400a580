package link

import (
	"fmt"

	"github.com/cwbudde/algo-comms/dsp/conv"
	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/dsp/pulse"
	"github.com/cwbudde/algo-comms/modem/bits"
	"github.com/cwbudde/algo-comms/modem/constellation"
	"github.com/cwbudde/algo-comms/modem/mapping"
)

// Errors returned by the receiver.
var (
	ErrZeroEnergy   = fmt.Errorf("link: %w: pulse has zero energy", core.ErrInvalidInput)
	ErrSampleLength = fmt.Errorf("link: %w: sample count does not match a whole number of symbols", core.ErrInvalidInput)
)

// Receiver recovers bits from symbols or shaped samples.
type Receiver struct {
	demod  *mapping.Demodulator
	pulse  []complex128
	energy float64
	fsT    int
	pulseN int
}

// NewReceiver returns the receiver matching NewTransmitter(scheme, pt, opts...).
// Decisions run on a mapping.Demodulator with default worker settings.
func NewReceiver(scheme constellation.Scheme, pt pulse.Type, opts ...core.ProcessorOption) (*Receiver, error) {
	table, p, cfg, err := chain(scheme, pt, opts)
	if err != nil {
		return nil, err
	}

	energy := 0.0
	for _, v := range p {
		energy += v * v
	}
	if energy == 0 {
		return nil, fmt.Errorf("%w: %s with fsT=%d", ErrZeroEnergy, pt, cfg.SamplesPerSymbol)
	}

	demod, err := mapping.NewDemodulator(table)
	if err != nil {
		return nil, err
	}

	return &Receiver{
		demod:  demod,
		pulse:  core.ToComplex(p),
		energy: energy,
		fsT:    cfg.SamplesPerSymbol,
		pulseN: len(p),
	}, nil
}

// Table returns the constellation in use.
func (rx *Receiver) Table() *constellation.Table { return rx.demod.Table() }

// Receive makes hard decisions on symbols and returns the decoded bits.
func (rx *Receiver) Receive(symbols []complex128) []uint8 {
	return rx.demod.Demodulate(symbols)
}

// Detect runs the matched filter over samples and returns one soft symbol
// per symbol period, scaled so a noiseless sample reproduces the
// transmitted symbol.
func (rx *Receiver) Detect(samples []complex128) ([]complex128, error) {
	extra := len(samples) - rx.pulseN
	if extra < 0 || extra%rx.fsT != 0 {
		return nil, fmt.Errorf("%w: %d samples, pulse %d, fsT %d", ErrSampleLength, len(samples), rx.pulseN, rx.fsT)
	}

	filtered, err := conv.CorrelateComplex(samples, rx.pulse)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, extra/rx.fsT+1)
	scale := complex(1/rx.energy, 0)
	for k := range out {
		out[k] = filtered[k*rx.fsT+rx.pulseN-1] * scale
	}
	return out, nil
}

// ReceiveSamples is Detect followed by Receive.
func (rx *Receiver) ReceiveSamples(samples []complex128) ([]uint8, error) {
	symbols, err := rx.Detect(samples)
	if err != nil {
		return nil, err
	}
	return rx.Receive(symbols), nil
}

// ReceiveString decodes samples carrying UTF-8 text.
func (rx *Receiver) ReceiveString(samples []complex128) (string, error) {
	b, err := rx.ReceiveSamples(samples)
	if err != nil {
		return "", err
	}
	return bits.ToString(b)
}
