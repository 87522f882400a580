// Package link composes the modulation building blocks into a linear
// baseband transmit chain and its matched-filter receiver.
//
// A [Transmitter] maps bits to constellation symbols and shapes them with a
// pulse of fsT samples at sample rate fs. A [Receiver] built with the same
// scheme, pulse and sampling settings correlates the samples with the pulse,
// samples the result once per symbol and makes hard decisions:
//
//	tx, _ := link.NewTransmitter(constellation.QPSK, pulse.TypeHalfSine, core.WithSamplesPerSymbol(16))
//	burst, _ := tx.Transmit(payload)
//	rx, _ := link.NewReceiver(constellation.QPSK, pulse.TypeHalfSine, core.WithSamplesPerSymbol(16))
//	bits, _ := rx.ReceiveSamples(burst.Samples)
//
// All built-in pulses span exactly one symbol period, so adjacent symbols do
// not overlap and the noiseless chain reproduces its input.
package link
