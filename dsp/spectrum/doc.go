// Package spectrum provides the numerical Fourier transform and spectrum-domain
// utilities used to characterize shaped pulses and sample streams.
//
// [NumericalFT] approximates a continuous-time Fourier transform from samples:
// the input is zero-padded to N points, transformed, shifted so that index 0
// corresponds to -fs/2, and scaled by 1/fs. [Frequencies] returns the
// matching grid, and [PSD] combines both into a (frequency, power) pair ready
// for the estimators in measure/bandwidth.
//
// [Welch] estimates the PSD of a long sample stream, such as a shaped symbol
// burst, by averaging windowed periodograms.
package spectrum
