// Package pulse synthesizes transmit pulses and shapes symbol sequences with
// them.
//
// Pulses are sampled over one symbol period of fsT samples. With the default
// sample rate fs=1 they are scaled like discrete-time pulses (sum of squares
// equals 1); with [WithSampleRate] they are scaled like samples of a
// continuous-time pulse, so that the sum of squares times the sample spacing
// 1/fs equals 1.
//
// [Shape] upsamples a symbol sequence by fsT and convolves it with a pulse,
// the role an interpolation filter plays in a transmitter.
package pulse
