// Package window generates the cosine-sum tapers used for segment-averaged
// spectrum estimates.
//
// Coefficients are w[n] = sum_k (-1)^k a_k cos(2*pi*k*n/D), with D = N-1 for
// the symmetric form and D = N for the periodic (FFT framing) form selected
// by [WithPeriodic].
package window
