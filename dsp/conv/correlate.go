package conv

import "math/cmplx"

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1.
// Output index k corresponds to lag k - (len(b) - 1).
//
// Cross-correlation is convolution with the time-reversed second signal.
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	reversed := make([]float64, len(b))
	for i, v := range b {
		reversed[len(b)-1-i] = v
	}
	return Convolve(a, reversed)
}

// CorrelateComplex computes sum_n a[n+lag] * conj(b[n]) for every lag, with
// the same output layout as [Correlate]. With b set to a pulse shape this is
// the matched filter output; index k*fsT + len(b) - 1 is the correlation with
// the pulse starting at sample k*fsT.
func CorrelateComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	reversed := make([]complex128, len(b))
	for i, v := range b {
		reversed[len(b)-1-i] = cmplx.Conj(v)
	}
	return ConvolveComplex(a, reversed)
}

// AutoCorrelate computes the auto-correlation of a.
// The result has length 2*len(a) - 1 with the zero lag at index len(a) - 1.
func AutoCorrelate(a []float64) ([]float64, error) {
	return Correlate(a, a)
}
