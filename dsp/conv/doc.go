// Package conv provides full linear convolution for real and complex sequences.
//
// Two strategies are offered:
//
//   - Direct convolution: O(N*M) time-domain accumulation. Zero-valued input
//     samples are skipped, which makes it cheap for zero-stuffed (upsampled)
//     symbol streams.
//   - Overlap-add (OLA): FFT-based block convolution for long kernels.
//
// [Correlate] and [CorrelateComplex] build cross-correlation (and thereby
// matched filtering) on top of the same selection.
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)         // real, auto-selects algorithm
//	result, err := conv.ConvolveComplex(symbols, pulse)  // complex, auto-selects algorithm
//	result, err := conv.Direct(signal, kernel)           // force direct convolution
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// # Algorithm Selection
//
// [Convolve] and [ConvolveComplex] use direct convolution for kernels of up
// to 64 taps and overlap-add above that. The output always has length
// len(a)+len(b)-1.
package conv
