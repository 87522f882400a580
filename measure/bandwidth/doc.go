// Package bandwidth estimates the occupied bandwidth of a sampled power
// spectral density.
//
// All estimators take a frequency grid ff and PSD samples SS of equal length,
// as produced by spectrum.PSD, and return a two-sided bandwidth in the units
// of ff:
//
//   - ThreeDB: twice the frequency where SS is closest to half the peak
//   - ZeroToZero: twice the frequency of the first near-zero past the peak
//   - Containment: twice the frequency enclosing a fraction alpha of the power
//
// The zero-to-zero and containment scans walk from the peak toward higher
// indices only and assume an even PSD. When a scan runs off the end of the
// grid they return an error wrapping core.ErrOutOfRange; spectra without
// zeros, or grids that are too narrow, trigger this.
//
// # Usage
//
//	ff, ss, err := spectrum.PSD(p, fs, 1024)
//	a, err := bandwidth.Analyze(ff, ss, 0.99)
//	fmt.Printf("3 dB = %.3f, 99%% = %.3f\n", a.ThreeDB, a.Containment)
package bandwidth
