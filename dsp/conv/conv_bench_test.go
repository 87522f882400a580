package conv

import (
	"fmt"
	"math"
	"testing"
)

func benchmarkSignal(n int) []complex128 {
	s := make([]complex128, n)
	for i := range s {
		s[i] = complex(math.Sin(float64(i)*0.01), math.Cos(float64(i)*0.013))
	}
	return s
}

func BenchmarkConvolveComplex(b *testing.B) {
	signal := benchmarkSignal(4096)

	for _, kernelLen := range []int{8, 32, 64, 128, 512} {
		kernel := benchmarkSignal(kernelLen)
		b.Run(fmt.Sprintf("kernel=%d", kernelLen), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := ConvolveComplex(signal, kernel); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDirectZeroStuffed(b *testing.B) {
	// 512 symbols upsampled by 16.
	const fsT = 16
	signal := make([]complex128, 511*fsT+1)
	for k := 0; k < 512; k++ {
		signal[k*fsT] = 1 + 1i
	}
	kernel := benchmarkSignal(fsT)
	dst := make([]complex128, len(signal)+len(kernel)-1)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		DirectComplexTo(dst, signal, kernel)
	}
}
