package mapping_test

import (
	"fmt"

	"github.com/cwbudde/algo-comms/modem/bits"
	"github.com/cwbudde/algo-comms/modem/constellation"
	"github.com/cwbudde/algo-comms/modem/mapping"
)

func ExampleModulate() {
	tab := constellation.For(constellation.QPSK)
	symbols, err := mapping.Modulate(bits.FromInt(988, 12), tab)
	if err != nil {
		panic(err)
	}
	fmt.Println(symbols)

	back := mapping.Demodulate(symbols, tab)
	fmt.Println(bits.ToInt(back))
	// Output:
	// [(1+1i) (-1-1i) (-1-1i) (1-1i) (-1-1i) (1+1i)]
	// 988
}

func ExampleDemodulator() {
	d, err := mapping.NewDemodulator(constellation.For(constellation.BPSK), mapping.WithWorkers(2), mapping.WithBlockSize(2))
	if err != nil {
		panic(err)
	}
	fmt.Println(d.Demodulate([]complex128{0.8, -1.3, 0.1, -0.2, 2}))
	// Output:
	// [0 1 0 1 0]
}
