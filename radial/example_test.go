package radial_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hoa/radial"
)

func ExampleNF() {
	// Model a source at 1 m reproduced by speakers at 2 m, degree 0:
	// the filter reduces to the plain distance gain.
	f, err := radial.NF(0, 1, 2, 48000)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f\n", f.ProcessSample(1))
	// Output:
	// 2.0
}

func ExampleNFC() {
	f, err := radial.NFC(2, 2, 48000)
	if err != nil {
		panic(err)
	}
	// A constant input decays toward zero: near-field compensation has
	// no response at DC.
	y := 0.0
	for i := 0; i < 48000; i++ {
		y = f.ProcessSample(1)
	}
	fmt.Println(math.Abs(y) < 1e-6)
	// Output:
	// true
}
