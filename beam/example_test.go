package beam_test

import (
	"fmt"

	"github.com/cwbudde/algo-hoa/beam"
)

func ExampleWeights() {
	for l, w := range beam.Weights(1) {
		fmt.Printf("degree %d: %.6f\n", l, w)
	}
	// Output:
	// degree 0: 0.367203
	// degree 1: 0.210932
}

func ExampleSteerer() {
	s, err := beam.NewSteerer(1)
	if err != nil {
		panic(err)
	}

	// One frame of a first-degree set carrying a source straight ahead.
	frame := []float64{1, 0, 0, 1.7320508075688772}

	fmt.Printf("front: %.3f\n", s.Extract(frame, 0, 0))
	fmt.Printf("back:  %.3f\n", s.Extract(frame, 3.14159265, 0))
	// Output:
	// front: 1.000
	// back:  -0.266
}
