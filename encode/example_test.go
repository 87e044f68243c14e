package encode_test

import (
	"fmt"

	"github.com/cwbudde/algo-hoa/encode"
	"github.com/cwbudde/algo-hoa/sh"
)

func Example() {
	enc, err := encode.NewEncoder(1, 48000)
	if err != nil {
		panic(err)
	}
	dec, err := encode.NewDecoder(1, 48000)
	if err != nil {
		panic(err)
	}

	// Pan a source 90 degrees to the left and listen straight at it.
	dir := sh.Direction{Azimuth: 1.5707963267948966}
	enc.SetDirection(dir)
	dec.SetDirection(dir)

	frame := make([]float64, enc.Channels())
	enc.ProcessSample(frame, 1)
	fmt.Printf("beam: %.3f\n", dec.ProcessSample(frame))
	// Output:
	// beam: 1.000
}
