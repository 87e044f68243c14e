package radial

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ImpulseResponse resets f and returns its first n output samples for a
// unit impulse. It is an analysis helper; it mutates the filter state.
func ImpulseResponse(f *Filter, n int) []float64 {
	f.Reset()
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	out[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		out[i] = f.ProcessSample(0)
	}
	f.Reset()
	return out
}

// MagnitudeResponse returns the magnitude of the filter's frequency
// response on n/2+1 bins from DC to Nyquist, computed from an n-point
// impulse response. n must be a power of two. Like ImpulseResponse it
// resets the filter around the measurement.
func MagnitudeResponse(f *Filter, n int) ([]float64, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("radial: fft size must be a power of two: %d", n)
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("radial: %w", err)
	}

	ir := ImpulseResponse(f, n)
	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("radial: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}
