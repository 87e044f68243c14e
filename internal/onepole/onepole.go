// Package onepole implements the one-pole lowpass used for control-parameter
// smoothing. Control inputs (directions, radii, gains) arrive asynchronously
// relative to the sample clock and must not step discontinuously into the
// per-sample formulas.
package onepole

import "math"

// Filter is a one-pole lowpass parameter smoother:
//
//	y += coeff * (x - y)
type Filter struct {
	coeff  float64
	state  float64
	primed bool
}

// New returns a smoother with the given time constant in seconds.
// A non-positive time constant disables smoothing (the filter tracks its
// input exactly).
func New(tauSeconds, sampleRate float64) Filter {
	coeff := 1.0
	if tauSeconds > 0 && sampleRate > 0 {
		coeff = 1 - math.Exp(-1/(tauSeconds*sampleRate))
	}
	return Filter{coeff: coeff}
}

// Next advances the smoother one sample toward x and returns the new value.
// The first call primes the state to x so a fresh instance does not sweep in
// from zero.
func (f *Filter) Next(x float64) float64 {
	if !f.primed {
		f.state = x
		f.primed = true
		return x
	}
	f.state += f.coeff * (x - f.state)
	return f.state
}

// Value returns the current state without advancing.
func (f *Filter) Value() float64 { return f.state }

// Reset clears the state; the next call to Next primes it again.
func (f *Filter) Reset() {
	f.state = 0
	f.primed = false
}
