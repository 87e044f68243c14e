package sh

import (
	"fmt"
	"math"
)

// Evaluator fills ACN-ordered harmonic vectors up to a fixed maximum degree.
//
// The per-channel normalization factors are precomputed once at construction
// and the recurrence scratch is owned by the instance, so EvalInto performs
// no allocation and runs in bounded time per call. An Evaluator is not safe
// for concurrent use; audio streams own one instance each.
type Evaluator struct {
	degree int
	norms  []float64 // per ACN index
	assoc  []float64 // P_l^m(sin el) scratch, m >= 0, triangular layout
	cosm   []float64 // cos(m*az), m = 0..degree
	sinm   []float64 // sin(m*az), m = 0..degree
}

// NewEvaluator returns an Evaluator for all harmonics of degree <= degree.
func NewEvaluator(degree int) (*Evaluator, error) {
	if degree < 0 {
		return nil, fmt.Errorf("sh: evaluator degree must be >= 0: %d", degree)
	}
	e := &Evaluator{
		degree: degree,
		norms:  make([]float64, Channels(degree)),
		assoc:  make([]float64, (degree+1)*(degree+2)/2),
		cosm:   make([]float64, degree+1),
		sinm:   make([]float64, degree+1),
	}
	for i := range e.norms {
		l, m := DegreeOrder(i)
		e.norms[i] = Normalization(l, m)
	}
	return e, nil
}

// Degree returns the maximum harmonic degree.
func (e *Evaluator) Degree() int { return e.degree }

// Channels returns the vector length filled by EvalInto: (degree+1)^2.
func (e *Evaluator) Channels() int { return Channels(e.degree) }

// EvalInto fills dst[i] with the harmonic at ACN index i for the given
// direction. dst must have at least Channels() elements.
func (e *Evaluator) EvalInto(dst []float64, azimuth, elevation float64) {
	e.evalTrig(dst, math.Cos(azimuth), math.Sin(azimuth), math.Sin(elevation))
}

// evalTrig is the shared core working directly on cos/sin of the azimuth,
// so that SmoothedEvaluator can lowpass those terms before combination.
func (e *Evaluator) evalTrig(dst []float64, cosAz, sinAz, sinEl float64) {
	dst = dst[:Channels(e.degree)]

	// Multiple angles by the Chebyshev recurrence on cos(az), sin(az).
	e.cosm[0], e.sinm[0] = 1, 0
	if e.degree >= 1 {
		e.cosm[1], e.sinm[1] = cosAz, sinAz
	}
	for m := 2; m <= e.degree; m++ {
		e.cosm[m] = 2*cosAz*e.cosm[m-1] - e.cosm[m-2]
		e.sinm[m] = 2*cosAz*e.sinm[m-1] - e.sinm[m-2]
	}

	// Associated Legendre table at sin(el): diagonal seeds, one diagonal
	// step, then degree raising. No Condon-Shortley phase.
	x := sinEl
	s := math.Sqrt(math.Max(0, 1-x*x))
	pmm := 1.0
	e.assoc[0] = 1
	for m := 1; m <= e.degree; m++ {
		pmm *= float64(2*m-1) * s
		e.assoc[triIdx(m, m)] = pmm
	}
	for m := 0; m < e.degree; m++ {
		e.assoc[triIdx(m+1, m)] = float64(2*m+1) * x * e.assoc[triIdx(m, m)]
	}
	for m := 0; m <= e.degree; m++ {
		for l := m + 2; l <= e.degree; l++ {
			e.assoc[triIdx(l, m)] = (float64(2*l-1)*x*e.assoc[triIdx(l-1, m)] -
				float64(l+m-1)*e.assoc[triIdx(l-2, m)]) / float64(l - m)
		}
	}

	for l := 0; l <= e.degree; l++ {
		base := l*l + l
		for m := 0; m <= l; m++ {
			p := e.assoc[triIdx(l, m)]
			dst[base+m] = e.norms[base+m] * p * e.cosm[m]
			if m > 0 {
				dst[base-m] = e.norms[base-m] * p * e.sinm[m]
			}
		}
	}
}

// triIdx addresses the triangular (l, m>=0) scratch layout.
func triIdx(l, m int) int { return l*(l+1)/2 + m }
