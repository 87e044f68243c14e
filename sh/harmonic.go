package sh

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hoa/internal/specfunc"
)

// Normalization returns the N3D factor
//
//	sqrt((2 - delta(m)) * (2l+1) * (l-|m|)! / (l+|m|)!)
//
// with delta(m) = 1 for m = 0. Panics if l < 0 or |m| > l.
func Normalization(l, m int) float64 {
	validateDegreeOrder(l, m)
	am := m
	if am < 0 {
		am = -am
	}
	scale := 2.0
	if m == 0 {
		scale = 1
	}
	return math.Sqrt(scale * float64(2*l+1) *
		specfunc.Factorial(l-am) / specfunc.Factorial(l+am))
}

// Harmonic evaluates the real N3D spherical harmonic of degree l and order m
// at the given azimuth and elevation (radians).
//
// The azimuth dependence uses the multiple-angle identities
// cos(m*az) = T_m(cos az) and sin(m*az) = U_{m-1}(cos az)*sin(az), which stay
// numerically exact for large m without evaluating trig functions of m*az.
//
// Panics if l < 0 or |m| > l (caller programming error).
func Harmonic(l, m int, azimuth, elevation float64) float64 {
	validateDegreeOrder(l, m)
	am := m
	if am < 0 {
		am = -am
	}
	p := specfunc.AssocLegendreP(l, am, math.Sin(elevation))
	var trig float64
	if m < 0 {
		trig = specfunc.ChebyshevU(am-1, math.Cos(azimuth)) * math.Sin(azimuth)
	} else {
		trig = specfunc.ChebyshevT(am, math.Cos(azimuth))
	}
	return Normalization(l, m) * p * trig
}

// HarmonicACN evaluates the harmonic addressed by an ACN index.
// Panics if acn < 0.
func HarmonicACN(acn int, azimuth, elevation float64) float64 {
	if acn < 0 {
		panic(fmt.Sprintf("sh: negative ACN index %d", acn))
	}
	l, m := DegreeOrder(acn)
	return Harmonic(l, m, azimuth, elevation)
}

// HarmonicVector returns the harmonics for ACN indices 0..n-1. It allocates
// the result; audio-rate callers should use [Evaluator.EvalInto] instead.
// Panics if n <= 0.
func HarmonicVector(n int, azimuth, elevation float64) []float64 {
	if n <= 0 {
		panic(fmt.Sprintf("sh: invalid vector length %d", n))
	}
	dst := make([]float64, n)
	for i := range dst {
		dst[i] = HarmonicACN(i, azimuth, elevation)
	}
	return dst
}

func validateDegreeOrder(l, m int) {
	if l < 0 || m < -l || m > l {
		panic(fmt.Sprintf("sh: invalid degree/order (l=%d, m=%d)", l, m))
	}
}
