package sh

import "math"

// ACN returns the Ambisonic Channel Number of degree l and order m:
// l*l + l + m. Valid for l >= 0 and |m| <= l.
func ACN(l, m int) int {
	return l*l + l + m
}

// Degree returns the spherical-harmonic degree l of an ACN index.
func Degree(acn int) int {
	l := int(math.Sqrt(float64(acn)))
	// Guard against float rounding near perfect squares.
	for (l+1)*(l+1) <= acn {
		l++
	}
	for l*l > acn {
		l--
	}
	return l
}

// Order returns the order m of an ACN index.
func Order(acn int) int {
	l := Degree(acn)
	return acn - l*l - l
}

// DegreeOrder returns the (degree, order) pair of an ACN index.
func DegreeOrder(acn int) (l, m int) {
	l = Degree(acn)
	return l, acn - l*l - l
}

// Channels returns the channel count of a full degree-l harmonic set:
// (l+1)^2.
func Channels(degree int) int {
	return (degree + 1) * (degree + 1)
}
