// Package specfunc provides the special-function primitives used by the
// spherical harmonic evaluator: factorials, Legendre and associated Legendre
// polynomials, and Chebyshev polynomials of both kinds.
//
// All functions are pure and allocation-free. They are evaluated by simple
// recurrences; the degrees used by this module are small (l <= 10), so no
// asymptotic machinery is needed.
package specfunc

import "math"

// Factorial returns n! for n >= 0, computed via the Gamma function.
func Factorial(n int) float64 {
	return math.Gamma(float64(n) + 1)
}

// DoubleFactorial returns n!! for n >= -1, computed via the Gamma function:
//
//	n even: n!! = 2^(n/2) * (n/2)!
//	n odd:  n!! = 2^(n/2) * sqrt(2/pi) * Gamma(n/2 + 1)
//
// By convention (-1)!! = 0!! = 1.
func DoubleFactorial(n int) float64 {
	if n <= 0 {
		return 1
	}
	x := float64(n)
	if n%2 == 0 {
		return math.Exp2(x/2) * math.Gamma(x/2+1)
	}
	return math.Exp2(x/2) * math.Sqrt(2/math.Pi) * math.Gamma(x/2+1)
}

// LegendreP returns the Legendre polynomial P_l(x) by the three-term
// recurrence P_l = ((2l-1)*x*P_{l-1} - (l-1)*P_{l-2}) / l.
func LegendreP(l int, x float64) float64 {
	if l <= 0 {
		return 1
	}
	pm2, pm1 := 1.0, x
	for n := 2; n <= l; n++ {
		pm2, pm1 = pm1, (float64(2*n-1)*x*pm1-float64(n-1)*pm2)/float64(n)
	}
	return pm1
}

// AssocLegendreP returns the associated Legendre polynomial P_l^m(x) for
// m >= 0 without the Condon-Shortley phase (the harmonic evaluator handles
// signs through its azimuth terms).
//
// Seeded on the diagonal by P_m^m = (2m-1)!! * (1-x^2)^(m/2), stepped once by
// P_{m+1}^m = (2m+1) * x * P_m^m, then raised in degree by the standard
// two-term recurrence.
func AssocLegendreP(l, m int, x float64) float64 {
	pmm := DoubleFactorial(2*m-1) * math.Pow(1-x*x, float64(m)/2)
	if l == m {
		return pmm
	}
	pmm1 := float64(2*m+1) * x * pmm
	if l == m+1 {
		return pmm1
	}
	for n := m + 2; n <= l; n++ {
		pmm, pmm1 = pmm1, (float64(2*n-1)*x*pmm1-float64(n+m-1)*pmm)/float64(n-m)
	}
	return pmm1
}

// ChebyshevT returns the Chebyshev polynomial of the first kind T_n(x):
// T_n(cos t) = cos(n*t).
func ChebyshevT(n int, x float64) float64 {
	if n <= 0 {
		return 1
	}
	tm2, tm1 := 1.0, x
	for k := 2; k <= n; k++ {
		tm2, tm1 = tm1, 2*x*tm1-tm2
	}
	return tm1
}

// ChebyshevU returns the Chebyshev polynomial of the second kind U_n(x):
// U_{n-1}(cos t) * sin(t) = sin(n*t).
func ChebyshevU(n int, x float64) float64 {
	if n < 0 {
		return 0
	}
	if n == 0 {
		return 1
	}
	um2, um1 := 1.0, 2*x
	for k := 2; k <= n; k++ {
		um2, um1 = um1, 2*x*um1-um2
	}
	return um1
}
