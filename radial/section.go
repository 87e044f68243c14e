package radial

// warp is the radius- and rate-dependent scale of the inverse-frequency
// variable: u = warp(r) / s in the normalized continuous prototype.
func warp(r, sampleRate, speedOfSound float64) float64 {
	return 0.5 * speedOfSound / (r * sampleRate)
}

// identity is the neutral factor 1 + 0*u + 0*u^2.
var identity = [3]float64{1, 0, 0}

// warped scales a table factor (b0, b1, b2) to radius, giving the
// prototype polynomial bp0 + bp1*u + bp2*u^2 in the unscaled variable.
func warped(f [3]float64, w float64) [3]float64 {
	return [3]float64{f[0], f[1] * w, f[2] * w * w}
}

// section realizes one rational factor
//
//	(n_b0 + n_b1*u + n_b2*u^2) / (d_b0 + d_b1*u + d_b2*u^2)
//
// under the bilinear substitution u = (1 + z^-1)/(1 - z^-1). Expanding a
// warped triple bp in that variable over the basis {1, zeta, zeta^2} with
// zeta = z^-1/(1 - z^-1) gives the coefficients
//
//	(bp0+bp1+bp2, 2*bp1+4*bp2, 4*bp2)
//
// so both numerator and denominator collapse to three taps on a shared
// pair of running-sum states. The denominator is normalized by its first
// coefficient g2 before the recursion; factoring g2 out up front instead of
// dividing per tap keeps the recursion well conditioned when the poles sit
// close to the unit circle at audio rates.
type section struct {
	invG2      float64
	d1, d2     float64
	n0, n1, n2 float64

	s1, s2 float64
}

// expand maps a warped prototype triple to {1, zeta, zeta^2} coefficients.
func expand(bp [3]float64) (c0, c1, c2 float64) {
	return bp[0] + bp[1] + bp[2], 2*bp[1] + 4*bp[2], 4 * bp[2]
}

// newSection builds a section from already-warped numerator and denominator
// triples. Pass identity for a pure all-pole (1/F) or all-zero (F) factor.
func newSection(num, den [3]float64) section {
	g2, dc1, dc2 := expand(den)
	n0, n1, n2 := expand(num)
	return section{
		invG2: 1 / g2,
		d1:    dc1 / g2,
		d2:    dc2 / g2,
		n0:    n0,
		n1:    n1,
		n2:    n2,
	}
}

// process advances the section by one sample. The states s1 and s2 are the
// running sums of past accumulator values (s1) and of past s1 values (s2);
// the update order below realizes exactly one z^-1 between each stage.
func (s *section) process(x float64) float64 {
	t := x*s.invG2 - s.d1*s.s1 - s.d2*s.s2
	y := s.n0*t + s.n1*s.s1 + s.n2*s.s2
	s.s2 += s.s1
	s.s1 += t
	return y
}

func (s *section) reset() {
	s.s1, s.s2 = 0, 0
}
