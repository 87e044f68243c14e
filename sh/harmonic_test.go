package sh

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	diff := math.Abs(a - b)
	if diff <= tol {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= tol*largest
}

func TestNormalizationValues(t *testing.T) {
	cases := []struct {
		l, m int
		want float64
	}{
		{0, 0, 1},
		{1, 0, math.Sqrt(3)},
		{1, 1, math.Sqrt(3)},
		{1, -1, math.Sqrt(3)},
		{2, 0, math.Sqrt(5)},
		{2, 2, math.Sqrt(2 * 5.0 / 24.0)},
	}
	for _, c := range cases {
		if got := Normalization(c.l, c.m); !almostEqual(got, c.want, eps) {
			t.Errorf("Normalization(%d, %d) = %v, want %v", c.l, c.m, got, c.want)
		}
	}
}

func TestDegreeZeroIsConstant(t *testing.T) {
	want := Normalization(0, 0)
	for _, az := range []float64{-3, -1.5, 0, 0.7, 3.1} {
		for _, el := range []float64{-1.5, -0.2, 0, 1, 1.5} {
			if got := Harmonic(0, 0, az, el); got != want {
				t.Fatalf("Harmonic(0,0,%v,%v) = %v, want constant %v", az, el, got, want)
			}
		}
	}
}

func TestHarmonicFrontDirection(t *testing.T) {
	// At azimuth 0, elevation 0: W = 1, Y = 0, Z = 0, X = sqrt(3).
	if got := Harmonic(0, 0, 0, 0); !almostEqual(got, 1, eps) {
		t.Errorf("W = %v, want 1", got)
	}
	if got := Harmonic(1, -1, 0, 0); got != 0 {
		t.Errorf("Y = %v, want exactly 0", got)
	}
	if got := Harmonic(1, 0, 0, 0); got != 0 {
		t.Errorf("Z = %v, want exactly 0", got)
	}
	if got := Harmonic(1, 1, 0, 0); !almostEqual(got, math.Sqrt(3), eps) {
		t.Errorf("X = %v, want sqrt(3)", got)
	}
}

func TestHarmonicACNDelegates(t *testing.T) {
	dirs := []Direction{
		{0, 0}, {1.1, -0.4}, {-2.8, 1.2}, {3.14, -1.5},
	}
	for _, d := range dirs {
		for i := 0; i < Channels(10); i++ {
			l, m := DegreeOrder(i)
			got := HarmonicACN(i, d.Azimuth, d.Elevation)
			want := Harmonic(l, m, d.Azimuth, d.Elevation)
			if got != want {
				t.Fatalf("HarmonicACN(%d) = %v, Harmonic(%d,%d) = %v at %+v",
					i, got, l, m, want, d)
			}
		}
	}
}

// TestOrthonormality integrates Y_lm^2 over the sphere (measure dOmega/4pi)
// with Gauss-Legendre quadrature in sin(elevation) and a uniform grid in
// azimuth, which is exact for trigonometric polynomials.
func TestOrthonormality(t *testing.T) {
	const azPoints = 64
	for l := 0; l <= 4; l++ {
		for m := -l; m <= l; m++ {
			integral := quad.Fixed(func(u float64) float64 {
				el := math.Asin(u)
				sum := 0.0
				for k := 0; k < azPoints; k++ {
					az := 2 * math.Pi * float64(k) / azPoints
					y := Harmonic(l, m, az, el)
					sum += y * y
				}
				return sum * 2 * math.Pi / azPoints
			}, -1, 1, 32, quad.Legendre{}, 0)
			got := integral / (4 * math.Pi)
			if math.Abs(got-1) > 1e-3 {
				t.Errorf("(1/4pi) integral Y_%d^%d ^2 = %v, want 1", l, m, got)
			}
		}
	}
}

func TestHarmonicVector(t *testing.T) {
	v := HarmonicVector(16, 0.3, -0.2)
	if len(v) != 16 {
		t.Fatalf("len = %d, want 16", len(v))
	}
	for i, got := range v {
		if want := HarmonicACN(i, 0.3, -0.2); got != want {
			t.Errorf("v[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestHarmonicVectorPanicsForBadLength(t *testing.T) {
	for _, n := range []int{0, -1, -16} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("HarmonicVector(%d, ...) did not panic", n)
				}
			}()
			HarmonicVector(n, 0, 0)
		}()
	}
}

func TestHarmonicPanicsFor(t *testing.T) {
	cases := []struct{ l, m int }{{-1, 0}, {1, 2}, {2, -3}}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Harmonic(%d, %d, ...) did not panic", c.l, c.m)
				}
			}()
			Harmonic(c.l, c.m, 0, 0)
		}()
	}
}
