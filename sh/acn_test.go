package sh

import "testing"

func TestACNBijection(t *testing.T) {
	for i := 0; i < 1000; i++ {
		l, m := DegreeOrder(i)
		if l < 0 || m < -l || m > l {
			t.Fatalf("DegreeOrder(%d) = (%d, %d): out of range", i, l, m)
		}
		if got := ACN(l, m); got != i {
			t.Fatalf("ACN(DegreeOrder(%d)) = %d", i, got)
		}
	}
}

func TestACNRoundTrip(t *testing.T) {
	for l := 0; l <= 10; l++ {
		for m := -l; m <= l; m++ {
			gl, gm := DegreeOrder(ACN(l, m))
			if gl != l || gm != m {
				t.Fatalf("DegreeOrder(ACN(%d, %d)) = (%d, %d)", l, m, gl, gm)
			}
		}
	}
}

func TestACNFirstOrder(t *testing.T) {
	// The classic WYZX layout of first-order ambisonics.
	cases := []struct{ l, m, want int }{
		{0, 0, 0}, {1, -1, 1}, {1, 0, 2}, {1, 1, 3},
	}
	for _, c := range cases {
		if got := ACN(c.l, c.m); got != c.want {
			t.Errorf("ACN(%d, %d) = %d, want %d", c.l, c.m, got, c.want)
		}
	}
}

func TestChannels(t *testing.T) {
	for degree := 0; degree <= 10; degree++ {
		want := (degree + 1) * (degree + 1)
		if got := Channels(degree); got != want {
			t.Errorf("Channels(%d) = %d, want %d", degree, got, want)
		}
	}
}
