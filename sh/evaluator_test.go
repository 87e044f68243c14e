package sh

import (
	"math"
	"testing"
)

func TestEvaluatorMatchesHarmonic(t *testing.T) {
	eval, err := NewEvaluator(10)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]float64, eval.Channels())
	dirs := []Direction{
		{0, 0}, {0.3, 0.1}, {-1.9, -0.8}, {2.7, 1.4}, {math.Pi, -1.5707},
	}
	for _, d := range dirs {
		eval.EvalInto(dst, d.Azimuth, d.Elevation)
		for i := range dst {
			want := HarmonicACN(i, d.Azimuth, d.Elevation)
			if !almostEqual(dst[i], want, 1e-10) {
				l, m := DegreeOrder(i)
				t.Fatalf("acn %d (l=%d, m=%d) at %+v: got %v, want %v",
					i, l, m, d, dst[i], want)
			}
		}
	}
}

func TestEvaluatorDegreeZero(t *testing.T) {
	eval, err := NewEvaluator(0)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]float64, 1)
	eval.EvalInto(dst, 1.2, -0.3)
	if dst[0] != 1 {
		t.Fatalf("degree-0 vector = %v, want [1]", dst)
	}
}

func TestEvaluatorRejectsNegativeDegree(t *testing.T) {
	if _, err := NewEvaluator(-1); err == nil {
		t.Fatal("NewEvaluator(-1) should fail")
	}
}

func TestEvaluatorNoAllocs(t *testing.T) {
	eval, err := NewEvaluator(7)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]float64, eval.Channels())
	allocs := testing.AllocsPerRun(100, func() {
		eval.EvalInto(dst, 0.4, 0.2)
	})
	if allocs != 0 {
		t.Fatalf("EvalInto allocates %v times per call", allocs)
	}
}

func BenchmarkEvaluatorEvalInto(b *testing.B) {
	eval, err := NewEvaluator(10)
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]float64, eval.Channels())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eval.EvalInto(dst, 0.4, 0.2)
	}
}

func BenchmarkHarmonicVector(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = HarmonicVector(121, 0.4, 0.2)
	}
}
