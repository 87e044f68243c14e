package sh

import (
	"math"
	"testing"
)

func TestSmoothedPrimesToInitialDirection(t *testing.T) {
	sm, err := NewSmoothedEvaluator(3, 48000)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]float64, sm.Channels())
	want := make([]float64, sm.Channels())
	sm.EvalInto(dst, 0.7, -0.2)

	eval, _ := NewEvaluator(3)
	eval.EvalInto(want, 0.7, -0.2)
	for i := range dst {
		if dst[i] != want[i] {
			t.Fatalf("first call channel %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

// TestSmoothedAcrossWrap steers a source across the +/-pi azimuth wrap and
// checks that every channel stays continuous even though the azimuth target
// jumps by ~2pi.
func TestSmoothedAcrossWrap(t *testing.T) {
	const sr = 48000.0
	sm, err := NewSmoothedEvaluator(4, sr)
	if err != nil {
		t.Fatal(err)
	}
	n := sm.Channels()
	prev := make([]float64, n)
	cur := make([]float64, n)

	az := math.Pi - 0.01
	sm.EvalInto(prev, az, 0)
	for i := 0; i < 2000; i++ {
		az += 0.001
		if az > math.Pi {
			az -= 2 * math.Pi // discontinuous wrap of the target
		}
		sm.EvalInto(cur, az, 0)
		for ch := range cur {
			if math.Abs(cur[ch]-prev[ch]) > 0.02 {
				t.Fatalf("step %d channel %d jumps by %v", i, ch, cur[ch]-prev[ch])
			}
		}
		copy(prev, cur)
	}
}

func TestSmoothedConvergesToTarget(t *testing.T) {
	const sr = 48000.0
	sm, err := NewSmoothedEvaluator(2, sr, WithSmoothingTime(0.002))
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]float64, sm.Channels())
	sm.EvalInto(dst, 0, 0)
	for i := 0; i < 48000; i++ {
		sm.EvalInto(dst, 1.3, 0.4)
	}
	want := make([]float64, sm.Channels())
	eval, _ := NewEvaluator(2)
	eval.EvalInto(want, 1.3, 0.4)
	for i := range dst {
		if !almostEqual(dst[i], want[i], 1e-6) {
			t.Fatalf("channel %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSmoothedRejectsBadSampleRate(t *testing.T) {
	if _, err := NewSmoothedEvaluator(2, 0); err == nil {
		t.Fatal("zero sample rate should fail")
	}
}
