package sh

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hoa/internal/onepole"
)

// defaultSmoothingTime is the one-pole time constant for direction changes.
const defaultSmoothingTime = 0.005 // seconds

// SmoothedEvaluator declicks harmonic vectors for continuously moving
// sources. It lowpasses cos(az) and sin(az) rather than the azimuth itself:
// the azimuth wraps discontinuously across +/-pi, but its cosine and sine
// stay continuous there. Elevation does not wrap; smoothing it is left to the
// caller (see encode.Encoder).
type SmoothedEvaluator struct {
	eval  *Evaluator
	cosAz onepole.Filter
	sinAz onepole.Filter
}

// SmootherOption configures a SmoothedEvaluator.
type SmootherOption func(*smootherConfig)

type smootherConfig struct {
	tau float64
}

// WithSmoothingTime sets the one-pole time constant in seconds.
// Default is 5 ms.
func WithSmoothingTime(seconds float64) SmootherOption {
	return func(cfg *smootherConfig) { cfg.tau = seconds }
}

// NewSmoothedEvaluator returns a smoothed evaluator for degree <= degree at
// the given sample rate.
func NewSmoothedEvaluator(degree int, sampleRate float64, opts ...SmootherOption) (*SmoothedEvaluator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sh: sample rate must be > 0: %g", sampleRate)
	}
	eval, err := NewEvaluator(degree)
	if err != nil {
		return nil, err
	}
	cfg := smootherConfig{tau: defaultSmoothingTime}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SmoothedEvaluator{
		eval:  eval,
		cosAz: onepole.New(cfg.tau, sampleRate),
		sinAz: onepole.New(cfg.tau, sampleRate),
	}, nil
}

// Degree returns the maximum harmonic degree.
func (s *SmoothedEvaluator) Degree() int { return s.eval.Degree() }

// Channels returns the vector length filled by EvalInto.
func (s *SmoothedEvaluator) Channels() int { return s.eval.Channels() }

// EvalInto advances the smoothing state one sample toward the given target
// direction and fills dst with the harmonics of the smoothed direction.
// Call once per audio sample. dst must have at least Channels() elements.
//
// The first call primes the smoothers to the target, so a fresh instance
// starts exactly at its initial direction.
func (s *SmoothedEvaluator) EvalInto(dst []float64, azimuth, elevation float64) {
	c := s.cosAz.Next(math.Cos(azimuth))
	sn := s.sinAz.Next(math.Sin(azimuth))
	s.eval.evalTrig(dst, c, sn, math.Sin(elevation))
}

// Reset clears the smoothing state; the next EvalInto primes it again.
func (s *SmoothedEvaluator) Reset() {
	s.cosAz.Reset()
	s.sinAz.Reset()
}
