package beam

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-hoa/internal/specfunc"
	"github.com/cwbudde/algo-hoa/sh"
)

// MaxRE returns the r_E value of the max-rE weighting for the given beam
// degree: cos(137.9deg / (degree + 1.51)). This is the largest zero of
// P_{degree+1} to good accuracy, so the weights below place the first null
// of the beam pattern just past the main lobe.
//
// Panics if degree < 0.
func MaxRE(degree int) float64 {
	if degree < 0 {
		panic(fmt.Sprintf("beam: negative beam degree %d", degree))
	}
	return math.Cos(137.9 * math.Pi / 180 / (float64(degree) + 1.51))
}

// Weights returns the per-degree max-rE gains for degrees 0..degree. The
// gains are normalized so that they sum, weighted by channel multiplicity
// 2l+1, to 1; a beam built from a unit-gain encoded source then has unit
// pressure gain on axis.
func Weights(degree int) []float64 {
	rE := MaxRE(degree)
	w := make([]float64, degree+1)
	var sum float64
	for l := 0; l <= degree; l++ {
		w[l] = specfunc.LegendreP(l, rE)
		sum += float64(2*l+1) * w[l]
	}
	for l := range w {
		w[l] /= sum
	}
	return w
}

// MaxREWeight returns the max-rE gain applied to degree l of a
// beamDegree beam: 0 for l > beamDegree, otherwise Weights(beamDegree)[l].
// Prefer Weights when evaluating all degrees of one beam.
func MaxREWeight(beamDegree, l int) float64 {
	if l < 0 {
		panic(fmt.Sprintf("beam: negative degree %d", l))
	}
	if l > beamDegree {
		return 0
	}
	return Weights(beamDegree)[l]
}

// WeightVector expands per-degree max-rE gains to a full ACN-ordered
// channel vector of length (maxDegree+1)^2. Each degree's gain repeats
// across its 2l+1 orders; degrees above beamDegree get weight 0, which
// lets a lower-degree beam run against a higher-degree signal set.
//
// Panics if beamDegree < 0 or beamDegree > maxDegree.
func WeightVector(maxDegree, beamDegree int) []float64 {
	if beamDegree < 0 || beamDegree > maxDegree {
		panic(fmt.Sprintf("beam: beam degree %d out of range [0, %d]", beamDegree, maxDegree))
	}
	perDegree := Weights(beamDegree)
	w := make([]float64, sh.Channels(maxDegree))
	for l := 0; l <= beamDegree; l++ {
		base := l * l
		for i := 0; i < 2*l+1; i++ {
			w[base+i] = perDegree[l]
		}
	}
	return w
}

// Steerer extracts a single max-rE beam signal from an ambisonic channel
// set. The look direction is given per call; the beam degree is fixed at
// construction or changed between blocks with SetBeamDegree.
//
// A Steerer is not safe for concurrent use.
type Steerer struct {
	eval    *sh.Evaluator
	weights []float64
	gains   []float64 // harmonics scratch for the current look direction
	beamDeg int
}

// NewSteerer returns a Steerer for ambisonic sets of degree maxDegree,
// initially forming a beam of the same degree.
func NewSteerer(maxDegree int) (*Steerer, error) {
	eval, err := sh.NewEvaluator(maxDegree)
	if err != nil {
		return nil, fmt.Errorf("beam: %w", err)
	}
	s := &Steerer{
		eval:    eval,
		weights: WeightVector(maxDegree, maxDegree),
		gains:   make([]float64, sh.Channels(maxDegree)),
		beamDeg: maxDegree,
	}
	return s, nil
}

// Degree returns the ambisonic set degree the Steerer was built for.
func (s *Steerer) Degree() int { return s.eval.Degree() }

// BeamDegree returns the current beam degree.
func (s *Steerer) BeamDegree() int { return s.beamDeg }

// Channels returns the input channel count: (Degree()+1)^2.
func (s *Steerer) Channels() int { return s.eval.Channels() }

// SetBeamDegree switches the beam to a different degree. Degrees above the
// set degree are rejected; the signal set has no channels to support them.
func (s *Steerer) SetBeamDegree(degree int) error {
	if degree < 0 || degree > s.eval.Degree() {
		return fmt.Errorf("beam: beam degree %d out of range [0, %d]", degree, s.eval.Degree())
	}
	s.weights = WeightVector(s.eval.Degree(), degree)
	s.beamDeg = degree
	return nil
}

// GainsInto fills dst with the per-channel beam gains for a look direction:
// the max-rE weights times the harmonics of that direction. Extracting the
// beam is then a dot product of dst with the channel frame. dst must have at
// least Channels() elements.
func (s *Steerer) GainsInto(dst []float64, azimuth, elevation float64) {
	s.eval.EvalInto(s.gains, azimuth, elevation)
	vecmath.MulBlock(dst[:len(s.gains)], s.weights, s.gains)
}

// Extract returns the beam sample for one ambisonic frame and look
// direction. frame must have Channels() elements.
func (s *Steerer) Extract(frame []float64, azimuth, elevation float64) float64 {
	s.eval.EvalInto(s.gains, azimuth, elevation)
	vecmath.MulBlockInPlace(s.gains, s.weights)
	var sum float64
	for i, g := range s.gains {
		sum += g * frame[i]
	}
	return sum
}
