package encode

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-hoa/internal/onepole"
	"github.com/cwbudde/algo-hoa/radial"
	"github.com/cwbudde/algo-hoa/sh"
)

// defaultSmoothingTime is the one-pole time constant for control changes.
const defaultSmoothingTime = 0.005 // seconds

// Encoder pans a mono signal into an ACN-ordered N3D ambisonic frame.
//
// The target direction is a control input set between samples; the encoder
// glides toward it with one-pole smoothing. Azimuth smoothing happens on
// its cosine and sine so crossing the +/-pi wrap stays continuous;
// elevation has no wrap and is smoothed directly.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	eval      *sh.SmoothedEvaluator
	elevation onepole.Filter
	targetAz  float64
	targetEl  float64

	gains []float64

	// Near-field modeling, nil when disabled. One filter per degree;
	// every order within a degree shares the same radial response.
	nf       []*radial.Filter
	degreeOf []int
	filtered []float64
}

// EncoderOption configures an Encoder.
type EncoderOption func(*encoderConfig)

type encoderConfig struct {
	tau          float64
	nearField    bool
	rSource      float64
	rSpeaker     float64
	speedOfSound float64
}

// WithSmoothingTime sets the one-pole time constant in seconds for
// direction changes. Default is 5 ms.
func WithSmoothingTime(seconds float64) EncoderOption {
	return func(cfg *encoderConfig) { cfg.tau = seconds }
}

// WithNearField enables near-field modeling of a source at rSource meters
// reproduced over speakers at rSpeaker meters. Each degree of the encoded
// set is filtered by the matching radial near-field response.
func WithNearField(rSource, rSpeaker float64) EncoderOption {
	return func(cfg *encoderConfig) {
		cfg.nearField = true
		cfg.rSource = rSource
		cfg.rSpeaker = rSpeaker
	}
}

// WithSpeedOfSound overrides the propagation speed used by near-field
// modeling, in m/s.
func WithSpeedOfSound(metersPerSecond float64) EncoderOption {
	return func(cfg *encoderConfig) { cfg.speedOfSound = metersPerSecond }
}

// NewEncoder returns an Encoder producing (degree+1)^2 channels.
func NewEncoder(degree int, sampleRate float64, opts ...EncoderOption) (*Encoder, error) {
	cfg := encoderConfig{tau: defaultSmoothingTime, speedOfSound: radial.SpeedOfSound}
	for _, opt := range opts {
		opt(&cfg)
	}
	eval, err := sh.NewSmoothedEvaluator(degree, sampleRate, sh.WithSmoothingTime(cfg.tau))
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	e := &Encoder{
		eval:      eval,
		elevation: onepole.New(cfg.tau, sampleRate),
		gains:     make([]float64, eval.Channels()),
	}
	if cfg.nearField {
		if degree > radial.MaxDegree {
			return nil, fmt.Errorf("encode: near-field modeling supports degree <= %d: %d",
				radial.MaxDegree, degree)
		}
		e.nf = make([]*radial.Filter, degree+1)
		for l := 0; l <= degree; l++ {
			f, err := radial.NF(l, cfg.rSource, cfg.rSpeaker, sampleRate,
				radial.WithSpeedOfSound(cfg.speedOfSound))
			if err != nil {
				return nil, fmt.Errorf("encode: %w", err)
			}
			e.nf[l] = f
		}
		e.degreeOf = make([]int, eval.Channels())
		for i := range e.degreeOf {
			e.degreeOf[i] = sh.Degree(i)
		}
		e.filtered = make([]float64, degree+1)
	}
	return e, nil
}

// Channels returns the frame length written by ProcessSample.
func (e *Encoder) Channels() int { return e.eval.Channels() }

// Degree returns the maximum harmonic degree.
func (e *Encoder) Degree() int { return e.eval.Degree() }

// SetDirection sets the target source direction. The encoder glides there
// over the smoothing time constant.
func (e *Encoder) SetDirection(d sh.Direction) {
	e.targetAz = d.Azimuth
	e.targetEl = d.Elevation
}

// ProcessSample encodes one input sample into dst, which must have at
// least Channels() elements. No allocation occurs.
func (e *Encoder) ProcessSample(dst []float64, x float64) {
	el := e.elevation.Next(e.targetEl)
	e.eval.EvalInto(e.gains, e.targetAz, el)
	if e.nf == nil {
		vecmath.ScaleBlock(dst[:len(e.gains)], e.gains, x)
		return
	}
	for l, f := range e.nf {
		e.filtered[l] = f.ProcessSample(x)
	}
	for i, g := range e.gains {
		dst[i] = g * e.filtered[e.degreeOf[i]]
	}
}

// ProcessBlock encodes src into dst, one frame of Channels() samples per
// input sample: dst[i] holds channel i%Channels() of input sample
// i/Channels(). dst must hold len(src)*Channels() elements.
func (e *Encoder) ProcessBlock(dst, src []float64) {
	n := e.Channels()
	for i, x := range src {
		e.ProcessSample(dst[i*n:(i+1)*n], x)
	}
}

// Reset clears all smoothing and filter state.
func (e *Encoder) Reset() {
	e.eval.Reset()
	e.elevation.Reset()
	for _, f := range e.nf {
		f.Reset()
	}
}
