package encode

import (
	"fmt"

	"github.com/cwbudde/algo-hoa/beam"
	"github.com/cwbudde/algo-hoa/internal/onepole"
	"github.com/cwbudde/algo-hoa/sh"
)

// Decoder extracts one max-rE beam from an ambisonic signal set. The look
// direction and beam degree are control inputs; the per-channel decode
// gains they imply are smoothed individually per sample, so steering the
// beam never clicks.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	steerer *beam.Steerer
	dir     sh.Direction
	targets []float64
	smooth  []onepole.Filter
}

// DecoderOption configures a Decoder.
type DecoderOption func(*decoderConfig)

type decoderConfig struct {
	tau float64
}

// WithDecoderSmoothingTime sets the one-pole time constant in seconds for
// gain changes. Default is 5 ms.
func WithDecoderSmoothingTime(seconds float64) DecoderOption {
	return func(cfg *decoderConfig) { cfg.tau = seconds }
}

// NewDecoder returns a Decoder for signal sets of the given degree,
// initially aimed straight ahead with a beam of the same degree.
func NewDecoder(degree int, sampleRate float64, opts ...DecoderOption) (*Decoder, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("encode: sample rate must be > 0: %g", sampleRate)
	}
	cfg := decoderConfig{tau: defaultSmoothingTime}
	for _, opt := range opts {
		opt(&cfg)
	}
	steerer, err := beam.NewSteerer(degree)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	d := &Decoder{
		steerer: steerer,
		targets: make([]float64, steerer.Channels()),
		smooth:  make([]onepole.Filter, steerer.Channels()),
	}
	for i := range d.smooth {
		d.smooth[i] = onepole.New(cfg.tau, sampleRate)
	}
	d.SetDirection(sh.Direction{})
	return d, nil
}

// Channels returns the expected input frame length.
func (d *Decoder) Channels() int { return d.steerer.Channels() }

// SetDirection retargets the beam. Gains glide to the new direction over
// the smoothing time constant.
func (d *Decoder) SetDirection(dir sh.Direction) {
	d.dir = dir
	d.steerer.GainsInto(d.targets, dir.Azimuth, dir.Elevation)
}

// SetBeamDegree switches the beam sharpness; degrees above the set degree
// are rejected.
func (d *Decoder) SetBeamDegree(degree int) error {
	if err := d.steerer.SetBeamDegree(degree); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	// The gain targets depend on the weights; refresh them in place.
	d.steerer.GainsInto(d.targets, d.dir.Azimuth, d.dir.Elevation)
	return nil
}

// ProcessSample decodes one frame into a beam sample. frame must have at
// least Channels() elements. No allocation occurs.
func (d *Decoder) ProcessSample(frame []float64) float64 {
	var sum float64
	for i := range d.smooth {
		sum += d.smooth[i].Next(d.targets[i]) * frame[i]
	}
	return sum
}

// ProcessBlock decodes consecutive frames into dst: frames holds
// len(dst)*Channels() interleaved channel samples.
func (d *Decoder) ProcessBlock(dst, frames []float64) {
	n := d.Channels()
	for i := range dst {
		dst[i] = d.ProcessSample(frames[i*n : (i+1)*n])
	}
}

// Reset clears the gain smoothing state; the next sample jumps directly to
// the current targets.
func (d *Decoder) Reset() {
	for i := range d.smooth {
		d.smooth[i].Reset()
	}
}
