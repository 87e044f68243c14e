package radial

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hoa/internal/onepole"
)

// delaySmoothingTime is the one-pole time constant applied to radius
// changes so a moving source glides instead of clicking.
const delaySmoothingTime = 0.005 // seconds

// Delay retards a signal by its propagation time r/speedOfSound. The line
// is sized once for the maximum expected radius; the current radius is a
// control input, smoothed per sample, and read back with cubic Hermite
// interpolation between buffer taps.
//
// A Delay is not safe for concurrent use.
type Delay struct {
	buffer          []float64
	writePos        int
	samplesPerMeter float64
	maxRadius       float64
	target          float64
	radius          onepole.Filter
}

// NewDelay returns a propagation delay line covering radii up to rMax
// meters. The initial radius is 0 (no delay) until SetRadius is called.
func NewDelay(rMax, sampleRate float64, opts ...Option) (*Delay, error) {
	if rMax <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrRadius, rMax)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrSampleRate, sampleRate)
	}
	cfg := newConfig(opts)
	samplesPerMeter := sampleRate / cfg.speedOfSound
	size := int(math.Ceil(rMax*samplesPerMeter)) + 4
	return &Delay{
		buffer:          make([]float64, size),
		samplesPerMeter: samplesPerMeter,
		maxRadius:       rMax,
		radius:          onepole.New(delaySmoothingTime, sampleRate),
	}, nil
}

// SetRadius sets the target source radius in meters. The change takes
// effect gradually over the smoothing time constant.
func (d *Delay) SetRadius(r float64) error {
	if r <= 0 || r > d.maxRadius {
		return fmt.Errorf("%w: %g (line sized for (0, %g])", ErrRadius, r, d.maxRadius)
	}
	d.target = r
	return nil
}

// Process writes one sample and returns the signal delayed by the current
// smoothed radius.
func (d *Delay) Process(x float64) float64 {
	d.buffer[d.writePos] = x
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}

	delay := d.radius.Next(d.target) * d.samplesPerMeter
	if delay < 0 {
		delay = 0
	}
	if maxDelay := float64(len(d.buffer) - 3); delay > maxDelay {
		delay = maxDelay
	}

	p := int(delay)
	t := delay - float64(p)
	xm1 := d.read(p - 1)
	x0 := d.read(p)
	x1 := d.read(p + 1)
	x2 := d.read(p + 2)

	// Cubic 4-point Hermite between the taps at delay p and p+1.
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// read returns the sample written k steps ago; k = 0 is the most recent.
func (d *Delay) read(k int) float64 {
	if k < 0 {
		k = 0
	}
	size := len(d.buffer)
	pos := (d.writePos - 1 - k + 2*size) % size
	return d.buffer[pos]
}

// Reset clears the line and the radius smoothing state.
func (d *Delay) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.writePos = 0
	d.radius.Reset()
}
