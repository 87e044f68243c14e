package radial

import "fmt"

// SpeedOfSound is the default propagation speed in meters per second.
const SpeedOfSound = 343.0

type config struct {
	speedOfSound float64
}

// Option configures a filter at construction time.
type Option func(*config)

// WithSpeedOfSound overrides the default propagation speed in m/s.
func WithSpeedOfSound(metersPerSecond float64) Option {
	return func(cfg *config) { cfg.speedOfSound = metersPerSecond }
}

func newConfig(opts []Option) config {
	cfg := config{speedOfSound: SpeedOfSound}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// differentiator is the Al-Alaoui first-order discrete differentiator,
// H(z) = gain * (1 - z^-1) / (1 + z^-1/7). EQ uses it to realize the single
// zero at DC of the rigid-sphere response that has no matching pole table
// factor.
type differentiator struct {
	gain   float64
	x1, y1 float64
}

func (d *differentiator) process(x float64) float64 {
	y := d.gain*(x-d.x1) - d.y1/7
	d.x1 = x
	d.y1 = y
	return y
}

func (d *differentiator) reset() {
	d.x1, d.y1 = 0, 0
}

// Filter is a radial filter: one sample in, one sample out, with internal
// per-section history as its only state. Construct with NF, NFC or EQ.
// A Filter is not safe for concurrent use.
type Filter struct {
	gain     float64
	diff     *differentiator
	sections []section
}

// NF models the near-field radial term of a point source at rSource as
// reproduced by a loudspeaker at rSpeaker. Each cascade stage realizes the
// ratio of the degree-l radial factor at the two radii; the raw factor
// alone is singular at DC, the ratio is not. The per-stage algebra cancels
// before any recursion runs, so the cascade is stable for any positive
// radii. Degree 0 reduces to the scalar distance ratio rSpeaker/rSource.
func NF(l int, rSource, rSpeaker, sampleRate float64, opts ...Option) (*Filter, error) {
	if err := validate(l, sampleRate, rSource, rSpeaker); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	wSrc := warp(rSource, sampleRate, cfg.speedOfSound)
	wSpk := warp(rSpeaker, sampleRate, cfg.speedOfSound)
	f := &Filter{
		gain:     rSpeaker / rSource,
		sections: make([]section, 0, len(nfPoles[l])),
	}
	for _, fac := range nfPoles[l] {
		f.sections = append(f.sections, newSection(warped(fac, wSrc), warped(fac, wSpk)))
	}
	return f, nil
}

// NFC inverts the near-field effect for a loudspeaker at radius r: an
// all-pole cascade realizing the reciprocal of the degree-l radial factor,
// scaled by the 1/r distance term. The inverse kills DC (the factor itself
// diverges there), so constant inputs decay to zero.
func NFC(l int, r, sampleRate float64, opts ...Option) (*Filter, error) {
	if err := validate(l, sampleRate, r); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	w := warp(r, sampleRate, cfg.speedOfSound)
	f := &Filter{
		gain:     1 / r,
		sections: make([]section, 0, len(nfPoles[l])),
	}
	for _, fac := range nfPoles[l] {
		f.sections = append(f.sections, newSection(identity, warped(fac, w)))
	}
	return f, nil
}

// EQ compensates the degree-l pressure response of a rigid spherical
// baffle of radius rSphere for playback over a loudspeaker at rSpeaker.
// The numerator factors come from the sphere's radial derivative
// polynomial, warped at rSphere; they are paired index by index with
// near-field denominator factors warped at rSpeaker. The sphere polynomial
// has one factor more than the denominator table for even l, so the last
// section then runs without feedback; the prepended differentiator
// realizes the remaining zero at DC and keeps the cascade bounded. The
// output is scaled by 1/rSpeaker so that EQ composes with an NFC-free
// decode without double-counting the distance term.
func EQ(l int, rSphere, rSpeaker, sampleRate float64, opts ...Option) (*Filter, error) {
	if err := validate(l, sampleRate, rSphere, rSpeaker); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	wSphere := warp(rSphere, sampleRate, cfg.speedOfSound)
	wSpk := warp(rSpeaker, sampleRate, cfg.speedOfSound)
	f := &Filter{
		gain:     1 / rSpeaker,
		diff:     &differentiator{gain: 4 / (7 * wSphere)},
		sections: make([]section, 0, len(spherePoles[l])),
	}
	for k, num := range spherePoles[l] {
		den := identity
		if k < len(nfPoles[l]) {
			den = warped(nfPoles[l][k], wSpk)
		}
		f.sections = append(f.sections, newSection(warped(num, wSphere), den))
	}
	return f, nil
}

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	x *= f.gain
	if f.diff != nil {
		x = f.diff.process(x)
	}
	for i := range f.sections {
		x = f.sections[i].process(x)
	}
	return x
}

// ProcessBlock filters src into dst. The slices may be identical for
// in-place operation; dst must be at least as long as src.
func (f *Filter) ProcessBlock(dst, src []float64) {
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears all section history.
func (f *Filter) Reset() {
	if f.diff != nil {
		f.diff.reset()
	}
	for i := range f.sections {
		f.sections[i].reset()
	}
}

// Sections returns the number of recursive sections in the cascade.
func (f *Filter) Sections() int { return len(f.sections) }

func validate(l int, sampleRate float64, radii ...float64) error {
	if l < 0 || l > maxDegree {
		return fmt.Errorf("%w: %d (supported 0..%d)", ErrDegree, l, maxDegree)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %g", ErrSampleRate, sampleRate)
	}
	for _, r := range radii {
		if r <= 0 {
			return fmt.Errorf("%w: %g", ErrRadius, r)
		}
	}
	return nil
}
