package radial

import "errors"

// Construction-time validation failures. Filters never degrade to silent
// zero or NaN output; a bad degree, radius or sample rate fails here.
var (
	ErrDegree     = errors.New("radial: degree out of range")
	ErrRadius     = errors.New("radial: radius must be > 0")
	ErrSampleRate = errors.New("radial: sample rate must be > 0")
)
