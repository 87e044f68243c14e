// Package sh evaluates real orthonormal (N3D) spherical harmonics and their
// ACN-indexed vector forms.
//
// A single harmonic is available through [Harmonic] and [HarmonicACN]. For
// audio-rate use, [Evaluator] fills a per-channel vector without allocating:
// the normalization table is precomputed once per configuration, and the
// azimuth/elevation recurrences run in fixed scratch buffers.
// [SmoothedEvaluator] additionally declicks continuously moving sources by
// lowpassing cos/sin of the azimuth, which stays continuous when the azimuth
// itself wraps across +/-pi.
//
// Conventions: azimuth is measured counterclockwise from the front (+x) in
// (-pi, pi], elevation upward from the horizontal plane in [-pi/2, pi/2].
// Channel order is ACN, normalization is N3D (orthonormal with respect to
// the sphere measure divided by 4*pi). The Condon-Shortley phase is not
// applied.
package sh
