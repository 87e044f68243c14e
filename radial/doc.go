// Package radial implements the distance-dependent filters of higher-order
// ambisonics: near-field modeling (NF), near-field compensation (NFC),
// rigid-sphere diffraction equalization (EQ) and fractional propagation
// delay.
//
// The radial part of a point source's multipole expansion at degree l is a
// rational function of inverse frequency whose poles are fixed physical
// constants. The package carries those poles as precomputed quadratic
// factors for degrees 0 through 10 and synthesizes stable recursive
// sections from them at construction time, warped to the requested radius
// and sample rate. Per-sample processing is pure arithmetic with no
// allocation, so the filters are safe to run inside an audio callback.
package radial
