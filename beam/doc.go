// Package beam provides max-rE beamforming weights for ambisonic signal
// sets and a steerable beamformer built on them.
//
// A max-rE weighting tapers the per-degree gains of a harmonic vector so
// that the energy vector of the resulting beam pattern is as long as
// possible, trading a slightly wider main lobe for strongly suppressed side
// lobes. The weights depend only on the beam degree, not on direction, so a
// Steerer precomputes them once and applies them per channel.
package beam
