// Package encode provides streaming ambisonic encoding and decoding.
//
// An Encoder spreads a mono source over the (degree+1)^2 channels of an
// ACN-ordered N3D signal set, following a direction that may move
// continuously; direction changes are smoothed per sample so panning never
// clicks. Optionally each degree is run through a near-field filter to
// model source distance. A Decoder extracts a steerable max-rE beam from
// such a set with the same smoothing discipline on its gains.
package encode
