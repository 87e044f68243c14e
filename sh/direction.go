package sh

import "math"

// Direction is an (azimuth, elevation) pair in radians. Azimuth is
// counterclockwise from the front (+x) in (-pi, pi], elevation upward from
// the horizontal plane in [-pi/2, pi/2].
type Direction struct {
	Azimuth   float64
	Elevation float64
}

// DirectionFromVector converts a cartesian vector (x front, y left, z up) to
// a Direction. A zero vector has no direction; its norm is substituted by 1
// so the conversion stays finite and yields the front direction.
func DirectionFromVector(x, y, z float64) Direction {
	norm := math.Sqrt(x*x + y*y + z*z)
	if norm == 0 {
		norm = 1
	}
	return Direction{
		Azimuth:   math.Atan2(y, x),
		Elevation: math.Asin(z / norm),
	}
}

// Vector returns the unit cartesian vector of the direction.
func (d Direction) Vector() (x, y, z float64) {
	cosEl := math.Cos(d.Elevation)
	return cosEl * math.Cos(d.Azimuth), cosEl * math.Sin(d.Azimuth), math.Sin(d.Elevation)
}
