package spring

import "math"

// WrapAngle wraps an angle in degrees into (-180, 180].
func WrapAngle(deg float64) float64 {
	r := math.Remainder(deg, 360)
	if r <= -180 {
		r += 360
	}
	return r
}
