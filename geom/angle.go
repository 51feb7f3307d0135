package geom

import "math"

// Angle is a heading in degrees, always kept in [0, 360).
type Angle struct {
	degree float64
}

// FromDegree normalizes degree into [0, 360).
// FromDegree(-10) is 350 and FromDegree(370) is 10.
func FromDegree(degree float64) Angle {
	d := math.Mod(degree, 360)
	if d < 0 {
		d += 360
	}
	// -1e-15 + 360 rounds to 360
	if d >= 360 {
		d = 0
	}
	return Angle{degree: d}
}

// Degree returns the angle in degrees
func (a Angle) Degree() float64 {
	return a.degree
}

// Radian returns the angle in radians
func (a Angle) Radian() float64 {
	return Radians(a.degree)
}

// Add returns the angle rotated by delta degrees.
func (a Angle) Add(delta float64) Angle {
	return FromDegree(a.degree + delta)
}

// Radians converts degrees to radians
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
