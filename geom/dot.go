package geom

import (
	"image/color"

	"github.com/scottkirkwood/fractals/style"
)

// DefaultDotRadius is the dot radius in centimetres
const DefaultDotRadius = 0.025

// Dot is a filled circle, one per chaos game point
type Dot struct {
	Center Point
	Color  color.RGBA
	Radius float64
}

// NewDot returns a black dot of the default radius at the origin
func NewDot() Dot {
	return Dot{Color: style.Black, Radius: DefaultDotRadius}
}

// Paint implements Shape
func (d Dot) Paint(p Painter) {
	p.DrawDot(d)
}

// DotBounds returns the smallest box holding every dot centre.
// ok is false for an empty slice.
func DotBounds(dots []Dot) (min, max Point, ok bool) {
	if len(dots) == 0 {
		return Point{}, Point{}, false
	}
	min, max = dots[0].Center, dots[0].Center
	for _, d := range dots[1:] {
		q := d.Center
		min.X, min.Y = minF(min.X, q.X), minF(min.Y, q.Y)
		max.X, max.Y = maxF(max.X, q.X), maxF(max.Y, q.Y)
	}
	return min, max, true
}
