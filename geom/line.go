package geom

import (
	"github.com/scottkirkwood/fractals/style"
)

// Line is a segment from Start to End drawn with Stroke
type Line struct {
	Start, End Point
	Stroke     style.Stroke
}

// NewLine returns a line from start to end
func NewLine(start, end Point, stroke style.Stroke) Line {
	return Line{Start: start, End: end, Stroke: stroke}
}

// Length of the segment
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Paint implements Shape
func (l Line) Paint(p Painter) {
	p.DrawLine(l)
}

// Bounds returns the smallest box holding every line's end points.
// ok is false for an empty slice.
func Bounds(lines []Line) (min, max Point, ok bool) {
	if len(lines) == 0 {
		return Point{}, Point{}, false
	}
	min, max = lines[0].Start, lines[0].Start
	for _, l := range lines {
		for _, q := range [2]Point{l.Start, l.End} {
			min.X, min.Y = minF(min.X, q.X), minF(min.Y, q.Y)
			max.X, max.Y = maxF(max.X, q.X), maxF(max.Y, q.Y)
		}
	}
	return min, max, true
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
