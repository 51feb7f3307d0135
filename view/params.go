// Package view maps abstract fractal units (centimetres) onto a drawing
// surface measured in pixels.
package view

import (
	"math"

	"github.com/scottkirkwood/fractals/geom"
)

const (
	DefaultPxPerCm = 20.0
	MinPxPerCm     = 5.0
	MaxPxPerCm     = 100.0

	// DefaultUnitLength is how many centimetres one grid unit spans
	DefaultUnitLength = 1.0

	zoomSpeed = 0.1
)

// Resolution is a surface size in pixels
type Resolution struct {
	Width, Height float64
}

// Params describes the target surface: where the origin lands, the scale and
// the current drag offset. The y axis is flipped so +y points up on screen.
type Params struct {
	Center     geom.Point
	Resolution Resolution
	PxPerCm    float64
	UnitLength float64
	Offset     geom.Point

	DraggingEnabled bool
}

// NewParams returns params for a width x height surface with the origin in
// the middle.
func NewParams(width, height float64) Params {
	return Params{
		Center:          geom.Pt(width/2, height/2),
		Resolution:      Resolution{Width: width, Height: height},
		PxPerCm:         DefaultPxPerCm,
		UnitLength:      DefaultUnitLength,
		DraggingEnabled: true,
	}
}

// ValueToScreen converts a length in centimetres to pixels
func (p Params) ValueToScreen(v float64) float64 {
	return v / p.UnitLength * p.PxPerCm
}

// ValueToCm converts a length in pixels to centimetres
func (p Params) ValueToCm(v float64) float64 {
	return v / p.PxPerCm * p.UnitLength
}

// PointToScreen projects an abstract point onto the surface.
func (p Params) PointToScreen(pt geom.Point) geom.Point {
	return geom.Point{
		X: p.Center.X + p.ValueToScreen(pt.X) + p.Offset.X,
		Y: p.Center.Y - p.ValueToScreen(pt.Y) + p.Offset.Y,
	}
}

// Dot projects a dot, scaling its radius too
func (p Params) Dot(d geom.Dot) geom.Dot {
	d.Center = p.PointToScreen(d.Center)
	d.Radius = p.ValueToScreen(d.Radius)
	return d
}

// Line projects both ends of a line. Stroke widths are already in pixels.
func (p Params) Line(l geom.Line) geom.Line {
	l.Start = p.PointToScreen(l.Start)
	l.End = p.PointToScreen(l.End)
	return l
}

// Project returns shape in surface coordinates.
// Shapes of unknown type are returned unchanged.
func (p Params) Project(s geom.Shape) geom.Shape {
	switch v := s.(type) {
	case geom.Dot:
		return p.Dot(v)
	case geom.Line:
		return p.Line(v)
	}
	return s
}

// Zoom changes the scale by a scroll delta, clamped to [MinPxPerCm, MaxPxPerCm].
func (p *Params) Zoom(delta float64) {
	ppc := p.PxPerCm + delta*zoomSpeed
	if ppc < MinPxPerCm {
		ppc = MinPxPerCm
	}
	if ppc > MaxPxPerCm {
		ppc = MaxPxPerCm
	}
	p.PxPerCm = ppc
}

// Drag moves the offset by dx, dy pixels when dragging is enabled.
func (p *Params) Drag(dx, dy float64) {
	if !p.DraggingEnabled {
		return
	}
	p.Offset.X += dx
	p.Offset.Y += dy
}

// Fit centres the box min..max (abstract units) on the surface and scales
// it to fill the surface less margin pixels on each side. Unlike Zoom the
// scale is not clamped, so large L-Systems still fit. An empty or
// degenerate box only moves the centre.
func (p *Params) Fit(min, max geom.Point, margin float64) {
	w := p.Resolution.Width - 2*margin
	h := p.Resolution.Height - 2*margin
	dx, dy := max.X-min.X, max.Y-min.Y
	if w > 0 && h > 0 && (dx > 0 || dy > 0) {
		ppc := math.Inf(1)
		if dx > 0 {
			ppc = w / dx * p.UnitLength
		}
		if dy > 0 {
			ppc = math.Min(ppc, h/dy*p.UnitLength)
		}
		p.PxPerCm = ppc
	}
	mid := geom.Pt((min.X+max.X)/2, (min.Y+max.Y)/2)
	p.Offset = geom.Point{}
	p.Center = geom.Pt(
		p.Resolution.Width/2-p.ValueToScreen(mid.X),
		p.Resolution.Height/2+p.ValueToScreen(mid.Y),
	)
}
