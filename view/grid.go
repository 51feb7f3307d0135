package view

import (
	"image/color"
	"math"

	"github.com/scottkirkwood/fractals/geom"
	"github.com/scottkirkwood/fractals/style"
)

// Grid draws the coordinate axes and a line every unit length
type Grid struct {
	Enabled bool

	AxisXColor color.RGBA
	AxisYColor color.RGBA
	GridColor  color.RGBA

	axisX, axisY, grid style.Stroke
}

// NewGrid returns a disabled grid with the default colours
func NewGrid() *Grid {
	return &Grid{
		AxisXColor: style.DarkRed,
		AxisYColor: style.Lime,
		GridColor:  style.Gray,
		axisX:      style.AxisRed(),
		axisY:      style.AxisLime(),
		grid:       style.GridGray(),
	}
}

// Shapes returns the grid lines in surface coordinates, or nothing when the
// grid is disabled.
func (g *Grid) Shapes(p Params) []geom.Shape {
	if !g.Enabled {
		return nil
	}
	lines := g.Lines(p)
	shapes := make([]geom.Shape, 0, len(lines))
	for _, l := range lines {
		shapes = append(shapes, p.Line(l))
	}
	return shapes
}

// Lines returns the grid in abstract units: vertical then horizontal grid
// lines, with the two axes last so they paint on top.
func (g *Grid) Lines(p Params) []geom.Line {
	g.syncStrokes()
	unit := p.UnitLength
	if unit <= 0 {
		return nil
	}
	// extents of the visible area either side of the origin
	left := p.ValueToCm(p.Resolution.Width - p.Center.X + p.Offset.X)
	right := p.ValueToCm(p.Resolution.Width - p.Center.X - p.Offset.X)
	bottom := p.ValueToCm(p.Resolution.Height - p.Center.Y - p.Offset.Y)
	top := p.ValueToCm(p.Resolution.Height - p.Center.Y + p.Offset.Y)

	axisX := geom.NewLine(geom.Pt(-left, 0), geom.Pt(right, 0), g.axisX)
	axisY := geom.NewLine(geom.Pt(0, -bottom), geom.Pt(0, top), g.axisY)

	var lines []geom.Line
	for i := -ticks(left, unit); i <= ticks(right, unit); i++ {
		if i == 0 {
			continue
		}
		x := unit * float64(i)
		lines = append(lines, geom.NewLine(geom.Pt(x, axisY.Start.Y), geom.Pt(x, axisY.End.Y), g.grid))
	}
	for i := -ticks(bottom, unit); i <= ticks(top, unit); i++ {
		if i == 0 {
			continue
		}
		y := unit * float64(i)
		lines = append(lines, geom.NewLine(geom.Pt(axisX.Start.X, y), geom.Pt(axisX.End.X, y), g.grid))
	}
	return append(lines, axisX, axisY)
}

func ticks(extent, unit float64) int {
	return int(math.Trunc(extent / unit))
}

func (g *Grid) syncStrokes() {
	g.axisX.Color = g.AxisXColor
	g.axisY.Color = g.AxisYColor
	g.grid.Color = g.GridColor
}
