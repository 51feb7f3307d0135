package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottkirkwood/fractals/geom"
	"github.com/scottkirkwood/fractals/style"
)

func TestProjection(t *testing.T) {
	p := NewParams(200, 100)
	assert.Equal(t, geom.Pt(100, 50), p.PointToScreen(geom.Point{}))
	assert.Equal(t, geom.Pt(120, 10), p.PointToScreen(geom.Pt(1, 2)), "y flips")
	assert.Equal(t, 40.0, p.ValueToScreen(2))
	assert.Equal(t, 2.0, p.ValueToCm(40))

	p.Drag(5, -5)
	assert.Equal(t, geom.Pt(105, 45), p.PointToScreen(geom.Point{}))

	p.DraggingEnabled = false
	p.Drag(100, 100)
	assert.Equal(t, geom.Pt(5, -5), p.Offset)
}

func TestProjectShapes(t *testing.T) {
	p := NewParams(200, 100)
	d := p.Project(geom.Dot{Center: geom.Pt(1, 0), Radius: 0.5}).(geom.Dot)
	assert.Equal(t, geom.Pt(120, 50), d.Center)
	assert.Equal(t, 10.0, d.Radius)

	stroke := style.ModelBlack(2)
	l := p.Project(geom.NewLine(geom.Pt(0, 0), geom.Pt(0, 1), stroke)).(geom.Line)
	assert.Equal(t, geom.Pt(100, 30), l.End)
	assert.Equal(t, stroke, l.Stroke, "strokes stay in pixels")
}

func TestZoomClamp(t *testing.T) {
	p := NewParams(10, 10)
	p.Zoom(50)
	assert.InDelta(t, 25, p.PxPerCm, 1e-9)

	p.Zoom(10000)
	assert.Equal(t, MaxPxPerCm, p.PxPerCm)

	p.Zoom(-10000)
	assert.Equal(t, MinPxPerCm, p.PxPerCm)
}

func TestFit(t *testing.T) {
	p := NewParams(200, 100)
	p.Drag(30, 30)
	p.Fit(geom.Pt(-1, 0), geom.Pt(3, 1), 10)

	assert.InDelta(t, 45, p.PxPerCm, 1e-9, "width limits: 180/4")
	assert.Equal(t, geom.Point{}, p.Offset)
	mid := p.PointToScreen(geom.Pt(1, 0.5))
	assert.InDelta(t, 100, mid.X, 1e-9)
	assert.InDelta(t, 50, mid.Y, 1e-9)

	p = NewParams(200, 100)
	p.Fit(geom.Pt(2, 2), geom.Pt(2, 2), 0)
	assert.Equal(t, DefaultPxPerCm, p.PxPerCm, "a single point keeps the scale")
	assert.Equal(t, geom.Pt(100, 50), p.PointToScreen(geom.Pt(2, 2)))
}

func TestGrid(t *testing.T) {
	g := NewGrid()
	p := NewParams(200, 100)
	assert.Nil(t, g.Shapes(p), "disabled")

	g.Enabled = true
	lines := g.Lines(p)
	// 5 cm either side horizontally, 2.5 vertically: 10 + 4 grid lines and 2 axes
	require.Len(t, lines, 16)

	axisX, axisY := lines[len(lines)-2], lines[len(lines)-1]
	assert.Equal(t, style.DarkRed, axisX.Stroke.Color)
	assert.Equal(t, style.Lime, axisY.Stroke.Color)
	assert.Equal(t, geom.Pt(-5, 0), axisX.Start)
	assert.Equal(t, geom.Pt(5, 0), axisX.End)
	assert.Equal(t, geom.Pt(0, -2.5), axisY.Start)
	assert.Equal(t, geom.Pt(0, 2.5), axisY.End)
	for _, l := range lines[:len(lines)-2] {
		assert.Equal(t, style.Gray, l.Stroke.Color)
	}

	g.AxisXColor = style.Black
	shapes := g.Shapes(p)
	require.Len(t, shapes, 16)
	x := shapes[14].(geom.Line)
	assert.Equal(t, style.Black, x.Stroke.Color)
	assert.Equal(t, geom.Pt(0, 50), x.Start)
	assert.Equal(t, geom.Pt(200, 50), x.End)
}
