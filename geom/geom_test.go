package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scottkirkwood/fractals/style"
)

func TestFromDegree(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{-10, 350},
		{370, 10},
		{360, 0},
		{720, 0},
		{-360, 0},
		{-1e-15, 0},
		{359.5, 359.5},
	}
	for _, tc := range tests {
		got := FromDegree(tc.in).Degree()
		assert.InDelta(t, tc.want, got, 1e-9, "FromDegree(%v)", tc.in)
		assert.True(t, got >= 0 && got < 360, "FromDegree(%v) = %v out of range", tc.in, got)
	}
}

func TestAngleAdd(t *testing.T) {
	a := FromDegree(350).Add(20)
	assert.InDelta(t, 10, a.Degree(), 1e-9)
	assert.InDelta(t, 270, FromDegree(0).Add(-90).Degree(), 1e-9)
	assert.InDelta(t, math.Pi/2, FromDegree(90).Radian(), 1e-12)
}

func TestPoint(t *testing.T) {
	p := Pt(1, 2).Add(Pt(2, 2)).Mul(2)
	assert.Equal(t, Pt(6, 8), p)
	assert.Equal(t, 10.0, p.Distance(Point{}))
	assert.True(t, Pt(1, 1).Near(Pt(1.0005, 0.9995), 1e-3))
	assert.False(t, Pt(1, 1).Near(Pt(1.1, 1), 1e-3))
}

type recorder struct {
	dots  []Dot
	lines []Line
}

func (r *recorder) DrawDot(d Dot)   { r.dots = append(r.dots, d) }
func (r *recorder) DrawLine(l Line) { r.lines = append(r.lines, l) }

func TestPaintAll(t *testing.T) {
	r := &recorder{}
	l := NewLine(Pt(0, 0), Pt(3, 4), style.ModelBlack(1))
	d := NewDot()
	PaintAll(r, []Shape{l, d, l})

	assert.Len(t, r.lines, 2)
	assert.Equal(t, []Dot{d}, r.dots)
	assert.Equal(t, 5.0, l.Length())
	assert.Equal(t, style.Black, d.Color)
	assert.Equal(t, DefaultDotRadius, d.Radius)
}

func TestBounds(t *testing.T) {
	_, _, ok := Bounds(nil)
	assert.False(t, ok)

	s := style.ModelBlack(1)
	min, max, ok := Bounds([]Line{
		NewLine(Pt(0, 0), Pt(1, 2), s),
		NewLine(Pt(-3, 1), Pt(0.5, -1), s),
	})
	assert.True(t, ok)
	assert.Equal(t, Pt(-3, -1), min)
	assert.Equal(t, Pt(1, 2), max)
}

func TestDotBounds(t *testing.T) {
	_, _, ok := DotBounds(nil)
	assert.False(t, ok)

	min, max, ok := DotBounds([]Dot{{Center: Pt(1, -1)}, {Center: Pt(-2, 4)}, {Center: Pt(0, 0)}})
	assert.True(t, ok)
	assert.Equal(t, Pt(-2, -1), min)
	assert.Equal(t, Pt(1, 4), max)
}
