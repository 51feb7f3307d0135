package lsystem

import (
	"math"
	"strings"

	"github.com/scottkirkwood/fractals/geom"
	"github.com/scottkirkwood/fractals/style"
)

type turtle struct {
	pos     geom.Point
	heading geom.Angle
}

// forward returns where the turtle ends up after moving dist. The turtle's
// frame is mirrored on y, so heading 0 points along +x and 270 along +y.
func (t turtle) forward(dist float64) geom.Point {
	sin, cos := math.Sincos(t.heading.Radian())
	return geom.Point{X: t.pos.X + dist*cos, Y: t.pos.Y - dist*sin}
}

// Interpret walks path starting at the origin facing heading:
//
//	F  draw a segment of length step and move to its end
//	+  turn by -turn degrees
//	-  turn by +turn degrees
//	[  push position and heading
//	]  pop position and heading, ignored when the stack is empty
//
// Every other symbol is skipped. "F+F" with a 90 degree turn from heading 0
// draws (0,0)-(1,0) then (1,0)-(1,1).
func Interpret(path string, turn, heading geom.Angle, step float64, stroke style.Stroke) []geom.Line {
	lines := make([]geom.Line, 0, strings.Count(path, "F"))
	t := turtle{heading: heading}
	var stack []turtle

	for _, c := range path {
		switch c {
		case 'F':
			end := t.forward(step)
			lines = append(lines, geom.NewLine(t.pos, end, stroke))
			t.pos = end
		case '+':
			t.heading = t.heading.Add(-turn.Degree())
		case '-':
			t.heading = t.heading.Add(turn.Degree())
		case '[':
			stack = append(stack, t)
		case ']':
			if len(stack) == 0 {
				continue
			}
			t = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
	}
	return lines
}
