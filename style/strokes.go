package style

import "image/color"

const (
	axisWidthPx = 1.5
	gridWidthPx = 0.8
)

// Stroke is a line width in pixels plus a colour
type Stroke struct {
	Width float64
	Color color.RGBA
}

// NewStroke returns a stroke of the given width and colour
func NewStroke(width float64, col color.RGBA) Stroke {
	return Stroke{Width: width, Color: col}
}

// ModelBlack is the default stroke for fractal lines
func ModelBlack(width float64) Stroke {
	return Stroke{Width: width, Color: Black}
}

func AxisLime() Stroke {
	return Stroke{Width: axisWidthPx, Color: Lime}
}

func AxisRed() Stroke {
	return Stroke{Width: axisWidthPx, Color: DarkRed}
}

func GridGray() Stroke {
	return Stroke{Width: gridWidthPx, Color: Gray}
}
