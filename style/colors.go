// Package style has the colours and strokes shared by the fractal engines.
package style

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/rand"
)

var (
	Black   = color.RGBA{0, 0, 0, 255}
	DarkRed = color.RGBA{198, 55, 57, 255}
	Gray    = color.RGBA{200, 200, 200, 255}
	Lime    = color.RGBA{50, 205, 50, 255}
	Red     = color.RGBA{255, 0, 0, 255}
	White   = color.RGBA{255, 255, 255, 255}
)

// ParseColor reads a "#rrggbb" hex colour
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", hex, err)
	}
	return toRGBA(c), nil
}

// Hex formats col as "#rrggbb"
func Hex(col color.RGBA) string {
	c, _ := colorful.MakeColor(col)
	return c.Hex()
}

// RandomColor returns a saturated colour with a random hue.
// A nil r uses the package level source.
func RandomColor(r *rand.Rand) color.RGBA {
	var h, s, v float64
	if r == nil {
		h, s, v = rand.Float64(), rand.Float64(), rand.Float64()
	} else {
		h, s, v = r.Float64(), r.Float64(), r.Float64()
	}
	return toRGBA(colorful.Hsv(h*360, 0.5+s*0.5, 0.4+v*0.6))
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
