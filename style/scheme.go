package style

import (
	"image/color"

	"golang.org/x/exp/rand"
)

// SchemeKind selects how a ColorScheme picks colours
type SchemeKind int

const (
	// Standard paints everything black
	Standard SchemeKind = iota
	// Fixed paints with one chosen colour
	Fixed
	// Random picks a new colour every time one is asked for
	Random
)

func (k SchemeKind) String() string {
	switch k {
	case Fixed:
		return "Fixed"
	case Random:
		return "Random"
	default:
		return "Standard (Black)"
	}
}

// ColorScheme is a colouring policy. The zero value is Standard.
type ColorScheme struct {
	Kind  SchemeKind
	Fixed color.RGBA
}

// FixedScheme paints with col
func FixedScheme(col color.RGBA) ColorScheme {
	return ColorScheme{Kind: Fixed, Fixed: col}
}

// RandomScheme picks a fresh colour on every call to Color
func RandomScheme() ColorScheme {
	return ColorScheme{Kind: Random}
}

// Color returns the colour to paint with. Random schemes draw from r.
func (s ColorScheme) Color(r *rand.Rand) color.RGBA {
	switch s.Kind {
	case Fixed:
		return s.Fixed
	case Random:
		return RandomColor(r)
	default:
		return Black
	}
}
