package fractals

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/exp/rand"
)

// Slug turns an example or fractal name into a file name stem:
// "Barnsley's Fern" becomes "barnsleys-fern".
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

const nameLetters = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomName returns a stem of n random letters and digits, for saving
// fractals that have no name yet.
func RandomName(src rand.Source, n int) string {
	r := rand.New(src)
	b := make([]byte, n)
	for i := range b {
		b[i] = nameLetters[r.Intn(len(nameLetters))]
	}
	return string(b)
}

// ReplaceExt swaps the extension of fname for ext
func ReplaceExt(fname, ext string) string {
	return strings.TrimSuffix(fname, filepath.Ext(fname)) + ext
}

// ClampInt current value between low and high
func ClampInt(cur, low, high int) int {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}
