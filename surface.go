package fractals

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/scottkirkwood/fractals/fractal"
	"github.com/scottkirkwood/fractals/geom"
	"github.com/scottkirkwood/fractals/view"
)

// Surface is something shapes can be painted on and saved
type Surface interface {
	geom.Painter
	WriteFile(fname string) error
	Reset()
}

var (
	_ Surface = (*Context)(nil)
	_ Surface = (*Raster)(nil)
)

// NewSurface picks a surface able to write files with extension ext.
// svg and pdf are vector, png/bmp/tiff are raster unless vector is set,
// in which case png goes through the canvas rasterizer.
func NewSurface(ext string, width, height int, bg color.Color, vector bool) (Surface, error) {
	switch strings.ToLower(ext) {
	case ".svg", ".pdf":
		return NewContext(float64(width), float64(height), bg), nil
	case ".png":
		if vector {
			return NewContext(float64(width), float64(height), bg), nil
		}
		return NewRaster(width, height, bg), nil
	case ".bmp", ".tif", ".tiff":
		return NewRaster(width, height, bg), nil
	}
	return nil, fmt.Errorf("unsupported file format %s", ext)
}

// Formats lists the extensions NewSurface understands
func Formats() []string {
	return []string{".png", ".svg", ".pdf", ".bmp", ".tif", ".tiff"}
}

// Render paints the grid and the selected fractal of c onto s
func Render(s geom.Painter, c *fractal.Context, p view.Params) {
	geom.PaintAll(s, c.Shapes(p))
}

// Ext returns the lower case extension of fname
func Ext(fname string) string {
	return strings.ToLower(filepath.Ext(fname))
}
