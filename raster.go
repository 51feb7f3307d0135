package fractals

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/scottkirkwood/fractals/geom"
)

// Raster is a pixel surface backed by fogleman/gg
type Raster struct {
	dc *gg.Context
	bg color.Color
}

// NewRaster returns a width x height image filled with bg
func NewRaster(width, height int, bg color.Color) *Raster {
	r := &Raster{dc: gg.NewContext(width, height), bg: bg}
	r.Reset()
	return r
}

// Reset paints the background over everything
func (r *Raster) Reset() {
	if r.bg == nil {
		r.dc.Clear()
		return
	}
	r.dc.SetColor(r.bg)
	r.dc.Clear()
}

func (r *Raster) DrawDot(d geom.Dot) {
	r.dc.SetColor(d.Color)
	r.dc.DrawCircle(d.Center.X, d.Center.Y, d.Radius)
	r.dc.Fill()
}

func (r *Raster) DrawLine(l geom.Line) {
	r.dc.SetColor(l.Stroke.Color)
	r.dc.SetLineWidth(l.Stroke.Width)
	r.dc.DrawLine(l.Start.X, l.Start.Y, l.End.X, l.End.Y)
	r.dc.Stroke()
}

// Image returns the pixels painted so far
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// WriteFile encodes the image as png, bmp or tiff depending on the
// extension of fname.
func (r *Raster) WriteFile(fname string) error {
	var encode func(f *bufio.Writer, img image.Image) error
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".png":
		encode = func(w *bufio.Writer, img image.Image) error { return png.Encode(w, img) }
	case ".bmp":
		encode = func(w *bufio.Writer, img image.Image) error { return bmp.Encode(w, img) }
	case ".tif", ".tiff":
		encode = func(w *bufio.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}
	default:
		return fmt.Errorf("unsupported file format %s", ext)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := encode(w, r.Image()); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
