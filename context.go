// Package fractals paints fractal primitives onto drawing surfaces and
// writes them to files.
package fractals

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"

	"github.com/scottkirkwood/fractals/geom"
)

// Context is a vector surface backed by tdewolff/canvas.
// It takes surface coordinates with y pointing down, like the view produces.
type Context struct {
	c      *canvas.Canvas
	ctx    *canvas.Context
	width  float64
	height float64
	bg     color.Color
}

// NewContext returns a width x height surface filled with bg
func NewContext(width, height float64, bg color.Color) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		width:  width,
		height: height,
		bg:     bg,
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	ctx.fill()
	return ctx
}

func (ctx *Context) fill() {
	if ctx.bg == nil {
		return
	}
	ctx.ctx.SetStrokeColor(color.Transparent)
	ctx.ctx.SetFillColor(ctx.bg)
	ctx.ctx.DrawPath(0, 0, canvas.Rectangle(ctx.width, ctx.height))
}

// canvas has y pointing up
func (ctx *Context) flip(y float64) float64 {
	return ctx.height - y
}

// DrawDot fills a circle
func (ctx *Context) DrawDot(d geom.Dot) {
	ctx.ctx.SetStrokeColor(color.Transparent)
	ctx.ctx.SetFillColor(d.Color)
	ctx.ctx.DrawPath(d.Center.X, ctx.flip(d.Center.Y), canvas.Circle(d.Radius))
}

// DrawLine strokes a segment
func (ctx *Context) DrawLine(l geom.Line) {
	ctx.ctx.SetStrokeColor(l.Stroke.Color)
	ctx.ctx.SetStrokeWidth(l.Stroke.Width)
	ctx.ctx.MoveTo(l.Start.X, ctx.flip(l.Start.Y))
	ctx.ctx.LineTo(l.End.X, ctx.flip(l.End.Y))
	ctx.ctx.Stroke()
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(3.2))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

// WriteFile picks the format from the extension of fname
func (ctx *Context) WriteFile(fname string) error {
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".png":
		return ctx.WritePNG(fname)
	case ".svg":
		return ctx.WriteSVG(fname)
	case ".pdf":
		return ctx.WritePDF(fname)
	default:
		return fmt.Errorf("unsupported file format %s", ext)
	}
}

// Reset empties the canvas and paints the background again.
func (ctx *Context) Reset() {
	ctx.c.Reset()
	ctx.fill()
}
