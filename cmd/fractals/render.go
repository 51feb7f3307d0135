package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/config"
	"github.com/scottkirkwood/fractals/fractal"
	"github.com/scottkirkwood/fractals/logging"
	"github.com/scottkirkwood/fractals/style"
	"github.com/scottkirkwood/fractals/view"
)

type renderOptions struct {
	example    string
	kind       string
	out        string
	format     string
	seed       string
	width      int
	height     int
	iterations int
	radius     float64
	color      string
	random     bool
	grid       bool
	fit        bool
	margin     float64
	pxPerCm    float64
	vector     bool
}

func newRenderCmd(a *app) *cobra.Command {
	o := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [file.json]",
		Short: "Render a fractal file or a bundled example",
		Example: `  fractals render fern.json --out fern.png
  fractals render --example "Koch Snowflake" --format svg
  fractals render --example dragon --seed 1f --iterations 50000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fname, err := a.render(cmd, o, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fname)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.example, "example", "e", "", "render a bundled example instead of a file")
	f.StringVar(&o.kind, "kind", "", "ifs or lsystem (default: detected from the file)")
	f.StringVarP(&o.out, "out", "o", "", "output file, --format picks the extension when it has none (default: a name in the output dir)")
	f.StringVar(&o.format, "format", "png", "output format when --out is not set: png, svg, pdf, bmp or tiff")
	f.StringVar(&o.seed, "seed", "", "hex seed for the chaos game, to repeat a render")
	f.IntVar(&o.width, "width", 0, "surface width in pixels (default from config)")
	f.IntVar(&o.height, "height", 0, "surface height in pixels (default from config)")
	f.IntVarP(&o.iterations, "iterations", "n", 0, "override the iteration count")
	f.Float64Var(&o.radius, "radius", 0, "IFS dot radius in cm")
	f.StringVar(&o.color, "color", "", "#rrggbb colour for the dots or lines")
	f.BoolVar(&o.random, "random-colors", false, "a random colour for every IFS dot")
	f.BoolVar(&o.grid, "grid", false, "draw the axes and grid")
	f.BoolVar(&o.fit, "fit", true, "scale the fractal to fill the surface")
	f.Float64Var(&o.margin, "margin", 20, "margin in pixels kept free by --fit")
	f.Float64Var(&o.pxPerCm, "zoom", view.DefaultPxPerCm, "pixels per cm when --fit=false")
	f.BoolVar(&o.vector, "vector", false, "rasterise png through the vector canvas")
	return cmd
}

// load reads the fractal from a file or the examples and returns a name for
// the output.
func (o *renderOptions) load(c *fractal.Context, args []string) (string, error) {
	var (
		data []byte
		name string
		err  error
	)
	switch {
	case o.example != "" && len(args) > 0:
		return "", errors.New("give either a file or --example, not both")
	case o.example != "":
		e, err := findExample(o.example)
		if err != nil {
			return "", err
		}
		if data, err = e.contents(); err != nil {
			return "", err
		}
		name = e.Name
		c.Kind = e.Kind
	case len(args) == 1:
		if data, err = os.ReadFile(args[0]); err != nil {
			return "", err
		}
		name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		if c.Kind, err = fractal.DetectKind(data); err != nil {
			return "", err
		}
	default:
		return "", errors.New("nothing to render, give a file or --example")
	}
	if o.kind != "" {
		if c.Kind, err = fractal.ParseKind(o.kind); err != nil {
			return "", err
		}
	}
	if err := c.Load(data); err != nil {
		return "", errors.New(fractal.Message(err))
	}
	return name, nil
}

// apply copies the flag overrides into the selected state
func (o *renderOptions) apply(c *fractal.Context, seed fractals.Seed, strict bool) error {
	var col color.RGBA
	if o.color != "" {
		var err error
		if col, err = style.ParseColor(o.color); err != nil {
			return err
		}
	}

	if c.Kind == fractal.LSystem {
		s := c.LSystem
		if o.iterations > 0 {
			s.SetIterations(o.iterations)
		}
		if o.color != "" {
			s.SetColor(col)
		}
		return s.Initialize()
	}

	s := c.IFS
	s.Strict = strict
	s.SetSource(seed.Source())
	if o.iterations > 0 {
		s.SetIterations(o.iterations)
	}
	if o.radius > 0 {
		s.SetRadius(o.radius)
	}
	if o.color != "" || o.random {
		s.SetColoring(true)
		for i := range s.Systems() {
			if o.random {
				s.SetColorScheme(i, style.RandomScheme())
			} else {
				s.SetColorScheme(i, style.FixedScheme(col))
			}
		}
	}
	return s.Initialize()
}

func (a *app) render(cmd *cobra.Command, o *renderOptions, args []string) (string, error) {
	log := logging.Logger()
	cfg := a.cfg

	c := fractal.NewContext()
	name, err := o.load(c, args)
	if err != nil {
		return "", err
	}
	seed, err := fractals.Init(o.seed)
	if err != nil {
		return "", err
	}
	if err := o.apply(c, seed, cfg.Strict); err != nil {
		return "", errors.New(fractal.Message(err))
	}

	g := fractal.NewGenerator()
	if _, err := g.Request(cmd.Context(), c); err != nil {
		return "", err
	}
	g.Wait()
	if !g.Apply(c) {
		return "", errors.New("generation produced nothing")
	}

	width, height := o.width, o.height
	if width <= 0 {
		width = cfg.Width
	}
	if height <= 0 {
		height = cfg.Height
	}
	params := view.NewParams(float64(width), float64(height))
	params.PxPerCm = o.pxPerCm
	if o.fit {
		if min, max, ok := c.Bounds(); ok {
			params.Fit(min, max, o.margin)
		}
	}
	c.Grid.Enabled = o.grid

	formatExt := "." + strings.TrimPrefix(strings.ToLower(o.format), ".")
	out := o.out
	if out != "" && fractals.Ext(out) == "" {
		out = fractals.ReplaceExt(out, formatExt)
	}
	ext := formatExt
	if out != "" {
		ext = fractals.Ext(out)
	}
	bg, fg := cfg.Colors()
	surf, err := fractals.NewSurface(ext, width, height, bg, o.vector)
	if err != nil {
		return "", err
	}
	if cfg.Theme == config.Dark && o.color == "" {
		recolor(c, fg)
	}
	fractals.Render(surf, c, params)
	log.Info("rendered", "fractal", name, "kind", c.Kind.String(), "seed", fmt.Sprintf("%x", seed.GetSeed()))

	if out != "" {
		return out, fractals.SafeWrite(surf, out)
	}
	prefix := fractals.Slug(name)
	if prefix == "" {
		prefix = fractals.RandomName(seed.Source(), 8)
	}
	return seed.SafeWrite(surf, cfg.OutputDir, prefix+"-", ext)
}

// recolor swaps black for fg so fractals stay visible on a dark background
func recolor(c *fractal.Context, fg color.RGBA) {
	if c.Kind == fractal.LSystem {
		lines := c.LSystem.Lines()
		for i := range lines {
			if lines[i].Stroke.Color == style.Black {
				lines[i].Stroke.Color = fg
			}
		}
		return
	}
	dots := c.IFS.Dots()
	for i := range dots {
		if dots[i].Color == style.Black {
			dots[i].Color = fg
		}
	}
}
