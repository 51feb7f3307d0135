package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/config"
	"github.com/scottkirkwood/fractals/fractal"
	"github.com/scottkirkwood/fractals/view"
)

const fitMargin = 20

// renderer turns a fractal file into a png next to the other renders
type renderer struct {
	cfg    *config.Config
	outDir string
}

func (r *renderer) renderFile(fname string) (string, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	c := fractal.NewContext()
	if c.Kind, err = fractal.DetectKind(data); err != nil {
		return "", err
	}
	if err := c.Load(data); err != nil {
		return "", errors.New(fractal.Message(err))
	}
	c.IFS.Strict = r.cfg.Strict

	g := fractal.NewGenerator()
	if _, err := g.Request(context.Background(), c); err != nil {
		return "", err
	}
	g.Wait()
	if !g.Apply(c) {
		return "", fmt.Errorf("%s: generation produced nothing", fname)
	}

	params := view.NewParams(float64(r.cfg.Width), float64(r.cfg.Height))
	if min, max, ok := c.Bounds(); ok {
		params.Fit(min, max, fitMargin)
	}
	bg, _ := r.cfg.Colors()
	surf := fractals.NewRaster(r.cfg.Width, r.cfg.Height, bg)
	fractals.Render(surf, c, params)

	stem := strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
	out := filepath.Join(r.outDir, fractals.Slug(stem)+".png")
	if err := fractals.SafeWrite(surf, out); err != nil {
		return "", err
	}
	return out, nil
}
