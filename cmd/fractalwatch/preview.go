package main

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/logging"
)

const (
	maxWinWidth  = 1000
	maxWinHeight = 768
)

// newImage is sent to the window when a render has been written
type newImage struct {
	fname string
}

// gallery is the list of renders the window steps through
type gallery struct {
	names []string
	imgs  []image.Image
	i     int
}

func (g *gallery) add(files ...string) {
	names, imgs := fractals.DecodeImages(files)
	for n, name := range names {
		if j := g.index(name); j >= 0 {
			g.imgs[j] = imgs[n]
			g.i = j
			continue
		}
		g.names = append(g.names, name)
		g.imgs = append(g.imgs, imgs[n])
		g.i = len(g.imgs) - 1
	}
}

func (g *gallery) index(name string) int {
	for j, n := range g.names {
		if n == name {
			return j
		}
	}
	return -1
}

func (g *gallery) next() {
	if len(g.imgs) == 0 {
		return
	}
	g.i = (g.i + 1) % len(g.imgs)
}

func (g *gallery) prev() {
	if len(g.imgs) == 0 {
		return
	}
	g.i = (g.i - 1 + len(g.imgs)) % len(g.imgs)
}

func (g *gallery) current() (image.Image, bool) {
	if len(g.imgs) == 0 {
		return nil, false
	}
	return g.imgs[g.i], true
}

func startDriver(images <-chan string, initial []string) {
	log := logging.Logger()
	driver.Main(func(s screen.Screen) {
		g := &gallery{}
		g.add(initial...)

		winSize := image.Point{maxWinWidth, maxWinHeight}
		if img, ok := g.current(); ok {
			// Auto-size the window with first image
			rect := img.Bounds()
			winSize = image.Point{
				fractals.ClampInt(rect.Dx(), 1, maxWinWidth),
				fractals.ClampInt(rect.Dy(), 1, maxWinHeight),
			}
		}

		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  winSize.X,
			Height: winSize.Y,
			Title:  "fractalwatch",
		})
		if err != nil {
			log.Error("opening window", "error", err)
			return
		}
		defer w.Release()

		go func() {
			for fname := range images {
				w.Send(newImage{fname})
			}
		}()

		b, err := s.NewBuffer(winSize)
		if err != nil {
			log.Error("allocating buffer", "error", err)
			return
		}
		defer func() { b.Release() }()

		w.Fill(b.Bounds(), color.White, draw.Src)
		w.Publish()

		sz := size.Event{WidthPx: winSize.X, HeightPx: winSize.Y}
		newBuffer := func() bool {
			b.Release()
			b, err = s.NewBuffer(sz.Size())
			if err != nil {
				log.Error("allocating buffer", "error", err)
				return false
			}
			return true
		}
		for {
			switch e := w.NextEvent().(type) {
			case newImage:
				g.add(e.fname)
				w.Send(paint.Event{})

			case key.Event:
				if e.Direction != key.DirPress {
					continue
				}
				switch e.Code {
				case key.CodeEscape, key.CodeQ:
					return
				case key.CodeRightArrow:
					g.next()
				case key.CodeLeftArrow:
					g.prev()
				case key.CodeR:
					// resize to current image
					if img, ok := g.current(); ok {
						r := img.Bounds()
						sz.WidthPx, sz.HeightPx = r.Dx(), r.Dy()
						if !newBuffer() {
							return
						}
					}
				default:
					continue
				}
				w.Send(paint.Event{})

			case paint.Event:
				img, ok := g.current()
				if !ok {
					continue
				}
				fit := fractals.FitImage(img, sz.WidthPx, sz.HeightPx)
				draw.Draw(b.RGBA(), b.Bounds(), fit, image.Point{}, draw.Src)
				dp := fractals.VpCenter(fit, sz.WidthPx, sz.HeightPx)
				if dp != (image.Point{}) {
					w.Fill(sz.Bounds(), color.Black, draw.Src)
				}
				w.Upload(dp, b, fit.Bounds())
				w.Publish()

			case size.Event:
				sz = e
				if sz.WidthPx > 0 && sz.HeightPx > 0 && !newBuffer() {
					return
				}
				w.Send(paint.Event{})

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case mouse.Event:

			case error:
				log.Error("Screen error", "error", e)
				return
			}
		}
	})
}
