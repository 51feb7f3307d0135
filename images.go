package fractals

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/scottkirkwood/fractals/logging"
)

// DecodeImages takes a list of image files and decodes them into image.Image
// types. Note that the number of images returned may not be the number of
// image files passed in. Namely, an image file is skipped if it cannot be
// read or decoded into an image type that Go understands.
func DecodeImages(imageFiles []string) ([]string, []image.Image) {
	// A temporary type used to transport decoded images over channels.
	type tmpImage struct {
		img  image.Image
		name string
	}
	log := logging.Logger()

	// Decoded all images specified in parallel.
	imgChans := make([]chan tmpImage, len(imageFiles))
	for i, fName := range imageFiles {
		imgChans[i] = make(chan tmpImage)
		go func(i int, fName string) {
			file, err := os.Open(fName)
			if err != nil {
				log.Warn("Could not open image", "file", fName, "error", err)
				close(imgChans[i])
				return
			}
			defer file.Close()

			start := time.Now()
			img, kind, err := image.Decode(file)
			if err != nil {
				log.Warn("Could not decode into a supported image format", "file", fName, "error", err)
				close(imgChans[i])
				return
			}
			log.Debug("Decoded image", "file", fName, "kind", kind, "took", time.Since(start))

			imgChans[i] <- tmpImage{
				img:  img,
				name: filepath.Base(fName),
			}
		}(i, fName)
	}

	// Now collect all the decoded images into a slice of names and a slice
	// of images.
	names := make([]string, 0)
	imgs := make([]image.Image, 0)
	for _, imgChan := range imgChans {
		if tmpImg, ok := <-imgChan; ok {
			names = append(names, tmpImg.name)
			imgs = append(imgs, tmpImg.img)
		}
	}

	return names, imgs
}

// VpCenter inspects the canvas and image geometry, and determines where the
// origin of the image should be painted into the canvas.
// If the image is bigger than the canvas, this is always (0, 0).
// If the image is the same size, then it is also (0, 0).
// If a dimension of the image is smaller than the canvas, then:
// x = (canvas_width - image_width) / 2 and
// y = (canvas_height - image_height) / 2
func VpCenter(ximg image.Image, canWidth, canHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if ximg.Bounds().Dx() < canWidth {
		xmargin = (canWidth - ximg.Bounds().Dx()) / 2
	}
	if ximg.Bounds().Dy() < canHeight {
		ymargin = (canHeight - ximg.Bounds().Dy()) / 2
	}
	return image.Point{xmargin, ymargin}
}

// FitImage scales img down, keeping its aspect ratio, so it fits in a
// maxW x maxH box. Images that already fit are copied unscaled.
func FitImage(img image.Image, maxW, maxH int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	scale := 1.0
	if w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if h > maxH && float64(maxH)/float64(h) < scale {
		scale = float64(maxH) / float64(h)
	}
	dw := ClampInt(int(float64(w)*scale), 1, maxW)
	dh := ClampInt(int(float64(h)*scale), 1, maxH)
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	if scale == 1 {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
