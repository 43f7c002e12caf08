// Implements a raster preview of SVG documents,
// by wrapping oksvg and rasterx.
package svgraster

import (
	"errors"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

var errEmptyViewBox = errors.New("svg document has an empty viewBox")

// Rasterize renders the document into an image `width` pixels wide,
// keeping the aspect ratio of its viewBox.
// If `width` is zero or negative, the viewBox width is used.
func Rasterize(icon io.Reader, width int) (*image.RGBA, error) {
	parsedIcon, err := oksvg.ReadIconStream(icon, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	vb := parsedIcon.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return nil, errEmptyViewBox
	}

	w := width
	if w <= 0 {
		w = int(math.Ceil(vb.W))
	}
	h := int(math.Round(float64(w) * vb.H / vb.W))
	if h < 1 {
		h = 1
	}
	parsedIcon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	parsedIcon.Draw(raster, 1.0)
	return img, nil
}

// RenderPNG rasterizes the document and writes it as a PNG image.
func RenderPNG(w io.Writer, icon io.Reader, width int) error {
	img, err := Rasterize(icon, width)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
