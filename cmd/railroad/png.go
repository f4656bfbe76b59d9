package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/martinemde/railroad-dsl/railroad"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// rasterize draws d into a PNG no larger than maxWidth x maxHeight. A zero
// limit leaves that dimension unconstrained. The rasterizer ignores SVG text,
// so labels are drawn afterwards with a fixed bitmap face.
func rasterize(w io.Writer, d *railroad.Diagram, maxWidth, maxHeight int) error {
	icon, err := oksvg.ReadIconStream(strings.NewReader(d.String()), oksvg.IgnoreErrorMode)
	if err != nil {
		return fmt.Errorf("reading svg: %w", err)
	}

	width, height := fit(d.Width(), d.Height(), maxWidth, maxHeight)
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	drawLabels(img, d.Labels(), float64(width)/float64(d.Width()))
	return png.Encode(w, img)
}

// drawLabels writes each label centred on its scaled anchor point.
func drawLabels(img *image.RGBA, labels []railroad.Label, scale float64) {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	drawer := &font.Drawer{Dst: img, Src: image.Black, Face: face}
	for _, l := range labels {
		advance := drawer.MeasureString(l.Text)
		x := fixed.I(int(float64(l.X)*scale)) - advance/2
		y := fixed.I(int(float64(l.Y)*scale)) + (metrics.Ascent-metrics.Descent)/2
		drawer.Dot = fixed.Point26_6{X: x, Y: y}
		drawer.DrawString(l.Text)
	}
}

// fit scales width and height down, preserving the aspect ratio, until both
// are within their limits.
func fit(width, height, maxWidth, maxHeight int) (int, int) {
	scale := 1.0
	if maxWidth > 0 && width > maxWidth {
		scale = float64(maxWidth) / float64(width)
	}
	if maxHeight > 0 && height > maxHeight {
		if s := float64(maxHeight) / float64(height); s < scale {
			scale = s
		}
	}
	if scale == 1.0 {
		return width, height
	}
	return max(1, int(float64(width)*scale)), max(1, int(float64(height)*scale))
}
