package render

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
)

// Boxes larger than this on either axis are not rasterised; fixed.Int26_6
// overflows well before int does.
const maxOvalExtent = 1 << 20

// ovalPainter fills ellipses with eight quadratic segments, which is within a
// fraction of a pixel of the true curve at the sizes bodies are drawn.
type ovalPainter struct {
	rasterizer *raster.Rasterizer
	bounds     image.Rectangle
}

func newOvalPainter(bounds image.Rectangle) *ovalPainter {
	return &ovalPainter{rasterizer: raster.NewRasterizer(bounds.Dx(), bounds.Dy()), bounds: bounds}
}

func (p *ovalPainter) fill(dst *image.RGBA, box image.Rectangle, fill color.Color) {
	if box.Empty() || !box.Overlaps(p.bounds) {
		return
	}
	if box.Dx() > maxOvalExtent || box.Dy() > maxOvalExtent {
		return
	}

	cx := float64(box.Min.X+box.Max.X) / 2
	cy := float64(box.Min.Y+box.Max.Y) / 2
	rx := float64(box.Dx()) / 2
	ry := float64(box.Dy()) / 2
	ctrl := 1 / math.Cos(math.Pi/8)

	r := p.rasterizer
	r.Clear()
	r.Start(point(cx+rx, cy))
	for k := 1; k <= 8; k++ {
		mid := (float64(k) - 0.5) * math.Pi / 4
		end := float64(k) * math.Pi / 4
		r.Add2(
			point(cx+rx*ctrl*math.Cos(mid), cy+ry*ctrl*math.Sin(mid)),
			point(cx+rx*math.Cos(end), cy+ry*math.Sin(end)),
		)
	}

	painter := raster.NewRGBAPainter(dst)
	painter.SetColor(fill)
	r.Rasterize(painter)
}

func point(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}
