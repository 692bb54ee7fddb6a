package vis

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var (
	ErrInvalidDistance = errors.New("max distance must be positive and finite")
	ErrInvalidScale    = errors.New("scale factor must be positive and finite")
	ErrInvalidWindow   = errors.New("window dimensions must be positive")
)

// Share of the smaller window side that maxDistance maps onto.
const fillRatio = 0.4

type logger interface {
	Infof(string, string, ...interface{})
}

// CalculateScaleFactor returns the number of pixels per model distance unit
// such that maxDistance spans 40% of the smaller window side.
func CalculateScaleFactor(cfg Config, maxDistance float64, l logger) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if !(maxDistance > 0) || math.IsInf(maxDistance, 1) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDistance, maxDistance)
	}
	scale := fillRatio * float64(min(cfg.Height, cfg.Width)) / maxDistance
	if l != nil {
		l.Infof("vis", "scale factor: %v", scale)
	}
	return scale, nil
}

// Viewport maps model coordinates onto screen pixels. The model origin sits
// at the window centre and model y grows upward.
type Viewport struct {
	Width  int
	Height int
	Scale  float64
}

func NewViewport(width, height int, scale float64) (Viewport, error) {
	if width <= 0 || height <= 0 {
		return Viewport{}, fmt.Errorf("%w: %dx%d", ErrInvalidWindow, width, height)
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return Viewport{}, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	return Viewport{Width: width, Height: height, Scale: scale}, nil
}

// ScaleX converts a model x coordinate to a screen column. Results outside
// the window are returned unclamped.
func (v Viewport) ScaleX(x float64) int {
	return int(x*v.Scale) + v.Width/2
}

// ScaleY converts a model y coordinate to a screen row. The axis is inverted.
func (v Viewport) ScaleY(y float64) int {
	return -int(y*v.Scale) + v.Height/2
}

// Box returns the screen bounding box of a circle of pixel radius r centred
// on the model point (x, y).
func (v Viewport) Box(x, y float64, r int) image.Rectangle {
	sx, sy := v.ScaleX(x), v.ScaleY(y)
	return image.Rect(sx-r, sy-r, sx+r, sy+r)
}

// OffScreen reports whether box lies entirely beyond one edge of the window.
func (v Viewport) OffScreen(box image.Rectangle) bool {
	return box.Max.X < 0 || box.Min.X > v.Width || box.Max.Y < 0 || box.Min.Y > v.Height
}

// ParkingBox is the area just past the bottom-right corner used to hide a
// circle of radius r.
func (v Viewport) ParkingBox(r int) image.Rectangle {
	return image.Rect(v.Width+r, v.Height+r, v.Width+2*r, v.Height+2*r)
}
