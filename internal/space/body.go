package space

import (
	"image/color"
	"math"
)

type Kind int

const (
	Star Kind = iota
	Planet
)

func (k Kind) String() string {
	switch k {
	case Star:
		return "star"
	case Planet:
		return "planet"
	default:
		return "unknown"
	}
}

// Body is a star or planet as read from a system file. X, Y, Vx and Vy are in
// model units; R is the drawn radius in pixels.
type Body struct {
	Name string
	Kind Kind
	R    int
	Fill color.RGBA
	Mass float64
	X, Y float64
	Vx   float64
	Vy   float64
}

func (b *Body) ID() string                   { return b.Name }
func (b *Body) Position() (float64, float64) { return b.X, b.Y }
func (b *Body) Radius() int                  { return b.R }
func (b *Body) Color() color.Color           { return b.Fill }

// MaxDistance returns the largest |x| or |y| over bodies, or 0 if there are
// none or all sit at the origin.
func MaxDistance(bodies []*Body) float64 {
	var maxDistance float64
	for _, b := range bodies {
		maxDistance = math.Max(maxDistance, math.Max(math.Abs(b.X), math.Abs(b.Y)))
	}
	return maxDistance
}
