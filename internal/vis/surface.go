package vis

import (
	"image"
	"image/color"
)

// Handle identifies a shape previously created on a Surface.
type Handle int

// Surface is the drawing capability the adapter draws through.
type Surface interface {
	// CreateOval adds a filled oval inscribed in box.
	CreateOval(box image.Rectangle, fill color.Color) (Handle, error)
	// CreateText adds a text element anchored at (x, y), replacing any
	// element previously created with the same tag.
	CreateText(tag string, x, y int, text string, font Font) (Handle, error)
	// Coords moves and resizes an existing shape to box.
	Coords(h Handle, box image.Rectangle) error
}

// Body is the read-only view of a simulated body the adapter needs.
type Body interface {
	ID() string
	Position() (x, y float64)
	// Radius is already in screen pixels.
	Radius() int
	Color() color.Color
}
