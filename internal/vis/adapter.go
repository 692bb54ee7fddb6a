package vis

import (
	"errors"
	"fmt"
)

var (
	ErrNotDrawn     = errors.New("body has no shape on the surface")
	ErrAlreadyDrawn = errors.New("body already has a shape on the surface")
)

const (
	HeaderTag = "header"
	HeaderX   = 30
	HeaderY   = 80
)

// Adapter draws bodies onto a Surface and keeps track of the shape created
// for each of them. It is not safe for concurrent use.
type Adapter struct {
	viewport Viewport
	surface  Surface
	font     Font
	shapes   map[string]Handle
}

func NewAdapter(cfg Config, scale float64, surface Surface) (*Adapter, error) {
	if surface == nil {
		return nil, errors.New("no surface configured")
	}
	viewport, err := NewViewport(cfg.Width, cfg.Height, scale)
	if err != nil {
		return nil, err
	}
	return &Adapter{viewport: viewport, surface: surface, font: cfg.HeaderFont, shapes: make(map[string]Handle)}, nil
}

func (a *Adapter) Viewport() Viewport { return a.viewport }

// Handle returns the shape created for body, if any.
func (a *Adapter) Handle(body Body) (Handle, bool) {
	h, ok := a.shapes[body.ID()]
	return h, ok
}

// CreateStarImage draws the star as a filled circle and remembers its shape.
func (a *Adapter) CreateStarImage(star Body) error {
	return a.createImage(star)
}

// CreatePlanetImage draws the planet as a filled circle and remembers its shape.
func (a *Adapter) CreatePlanetImage(planet Body) error {
	return a.createImage(planet)
}

func (a *Adapter) createImage(body Body) error {
	id := body.ID()
	if _, ok := a.shapes[id]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyDrawn, id)
	}
	x, y := body.Position()
	h, err := a.surface.CreateOval(a.viewport.Box(x, y, body.Radius()), body.Color())
	if err != nil {
		return fmt.Errorf("create oval for %s: %w", id, err)
	}
	a.shapes[id] = h
	return nil
}

// UpdateSystemName shows name in the header label, creating it on first use.
func (a *Adapter) UpdateSystemName(name string) error {
	if _, err := a.surface.CreateText(HeaderTag, HeaderX, HeaderY, name, a.font); err != nil {
		return fmt.Errorf("update system name: %w", err)
	}
	return nil
}

// UpdateObjectPosition moves the body's shape to its current position.
//
// A body entirely outside the window is first parked past the bottom-right
// corner, then moved to its real position like any other body, so the final
// box always matches the scaled position.
func (a *Adapter) UpdateObjectPosition(body Body) error {
	id := body.ID()
	h, ok := a.shapes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotDrawn, id)
	}
	x, y := body.Position()
	r := body.Radius()
	box := a.viewport.Box(x, y, r)
	if a.viewport.OffScreen(box) {
		if err := a.surface.Coords(h, a.viewport.ParkingBox(r)); err != nil {
			return fmt.Errorf("park %s: %w", id, err)
		}
	}
	if err := a.surface.Coords(h, box); err != nil {
		return fmt.Errorf("move %s: %w", id, err)
	}
	return nil
}
