package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/solarvis/internal/vis"
)

var ErrUnknownHandle = errors.New("unknown shape handle")

type itemKind int

const (
	ovalItem itemKind = iota
	textItem
)

type item struct {
	handle vis.Handle
	kind   itemKind
	box    image.Rectangle
	fill   color.Color
	tag    string
	text   string
	font   vis.Font
}

// Canvas is a retained drawing surface: it keeps every shape it was asked to
// create and paints all of them on Draw, in creation order.
type Canvas struct {
	width    int
	height   int
	items    []*item
	byHandle map[vis.Handle]*item
	byTag    map[string]*item
	next     vis.Handle
	fonts    *fontSet
	ovals    *ovalPainter
}

var _ vis.Surface = (*Canvas)(nil)

func NewCanvas(width, height int, l logger) *Canvas {
	return &Canvas{
		width:    width,
		height:   height,
		byHandle: make(map[vis.Handle]*item),
		byTag:    make(map[string]*item),
		fonts:    newFontSet(l),
		ovals:    newOvalPainter(image.Rect(0, 0, width, height)),
	}
}

// Size returns the logical canvas size in pixels.
func (c *Canvas) Size() (width int, height int) { return c.width, c.height }

// Len returns the number of shapes on the canvas.
func (c *Canvas) Len() int { return len(c.items) }

func (c *Canvas) CreateOval(box image.Rectangle, fill color.Color) (vis.Handle, error) {
	if fill == nil {
		fill = Foreground
	}
	it := &item{handle: c.allocHandle(), kind: ovalItem, box: box, fill: fill}
	c.items = append(c.items, it)
	c.byHandle[it.handle] = it
	return it.handle, nil
}

// CreateText places text centred on (x, y). An existing element with the
// same tag is updated in place and keeps its handle.
func (c *Canvas) CreateText(tag string, x, y int, text string, font vis.Font) (vis.Handle, error) {
	if font.Size <= 0 {
		return 0, fmt.Errorf("font %v: size must be positive", font)
	}
	anchor := image.Rect(x, y, x, y)
	if tag != "" {
		if it, ok := c.byTag[tag]; ok {
			it.box, it.text, it.font = anchor, text, font
			return it.handle, nil
		}
	}
	it := &item{handle: c.allocHandle(), kind: textItem, box: anchor, fill: Foreground, tag: tag, text: text, font: font}
	c.items = append(c.items, it)
	c.byHandle[it.handle] = it
	if tag != "" {
		c.byTag[tag] = it
	}
	return it.handle, nil
}

// Coords moves a shape. Text elements are re-anchored on the centre of box.
func (c *Canvas) Coords(h vis.Handle, box image.Rectangle) error {
	it, ok := c.byHandle[h]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	if it.kind == textItem {
		centre := image.Pt((box.Min.X+box.Max.X)/2, (box.Min.Y+box.Max.Y)/2)
		box = image.Rectangle{Min: centre, Max: centre}
	}
	it.box = box
	return nil
}

// Bounds returns the current bounding box of a shape.
func (c *Canvas) Bounds(h vis.Handle) (image.Rectangle, bool) {
	it, ok := c.byHandle[h]
	if !ok {
		return image.Rectangle{}, false
	}
	return it.box, true
}

// Text returns the string shown by the element carrying tag.
func (c *Canvas) Text(tag string) (string, bool) {
	it, ok := c.byTag[tag]
	if !ok {
		return "", false
	}
	return it.text, true
}

// Draw paints the background and every shape onto dst, which should be
// Size() large and anchored at the origin.
func (c *Canvas) Draw(dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
	for _, it := range c.items {
		switch it.kind {
		case ovalItem:
			c.ovals.fill(dst, it.box, it.fill)
		case textItem:
			c.fonts.drawCentered(dst, it.text, it.box.Min.X, it.box.Min.Y, it.font.Size, it.fill)
		}
	}
}

func (c *Canvas) allocHandle() vis.Handle {
	c.next++
	return c.next
}
