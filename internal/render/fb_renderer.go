package render

import (
	"context"
	"image"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
)

// FBRenderer renders to the Linux framebuffer using an offscreen logical canvas.
type FBRenderer struct {
	loop
	Device string
	Width  int
	Height int

	fbDev *fb.Device
}

func NewFBRenderer(width, height int) *FBRenderer {
	return &FBRenderer{Device: "/dev/fb0", Width: width, Height: height}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	dev, err := fb.Open(r.Device)
	if err != nil {
		return err
	}
	r.fbDev = dev
	if r.Logger != nil {
		bounds := dev.Bounds()
		r.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}

	r.init(r.Width, r.Height, r)
	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	if r.fbDev != nil {
		r.fbDev.Close()
	}
	return nil
}

// present scales the logical canvas onto the whole framebuffer.
func (r *FBRenderer) present(frame *image.RGBA, seq uint64) error {
	if r.fbDev == nil {
		return nil
	}
	xdraw.NearestNeighbor.Scale(r.fbDev, r.fbDev.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)
	return nil
}
