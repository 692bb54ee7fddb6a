package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// PNGRenderer writes every frame to Dir as frame-00001.png, frame-00002.png...
// When OutWidth and OutHeight are set, frames are resampled to that size.
type PNGRenderer struct {
	loop
	Dir       string
	Width     int
	Height    int
	OutWidth  int
	OutHeight int
}

func NewPNGRenderer(dir string, width, height int) *PNGRenderer {
	return &PNGRenderer{Dir: dir, Width: width, Height: height}
}

func (r *PNGRenderer) Start(ctx context.Context) error {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("create frame dir: %w", err)
	}
	r.init(r.Width, r.Height, r)
	r.running.Store(true)
	if r.Logger != nil {
		r.Logger.Infof("png", "writing frames to %s", r.Dir)
	}
	return nil
}

func (r *PNGRenderer) Stop() error {
	r.running.Store(false)
	return nil
}

// FramePath returns the file a given frame number is written to.
func (r *PNGRenderer) FramePath(seq uint64) string {
	return filepath.Join(r.Dir, fmt.Sprintf("frame-%05d.png", seq))
}

func (r *PNGRenderer) present(frame *image.RGBA, seq uint64) error {
	var out image.Image = frame
	if r.OutWidth > 0 && r.OutHeight > 0 && (r.OutWidth != frame.Bounds().Dx() || r.OutHeight != frame.Bounds().Dy()) {
		scaled := image.NewRGBA(image.Rect(0, 0, r.OutWidth, r.OutHeight))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)
		out = scaled
	}

	path := r.FramePath(seq)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, out); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
