package render

import (
	"context"
	"image"
	"sync/atomic"
	"time"

	"github.com/rook-computer/solarvis/internal/state"
)

type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	Canvas() *Canvas
	SetScene(scene Scene)
	RunLoop(ctx context.Context, store *state.Store, fps int)
	RedrawWithState(snap state.State) error
}

// Scene brings the canvas up to date with a state snapshot before each frame.
type Scene interface {
	Start(ctx context.Context) error
	Stop() error
	Update(canvas *Canvas, s state.State) error
}

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// frameSink receives every finished frame.
type frameSink interface {
	present(frame *image.RGBA, seq uint64) error
}

// loop holds what every renderer shares: the canvas, the frame it is painted
// into and the current scene.
type loop struct {
	canvas  *Canvas
	frame   *image.RGBA
	scene   Scene
	running atomic.Bool
	seq     uint64
	sink    frameSink
	Logger  logger
}

func (l *loop) init(width, height int, sink frameSink) {
	l.canvas = NewCanvas(width, height, l.Logger)
	l.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	l.sink = sink
}

func (l *loop) Canvas() *Canvas { return l.canvas }

// SetScene sets the scene updated before each frame.
func (l *loop) SetScene(scene Scene) { l.scene = scene }

// RedrawWithState updates the scene from snap, paints the canvas and hands
// the frame to the output.
func (l *loop) RedrawWithState(snap state.State) error {
	if !l.running.Load() || l.canvas == nil {
		return nil
	}
	if l.scene != nil {
		if err := l.scene.Update(l.canvas, snap); err != nil {
			return err
		}
	}
	l.canvas.Draw(l.frame)
	l.seq++
	return l.sink.present(l.frame, l.seq)
}

// RunLoop redraws at fps until the context is done.
func (l *loop) RunLoop(ctx context.Context, store *state.Store, fps int) {
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	lastLog := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := store.Snapshot()
			if err := l.RedrawWithState(snap); err != nil && l.Logger != nil {
				l.Logger.Errorf("render", "frame %d: %v", l.seq, err)
			}
			store.MarkFrame()
			if l.Logger != nil && time.Since(lastLog) > time.Second {
				l.Logger.Infof("render", "heartbeat frame=%d phase=%s", l.seq, snap.Phase)
				lastLog = time.Now()
			}
		}
	}
}

// Stub implementations
type NoopRenderer struct{ canvas *Canvas }

func NewNoopRenderer(width, height int) *NoopRenderer {
	return &NoopRenderer{canvas: NewCanvas(width, height, nil)}
}

func (n *NoopRenderer) Start(ctx context.Context) error                          { return nil }
func (n *NoopRenderer) Stop() error                                              { return nil }
func (n *NoopRenderer) Canvas() *Canvas                                          { return n.canvas }
func (n *NoopRenderer) SetScene(scene Scene)                                     {}
func (n *NoopRenderer) RunLoop(ctx context.Context, store *state.Store, fps int) {}
func (n *NoopRenderer) RedrawWithState(snap state.State) error                   { return nil }
