package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rook-computer/solarvis/internal/app/scenes"
	"github.com/rook-computer/solarvis/internal/render"
	"github.com/rook-computer/solarvis/internal/space"
	"github.com/rook-computer/solarvis/internal/state"
	"github.com/rook-computer/solarvis/internal/vis"
)

// Stepper advances body positions; it stands in for the simulation model.
type Stepper interface {
	Step(bodies []*space.Body, dt float64)
}

type App struct {
	Store  *state.Store
	Render render.Renderer
	Config vis.Config
	Bodies []*space.Body
	Motion Stepper
	Logger Logger

	SystemName string
	FPS        int
	// Model seconds per wall-clock second.
	TimeScale float64

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(store *state.Store, renderer render.Renderer, cfg vis.Config, bodies []*space.Body) *App {
	return &App{Store: store, Render: renderer, Config: cfg, Bodies: bodies, Logger: NoopLogger{}, FPS: 30, TimeScale: 1, exitCh: make(chan error, 1)}
}

// Exit requests the app to stop running.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start draws the system and keeps it moving until ctx is done or Exit is
// called.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)
	if app.Render == nil {
		return errors.New("no renderer configured")
	}
	if len(app.Bodies) == 0 {
		return errors.New("system has no bodies")
	}

	scale, err := vis.CalculateScaleFactor(app.Config, space.MaxDistance(app.Bodies), app.Logger)
	if err != nil {
		return fmt.Errorf("scale factor: %w", err)
	}

	app.Store.SetSystemName(app.SystemName)
	app.Store.SetBodies(app.Bodies)

	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		app.Store.SetError(err)
		return err
	}
	defer app.Render.Stop()

	scene := scenes.NewSystemScene(app.Config, scale, app.Logger)
	if err := scene.Start(ctx); err != nil {
		return err
	}
	defer scene.Stop()
	app.Render.SetScene(scene)

	// Draw once so every body has its circle before the loops start.
	if err := app.Render.RedrawWithState(app.Store.Snapshot()); err != nil {
		app.Logger.Errorf("app", "first frame: %v", err)
		app.Store.SetError(err)
		return err
	}
	app.Store.MarkFrame()
	app.Store.SetPhase(state.RUNNING)

	loopCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		app.Render.RunLoop(loopCtx, app.Store, app.FPS)
	}()
	go func() {
		defer wg.Done()
		app.runMotion(loopCtx)
	}()

	// Cancellation is the normal way to stop; only Exit carries an error.
	select {
	case <-ctx.Done():
		err = nil
	case err = <-app.exitCh:
	}
	cancel()
	wg.Wait()
	if err != nil {
		app.Store.SetError(err)
		return err
	}
	app.Store.SetPhase(state.DONE)
	return nil
}

// runMotion steps the bodies at the frame rate and publishes them to the store.
func (app *App) runMotion(ctx context.Context) {
	if app.Motion == nil {
		return
	}
	fps := app.FPS
	if fps <= 0 {
		fps = 30
	}
	interval := time.Second / time.Duration(fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.Motion.Step(app.Bodies, interval.Seconds()*app.TimeScale)
			app.Store.SetBodies(app.Bodies)
		}
	}
}
