package scenes

import (
	"context"
	"errors"

	"github.com/rook-computer/solarvis/internal/render"
	"github.com/rook-computer/solarvis/internal/space"
	"github.com/rook-computer/solarvis/internal/state"
	"github.com/rook-computer/solarvis/internal/vis"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// SystemScene draws a star system: one circle per body and the system name.
// Bodies get their circle on the first frame they appear in and are moved
// on every later frame.
type SystemScene struct {
	Config vis.Config
	Scale  float64
	Logger Logger

	adapter   *vis.Adapter
	shownName string
	named     bool
}

func NewSystemScene(cfg vis.Config, scale float64, logger Logger) *SystemScene {
	return &SystemScene{Config: cfg, Scale: scale, Logger: logger}
}

func (scene *SystemScene) Start(ctx context.Context) error { return nil }
func (scene *SystemScene) Stop() error                     { return nil }

// Adapter returns the adapter bound on the first Update, or nil before it.
func (scene *SystemScene) Adapter() *vis.Adapter { return scene.adapter }

func (scene *SystemScene) Update(canvas *render.Canvas, current state.State) error {
	if scene.adapter == nil {
		if canvas == nil {
			return errors.New("no canvas to draw on")
		}
		adapter, err := vis.NewAdapter(scene.Config, scene.Scale, canvas)
		if err != nil {
			return err
		}
		scene.adapter = adapter
	}

	if !scene.named || current.SystemName != scene.shownName {
		if err := scene.adapter.UpdateSystemName(current.SystemName); err != nil {
			return err
		}
		scene.shownName, scene.named = current.SystemName, true
	}

	var errs []error
	for i := range current.Bodies {
		body := &current.Bodies[i]
		if _, drawn := scene.adapter.Handle(body); drawn {
			errs = append(errs, scene.adapter.UpdateObjectPosition(body))
			continue
		}
		var err error
		if body.Kind == space.Star {
			err = scene.adapter.CreateStarImage(body)
		} else {
			err = scene.adapter.CreatePlanetImage(body)
		}
		if err == nil && scene.Logger != nil {
			scene.Logger.Infof("scene", "drew %s", body.Name)
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
