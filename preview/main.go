package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rook-computer/solarvis/internal/app"
	"github.com/rook-computer/solarvis/internal/app/scenes"
	"github.com/rook-computer/solarvis/internal/render"
	"github.com/rook-computer/solarvis/internal/space"
	"github.com/rook-computer/solarvis/internal/state"
	"github.com/rook-computer/solarvis/internal/vis"
)

// preview renders a fixed number of frames to PNG files without touching the
// framebuffer, for development away from the device.
func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	defaults, err := vis.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	flags := flag.NewFlagSet("preview", flag.ContinueOnError)
	systemPath := flags.String("system", "", "system file to load; when empty, -builtin is used")
	builtin := flags.String("builtin", "solar", "embedded system to load: "+strings.Join(space.Builtins(), " | "))
	name := flags.String("name", "", "system name shown in the header")
	out := flags.String("out", "./frames", "directory for frame-NNNNN.png files")
	frames := flags.Int("frames", 60, "number of frames to render")
	step := flags.Float64("step", 1.0/30, "model seconds between frames")
	outWidth := flags.Int("out-width", 0, "resample frames to this width (0 keeps the window size)")
	outHeight := flags.Int("out-height", 0, "resample frames to this height (0 keeps the window size)")
	verbose := flags.Bool("v", false, "log every body drawn")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var logger app.Logger = app.NewFileLogger(os.Stdout)
	sceneLogger := logger
	if !*verbose {
		sceneLogger = app.NoopLogger{}
	}

	var bodies []*space.Body
	title := space.Title(*builtin)
	if *systemPath != "" {
		bodies, err = space.LoadSystemFile(*systemPath)
		title = space.Title(strings.TrimSuffix(filepath.Base(*systemPath), filepath.Ext(*systemPath)))
	} else {
		bodies, err = space.LoadBuiltin(*builtin)
	}
	if err != nil {
		fmt.Println("system load error:", err)
		return 2
	}
	if *name != "" {
		title = *name
	}

	scale, err := vis.CalculateScaleFactor(defaults, space.MaxDistance(bodies), logger)
	if err != nil {
		fmt.Println("scale factor error:", err)
		return 2
	}

	renderer := render.NewPNGRenderer(*out, defaults.Width, defaults.Height)
	renderer.OutWidth, renderer.OutHeight = *outWidth, *outHeight
	renderer.Logger = logger
	if err := renderer.Start(context.Background()); err != nil {
		fmt.Println("renderer start error:", err)
		return 1
	}
	defer renderer.Stop()
	renderer.SetScene(scenes.NewSystemScene(defaults, scale, sceneLogger))

	store := state.NewStore()
	store.SetSystemName(title)
	store.SetPhase(state.RUNNING)
	spin := space.NewSpin(bodies, 0.5)
	for i := 0; i < *frames; i++ {
		if i > 0 {
			spin.Step(bodies, *step)
		}
		store.SetBodies(bodies)
		if err := renderer.RedrawWithState(store.Snapshot()); err != nil {
			fmt.Println("frame error:", err)
			return 1
		}
		store.MarkFrame()
	}
	store.SetPhase(state.DONE)
	logger.Infof("preview", "wrote %d frames to %s", store.Snapshot().Frames, *out)
	return 0
}
