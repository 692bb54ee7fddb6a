package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rook-computer/solarvis/internal/app"
	"github.com/rook-computer/solarvis/internal/render"
	"github.com/rook-computer/solarvis/internal/space"
	"github.com/rook-computer/solarvis/internal/state"
	"github.com/rook-computer/solarvis/internal/system"
	"github.com/rook-computer/solarvis/internal/vis"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup runs before exiting.
func run(args []string) int {
	defaults, err := vis.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	flags := flag.NewFlagSet("solarvis", flag.ContinueOnError)
	systemPath := flags.String("system", "", "system file to load; when empty, -builtin is used")
	builtin := flags.String("builtin", "solar", "embedded system to load: "+strings.Join(space.Builtins(), " | "))
	name := flags.String("name", "", "system name shown in the header; defaults to the system file name")
	width := flags.Int("width", defaults.Width, "logical window width; also configurable via "+vis.EnvWidth)
	height := flags.Int("height", defaults.Height, "logical window height; also configurable via "+vis.EnvHeight)
	headerFont := flags.String("font", defaults.HeaderFont.String(), "header font as family-size; also configurable via "+vis.EnvHeaderFont)
	fps := flags.Int("fps", 30, "frames per second")
	timeScale := flags.Float64("time-scale", 1, "model rotation speed multiplier")
	device := flags.String("fb", "/dev/fb0", "framebuffer device")
	debug := flags.Bool("debug", false, "enable debug logging to ./solarvis-debug.log")
	stdioLog := flags.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via SOLARVIS_STDIO_LOG")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// Best-effort: keep crash output readable while the console is in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("SOLARVIS_STDIO_LOG")
	}
	if err := system.RedirectStdIO(logPath); err != nil {
		fmt.Println("stdio log redirect error:", err)
	}

	var logger app.Logger = app.NewFileLogger(os.Stdout)
	if *debug {
		f, err := os.OpenFile("./solarvis-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			defer f.Close()
			logger = app.Tee{logger, app.NewFileLogger(f)}
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	font, err := vis.ParseFont(*headerFont)
	if err != nil {
		fmt.Println("font error:", err)
		return 2
	}
	cfg := vis.Config{Width: *width, Height: *height, HeaderFont: font}

	bodies, title, err := loadBodies(*systemPath, *builtin)
	if err != nil {
		fmt.Println("system load error:", err)
		return 2
	}
	if *name != "" {
		title = *name
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := render.NewFBRenderer(cfg.Width, cfg.Height)
	renderer.Device = *device
	renderer.Logger = logger

	a := app.New(state.NewStore(), renderer, cfg, bodies)
	a.Logger = logger
	a.SystemName = title
	a.FPS = *fps
	a.TimeScale = *timeScale
	a.Motion = space.NewSpin(bodies, 0.5)

	restore := system.EnterGraphics(logger)
	system.StartExitOnKey(ctx, logger, func() { a.Exit(nil) })
	err = a.Start(ctx)
	restore()
	if err != nil {
		fmt.Println("app error:", err)
		return 1
	}
	fmt.Println("frames drawn:", a.Store.Snapshot().Frames)
	return 0
}

func loadBodies(path, builtin string) ([]*space.Body, string, error) {
	if path == "" {
		bodies, err := space.LoadBuiltin(builtin)
		return bodies, space.Title(builtin), err
	}
	bodies, err := space.LoadSystemFile(path)
	return bodies, space.Title(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))), err
}
