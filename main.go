package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rook-computer/pixelplanet/internal/app"
	"github.com/rook-computer/pixelplanet/internal/config"
	"github.com/rook-computer/pixelplanet/internal/input"
	"github.com/rook-computer/pixelplanet/internal/planet"
	"github.com/rook-computer/pixelplanet/internal/render"
	"github.com/rook-computer/pixelplanet/internal/render/window"
	"github.com/rook-computer/pixelplanet/internal/state"
)

func main() {
	os.Exit(run())
}

func run() int {
	defaults, err := config.FromEnv(config.BackendWindow)
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	// Flags
	backendName := flag.String("backend", defaults.Backend, "presentation backend: window | fb | term | headless; also configurable via "+config.EnvBackend)
	variantName := flag.String("variant", string(defaults.Variant), "pipeline variant: classic | lit; also configurable via "+config.EnvVariant)
	planetCode := flag.String("planet", "", "start on a known planet, e.g. t4821-c77-l9001-r38 (shown in the HUD)")
	hud := flag.Bool("hud", defaults.HUD, "show planet code, key hints and QR code; also configurable via "+config.EnvHUD)
	frames := flag.Int("frames", 0, "headless backend only: stop after this many frames (0 = run until interrupted)")
	debug := flag.Bool("debug", false, "enable debug logging to ./pixelplanet-debug.log")
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	flag.Parse()

	// Best-effort: with the fb backend the console is left in graphics mode on
	// a crash, so panics are only readable from a file.
	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./pixelplanet-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	backend, err := config.NormalizeBackend(*backendName)
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}
	variant, err := planet.ParseVariant(*variantName)
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	controller, err := state.NewController(state.DefaultConfig(), rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		fmt.Println("state error:", err)
		return 2
	}
	if *planetCode != "" {
		session, err := state.ParseCode(*planetCode)
		if err != nil {
			fmt.Println("config error:", err)
			return 2
		}
		controller.Restore(session)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := planet.NewRenderer(planet.DefaultFields(), variant.Options())
	a := app.New(controller, renderer, newDriver(backend, *frames, logger))
	a.Logger = logger
	a.HUD = *hud
	logger.Infof("main", "backend=%s variant=%s", backend, variant)

	if err := a.Run(processCtx); err != nil {
		fmt.Println("presentation error:", err)
		return 1
	}
	return 0
}

func newDriver(backend string, frames int, logger app.Logger) render.Driver {
	switch backend {
	case config.BackendFB:
		return render.NewFBDriver(input.NewKeyboardSource(logger), logger)
	case config.BackendTerm:
		return render.NewTermDriver(logger)
	case config.BackendHeadless:
		return &render.HeadlessDriver{Frames: frames, Interval: render.FrameTime, Logger: logger}
	default:
		return window.NewDriver(logger)
	}
}
