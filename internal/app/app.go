package app

import (
	"context"
	"errors"

	"github.com/rook-computer/pixelplanet/internal/input"
	"github.com/rook-computer/pixelplanet/internal/planet"
	"github.com/rook-computer/pixelplanet/internal/render"
	"github.com/rook-computer/pixelplanet/internal/state"
)

// App ties the session controller to the frame renderer and hands frames to
// a driver. All of its methods run on the driver's loop.
type App struct {
	Controller *state.Controller
	Renderer   *planet.Renderer
	Driver     render.Driver
	Logger     Logger
	HUD        bool

	frames int
}

func New(controller *state.Controller, renderer *planet.Renderer, driver render.Driver) *App {
	return &App{Controller: controller, Renderer: renderer, Driver: driver, Logger: NoopLogger{}}
}

// Run blocks until the driver returns.
func (app *App) Run(ctx context.Context) error {
	if app.Controller == nil || app.Renderer == nil {
		return errors.New("app is missing its controller or renderer")
	}
	if app.Driver == nil {
		return errors.New("no driver configured")
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	snap := app.Controller.Snapshot()
	app.Logger.Infof("app", "starting with planet %s", snap.Code())

	err := app.Driver.Run(ctx, app.Frame)
	if err != nil {
		app.Logger.Errorf("app", "driver stopped: %v", err)
		return err
	}
	app.Logger.Infof("app", "stopped after %d frames", app.frames)
	return nil
}

// Frame applies the queued input, renders the current session and then
// advances the rotation for the next tick.
func (app *App) Frame(events []input.Event) (render.Frame, bool) {
	for _, ev := range events {
		switch ev {
		case input.Quit:
			return render.Frame{}, true
		case input.Reset:
			app.Controller.Reset()
			app.Logger.Infof("app", "new planet %s", app.Controller.Snapshot().Code())
		case input.ToggleHUD:
			app.HUD = !app.HUD
		}
	}

	snap := app.Controller.Snapshot()
	img := app.Renderer.Render(snap)
	app.Controller.Tick()
	app.frames++
	return render.Frame{Image: img, Session: snap, HUD: app.HUD}, false
}
