// Package window presents frames in a desktop window using Ebitengine.
package window

import (
	"context"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rook-computer/pixelplanet/internal/input"
	"github.com/rook-computer/pixelplanet/internal/render"
)

var keyBindings = []struct {
	key   ebiten.Key
	event input.Event
}{
	{ebiten.KeyR, input.Reset},
	{ebiten.KeyH, input.ToggleHUD},
	{ebiten.KeyQ, input.Quit},
	{ebiten.KeyEscape, input.Quit},
}

// Driver opens a CanvasWidth x CanvasHeight window and lets Ebitengine's
// game loop drive the frames at render.FPS ticks per second.
type Driver struct {
	Logger render.Logger
}

func NewDriver(logger render.Logger) *Driver { return &Driver{Logger: logger} }

func (d *Driver) Run(ctx context.Context, frame render.FrameFunc) error {
	ebiten.SetWindowSize(render.CanvasWidth, render.CanvasHeight)
	ebiten.SetWindowTitle(render.Title)
	ebiten.SetTPS(render.FPS)

	g := &game{
		ctx:        ctx,
		frame:      frame,
		compositor: render.NewCompositor(d.Logger),
		logger:     d.Logger,
	}
	if d.Logger != nil {
		d.Logger.Infof("window", "opening %dx%d window", render.CanvasWidth, render.CanvasHeight)
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

type game struct {
	ctx        context.Context
	frame      render.FrameFunc
	compositor *render.Compositor
	logger     render.Logger

	canvas *image.RGBA
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	var events []input.Event
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			events = append(events, b.event)
		}
	}
	f, quit := g.frame(events)
	if quit {
		if g.logger != nil {
			g.logger.Infof("window", "quit requested")
		}
		return ebiten.Termination
	}
	g.canvas = g.compositor.Compose(f)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		return
	}
	screen.WritePixels(g.canvas.Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.CanvasWidth, render.CanvasHeight
}
