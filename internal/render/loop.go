package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/rook-computer/pixelplanet/internal/input"
)

const DefaultFBDevice = "/dev/fb0"

// runTicker is the fixed-rate loop shared by drivers that own their own clock.
func runTicker(ctx context.Context, logger Logger, component string, events <-chan input.Event, frame FrameFunc, present func(Frame) error) error {
	ticker := time.NewTicker(FrameTime)
	defer ticker.Stop()
	lastLog := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			f, quit := frame(input.Drain(events))
			if quit {
				logger.Infof(component, "quit requested")
				return nil
			}
			if err := present(f); err != nil {
				return fmt.Errorf("present frame: %w", err)
			}
			if time.Since(lastLog) > time.Second {
				logger.Infof(component, "heartbeat frame, planet=%s rotation=%.2f", f.Session.Code(), f.Session.Rotation)
				lastLog = time.Now()
			}
		}
	}
}

type pixelSetter interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// blitToFB writes canvas to dev via nearest-neighbour sampling.
func blitToFB(dev pixelSetter, canvas *image.RGBA) error {
	if dev == nil {
		return nil
	}
	bounds := dev.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()
	canvasWidth := canvas.Bounds().Dx()
	canvasHeight := canvas.Bounds().Dy()
	for y := 0; y < fbHeight; y++ {
		sy := (y * canvasHeight) / fbHeight
		for x := 0; x < fbWidth; x++ {
			sx := (x * canvasWidth) / fbWidth
			pixel := canvas.RGBAAt(sx, sy)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
	return nil
}
