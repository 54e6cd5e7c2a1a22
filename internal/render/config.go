package render

import (
	"image/color"
	"time"

	"github.com/rook-computer/pixelplanet/internal/planet"
)

const (
	// Scale is the integer upscale factor from the planet buffer to the canvas.
	Scale = 4

	CanvasWidth  = planet.Width * Scale
	CanvasHeight = planet.Height * Scale

	FPS       = 30
	FrameTime = time.Second / FPS

	Title = "Pastel Planet with Curved Shadow and City Lights"
)

// HUD colours.
var (
	Foreground = color.RGBA{R: 0xFF, G: 0xF5, B: 0xBA, A: 0xFF} // #fff5ba
	Shadow     = color.RGBA{R: 0x19, G: 0x05, B: 0x23, A: 0xFF} // #190523
)
