package render

import (
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/pixelplanet/internal/render/layout"
)

const (
	hudPaddingPx = 8
	hudQRSizePx  = 72
	hudFontSize  = 14
	hudHint      = "R new planet  H hud  Q quit"
)

// Compositor upscales planet frames onto the display canvas and draws the
// optional HUD on top.
type Compositor struct {
	canvas   *image.RGBA
	fontFace font.Face
	Logger   Logger

	qrPayload string
	qrImage   image.Image
}

func NewCompositor(logger Logger) *Compositor {
	c := &Compositor{
		canvas: image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight)),
		Logger: loggerOrNoop(logger),
	}
	c.fontFace = loadFace(c.Logger)
	return c
}

func loadFace(logger Logger) font.Face {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		logger.Errorf("render", "truetype parse failed, using basicfont: %v", err)
		return basicfont.Face7x13
	}
	return truetype.NewFace(tt, &truetype.Options{Size: hudFontSize, DPI: 72, Hinting: font.HintingFull})
}

// Canvas is the composed image. It is reused by the next Compose call.
func (c *Compositor) Canvas() *image.RGBA { return c.canvas }

func (c *Compositor) Compose(f Frame) *image.RGBA {
	if f.Image == nil {
		return c.canvas
	}
	xdraw.NearestNeighbor.Scale(c.canvas, c.canvas.Bounds(), f.Image, f.Image.Bounds(), xdraw.Src, nil)
	if f.HUD {
		c.drawHUD(f)
	}
	return c.canvas
}

func (c *Compositor) drawHUD(f Frame) {
	area := layout.Inset(c.canvas.Bounds(), hudPaddingPx)

	metrics := c.fontFace.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()

	c.drawText(hudHint, area.Min.X, area.Min.Y+ascent)
	c.drawText(f.Session.Code(), area.Min.X, area.Max.Y-lineHeight+ascent)

	qr := c.qrFor(f.Session)
	if qr == nil {
		return
	}
	rect := layout.AnchorBottomRight(area, hudQRSizePx, hudQRSizePx)
	xdraw.NearestNeighbor.Scale(c.canvas, rect, qr, qr.Bounds(), xdraw.Src, nil)
}

// drawText draws a line with a one pixel drop shadow. y is the baseline.
func (c *Compositor) drawText(text string, x, y int) {
	shadow := &font.Drawer{Dst: c.canvas, Src: &image.Uniform{C: Shadow}, Face: c.fontFace}
	shadow.Dot = fixed.P(x+1, y+1)
	shadow.DrawString(text)

	drawer := &font.Drawer{Dst: c.canvas, Src: &image.Uniform{C: Foreground}, Face: c.fontFace}
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(text)
}

// FillBackground clears the canvas, used before the first frame arrives.
func (c *Compositor) FillBackground() {
	draw.Draw(c.canvas, c.canvas.Bounds(), &image.Uniform{C: Shadow}, image.Point{}, draw.Src)
}
