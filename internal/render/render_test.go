package render

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rook-computer/pixelplanet/internal/input"
	"github.com/rook-computer/pixelplanet/internal/planet"
	"github.com/rook-computer/pixelplanet/internal/state"
)

// checkerboard returns a planet-sized frame where every pixel is distinct
// enough to detect sampling mistakes.
func checkerboard() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, planet.Width, planet.Height))
	for y := 0; y < planet.Height; y++ {
		for x := 0; x < planet.Width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 2), G: uint8(y * 2), B: uint8((x + y) % 2 * 255), A: 0xFF})
		}
	}
	return img
}

func TestComposeUpscalesNearestNeighbour(t *testing.T) {
	c := NewCompositor(nil)
	src := checkerboard()
	canvas := c.Compose(Frame{Image: src})

	if b := canvas.Bounds(); b.Dx() != CanvasWidth || b.Dy() != CanvasHeight {
		t.Fatalf("canvas is %dx%d, want %dx%d", b.Dx(), b.Dy(), CanvasWidth, CanvasHeight)
	}
	for y := 0; y < CanvasHeight; y += 7 {
		for x := 0; x < CanvasWidth; x += 5 {
			if got, want := canvas.RGBAAt(x, y), src.RGBAAt(x/Scale, y/Scale); got != want {
				t.Fatalf("canvas (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestComposeHUDDrawsOverlay(t *testing.T) {
	c := NewCompositor(nil)
	src := image.NewRGBA(image.Rect(0, 0, planet.Width, planet.Height))
	f := Frame{Image: src, Session: state.Session{TerrainSeed: 12, CloudSeed: 34, LightSeed: 56, Radius: 40}}

	plain := make([]byte, 0, CanvasWidth*CanvasHeight*4)
	plain = append(plain, c.Compose(f).Pix...)

	f.HUD = true
	withHUD := c.Compose(f)
	changed := 0
	for i := range plain {
		if plain[i] != withHUD.Pix[i] {
			changed++
		}
	}
	if changed == 0 {
		t.Fatal("HUD did not change the canvas")
	}

	// The QR code sits in the bottom-right corner and contains white modules.
	white := false
	for y := CanvasHeight - hudPaddingPx - hudQRSizePx; y < CanvasHeight-hudPaddingPx; y++ {
		for x := CanvasWidth - hudPaddingPx - hudQRSizePx; x < CanvasWidth-hudPaddingPx; x++ {
			if p := withHUD.RGBAAt(x, y); p.R == 0xFF && p.G == 0xFF && p.B == 0xFF {
				white = true
			}
		}
	}
	if !white {
		t.Error("no QR code found in the bottom-right corner")
	}
	if c.qrPayload != f.Session.Code() {
		t.Errorf("qr cache payload = %q, want %q", c.qrPayload, f.Session.Code())
	}
}

func TestComposeWithoutImageKeepsCanvas(t *testing.T) {
	c := NewCompositor(nil)
	c.FillBackground()
	canvas := c.Compose(Frame{})
	if got := canvas.RGBAAt(0, 0); got != Shadow {
		t.Errorf("canvas (0,0) = %v, want %v", got, Shadow)
	}
}

func TestQRForCachesPerPlanet(t *testing.T) {
	c := NewCompositor(nil)
	s := state.Session{TerrainSeed: 1, CloudSeed: 2, LightSeed: 3, Radius: 40}

	first := c.qrFor(s)
	if first == nil {
		t.Fatal("no qr image")
	}
	if b := first.Bounds(); b.Dx() != hudQRSizePx || b.Dy() != hudQRSizePx {
		t.Errorf("qr image is %v, want %dx%d", b, hudQRSizePx, hudQRSizePx)
	}

	s.Rotation = 2.5
	if c.qrFor(s) != first {
		t.Error("rotation alone regenerated the qr code")
	}

	s.TerrainSeed = 9
	if c.qrFor(s) == first {
		t.Error("new planet reused the old qr code")
	}
	if c.qrPayload != s.Code() {
		t.Errorf("qr cache payload = %q, want %q", c.qrPayload, s.Code())
	}
}

type fakeFB struct {
	bounds image.Rectangle
	img    *image.RGBA
}

func (f *fakeFB) Bounds() image.Rectangle { return f.bounds }
func (f *fakeFB) Set(x, y int, c color.Color) {
	f.img.Set(x, y, c)
}

func TestBlitToFBScalesToDevice(t *testing.T) {
	canvas := checkerboard()
	dev := &fakeFB{bounds: image.Rect(0, 0, 250, 150), img: image.NewRGBA(image.Rect(0, 0, 250, 150))}
	if err := blitToFB(dev, canvas); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{0, 0}, {249, 149}, {125, 75}, {17, 93}} {
		sx := p.X * planet.Width / 250
		sy := p.Y * planet.Height / 150
		if got, want := dev.img.RGBAAt(p.X, p.Y), canvas.RGBAAt(sx, sy); got != want {
			t.Errorf("device %v = %v, want %v", p, got, want)
		}
	}
	if err := blitToFB(nil, canvas); err != nil {
		t.Errorf("nil device: %v", err)
	}
}

func TestTermViewport(t *testing.T) {
	tests := []struct {
		w, h int
		hud  bool
		want image.Rectangle
	}{
		{100, 50, false, image.Rect(0, 0, 100, 50)},
		{100, 51, true, image.Rect(0, 0, 100, 50)},
		{80, 24, false, image.Rect(16, 0, 64, 24)},
		{80, 24, true, image.Rect(17, 0, 63, 23)},
		{30, 40, false, image.Rect(0, 0, 30, 15)},
		{0, 0, true, image.Rect(0, 0, 0, 0)},
	}
	for _, tt := range tests {
		if got := termViewport(tt.w, tt.h, tt.hud); got != tt.want {
			t.Errorf("termViewport(%d, %d, %v) = %v, want %v", tt.w, tt.h, tt.hud, got, tt.want)
		}
	}
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(w, h)
	return sim
}

func TestDrawTermUsesHalfBlocks(t *testing.T) {
	sim := newSimScreen(t, 100, 51)
	defer sim.Fini()

	src := checkerboard()
	drawTerm(sim, Frame{Image: src, HUD: true, Session: state.Session{Radius: 30}})
	sim.Show()

	cells, width, _ := sim.GetContents()
	for _, p := range []image.Point{{0, 0}, {10, 20}, {99, 49}} {
		cell := cells[p.Y*width+p.X]
		if len(cell.Runes) == 0 || cell.Runes[0] != upperHalfBlock {
			t.Fatalf("cell %v runes = %q", p, cell.Runes)
		}
		fg, bg, _ := cell.Style.Decompose()
		top := src.RGBAAt(p.X, 2*p.Y)
		bottom := src.RGBAAt(p.X, 2*p.Y+1)
		if want := tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B)); fg != want {
			t.Errorf("cell %v fg = %v, want %v", p, fg, want)
		}
		if want := tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)); bg != want {
			t.Errorf("cell %v bg = %v, want %v", p, bg, want)
		}
	}

	status := cells[50*width : 50*width+4]
	if got := string(status[0].Runes) + string(status[1].Runes); got != "t0" {
		t.Errorf("status line starts with %q, want planet code", got)
	}
}

func TestTermDriverRunHandlesKeys(t *testing.T) {
	sim := newSimScreen(t, 60, 31)
	d := &TermDriver{Screen: sim}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	img := checkerboard()
	var seen []input.Event
	frames := 0
	injected := false
	err := d.Run(ctx, func(events []input.Event) (Frame, bool) {
		frames++
		if !injected {
			sim.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
			sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
			sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
			injected = true
		}
		seen = append(seen, events...)
		for _, ev := range events {
			if ev == input.Quit {
				return Frame{}, true
			}
		}
		return Frame{Image: img}, false
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatalf("driver did not quit on Escape; saw %v after %d frames", seen, frames)
	}
	if len(seen) != 2 || seen[0] != input.Reset || seen[1] != input.Quit {
		t.Errorf("events = %v, want [reset quit]", seen)
	}
}

func TestHeadlessDriverStopsAfterFrames(t *testing.T) {
	d := &HeadlessDriver{Frames: 5}
	calls := 0
	err := d.Run(context.Background(), func([]input.Event) (Frame, bool) {
		calls++
		return Frame{Session: state.Session{Rotation: float64(calls)}}, false
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 5 {
		t.Errorf("frame called %d times, want 5", calls)
	}
	if d.Last.Session.Rotation != 5 {
		t.Errorf("last frame rotation = %v, want 5", d.Last.Session.Rotation)
	}
}

func TestHeadlessDriverQuit(t *testing.T) {
	d := &HeadlessDriver{}
	calls := 0
	err := d.Run(context.Background(), func([]input.Event) (Frame, bool) {
		calls++
		return Frame{}, calls == 3
	})
	if err != nil || calls != 3 {
		t.Errorf("Run = %v after %d calls, want nil after 3", err, calls)
	}
}
