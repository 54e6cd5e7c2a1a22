package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/rook-computer/pixelplanet/internal/input"
)

const upperHalfBlock = '▀'

// TermDriver presents frames in a truecolor terminal. Each cell shows two
// vertically stacked pixels: the glyph carries the top one as foreground and
// the cell background carries the bottom one.
type TermDriver struct {
	// Screen is created and initialised on Run when nil. A provided screen
	// must already be initialised; it is finalised when Run returns.
	Screen tcell.Screen
	Logger Logger
}

func NewTermDriver(logger Logger) *TermDriver {
	return &TermDriver{Logger: loggerOrNoop(logger)}
}

func (d *TermDriver) Run(ctx context.Context, frame FrameFunc) error {
	logger := loggerOrNoop(d.Logger)

	screen := d.Screen
	if screen == nil {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("terminal backend needs stdout to be a terminal")
		}
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create terminal screen: %w", err)
		}
		if err := s.Init(); err != nil {
			return fmt.Errorf("init terminal screen: %w", err)
		}
		screen = s
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	events := make(chan input.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollTermEvents(screen, events, done)

	w, h := screen.Size()
	logger.Infof("term", "terminal screen ready, size=%dx%d", w, h)

	return runTicker(ctx, logger, "term", events, frame, func(f Frame) error {
		drawTerm(screen, f)
		screen.Show()
		return nil
	})
}

// pollTermEvents forwards key presses until the screen is finalised.
func pollTermEvents(screen tcell.Screen, events chan<- input.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		var out input.Event
		switch ev := ev.(type) {
		case *tcell.EventKey:
			e, ok := termKeyEvent(ev)
			if !ok {
				continue
			}
			out = e
		case *tcell.EventResize:
			screen.Sync()
			continue
		default:
			continue
		}
		select {
		case events <- out:
		case <-done:
			return
		}
	}
}

func termKeyEvent(ev *tcell.EventKey) (input.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit, true
	case tcell.KeyRune:
		return input.EventForRune(ev.Rune())
	}
	return "", false
}

// termViewport returns the cell rectangle the planet occupies. Cells are
// assumed to be twice as tall as they are wide, so a square of pixels is
// cols wide and cols/2 rows tall.
func termViewport(width, height int, hud bool) image.Rectangle {
	rows := height
	if hud && rows > 0 {
		rows--
	}
	cols := width
	if 2*rows < cols {
		cols = 2 * rows
	}
	rows = (cols + 1) / 2
	x := (width - cols) / 2
	return image.Rect(x, 0, x+cols, rows)
}

func drawTerm(screen tcell.Screen, f Frame) {
	screen.Clear()
	width, height := screen.Size()
	view := termViewport(width, height, f.HUD)
	if f.Image != nil && !view.Empty() {
		src := f.Image.Bounds()
		pixelRows := view.Dy() * 2
		for cy := 0; cy < view.Dy(); cy++ {
			topY := src.Min.Y + (2*cy*src.Dy())/pixelRows
			bottomY := src.Min.Y + ((2*cy+1)*src.Dy())/pixelRows
			for cx := 0; cx < view.Dx(); cx++ {
				sx := src.Min.X + (cx*src.Dx())/view.Dx()
				top := f.Image.RGBAAt(sx, topY)
				bottom := f.Image.RGBAAt(sx, bottomY)
				style := tcell.StyleDefault.
					Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
					Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
				screen.SetContent(view.Min.X+cx, view.Min.Y+cy, upperHalfBlock, nil, style)
			}
		}
	}
	if f.HUD && height > 0 {
		status := f.Session.Code() + "  " + hudHint
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(Foreground.R), int32(Foreground.G), int32(Foreground.B)))
		col := 0
		for _, r := range status {
			if col >= width {
				break
			}
			screen.SetContent(col, height-1, r, nil, style)
			col++
		}
	}
}
