package render

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/rook-computer/pixelplanet/internal/input"
	"github.com/rook-computer/pixelplanet/internal/state"
)

var ErrUnknownBackend = errors.New("unknown backend")

// Frame is what the app hands a driver once per tick.
type Frame struct {
	Image   *image.RGBA
	Session state.Session
	HUD     bool
}

// FrameFunc consumes the input collected since the last tick and produces the
// next frame. quit reports that the loop should end; the frame is then unset.
type FrameFunc func(events []input.Event) (frame Frame, quit bool)

// Driver owns the surface, the event queue and the frame clock.
// Run blocks until the frame func asks to quit, ctx is done, or the surface fails.
type Driver interface {
	Run(ctx context.Context, frame FrameFunc) error
}

type Logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

func loggerOrNoop(l Logger) Logger {
	if l == nil {
		return noopLogger{}
	}
	return l
}

// HeadlessDriver runs the frame loop without presenting anything, for smoke
// runs on machines without a display. It stops after Frames ticks when
// Frames > 0. Interval paces the loop; zero runs flat out.
type HeadlessDriver struct {
	Frames   int
	Interval time.Duration
	Logger   Logger

	Last Frame
}

func (d *HeadlessDriver) Run(ctx context.Context, frame FrameFunc) error {
	logger := loggerOrNoop(d.Logger)
	var tick <-chan time.Time
	if d.Interval > 0 {
		ticker := time.NewTicker(d.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	for n := 0; d.Frames <= 0 || n < d.Frames; n++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}
		f, quit := frame(nil)
		if quit {
			return nil
		}
		d.Last = f
		if n%FPS == 0 {
			logger.Infof("headless", "frame %d, planet %s, rotation %.2f", n, f.Session.Code(), f.Session.Rotation)
		}
	}
	return nil
}
