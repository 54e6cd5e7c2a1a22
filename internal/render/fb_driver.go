//go:build linux

package render

import (
	"context"
	"fmt"

	fb "github.com/gonutz/framebuffer"

	"github.com/rook-computer/pixelplanet/internal/input"
	"github.com/rook-computer/pixelplanet/internal/system"
)

// FBDriver presents frames on the Linux framebuffer. The composed canvas is
// nearest-neighbour scaled to whatever resolution the device reports.
type FBDriver struct {
	Device string
	Input  input.Source
	Logger Logger

	fbDev      *fb.Device
	compositor *Compositor
}

func NewFBDriver(source input.Source, logger Logger) *FBDriver {
	return &FBDriver{Device: DefaultFBDevice, Input: source, Logger: loggerOrNoop(logger)}
}

func (d *FBDriver) Run(ctx context.Context, frame FrameFunc) error {
	logger := loggerOrNoop(d.Logger)

	dev, err := fb.Open(d.Device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", d.Device, err)
	}
	d.fbDev = dev
	defer dev.Close()
	bounds := dev.Bounds()
	logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	// Switch console to KD_GRAPHICS to suppress the hardware cursor.
	_ = system.SetGraphicsModeWithLog(logger)
	_ = system.HideCursorWithLog(logger)
	defer func() { _ = system.ShowCursorWithLog(logger); _ = system.RestoreTextModeWithLog(logger) }()

	source := d.Input
	if source == nil {
		source = input.NewNoopSource()
	}
	if err := source.Start(ctx); err != nil {
		return fmt.Errorf("start input: %w", err)
	}
	defer source.Stop()

	d.compositor = NewCompositor(logger)
	d.compositor.FillBackground()
	_ = blitToFB(dev, d.compositor.Canvas())

	return runTicker(ctx, logger, "fb", source.Events(), frame, func(f Frame) error {
		return blitToFB(dev, d.compositor.Compose(f))
	})
}
