//go:build !linux

package render

import (
	"context"
	"errors"

	"github.com/rook-computer/pixelplanet/internal/input"
)

var ErrFBUnsupported = errors.New("framebuffer backend requires linux")

// FBDriver is unavailable outside Linux; Run always fails.
type FBDriver struct {
	Device string
	Input  input.Source
	Logger Logger
}

func NewFBDriver(source input.Source, logger Logger) *FBDriver {
	return &FBDriver{Device: DefaultFBDevice, Input: source, Logger: loggerOrNoop(logger)}
}

func (d *FBDriver) Run(ctx context.Context, frame FrameFunc) error {
	loggerOrNoop(d.Logger).Errorf("fb", "%v", ErrFBUnsupported)
	return ErrFBUnsupported
}
