//go:build !linux

package system

import "errors"

var errNoConsole = errors.New("console mode switching requires linux")

func SetGraphicsMode() error { return errNoConsole }
func RestoreTextMode() error { return errNoConsole }
