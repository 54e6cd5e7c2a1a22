package system

import (
	"fmt"
	"io"
	"os"
)

// Prefer /dev/tty (active VT), fall back to /dev/tty0.
var consolePaths = []string{"/dev/tty", "/dev/tty0"}

const (
	hideCursorSeq = "\x1b[?25l"
	showCursorSeq = "\x1b[?25h"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// HideCursor writes the ANSI escape to hide the cursor to the active VT.
func HideCursor() error { return writeVT(hideCursorSeq) }
func ShowCursor() error { return writeVT(showCursorSeq) }

func SetGraphicsModeWithLog(l logger) error {
	return withLog(l, SetGraphicsMode(), "KD_GRAPHICS set", "KD_GRAPHICS failed")
}

func RestoreTextModeWithLog(l logger) error {
	return withLog(l, RestoreTextMode(), "KD_TEXT set", "KD_TEXT failed")
}

func HideCursorWithLog(l logger) error {
	return withLog(l, HideCursor(), "cursor hidden", "hide cursor failed")
}

func ShowCursorWithLog(l logger) error {
	return withLog(l, ShowCursor(), "cursor shown", "show cursor failed")
}

func withLog(l logger, err error, okMsg, failMsg string) error {
	if l == nil {
		return err
	}
	if err != nil {
		l.Errorf("tty", "%s: %v", failMsg, err)
	} else {
		l.Infof("tty", "%s", okMsg)
	}
	return err
}

func writeVT(s string) error {
	var lastErr error
	for _, p := range consolePaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		err = writeSeq(f, s)
		_ = f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return fmt.Errorf("write VT failed: %w", lastErr)
	}
	return fmt.Errorf("write VT failed: unknown error")
}

func writeSeq(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
