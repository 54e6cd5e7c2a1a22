//go:build linux

package input

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const evKey = 0x01

type keyboardLogger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// KeyboardSource watches Linux evdev devices under /dev/input/event* and
// turns key presses into events. It is best-effort: without readable devices
// it logs and stays silent.
type KeyboardSource struct {
	Logger keyboardLogger
	Glob   string

	ch     chan Event
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewKeyboardSource(logger keyboardLogger) *KeyboardSource {
	return &KeyboardSource{Logger: logger, Glob: "/dev/input/event*", ch: make(chan Event, 16)}
}

func (k *KeyboardSource) Events() <-chan Event { return k.ch }

func (k *KeyboardSource) Start(ctx context.Context) error {
	paths, err := filepath.Glob(k.Glob)
	if err != nil || len(paths) == 0 {
		if k.Logger != nil {
			k.Logger.Infof("input", "no evdev devices found under %s", k.Glob)
		}
		return nil
	}

	readCtx, cancel := context.WithCancel(ctx)
	k.cancel = cancel
	for _, path := range paths {
		k.wg.Add(1)
		go func(p string) {
			defer k.wg.Done()
			k.read(readCtx, p)
		}(path)
	}
	if k.Logger != nil {
		k.Logger.Infof("input", "watching %d evdev devices", len(paths))
	}
	return nil
}

func (k *KeyboardSource) Stop() error {
	if k.cancel != nil {
		k.cancel()
	}
	k.wg.Wait()
	return nil
}

func (k *KeyboardSource) read(ctx context.Context, path string) {
	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	eventSize := tvSize + 2 + 2 + 4
	if eventSize <= 0 {
		eventSize = 24
	}

	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, ev := range decodeKeyPresses(buf[:n], tvSize) {
			select {
			case k.ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

// decodeKeyPresses parses a run of input_event records and keeps key-down
// events that map to something.
func decodeKeyPresses(data []byte, tvSize int) []Event {
	eventSize := tvSize + 8
	var events []Event
	for off := 0; off+eventSize <= len(data); off += eventSize {
		rec := data[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ != evKey || value != 1 {
			continue
		}
		if ev, ok := EventForKeyCode(code); ok {
			events = append(events, ev)
		}
	}
	return events
}
