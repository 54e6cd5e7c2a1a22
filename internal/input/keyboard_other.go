//go:build !linux

package input

import "context"

type keyboardLogger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// KeyboardSource has no device backend outside Linux and never emits.
type KeyboardSource struct {
	Logger keyboardLogger
	ch     chan Event
}

func NewKeyboardSource(logger keyboardLogger) *KeyboardSource {
	return &KeyboardSource{Logger: logger, ch: make(chan Event)}
}

func (k *KeyboardSource) Start(ctx context.Context) error {
	if k.Logger != nil {
		k.Logger.Infof("input", "evdev keyboard not supported on this platform")
	}
	return nil
}

func (k *KeyboardSource) Stop() error          { return nil }
func (k *KeyboardSource) Events() <-chan Event { return k.ch }
