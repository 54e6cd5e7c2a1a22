package input

import "context"

type Event string

const (
	Quit      Event = "quit"
	Reset     Event = "reset"
	ToggleHUD Event = "toggle-hud"
)

// Source delivers discrete input events to the frame loop.
type Source interface {
	Start(ctx context.Context) error
	Stop() error
	Events() <-chan Event
}

type NoopSource struct{ ch chan Event }

func NewNoopSource() *NoopSource { return &NoopSource{ch: make(chan Event)} }

func (n *NoopSource) Start(ctx context.Context) error { return nil }
func (n *NoopSource) Stop() error                     { return nil }
func (n *NoopSource) Events() <-chan Event            { return n.ch }

// Drain returns every event currently queued on ch without blocking.
func Drain(ch <-chan Event) []Event {
	var events []Event
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, ev)
		default:
			return events
		}
	}
}

// Linux input-event-codes.h
const (
	KeyEsc uint16 = 1
	KeyQ   uint16 = 16
	KeyR   uint16 = 19
	KeyH   uint16 = 35
	KeyF4  uint16 = 62
)

// EventForKeyCode maps an evdev key code to an event.
func EventForKeyCode(code uint16) (Event, bool) {
	switch code {
	case KeyR:
		return Reset, true
	case KeyH:
		return ToggleHUD, true
	case KeyQ, KeyEsc, KeyF4:
		return Quit, true
	}
	return "", false
}

// EventForRune maps a typed character to an event.
func EventForRune(r rune) (Event, bool) {
	switch r {
	case 'r', 'R':
		return Reset, true
	case 'h', 'H':
		return ToggleHUD, true
	case 'q', 'Q':
		return Quit, true
	}
	return "", false
}
