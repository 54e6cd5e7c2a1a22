package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadCode = errors.New("malformed planet code")

// Code renders the session's seeds and radius as a short shareable string,
// e.g. "t4821-c77-l9001-r38". Rotation is not part of the code.
func (s Session) Code() string {
	return fmt.Sprintf("t%d-c%d-l%d-r%d", s.TerrainSeed, s.CloudSeed, s.LightSeed, s.Radius)
}

// ParseCode is the inverse of Session.Code. The returned session starts at rotation 0.
// Seeds are limited to the range Reset draws from; far larger offsets
// lose float64 precision in the noise coordinates.
func ParseCode(code string) (Session, error) {
	seedMax := DefaultConfig().SeedMax
	parts := strings.Split(strings.TrimSpace(code), "-")
	if len(parts) != 4 {
		return Session{}, fmt.Errorf("%w: %q: want 4 fields, got %d", ErrBadCode, code, len(parts))
	}

	var session Session
	targets := []struct {
		prefix byte
		apply  func(int64)
	}{
		{'t', func(v int64) { session.TerrainSeed = v }},
		{'c', func(v int64) { session.CloudSeed = v }},
		{'l', func(v int64) { session.LightSeed = v }},
		{'r', func(v int64) { session.Radius = int(v) }},
	}
	for i, part := range parts {
		target := targets[i]
		if len(part) < 2 || part[0] != target.prefix {
			return Session{}, fmt.Errorf("%w: %q: field %d must start with %q", ErrBadCode, code, i+1, target.prefix)
		}
		value, err := strconv.ParseInt(part[1:], 10, 64)
		if err != nil {
			return Session{}, fmt.Errorf("%w: %q: %v", ErrBadCode, code, err)
		}
		if value < 0 {
			return Session{}, fmt.Errorf("%w: %q: field %d is negative", ErrBadCode, code, i+1)
		}
		if i < 3 && value > seedMax {
			return Session{}, fmt.Errorf("%w: %q: seed %d exceeds %d", ErrBadCode, code, value, seedMax)
		}
		target.apply(value)
	}
	if session.Radius <= 0 || session.Radius > MaxRadius {
		return Session{}, fmt.Errorf("%w: %q: radius must be in [1, %d]", ErrBadCode, code, MaxRadius)
	}
	return session, nil
}
