package state

import (
	"errors"
	"fmt"
	"math/rand"
)

// MaxRadius is the largest planet radius that still fits the 100x100 pixel buffer.
const MaxRadius = 50

// Session holds everything that varies between frames and between planets.
// Rotation accumulates without wrapping.
type Session struct {
	TerrainSeed int64
	CloudSeed   int64
	LightSeed   int64
	Radius      int
	Rotation    float64
}

// RadiusRange is an inclusive range of planet radii in pixels.
type RadiusRange struct {
	Min int
	Max int
}

func (r RadiusRange) Contains(radius int) bool {
	return radius >= r.Min && radius <= r.Max
}

type Config struct {
	RotationSpeed float64
	SeedMax       int64
	InitialRadius RadiusRange
	ResetRadius   RadiusRange
}

// DefaultConfig matches the look of the original pastel planet.
func DefaultConfig() Config {
	return Config{
		RotationSpeed: 0.01,
		SeedMax:       10000,
		InitialRadius: RadiusRange{Min: 25, Max: 40},
		ResetRadius:   RadiusRange{Min: 35, Max: 50},
	}
}

func (c Config) Validate() error {
	if c.SeedMax < 0 {
		return fmt.Errorf("seed max must not be negative (got %d)", c.SeedMax)
	}
	if err := validateRange("initial radius", c.InitialRadius); err != nil {
		return err
	}
	return validateRange("reset radius", c.ResetRadius)
}

func validateRange(name string, r RadiusRange) error {
	if r.Min <= 0 || r.Max < r.Min {
		return fmt.Errorf("%s range [%d, %d] is invalid", name, r.Min, r.Max)
	}
	if r.Max > MaxRadius {
		return fmt.Errorf("%s %d exceeds buffer half-size %d", name, r.Max, MaxRadius)
	}
	return nil
}

// Controller owns the session and is only ever touched from the frame loop.
type Controller struct {
	cfg     Config
	rng     *rand.Rand
	session Session
}

func NewController(cfg Config, rng *rand.Rand) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("no random source configured")
	}
	c := &Controller{cfg: cfg, rng: rng}
	c.session = c.draw(cfg.InitialRadius)
	return c, nil
}

func (c *Controller) Config() Config { return c.cfg }

func (c *Controller) Snapshot() Session { return c.session }

// Tick advances the rotation by one frame.
func (c *Controller) Tick() {
	c.session.Rotation += c.cfg.RotationSpeed
}

// Reset draws a brand new planet and starts it at rotation 0.
func (c *Controller) Reset() {
	c.session = c.draw(c.cfg.ResetRadius)
}

// Restore installs a known session, e.g. one decoded from a planet code.
// The radius is clamped to what the buffer can hold.
func (c *Controller) Restore(s Session) {
	if s.Radius > MaxRadius {
		s.Radius = MaxRadius
	}
	if s.Radius < 0 {
		s.Radius = 0
	}
	c.session = s
}

func (c *Controller) draw(radius RadiusRange) Session {
	return Session{
		TerrainSeed: c.rng.Int63n(c.cfg.SeedMax + 1),
		CloudSeed:   c.rng.Int63n(c.cfg.SeedMax + 1),
		LightSeed:   c.rng.Int63n(c.cfg.SeedMax + 1),
		Radius:      radius.Min + c.rng.Intn(radius.Max-radius.Min+1),
		Rotation:    0,
	}
}
