package planet

import (
	"fmt"
	"strings"
)

// Options selects the optional stages of the shading pipeline.
type Options struct {
	Shimmer     bool
	CityLights  bool
	NightClouds bool
}

type Variant string

const (
	// Classic is terrain, depth-shaded water, terminator and clouds.
	Classic Variant = "classic"
	// Lit adds water shimmer, stable city lights and clouds dimmed at night.
	Lit Variant = "lit"
)

func ParseVariant(name string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(name))); v {
	case Classic, Lit:
		return v, nil
	case "":
		return Lit, nil
	default:
		return "", fmt.Errorf("unknown variant %q (want %s or %s)", name, Classic, Lit)
	}
}

func (v Variant) Options() Options {
	if v == Lit {
		return Options{Shimmer: true, CityLights: true, NightClouds: true}
	}
	return Options{}
}
