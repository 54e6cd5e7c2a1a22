package planet

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type Band int

const (
	BandWater Band = iota
	BandBeach
	BandLand
	BandMountain
	BandSnow
)

func (b Band) String() string {
	switch b {
	case BandWater:
		return "water"
	case BandBeach:
		return "beach"
	case BandLand:
		return "land"
	case BandMountain:
		return "mountain"
	case BandSnow:
		return "snow"
	default:
		return "unknown"
	}
}

// Classify maps a normalised elevation to its terrain band.
// A value sitting exactly on a threshold belongs to the band above it.
func Classify(norm float64) Band {
	switch {
	case norm < 0.50:
		return BandWater
	case norm < 0.55:
		return BandBeach
	case norm < 0.75:
		return BandLand
	case norm < 0.85:
		return BandMountain
	default:
		return BandSnow
	}
}

func (b Band) Color() colorful.Color {
	switch b {
	case BandWater:
		return Water
	case BandBeach:
		return Beach
	case BandLand:
		return Land
	case BandMountain:
		return Mountain
	default:
		return Snow
	}
}

// waterBrightness returns the depth-based brightness factor for a water pixel.
func waterBrightness(norm float64) float64 {
	depth := (0.5 - norm) / 0.5
	return 0.6 + depth*0.4
}

// ripple is the sinusoidal part of the water shimmer.
func ripple(x, y int, rotation float64) float64 {
	return 0.05*math.Sin(float64(x)*0.6+rotation*5) + 0.04*math.Sin(float64(y)*0.45-rotation*3)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func scale(c colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}.Clamped()
}

// TerminatorX is the column that splits day from night on row y. Columns left
// of it are lit. The curve repeats every π of rotation.
func TerminatorX(cx, y int, rotation float64) float64 {
	phase := rotation * 2
	rowAngle := float64(y) * math.Pi / 180
	return float64(cx) + math.Cos(phase+rowAngle)*TerminatorAmplitude
}

// IsCityLight reports whether a night pixel shows settlement lights.
func IsCityLight(night bool, norm, lightSample float64) bool {
	if !night {
		return false
	}
	if norm < CityLightMinNorm || norm >= CityLightMaxNorm {
		return false
	}
	return lightSample > CityLightThreshold
}

// CloudAlpha turns a cloud noise sample into an opacity in [0, 1].
// Zero means no cloud.
func CloudAlpha(sample float64, night, dimAtNight bool) float64 {
	if sample <= CloudThreshold {
		return 0
	}
	thickness := math.Min((sample-CloudThicknessMin)/CloudThicknessRun, 1)
	alpha := (CloudAlphaRange*thickness + CloudAlphaBase) / 255
	if night && dimAtNight {
		alpha *= NightCloudDimming
	}
	return alpha
}
