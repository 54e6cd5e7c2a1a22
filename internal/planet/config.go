package planet

import colorful "github.com/lucasb-eyer/go-colorful"

// Pixel grid the planet is drawn into; scaled up by the presenter.
const (
	Width  = 100
	Height = 100
)

// Pastel palette.
var (
	Space     = mustHex("#190523")
	Water     = mustHex("#a0c4ff")
	Beach     = mustHex("#ffd6a5")
	Land      = mustHex("#b5ead7")
	Mountain  = mustHex("#c7ceea")
	Snow      = mustHex("#ffffff")
	Cloud     = mustHex("#ffffff")
	CityLight = mustHex("#fff5ba")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Sampling scales and thresholds.
const (
	TerrainScale = 0.07
	CloudScale   = 0.4
	ShimmerScale = 0.15
	LightScale   = 0.3

	// Clouds drift faster than the ground below them.
	CloudDrift = 1.5

	NightDarkness = 0.3

	TerminatorAmplitude = 8.0

	CloudThreshold    = 0.20
	CloudThicknessMin = 0.15
	CloudThicknessRun = 0.5
	CloudAlphaBase    = 50.0
	CloudAlphaRange   = 150.0
	NightCloudDimming = 0.5

	CityLightThreshold = 0.28
	CityLightMinNorm   = 0.45
	CityLightMaxNorm   = 0.85

	WaterBrightnessMin = 0.45
	WaterBrightnessMax = 1.15
)
