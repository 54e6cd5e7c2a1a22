package planet

import "github.com/ojrac/opensimplex-go"

// Field is a pure, deterministic 2D scalar function. The renderer only ever
// talks to noise through this interface.
type Field interface {
	Sample(x, y float64) float64
}

// FieldFunc adapts a plain function to Field.
type FieldFunc func(x, y float64) float64

func (f FieldFunc) Sample(x, y float64) float64 { return f(x, y) }

// Fractal layers octaves of OpenSimplex noise (fBm). The result is
// normalised by the summed amplitudes, so it stays roughly within [-1, 1].
type Fractal struct {
	Noise       opensimplex.Noise
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

func NewFractal(seed int64, octaves int, persistence, lacunarity float64) *Fractal {
	return &Fractal{
		Noise:       opensimplex.New(seed),
		Octaves:     octaves,
		Persistence: persistence,
		Lacunarity:  lacunarity,
	}
}

func (f *Fractal) Sample(x, y float64) float64 {
	var total, maxValue float64
	frequency, amplitude := 1.0, 1.0
	for i := 0; i < f.Octaves; i++ {
		total += f.Noise.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= f.Persistence
		frequency *= f.Lacunarity
	}
	if maxValue == 0 {
		return 0
	}
	return total / maxValue
}

// Fields groups the noise sources the renderer samples. Per-planet variation
// comes from offsetting coordinates by the session seeds, so the same Fields
// value serves every planet.
type Fields struct {
	Terrain Field
	Shimmer Field
	Light   Field
	Cloud   Field
}

// DefaultFields builds the fields from a single OpenSimplex permutation.
func DefaultFields() Fields {
	base := opensimplex.New(0)
	return Fields{
		Terrain: &Fractal{Noise: base, Octaves: 6, Persistence: 0.5, Lacunarity: 2.0},
		Shimmer: &Fractal{Noise: base, Octaves: 2, Persistence: 0.5, Lacunarity: 2.0},
		Light:   &Fractal{Noise: base, Octaves: 3, Persistence: 0.5, Lacunarity: 2.0},
		Cloud:   &Fractal{Noise: base, Octaves: 4, Persistence: 0.6, Lacunarity: 2.2},
	}
}
