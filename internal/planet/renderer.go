package planet

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/rook-computer/pixelplanet/internal/state"
)

// Renderer shades the planet into a fixed Width x Height RGBA buffer.
// The buffer is reused between calls and is only valid until the next Render.
type Renderer struct {
	fields Fields
	opts   Options
	buf    *image.RGBA
}

func NewRenderer(fields Fields, opts Options) *Renderer {
	return &Renderer{
		fields: fields,
		opts:   opts,
		buf:    image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
}

func (r *Renderer) Options() Options { return r.opts }

// Render draws one frame for the given session.
func (r *Renderer) Render(s state.Session) *image.RGBA {
	draw.Draw(r.buf, r.buf.Bounds(), &image.Uniform{C: toRGBA(Space)}, image.Point{}, draw.Src)

	cx, cy := Width/2, Height/2
	radius := float64(s.Radius)
	for y := 0; y < Height; y++ {
		shadowX := TerminatorX(cx, y, s.Rotation)
		for x := 0; x < Width; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			if math.Sqrt(dx*dx+dy*dy) > radius {
				continue
			}
			night := float64(x) >= shadowX
			r.buf.SetRGBA(x, y, toRGBA(r.shade(x, y, night, s)))
		}
	}
	return r.buf
}

func (r *Renderer) shade(x, y int, night bool, s state.Session) colorful.Color {
	norm := r.elevation(x, y, s)
	band := Classify(norm)

	c := band.Color()
	if band == BandWater {
		c = scale(c, r.waterBrightness(x, y, norm, s))
	}

	if night {
		c = scale(c, NightDarkness)
		if r.opts.CityLights {
			lseed := float64(s.LightSeed)
			sample := r.fields.Light.Sample(float64(x)*LightScale+lseed, float64(y)*LightScale+lseed)
			if IsCityLight(night, norm, sample) {
				c = CityLight
			}
		}
	}

	cloud := r.fields.Cloud.Sample(
		(float64(x)+s.Rotation*CloudDrift)*CloudScale,
		float64(y)*CloudScale+float64(s.CloudSeed),
	)
	if alpha := CloudAlpha(cloud, night, r.opts.NightClouds); alpha > 0 {
		c = c.BlendRgb(Cloud, alpha)
	}
	return c
}

// elevation samples the terrain field and shifts it into roughly [0, 1].
func (r *Renderer) elevation(x, y int, s state.Session) float64 {
	seed := float64(s.TerrainSeed)
	nx := (float64(x)+s.Rotation)*TerrainScale + seed
	ny := float64(y)*TerrainScale + seed
	return r.fields.Terrain.Sample(nx, ny) + 0.5
}

func (r *Renderer) waterBrightness(x, y int, norm float64, s state.Session) float64 {
	b := waterBrightness(norm)
	if !r.opts.Shimmer {
		return b
	}
	seed := float64(s.TerrainSeed)
	b += 0.15*r.fields.Shimmer.Sample((float64(x)+s.Rotation)*ShimmerScale+seed, float64(y)*ShimmerScale+seed)
	b += ripple(x, y, s.Rotation)
	return clamp(b, WaterBrightnessMin, WaterBrightnessMax)
}

// toRGBA rounds each channel to the nearest byte; palette colours map back
// to their exact hex values.
func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// SpaceRGBA is the background colour as written into the buffer.
func SpaceRGBA() color.RGBA { return toRGBA(Space) }
