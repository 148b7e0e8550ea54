package sim

import (
	"image/color"
	"math/rand"
)

// Simulation constants
const (
	DefaultWidth             = 800.0
	DefaultHeight            = 600.0
	DefaultParticles         = 300
	DefaultGravity           = 0.005
	DefaultWindForce         = -1.0 // negative y is up
	DefaultInteractionRadius = 100.0
	DefaultExplosionScale    = 5.0
	DefaultCurlStep          = 0.02 // radians per frame
	DefaultTurbulenceScale   = 0.01
	ParticleRadius           = 2.0
)

// Palette
var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
	Red   = color.RGBA{255, 0, 0, 255}
	Blue  = color.RGBA{0, 0, 255, 255}

	// DustColor is the colour particles are born with.
	DustColor = White
)

// Params holds the process-wide simulation parameters. Everything except Rand
// is constant for a run.
type Params struct {
	Width, Height     float64
	Particles         int
	Gravity           float64
	WindForce         float64
	InteractionRadius float64
	ExplosionScale    float64
	CurlStep          float64
	Turbulence        float64 // horizontal wind jitter, 0 disables
	TurbulenceScale   float64
	Layout            Layout
	Rand              *rand.Rand
}

// DefaultParams returns the stock 800x600 setup driven by the given seed.
func DefaultParams(seed int64) Params {
	return Params{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		Particles:         DefaultParticles,
		Gravity:           DefaultGravity,
		WindForce:         DefaultWindForce,
		InteractionRadius: DefaultInteractionRadius,
		ExplosionScale:    DefaultExplosionScale,
		CurlStep:          DefaultCurlStep,
		TurbulenceScale:   DefaultTurbulenceScale,
		Layout:            NewLayout(DefaultWidth, DefaultUIStripHeight),
		Rand:              rand.New(rand.NewSource(seed)),
	}
}

// Center returns the viewport center used by explosion and curl.
func (p *Params) Center() (float64, float64) {
	return p.Width / 2, p.Height / 2
}
