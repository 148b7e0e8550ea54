package sim

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Noise is a smooth 2D scalar field centred on zero. *perlin.Perlin
// satisfies it.
type Noise interface {
	Noise2D(x, y float64) float64
}

// NewTurbulence builds the perlin field used to jitter the wind.
func NewTurbulence(seed int64) *perlin.Perlin {
	return perlin.NewPerlin(2, 2, 3, seed)
}

// Gravity pulls every particle down by one frame of acceleration.
func Gravity(e Ensemble, params *Params) {
	for _, p := range e {
		p.ApplyGravity(params)
	}
}

// Wind blows upward on every particle strictly within the interaction radius
// of (x, y) and returns how many were hit. With turbulence enabled each hit
// particle also gets a sideways kick sampled from noise at its position.
func Wind(e Ensemble, params *Params, noise Noise, x, y float64) int {
	hit := 0
	for _, p := range e {
		if math.Hypot(p.X-x, p.Y-y) >= params.InteractionRadius {
			continue
		}
		p.ApplyWind(params)
		if params.Turbulence > 0 && noise != nil {
			s := params.TurbulenceScale
			p.ApplyForce(params.Turbulence*noise.Noise2D(p.X*s, p.Y*s), 0)
		}
		hit++
	}
	return hit
}

// ExplosionImpulse returns the shockwave impulse for p. The impulse points
// away from the viewport center with strength scale/distance applied to the
// raw displacement. ok is false for a particle exactly at the center.
func ExplosionImpulse(p *Particle, params *Params) (fx, fy float64, ok bool) {
	cx, cy := params.Center()
	dx := p.X - cx
	dy := p.Y - cy
	dist := math.Hypot(dx, dy)
	if dist <= 0 {
		return 0, 0, false
	}
	force := params.ExplosionScale / dist
	return dx * force, dy * force, true
}

// Explode applies a one-shot shockwave from the viewport center.
func Explode(e Ensemble, params *Params) {
	for _, p := range e {
		if fx, fy, ok := ExplosionImpulse(p, params); ok {
			p.ApplyForce(fx, fy)
		}
	}
}

// Curl rotates every particle one step clockwise around the center.
func Curl(e Ensemble, params *Params) {
	for _, p := range e {
		p.ApplyCurlRotation(params)
	}
}
