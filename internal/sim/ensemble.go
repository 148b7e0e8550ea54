package sim

import "image/color"

// Ensemble is one generation of particles.
type Ensemble []*Particle

// NewEnsemble creates count particles scattered uniformly over the viewport
// with velocities drawn from [-1, 1] on each axis.
func NewEnsemble(params *Params, count int, c color.RGBA) Ensemble {
	e := make(Ensemble, count)
	for i := range e {
		e[i] = &Particle{
			X:      params.Rand.Float64() * params.Width,
			Y:      params.Rand.Float64() * params.Height,
			VX:     params.Rand.Float64()*2 - 1,
			VY:     params.Rand.Float64()*2 - 1,
			Radius: ParticleRadius,
			Color:  c,
		}
	}
	return e
}

// Recolor paints every particle in place.
func (e Ensemble) Recolor(c color.RGBA) {
	for _, p := range e {
		p.Color = c
	}
}

// Update applies gravity and integrates each particle.
func (e Ensemble) Update(params *Params) {
	Gravity(e, params)
	for _, p := range e {
		p.Integrate(params)
	}
}

// Draw renders every particle.
func (e Ensemble) Draw(s Surface) {
	for _, p := range e {
		p.Draw(s)
	}
}
