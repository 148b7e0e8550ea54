package sim

import (
	"image/color"
	"math"
)

// Particle struct: Represents a single point mass
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity
	Radius float64
	Color  color.RGBA
}

// ApplyGravity adds one frame of downward acceleration.
func (p *Particle) ApplyGravity(params *Params) {
	p.VY += params.Gravity
}

// ApplyWind adds the upward wind impulse.
func (p *Particle) ApplyWind(params *Params) {
	p.VY += params.WindForce
}

// ApplyForce adds an impulse to the velocity.
func (p *Particle) ApplyForce(fx, fy float64) {
	p.VX += fx
	p.VY += fy
}

// ApplyCurlRotation moves the particle along its circle around the viewport
// center by one curl step. Position is overwritten; velocity is untouched.
func (p *Particle) ApplyCurlRotation(params *Params) {
	cx, cy := params.Center()
	dx := p.X - cx
	dy := p.Y - cy

	angle := math.Atan2(dy, dx) + params.CurlStep
	dist := math.Hypot(dx, dy)
	p.X = cx + dist*math.Cos(angle)
	p.Y = cy + dist*math.Sin(angle)
}

// Integrate advances the particle by one fixed timestep and stops it
// against the viewport walls.
func (p *Particle) Integrate(params *Params) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 {
		p.X = 0
		p.VX = 0
	}
	if p.X > params.Width {
		p.X = params.Width
		p.VX = 0
	}
	if p.Y < 0 {
		p.Y = 0
		p.VY = 0
	}
	if p.Y > params.Height {
		p.Y = params.Height
		p.VY = 0
	}
}

// Draw renders the particle as a disc at its truncated position.
func (p *Particle) Draw(s Surface) {
	s.FillCircle(float64(int(p.X)), float64(int(p.Y)), p.Radius, p.Color)
}
