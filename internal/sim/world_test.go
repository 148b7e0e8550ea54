package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestWorld(t *testing.T, n int) *World {
	t.Helper()
	params := testParams()
	params.Particles = n
	return NewWorld(params, nil, zaptest.NewLogger(t))
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(t, 30)
	assert.Len(t, w.Particles, 30)
	assert.False(t, w.Controller().CurlActive())
	assert.Zero(t, w.Frame())
}

func TestStripClickNeverBlows(t *testing.T) {
	w := newTestWorld(t, 0)
	// 32 units from the press, just below the strip
	p := &Particle{X: 400, Y: 65}
	w.Particles = Ensemble{p}

	quit := w.Step([]Event{press(370, 55)}, Pointer{X: 370, Y: 55, Held: true})

	assert.False(t, quit)
	assert.Equal(t, DefaultGravity, p.VY)
	assert.InDelta(t, 65+DefaultGravity, p.Y, 1e-12)
}

func TestViewportClickBlowsNearbyOnly(t *testing.T) {
	w := newTestWorld(t, 0)
	near := &Particle{X: 430, Y: 340}
	far := &Particle{X: 700, Y: 300}
	w.Particles = Ensemble{near, far}

	w.Step([]Event{press(400, 300)}, Pointer{X: 400, Y: 300})

	assert.InDelta(t, DefaultWindForce+DefaultGravity, near.VY, 1e-12)
	assert.Equal(t, DefaultGravity, far.VY)
}

func TestHeldPointerBlowsEveryFrame(t *testing.T) {
	w := newTestWorld(t, 0)
	p := &Particle{X: 400, Y: 500}
	w.Particles = Ensemble{p}
	ptr := Pointer{X: 400, Y: 500, Held: true}

	w.Step(nil, ptr)
	assert.InDelta(t, DefaultWindForce+DefaultGravity, p.VY, 1e-12)

	// press frame: the event and the hold both blow
	p.X, p.Y, p.VY = 400, 500, 0
	w.Step([]Event{press(400, 500)}, ptr)
	assert.InDelta(t, 2*DefaultWindForce+DefaultGravity, p.VY, 1e-12)
}

func TestExplodeKey(t *testing.T) {
	w := newTestWorld(t, 0)
	cx, cy := w.Params.Center()
	p := &Particle{X: cx + 10, Y: cy}
	w.Particles = Ensemble{p}

	w.Step([]Event{{Kind: EventKeyPress, Key: KeyExplode}}, Pointer{})

	assert.InDelta(t, 5.0, p.VX, 1e-12)
	assert.Equal(t, DefaultGravity, p.VY)
}

func TestResetRegenerates(t *testing.T) {
	w := newTestWorld(t, 120)
	old := w.Particles
	w.Apply(w.Controller().Handle(press(DefaultWidth-95, 25)))
	require.Equal(t, Red, w.Particles[0].Color)

	w.Apply(w.Controller().Handle(press(30, 30)))

	require.Len(t, w.Particles, 120)
	assert.NotSame(t, old[0], w.Particles[0])
	assert.Equal(t, DustColor, w.Controller().ActiveColor())
	for _, p := range w.Particles {
		assert.True(t, p.X >= 0 && p.X <= w.Params.Width)
		assert.True(t, p.Y >= 0 && p.Y <= w.Params.Height)
		assert.True(t, p.VX >= -1 && p.VX <= 1)
		assert.True(t, p.VY >= -1 && p.VY <= 1)
		assert.Equal(t, DustColor, p.Color)
	}
}

func TestRecolorClick(t *testing.T) {
	w := newTestWorld(t, 80)
	before := snap(w.Particles)

	quit := w.Apply(w.Controller().Handle(press(DefaultWidth-35, 30)))

	assert.False(t, quit)
	assert.Equal(t, before, snap(w.Particles))
	for _, p := range w.Particles {
		assert.Equal(t, Blue, p.Color)
	}
}

func TestCurlToggleThroughStep(t *testing.T) {
	w := newTestWorld(t, 0)
	cx, cy := w.Params.Center()
	p := &Particle{X: cx + 100, Y: cy}
	w.Particles = Ensemble{p}

	w.Step([]Event{press(400, 35)}, Pointer{})
	require.True(t, w.Controller().CurlActive())
	// rotated then integrated with gravity only
	assert.Greater(t, p.Y, cy+1)

	w.Step([]Event{press(400, 35)}, Pointer{})
	assert.False(t, w.Controller().CurlActive())
	assert.Equal(t, uint64(2), w.Frame())
}

func TestQuitFinishesFrame(t *testing.T) {
	w := newTestWorld(t, 0)
	p := &Particle{X: 10, Y: 100}
	w.Particles = Ensemble{p}

	assert.True(t, w.Step([]Event{{Kind: EventQuit}}, Pointer{}))
	assert.Equal(t, DefaultGravity, p.VY)
	assert.Equal(t, uint64(1), w.Frame())
}

func TestWorldDraw(t *testing.T) {
	w := newTestWorld(t, 15)
	s := &recordingSurface{}

	w.Draw(s)

	require.NotEmpty(t, s.calls)
	assert.Equal(t, "clear", s.calls[0].op)
	assert.Equal(t, 15, s.count("fill-circle"))
	assert.Equal(t, 1, s.count("stroke-circle"))
	assert.Equal(t, 1+len(w.Params.Layout.Swatches), s.count("fill-rect"))
	// one outline per swatch plus the active marker
	assert.Equal(t, len(w.Params.Layout.Swatches)+1, s.count("stroke-rect"))
	assert.Equal(t, 2, s.count("text"))

	w.Apply(w.Controller().Handle(press(400, 35)))
	s = &recordingSurface{}
	w.Draw(s)
	assert.Equal(t, 16, s.count("fill-circle"))
	assert.Zero(t, s.count("stroke-circle"))
}
