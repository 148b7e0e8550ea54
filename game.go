package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/dustwind/internal/sim"
)

// Game adapts the simulation world to Ebitengine
type Game struct {
	world  *sim.World
	log    *zap.Logger
	face   font.Face
	events []sim.Event
	keys   []ebiten.Key
}

// NewGame wraps a world for ebiten.RunGame
func NewGame(world *sim.World, log *zap.Logger) *Game {
	return &Game{
		world: world,
		log:   log,
		face:  basicfont.Face7x13,
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if g.world.Step(g.pollEvents(), g.pointer()) {
		g.log.Info("shutting down", zap.Uint64("frames", g.world.Frame()))
		return ebiten.Termination
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(&screenSurface{img: screen, face: g.face})
}

// Layout returns the screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.world.Params.Width), int(g.world.Params.Height)
}

// pollEvents collects this tick's discrete input
func (g *Game) pollEvents() []sim.Event {
	g.events = g.events[:0]

	if ebiten.IsWindowBeingClosed() {
		g.events = append(g.events, sim.Event{Kind: sim.EventQuit})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.events = append(g.events, sim.Event{Kind: sim.EventPointerPress, X: float64(mx), Y: float64(my)})
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.events = append(g.events, sim.Event{Kind: sim.EventKeyPress, Key: keyFor(k)})
	}
	return g.events
}

// pointer samples the continuous pointer state
func (g *Game) pointer() sim.Pointer {
	mx, my := ebiten.CursorPosition()
	return sim.Pointer{
		X:    float64(mx),
		Y:    float64(my),
		Held: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

func keyFor(k ebiten.Key) sim.Key {
	switch k {
	case ebiten.KeySpace:
		return sim.KeyExplode
	default:
		return sim.KeyUnknown
	}
}

// screenSurface draws onto an ebiten image
type screenSurface struct {
	img  *ebiten.Image
	face font.Face
}

func (s *screenSurface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s *screenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *screenSurface) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	vector.StrokeCircle(s.img, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func (s *screenSurface) FillRect(r sim.Rect, c color.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *screenSurface) StrokeRect(r sim.Rect, width float64, c color.Color) {
	vector.StrokeRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), c, false)
}

// Text draws with (x, y) as the top-left corner
func (s *screenSurface) Text(str string, x, y float64, c color.Color) {
	ascent := s.face.Metrics().Ascent.Ceil()
	text.Draw(s.img, str, s.face, int(x), int(y)+ascent, c)
}
