package sim

import (
	"image/color"
	"math/rand"
)

type drawCall struct {
	op      string
	x, y, r float64
	rect    Rect
	text    string
	color   color.Color
}

// recordingSurface captures draw calls in order.
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) Clear(c color.Color) {
	s.calls = append(s.calls, drawCall{op: "clear", color: c})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c color.Color) {
	s.calls = append(s.calls, drawCall{op: "fill-circle", x: cx, y: cy, r: r, color: c})
}

func (s *recordingSurface) StrokeCircle(cx, cy, r, _ float64, c color.Color) {
	s.calls = append(s.calls, drawCall{op: "stroke-circle", x: cx, y: cy, r: r, color: c})
}

func (s *recordingSurface) FillRect(r Rect, c color.Color) {
	s.calls = append(s.calls, drawCall{op: "fill-rect", rect: r, color: c})
}

func (s *recordingSurface) StrokeRect(r Rect, _ float64, c color.Color) {
	s.calls = append(s.calls, drawCall{op: "stroke-rect", rect: r, color: c})
}

func (s *recordingSurface) Text(str string, x, y float64, c color.Color) {
	s.calls = append(s.calls, drawCall{op: "text", x: x, y: y, text: str, color: c})
}

func (s *recordingSurface) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

// constNoise returns the same sample everywhere and counts lookups.
type constNoise struct {
	v     float64
	calls int
}

func (n *constNoise) Noise2D(_, _ float64) float64 {
	n.calls++
	return n.v
}

func testParams() Params {
	p := DefaultParams(42)
	p.Rand = rand.New(rand.NewSource(42))
	return p
}

type snapshot struct {
	X, Y, VX, VY float64
}

func snap(e Ensemble) []snapshot {
	out := make([]snapshot, len(e))
	for i, p := range e {
		out[i] = snapshot{p.X, p.Y, p.VX, p.VY}
	}
	return out
}
