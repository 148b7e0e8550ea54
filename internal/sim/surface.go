package sim

import "image/color"

// Surface is the drawing target the simulation renders onto. Presenting the
// frame is left to the caller.
type Surface interface {
	Clear(c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, width float64, c color.Color)
	Text(s string, x, y float64, c color.Color)
}

// EventKind tags an input event.
type EventKind int

const (
	EventQuit EventKind = iota
	EventPointerPress
	EventKeyPress
)

// Key identifies a keyboard key the simulation reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyExplode
)

// Event is one polled input event.
type Event struct {
	Kind EventKind
	X, Y float64 // pointer press position
	Key  Key
}

// Pointer is the continuous pointer state sampled once per frame.
type Pointer struct {
	X, Y float64
	Held bool
}
