package sim

import "image/color"

// DefaultUIStripHeight is the height of the control band at the top.
const DefaultUIStripHeight = 60.0

// Rect is an axis-aligned rectangle. Containment is half-open on the right
// and bottom edges.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Swatch is a colour button.
type Swatch struct {
	Color color.RGBA
	Rect  Rect
}

// Layout is the fixed geometry of the control panel.
type Layout struct {
	StripHeight float64
	Reset       Rect
	Rotate      Rect // bounding box of the round toggle
	Swatches    []Swatch
}

// NewLayout places the controls for a viewport of the given width.
func NewLayout(width, stripHeight float64) Layout {
	return Layout{
		StripHeight: stripHeight,
		Reset:       Rect{X: 20, Y: 20, W: 100, H: 30},
		Rotate:      Rect{X: width/2 - 15, Y: 20, W: 30, H: 30},
		Swatches: []Swatch{
			{Color: Red, Rect: Rect{X: width - 100, Y: 20, W: 20, H: 20}},
			{Color: DustColor, Rect: Rect{X: width - 70, Y: 20, W: 20, H: 20}},
			{Color: Blue, Rect: Rect{X: width - 40, Y: 20, W: 20, H: 20}},
		},
	}
}

// InStrip reports whether y falls in the control band.
func (l Layout) InStrip(y float64) bool {
	return y < l.StripHeight
}
