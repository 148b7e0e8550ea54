package sim

import (
	"image/color"

	"go.uber.org/zap"
)

// Action is what an input asks the world to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionReset
	ActionRecolor
	ActionToggleCurl
	ActionWind
	ActionExplode
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionReset:
		return "reset"
	case ActionRecolor:
		return "recolor"
	case ActionToggleCurl:
		return "toggle-curl"
	case ActionWind:
		return "wind"
	case ActionExplode:
		return "explode"
	default:
		return "none"
	}
}

// Command is a resolved input: the action plus its argument.
type Command struct {
	Action Action
	X, Y   float64    // wind origin
	Color  color.RGBA // recolor target
}

// Controller maps input to commands. It owns the curl toggle and the active
// swatch; particle data stays with the world.
type Controller struct {
	layout Layout
	curl   bool
	color  color.RGBA
	log    *zap.Logger
}

// NewController returns a controller with curl off and the dust colour
// selected.
func NewController(layout Layout, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{layout: layout, color: DustColor, log: log}
}

// CurlActive reports whether the rotating wind is on.
func (c *Controller) CurlActive() bool { return c.curl }

// ActiveColor is the last selected swatch colour.
func (c *Controller) ActiveColor() color.RGBA { return c.color }

// Handle resolves one discrete event. Presses inside the control strip are
// only ever hit-tested against the buttons; presses below it become wind.
func (c *Controller) Handle(ev Event) Command {
	switch ev.Kind {
	case EventQuit:
		return Command{Action: ActionQuit}
	case EventKeyPress:
		if ev.Key == KeyExplode {
			c.log.Debug("explosion")
			return Command{Action: ActionExplode}
		}
	case EventPointerPress:
		if !c.layout.InStrip(ev.Y) {
			return Command{Action: ActionWind, X: ev.X, Y: ev.Y}
		}
		return c.press(ev.X, ev.Y)
	}
	return Command{}
}

func (c *Controller) press(x, y float64) Command {
	if c.layout.Reset.Contains(x, y) {
		c.color = DustColor
		c.log.Debug("reset")
		return Command{Action: ActionReset}
	}
	for _, sw := range c.layout.Swatches {
		if sw.Rect.Contains(x, y) {
			c.color = sw.Color
			c.log.Debug("recolor", zap.Any("color", sw.Color))
			return Command{Action: ActionRecolor, Color: sw.Color}
		}
	}
	if c.layout.Rotate.Contains(x, y) {
		c.curl = !c.curl
		c.log.Debug("curl toggled", zap.Bool("active", c.curl))
		return Command{Action: ActionToggleCurl}
	}
	return Command{}
}

// Hold returns the wind command for a pointer held below the strip.
func (c *Controller) Hold(ptr Pointer) (Command, bool) {
	if !ptr.Held || c.layout.InStrip(ptr.Y) {
		return Command{}, false
	}
	return Command{Action: ActionWind, X: ptr.X, Y: ptr.Y}, true
}
