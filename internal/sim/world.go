package sim

import "go.uber.org/zap"

// World is the simulation context: parameters, the current ensemble and the
// input state. One Step is one fixed timestep; there is no dt scaling.
type World struct {
	Params    Params
	Particles Ensemble
	ctrl      *Controller
	noise     Noise
	log       *zap.Logger
	frame     uint64
}

// NewWorld seeds the first generation of particles.
func NewWorld(params Params, noise Noise, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		Params: params,
		ctrl:   NewController(params.Layout, log.Named("input")),
		noise:  noise,
		log:    log,
	}
	w.Particles = NewEnsemble(&w.Params, params.Particles, DustColor)
	return w
}

// Controller exposes the input state for rendering.
func (w *World) Controller() *Controller { return w.ctrl }

// Frame is the number of completed steps.
func (w *World) Frame() uint64 { return w.frame }

// Step runs one frame: drain events, apply held wind, rotate if curl is on,
// then gravity and integration. It reports whether a quit was requested;
// the frame is completed either way.
func (w *World) Step(events []Event, ptr Pointer) (quit bool) {
	for _, ev := range events {
		if w.Apply(w.ctrl.Handle(ev)) {
			quit = true
		}
	}
	if cmd, ok := w.ctrl.Hold(ptr); ok {
		w.Apply(cmd)
	}
	if w.ctrl.CurlActive() {
		Curl(w.Particles, &w.Params)
	}
	w.Particles.Update(&w.Params)
	w.frame++
	return quit
}

// Apply executes a command against the world and reports whether it was a
// quit request.
func (w *World) Apply(cmd Command) bool {
	switch cmd.Action {
	case ActionQuit:
		w.log.Info("quit requested", zap.Uint64("frame", w.frame))
		return true
	case ActionReset:
		w.Particles = NewEnsemble(&w.Params, w.Params.Particles, DustColor)
	case ActionRecolor:
		w.Particles.Recolor(cmd.Color)
	case ActionWind:
		Wind(w.Particles, &w.Params, w.noise, cmd.X, cmd.Y)
	case ActionExplode:
		Explode(w.Particles, &w.Params)
	}
	return false
}

// Draw clears the surface and renders the particles and the control panel.
func (w *World) Draw(s Surface) {
	s.Clear(Black)
	w.Particles.Draw(s)
	w.drawPanel(s)
}

func (w *World) drawPanel(s Surface) {
	l := w.Params.Layout

	s.FillRect(l.Reset, White)
	s.Text("Reset", l.Reset.X+10, l.Reset.Y+8, Black)

	r := l.Rotate
	cx, cy, rad := r.X+r.W/2, r.Y+r.H/2, r.W/2
	if w.ctrl.CurlActive() {
		s.FillCircle(cx, cy, rad, White)
		s.Text("@", r.X+11, r.Y+8, Black)
	} else {
		s.StrokeCircle(cx, cy, rad, 2, White)
		s.Text("@", r.X+11, r.Y+8, White)
	}

	active := w.ctrl.ActiveColor()
	for _, sw := range l.Swatches {
		s.FillRect(sw.Rect, sw.Color)
		s.StrokeRect(sw.Rect, 2, White)
		if sw.Color == active {
			s.StrokeRect(Rect{X: sw.Rect.X - 3, Y: sw.Rect.Y - 3, W: sw.Rect.W + 6, H: sw.Rect.H + 6}, 1, White)
		}
	}
}
