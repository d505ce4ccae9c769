// Package scene orchestrates the trig engine and the label fader: one
// Update call per frame advances the angle, derives every label's anchor
// position from the scaled trig values, and runs the fade evaluation. It
// produces data only; the game layer draws from its accessors.
package scene

import (
	"math"

	"github.com/jamiegibney/trig-visuals/internal/config"
	"github.com/jamiegibney/trig-visuals/internal/geom"
	"github.com/jamiegibney/trig-visuals/internal/labels"
	"github.com/jamiegibney/trig-visuals/internal/trig"
)

// Value panel layout in scene space (y-up, origin at the circle center).
// The six function rows double as click targets for visibility toggles.
const (
	panelX        = 430.0
	panelRowStep  = 50.0
	panelHitHalfW = 70.0
	panelHitHalfH = 20.0
)

// PanelRowY returns the y coordinate of a function's value row. Rows run
// sin, cos, tan from y=150 upward of the axis and cot, sec, csc below it,
// with theta and rate on the outer rows.
func PanelRowY(fn labels.Label) float64 {
	switch fn {
	case labels.Sin:
		return 150
	case labels.Cos:
		return 100
	case labels.Tan:
		return 50
	case labels.Cot:
		return -50
	case labels.Sec:
		return -100
	case labels.Csc:
		return -150
	default:
		return 0
	}
}

// PanelX is the left edge of the value panel in scene space.
func PanelX() float64 { return panelX }

// Model is the per-frame state of the diagram.
type Model struct {
	engine trig.Engine
	fader  *labels.Fader

	rate   float64
	radius float64

	running    bool
	showLabels bool
	showValues bool
	showArc    bool

	// visible gates each of the six function lines and labels, indexed by
	// the label ordinal (Sin..Csc).
	visible [6]bool

	raw     trig.Values
	scaled  trig.Values
	wrapped bool

	prevClick bool
}

// New creates a model at theta=0 with everything visible and running.
func New(cfg config.Config) *Model {
	m := &Model{
		fader:      labels.NewFader(),
		rate:       cfg.Rate,
		radius:     cfg.Radius,
		running:    true,
		showLabels: true,
		showValues: true,
		showArc:    true,
	}
	for i := range m.visible {
		m.visible[i] = true
	}
	m.raw, m.scaled = m.engine.Compute(m.radius)
	return m
}

// Update runs one frame in fixed order: pointer toggles, advance theta,
// recompute trig values, reposition every label, evaluate overlaps, advance
// opacities. pointer is in scene space; clicked is the primary button state.
func (m *Model) Update(dt float64, pointer geom.Vec2, clicked bool) {
	m.handleClick(pointer, clicked)

	m.wrapped = m.engine.Advance(dt, m.rate, m.running)
	m.raw, m.scaled = m.engine.Compute(m.radius)

	m.placeLabels()
	m.fader.Update(dt)
}

// handleClick toggles a function's visibility when its value row is clicked.
// Only the press edge counts, not the held button.
func (m *Model) handleClick(pointer geom.Vec2, clicked bool) {
	pressed := clicked && !m.prevClick
	m.prevClick = clicked
	if !pressed || !m.showValues {
		return
	}

	for fn := labels.Sin; fn <= labels.Csc; fn++ {
		row := geom.RectAt(
			geom.V2(panelX+panelHitHalfW, PanelRowY(fn)),
			geom.V2(panelHitHalfW, panelHitHalfH),
		)
		if row.Contains(pointer) {
			m.visible[fn] = !m.visible[fn]
			return
		}
	}
}

// placeLabels derives each label's anchor from the current trig values and
// feeds it to the fader. The offsets are visual tuning constants carried
// over unchanged from the original diagram.
func (m *Model) placeLabels() {
	r := m.radius
	raw, s := m.raw, m.scaled
	theta := m.engine.Theta()

	m.fader.SetPosition(labels.Cos, geom.V2(s.Cos*0.5, 15))
	m.fader.SetPosition(labels.Sin, geom.V2(s.Cos+22, s.Sin*0.5))
	m.fader.SetPosition(labels.Tan, geom.V2(r+23, s.Tan*0.5))

	// The cotangent label rides the bisector between the node and the top
	// of the cosecant segment.
	xDir := 1.0
	if theta >= math.Pi {
		xDir = -1.0
	}
	m.fader.SetPosition(labels.Cot, geom.V2(
		s.Cos*0.5+xDir*raw.Cos*20,
		(s.Sin+s.Csc)*0.5+12+math.Abs(raw.Sin)*8,
	))

	m.fader.SetPosition(labels.Sec, geom.V2(r*0.5-raw.Tan*7, s.Tan*0.5+18))
	m.fader.SetPosition(labels.Csc, geom.V2(-25, s.Csc*0.5))

	m.fader.SetPosition(labels.Theta, geom.V2(
		math.Cos(theta*0.5)*r*0.93,
		math.Sin(theta*0.5)*r*0.93,
	))

	m.fader.SetPosition(labels.Unit, geom.V2(
		s.Cos*0.5+15*math.Cos(theta-math.Pi*0.5),
		s.Sin*0.5+15*math.Sin(theta-math.Pi*0.5),
	))
}

// Accessors

func (m *Model) Theta() float64      { return m.engine.Theta() }
func (m *Model) Rate() float64       { return m.rate }
func (m *Model) Radius() float64     { return m.radius }
func (m *Model) Running() bool       { return m.running }
func (m *Model) ShowLabels() bool    { return m.showLabels }
func (m *Model) ShowValues() bool    { return m.showValues }
func (m *Model) ShowArc() bool       { return m.showArc }
func (m *Model) Values() trig.Values { return m.raw }
func (m *Model) Scaled() trig.Values { return m.scaled }

// Wrapped reports whether the last Update crossed a full turn.
func (m *Model) Wrapped() bool { return m.wrapped }

// Visible reports whether a function's line and label are shown. Labels
// outside the six functions are always visible.
func (m *Model) Visible(fn labels.Label) bool {
	if fn < labels.Sin || fn > labels.Csc {
		return true
	}
	return m.visible[fn]
}

// LabelPosition returns a label's anchor in scene space.
func (m *Model) LabelPosition(l labels.Label) geom.Vec2 {
	return m.fader.Position(l)
}

// LabelOpacity returns a label's current fade opacity.
func (m *Model) LabelOpacity(l labels.Label) float64 {
	return m.fader.Opacity(l)
}

// Input-driven mutations

func (m *Model) ToggleRunning() { m.running = !m.running }
func (m *Model) ToggleLabels()  { m.showLabels = !m.showLabels }
func (m *Model) ToggleValues()  { m.showValues = !m.showValues }
func (m *Model) ToggleArc()     { m.showArc = !m.showArc }

func (m *Model) IncrementRate() {
	m.rate += config.RateIncrement
}

func (m *Model) DecrementRate() {
	m.rate = math.Max(0, m.rate-config.RateIncrement)
}

func (m *Model) ResetRate() {
	m.rate = config.DefaultRate
}

func (m *Model) IncrementRadius() {
	m.radius += config.RadiusIncrement
}

func (m *Model) DecrementRadius() {
	m.radius = math.Max(0, m.radius-config.RadiusIncrement)
}

func (m *Model) ResetRadius() {
	m.radius = config.DefaultRadius
}

func (m *Model) ResetTheta() {
	m.engine.SetTheta(0)
}
