// Package trig owns the animation clock and derives the six trigonometric
// values the diagram renders each frame.
package trig

import "math"

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// Sentinel replaces mathematical infinity so downstream geometry stays finite.
const Sentinel = math.MaxFloat64

// Values holds the six trigonometric functions evaluated at one angle.
type Values struct {
	Sin, Cos, Tan, Cot, Sec, Csc float64
}

// Scale returns a copy of v with every component multiplied by s.
func (v Values) Scale(s float64) Values {
	return Values{
		Sin: v.Sin * s,
		Cos: v.Cos * s,
		Tan: v.Tan * s,
		Cot: v.Cot * s,
		Sec: v.Sec * s,
		Csc: v.Csc * s,
	}
}

// ClampInf replaces any infinite component with the signed Sentinel.
// Tan, cot, sec and csc diverge near their asymptotes, which would otherwise
// push NaN or unbounded coordinates into the renderer.
func (v *Values) ClampInf() {
	for _, p := range []*float64{&v.Tan, &v.Cot, &v.Sec, &v.Csc} {
		if math.IsInf(*p, 1) {
			*p = Sentinel
		} else if math.IsInf(*p, -1) {
			*p = -Sentinel
		}
	}
}

// Engine advances an angle over time and evaluates Values at it.
type Engine struct {
	theta float64
}

// Theta returns the current angle in radians. Advance keeps it in [0, Tau)
// for any per-frame step that crosses the boundary by less than a full
// extra turn.
func (e *Engine) Theta() float64 {
	return e.theta
}

// SetTheta overwrites the angle directly. Used for reset and tests.
func (e *Engine) SetTheta(theta float64) {
	e.theta = theta
}

// Advance moves the angle forward by rate*dt and wraps it back into
// [0, Tau) after a full turn. It reports whether a wrap happened, which the
// game layer uses to chime once per revolution. When running is false the
// clock is frozen and nothing changes.
func (e *Engine) Advance(dt, rate float64, running bool) bool {
	if !running {
		return false
	}

	e.theta += rate * dt

	if e.theta >= Tau {
		e.theta -= Tau
		return true
	}
	return false
}

// Compute evaluates the six functions at the current angle and returns the
// raw values plus a copy scaled by radius for render-space coordinates.
// Cot, sec and csc reuse the primary three via their reciprocal identities
// rather than spending extra transcendental calls, and both copies have
// divergent components clamped to the Sentinel. The raw copy is clamped
// before scaling: multiplying an infinity by a zero radius would yield NaN.
func (e *Engine) Compute(radius float64) (raw, scaled Values) {
	raw.Sin = math.Sin(e.theta)
	raw.Cos = math.Cos(e.theta)
	raw.Tan = math.Tan(e.theta)
	raw.Cot = 1 / raw.Tan
	raw.Sec = 1 / raw.Cos
	raw.Csc = 1 / raw.Sin
	raw.ClampInf()

	scaled = raw.Scale(radius)
	scaled.ClampInf()
	return raw, scaled
}
