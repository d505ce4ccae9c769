// Package labels decides, per frame, whether each watched diagram label
// overlaps a label it is sensitive to and animates its opacity accordingly.
package labels

import (
	"fmt"

	"github.com/jamiegibney/trig-visuals/internal/geom"
)

// Label identifies one of the diagram's text labels. The set is closed and
// fixed at these eight members.
type Label int

const (
	Sin Label = iota
	Cos
	Tan
	Cot
	Sec
	Csc
	Theta
	Unit

	numLabels
)

func (l Label) String() string {
	switch l {
	case Sin:
		return "sin"
	case Cos:
		return "cos"
	case Tan:
		return "tan"
	case Cot:
		return "cot"
	case Sec:
		return "sec"
	case Csc:
		return "csc"
	case Theta:
		return "theta"
	case Unit:
		return "unit"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// watched lists the labels whose opacity is animated. The rest only act as
// overlap targets and stay fully opaque.
var watched = [...]Label{Sin, Cos, Sec, Theta, Unit}

// fadesAgainst is the hand-authored fade-trigger table: l fades while its
// rectangle overlaps other's. The relation is directional, tuned to the
// clutter patterns of the diagram rather than any symmetric overlap rule.
func (l Label) fadesAgainst(other Label) bool {
	switch l {
	case Sin:
		return other == Tan || other == Csc
	case Cos:
		return other == Sec
	case Sec:
		return other == Cot
	case Theta:
		return other == Sin
	case Unit:
		return other == Cos || other == Sin || other == Csc
	default:
		return false
	}
}

const (
	// DefaultFadeSecs is how long a full fade out (or in) takes under
	// continuous overlap (or separation).
	DefaultFadeSecs = 0.3

	// DefaultFadeIntensity sets the opacity floor at 1 - intensity, so a
	// faded label stays faintly readable instead of vanishing.
	DefaultFadeIntensity = 0.8
)

// labelHalfExtent is the fixed half-size of every label's bounding box. The
// boxes are a coarse stand-in for real text metrics.
var labelHalfExtent = geom.V2(20, 25)

// Fader tracks a rectangle, fade flag and opacity per label, keyed by the
// label's ordinal.
type Fader struct {
	rects      [numLabels]geom.Rect
	shouldFade [numLabels]bool
	opacity    [numLabels]float64

	fadeInSecs    float64
	fadeOutSecs   float64
	fadeIntensity float64
}

// NewFader creates a fader with every label at the origin and fully opaque.
func NewFader() *Fader {
	f := &Fader{
		fadeInSecs:    DefaultFadeSecs,
		fadeOutSecs:   DefaultFadeSecs,
		fadeIntensity: DefaultFadeIntensity,
	}
	for i := range f.rects {
		f.rects[i] = geom.RectAt(geom.Vec2{}, labelHalfExtent)
		f.opacity[i] = 1.0
	}
	return f
}

// SetPosition moves l's rectangle center to p, keeping the fixed half-extent.
// Every label, watched or not, gets a fresh position each frame before
// evaluation since unwatched labels still act as overlap targets.
func (f *Fader) SetPosition(l Label, p geom.Vec2) {
	f.rects[l].Center = p
}

// Position returns l's rectangle center. An out-of-range label is a
// programming defect and panics.
func (f *Fader) Position(l Label) geom.Vec2 {
	if l < 0 || l >= numLabels {
		panic(fmt.Sprintf("labels: position of unknown label %d", int(l)))
	}
	return f.rects[l].Center
}

// Opacity returns l's current opacity. Unknown labels degrade to fully
// opaque so a defensive renderer query never fails.
func (f *Fader) Opacity(l Label) float64 {
	if l < 0 || l >= numLabels {
		return 1.0
	}
	return f.opacity[l]
}

// ShouldFade reports the result of the last overlap evaluation for l.
func (f *Fader) ShouldFade(l Label) bool {
	if l < 0 || l >= numLabels {
		return false
	}
	return f.shouldFade[l]
}

// Update runs one frame of the fader: evaluate overlaps, then advance every
// watched opacity by dt.
func (f *Fader) Update(dt float64) {
	f.EvaluateOverlaps()
	f.AdvanceOpacity(dt)
}

// EvaluateOverlaps recomputes the fade flag of every watched label from the
// current rectangles. The first qualifying overlap is enough; only existence
// matters, not which pair triggered it. Flags are computed into a local
// buffer first and applied after, so no label's decision can observe
// another's partially updated state.
func (f *Fader) EvaluateOverlaps() {
	var next [numLabels]bool

	for _, l := range watched {
		for o := Label(0); o < numLabels; o++ {
			if o == l {
				continue
			}
			if l.fadesAgainst(o) && f.rects[l].Intersects(f.rects[o]) {
				next[l] = true
				break
			}
		}
	}

	f.shouldFade = next
}

// AdvanceOpacity ramps each watched label's opacity linearly toward the
// floor while its fade flag is set, or back toward 1 while it is clear,
// clamping to [1-fadeIntensity, 1] every step.
func (f *Fader) AdvanceOpacity(dt float64) {
	floor := 1.0 - f.fadeIntensity

	for _, l := range watched {
		if f.shouldFade[l] {
			f.opacity[l] -= dt / f.fadeOutSecs
		} else {
			f.opacity[l] += dt / f.fadeInSecs
		}

		if f.opacity[l] < floor {
			f.opacity[l] = floor
		} else if f.opacity[l] > 1.0 {
			f.opacity[l] = 1.0
		}
	}
}
