package labels

import (
	"math"
	"testing"

	"github.com/jamiegibney/trig-visuals/internal/geom"
)

// scatter spreads every label far apart so no pair overlaps.
func scatter(f *Fader) {
	for l := Label(0); l < numLabels; l++ {
		f.SetPosition(l, geom.V2(float64(l)*500, 0))
	}
}

func TestSineFadesOverTangent(t *testing.T) {
	f := NewFader()
	scatter(f)
	f.SetPosition(Sin, geom.V2(100, 0))
	f.SetPosition(Tan, geom.V2(100, 5))

	f.EvaluateOverlaps()

	if !f.ShouldFade(Sin) {
		t.Error("sine overlapping tangent must be marked for fading")
	}
	if f.ShouldFade(Tan) {
		t.Error("tangent is not watched and must never fade")
	}
}

func TestFadeTriggerTable(t *testing.T) {
	tests := []struct {
		name    string
		label   Label
		against Label
		want    bool
	}{
		{"Sine over tangent", Sin, Tan, true},
		{"Sine over cosecant", Sin, Csc, true},
		{"Sine over cosine", Sin, Cos, false},
		{"Cosine over secant", Cos, Sec, true},
		{"Cosine over tangent", Cos, Tan, false},
		{"Secant over cotangent", Sec, Cot, true},
		{"Theta over sine", Theta, Sin, true},
		{"Theta over cosine", Theta, Cos, false},
		{"Unit over cosine", Unit, Cos, true},
		{"Unit over sine", Unit, Sin, true},
		{"Unit over cosecant", Unit, Csc, true},
		{"Unit over tangent", Unit, Tan, false},
		{"Tangent never triggers", Tan, Sin, false},
		{"Cotangent never triggers", Cot, Sec, false},
		{"Cosecant never triggers", Csc, Sin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFader()
			scatter(f)
			f.SetPosition(tt.label, geom.V2(0, 0))
			f.SetPosition(tt.against, geom.V2(5, 5))

			f.EvaluateOverlaps()

			if got := f.ShouldFade(tt.label); got != tt.want {
				t.Errorf("ShouldFade(%v over %v) = %v, want %v",
					tt.label, tt.against, got, tt.want)
			}
		})
	}
}

func TestOverlapDirectionality(t *testing.T) {
	// Theta triggers on sine but sine does not trigger on theta, so only
	// theta's opacity moves when the two overlap.
	f := NewFader()
	scatter(f)
	f.SetPosition(Theta, geom.V2(0, 0))
	f.SetPosition(Sin, geom.V2(10, 10))

	for i := 0; i < 10; i++ {
		f.Update(0.01)
	}

	if f.Opacity(Theta) >= 1.0 {
		t.Errorf("theta opacity = %v, expected it to drop", f.Opacity(Theta))
	}
	if f.Opacity(Sin) != 1.0 {
		t.Errorf("sine opacity = %v, must stay fully opaque", f.Opacity(Sin))
	}
}

func TestFlagsRecomputedEveryFrame(t *testing.T) {
	f := NewFader()
	scatter(f)
	f.SetPosition(Sin, geom.V2(100, 0))
	f.SetPosition(Tan, geom.V2(100, 5))
	f.EvaluateOverlaps()
	if !f.ShouldFade(Sin) {
		t.Fatal("expected sine to fade while overlapping")
	}

	// Move tangent away; no stale carry-over is allowed.
	f.SetPosition(Tan, geom.V2(900, 900))
	f.EvaluateOverlaps()
	if f.ShouldFade(Sin) {
		t.Error("fade flag must clear once the overlap is gone")
	}
}

func TestOpacityRampTiming(t *testing.T) {
	const dt = 0.01
	floor := 1.0 - DefaultFadeIntensity

	f := NewFader()
	scatter(f)
	f.SetPosition(Sin, geom.V2(100, 0))
	f.SetPosition(Tan, geom.V2(100, 5))

	// Half of the floor-to-full distance takes fadeIntensity*fadeSecs/2
	// seconds of continuous overlap.
	for i := 0; i < 12; i++ {
		f.Update(dt)
	}
	if got := f.Opacity(Sin); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("opacity after 0.12s of overlap = %v, want 0.6", got)
	}

	// The rest of the way down, then some: clamp holds at the floor.
	for i := 0; i < 30; i++ {
		f.Update(dt)
	}
	if got := f.Opacity(Sin); math.Abs(got-floor) > 1e-9 {
		t.Errorf("opacity after saturation = %v, want floor %v", got, floor)
	}

	// Separate them and ramp back up, linearly, to exactly 1.
	f.SetPosition(Tan, geom.V2(900, 900))
	for i := 0; i < 12; i++ {
		f.Update(dt)
	}
	if got := f.Opacity(Sin); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("opacity after 0.12s of separation = %v, want 0.6", got)
	}
	for i := 0; i < 30; i++ {
		f.Update(dt)
	}
	if got := f.Opacity(Sin); got != 1.0 {
		t.Errorf("opacity after full fade-in = %v, want 1", got)
	}
}

func TestOpacityStaysInBounds(t *testing.T) {
	floor := 1.0 - DefaultFadeIntensity

	f := NewFader()
	scatter(f)

	// Flap the overlap on and off with irregular time steps and make sure
	// no watched label ever leaves [floor, 1].
	steps := []float64{0.001, 0.3, 0.016, 1.5, 0, 0.07}
	for frame := 0; frame < 200; frame++ {
		if frame%3 == 0 {
			f.SetPosition(Tan, f.Position(Sin).Add(geom.V2(3, 3)))
			f.SetPosition(Csc, f.Position(Unit).Add(geom.V2(-4, 2)))
		} else {
			f.SetPosition(Tan, geom.V2(2000, 2000))
			f.SetPosition(Csc, geom.V2(-2000, 2000))
		}
		f.Update(steps[frame%len(steps)])

		for _, l := range watched {
			if op := f.Opacity(l); op < floor || op > 1.0 {
				t.Fatalf("frame %d: %v opacity %v outside [%v, 1]", frame, l, op, floor)
			}
		}
	}
}

func TestOpacityDefaultsForUnknownLabel(t *testing.T) {
	f := NewFader()
	if got := f.Opacity(Label(99)); got != 1.0 {
		t.Errorf("unknown label opacity = %v, want 1", got)
	}
	if got := f.Opacity(Label(-1)); got != 1.0 {
		t.Errorf("negative label opacity = %v, want 1", got)
	}
	// Unwatched labels are queried defensively by the renderer and must
	// read as fully opaque.
	if got := f.Opacity(Cot); got != 1.0 {
		t.Errorf("cotangent opacity = %v, want 1", got)
	}
}

func TestPositionPanicsForUnknownLabel(t *testing.T) {
	f := NewFader()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unknown label position")
		}
	}()
	f.Position(Label(42))
}

func TestEvaluationIgnoresSelfOverlap(t *testing.T) {
	// Every rectangle trivially overlaps itself; that must never count.
	f := NewFader()
	scatter(f)
	f.EvaluateOverlaps()
	for _, l := range watched {
		if f.ShouldFade(l) {
			t.Errorf("%v marked for fading with no qualifying neighbor", l)
		}
	}
}
