package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/jamiegibney/trig-visuals/internal/config"
	"github.com/jamiegibney/trig-visuals/internal/labels"
	"github.com/jamiegibney/trig-visuals/internal/scene"
	"github.com/jamiegibney/trig-visuals/internal/trig"
)

var (
	colorGrey      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorLightGrey = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// One color per trig function, indexed by the label ordinal.
	functionColors = [6]color.RGBA{
		{R: 255, A: 255},         // sin, red
		{G: 255, A: 255},         // cos, green
		{R: 255, G: 255, A: 255}, // tan, yellow
		{R: 255, G: 128, A: 255}, // cot, orange
		{R: 255, B: 255, A: 255}, // sec, magenta
		{G: 255, B: 255, A: 255}, // csc, cyan
	}

	functionNames = [6]string{"sin θ", "cos θ", "tan θ", "cot θ", "sec θ", "csc θ"}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.drawBackgroundLines(screen)
	g.drawUnitCircle(screen)
	g.drawTrigLines(screen)
	g.drawNode(screen)
	g.drawValues(screen)

	status := "Space: run | L/V/T: labels/values/arc | Up/Down: rate | =/-/0: radius | R/S: reset | M: mute | P: screenshot | Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	if g.shotPath != "" {
		if err := saveScreenshot(screen, g.shotPath); err != nil {
			g.lastErr = err
		}
		g.shotPath = ""
	}
}

// drawBackgroundLines draws the axes and the rotating unit (radius) line.
func (g *Game) drawBackgroundLines(screen *ebiten.Image) {
	const w = config.StrokeWeight - 1
	vector.StrokeLine(screen, g.sx(-1000), g.sy(0), g.sx(1000), g.sy(0), w, colorGrey, true)
	vector.StrokeLine(screen, g.sx(0), g.sy(-1000), g.sx(0), g.sy(1000), w, colorGrey, true)

	s := g.model.Scaled()
	vector.StrokeLine(screen, g.sx(0), g.sy(0), g.sx(s.Cos), g.sy(s.Sin),
		config.StrokeWeight-0.8, colorGrey, true)

	if g.model.ShowLabels() {
		pos := g.model.LabelPosition(labels.Unit)
		drawTextCentered(screen, "1.0", g.faces.label,
			float64(g.sx(pos.X)), float64(g.sy(pos.Y)),
			colorLightGrey, g.model.LabelOpacity(labels.Unit))
	}
}

func (g *Game) drawUnitCircle(screen *ebiten.Image) {
	vector.StrokeCircle(screen, g.sx(0), g.sy(0), float32(g.model.Radius()),
		config.StrokeWeight-0.3, colorGrey, true)

	if g.model.ShowArc() {
		g.drawThetaArc(screen)
	}
}

// drawThetaArc draws the swept-angle arc as a polyline along the circle,
// plus the θ label on the arc's bisector.
func (g *Game) drawThetaArc(screen *ebiten.Image) {
	theta := g.model.Theta()
	r := g.model.Radius()

	if g.model.ShowLabels() {
		pos := g.model.LabelPosition(labels.Theta)
		drawTextCentered(screen, "θ", g.faces.label,
			float64(g.sx(pos.X)), float64(g.sy(pos.Y)),
			colorWhite, g.model.LabelOpacity(labels.Theta))
	}

	progress := theta / trig.Tau
	numPoints := int(math.Ceil(config.ArcPoints * progress))
	if numPoints == 0 {
		return
	}

	prevX, prevY := g.sx(r), g.sy(0)
	for i := 1; i <= numPoints; i++ {
		t := theta * float64(i) / float64(numPoints)
		x, y := g.sx(math.Cos(t)*r), g.sy(math.Sin(t)*r)
		vector.StrokeLine(screen, prevX, prevY, x, y, config.StrokeWeight, colorWhite, true)
		prevX, prevY = x, y
	}
}

func (g *Game) drawTrigLines(screen *ebiten.Image) {
	s := g.model.Scaled()
	r := g.model.Radius()

	type segment struct {
		fn             labels.Label
		x0, y0, x1, y1 float64
	}
	segments := []segment{
		{labels.Sin, s.Cos, 0, s.Cos, s.Sin},
		{labels.Cos, 0, 0, s.Cos, 0},
		{labels.Tan, r, 0, r, s.Tan},
		{labels.Cot, s.Cos, s.Sin, 0, s.Csc},
		{labels.Sec, 0, 0, r, s.Tan},
		{labels.Csc, 0, 0, 0, s.Csc},
	}

	for _, seg := range segments {
		if !g.model.Visible(seg.fn) {
			continue
		}
		clr := functionColors[seg.fn]
		vector.StrokeLine(screen, g.sx(seg.x0), g.sy(seg.y0), g.sx(seg.x1), g.sy(seg.y1),
			config.StrokeWeight, clr, true)

		if g.model.ShowLabels() {
			pos := g.model.LabelPosition(seg.fn)
			drawTextCentered(screen, functionNames[seg.fn], g.faces.label,
				float64(g.sx(pos.X)), float64(g.sy(pos.Y)),
				clr, g.model.LabelOpacity(seg.fn))
		}
	}
}

// drawNode draws the point moving along the circle.
func (g *Game) drawNode(screen *ebiten.Image) {
	s := g.model.Scaled()
	vector.DrawFilledCircle(screen, g.sx(s.Cos), g.sy(s.Sin), config.NodeRadius, colorWhite, true)
}

// drawValues renders the value panel. Each function row doubles as a click
// target toggling that function; hidden functions render dimmed.
func (g *Game) drawValues(screen *ebiten.Image) {
	if !g.model.ShowValues() {
		return
	}

	v := g.model.Values()
	px := scene.PanelX()

	if g.model.ShowArc() {
		drawTextLeft(screen, formatAngle(g.model.Theta()), g.faces.value,
			float64(g.sx(px)), float64(g.sy(200)), colorWhite, 1)
	}

	rows := [6]float64{v.Sin, v.Cos, v.Tan, v.Cot, v.Sec, v.Csc}
	for fn := labels.Sin; fn <= labels.Csc; fn++ {
		opacity := 1.0
		if !g.model.Visible(fn) {
			opacity = 0.35
		}
		line := fmt.Sprintf("%s = %s", functionNames[fn], formatValue(rows[fn]))
		drawTextLeft(screen, line, g.faces.value,
			float64(g.sx(px)), float64(g.sy(scene.PanelRowY(fn))),
			functionColors[fn], opacity)
	}

	rate := g.model.Rate()
	if !g.model.Running() {
		rate = 0
	}
	drawTextLeft(screen, formatRate(rate), g.faces.value,
		float64(g.sx(px)), float64(g.sy(-200)), colorGrey, 1)
}
