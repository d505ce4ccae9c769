// Package game is the ebiten driver for the unit-circle diagram: it owns
// the window loop, dispatches input to the scene model and renders the
// positions, opacities and values the model produces.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jamiegibney/trig-visuals/internal/config"
	"github.com/jamiegibney/trig-visuals/internal/geom"
	"github.com/jamiegibney/trig-visuals/internal/scene"
)

// Game implements ebiten.Game around a scene.Model.
type Game struct {
	model *scene.Model
	faces *faces
	chime chime

	width  int
	height int
	// Scene origin in screen coordinates (scene y points up).
	originX float64
	originY float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	muted    bool
	shotPath string
	lastErr  error
}

// New builds the game from the loaded settings.
func New(cfg config.Config) (*Game, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}

	return &Game{
		model:   scene.New(cfg),
		faces:   f,
		width:   cfg.WindowWidth,
		height:  cfg.WindowHeight,
		originX: float64(cfg.WindowWidth)/2 + config.SceneOffsetX,
		originY: float64(cfg.WindowHeight) / 2,
		muted:   cfg.Muted,
		prevKey: map[ebiten.Key]bool{},
	}, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.model.ToggleRunning()
	}
	if justPressed(ebiten.KeyL) {
		g.model.ToggleLabels()
	}
	if justPressed(ebiten.KeyV) {
		g.model.ToggleValues()
	}
	if justPressed(ebiten.KeyT) {
		g.model.ToggleArc()
	}
	if justPressed(ebiten.KeyUp) {
		g.model.IncrementRate()
	}
	if justPressed(ebiten.KeyDown) {
		g.model.DecrementRate()
	}
	if justPressed(ebiten.KeyR) {
		g.model.ResetTheta()
	}
	if justPressed(ebiten.KeyS) {
		g.model.ResetRate()
	}
	if justPressed(ebiten.KeyEqual) {
		g.model.IncrementRadius()
	}
	if justPressed(ebiten.KeyMinus) {
		g.model.DecrementRadius()
	}
	if justPressed(ebiten.KeyDigit0) {
		g.model.ResetRadius()
	}
	if justPressed(ebiten.KeyM) {
		g.muted = !g.muted
	}
	if justPressed(ebiten.KeyP) {
		path, err := askScreenshotPath()
		if err != nil {
			g.lastErr = err
		} else {
			g.shotPath = path
		}
	}

	mouseX, mouseY := ebiten.CursorPosition()
	pointer := g.toScene(mouseX, mouseY)
	clicked := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	dt := 1.0 / 60.0 // Assuming 60 TPS
	g.model.Update(dt, pointer, clicked)

	if g.model.Wrapped() && !g.muted {
		if err := g.chime.play(); err != nil {
			g.lastErr = err
		}
	}

	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// toScene converts a screen pixel to scene space (origin at the circle
// center, y up).
func (g *Game) toScene(x, y int) geom.Vec2 {
	return geom.V2(float64(x)-g.originX, g.originY-float64(y))
}

// sx and sy convert scene coordinates to screen space for drawing, clamped
// so sentinel-sized values never overflow float32.
func (g *Game) sx(x float64) float32 {
	return float32(clampCoord(g.originX + x))
}

func (g *Game) sy(y float64) float32 {
	return float32(clampCoord(g.originY - y))
}

// clampCoord bounds a screen coordinate to a range far outside the window
// but safely inside float32.
func clampCoord(v float64) float64 {
	const limit = 1e5
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
