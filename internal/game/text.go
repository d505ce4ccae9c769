package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/jamiegibney/trig-visuals/internal/config"
)

// faces bundles the two text faces the diagram uses: regular for the
// geometry labels, italic for the value panel.
type faces struct {
	label text.Face
	value text.Face
}

func loadFaces() (*faces, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading regular font: %w", err)
	}
	italic, err := text.NewGoTextFaceSource(bytes.NewReader(goitalic.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading italic font: %w", err)
	}

	return &faces{
		label: &text.GoTextFace{Source: regular, Size: config.LabelFontSize},
		value: &text.GoTextFace{Source: italic, Size: config.ValueFontSize},
	}, nil
}

// drawTextCentered draws s centered on (x, y) with the given color and
// opacity in [0, 1].
func drawTextCentered(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, opacity float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(clamp01(opacity)))
	text.Draw(dst, s, face, op)
}

// drawTextLeft draws s left-aligned at x, vertically centered on y.
func drawTextLeft(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, opacity float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(clamp01(opacity)))
	text.Draw(dst, s, face, op)
}
