package game

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// askScreenshotPath opens a native save dialog. An empty path with a nil
// error means the user canceled.
func askScreenshotPath() (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename("unit-circle.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	if filepath.Ext(path) == "" {
		path += ".png"
	}
	return path, nil
}

// saveScreenshot encodes the rendered frame to path. Called at the end of
// Draw so the file holds a complete frame.
func saveScreenshot(screen *ebiten.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, screen); err != nil {
		return fmt.Errorf("encoding screenshot: %w", err)
	}
	return nil
}
