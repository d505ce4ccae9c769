package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadOverlaysFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "rate: 0.5\nmuted: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Rate != 0.5 {
		t.Errorf("Rate = %v, want 0.5", cfg.Rate)
	}
	if !cfg.Muted {
		t.Error("Muted = false, want true")
	}
	// Untouched fields keep their defaults.
	if cfg.Radius != DefaultRadius {
		t.Errorf("Radius = %v, want default %v", cfg.Radius, DefaultRadius)
	}
	if cfg.WindowWidth != WindowWidth {
		t.Errorf("WindowWidth = %v, want default %v", cfg.WindowWidth, WindowWidth)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rate: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
