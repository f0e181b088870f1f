package game

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portal.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if config.DotCount != 160 {
		t.Errorf("DotCount = %d, want 160", config.DotCount)
	}
	if len(config.Surfaces) != 2 || config.Surfaces[0].Name != HeroSurface || config.Surfaces[1].Name != JoinSurface {
		t.Errorf("Surfaces = %+v", config.Surfaces)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
screenWidth: 1280
dotCount: 90
title: GATEWAY
surfaces:
  - name: hero
    x: 0
    y: 0
    w: 1
    h: 1
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.ScreenWidth != 1280 || config.ScreenHeight != 768 {
		t.Errorf("screen = %dx%d, want 1280x768", config.ScreenWidth, config.ScreenHeight)
	}
	if config.DotCount != 90 || config.Title != "GATEWAY" {
		t.Errorf("DotCount = %d, Title = %q", config.DotCount, config.Title)
	}
	if len(config.Surfaces) != 1 || config.Surfaces[0].Name != HeroSurface || config.Surfaces[0].H != 1 {
		t.Errorf("Surfaces = %+v", config.Surfaces)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "screenWidth: [1"},
		{"zero width", "screenWidth: 0"},
		{"negative dots", "dotCount: -1"},
		{"unnamed surface", "surfaces: [{x: 0, y: 0, w: 1, h: 1}]"},
		{"duplicate surface", "surfaces: [{name: a, w: 1, h: 0.5}, {name: a, y: 0.5, w: 1, h: 0.5}]"},
		{"surface outside window", "surfaces: [{name: a, x: 0.5, w: 0.8, h: 1}]"},
		{"empty surface", "surfaces: [{name: a, w: 0, h: 1}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatalf("LoadConfig() accepted %q", tt.content)
			}
			if config.Validate() != nil {
				t.Error("LoadConfig() error result is not a usable default config")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() of a missing file returned no error")
	}
}
