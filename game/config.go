package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"portalfx/page"
)

// Config holds the window and engine configuration
type Config struct {
	// ScreenWidth is the initial window width in logical pixels
	ScreenWidth int `yaml:"screenWidth"`

	// ScreenHeight is the initial window height in logical pixels
	ScreenHeight int `yaml:"screenHeight"`

	// WindowTitle is shown in the title bar
	WindowTitle string `yaml:"windowTitle"`

	// Title is the large headline drawn between the two kickers
	Title string `yaml:"title"`

	// DotCount is the size of every ambient dot population
	DotCount int `yaml:"dotCount"`

	// Surfaces are the named render targets, as fractions of the window
	Surfaces []page.Surface `yaml:"surfaces"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1024,
		ScreenHeight: 768,
		WindowTitle:  "Portal",
		Title:        "PORTAL",
		DotCount:     defaultDots,
		Surfaces: []page.Surface{
			{Name: "hero", X: 0, Y: 0, W: 1, H: 0.62},
			{Name: "join", X: 0, Y: 0.62, W: 1, H: 0.38},
		},
	}
}

// layoutEpsilon absorbs float error in fractions that sum to one
const layoutEpsilon = 1e-9

// LoadConfig reads a YAML file on top of DefaultConfig
func LoadConfig(filePath string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Validate checks the configuration for values the engine cannot use
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.DotCount < 0 {
		return fmt.Errorf("dotCount must be >= 0, got %d", c.DotCount)
	}

	seen := make(map[string]bool, len(c.Surfaces))
	for _, s := range c.Surfaces {
		if s.Name == "" {
			return fmt.Errorf("surface name cannot be empty")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate surface %q", s.Name)
		}
		seen[s.Name] = true

		if s.X < 0 || s.Y < 0 || s.X > 1 || s.Y > 1 {
			return fmt.Errorf("surface %q origin must be within [0,1], got (%v,%v)", s.Name, s.X, s.Y)
		}
		if s.W <= 0 || s.H <= 0 || s.X+s.W > 1+layoutEpsilon || s.Y+s.H > 1+layoutEpsilon {
			return fmt.Errorf("surface %q size must be positive and inside the window, got %vx%v", s.Name, s.W, s.H)
		}
	}

	return nil
}
