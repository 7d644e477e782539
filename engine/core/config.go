package core

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config for the engine run.
type Config struct {
	Title      string         `yaml:"title"`
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	VSync      bool           `yaml:"vsync"`
	ClearColor [4]float32     `yaml:"clear_color"` // RGBA
	Renderer   RendererConfig `yaml:"renderer"`
}

// RendererConfig sizes the quad batches and names their shader files
// (relative to assets/shaders).
type RendererConfig struct {
	MaxQuads       int     `yaml:"max_quads"`
	CanvasMaxQuads int     `yaml:"canvas_max_quads"`
	FontSize       float32 `yaml:"font_size"`
	SpriteShader   string  `yaml:"sprite_shader"`
	CanvasShader   string  `yaml:"canvas_shader"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "Go Engine (2D)",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
		Renderer: RendererConfig{
			MaxQuads:       1000,
			CanvasMaxQuads: 1000,
			FontSize:       32,
			SpriteShader:   "sprite.glsl",
			CanvasShader:   "canvas.glsl",
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from the
// file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Renderer.MaxQuads <= 0 {
		errs = append(errs, fmt.Errorf("renderer.max_quads must be positive, got %d", c.Renderer.MaxQuads))
	}
	if c.Renderer.CanvasMaxQuads <= 0 {
		errs = append(errs, fmt.Errorf("renderer.canvas_max_quads must be positive, got %d", c.Renderer.CanvasMaxQuads))
	}
	if c.Renderer.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("renderer.font_size must be positive, got %g", c.Renderer.FontSize))
	}
	return errors.Join(errs...)
}
