// Package config loads the board's start-up settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	"PaintBoard/internal/shape"
)

// DefaultPath is read when no -config flag is given.
const DefaultPath = "paintboard.toml"

const (
	RendererVector = "vector"
	RendererRaster = "raster"
)

// Config is the decoded configuration file.
type Config struct {
	Title    string   `toml:"title"`
	Width    int      `toml:"width"`
	Height   int      `toml:"height"`
	Renderer string   `toml:"renderer"`
	Tool     string   `toml:"tool"`
	Dashed   bool     `toml:"dashed"`
	Palette  []string `toml:"palette"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Title:    "Paint Brush",
		Width:    800,
		Height:   600,
		Renderer: RendererVector,
		Tool:     "freehand",
		Palette:  []string{"black", "red", "lime", "blue"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[CONFIG] %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes a TOML document over the defaults and validates it.
func Parse(doc string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(doc, &cfg); err != nil {
		return Default(), fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks every field that the UI will later rely on.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	}
	switch c.Renderer {
	case RendererVector, RendererRaster:
	default:
		return fmt.Errorf("config: unknown renderer %q", c.Renderer)
	}
	if _, err := c.InitialTool(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// InitialTool resolves the tool field.
func (c Config) InitialTool() (shape.Tool, error) {
	return shape.ParseTool(c.Tool)
}

// Colors resolves the palette. Entries are SVG color names or #rrggbb.
func (c Config) Colors() ([]shape.Color, error) {
	if len(c.Palette) == 0 {
		return nil, errors.New("config: palette is empty")
	}
	out := make([]shape.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		col, err := ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("config: palette: %w", err)
		}
		out = append(out, col)
	}
	return out, nil
}

// ParseColor accepts an SVG 1.1 color keyword or a #rrggbb hex triple.
func ParseColor(s string) (shape.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return shape.Color{}, fmt.Errorf("color %q: want #rrggbb", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return shape.Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		return shape.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	}
	named, ok := colornames.Map[s]
	if !ok {
		return shape.Color{}, fmt.Errorf("unknown color %q", s)
	}
	return shape.ColorOf(named), nil
}
