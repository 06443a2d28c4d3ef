// Package config provides YAML-based configuration loading for tile2048 and
// turns it into the immutable Theme the game loop draws with.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/grid"
)

// Config mirrors the YAML file.
type Config struct {
	Window      WindowConfig `yaml:"window"`
	Grid        GridConfig   `yaml:"grid"`
	FontSize    int          `yaml:"font_size"`
	FadeSeconds float64      `yaml:"fade_seconds"`
	Colors      ColorConfig  `yaml:"colors"`
}

// WindowConfig defines the window (or virtual canvas) geometry.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// GridConfig defines the on-screen grid size. The number of cells is fixed.
type GridConfig struct {
	SizePx int `yaml:"size_px"`
}

// ColorConfig holds "#rrggbb" strings.
type ColorConfig struct {
	Background     string   `yaml:"background"`
	GridBackground string   `yaml:"grid_background"`
	Text           string   `yaml:"text"`
	Tiles          []string `yaml:"tiles"`
}

// Theme is the validated, parsed form of Config. It is built once at startup
// and never changes afterwards.
type Theme struct {
	Title    string
	Width    int
	Height   int
	FPS      int
	GridSize int // grid side in pixels
	TileSize int // GridSize / grid.Size
	FontSize int
	Fade     time.Duration

	Background     core.Color
	GridBackground core.Color
	Text           core.Color

	tiles []core.Color
}

// TileColor returns the fill colour for a tile of the given rank.
// Ranks past the end of the palette wrap around.
func (t Theme) TileColor(rank int) core.Color {
	if rank <= 0 {
		return t.GridBackground
	}
	return t.tiles[(rank-1)%len(t.tiles)]
}

// Theme validates the configuration and builds a Theme from it.
func (c Config) Theme() (Theme, error) {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.Window.FPS))
	}
	if c.Grid.SizePx < grid.Size {
		errs = append(errs, fmt.Errorf("grid size_px %d must be at least %d", c.Grid.SizePx, grid.Size))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font_size %d must be positive", c.FontSize))
	}
	if c.FadeSeconds <= 0 {
		errs = append(errs, fmt.Errorf("fade_seconds %v must be positive", c.FadeSeconds))
	}
	if len(c.Colors.Tiles) == 0 {
		errs = append(errs, errors.New("colors.tiles must list at least one colour"))
	}

	parse := func(field, s string) core.Color {
		col, err := core.ParseHex(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", field, err))
		}
		return col
	}

	t := Theme{
		Title:          c.Window.Title,
		Width:          c.Window.Width,
		Height:         c.Window.Height,
		FPS:            c.Window.FPS,
		GridSize:       c.Grid.SizePx,
		TileSize:       c.Grid.SizePx / grid.Size,
		FontSize:       c.FontSize,
		Fade:           time.Duration(c.FadeSeconds * float64(time.Second)),
		Background:     parse("background", c.Colors.Background),
		GridBackground: parse("grid_background", c.Colors.GridBackground),
		Text:           parse("text", c.Colors.Text),
		tiles:          make([]core.Color, len(c.Colors.Tiles)),
	}
	for i, s := range c.Colors.Tiles {
		t.tiles[i] = parse(fmt.Sprintf("tiles[%d]", i), s)
	}

	if err := errors.Join(errs...); err != nil {
		return Theme{}, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return t, nil
}
