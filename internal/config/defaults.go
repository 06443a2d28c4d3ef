package config

import (
	_ "embed"
)

//go:embed defaults/tile2048.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration: a 600x600 window with a
// centred 400 px grid, 32 px text and the eleven-colour tile palette.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  600,
			Height: 600,
			Title:  "2048",
			FPS:    60,
		},
		Grid: GridConfig{
			SizePx: 400,
		},
		FontSize:    32,
		FadeSeconds: 1.0,
		Colors: ColorConfig{
			Background:     "#2c2f33",
			GridBackground: "#3a3d42",
			Text:           "#ffffff",
			Tiles: []string{
				"#f4d35e", "#f28c28", "#e94e1b", "#d72638",
				"#a01a7d", "#6a0572", "#5c3d99", "#197278",
				"#0d8050", "#556b2f", "#B8860B",
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
