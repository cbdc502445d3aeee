package config

import (
	_ "embed"
)

//go:embed defaults/viper.yaml
var defaultViperYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Tick: TickConfig{
			BaseDelayMs: 100,
			TurnSpeed:   4,
			MenuPollMs:  100,
		},
		Food: FoodConfig{
			Value: 5,
			Glyph: "$",
		},
		Texture: TextureConfig{
			Head: "@",
			Body: "O",
			Tail: "o",
		},
		Menus: MenusConfig{
			Start: MenuSize{Height: 6, Width: 24},
			Pause: MenuSize{Height: 7, Width: 28},
			Name:  MenuSize{Height: 5, Width: 28},
		},
		Player: PlayerConfig{
			DefaultName: "player",
		},
		Keys: DefaultKeys(),
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 250,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultKeys returns the stock key bindings.
func DefaultKeys() KeysConfig {
	return KeysConfig{
		Up:        []string{"up", "w"},
		Down:      []string{"down", "s"},
		Left:      []string{"left", "a"},
		Right:     []string{"right", "d"},
		Confirm:   []string{"enter"},
		Cancel:    []string{"esc"},
		Backspace: []string{"backspace"},
		Pause:     []string{"p"},
		Quit:      []string{"ctrl+c"},

		Screenshot: []string{"ctrl+s"},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultViperYAML
}
