// Package config provides YAML-based configuration loading and difficulty
// management for viper.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Config is the complete viper configuration.
type Config struct {
	Tick       TickConfig       `yaml:"tick"`
	Food       FoodConfig       `yaml:"food"`
	Texture    TextureConfig    `yaml:"texture"`
	Menus      MenusConfig      `yaml:"menus"`
	Player     PlayerConfig     `yaml:"player"`
	Keys       KeysConfig       `yaml:"keys"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TickConfig defines game pacing.
type TickConfig struct {
	BaseDelayMs int `yaml:"base_delay_ms"` // delay per cell at speed 1
	TurnSpeed   int `yaml:"turn_speed"`    // speed factor right after a turn
	MenuPollMs  int `yaml:"menu_poll_ms"`  // menu input poll interval
}

// BaseDelay returns the tick delay at speed 1.
func (t TickConfig) BaseDelay() time.Duration {
	return time.Duration(t.BaseDelayMs) * time.Millisecond
}

// MenuPoll returns the menu poll interval.
func (t TickConfig) MenuPoll() time.Duration {
	return time.Duration(t.MenuPollMs) * time.Millisecond
}

// FoodConfig defines the food item.
type FoodConfig struct {
	Value int    `yaml:"value"`
	Glyph string `yaml:"glyph"`
}

// TextureConfig holds the glyphs used to draw the snake.
type TextureConfig struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Tail string `yaml:"tail"`
}

// MenuSize is a panel height and width in cells.
type MenuSize struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// MenusConfig sizes the built-in menus.
type MenusConfig struct {
	Start MenuSize `yaml:"start"`
	Pause MenuSize `yaml:"pause"`
	Name  MenuSize `yaml:"name"`
}

// PlayerConfig defines player defaults.
type PlayerConfig struct {
	DefaultName string `yaml:"default_name"` // used when the name prompt is left empty
}

// KeysConfig lists the key names bound to each intent, as reported by the
// terminal ("up", "w", "enter", "ctrl+c", ...).
type KeysConfig struct {
	Up        []string `yaml:"up"`
	Down      []string `yaml:"down"`
	Left      []string `yaml:"left"`
	Right     []string `yaml:"right"`
	Confirm   []string `yaml:"confirm"`
	Cancel    []string `yaml:"cancel"`
	Backspace []string `yaml:"backspace"`
	Pause     []string `yaml:"pause"`
	Quit      []string `yaml:"quit"`

	Screenshot []string `yaml:"screenshot"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Tick.BaseDelayMs <= 0 {
		return fmt.Errorf("config: tick.base_delay_ms must be positive, got %d", c.Tick.BaseDelayMs)
	}
	if c.Tick.MenuPollMs <= 0 {
		return fmt.Errorf("config: tick.menu_poll_ms must be positive, got %d", c.Tick.MenuPollMs)
	}
	if c.Tick.TurnSpeed < 1 {
		return fmt.Errorf("config: tick.turn_speed must be at least 1, got %d", c.Tick.TurnSpeed)
	}
	switch c.Difficulty.Progression.Type {
	case "score", "none":
	default:
		return fmt.Errorf("config: difficulty.progression.type must be score or none, got %q", c.Difficulty.Progression.Type)
	}
	if c.Food.Value < 0 {
		return fmt.Errorf("config: food.value must not be negative, got %d", c.Food.Value)
	}
	for name, glyph := range map[string]string{
		"food.glyph":   c.Food.Glyph,
		"texture.head": c.Texture.Head,
		"texture.body": c.Texture.Body,
		"texture.tail": c.Texture.Tail,
	} {
		if utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("config: %s must be a single character, got %q", name, glyph)
		}
	}
	return nil
}

// Glyph returns the single rune of a validated glyph setting.
func Glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
