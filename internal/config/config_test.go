package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults differ from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() invalid: %v", err)
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viper.yaml")
	data := "tick:\n  base_delay_ms: 60\nfood:\n  glyph: \"*\"\nkeys:\n  pause: [space]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Tick.BaseDelay() != 60*time.Millisecond {
		t.Errorf("Expected base delay 60ms, got %v", cfg.Tick.BaseDelay())
	}
	if Glyph(cfg.Food.Glyph) != '*' {
		t.Errorf("Expected food glyph '*', got %q", cfg.Food.Glyph)
	}
	if !reflect.DeepEqual(cfg.Keys.Pause, []string{"space"}) {
		t.Errorf("Expected pause keys [space], got %v", cfg.Keys.Pause)
	}
	// Untouched sections keep their defaults.
	if cfg.Tick.TurnSpeed != 4 || cfg.Food.Value != 5 {
		t.Errorf("Expected defaults for unset keys, got turn_speed=%d value=%d", cfg.Tick.TurnSpeed, cfg.Food.Value)
	}
	if !reflect.DeepEqual(cfg.Keys.Up, DefaultKeys().Up) {
		t.Errorf("Expected default up keys, got %v", cfg.Keys.Up)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"glyph":       "texture:\n  head: \"@@\"\n",
		"delay":       "tick:\n  base_delay_ms: 0\n",
		"turnSpeed":   "tick:\n  turn_speed: 0\n",
		"syntax":      "tick: [unclosed\n",
		"progression": "difficulty:\n  progression:\n    type: time\n",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "viper.yaml")
			if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected Load() to fail")
			}
		})
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.DefaultName = "ada"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "default_name: ada") {
		t.Errorf("Expected yaml keys in output, got:\n%s", data)
	}

	back, err := parse(data)
	if err != nil {
		t.Fatalf("parse() failed: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Error("config changed after marshal and parse")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("Expected error for unknown preset")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("Expected hard preset level 0.7, got %v", cfg.Difficulty.InitialLevel)
	}
	if cfg.Tick.BaseDelayMs >= DefaultConfig().Tick.BaseDelayMs {
		t.Error("hard preset should shorten the base delay")
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("empty preset should not change the config")
	}
}
