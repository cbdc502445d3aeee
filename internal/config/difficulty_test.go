package config

import (
	"testing"
	"time"
)

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.Level(0); got != 0 {
		t.Errorf("Expected level 0 at score 0, got %v", got)
	}
	if got := d.Level(50); got != 0.5 {
		t.Errorf("Expected level 0.5 at score 50, got %v", got)
	}
	if got := d.Level(1000); got != 1 {
		t.Errorf("Expected level clamped to 1, got %v", got)
	}
}

func TestDifficultyDelay(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})
	base := 100 * time.Millisecond

	if got := d.Delay(base, 0); got != base {
		t.Errorf("Expected %v at level 0, got %v", base, got)
	}
	if got := d.Delay(base, 100); got != 50*time.Millisecond {
		t.Errorf("Expected 50ms at max level, got %v", got)
	}
}

func TestDifficultyFixed(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg.Difficulty)

	if d.IsEnabled() {
		t.Error("fixed difficulty should be disabled")
	}
	base := cfg.Tick.BaseDelay()
	if got := d.Delay(base, 10000); got != base {
		t.Errorf("Expected constant delay %v, got %v", base, got)
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if got := d.Level(0); got != 0.5 {
		t.Errorf("Expected initial level 0.5, got %v", got)
	}
	if got := d.Level(10); got != 1 {
		t.Errorf("Expected level 1 at max_at, got %v", got)
	}
}

func TestDifficultyUnknownProgressionStaysAtInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
	})

	if got := d.Level(1000); got != 0.3 {
		t.Errorf("Expected level 0.3 for an unknown progression, got %v", got)
	}
}
