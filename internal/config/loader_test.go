package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML RunnerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	want := DefaultRunnerConfig()
	if fromYAML.Player != want.Player {
		t.Errorf("player config differs:\n yaml=%+v\n code=%+v", fromYAML.Player, want.Player)
	}
	if fromYAML.Ground.TileLength != want.Ground.TileLength || fromYAML.Ground.SegmentsAhead != want.Ground.SegmentsAhead {
		t.Errorf("ground config differs: yaml=%+v code=%+v", fromYAML.Ground, want.Ground)
	}
	if *fromYAML.Ground.Prefab != *want.Ground.Prefab {
		t.Errorf("ground prefab differs: yaml=%+v code=%+v", *fromYAML.Ground.Prefab, *want.Ground.Prefab)
	}
	if *fromYAML.Obstacles.BarSlide != *want.Obstacles.BarSlide {
		t.Errorf("bar_slide prefab differs: yaml=%+v code=%+v", *fromYAML.Obstacles.BarSlide, *want.Obstacles.BarSlide)
	}
	if fromYAML.HUD.Format != want.HUD.Format {
		t.Errorf("hud format = %q, expected %q", fromYAML.HUD.Format, want.HUD.Format)
	}
}

func TestLoadRunnerCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("player:\n  run_speed: 12\n  lanes:\n    count: 5\nobstacles:\n  hurdle_jump: null\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}

	if cfg.Player.RunSpeed != 12 {
		t.Errorf("run_speed = %v, expected 12", cfg.Player.RunSpeed)
	}
	if cfg.Player.Lanes.Count != 5 {
		t.Errorf("lanes.count = %d, expected 5", cfg.Player.Lanes.Count)
	}
	// Untouched keys keep defaults
	if cfg.Player.Gravity != -30 {
		t.Errorf("gravity = %v, expected default -30", cfg.Player.Gravity)
	}
	if cfg.Obstacles.HurdleJump != nil {
		t.Error("explicit null should unset the hurdle prefab")
	}
	if cfg.Obstacles.BlockerLane == nil {
		t.Error("blocker prefab should keep its default")
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRunnerMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunnerConfig)
		wantErr string
	}{
		{"defaults", func(*RunnerConfig) {}, ""},
		{"zero lanes is clamped, not rejected", func(c *RunnerConfig) { c.Player.Lanes.Count = 0 }, ""},
		{"positive gravity", func(c *RunnerConfig) { c.Player.Gravity = 9.8 }, "gravity"},
		{"zero tile length", func(c *RunnerConfig) { c.Ground.TileLength = 0 }, "tile_length"},
		{"no segments", func(c *RunnerConfig) { c.Ground.SegmentsAhead = 0 }, "segments_ahead"},
		{"zero spawn interval", func(c *RunnerConfig) { c.Obstacles.SpawnInterval = 0 }, "spawn_interval"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyLaneCount(t *testing.T) {
	cfg := DefaultRunnerConfig()
	original := cfg.Ground.Prefab

	ApplyLaneCount(&cfg, 5)

	if cfg.Player.Lanes.Count != 5 || cfg.Obstacles.LaneCount != 5 {
		t.Errorf("lane counts = %d/%d, expected 5/5", cfg.Player.Lanes.Count, cfg.Obstacles.LaneCount)
	}
	if cfg.Ground.Prefab.Width != 13 {
		t.Errorf("ground width = %v, expected 13", cfg.Ground.Prefab.Width)
	}
	if original.Width != 8 {
		t.Error("ApplyLaneCount must not mutate the shared prefab")
	}

	ApplyLaneCount(&cfg, 0)
	if cfg.Player.Lanes.Count != 5 {
		t.Error("non-positive count should be ignored")
	}
}

func TestDefaultYAMLHasComment(t *testing.T) {
	if !bytes.HasPrefix(DefaultYAML(), []byte("#")) {
		t.Error("embedded defaults should start with a usage comment")
	}
}
