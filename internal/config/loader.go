package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Missing keys in a user file keep their default values
	cfg := DefaultRunnerConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultRunnerConfig()
		}
	}

	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultRunnerConfig()
	}

	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// ApplyLaneCount changes the lane layout of both movement and the obstacle
// fallback, and widens the ground prefab to cover every lane.
func ApplyLaneCount(cfg *RunnerConfig, count int) {
	if count < 1 {
		return
	}
	cfg.Player.Lanes.Count = count
	cfg.Obstacles.LaneCount = count
	if cfg.Ground.Prefab != nil {
		prefab := *cfg.Ground.Prefab
		prefab.Width = float64(count)*cfg.Player.Lanes.Width + 0.5
		cfg.Ground.Prefab = &prefab
	}
}

// Validate reports settings the simulation cannot run with.
// Lane counts below 1 are not errors; the lane geometry clamps them.
func (c RunnerConfig) Validate() error {
	var errs []error

	p := c.Player
	if p.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("player.gravity must be negative, got %v", p.Gravity))
	}
	if p.JumpHeight < 0 {
		errs = append(errs, fmt.Errorf("player.jump_height must not be negative, got %v", p.JumpHeight))
	}
	if p.Lanes.Width <= 0 {
		errs = append(errs, fmt.Errorf("player.lanes.width must be positive, got %v", p.Lanes.Width))
	}
	if p.Lanes.ChangeSpeed < 0 {
		errs = append(errs, fmt.Errorf("player.lanes.change_speed must not be negative, got %v", p.Lanes.ChangeSpeed))
	}
	if p.Slide.Duration < 0 || p.Slide.Cooldown < 0 {
		errs = append(errs, errors.New("player.slide duration and cooldown must not be negative"))
	}
	if p.Capsule.Height <= 0 || p.Capsule.Radius <= 0 {
		errs = append(errs, errors.New("player.capsule height and radius must be positive"))
	}
	if p.Swipe.MaxTime <= 0 {
		errs = append(errs, fmt.Errorf("player.swipe.max_time must be positive, got %v", p.Swipe.MaxTime))
	}

	g := c.Ground
	if g.TileLength <= 0 {
		errs = append(errs, fmt.Errorf("ground.tile_length must be positive, got %v", g.TileLength))
	}
	if g.SegmentsAhead < 1 {
		errs = append(errs, fmt.Errorf("ground.segments_ahead must be at least 1, got %d", g.SegmentsAhead))
	}

	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_interval must be positive, got %v", c.Obstacles.SpawnInterval))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
}
