package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Player: PlayerConfig{
			RunSpeed:           8,
			Gravity:            -30,
			JumpHeight:         1.8,
			StickToGroundForce: -3,
			Tag:                "Player",
			DebugLogs:          true,
			Lanes: LaneConfig{
				Count:       3,
				Width:       2.5,
				ChangeSpeed: 14,
			},
			Slide: SlideConfig{
				Duration: 0.7,
				Height:   0.375,
				Radius:   0.3,
				Cooldown: 0.1,
			},
			Capsule: CapsuleConfig{
				Height: 2,
				Radius: 0.5,
			},
			Swipe: SwipeConfig{
				Threshold: 60,
				MaxTime:   0.6,
			},
			Animation: AnimationConfig{
				JumpTrigger:  "Jump",
				SlideTrigger: "Slide",
				LaneTrigger:  "Lane",
				GroundedBool: "Grounded",
				SlidingBool:  "Sliding",
			},
		},
		Ground: GroundConfig{
			TileLength:    20,
			SegmentsAhead: 5,
			OffsetX:       -0.33,
			OffsetY:       -0.5,
			Prefab: &PrefabConfig{
				Name:      "Ground",
				Width:     8,
				Height:    1,
				Depth:     20,
				Elevation: -0.5,
				Pivot:     "front",
			},
		},
		Obstacles: ObstacleConfig{
			SpawnZOffset:  30,
			SpawnInterval: 1.2,
			LaneCount:     3,
			LaneWidth:     2.5,
			Tag:           "Obstacle",
			BlockerLane: &PrefabConfig{
				Name:   "BlockerLane",
				Width:  2,
				Height: 2.5,
				Depth:  1,
			},
			HurdleJump: &PrefabConfig{
				Name:   "HurdleJump",
				Width:  2,
				Height: 0.8,
				Depth:  0.5,
			},
			BarSlide: &PrefabConfig{
				Name:      "BarSlide",
				Width:     2,
				Height:    1.5,
				Depth:     0.5,
				Elevation: 1.0,
			},
		},
		EndRun: EndRunConfig{
			PlayerTag:      "Player",
			ReadoutOffsetX: 0,
			ReadoutOffsetY: -80,
		},
		HUD: HUDConfig{
			Format: "Distance: %.1f m",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
