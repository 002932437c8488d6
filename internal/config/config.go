// Package config provides YAML-based configuration loading for the runner.
// Every tunable the simulation reads is declared here with its yaml key.
package config

// RunnerConfig contains all configuration for one level of the runner.
type RunnerConfig struct {
	Player    PlayerConfig   `yaml:"player"`
	Ground    GroundConfig   `yaml:"ground"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	EndRun    EndRunConfig   `yaml:"end_run"`
	HUD       HUDConfig      `yaml:"hud"`
}

// PlayerConfig defines movement parameters for the player.
type PlayerConfig struct {
	RunSpeed           float64         `yaml:"run_speed"`   // Forward speed along +Z
	Gravity            float64         `yaml:"gravity"`     // Negative acceleration
	JumpHeight         float64         `yaml:"jump_height"` // Apex height of a jump
	StickToGroundForce float64         `yaml:"stick_to_ground_force"`
	Tag                string          `yaml:"tag"`
	DebugLogs          bool            `yaml:"debug_logs"`
	Lanes              LaneConfig      `yaml:"lanes"`
	Slide              SlideConfig     `yaml:"slide"`
	Capsule            CapsuleConfig   `yaml:"capsule"`
	Swipe              SwipeConfig     `yaml:"swipe"`
	Animation          AnimationConfig `yaml:"animation"`
}

// LaneConfig defines the lane layout shared by movement and spawning.
type LaneConfig struct {
	Count       int     `yaml:"count"`        // Prefer odd numbers like 3, 5
	Width       float64 `yaml:"width"`        // Distance between lane centers
	ChangeSpeed float64 `yaml:"change_speed"` // Lateral units per second
}

// SlideConfig defines the slide sub-state.
type SlideConfig struct {
	Duration float64 `yaml:"duration"` // Seconds the slide lasts
	Height   float64 `yaml:"height"`   // Capsule height while sliding
	Radius   float64 `yaml:"radius"`   // Capsule radius while sliding
	Cooldown float64 `yaml:"cooldown"` // Seconds after a slide ends before another may start
}

// CapsuleConfig defines the standing collision capsule.
type CapsuleConfig struct {
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
}

// SwipeConfig defines pointer gesture recognition.
type SwipeConfig struct {
	Threshold float64 `yaml:"threshold"` // Minimum displacement in pixels
	MaxTime   float64 `yaml:"max_time"`  // Maximum press duration in seconds
}

// AnimationConfig names the animator parameters. An empty name disables that signal.
type AnimationConfig struct {
	JumpTrigger  string `yaml:"jump_trigger"`
	SlideTrigger string `yaml:"slide_trigger"`
	LaneTrigger  string `yaml:"lane_trigger"`
	GroundedBool string `yaml:"grounded_bool"`
	SlidingBool  string `yaml:"sliding_bool"`
}

// GroundConfig defines ground tiling.
type GroundConfig struct {
	TileLength    float64       `yaml:"tile_length"`
	SegmentsAhead int           `yaml:"segments_ahead"`
	OffsetX       float64       `yaml:"offset_x"`
	OffsetY       float64       `yaml:"offset_y"`
	Prefab        *PrefabConfig `yaml:"prefab"`
}

// ObstacleConfig defines obstacle row generation.
// Lane count and width are fallbacks used only when no player movement is wired.
type ObstacleConfig struct {
	SpawnZOffset  float64       `yaml:"spawn_z_offset"`
	SpawnInterval float64       `yaml:"spawn_interval"` // Seconds of game clock between rows
	LaneCount     int           `yaml:"lane_count"`
	LaneWidth     float64       `yaml:"lane_width"`
	Tag           string        `yaml:"tag"`
	BlockerLane   *PrefabConfig `yaml:"blocker_lane"`
	HurdleJump    *PrefabConfig `yaml:"hurdle_jump"`
	BarSlide      *PrefabConfig `yaml:"bar_slide"`
}

// PrefabConfig describes a spawnable template as an axis-aligned box.
// Elevation lifts the box bottom above its spawn position. Pivot is "center"
// (default) or "front"; a front pivot makes the box extend forward along +Z.
type PrefabConfig struct {
	Name      string  `yaml:"name"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Depth     float64 `yaml:"depth"`
	Elevation float64 `yaml:"elevation"`
	Pivot     string  `yaml:"pivot,omitempty"`
}

// EndRunConfig defines the game-over reaction.
type EndRunConfig struct {
	PlayerTag      string  `yaml:"player_tag"`
	ReadoutOffsetX float64 `yaml:"readout_offset_x"`
	ReadoutOffsetY float64 `yaml:"readout_offset_y"`
}

// HUDConfig defines the distance readout.
type HUDConfig struct {
	Format string `yaml:"format"` // fmt verb receiving the distance in meters
}
