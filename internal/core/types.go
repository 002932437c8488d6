package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DeltaTime returns the fixed simulation step in seconds.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// Reference pixel size of one terminal cell. Pointer positions and UI
// offsets are expressed in these pixels so gesture thresholds stay portable.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// RunState is the process-wide lifecycle of a single run.
// Every tick function checks it; once Ended, nothing advances.
type RunState int

const (
	RunActive RunState = iota
	RunEnded
)

// String returns a human-readable name for the run state.
func (s RunState) String() string {
	switch s {
	case RunActive:
		return "Active"
	case RunEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Ended reports whether the run has reached its terminal state.
func (s RunState) Ended() bool {
	return s == RunEnded
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Distance float64 // Meters traveled since the run started
	GameOver bool    // Whether the run has ended
	Paused   bool    // Whether the game is paused
}

// Meters returns the traveled distance truncated to whole meters.
func (s GameState) Meters() int {
	if s.Distance < 0 {
		return 0
	}
	return int(s.Distance)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Ticks int // Simulated ticks since the run started
}
