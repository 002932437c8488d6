// Package runner assembles the lane runner level: ground, obstacles, the
// player, the end-of-run handler and the distance readout, all wired by hand
// over a host scene.
package runner

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/endrun"
	"github.com/vovakirdan/lane-runner/internal/ground"
	"github.com/vovakirdan/lane-runner/internal/hud"
	"github.com/vovakirdan/lane-runner/internal/obstacle"
	"github.com/vovakirdan/lane-runner/internal/player"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/world"
)

var (
	configPath    string
	laneOverride  int
	packageLogger = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLaneCount overrides the lane count of every level. Zero keeps the
// level's own count.
func SetLaneCount(n int) {
	laneOverride = n
}

// SetLogger sets the logger handed to every component.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	packageLogger = l
}

// Game implements registry.Game for the lane runner.
type Game struct {
	id    string
	title string
	lanes int // 0 = use config

	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	logger  *log.Logger

	scene    *world.Scene
	ctrl     *world.CharacterController
	anim     *world.AnimatorRecorder
	ui       *world.Surface
	triggers *world.TriggerTracker
	kinds    map[*world.Prefab]obstacle.Archetype

	player    *player.Movement
	ground    *ground.Spawner
	obstacles *obstacle.Spawner
	endRun    *endrun.Handler
	hud       *hud.Distance

	clock  float64 // Game clock in simulated seconds
	ticks  int
	paused bool
}

// New creates the default three-lane level.
func New() *Game {
	return &Game{id: "runner", title: "Lane Runner"}
}

// NewWithLanes creates a level variant with a fixed lane count.
func NewWithLanes(id, title string, lanes int) *Game {
	return &Game{id: id, title: title, lanes: lanes}
}

// ID returns the unique identifier for this level.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this level.
func (g *Game) Title() string {
	return g.title
}

// Reset builds a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = packageLogger.WithPrefix(g.id)
	g.cfg = g.loadConfig()

	g.clock = 0
	g.ticks = 0
	g.paused = false

	g.build()
}

func (g *Game) loadConfig() config.RunnerConfig {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultRunnerConfig()
	}

	lanes := g.lanes
	if laneOverride > 0 {
		lanes = laneOverride
	}
	config.ApplyLaneCount(&cfg, lanes)

	if err := cfg.Validate(); err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultRunnerConfig()
		config.ApplyLaneCount(&cfg, lanes)
	}
	return cfg
}

// build wires every component of the level. The ground is laid before the
// controller settles so the player starts grounded.
func (g *Game) build() {
	rng := rand.New(rand.NewSource(g.runtime.Seed))

	g.scene = world.NewScene()
	groundNode := g.scene.NewNode("Ground", nil)
	obstacleNode := g.scene.NewNode("Obstacles", nil)

	g.ctrl = world.NewCharacterController(g.scene, ground.Tag, mgl64.Vec3{},
		player.StandingCapsule(g.cfg.Player.Capsule.Height, g.cfg.Player.Capsule.Radius))
	g.anim = world.NewAnimatorRecorder()
	g.ui = world.NewSurface()
	g.triggers = world.NewTriggerTracker()

	g.ground = ground.New(g.cfg.Ground, g.ctrl, g.scene, groundNode)
	g.ground.Start()
	g.ctrl.Snap()

	g.player = player.New(g.cfg.Player, g.ctrl, g.anim, g.logger)

	catalog := obstacle.CatalogFromConfig(g.cfg.Obstacles)
	g.kinds = make(map[*world.Prefab]obstacle.Archetype, len(catalog))
	for arch, prefab := range catalog {
		if prefab != nil {
			g.kinds[prefab] = arch
		}
	}
	g.obstacles = obstacle.New(g.cfg.Obstacles, g.player, g.ctrl, g.scene, obstacleNode, catalog, rng, g.logger)
	g.obstacles.Start(g.clock)

	g.endRun = endrun.New(g.cfg.EndRun, g.ui.GameOver, g.ui.Distance, g.logger)
	g.hud = hud.New(g.ctrl, g.ui.Distance, g.cfg.HUD.Format)
	g.hud.Tick()
}

// Step advances the run by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	run := g.endRun.State()
	if run.Ended() {
		return core.StepResult{State: g.State(), Ticks: g.ticks}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Ticks: g.ticks}
	}

	dt := g.runtime.DeltaTime()
	g.ticks++
	g.clock += dt

	g.player.Tick(dt, in, run)
	g.ground.Tick(run)
	g.obstacles.Tick(g.clock, run)
	g.resolveContacts()
	g.hud.Tick()

	return core.StepResult{State: g.State(), Ticks: g.ticks}
}

// resolveContacts reports every obstacle the player started touching this tick.
func (g *Game) resolveContacts() {
	hits := world.Overlaps(g.ctrl, g.scene, g.cfg.Obstacles.Tag)
	for _, inst := range g.triggers.Update(hits) {
		g.endRun.HandleContact(endrun.Contact{
			OtherTag:     g.cfg.Player.Tag,
			ObstacleName: inst.Name(),
			Kind:         endrun.KindTrigger,
		})
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{Paused: g.paused}
	if g.hud != nil {
		s.Distance = g.hud.Meters()
	}
	if g.endRun != nil {
		s.GameOver = g.endRun.State().Ended()
	}
	return s
}

// Cause returns the name of the obstacle that ended the run, or "".
func (g *Game) Cause() string {
	if g.endRun == nil {
		return ""
	}
	c, ok := g.endRun.Cause()
	if !ok {
		return ""
	}
	return c.ObstacleName
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// Player returns the player movement of the current run.
func (g *Game) Player() *player.Movement {
	return g.player
}

// Clock returns the game clock in simulated seconds.
func (g *Game) Clock() float64 {
	return g.clock
}

func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
	registry.Register("runner_wide", func() registry.Game {
		return NewWithLanes("runner_wide", "Lane Runner (5 lanes)", 5)
	})
}
