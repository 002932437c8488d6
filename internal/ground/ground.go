// Package ground keeps a fixed number of ground tiles laid out ahead of the player.
package ground

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/world"
)

// Tag marks ground tile instances so the controller can stand on them.
const Tag = "Ground"

// Tracker reports the position of the object the ground follows.
type Tracker interface {
	Position() mgl64.Vec3
}

// Instantiator places prefab copies in the scene.
type Instantiator interface {
	Instantiate(p *world.Prefab, pos mgl64.Vec3, rot mgl64.Quat, parent *world.Node) *world.Instance
}

// Tile is one spawned ground segment.
type Tile struct {
	Index    int
	Z        float64
	Instance *world.Instance
}

// Spawner tiles the ground along +Z.
type Spawner struct {
	cfg    config.GroundConfig
	prefab *world.Prefab
	target Tracker
	scene  Instantiator
	parent *world.Node

	nextIndex int
	tiles     []Tile
}

// New creates a spawner. A nil target, scene or prefab leaves it inert.
func New(cfg config.GroundConfig, target Tracker, scene Instantiator, parent *world.Node) *Spawner {
	return &Spawner{
		cfg:    cfg,
		prefab: world.PrefabFromConfig(cfg.Prefab, Tag),
		target: target,
		scene:  scene,
		parent: parent,
	}
}

// Start lays out the initial tiles at 0, tileLength, ... .
func (s *Spawner) Start() {
	if !s.ready() {
		return
	}
	for i := 0; i < s.cfg.SegmentsAhead; i++ {
		s.spawnNext()
	}
}

// Tick spawns one tile once the target has moved a whole tile past the
// window start. At most one tile is spawned per tick.
func (s *Spawner) Tick(run core.RunState) {
	if run.Ended() || !s.ready() {
		return
	}

	if s.target.Position().Z() > s.threshold() {
		s.spawnNext()
	}
}

// NextIndex returns the index the next tile will get.
func (s *Spawner) NextIndex() int {
	return s.nextIndex
}

// Tiles returns the spawned tiles in index order.
func (s *Spawner) Tiles() []Tile {
	return s.tiles
}

func (s *Spawner) threshold() float64 {
	return float64(s.nextIndex-s.cfg.SegmentsAhead+1) * s.cfg.TileLength
}

func (s *Spawner) ready() bool {
	return s.target != nil && s.scene != nil && s.prefab != nil
}

func (s *Spawner) spawnNext() {
	z := float64(s.nextIndex) * s.cfg.TileLength
	pos := mgl64.Vec3{s.cfg.OffsetX, s.cfg.OffsetY, z}
	inst := s.scene.Instantiate(s.prefab, pos, mgl64.QuatIdent(), s.parent)
	s.tiles = append(s.tiles, Tile{Index: s.nextIndex, Z: z, Instance: inst})
	s.nextIndex++
}
