// Package obstacle spawns rows of lane obstacles ahead of the player.
//
// Every row leaves exactly one safe lane open, picked uniformly at random.
// Each other lane gets an independently chosen archetype from the catalog.
package obstacle

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/ground"
	"github.com/vovakirdan/lane-runner/internal/lane"
	"github.com/vovakirdan/lane-runner/internal/world"
)

// GeometrySource supplies the lane layout the player actually moves on.
type GeometrySource interface {
	Geometry() lane.Geometry
}

// Placement is one obstacle of a row.
type Placement struct {
	Slot      int
	Archetype Archetype
	Instance  *world.Instance
}

// Row is the result of one spawn.
type Row struct {
	Z          float64
	SafeSlot   int
	Placements []Placement
}

// Blocked reports whether the row placed an obstacle in the slot.
func (r Row) Blocked(slot int) bool {
	for _, p := range r.Placements {
		if p.Slot == slot {
			return true
		}
	}
	return false
}

// Spawner emits obstacle rows on a fixed game-clock cadence.
type Spawner struct {
	cfg      config.ObstacleConfig
	geometry lane.Geometry
	target   ground.Tracker
	scene    ground.Instantiator
	parent   *world.Node
	catalog  Catalog
	rng      *rand.Rand
	logger   *log.Logger

	nextSpawnTime float64
	rows          int
}

// New creates a spawner. Lane layout comes from geo when present, otherwise
// from the config fallback. A nil rng is replaced by one seeded with 0.
func New(cfg config.ObstacleConfig, geo GeometrySource, target ground.Tracker, scene ground.Instantiator, parent *world.Node, catalog Catalog, rng *rand.Rand, logger *log.Logger) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	geometry := lane.New(cfg.LaneCount, cfg.LaneWidth)
	if geo != nil {
		geometry = geo.Geometry()
	}

	return &Spawner{
		cfg:      cfg,
		geometry: geometry,
		target:   target,
		scene:    scene,
		parent:   parent,
		catalog:  catalog,
		rng:      rng,
		logger:   logger,
	}
}

// Start schedules the first row one interval after now.
func (s *Spawner) Start(now float64) {
	s.nextSpawnTime = now + s.cfg.SpawnInterval
}

// Tick spawns a row when the game clock reaches the scheduled time.
func (s *Spawner) Tick(now float64, run core.RunState) {
	if run.Ended() || s.target == nil {
		return
	}
	if now < s.nextSpawnTime {
		return
	}

	s.SpawnRow(s.target.Position().Z() + s.cfg.SpawnZOffset)
	s.nextSpawnTime = now + s.cfg.SpawnInterval
}

// SpawnRow places one row at z. The safe slot is always chosen, even when
// nothing can be instantiated.
func (s *Spawner) SpawnRow(z float64) Row {
	count := s.geometry.Count()
	row := Row{Z: z, SafeSlot: s.rng.Intn(count)}

	for slot := 0; slot < count; slot++ {
		if slot == row.SafeSlot {
			continue
		}
		arch, prefab := s.catalog.Choose(s.rng)
		if prefab == nil || s.scene == nil {
			continue
		}

		pos := mgl64.Vec3{s.geometry.SlotOffset(slot), 0, z}
		inst := s.scene.Instantiate(prefab, pos, mgl64.QuatIdent(), s.parent)
		if inst == nil {
			continue
		}
		row.Placements = append(row.Placements, Placement{Slot: slot, Archetype: arch, Instance: inst})
	}

	s.rows++
	s.logger.Debug("obstacle row", "z", z, "safe", row.SafeSlot, "placed", len(row.Placements))
	return row
}

// NextSpawnTime returns the game-clock time of the next row.
func (s *Spawner) NextSpawnTime() float64 {
	return s.nextSpawnTime
}

// Rows returns how many rows have been spawned.
func (s *Spawner) Rows() int {
	return s.rows
}

// Geometry returns the lane layout rows are placed on.
func (s *Spawner) Geometry() lane.Geometry {
	return s.geometry
}
