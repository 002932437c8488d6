package obstacle

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/world"
)

// Archetype is the kind of obstacle placed in a blocked lane.
type Archetype int

const (
	BlockerLane Archetype = iota // Full-height wall: change lanes
	HurdleJump                   // Low hurdle: jump over
	BarSlide                     // Raised bar: slide under
)

// Archetypes lists every archetype in catalog order.
var Archetypes = []Archetype{BlockerLane, HurdleJump, BarSlide}

// String returns the config name of the archetype.
func (a Archetype) String() string {
	switch a {
	case BlockerLane:
		return "blocker_lane"
	case HurdleJump:
		return "hurdle_jump"
	case BarSlide:
		return "bar_slide"
	default:
		return "unknown"
	}
}

// Catalog maps archetypes to their templates. A nil template means the
// archetype is not configured.
type Catalog map[Archetype]*world.Prefab

// CatalogFromConfig builds the catalog from the obstacle prefabs.
func CatalogFromConfig(cfg config.ObstacleConfig) Catalog {
	return Catalog{
		BlockerLane: world.PrefabFromConfig(cfg.BlockerLane, cfg.Tag),
		HurdleJump:  world.PrefabFromConfig(cfg.HurdleJump, cfg.Tag),
		BarSlide:    world.PrefabFromConfig(cfg.BarSlide, cfg.Tag),
	}
}

// Choose picks a uniformly random archetype up to len(Archetypes) times and
// returns the first configured template. It returns nil when every pick
// lands on an unconfigured archetype, so sparse catalogs leave lanes empty.
func (c Catalog) Choose(rng *rand.Rand) (Archetype, *world.Prefab) {
	for range Archetypes {
		a := Archetypes[rng.Intn(len(Archetypes))]
		if p := c[a]; p != nil {
			return a, p
		}
	}
	return 0, nil
}

// Configured returns how many archetypes have a template.
func (c Catalog) Configured() int {
	n := 0
	for _, a := range Archetypes {
		if c[a] != nil {
			n++
		}
	}
	return n
}
