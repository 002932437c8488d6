package ground

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/world"
)

type fixedTarget struct {
	pos mgl64.Vec3
}

func (f *fixedTarget) Position() mgl64.Vec3 { return f.pos }

func newTestSpawner() (*Spawner, *fixedTarget, *world.Scene) {
	scene := world.NewScene()
	target := &fixedTarget{}
	s := New(config.DefaultRunnerConfig().Ground, target, scene, scene.NewNode("Ground", nil))
	return s, target, scene
}

func TestStartLaysOutSegmentsAhead(t *testing.T) {
	s, _, scene := newTestSpawner()
	s.Start()

	if s.NextIndex() != 5 {
		t.Fatalf("NextIndex() = %d, expected 5", s.NextIndex())
	}
	wantZ := []float64{0, 20, 40, 60, 80}
	tiles := s.Tiles()
	if len(tiles) != len(wantZ) {
		t.Fatalf("spawned %d tiles, expected %d", len(tiles), len(wantZ))
	}
	for i, tile := range tiles {
		if tile.Index != i || tile.Z != wantZ[i] {
			t.Errorf("tile %d = index %d z %v, expected z %v", i, tile.Index, tile.Z, wantZ[i])
		}
		pos := tile.Instance.Position
		if pos.X() != -0.33 || pos.Y() != -0.5 {
			t.Errorf("tile %d offset = (%v, %v), expected (-0.33, -0.5)", i, pos.X(), pos.Y())
		}
		if tile.Instance.Parent.Name != "Ground" {
			t.Errorf("tile %d parented under %q", i, tile.Instance.Parent.Name)
		}
	}
	if scene.Len() != 5 {
		t.Errorf("scene has %d instances, expected 5", scene.Len())
	}
}

func TestTickSpawnsPastThreshold(t *testing.T) {
	s, target, _ := newTestSpawner()
	s.Start()

	tests := []struct {
		z         float64
		wantNext  int
		wantTiles int
	}{
		{0, 5, 5},
		{20, 5, 5}, // threshold is strict
		{20.01, 6, 6},
		{20.5, 6, 6},
		{40.01, 7, 7},
	}

	for _, tc := range tests {
		target.pos = mgl64.Vec3{0, 0, tc.z}
		s.Tick(core.RunActive)
		if s.NextIndex() != tc.wantNext || len(s.Tiles()) != tc.wantTiles {
			t.Errorf("z=%v: next=%d tiles=%d, expected %d/%d", tc.z, s.NextIndex(), len(s.Tiles()), tc.wantNext, tc.wantTiles)
		}
	}

	tiles := s.Tiles()
	if tiles[5].Z != 100 || tiles[6].Z != 120 {
		t.Errorf("new tiles at z %v, %v; expected 100, 120", tiles[5].Z, tiles[6].Z)
	}
}

func TestTickSpawnsAtMostOnePerTick(t *testing.T) {
	s, target, _ := newTestSpawner()
	s.Start()

	target.pos = mgl64.Vec3{0, 0, 95}
	s.Tick(core.RunActive)
	if s.NextIndex() != 6 {
		t.Fatalf("NextIndex() = %d after one tick, expected 6", s.NextIndex())
	}

	for i := 0; i < 10; i++ {
		s.Tick(core.RunActive)
	}
	// Catches up one tile per tick until the window covers z=95
	if s.NextIndex() != 9 {
		t.Errorf("NextIndex() = %d after catching up, expected 9", s.NextIndex())
	}
}

func TestTickAfterRunEnded(t *testing.T) {
	s, target, _ := newTestSpawner()
	s.Start()

	target.pos = mgl64.Vec3{0, 0, 50}
	s.Tick(core.RunEnded)
	if s.NextIndex() != 5 {
		t.Errorf("ended run spawned tiles: next = %d", s.NextIndex())
	}
}

func TestInertWithoutCollaborators(t *testing.T) {
	scene := world.NewScene()
	cfg := config.DefaultRunnerConfig().Ground

	tests := []struct {
		name string
		s    *Spawner
	}{
		{"no target", New(cfg, nil, scene, nil)},
		{"no scene", New(cfg, &fixedTarget{}, nil, nil)},
		{"no prefab", New(config.GroundConfig{TileLength: 20, SegmentsAhead: 5}, &fixedTarget{}, scene, nil)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.s.Start()
			tc.s.Tick(core.RunActive)
			if tc.s.NextIndex() != 0 || len(tc.s.Tiles()) != 0 {
				t.Errorf("inert spawner produced %d tiles", len(tc.s.Tiles()))
			}
		})
	}
	if scene.Len() != 0 {
		t.Errorf("scene has %d instances, expected 0", scene.Len())
	}
}
