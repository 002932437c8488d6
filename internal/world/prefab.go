// Package world provides the host side of the runner: a scene graph that
// instantiates box prefabs, a kinematic capsule controller walking on ground
// tiles, trigger overlap detection, an animator recorder and a small UI surface.
package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Pivot selects where a prefab's origin sits along Z.
type Pivot int

const (
	PivotCenter Pivot = iota // Box is centered on the position
	PivotFront               // Box starts at the position and extends along +Z
)

// ParsePivot converts a config pivot name. Unknown names map to PivotCenter.
func ParsePivot(name string) Pivot {
	if name == "front" {
		return PivotFront
	}
	return PivotCenter
}

// Prefab is a spawnable template: an axis-aligned box with a tag.
type Prefab struct {
	Name      string
	Tag       string
	Size      mgl64.Vec3 // width (X), height (Y), depth (Z)
	Elevation float64    // Offset of the box bottom above the spawn position
	Pivot     Pivot
}

// PrefabFromConfig builds a prefab from its config entry. A nil entry yields nil.
func PrefabFromConfig(pc *config.PrefabConfig, tag string) *Prefab {
	if pc == nil {
		return nil
	}
	return &Prefab{
		Name:      pc.Name,
		Tag:       tag,
		Size:      mgl64.Vec3{pc.Width, pc.Height, pc.Depth},
		Elevation: pc.Elevation,
		Pivot:     ParsePivot(pc.Pivot),
	}
}

// Bounds returns the world box of the prefab placed at pos.
func (p *Prefab) Bounds(pos mgl64.Vec3) AABB {
	halfW := p.Size.X() * 0.5
	bottom := pos.Y() + p.Elevation

	minZ, maxZ := pos.Z()-p.Size.Z()*0.5, pos.Z()+p.Size.Z()*0.5
	if p.Pivot == PivotFront {
		minZ, maxZ = pos.Z(), pos.Z()+p.Size.Z()
	}

	return AABB{
		Min: mgl64.Vec3{pos.X() - halfW, bottom, minZ},
		Max: mgl64.Vec3{pos.X() + halfW, bottom + p.Size.Y(), maxZ},
	}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max mgl64.Vec3
}

// Overlaps reports whether the open interiors of two boxes intersect.
// Boxes that only touch do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X() < b.Max.X() && b.Min.X() < a.Max.X() &&
		a.Min.Y() < b.Max.Y() && b.Min.Y() < a.Max.Y() &&
		a.Min.Z() < b.Max.Z() && b.Min.Z() < a.Max.Z()
}

// ContainsXZ reports whether the point lies inside the box footprint.
func (a AABB) ContainsXZ(x, z float64) bool {
	return x >= a.Min.X() && x <= a.Max.X() && z >= a.Min.Z() && z < a.Max.Z()
}
