// Package lane maps lane indices to lateral world offsets.
//
// Two index spaces exist. Slots run from 0 to count-1, left to right, and are
// what the obstacle spawner iterates. Signed indices run from -HalfSpan to
// +HalfSpan with 0 as the center lane, and are what player movement tracks.
// Both resolve through the same formula so obstacles and the player stay aligned.
package lane

import "github.com/vovakirdan/lane-runner/internal/core"

// Geometry describes a set of parallel lanes.
type Geometry struct {
	count int
	width float64
}

// New creates lane geometry. A count below 1 is clamped to 1.
func New(count int, width float64) Geometry {
	if count < 1 {
		count = 1
	}
	return Geometry{count: count, width: width}
}

// Count returns the number of lanes.
func (g Geometry) Count() int {
	return g.count
}

// Width returns the distance between adjacent lane centers.
func (g Geometry) Width() float64 {
	return g.width
}

// HalfSpan returns floor((count-1)/2).
func (g Geometry) HalfSpan() int {
	return (g.count - 1) / 2
}

// Bounds returns the valid signed lane index range.
// For an even count the rightmost slot has no signed index.
func (g Geometry) Bounds() (min, max int) {
	h := g.HalfSpan()
	return -h, h
}

// Clamp restricts a signed lane index to Bounds.
func (g Geometry) Clamp(index int) int {
	lo, hi := g.Bounds()
	return core.Clamp(index, lo, hi)
}

// SlotOffset returns the lateral offset of a 0-based slot.
func (g Geometry) SlotOffset(slot int) float64 {
	return IndexToOffset(slot, g.count, g.width)
}

// Offset returns the lateral offset of a signed lane index.
func (g Geometry) Offset(index int) float64 {
	return g.SlotOffset(index + g.HalfSpan())
}

// Slot converts a signed lane index to its 0-based slot.
func (g Geometry) Slot(index int) int {
	return index + g.HalfSpan()
}

// IndexToOffset maps a 0-based lane slot to a lateral offset centered on zero.
func IndexToOffset(laneIndex, laneCount int, laneWidth float64) float64 {
	halfSpan := (laneCount - 1) / 2
	return float64(laneIndex-halfSpan) * laneWidth
}
