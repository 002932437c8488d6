// Package hud shows the distance the player has run.
package hud

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultFormat is used when no format is configured.
const DefaultFormat = "Distance: %.1f m"

// DistanceSource reports the tracked object's position.
type DistanceSource interface {
	Position() mgl64.Vec3
}

// TextSink displays the readout.
type TextSink interface {
	SetText(s string)
}

// Distance writes the distance traveled along +Z since construction.
type Distance struct {
	target DistanceSource
	sink   TextSink
	format string
	startZ float64
	last   float64
}

// New creates the readout and captures the target's starting z.
func New(target DistanceSource, sink TextSink, format string) *Distance {
	if format == "" {
		format = DefaultFormat
	}
	d := &Distance{target: target, sink: sink, format: format}
	if target != nil {
		d.startZ = target.Position().Z()
	}
	return d
}

// Tick refreshes the readout. Distance never goes below zero.
func (d *Distance) Tick() {
	if d.target == nil || d.sink == nil {
		return
	}
	d.last = math.Max(0, d.target.Position().Z()-d.startZ)
	d.sink.SetText(fmt.Sprintf(d.format, d.last))
}

// Meters returns the distance written by the last Tick.
func (d *Distance) Meters() float64 {
	return d.last
}
