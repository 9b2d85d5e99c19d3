// Package layout converts between the percentage positions the controls
// hold and pixel positions on the canvas.
package layout

import (
	"math"

	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

// Axis selects the canvas extent a coordinate is measured against
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Range is an inclusive percentage interval
type Range struct {
	Min float64
	Max float64
}

// Clamp limits pct to the range
func (r Range) Clamp(pct float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, pct))
}

// Contains reports whether pct lies inside the range
func (r Range) Contains(pct float64) bool {
	return pct >= r.Min && pct <= r.Max
}

// Bounds holds the allowed percentage ranges for one draggable object
type Bounds struct {
	X Range
	Y Range
}

// Allowed placement ranges. The target is kept on the right-hand side of the
// canvas so it cannot be dragged on top of the launch point area.
var (
	TargetBounds = Bounds{X: Range{Min: 40, Max: 95}, Y: Range{Min: 5, Max: 80}}
	LaunchBounds = Bounds{X: Range{Min: 2, Max: 95}, Y: Range{Min: 5, Max: 95}}
)

// Percent is a position expressed in percent of the canvas extent
type Percent struct {
	X float64
	Y float64
}

// Canvas is the drawable area in pixels
type Canvas struct {
	Width  float64
	Height float64
}

// Extent returns the canvas size along axis
func (c Canvas) Extent(axis Axis) float64 {
	if axis == Vertical {
		return c.Height
	}
	return c.Width
}

// MaxExtent returns the larger of the two dimensions
func (c Canvas) MaxExtent() float64 {
	return math.Max(c.Width, c.Height)
}

// Center returns the middle of the canvas
func (c Canvas) Center() physics.Vector2D {
	return physics.Vector2D{X: c.Width / 2, Y: c.Height / 2}
}

// ToPixels converts a percentage along axis into pixels
func (c Canvas) ToPixels(pct float64, axis Axis) float64 {
	return pct / 100 * c.Extent(axis)
}

// ToPercent converts a pixel coordinate into a percentage clamped to r.
// A zero-sized axis maps everything to the bottom of the range.
func (c Canvas) ToPercent(px float64, axis Axis, r Range) float64 {
	extent := c.Extent(axis)
	if extent <= 0 {
		return r.Min
	}
	return r.Clamp(px / extent * 100)
}

// Point converts a percentage position into canvas pixels
func (c Canvas) Point(p Percent) physics.Vector2D {
	return physics.Vector2D{
		X: c.ToPixels(p.X, Horizontal),
		Y: c.ToPixels(p.Y, Vertical),
	}
}

// Place converts a pixel position into a percentage position inside b
func (c Canvas) Place(px physics.Vector2D, b Bounds) Percent {
	return Percent{
		X: c.ToPercent(px.X, Horizontal, b.X),
		Y: c.ToPercent(px.Y, Vertical, b.Y),
	}
}
