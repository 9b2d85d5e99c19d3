// Package aim turns launch parameters into a launch velocity and the aim
// line previewed before firing.
package aim

import (
	"fmt"
	"math"
	"strings"

	"github.com/opd-ai/go-monkeyhunt/pkg/layout"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

// Mode selects what governs the launch direction
type Mode int

const (
	// Direction aims from the launch point straight at the target and
	// derives the displayed angle from the two positions.
	Direction Mode = iota
	// Angle aims along an explicit angle, measured from horizontal with
	// up as positive.
	Angle
)

// String returns the mode's config name
func (m Mode) String() string {
	switch m {
	case Direction:
		return "direction"
	case Angle:
		return "angle"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a config name onto a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direction":
		return Direction, nil
	case "angle":
		return Angle, nil
	default:
		return Direction, fmt.Errorf("unknown aim mode %q", s)
	}
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// VelocityFromAngle returns the launch velocity for an angle in degrees.
// The angle is negated because canvas Y grows downward.
func VelocityFromAngle(angleDeg, speed float64) physics.Vector2D {
	return physics.FromAngle(-Radians(angleDeg), speed)
}

// DirectionBetween returns the unit vector from launch to target.
// ok is false when the two points coincide.
func DirectionBetween(launch, target physics.Vector2D) (physics.Vector2D, bool) {
	delta := target.Sub(launch)
	if delta.IsZero() {
		return physics.Vector2D{}, false
	}
	return delta.Normalize(), true
}

// DisplayAngle returns the angle in degrees the controls show for the
// launch→target direction.
func DisplayAngle(launch, target physics.Vector2D) float64 {
	delta := target.Sub(launch)
	return -Degrees(math.Atan2(delta.Y, delta.X))
}

// Line is a segment between two canvas points
type Line struct {
	From physics.Vector2D
	To   physics.Vector2D
}

// Through returns a segment centered on origin along dir, reaching length
// in both directions. dir is expected to be a unit vector.
func Through(origin, dir physics.Vector2D, length float64) Line {
	return Line{
		From: origin.Sub(dir.Scale(length)),
		To:   origin.Add(dir.Scale(length)),
	}
}

// Solver computes launch directions and velocities for one aim mode
type Solver struct {
	Mode Mode
}

// NewSolver creates a solver for mode
func NewSolver(mode Mode) *Solver {
	return &Solver{Mode: mode}
}

// Direction returns the current unit launch direction
func (s *Solver) Direction(launch, target physics.Vector2D, angleDeg float64) (physics.Vector2D, bool) {
	if s.Mode == Angle {
		return VelocityFromAngle(angleDeg, 1), true
	}
	return DirectionBetween(launch, target)
}

// Velocity returns the velocity to assign at the instant of firing.
// ok is false when the direction is undefined and firing must be skipped.
func (s *Solver) Velocity(launch, target physics.Vector2D, angleDeg, speed float64) (physics.Vector2D, bool) {
	if s.Mode == Angle {
		return VelocityFromAngle(angleDeg, speed), true
	}
	dir, ok := DirectionBetween(launch, target)
	if !ok {
		return physics.Vector2D{}, false
	}
	return dir.Scale(speed), true
}

// SyncAngle returns the angle the controls should display. In direction
// mode it is derived from the positions; in angle mode the current value
// is kept.
func (s *Solver) SyncAngle(launch, target physics.Vector2D, current float64) float64 {
	if s.Mode == Angle || launch == target {
		return current
	}
	return DisplayAngle(launch, target)
}

// Preview returns the aim line through launch, long enough to cross the
// whole canvas in both directions.
func (s *Solver) Preview(launch, target physics.Vector2D, angleDeg float64, canvas layout.Canvas) (Line, bool) {
	dir, ok := s.Direction(launch, target, angleDeg)
	if !ok {
		return Line{}, false
	}
	return Through(launch, dir, canvas.MaxExtent()*2), true
}

// GuideLine returns the hunter→target line extended past both ends
func GuideLine(hunter, target physics.Vector2D, canvas layout.Canvas) (Line, bool) {
	dir, ok := DirectionBetween(hunter, target)
	if !ok {
		return Line{}, false
	}
	return Through(hunter, dir, canvas.MaxExtent()*2), true
}
