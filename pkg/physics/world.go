// pkg/physics/world.go
package physics

// DefaultDeltaMS is the fixed frame time the world integrates with (60 FPS).
const DefaultDeltaMS = 1000.0 / 60.0

// DefaultGravityScale converts a gravity setting into px/ms².
const DefaultGravityScale = 0.001

// PointMass is the unit of integration: a position and velocity that either
// moves under gravity or stays frozen.
type PointMass struct {
	Position Vector2D
	Velocity Vector2D
	Static   bool
}

// Stepper advances a set of point masses by one frame.
type Stepper interface {
	Step(masses ...*PointMass)
	SetGravity(y float64)
	Gravity() float64
}

// World is a constant-acceleration stepper. Velocities are expressed in
// pixels per frame, so one step adds gravity*scale*delta² to the vertical
// velocity and then moves every dynamic mass by its velocity.
type World struct {
	GravityY     float64
	GravityScale float64
	DeltaMS      float64
}

// NewWorld creates a world with the given vertical gravity and the default
// scale and frame time.
func NewWorld(gravityY float64) *World {
	return &World{
		GravityY:     gravityY,
		GravityScale: DefaultGravityScale,
		DeltaMS:      DefaultDeltaMS,
	}
}

// SetGravity replaces the vertical gravity. It applies from the next step.
func (w *World) SetGravity(y float64) {
	w.GravityY = y
}

// Gravity returns the current vertical gravity setting
func (w *World) Gravity() float64 {
	return w.GravityY
}

// Acceleration returns the per-frame velocity change applied to dynamic masses
func (w *World) Acceleration() Vector2D {
	return Vector2D{X: 0, Y: w.GravityY * w.GravityScale * w.DeltaMS * w.DeltaMS}
}

// Step integrates every non-static mass once. Nil entries are skipped.
func (w *World) Step(masses ...*PointMass) {
	accel := w.Acceleration()
	for _, m := range masses {
		if m == nil || m.Static {
			continue
		}
		m.Velocity = m.Velocity.Add(accel)
		m.Position = m.Position.Add(m.Velocity)
	}
}
