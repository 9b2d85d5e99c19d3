// pkg/physics/space.go
package physics

import (
	"github.com/jakecoffman/cp"
)

// Space steps point masses through a Chipmunk2D space. Velocities stay in
// pixels per frame, so each step advances the space by dt = 1 under an
// acceleration of gravity*scale*delta².
type Space struct {
	GravityScale float64
	DeltaMS      float64

	gravityY float64
	space    *cp.Space
	bodies   map[*PointMass]*spaceBody
}

type spaceBody struct {
	body    *cp.Body
	dynamic bool
}

// NewSpace creates a chipmunk-backed stepper with the given vertical
// gravity and the default scale and frame time.
func NewSpace(gravityY float64) *Space {
	return &Space{
		GravityScale: DefaultGravityScale,
		DeltaMS:      DefaultDeltaMS,
		gravityY:     gravityY,
		space:        cp.NewSpace(),
		bodies:       make(map[*PointMass]*spaceBody),
	}
}

// SetGravity replaces the vertical gravity. It applies from the next step.
func (s *Space) SetGravity(y float64) {
	s.gravityY = y
}

// Gravity returns the current vertical gravity setting
func (s *Space) Gravity() float64 {
	return s.gravityY
}

// Acceleration returns the per-frame velocity change applied to dynamic masses
func (s *Space) Acceleration() Vector2D {
	return Vector2D{X: 0, Y: s.gravityY * s.GravityScale * s.DeltaMS * s.DeltaMS}
}

// Step integrates every non-static mass once. Nil entries are skipped.
// Static masses are taken out of the space so gravity never reaches them.
func (s *Space) Step(masses ...*PointMass) {
	accel := s.Acceleration()
	s.space.SetGravity(toCP(accel))

	moving := make([]*PointMass, 0, len(masses))
	for _, m := range masses {
		if m == nil {
			continue
		}
		sb := s.track(m)
		s.setDynamic(sb, !m.Static)
		if m.Static {
			continue
		}

		// Chipmunk moves bodies before it applies gravity, so the body
		// carries the velocity the mass has after this step.
		v := m.Velocity.Add(accel)
		sb.body.SetPosition(toCP(m.Position))
		sb.body.SetVelocity(v.X, v.Y)
		moving = append(moving, m)
	}
	if len(moving) == 0 {
		return
	}

	s.space.Step(1)

	for _, m := range moving {
		b := s.bodies[m].body
		m.Position = fromCP(b.Position())
		m.Velocity = fromCP(b.Velocity()).Sub(accel)
	}
}

func (s *Space) track(m *PointMass) *spaceBody {
	sb, ok := s.bodies[m]
	if !ok {
		sb = &spaceBody{body: cp.NewBody(1, cp.INFINITY)}
		s.bodies[m] = sb
	}
	return sb
}

func (s *Space) setDynamic(sb *spaceBody, dynamic bool) {
	switch {
	case dynamic && !sb.dynamic:
		s.space.AddBody(sb.body)
	case !dynamic && sb.dynamic:
		s.space.RemoveBody(sb.body)
		sb.body.SetVelocity(0, 0)
	}
	sb.dynamic = dynamic
}

func toCP(v Vector2D) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) Vector2D {
	return Vector2D{X: v.X, Y: v.Y}
}
