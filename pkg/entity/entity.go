// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

// ID is a unique identifier for a body
type ID uint64

// Kind identifies the role a body plays in the scene
type Kind int

const (
	Hunter Kind = iota
	Target
	Projectile
)

// Collider radii for each kind, in pixels
const (
	HunterRadius     = 20.0
	TargetRadius     = 20.0
	ProjectileRadius = 10.0
)

// String returns the kind's display name
func (k Kind) String() string {
	switch k {
	case Hunter:
		return "hunter"
	case Target:
		return "target"
	case Projectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Radius returns the collider radius used for bodies of this kind
func (k Kind) Radius() float64 {
	switch k {
	case Hunter:
		return HunterRadius
	case Target:
		return TargetRadius
	default:
		return ProjectileRadius
	}
}

// Body is a circular point mass placed in the scene. Every body starts
// static and only becomes dynamic when the scene releases it on fire.
type Body struct {
	physics.PointMass
	ID     ID
	Kind   Kind
	Radius float64
}

// NewBody creates a static body of the given kind at position
func NewBody(kind Kind, position physics.Vector2D) *Body {
	return &Body{
		PointMass: physics.PointMass{
			Position: position,
			Static:   true,
		},
		ID:     GenerateID(),
		Kind:   kind,
		Radius: kind.Radius(),
	}
}

// GetID returns the body's unique identifier
func (b *Body) GetID() ID {
	return b.ID
}

// GetPosition returns the body's position
func (b *Body) GetPosition() physics.Vector2D {
	return b.Position
}

// GetCollider returns the body's collision shape
func (b *Body) GetCollider() physics.Circle {
	return physics.Circle{
		Center: b.Position,
		Radius: b.Radius,
	}
}

// IsStatic reports whether the integrator must leave the body alone
func (b *Body) IsStatic() bool {
	return b.Static
}

// SetStatic toggles the body between frozen and gravity-driven.
// Freezing a body also discards its velocity.
func (b *Body) SetStatic(static bool) {
	b.Static = static
	if static {
		b.Velocity = physics.Vector2D{}
	}
}

// SetVelocity assigns the body's velocity in pixels per frame
func (b *Body) SetVelocity(v physics.Vector2D) {
	b.Velocity = v
}

// SetPosition teleports the body without touching its velocity
func (b *Body) SetPosition(p physics.Vector2D) {
	b.Position = p
}

// Mass exposes the body's point mass to a physics.Stepper.
// A nil body yields a nil mass, which steppers skip.
func (b *Body) Mass() *physics.PointMass {
	if b == nil {
		return nil
	}
	return &b.PointMass
}

var nextID atomic.Uint64

// GenerateID returns a process-wide unique body ID
func GenerateID() ID {
	return ID(nextID.Add(1))
}
