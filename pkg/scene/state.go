// Package scene holds the mutable state of one hunter and monkey scene
// together with the pieces that advance it each frame: the projectile
// integrator, the hit detector and the trajectory recorder.
package scene

import (
	"time"

	"github.com/opd-ai/go-monkeyhunt/pkg/entity"
	"github.com/opd-ai/go-monkeyhunt/pkg/layout"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

// DefaultMaxTrajectory is the number of trail points kept
const DefaultMaxTrajectory = 100

// Controls are the user-adjustable inputs a scene is built from.
// Positions are percentages of the canvas.
type Controls struct {
	Target         layout.Percent
	Launch         layout.Percent
	Speed          float64
	AngleDegrees   float64
	Gravity        string
	HunterFalls    bool
	TargetFalls    bool
	ShowGuideLine  bool
	ShowTrajectory bool
}

// Options fixes the shape of a scene for its whole lifetime
type Options struct {
	// SeparateHunter adds a hunter body co-located with the projectile
	SeparateHunter bool
	MaxTrajectory  int
}

// State is everything that changes while a scene runs. It is owned by a
// single simulation and is not safe for concurrent use.
type State struct {
	Hunter     *entity.Body
	Target     *entity.Body
	Projectile *entity.Body

	Fired      bool
	Trajectory *Trajectory
	// LastHit is the last frame time the projectile was within range of
	// the target. The zero value means no hit since the last reset.
	LastHit  time.Time
	GravityY float64
	ShotID   string
}

// NewState creates an empty scene. Call Reset to place the bodies.
func NewState(opts Options) *State {
	s := &State{
		Target:     entity.NewBody(entity.Target, physics.Vector2D{}),
		Projectile: entity.NewBody(entity.Projectile, physics.Vector2D{}),
		Trajectory: NewTrajectory(opts.MaxTrajectory),
	}
	if opts.SeparateHunter {
		s.Hunter = entity.NewBody(entity.Hunter, physics.Vector2D{})
	}
	return s
}

// Reset rebuilds the scene from controls: every body is frozen at its
// configured position and the shot, trail and hit marker are cleared.
// Gravity is left untouched.
func (s *State) Reset(canvas layout.Canvas, c Controls) {
	launch := canvas.Point(c.Launch)
	target := canvas.Point(c.Target)

	for _, b := range s.Bodies() {
		b.SetStatic(true)
	}
	s.MoveLaunch(launch)
	s.Target.SetPosition(target)

	s.Fired = false
	s.Trajectory.Clear()
	s.LastHit = time.Time{}
	s.ShotID = ""
}

// LaunchPoint returns where the projectile leaves from
func (s *State) LaunchPoint() physics.Vector2D {
	if s.Hunter != nil {
		return s.Hunter.Position
	}
	return s.Projectile.Position
}

// MoveLaunch places the hunter and the resting projectile at p
func (s *State) MoveLaunch(p physics.Vector2D) {
	if s.Hunter != nil {
		s.Hunter.SetPosition(p)
	}
	s.Projectile.SetPosition(p)
}

// MoveTarget places the target at p
func (s *State) MoveTarget(p physics.Vector2D) {
	s.Target.SetPosition(p)
}

// Bodies returns the bodies that exist in this scene, hunter first
func (s *State) Bodies() []*entity.Body {
	bodies := make([]*entity.Body, 0, 3)
	if s.Hunter != nil {
		bodies = append(bodies, s.Hunter)
	}
	return append(bodies, s.Target, s.Projectile)
}

// Distance returns the distance between the projectile and target centres
func (s *State) Distance() float64 {
	return s.Projectile.Position.Distance(s.Target.Position)
}
