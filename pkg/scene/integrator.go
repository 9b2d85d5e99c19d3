package scene

import (
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

// Integrator advances the scene bodies through a physics.Stepper
type Integrator struct {
	stepper physics.Stepper
}

// NewIntegrator creates an integrator. A nil stepper gets a standard
// gravity world.
func NewIntegrator(stepper physics.Stepper) *Integrator {
	if stepper == nil {
		stepper = physics.NewWorld(1)
	}
	return &Integrator{stepper: stepper}
}

// Stepper returns the underlying stepper
func (i *Integrator) Stepper() physics.Stepper {
	return i.stepper
}

// Release makes the projectile dynamic with velocity, and the hunter and
// target too when their fall flags are set. Bodies left static stay frozen
// until the next reset.
func (i *Integrator) Release(s *State, velocity physics.Vector2D, hunterFalls, targetFalls bool) {
	s.Projectile.SetStatic(false)
	s.Projectile.SetVelocity(velocity)

	if hunterFalls && s.Hunter != nil {
		s.Hunter.SetStatic(false)
	}
	if targetFalls {
		s.Target.SetStatic(false)
	}
}

// Step advances every dynamic body by one frame under the scene's gravity
func (i *Integrator) Step(s *State) {
	i.stepper.SetGravity(s.GravityY)
	i.stepper.Step(s.Hunter.Mass(), s.Target.Mass(), s.Projectile.Mass())
}
