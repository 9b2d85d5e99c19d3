// Package interaction turns pointer presses and drags into placement
// changes for the launch point and the target.
package interaction

import (
	"github.com/opd-ai/go-monkeyhunt/pkg/layout"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

// DefaultPickRadius is how close, in pixels, a press must land to grab a body
const DefaultPickRadius = 40.0

// Dragging identifies what the pointer currently holds
type Dragging int

const (
	None Dragging = iota
	Launch
	Target
)

// String returns the handle name used in logs and events
func (d Dragging) String() string {
	switch d {
	case Launch:
		return "launch"
	case Target:
		return "target"
	default:
		return "none"
	}
}

// Bounds returns the placement limits for the handle
func (d Dragging) Bounds() layout.Bounds {
	if d == Target {
		return layout.TargetBounds
	}
	return layout.LaunchBounds
}

// Move is the result of a drag: the handle to move and its new clamped
// percentage position.
type Move struct {
	Handle   Dragging
	Position layout.Percent
}

// Controller tracks the current drag selection
type Controller struct {
	PickRadius float64
	dragging   Dragging
}

// NewController creates a controller. A non-positive radius uses
// DefaultPickRadius.
func NewController(pickRadius float64) *Controller {
	if pickRadius <= 0 {
		pickRadius = DefaultPickRadius
	}
	return &Controller{PickRadius: pickRadius}
}

// Dragging returns the current selection
func (c *Controller) Dragging() Dragging {
	return c.dragging
}

// Press selects the body under the pointer. Presses are ignored once the
// shot is fired. When both bodies are in range the nearer one wins and the
// target wins a tie.
func (c *Controller) Press(pointer, launch, target physics.Vector2D, fired bool) Dragging {
	if fired {
		return None
	}

	dTarget := pointer.Distance(target)
	dLaunch := pointer.Distance(launch)
	targetHit := dTarget < c.PickRadius
	launchHit := dLaunch < c.PickRadius

	switch {
	case targetHit && (!launchHit || dTarget <= dLaunch):
		c.dragging = Target
	case launchHit:
		c.dragging = Launch
	default:
		c.dragging = None
	}
	return c.dragging
}

// Drag converts the pointer position into a clamped placement for the
// selected handle. ok is false when nothing is selected or the shot has
// been fired.
func (c *Controller) Drag(pointer physics.Vector2D, canvas layout.Canvas, fired bool) (Move, bool) {
	if fired || c.dragging == None {
		return Move{}, false
	}
	return Move{
		Handle:   c.dragging,
		Position: canvas.Place(pointer, c.dragging.Bounds()),
	}, true
}

// Release clears the selection and returns what was held
func (c *Controller) Release() Dragging {
	held := c.dragging
	c.dragging = None
	return held
}
