// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-monkeyhunt/pkg/engine"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

// Binding ties a named engo button to a simulation command
type Binding struct {
	Button  string
	Command engine.Command
	Keys    []engo.Key
}

// Bindings is the keyboard layout shared with the other surfaces
var Bindings = []Binding{
	{"fire", engine.CommandFire, []engo.Key{engo.KeySpace, engo.KeyF}},
	{"reset", engine.CommandReset, []engo.Key{engo.KeyR}},
	{"gravity", engine.CommandCycleGravity, []engo.Key{engo.KeyG}},
	{"hunterFalls", engine.CommandToggleHunterFalls, []engo.Key{engo.KeyH}},
	{"targetFalls", engine.CommandToggleTargetFalls, []engo.Key{engo.KeyM}},
	{"guideLine", engine.CommandToggleGuideLine, []engo.Key{engo.KeyL}},
	{"trajectory", engine.CommandToggleTrajectory, []engo.Key{engo.KeyT}},
	{"speedUp", engine.CommandSpeedUp, []engo.Key{engo.KeyArrowUp}},
	{"speedDown", engine.CommandSpeedDown, []engo.Key{engo.KeyArrowDown}},
	{"angleUp", engine.CommandAngleUp, []engo.Key{engo.KeyArrowLeft}},
	{"angleDown", engine.CommandAngleDown, []engo.Key{engo.KeyArrowRight}},
	{"quit", engine.CommandQuit, []engo.Key{engo.KeyEscape, engo.KeyQ}},
}

// SetupInputBindings registers Bindings with engo
func SetupInputBindings() {
	for _, b := range Bindings {
		engo.Input.RegisterButton(b.Button, b.Keys...)
	}
}

// InputSystem feeds keyboard and mouse input to the simulation
type InputSystem struct {
	sim      *engine.Simulation
	pressed  bool
	quitFunc func()
}

// NewInputSystem creates a new input system
func NewInputSystem(sim *engine.Simulation) *InputSystem {
	return &InputSystem{
		sim:      sim,
		quitFunc: engo.Exit,
	}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update applies the buttons pressed this frame and the mouse state
func (is *InputSystem) Update(dt float32) {
	for _, b := range Bindings {
		if engo.Input.Button(b.Button).JustPressed() {
			is.apply(b.Command)
		}
	}

	mouse := engo.Input.Mouse
	is.handleMouse(mouse.Action, physics.Vector2D{X: float64(mouse.X), Y: float64(mouse.Y)})
}

func (is *InputSystem) apply(cmd engine.Command) {
	if !is.sim.Apply(cmd) {
		is.quitFunc()
	}
}

// handleMouse turns engo mouse actions into press, drag and release
func (is *InputSystem) handleMouse(action engo.Action, pointer physics.Vector2D) {
	switch action {
	case engo.Press:
		is.pressed = true
		is.sim.Press(pointer)
	case engo.Move:
		if is.pressed {
			is.sim.Drag(pointer)
		}
	case engo.Release:
		if is.pressed {
			is.pressed = false
			is.sim.Release()
		}
	}
}
