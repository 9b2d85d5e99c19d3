package engo

import (
	"testing"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-monkeyhunt/pkg/engine"
	"github.com/opd-ai/go-monkeyhunt/pkg/interaction"
	"github.com/opd-ai/go-monkeyhunt/pkg/logging"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

func newTestSimulation(t *testing.T) *engine.Simulation {
	t.Helper()
	sim, err := engine.NewSimulation(nil, engine.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}
	return sim
}

func TestBindings_Unique(t *testing.T) {
	buttons := make(map[string]bool)
	commands := make(map[engine.Command]bool)
	for _, b := range Bindings {
		if buttons[b.Button] {
			t.Errorf("button %q bound twice", b.Button)
		}
		if commands[b.Command] {
			t.Errorf("command %v bound twice", b.Command)
		}
		if len(b.Keys) == 0 {
			t.Errorf("button %q has no keys", b.Button)
		}
		buttons[b.Button] = true
		commands[b.Command] = true
	}
}

func TestInputSystem_Apply(t *testing.T) {
	sim := newTestSimulation(t)
	is := NewInputSystem(sim)
	quit := false
	is.quitFunc = func() { quit = true }

	is.apply(engine.CommandFire)
	if !sim.Fired() {
		t.Error("fire binding should fire")
	}
	if quit {
		t.Error("fire should not quit")
	}
	is.apply(engine.CommandQuit)
	if !quit {
		t.Error("quit binding should exit")
	}
}

func TestInputSystem_Mouse(t *testing.T) {
	sim := newTestSimulation(t)
	is := NewInputSystem(sim)
	target := sim.State.Target.Position

	is.handleMouse(engo.Move, target)
	if sim.Dragging() != interaction.None {
		t.Fatal("moving without a press should not select")
	}

	is.handleMouse(engo.Press, target)
	if sim.Dragging() != interaction.Target {
		t.Fatalf("Dragging() = %v, want target", sim.Dragging())
	}

	moved := target.Add(physics.Vector2D{X: 40, Y: 30})
	is.handleMouse(engo.Move, moved)
	if got := sim.State.Target.Position; got.Distance(moved) > 1e-6 {
		t.Errorf("target at %v, want %v", got, moved)
	}

	is.handleMouse(engo.Release, moved)
	if sim.Dragging() != interaction.None {
		t.Error("release should drop the selection")
	}
}
