// pkg/engine/loop_test.go
package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-monkeyhunt/pkg/engine"
	"github.com/opd-ai/go-monkeyhunt/pkg/interaction"
	"github.com/opd-ai/go-monkeyhunt/pkg/render"
)

func newLoop(t *testing.T) (*engine.Loop, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	loop := engine.NewLoop(newSimulation(t, nil), screen, 60)
	loop.Draw()
	return loop, screen
}

func findGlyph(t *testing.T, screen tcell.SimulationScreen, glyph rune) (int, int) {
	t.Helper()
	w, h := screen.Size()
	// row 0 is the status line
	for y := 1; y < h; y++ {
		for x := 0; x < w; x++ {
			if ch, _, _, _ := screen.GetContent(x, y); ch == glyph {
				return x, y
			}
		}
	}
	t.Fatalf("glyph %q not on screen", glyph)
	return -1, -1
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want engine.Command
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), engine.CommandQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), engine.CommandQuit},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), engine.CommandSpeedUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), engine.CommandSpeedDown},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), engine.CommandAngleUp},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), engine.CommandAngleDown},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), engine.CommandFire},
		{"g", tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), engine.CommandCycleGravity},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), engine.CommandNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.CommandForKey(tt.ev); got != tt.want {
				t.Errorf("CommandForKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoop_KeysDriveSimulation(t *testing.T) {
	loop, _ := newLoop(t)

	if !loop.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone)) {
		t.Fatal("fire key should not quit")
	}
	if !loop.Simulation.Fired() {
		t.Error("fire key should fire")
	}
	if loop.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
}

func TestLoop_StepDrawsFrame(t *testing.T) {
	loop, screen := newLoop(t)
	loop.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	loop.Step()
	loop.Step()

	if loop.Simulation.CurrentTick != 2 {
		t.Errorf("CurrentTick = %d, want 2", loop.Simulation.CurrentTick)
	}
	findGlyph(t, screen, render.ProjectileGlyph)
	findGlyph(t, screen, render.TrailGlyph)
}

func TestLoop_MouseDragsTarget(t *testing.T) {
	loop, screen := newLoop(t)
	x, y := findGlyph(t, screen, render.TargetGlyph)

	loop.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	if got := loop.Simulation.Dragging(); got != interaction.Target {
		t.Fatalf("Dragging() = %v, want target", got)
	}

	before := loop.Simulation.State.Target.Position
	loop.HandleEvent(tcell.NewEventMouse(x+4, y+2, tcell.Button1, tcell.ModNone))
	after := loop.Simulation.State.Target.Position
	if after.X <= before.X || after.Y <= before.Y {
		t.Errorf("target moved from %v to %v, want right and down", before, after)
	}

	loop.HandleEvent(tcell.NewEventMouse(x+4, y+2, tcell.ButtonNone, tcell.ModNone))
	if got := loop.Simulation.Dragging(); got != interaction.None {
		t.Errorf("Dragging() after release = %v, want none", got)
	}
}

func TestLoop_RunStopsOnQuitKey(t *testing.T) {
	loop, screen := newLoop(t)

	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not stop on q")
	}
}

func TestLoop_RunStopsOnCancel(t *testing.T) {
	loop, _ := newLoop(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not stop on cancel")
	}
}
