package interaction

import (
	"math"
	"testing"

	"github.com/opd-ai/go-monkeyhunt/pkg/layout"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

var (
	canvas = layout.Canvas{Width: 800, Height: 600}
	launch = physics.Vector2D{X: 100, Y: 400}
	target = physics.Vector2D{X: 500, Y: 300}
)

func TestDragging_String(t *testing.T) {
	tests := map[Dragging]string{None: "none", Launch: "launch", Target: "target"}
	for d, want := range tests {
		if got := d.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", d, got, want)
		}
	}
}

func TestController_Press(t *testing.T) {
	tests := []struct {
		name    string
		pointer physics.Vector2D
		launch  physics.Vector2D
		target  physics.Vector2D
		fired   bool
		want    Dragging
	}{
		{"on target", physics.Vector2D{X: 510, Y: 300}, launch, target, false, Target},
		{"on launch", physics.Vector2D{X: 100, Y: 420}, launch, target, false, Launch},
		{"empty space", physics.Vector2D{X: 300, Y: 100}, launch, target, false, None},
		{"edge of radius", physics.Vector2D{X: 540, Y: 300}, launch, target, false, None},
		{"ignored when fired", target, launch, target, true, None},
		{
			"nearer launch wins",
			physics.Vector2D{X: 110, Y: 400},
			launch,
			physics.Vector2D{X: 140, Y: 400},
			false,
			Launch,
		},
		{
			"nearer target wins",
			physics.Vector2D{X: 130, Y: 400},
			launch,
			physics.Vector2D{X: 140, Y: 400},
			false,
			Target,
		},
		{
			"tie goes to target",
			physics.Vector2D{X: 120, Y: 400},
			launch,
			physics.Vector2D{X: 140, Y: 400},
			false,
			Target,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(0)
			if got := c.Press(tt.pointer, tt.launch, tt.target, tt.fired); got != tt.want {
				t.Errorf("Press() = %v, want %v", got, tt.want)
			}
			if c.Dragging() != tt.want {
				t.Errorf("Dragging() = %v, want %v", c.Dragging(), tt.want)
			}
		})
	}
}

func TestController_DragClampsToBounds(t *testing.T) {
	tests := []struct {
		name    string
		press   physics.Vector2D
		pointer physics.Vector2D
		want    Move
	}{
		{
			name:    "launch into the corner",
			press:   launch,
			pointer: physics.Vector2D{X: 50, Y: 50},
			want:    Move{Handle: Launch, Position: layout.Percent{X: 6.25, Y: 100.0 / 12}},
		},
		{
			name:    "target clamped to its range",
			press:   target,
			pointer: physics.Vector2D{X: 0, Y: 600},
			want:    Move{Handle: Target, Position: layout.Percent{X: 40, Y: 80}},
		},
		{
			name:    "launch clamped past the edge",
			press:   launch,
			pointer: physics.Vector2D{X: -100, Y: 9000},
			want:    Move{Handle: Launch, Position: layout.Percent{X: 2, Y: 95}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(DefaultPickRadius)
			c.Press(tt.press, launch, target, false)

			got, ok := c.Drag(tt.pointer, canvas, false)
			if !ok {
				t.Fatal("Drag() reported no selection")
			}
			if got.Handle != tt.want.Handle ||
				math.Abs(got.Position.X-tt.want.Position.X) > 1e-9 ||
				math.Abs(got.Position.Y-tt.want.Position.Y) > 1e-9 {
				t.Errorf("Drag() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestController_DragIgnored(t *testing.T) {
	c := NewController(DefaultPickRadius)

	if _, ok := c.Drag(target, canvas, false); ok {
		t.Error("Drag() without a selection should be ignored")
	}

	c.Press(target, launch, target, false)
	if _, ok := c.Drag(target, canvas, true); ok {
		t.Error("Drag() after firing should be ignored")
	}

	if held := c.Release(); held != Target {
		t.Errorf("Release() = %v, want %v", held, Target)
	}
	if c.Dragging() != None {
		t.Error("Release() did not clear the selection")
	}
	if _, ok := c.Drag(target, canvas, false); ok {
		t.Error("Drag() after release should be ignored")
	}
}
