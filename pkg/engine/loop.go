// pkg/engine/loop.go
package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-monkeyhunt/pkg/render"
)

// Loop drives a Simulation on a terminal. Input events and frame ticks are
// handled in one select loop so the simulation never sees concurrent calls.
type Loop struct {
	Simulation *Simulation
	Renderer   *render.TerminalRenderer

	screen    tcell.Screen
	interval  time.Duration
	mouseDown bool
}

// NewLoop creates a loop ticking fps times a second. The screen must be
// initialised by the caller, who also owns Fini.
func NewLoop(sim *Simulation, screen tcell.Screen, fps int) *Loop {
	if fps <= 0 {
		fps = 60
	}
	screen.EnableMouse()
	return &Loop{
		Simulation: sim,
		Renderer:   render.NewTerminalRenderer(screen),
		screen:     screen,
		interval:   time.Second / time.Duration(fps),
	}
}

// Run processes events and frames until ctx is done, the user quits or the
// screen is finalised.
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go l.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !l.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			l.Step()
		}
	}
}

// Step advances the simulation one frame and redraws it
func (l *Loop) Step() {
	l.Simulation.Tick()
	l.Draw()
}

// Draw renders the current frame without advancing
func (l *Loop) Draw() {
	l.Simulation.Render(l.Renderer)
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (l *Loop) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return l.Simulation.Apply(CommandForKey(ev))

	case *tcell.EventMouse:
		l.handleMouse(ev)

	case *tcell.EventResize:
		l.screen.Sync()
		l.Draw()
	}
	return true
}

func (l *Loop) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pointer := l.Renderer.CellToCanvas(x, y)

	if ev.Buttons()&tcell.Button1 != 0 {
		if l.mouseDown {
			l.Simulation.Drag(pointer)
		} else {
			l.mouseDown = true
			l.Simulation.Press(pointer)
		}
		return
	}
	if l.mouseDown {
		l.mouseDown = false
		l.Simulation.Release()
	}
}

// CommandForKey maps a terminal key press to its command
func CommandForKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyUp:
		return CommandSpeedUp
	case tcell.KeyDown:
		return CommandSpeedDown
	case tcell.KeyLeft:
		return CommandAngleUp
	case tcell.KeyRight:
		return CommandAngleDown
	case tcell.KeyRune:
		return CommandForRune(ev.Rune())
	}
	return CommandNone
}
