// pkg/render/ebiten/game.go
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/go-monkeyhunt/pkg/engine"
	"github.com/opd-ai/go-monkeyhunt/pkg/logging"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

// KeyBinding ties ebiten keys to a simulation command
type KeyBinding struct {
	Command engine.Command
	Keys    []ebiten.Key
}

// KeyBindings is the keyboard layout shared with the other surfaces
var KeyBindings = []KeyBinding{
	{engine.CommandFire, []ebiten.Key{ebiten.KeySpace, ebiten.KeyF}},
	{engine.CommandReset, []ebiten.Key{ebiten.KeyR}},
	{engine.CommandCycleGravity, []ebiten.Key{ebiten.KeyG}},
	{engine.CommandToggleHunterFalls, []ebiten.Key{ebiten.KeyH}},
	{engine.CommandToggleTargetFalls, []ebiten.Key{ebiten.KeyM}},
	{engine.CommandToggleGuideLine, []ebiten.Key{ebiten.KeyL}},
	{engine.CommandToggleTrajectory, []ebiten.Key{ebiten.KeyT}},
	{engine.CommandSpeedUp, []ebiten.Key{ebiten.KeyArrowUp}},
	{engine.CommandSpeedDown, []ebiten.Key{ebiten.KeyArrowDown}},
	{engine.CommandAngleUp, []ebiten.Key{ebiten.KeyArrowLeft}},
	{engine.CommandAngleDown, []ebiten.Key{ebiten.KeyArrowRight}},
	{engine.CommandQuit, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}},
}

// Game runs a simulation as an ebiten game. Ebiten calls Update at its
// fixed tick rate, so one Update is one simulation frame.
type Game struct {
	sim    *engine.Simulation
	logger *logging.Logger

	pressed      bool
	resizeWidth  int
	resizeHeight int
}

// NewGame creates a new game for sim
func NewGame(sim *engine.Simulation, logger *logging.Logger) *Game {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &Game{sim: sim, logger: logger}
}

// Update applies input and advances the simulation one frame. It returns
// ebiten.Termination once the user quits.
func (g *Game) Update() error {
	g.applyLayout()

	for _, b := range KeyBindings {
		if !justPressed(b.Keys) {
			continue
		}
		if !g.sim.Apply(b.Command) {
			g.logger.Info(g.sim.Context(), "quit requested", "ticks", g.sim.CurrentTick)
			return ebiten.Termination
		}
	}

	g.handleMouse()
	g.sim.Tick()
	return nil
}

func justPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	pointer := physics.Vector2D{X: float64(x), Y: float64(y)}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.pressed = true
		g.sim.Press(pointer)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if g.pressed {
			g.pressed = false
			g.sim.Release()
		}
	case g.pressed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.sim.Drag(pointer)
	}
}

// Draw renders the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Render(NewScreenRenderer(screen))
}

// Layout keeps the logical screen equal to the window. A size change is
// applied to the simulation on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.resizeWidth, g.resizeHeight = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

// applyLayout resizes the simulation when the window size changed
func (g *Game) applyLayout() {
	w, h := float64(g.resizeWidth), float64(g.resizeHeight)
	if w <= 0 || h <= 0 || (w == g.sim.Canvas.Width && h == g.sim.Canvas.Height) {
		return
	}
	if err := g.sim.Resize(w, h); err != nil {
		g.logger.Warn(g.sim.Context(), "window resize rejected", "width", w, "height", h, "error", err)
		g.resizeWidth, g.resizeHeight = int(g.sim.Canvas.Width), int(g.sim.Canvas.Height)
	}
}

// Run opens an ebiten window and blocks until it closes
func Run(sim *engine.Simulation, title string, logger *logging.Logger) error {
	ebiten.SetWindowSize(int(sim.Canvas.Width), int(sim.Canvas.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(NewGame(sim, logger))
}
