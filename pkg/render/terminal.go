package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-monkeyhunt/pkg/entity"
	"github.com/opd-ai/go-monkeyhunt/pkg/layout"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

// Cell glyphs used by the terminal surface
const (
	HunterGlyph     = 'H'
	TargetGlyph     = 'M'
	ProjectileGlyph = 'o'
	AimGlyph        = '.'
	GuideGlyph      = '-'
	TrailGlyph      = '*'
)

// hudRows are reserved at the top of the screen for status text
const hudRows = 1

// TerminalRenderer draws frames as character cells on a tcell screen.
// The canvas is scaled to fill the screen below the status line.
type TerminalRenderer struct {
	screen tcell.Screen
	canvas layout.Canvas
	width  int
	height int
}

// NewTerminalRenderer creates a terminal renderer on an initialised screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Screen returns the underlying tcell screen
func (r *TerminalRenderer) Screen() tcell.Screen {
	return r.screen
}

// CellToCanvas converts a screen cell to canvas pixels, using the canvas
// from the last frame. It is the inverse of worldToScreen.
func (r *TerminalRenderer) CellToCanvas(x, y int) physics.Vector2D {
	w, h := r.playfield()
	if w == 0 || h == 0 {
		return physics.Vector2D{}
	}
	return physics.Vector2D{
		X: (float64(x) + 0.5) / float64(w) * r.canvas.Width,
		Y: (float64(y-hudRows) + 0.5) / float64(h) * r.canvas.Height,
	}
}

func (r *TerminalRenderer) playfield() (int, int) {
	h := r.height - hudRows
	if r.width <= 0 || h <= 0 {
		return 0, 0
	}
	return r.width, h
}

// worldToScreen converts canvas pixels to a screen cell
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	w, h := r.playfield()
	if r.canvas.Width <= 0 || r.canvas.Height <= 0 {
		return -1, -1
	}
	x := int(math.Floor(pos.X / r.canvas.Width * float64(w)))
	y := int(math.Floor(pos.Y/r.canvas.Height*float64(h))) + hudRows
	return x, y
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < hudRows || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		if x+i >= r.width {
			return
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Begin implements Renderer.
func (r *TerminalRenderer) Begin(canvas layout.Canvas) {
	r.canvas = canvas
	r.width, r.height = r.screen.Size()
	r.screen.Clear()
}

// RenderLine implements Renderer.
func (r *TerminalRenderer) RenderLine(line Line) {
	clipped, ok := Clip(line, r.canvas)
	if !ok {
		return
	}

	glyph, style := GuideGlyph, tcell.StyleDefault.Foreground(tcell.ColorGray)
	if line.Kind == AimLine {
		glyph, style = AimGlyph, tcell.StyleDefault.Foreground(tcell.ColorRed)
	}

	x0, y0 := r.worldToScreen(clipped.From)
	x1, y1 := r.worldToScreen(clipped.To)
	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 0; i <= steps; i++ {
		if line.Kind == AimLine && i%2 == 1 {
			continue
		}
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		r.set(x, y, glyph, style)
	}
}

// RenderTrajectory implements Renderer.
func (r *TerminalRenderer) RenderTrajectory(points []physics.Vector2D) {
	style := tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	for _, p := range points {
		x, y := r.worldToScreen(p)
		r.set(x, y, TrailGlyph, style)
	}
}

// RenderBody implements Renderer.
func (r *TerminalRenderer) RenderBody(body Body) {
	var (
		glyph rune
		style tcell.Style
	)
	switch body.Kind {
	case entity.Hunter:
		glyph, style = HunterGlyph, tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case entity.Target:
		glyph, style = TargetGlyph, tcell.StyleDefault.Foreground(tcell.ColorOrange)
	default:
		glyph, style = ProjectileGlyph, tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
	if body.Highlighted {
		style = style.Reverse(true)
	}

	x, y := r.worldToScreen(body.Position)
	r.set(x, y, glyph, style.Bold(true))
}

// RenderHUD implements Renderer.
func (r *TerminalRenderer) RenderHUD(hud HUD, hit bool) {
	r.text(0, 0, StatusLine(hud), tcell.StyleDefault.Reverse(true))

	if hit {
		x := (r.width - len(HitText)) / 2
		y := hudRows + (r.height-hudRows)/2
		r.text(x, y, HitText, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	}
}

// Present implements Renderer.
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
