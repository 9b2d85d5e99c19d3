// pkg/render/ebiten/renderer.go
package ebiten

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/opd-ai/go-monkeyhunt/pkg/layout"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
	"github.com/opd-ai/go-monkeyhunt/pkg/render"
)

const hudMargin = 10

// ScreenRenderer implements render.Renderer by drawing onto an ebiten image
type ScreenRenderer struct {
	dst    *ebiten.Image
	canvas layout.Canvas
	face   font.Face
}

// NewScreenRenderer creates a renderer for dst
func NewScreenRenderer(dst *ebiten.Image) *ScreenRenderer {
	return &ScreenRenderer{dst: dst, face: basicfont.Face7x13}
}

// Begin implements render.Renderer
func (r *ScreenRenderer) Begin(canvas layout.Canvas) {
	r.canvas = canvas
	r.dst.Fill(render.Background)
}

// RenderLine implements render.Renderer. Aim lines are dashed.
func (r *ScreenRenderer) RenderLine(line render.Line) {
	clipped, ok := render.Clip(line, r.canvas)
	if !ok {
		return
	}
	c, width := render.LineColor(line.Kind)

	segments := []render.Line{clipped}
	if line.Kind == render.AimLine {
		segments = render.Dashes(clipped)
	}
	for _, seg := range segments {
		r.stroke(seg.From, seg.To, width, c)
	}
}

// RenderTrajectory implements render.Renderer
func (r *ScreenRenderer) RenderTrajectory(points []physics.Vector2D) {
	for i := 1; i < len(points); i++ {
		r.stroke(points[i-1], points[i], render.TrailWidth, render.TrailColor)
	}
}

func (r *ScreenRenderer) stroke(from, to physics.Vector2D, width float64, c color.Color) {
	vector.StrokeLine(r.dst,
		float32(from.X), float32(from.Y),
		float32(to.X), float32(to.Y),
		float32(width), c, true)
}

// RenderBody implements render.Renderer
func (r *ScreenRenderer) RenderBody(body render.Body) {
	vector.DrawFilledCircle(r.dst,
		float32(body.Position.X), float32(body.Position.Y),
		float32(body.Radius),
		render.Fill(body.Kind, body.Highlighted), true)
}

// RenderHUD implements render.Renderer
func (r *ScreenRenderer) RenderHUD(hud render.HUD, hit bool) {
	lineHeight := r.face.Metrics().Height.Ceil()
	ascent := r.face.Metrics().Ascent.Ceil()
	for i, line := range strings.Split(render.HUDText(hud), "\n") {
		text.Draw(r.dst, line, r.face, hudMargin, hudMargin+ascent+i*lineHeight, render.TextColor)
	}

	if hit {
		w := font.MeasureString(r.face, render.HitText).Ceil()
		x := int(r.canvas.Width)/2 - w/2
		y := int(r.canvas.Height)/2 + ascent/2
		text.Draw(r.dst, render.HitText, r.face, x, y, render.HitColor)
	}
}

// Present implements render.Renderer. Ebiten presents the screen after Draw
// returns, so there is nothing to flush.
func (r *ScreenRenderer) Present() {}
