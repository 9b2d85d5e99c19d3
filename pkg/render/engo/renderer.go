// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-monkeyhunt/pkg/layout"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
	"github.com/opd-ai/go-monkeyhunt/pkg/render"
)

// Draw order, back to front
const (
	zLines float32 = iota
	zTrail
	zBodies
	zHUD
	zOverlay
)

// hudMargin is the distance of the HUD text from the top-left corner
const hudMargin = 10

// SpriteSink receives newly created sprites. common.RenderSystem satisfies it.
type SpriteSink interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
}

type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// pool recycles sprites between frames. Sprites not claimed in a frame are
// hidden on Present.
type pool struct {
	sink    SpriteSink
	z       float32
	sprites []*sprite
	used    int
}

func (p *pool) begin() {
	p.used = 0
}

func (p *pool) acquire() *sprite {
	if p.used < len(p.sprites) {
		s := p.sprites[p.used]
		p.used++
		s.Hidden = false
		return s
	}
	s := &sprite{BasicEntity: ecs.NewBasic()}
	s.SetZIndex(p.z)
	p.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	p.sprites = append(p.sprites, s)
	p.used++
	return s
}

func (p *pool) hideUnused() {
	for _, s := range p.sprites[p.used:] {
		s.Hidden = true
	}
}

// visible returns the sprites claimed this frame
func (p *pool) visible() []*sprite {
	return p.sprites[:p.used]
}

// EngoRenderer implements render.Renderer on top of an engo render system.
// Lines are drawn as rotated rectangles and bodies as circles.
type EngoRenderer struct {
	canvas layout.Canvas
	text   TextSource

	lines   *pool
	trail   *pool
	bodies  *pool
	hud     *pool
	overlay *pool
}

// NewEngoRenderer creates a renderer adding its sprites to sink
func NewEngoRenderer(sink SpriteSink, text TextSource) *EngoRenderer {
	return &EngoRenderer{
		text:    text,
		lines:   &pool{sink: sink, z: zLines},
		trail:   &pool{sink: sink, z: zTrail},
		bodies:  &pool{sink: sink, z: zBodies},
		hud:     &pool{sink: sink, z: zHUD},
		overlay: &pool{sink: sink, z: zOverlay},
	}
}

func (r *EngoRenderer) pools() []*pool {
	return []*pool{r.lines, r.trail, r.bodies, r.hud, r.overlay}
}

// Begin implements render.Renderer
func (r *EngoRenderer) Begin(canvas layout.Canvas) {
	r.canvas = canvas
	for _, p := range r.pools() {
		p.begin()
	}
}

// RenderLine implements render.Renderer. Aim lines are dashed.
func (r *EngoRenderer) RenderLine(line render.Line) {
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
		r.segment(r.lines, seg.From, seg.To, width, c)
	}
}

// RenderTrajectory implements render.Renderer
func (r *EngoRenderer) RenderTrajectory(points []physics.Vector2D) {
	for i := 1; i < len(points); i++ {
		r.segment(r.trail, points[i-1], points[i], render.TrailWidth, render.TrailColor)
	}
}

func (r *EngoRenderer) segment(p *pool, from, to physics.Vector2D, width float64, c color.Color) {
	s := p.acquire()
	s.Drawable = common.Rectangle{}
	s.Color = c
	s.SpaceComponent = SegmentSpace(from, to, width)
}

// RenderBody implements render.Renderer
func (r *EngoRenderer) RenderBody(body render.Body) {
	s := r.bodies.acquire()
	s.Drawable = common.Circle{}
	s.Color = render.Fill(body.Kind, body.Highlighted)
	s.SpaceComponent = BodySpace(body.Position, body.Radius)
}

// RenderHUD implements render.Renderer
func (r *EngoRenderer) RenderHUD(hud render.HUD, hit bool) {
	r.textAt(r.hud, render.HUDText(hud), hudMargin, hudMargin, render.TextColor)

	if hit {
		_, w, h := r.text.Text(render.HitText)
		x := float32(r.canvas.Width)/2 - w*hitScale/2
		y := float32(r.canvas.Height)/2 - h*hitScale/2
		s := r.textAt(r.overlay, render.HitText, x, y, render.HitColor)
		s.Scale = engo.Point{X: hitScale, Y: hitScale}
		s.Width, s.Height = w*hitScale, h*hitScale
	}
}

// hitScale enlarges the small bitmap font for the hit overlay
const hitScale = 4

func (r *EngoRenderer) textAt(p *pool, text string, x, y float32, c color.Color) *sprite {
	drawable, w, h := r.text.Text(text)
	s := p.acquire()
	s.Drawable = drawable
	s.Color = c
	s.Scale = engo.Point{X: 1, Y: 1}
	s.SpaceComponent = common.SpaceComponent{
		Position: engo.Point{X: x, Y: y},
		Width:    w,
		Height:   h,
	}
	return s
}

// Present implements render.Renderer
func (r *EngoRenderer) Present() {
	for _, p := range r.pools() {
		p.hideUnused()
	}
}

// SegmentSpace places a rectangle of the given width along from→to. Engo
// rotates a sprite about its top-left corner, so the corner is shifted
// half a width to centre the stroke on the line.
func SegmentSpace(from, to physics.Vector2D, width float64) common.SpaceComponent {
	d := to.Sub(from)
	theta := math.Atan2(d.Y, d.X)
	offset := physics.Vector2D{X: math.Sin(theta), Y: -math.Cos(theta)}.Scale(width / 2)
	corner := from.Add(offset)

	return common.SpaceComponent{
		Position: engo.Point{X: float32(corner.X), Y: float32(corner.Y)},
		Width:    float32(d.Length()),
		Height:   float32(width),
		Rotation: float32(theta * 180 / math.Pi),
	}
}

// BodySpace returns the bounding square of a circle
func BodySpace(center physics.Vector2D, radius float64) common.SpaceComponent {
	return common.SpaceComponent{
		Position: engo.Point{X: float32(center.X - radius), Y: float32(center.Y - radius)},
		Width:    float32(2 * radius),
		Height:   float32(2 * radius),
	}
}
