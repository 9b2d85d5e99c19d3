// pkg/render/frame.go
package render

import (
	"image/color"
	"math"

	"github.com/opd-ai/go-monkeyhunt/pkg/entity"
	"github.com/opd-ai/go-monkeyhunt/pkg/layout"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

// LineKind distinguishes the aim preview from the hunter-target guide
type LineKind int

const (
	AimLine LineKind = iota
	GuideLine
)

// Line is a straight segment in canvas pixels
type Line struct {
	Kind LineKind
	From physics.Vector2D
	To   physics.Vector2D
}

// Length returns the segment length
func (l Line) Length() float64 {
	return l.From.Distance(l.To)
}

// Body is the drawable view of one scene body
type Body struct {
	Kind        entity.Kind
	Position    physics.Vector2D
	Radius      float64
	Highlighted bool
}

// HUD is the status text shown with every frame
type HUD struct {
	Speed          float64
	Angle          float64
	Mode           string
	Gravity        string
	GravityValue   float64
	Fired          bool
	HunterFalls    bool
	TargetFalls    bool
	ShowGuideLine  bool
	ShowTrajectory bool
}

// Frame is an immutable snapshot of everything a surface draws
type Frame struct {
	Canvas     layout.Canvas
	Lines      []Line
	Trajectory []physics.Vector2D
	Bodies     []Body
	Hit        bool
	HUD        HUD
}

// Renderer draws frames onto a surface. Calls for one frame arrive in the
// order Begin, lines, trajectory, bodies, HUD, Present.
type Renderer interface {
	Begin(canvas layout.Canvas)
	RenderLine(line Line)
	RenderTrajectory(points []physics.Vector2D)
	RenderBody(body Body)
	RenderHUD(hud HUD, hit bool)
	Present()
}

// Draw sends f to r in drawing order
func Draw(r Renderer, f Frame) {
	r.Begin(f.Canvas)
	for _, line := range f.Lines {
		r.RenderLine(line)
	}
	if len(f.Trajectory) > 0 {
		r.RenderTrajectory(f.Trajectory)
	}
	for _, body := range f.Bodies {
		r.RenderBody(body)
	}
	r.RenderHUD(f.HUD, f.Hit)
	r.Present()
}

// Palette used by every graphical surface
var (
	Background     = color.RGBA{R: 248, G: 250, B: 252, A: 255}
	AimColor       = color.RGBA{R: 255, A: 220}
	GuideColor     = color.RGBA{R: 100, G: 100, B: 100, A: 200}
	TrailColor     = color.RGBA{G: 150, B: 255, A: 180}
	HitColor       = color.RGBA{R: 88, G: 204, B: 2, A: 255}
	TextColor      = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	hunterFill     = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 255}
	hunterDrag     = color.RGBA{R: 0x00, G: 0x99, B: 0xff, A: 255}
	targetFill     = color.RGBA{R: 0xff, G: 0x9f, B: 0x43, A: 255}
	targetDrag     = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 255}
	projectileFill = color.RGBA{R: 0x58, G: 0xcc, B: 0x02, A: 255}
)

// Aim line dash pattern in pixels
const (
	DashOn  = 10.0
	DashOff = 5.0
)

// Stroke widths in pixels
const (
	AimWidth   = 3.0
	GuideWidth = 2.0
	TrailWidth = 4.0
)

// HitText is the overlay shown while the hit indicator is active
const HitText = "HIT!"

// Fill returns the colour a body of kind is painted with
func Fill(kind entity.Kind, highlighted bool) color.RGBA {
	switch kind {
	case entity.Hunter:
		if highlighted {
			return hunterDrag
		}
		return hunterFill
	case entity.Target:
		if highlighted {
			return targetDrag
		}
		return targetFill
	default:
		return projectileFill
	}
}

// LineColor returns the stroke colour and width for a line kind
func LineColor(kind LineKind) (color.RGBA, float64) {
	if kind == AimLine {
		return AimColor, AimWidth
	}
	return GuideColor, GuideWidth
}

// Clip trims l to the canvas rectangle. ok is false when the line misses
// the canvas entirely.
func Clip(l Line, canvas layout.Canvas) (Line, bool) {
	d := l.To.Sub(l.From)
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-d.X, l.From.X},
		{d.X, canvas.Width - l.From.X},
		{-d.Y, l.From.Y},
		{d.Y, canvas.Height - l.From.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return Line{}, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return Line{}, false
		}
	}

	return Line{
		Kind: l.Kind,
		From: l.From.Add(d.Scale(t0)),
		To:   l.From.Add(d.Scale(t1)),
	}, true
}

// Dashes splits l into on-segments following the DashOn/DashOff pattern
func Dashes(l Line) []Line {
	length := l.Length()
	if length == 0 {
		return nil
	}
	dir := l.To.Sub(l.From).Scale(1 / length)

	dashes := make([]Line, 0, int(length/(DashOn+DashOff))+1)
	for start := 0.0; start < length; start += DashOn + DashOff {
		end := math.Min(start+DashOn, length)
		dashes = append(dashes, Line{
			Kind: l.Kind,
			From: l.From.Add(dir.Scale(start)),
			To:   l.From.Add(dir.Scale(end)),
		})
	}
	return dashes
}
