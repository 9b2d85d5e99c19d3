// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-monkeyhunt/pkg/layout"
	"github.com/opd-ai/go-monkeyhunt/pkg/logging"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer

// NullRenderer is a Renderer that only logs what it is asked to draw.
type NullRenderer struct {
	logger *logging.Logger
	frames uint64
}

// NewNullRenderer creates a new NullRenderer. A nil logger uses
// logging.NewLogger.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{logger: logger}
}

// Frames returns how many frames have been presented
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}

// Begin implements Renderer.
func (d *NullRenderer) Begin(canvas layout.Canvas) {
	d.logger.Debug(context.Background(), "Begin called",
		"width", canvas.Width,
		"height", canvas.Height,
	)
}

// RenderLine implements Renderer.
func (d *NullRenderer) RenderLine(line Line) {
	d.logger.Debug(context.Background(), "RenderLine called",
		"kind", int(line.Kind),
		"length", line.Length(),
	)
}

// RenderTrajectory implements Renderer.
func (d *NullRenderer) RenderTrajectory(points []physics.Vector2D) {
	d.logger.Debug(context.Background(), "RenderTrajectory called", "points", len(points))
}

// RenderBody implements Renderer.
func (d *NullRenderer) RenderBody(body Body) {
	d.logger.Debug(context.Background(), "RenderBody called",
		"kind", body.Kind.String(),
		"x", body.Position.X,
		"y", body.Position.Y,
		"highlighted", body.Highlighted,
	)
}

// RenderHUD implements Renderer.
func (d *NullRenderer) RenderHUD(hud HUD, hit bool) {
	ctx := context.Background()
	if hit {
		d.logger.Info(ctx, "target hit indicator active", "frame", d.frames)
	}
	d.logger.Debug(ctx, "RenderHUD called",
		"speed", hud.Speed,
		"angle", hud.Angle,
		"gravity", hud.Gravity,
		"fired", hud.Fired,
	)
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.frames++
	d.logger.Debug(context.Background(), "Present called", "frame", d.frames)
}
