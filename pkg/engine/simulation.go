// pkg/engine/simulation.go
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opd-ai/go-monkeyhunt/pkg/aim"
	"github.com/opd-ai/go-monkeyhunt/pkg/config"
	"github.com/opd-ai/go-monkeyhunt/pkg/entity"
	"github.com/opd-ai/go-monkeyhunt/pkg/event"
	"github.com/opd-ai/go-monkeyhunt/pkg/interaction"
	"github.com/opd-ai/go-monkeyhunt/pkg/layout"
	"github.com/opd-ai/go-monkeyhunt/pkg/logging"
	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
	"github.com/opd-ai/go-monkeyhunt/pkg/render"
	"github.com/opd-ai/go-monkeyhunt/pkg/scene"
	"github.com/opd-ai/go-monkeyhunt/pkg/validation"
)

// Simulation runs one hunter and monkey scene: it owns the scene state,
// applies control changes and commands, and advances the scene one frame
// per Tick. It is not safe for concurrent use; every surface drives it
// from a single loop.
type Simulation struct {
	Config      *config.SimulationConfig
	State       *scene.State
	Canvas      layout.Canvas
	EventBus    *event.Bus
	CurrentTick uint64

	controls   scene.Controls
	mode       aim.Mode
	solver     *aim.Solver
	stepper    physics.Stepper
	integrator *scene.Integrator
	hits       scene.HitDetector
	pointer    *interaction.Controller
	clock      Clock
	logger     *logging.Logger
	ctx        context.Context
}

// Option customises a Simulation
type Option func(*Simulation)

// WithClock replaces the wall clock used for the hit indicator
func WithClock(clock Clock) Option {
	return func(s *Simulation) {
		s.clock = clock
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// WithEventBus publishes simulation events on bus
func WithEventBus(bus *event.Bus) Option {
	return func(s *Simulation) {
		s.EventBus = bus
	}
}

// WithStepper replaces the physics stepper
func WithStepper(stepper physics.Stepper) Option {
	return func(s *Simulation) {
		s.stepper = stepper
	}
}

// NewSimulation creates a simulation from cfg and resets it. A nil cfg
// uses config.DefaultConfig.
func NewSimulation(cfg *config.SimulationConfig, opts ...Option) (*Simulation, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, logging.WrapError(err, "invalid simulation config")
	}
	mode, err := aim.ParseMode(cfg.Aim.Mode)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		Config:   cfg,
		Canvas:   layout.Canvas{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height},
		EventBus: event.NewEventBus(),
		controls: ControlsFromConfig(cfg.Controls),
		mode:     mode,
		solver:   aim.NewSolver(mode),
		hits:     scene.NewHitDetector(cfg.Hit.Threshold, time.Duration(cfg.Hit.DisplayMS)*time.Millisecond),
		pointer:  interaction.NewController(cfg.Interaction.PickRadius),
		clock:    SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewLogger()
	}
	if s.stepper == nil {
		s.stepper = NewStepper(cfg.Physics)
	}

	s.integrator = scene.NewIntegrator(s.stepper)
	s.State = scene.NewState(scene.Options{
		SeparateHunter: cfg.Scene.SeparateHunter,
		MaxTrajectory:  cfg.Trajectory.MaxPoints,
	})
	s.ctx = logging.WithCorrelationID(context.Background(), "")

	s.reset()
	s.syncAngle()

	s.logger.Info(s.ctx, "simulation created",
		"width", s.Canvas.Width,
		"height", s.Canvas.Height,
		"aim_mode", mode.String(),
		"gravity", s.controls.Gravity,
	)
	return s, nil
}

// NewStepper builds the physics stepper named by p.Engine. Gravity is set
// by the scene before every step.
func NewStepper(p config.PhysicsConfig) physics.Stepper {
	if p.Engine == config.EngineWorld {
		return &physics.World{
			GravityScale: p.GravityScale,
			DeltaMS:      p.DeltaMS,
		}
	}
	space := physics.NewSpace(0)
	space.GravityScale = p.GravityScale
	space.DeltaMS = p.DeltaMS
	return space
}

// ControlsFromConfig converts file configuration into scene controls
func ControlsFromConfig(c config.ControlsConfig) scene.Controls {
	return scene.Controls{
		Target:         layout.Percent{X: c.TargetX, Y: c.TargetY},
		Launch:         layout.Percent{X: c.LaunchX, Y: c.LaunchY},
		Speed:          c.Speed,
		AngleDegrees:   c.Angle,
		Gravity:        strings.ToLower(strings.TrimSpace(c.Gravity)),
		HunterFalls:    c.HunterFalls,
		TargetFalls:    c.TargetFalls,
		ShowGuideLine:  c.ShowGuideLine,
		ShowTrajectory: c.ShowTrajectory,
	}
}

// Context returns the context carrying this simulation's correlation ID
func (s *Simulation) Context() context.Context {
	return s.ctx
}

// Controls returns a copy of the current controls
func (s *Simulation) Controls() scene.Controls {
	return s.controls
}

// Mode returns the aim mode in effect
func (s *Simulation) Mode() aim.Mode {
	return s.mode
}

// Fired reports whether the projectile has been launched since the last reset
func (s *Simulation) Fired() bool {
	return s.State.Fired
}

// Gravity returns the vertical gravity currently applied
func (s *Simulation) Gravity() float64 {
	return s.State.GravityY
}

// Dragging returns the handle currently held by the pointer
func (s *Simulation) Dragging() interaction.Dragging {
	return s.pointer.Dragging()
}

// HitActive reports whether the hit indicator is showing now
func (s *Simulation) HitActive() bool {
	return s.hits.Active(s.State.LastHit, s.clock.Now())
}

// Reset rebuilds the scene from the current controls
func (s *Simulation) Reset() {
	s.reset()
	s.logger.Debug(s.ctx, "scene reset")
}

func (s *Simulation) reset() {
	s.State.GravityY = s.presetValue(s.controls.Gravity)
	s.State.Reset(s.Canvas, s.controls)
	s.EventBus.Publish(event.NewSceneEvent(event.SceneReset, s, s.Canvas.Width, s.Canvas.Height))
}

// syncAngle keeps the displayed angle in line with the body positions.
// It only has an effect in direction mode and before firing.
func (s *Simulation) syncAngle() {
	if s.State.Fired {
		return
	}
	s.controls.AngleDegrees = s.solver.SyncAngle(s.State.LaunchPoint(), s.State.Target.Position, s.controls.AngleDegrees)
}

func (s *Simulation) presetValue(name string) float64 {
	value, _ := s.Config.Physics.Preset(name)
	return value
}

// applyControls rebuilds an unfired scene after a control change. A fired
// scene keeps running; the new values take effect at the next reset.
func (s *Simulation) applyControls(resync bool) {
	if s.State.Fired {
		return
	}
	s.reset()
	if resync {
		s.syncAngle()
	}
}

// SetControls replaces every control at once. In direction mode the angle
// stays derived from the positions.
func (s *Simulation) SetControls(c scene.Controls) error {
	c.Gravity = strings.ToLower(strings.TrimSpace(c.Gravity))
	if _, ok := s.Config.Physics.Preset(c.Gravity); !ok {
		return fmt.Errorf("unknown gravity preset %q", c.Gravity)
	}
	if err := validation.ValidateSpeed(c.Speed); err != nil {
		return err
	}
	if err := validation.ValidateFinite("angle", c.AngleDegrees); err != nil {
		return err
	}
	if err := validatePercent("target", c.Target); err != nil {
		return err
	}
	if err := validatePercent("launch", c.Launch); err != nil {
		return err
	}
	if s.mode == aim.Direction {
		c.AngleDegrees = s.controls.AngleDegrees
	}
	c.Target = clampPercent(c.Target, layout.TargetBounds)
	c.Launch = clampPercent(c.Launch, layout.LaunchBounds)

	s.controls = c
	s.State.GravityY = s.presetValue(c.Gravity)
	s.applyControls(true)
	return nil
}

func clampPercent(p layout.Percent, b layout.Bounds) layout.Percent {
	return layout.Percent{X: b.X.Clamp(p.X), Y: b.Y.Clamp(p.Y)}
}

// SetTargetPercent moves the target, clamped to its allowed range
func (s *Simulation) SetTargetPercent(x, y float64) error {
	if err := validatePercent("target", layout.Percent{X: x, Y: y}); err != nil {
		return err
	}
	s.controls.Target = clampPercent(layout.Percent{X: x, Y: y}, layout.TargetBounds)
	s.applyControls(true)
	return nil
}

// SetLaunchPercent moves the launch point, clamped to its allowed range
func (s *Simulation) SetLaunchPercent(x, y float64) error {
	if err := validatePercent("launch", layout.Percent{X: x, Y: y}); err != nil {
		return err
	}
	s.controls.Launch = clampPercent(layout.Percent{X: x, Y: y}, layout.LaunchBounds)
	s.applyControls(true)
	return nil
}

func validatePercent(field string, p layout.Percent) error {
	if err := validation.ValidateFinite(field+".x", p.X); err != nil {
		return err
	}
	return validation.ValidateFinite(field+".y", p.Y)
}

// SetSpeed sets the launch speed in pixels per frame
func (s *Simulation) SetSpeed(speed float64) error {
	if err := validation.ValidateSpeed(speed); err != nil {
		return err
	}
	s.controls.Speed = speed
	s.applyControls(false)
	return nil
}

// SetAngle sets the launch angle in degrees above the horizontal. In
// direction mode the angle always follows the body positions, so the value
// is validated and otherwise ignored.
func (s *Simulation) SetAngle(degrees float64) error {
	if err := validation.ValidateFinite("angle", degrees); err != nil {
		return err
	}
	if s.mode == aim.Direction {
		return nil
	}
	s.controls.AngleDegrees = degrees
	s.applyControls(false)
	return nil
}

// SetGravity selects a gravity preset. The new value applies immediately,
// even mid-flight, without resetting the scene.
func (s *Simulation) SetGravity(preset string) error {
	name := strings.ToLower(strings.TrimSpace(preset))
	value, ok := s.Config.Physics.Preset(name)
	if !ok {
		s.logger.Warn(s.ctx, "unknown gravity preset", "preset", preset)
		return fmt.Errorf("unknown gravity preset %q", preset)
	}

	s.controls.Gravity = name
	s.State.GravityY = value
	s.EventBus.Publish(event.NewGravityEvent(s, name, value))
	s.logger.Debug(s.ctx, "gravity changed", "preset", name, "value", value)
	return nil
}

// SetHunterFalls sets whether the hunter drops when the shot is fired
func (s *Simulation) SetHunterFalls(falls bool) {
	s.controls.HunterFalls = falls
	s.applyControls(false)
}

// SetTargetFalls sets whether the target drops when the shot is fired
func (s *Simulation) SetTargetFalls(falls bool) {
	s.controls.TargetFalls = falls
	s.applyControls(false)
}

// SetShowGuideLine toggles the hunter-target guide line
func (s *Simulation) SetShowGuideLine(show bool) {
	s.controls.ShowGuideLine = show
}

// SetShowTrajectory toggles trail recording and display
func (s *Simulation) SetShowTrajectory(show bool) {
	s.controls.ShowTrajectory = show
}

// Fire launches the projectile. It reports false and changes nothing when
// the shot was already fired or the launch direction is undefined.
func (s *Simulation) Fire() bool {
	if s.State.Fired {
		return false
	}

	launch := s.State.LaunchPoint()
	velocity, ok := s.solver.Velocity(launch, s.State.Target.Position, s.controls.AngleDegrees, s.controls.Speed)
	if !ok {
		s.logger.Debug(s.ctx, "fire ignored: launch point and target coincide")
		return false
	}

	s.State.Fired = true
	s.State.ShotID = uuid.NewString()
	s.pointer.Release()
	s.integrator.Release(s.State, velocity, s.controls.HunterFalls, s.controls.TargetFalls)

	s.EventBus.Publish(event.NewShotEvent(s, s.State.ShotID, launch, velocity))
	s.logger.Info(s.ctx, "projectile fired",
		"shot_id", s.State.ShotID,
		"vx", velocity.X,
		"vy", velocity.Y,
		"gravity", s.State.GravityY,
	)
	return true
}

// Resize changes the canvas extent and resets the scene
func (s *Simulation) Resize(width, height float64) error {
	if err := validation.ValidateCanvas(width, height); err != nil {
		return err
	}

	s.Canvas = layout.Canvas{Width: width, Height: height}
	s.reset()
	s.syncAngle()

	s.EventBus.Publish(event.NewSceneEvent(event.CanvasResized, s, width, height))
	s.logger.Debug(s.ctx, "canvas resized", "width", width, "height", height)
	return nil
}

// Press starts a drag when the pointer lands on the launch point or target
func (s *Simulation) Press(pointer physics.Vector2D) interaction.Dragging {
	held := s.pointer.Press(pointer, s.State.LaunchPoint(), s.State.Target.Position, s.State.Fired)
	if held != interaction.None {
		s.EventBus.Publish(event.NewDragEvent(event.DragStarted, s, held.String()))
	}
	return held
}

// Drag moves the held body to the pointer, clamped to its allowed range,
// and re-aims. It reports false when nothing moved.
func (s *Simulation) Drag(pointer physics.Vector2D) bool {
	move, ok := s.pointer.Drag(pointer, s.Canvas, s.State.Fired)
	if !ok {
		return false
	}

	position := s.Canvas.Point(move.Position)
	switch move.Handle {
	case interaction.Launch:
		s.controls.Launch = move.Position
		s.State.MoveLaunch(position)
	case interaction.Target:
		s.controls.Target = move.Position
		s.State.MoveTarget(position)
	}
	s.syncAngle()
	return true
}

// Release ends the current drag
func (s *Simulation) Release() {
	if held := s.pointer.Release(); held != interaction.None {
		s.EventBus.Publish(event.NewDragEvent(event.DragEnded, s, held.String()))
	}
}

// Tick advances the scene one frame: bodies are stepped first, then the
// hit detector and the trail observe the new positions.
func (s *Simulation) Tick() {
	s.integrator.Step(s.State)

	now := s.clock.Now()
	if s.hits.Observe(s.State, now) {
		s.EventBus.Publish(event.NewHitEvent(s, s.State.ShotID, s.CurrentTick, s.State.Distance(), s.State.Projectile.Position))
		s.logger.Info(s.ctx, "target hit",
			"shot_id", s.State.ShotID,
			"tick", s.CurrentTick,
			"distance", s.State.Distance(),
		)
	}

	if s.State.Fired && s.controls.ShowTrajectory {
		s.State.Trajectory.Append(s.State.Projectile.Position)
	}
	s.CurrentTick++
}

// Frame returns a snapshot of everything a surface needs to draw
func (s *Simulation) Frame() render.Frame {
	launch := s.State.LaunchPoint()
	target := s.State.Target.Position

	var lines []render.Line
	if !s.State.Fired {
		if preview, ok := s.solver.Preview(launch, target, s.controls.AngleDegrees, s.Canvas); ok {
			lines = append(lines, render.Line{Kind: render.AimLine, From: preview.From, To: preview.To})
		}
	}
	if s.controls.ShowGuideLine {
		if guide, ok := aim.GuideLine(launch, target, s.Canvas); ok {
			lines = append(lines, render.Line{Kind: render.GuideLine, From: guide.From, To: guide.To})
		}
	}

	var trail []physics.Vector2D
	if s.controls.ShowTrajectory {
		trail = s.State.Trajectory.Points()
	}

	dragging := s.pointer.Dragging()
	bodies := make([]render.Body, 0, 3)
	for _, b := range s.State.Bodies() {
		bodies = append(bodies, render.Body{
			Kind:        b.Kind,
			Position:    b.Position,
			Radius:      b.Radius,
			Highlighted: s.highlighted(b.Kind, dragging),
		})
	}

	return render.Frame{
		Canvas:     s.Canvas,
		Lines:      lines,
		Trajectory: trail,
		Bodies:     bodies,
		Hit:        s.HitActive(),
		HUD: render.HUD{
			Speed:          s.controls.Speed,
			Angle:          s.controls.AngleDegrees,
			Mode:           s.mode.String(),
			Gravity:        s.controls.Gravity,
			GravityValue:   s.State.GravityY,
			Fired:          s.State.Fired,
			HunterFalls:    s.controls.HunterFalls,
			TargetFalls:    s.controls.TargetFalls,
			ShowGuideLine:  s.controls.ShowGuideLine,
			ShowTrajectory: s.controls.ShowTrajectory,
		},
	}
}

func (s *Simulation) highlighted(kind entity.Kind, dragging interaction.Dragging) bool {
	switch kind {
	case entity.Hunter:
		return dragging == interaction.Launch
	case entity.Target:
		return dragging == interaction.Target
	default:
		return dragging == interaction.Launch && s.State.Hunter == nil
	}
}

// Render draws the current frame onto r
func (s *Simulation) Render(r render.Renderer) {
	render.Draw(r, s.Frame())
}
