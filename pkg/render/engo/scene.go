// pkg/render/engo/scene.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-monkeyhunt/pkg/engine"
	"github.com/opd-ai/go-monkeyhunt/pkg/logging"
	"github.com/opd-ai/go-monkeyhunt/pkg/render"
)

// SceneType is the engo scene name
const SceneType = "HunterScene"

// HunterScene shows a simulation in an engo window
type HunterScene struct {
	sim    *engine.Simulation
	logger *logging.Logger

	world    *ecs.World
	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
}

// NewHunterScene creates a new scene for sim
func NewHunterScene(sim *engine.Simulation, logger *logging.Logger) *HunterScene {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &HunterScene{
		sim:    sim,
		logger: logger,
	}
}

// Type returns the scene type (required by Engo)
func (scene *HunterScene) Type() string {
	return SceneType
}

// Preload is called before the scene starts (required by Engo). The only
// asset is the built-in bitmap font, so nothing is loaded from disk.
func (scene *HunterScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *HunterScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		scene.logger.Error(scene.sim.Context(), "engo updater is not an ecs world", nil)
		return
	}
	scene.world = world

	common.SetBackground(render.Background)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)
	scene.renderer = NewEngoRenderer(renderSystem, NewAssetManager())

	SetupInputBindings()
	scene.input = NewInputSystem(scene.sim)
	world.AddSystem(scene.input)

	scene.camera = NewCameraSystem(scene.sim, scene.logger)
	world.AddSystem(scene.camera)

	world.AddSystem(&SimulationSystem{Simulation: scene.sim, Renderer: scene.renderer})

	scene.logger.Info(scene.sim.Context(), "engo scene ready",
		"width", scene.sim.Canvas.Width,
		"height", scene.sim.Canvas.Height,
	)
}

// Exit is called when the scene is exiting
func (scene *HunterScene) Exit() {
	scene.logger.Info(scene.sim.Context(), "engo scene exiting", "ticks", scene.sim.CurrentTick)
}

// SimulationSystem advances the simulation once per engo frame and draws it
type SimulationSystem struct {
	Simulation *engine.Simulation
	Renderer   render.Renderer
}

// Remove satisfies the ecs.System interface
func (s *SimulationSystem) Remove(basic ecs.BasicEntity) {}

// Update ticks and renders one frame
func (s *SimulationSystem) Update(dt float32) {
	s.Simulation.Tick()
	s.Simulation.Render(s.Renderer)
}

// Run opens an engo window and blocks until it closes
func Run(sim *engine.Simulation, title string, logger *logging.Logger) {
	engo.Run(engo.RunOptions{
		Title:  title,
		Width:  int(sim.Canvas.Width),
		Height: int(sim.Canvas.Height),
		VSync:  true,
	}, NewHunterScene(sim, logger))
}
