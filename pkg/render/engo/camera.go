// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-monkeyhunt/pkg/engine"
	"github.com/opd-ai/go-monkeyhunt/pkg/logging"
)

// CameraSystem keeps the simulation canvas equal to the window. The
// camera itself stays at engo's default so game units map 1:1 to canvas
// pixels.
type CameraSystem struct {
	sim    *engine.Simulation
	logger *logging.Logger

	pending    bool
	width      float64
	height     float64
	lastWidth  float64
	lastHeight float64
}

// NewCameraSystem creates a camera system and subscribes it to window
// resize messages once engo's mailbox exists
func NewCameraSystem(sim *engine.Simulation, logger *logging.Logger) *CameraSystem {
	cs := &CameraSystem{
		sim:        sim,
		logger:     logger,
		lastWidth:  sim.Canvas.Width,
		lastHeight: sim.Canvas.Height,
	}
	if engo.Mailbox != nil {
		engo.Mailbox.Listen(engo.WindowResizeMessage{}.Type(), cs.onMessage)
	}
	return cs
}

func (cs *CameraSystem) onMessage(m engo.Message) {
	msg, ok := m.(engo.WindowResizeMessage)
	if !ok {
		return
	}
	cs.Request(float64(msg.NewWidth), float64(msg.NewHeight))
}

// Request queues a canvas size for the next update. Non-positive sizes,
// such as a minimised window, are ignored.
func (cs *CameraSystem) Request(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	cs.pending = true
	cs.width, cs.height = width, height
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {}

// Update resizes the simulation once per frame at most
func (cs *CameraSystem) Update(dt float32) {
	if !cs.pending {
		return
	}
	cs.pending = false
	if cs.width == cs.lastWidth && cs.height == cs.lastHeight {
		return
	}

	if err := cs.sim.Resize(cs.width, cs.height); err != nil {
		cs.logger.Warn(cs.sim.Context(), "window resize rejected",
			"width", cs.width,
			"height", cs.height,
			"error", err,
		)
		return
	}
	cs.lastWidth, cs.lastHeight = cs.width, cs.height
}
