// cmd/hunter/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-monkeyhunt/pkg/config"
	"github.com/opd-ai/go-monkeyhunt/pkg/engine"
	"github.com/opd-ai/go-monkeyhunt/pkg/event"
	"github.com/opd-ai/go-monkeyhunt/pkg/logging"
	"github.com/opd-ai/go-monkeyhunt/pkg/render"
	ebitenrender "github.com/opd-ai/go-monkeyhunt/pkg/render/ebiten"
	engorender "github.com/opd-ai/go-monkeyhunt/pkg/render/engo"
)

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), "")

	configPath := flag.String("config", "hunter.yaml", "Path to configuration file (.json, .yaml or .yml)")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "", "Renderer: engo, ebiten, terminal or headless (overrides config)")
	width := flag.Float64("width", 0, "Canvas width in pixels (overrides config)")
	height := flag.Float64("height", 0, "Canvas height in pixels (overrides config)")
	frames := flag.Int("frames", 300, "Frames to simulate (headless only)")
	fire := flag.Bool("fire", true, "Fire on the first frame (headless only)")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	cfg, err := loadConfiguration(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		os.Exit(1)
	}
	applyFlags(cfg, *renderer, *width, *height)

	if err := run(ctx, logger, cfg, *frames, *fire); err != nil {
		logger.Error(ctx, "Simulation failed", err,
			"renderer", cfg.Render.Renderer,
		)
		os.Exit(1)
	}
}

// loadConfiguration reads path when it exists, falls back to the defaults
// otherwise, and overlays HUNTER_* environment variables
func loadConfiguration(ctx context.Context, logger *logging.Logger, path string) (*config.SimulationConfig, error) {
	cfg := config.DefaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
	} else {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}
	return config.LoadConfigFromEnv(cfg)
}

func applyFlags(cfg *config.SimulationConfig, renderer string, width, height float64) {
	if renderer != "" {
		cfg.Render.Renderer = renderer
	}
	if width > 0 {
		cfg.Canvas.Width = width
	}
	if height > 0 {
		cfg.Canvas.Height = height
	}
}

func run(ctx context.Context, logger *logging.Logger, cfg *config.SimulationConfig, frames int, fire bool) error {
	// headless runs measure the hit window in simulated frames
	clock := engine.NewFrameClock(time.Unix(0, 0), time.Second/time.Duration(cfg.Render.FrameRate))
	opts := []engine.Option{engine.WithLogger(logger)}
	if cfg.Render.Renderer == config.RendererHeadless {
		opts = append(opts, engine.WithClock(clock))
	}

	sim, err := engine.NewSimulation(cfg, opts...)
	if err != nil {
		return err
	}

	switch cfg.Render.Renderer {
	case config.RendererEngo:
		engorender.Run(sim, cfg.Render.Title, logger)
		return nil
	case config.RendererEbiten:
		return ebitenrender.Run(sim, cfg.Render.Title, logger)
	case config.RendererTerminal:
		return runTerminal(ctx, sim, cfg.Render.FrameRate)
	default:
		runHeadless(sim, clock, logger, frames, fire)
		return nil
	}
}

func runTerminal(ctx context.Context, sim *engine.Simulation, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "failed to initialise terminal screen")
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = engine.NewLoop(sim, screen, fps).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runHeadless steps the simulation without a window, optionally firing on
// the first frame, and returns how many times the hit indicator came on
func runHeadless(sim *engine.Simulation, clock *engine.FrameClock, logger *logging.Logger, frames int, fire bool) int {
	ctx := sim.Context()
	null := render.NewNullRenderer(logger)

	hits := 0
	sub := sim.EventBus.Subscribe(event.TargetHit, func(event.Event) { hits++ })
	defer sub.Cancel()

	if fire && !sim.Fire() {
		logger.Warn(ctx, "Shot not fired: launch point and target coincide")
	}

	for i := 0; i < frames; i++ {
		sim.Tick()
		sim.Render(null)
		clock.Advance()
	}

	logger.Info(ctx, "Headless run finished",
		"frames", null.Frames(),
		"hits", hits,
		"projectile_x", sim.State.Projectile.Position.X,
		"projectile_y", sim.State.Projectile.Position.Y,
	)
	return hits
}
