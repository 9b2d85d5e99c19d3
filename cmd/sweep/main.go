// cmd/sweep/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/opd-ai/go-monkeyhunt/pkg/config"
	"github.com/opd-ai/go-monkeyhunt/pkg/engine"
	"github.com/opd-ai/go-monkeyhunt/pkg/event"
	"github.com/opd-ai/go-monkeyhunt/pkg/logging"
)

// Result is the outcome of one shot in the sweep
type Result struct {
	Preset   string
	Gravity  float64
	Speed    float64
	Hit      bool
	HitFrame uint64
	Closest  float64
}

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), "")

	configPath := flag.String("config", "", "Path to configuration file (defaults when empty)")
	speedList := flag.String("speeds", "10,15,20,25,30", "Comma separated launch speeds")
	frames := flag.Int("frames", 240, "Frames to simulate per shot")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(*configPath); err != nil {
			logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
			os.Exit(1)
		}
	}
	cfg, err := config.LoadConfigFromEnv(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	speeds, err := parseSpeeds(*speedList)
	if err != nil {
		logger.Error(ctx, "Invalid speed list", err, "speeds", *speedList)
		os.Exit(1)
	}

	results, err := Sweep(cfg, speeds, *frames)
	if err != nil {
		logger.Error(ctx, "Sweep failed", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Sweep finished", "shots", len(results))

	if err := writeTable(os.Stdout, results); err != nil {
		logger.Error(ctx, "Failed to write results", err)
		os.Exit(1)
	}
}

func parseSpeeds(list string) ([]float64, error) {
	var speeds []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid speed %q: %w", field, err)
		}
		speeds = append(speeds, v)
	}
	if len(speeds) == 0 {
		return nil, fmt.Errorf("no speeds given")
	}
	return speeds, nil
}

// Sweep fires one shot per gravity preset and speed, each in a fresh
// simulation, and records the first frame the target was hit
func Sweep(base *config.SimulationConfig, speeds []float64, frames int) ([]Result, error) {
	var results []Result
	for _, preset := range base.Physics.Presets {
		for _, speed := range speeds {
			r, err := shoot(base, preset.Name, speed, frames)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
	}
	return results, nil
}

func shoot(base *config.SimulationConfig, preset string, speed float64, frames int) (Result, error) {
	cfg := *base
	cfg.Physics.Presets = append([]config.GravityPreset(nil), base.Physics.Presets...)
	cfg.Controls.Gravity = preset
	cfg.Controls.Speed = speed

	sim, err := engine.NewSimulation(&cfg,
		engine.WithLogger(logging.Discard()),
		engine.WithClock(engine.NewFrameClock(time.Unix(0, 0), time.Second/60)),
	)
	if err != nil {
		return Result{}, fmt.Errorf("preset %s speed %g: %w", preset, speed, err)
	}

	r := Result{Preset: preset, Gravity: sim.Gravity(), Speed: speed, Closest: sim.State.Distance()}
	sim.EventBus.Subscribe(event.TargetHit, func(e event.Event) {
		if hit, ok := e.(*event.HitEvent); ok && !r.Hit {
			r.Hit = true
			r.HitFrame = hit.Frame
		}
	})

	sim.Fire()
	for i := 0; i < frames && !r.Hit; i++ {
		sim.Tick()
		if d := sim.State.Distance(); d < r.Closest {
			r.Closest = d
		}
	}
	return r, nil
}

func writeTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRESET\tGRAVITY\tSPEED\tHIT\tFRAME\tCLOSEST")
	for _, r := range results {
		frame := "-"
		if r.Hit {
			frame = strconv.FormatUint(r.HitFrame, 10)
		}
		fmt.Fprintf(tw, "%s\t%g\t%g\t%v\t%s\t%.1f\n", r.Preset, r.Gravity, r.Speed, r.Hit, frame, r.Closest)
	}
	return tw.Flush()
}
