package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/opd-ai/go-monkeyhunt/pkg/config"
	"github.com/opd-ai/go-monkeyhunt/pkg/engine"
	"github.com/opd-ai/go-monkeyhunt/pkg/logging"
)

func TestLoadConfiguration_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfiguration(context.Background(), logging.Discard(), filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("loadConfiguration() error = %v", err)
	}
	if cfg.Canvas != config.DefaultConfig().Canvas {
		t.Errorf("canvas = %+v, want defaults", cfg.Canvas)
	}
}

func TestLoadConfiguration_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hunter.yaml")
	if err := os.WriteFile(path, []byte("controls:\n  speed: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvGravity, "low")

	cfg, err := loadConfiguration(context.Background(), logging.Discard(), path)
	if err != nil {
		t.Fatalf("loadConfiguration() error = %v", err)
	}
	if cfg.Controls.Speed != 12 {
		t.Errorf("speed = %v, want 12 from the file", cfg.Controls.Speed)
	}
	if cfg.Controls.Gravity != "low" {
		t.Errorf("gravity = %q, want low from the environment", cfg.Controls.Gravity)
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	applyFlags(cfg, config.RendererHeadless, 1000, 0)

	if cfg.Render.Renderer != config.RendererHeadless {
		t.Errorf("renderer = %q", cfg.Render.Renderer)
	}
	if cfg.Canvas.Width != 1000 || cfg.Canvas.Height != 600 {
		t.Errorf("canvas = %+v, want 1000x600", cfg.Canvas)
	}
}

func TestRunHeadless(t *testing.T) {
	tests := []struct {
		name        string
		targetFalls bool
		fire        bool
		want        int
	}{
		{"falling target is hit", true, true, 1},
		{"no shot no hit", true, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Controls.TargetFalls = tt.targetFalls
			clock := engine.NewFrameClock(time.Unix(0, 0), time.Second/60)
			sim, err := engine.NewSimulation(cfg, engine.WithLogger(logging.Discard()), engine.WithClock(clock))
			if err != nil {
				t.Fatalf("NewSimulation() error = %v", err)
			}

			if got := runHeadless(sim, clock, logging.Discard(), 120, tt.fire); got != tt.want {
				t.Errorf("runHeadless() = %d hits, want %d", got, tt.want)
			}
		})
	}
}

func TestRun_LogsEachHitOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerTo(&buf, slog.LevelDebug)

	cfg := config.DefaultConfig()
	cfg.Controls.TargetFalls = true
	cfg.Render.Renderer = config.RendererHeadless

	if err := run(context.Background(), logger, cfg, 120, true); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	hitRecords := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(strings.ToLower(line), `"msg":"target hit"`) {
			hitRecords++
		}
	}
	if hitRecords != 1 {
		t.Errorf("got %d target hit records, want 1:\n%s", hitRecords, buf.String())
	}
}
