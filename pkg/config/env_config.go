// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables that override file configuration
const (
	EnvCanvasWidth    = "HUNTER_CANVAS_WIDTH"
	EnvCanvasHeight   = "HUNTER_CANVAS_HEIGHT"
	EnvGravity        = "HUNTER_GRAVITY"
	EnvAimMode        = "HUNTER_AIM_MODE"
	EnvSpeed          = "HUNTER_SPEED"
	EnvHunterFalls    = "HUNTER_HUNTER_FALLS"
	EnvTargetFalls    = "HUNTER_TARGET_FALLS"
	EnvShowTrajectory = "HUNTER_SHOW_TRAJECTORY"
	EnvRenderer       = "HUNTER_RENDERER"
	EnvFrameRate      = "HUNTER_FRAME_RATE"
	EnvPhysicsEngine  = "HUNTER_PHYSICS_ENGINE"
)

// LoadConfigFromEnv returns a copy of base with HUNTER_* environment
// variables applied on top. A nil base starts from DefaultConfig.
func LoadConfigFromEnv(base *SimulationConfig) (*SimulationConfig, error) {
	config := DefaultConfig()
	if base != nil {
		copied := *base
		copied.Physics.Presets = append([]GravityPreset(nil), base.Physics.Presets...)
		config = &copied
	}

	var err error
	if config.Canvas.Width, err = getEnvFloat(EnvCanvasWidth, config.Canvas.Width); err != nil {
		return nil, err
	}
	if config.Canvas.Height, err = getEnvFloat(EnvCanvasHeight, config.Canvas.Height); err != nil {
		return nil, err
	}
	if config.Controls.Speed, err = getEnvFloat(EnvSpeed, config.Controls.Speed); err != nil {
		return nil, err
	}
	if config.Controls.HunterFalls, err = getEnvBool(EnvHunterFalls, config.Controls.HunterFalls); err != nil {
		return nil, err
	}
	if config.Controls.TargetFalls, err = getEnvBool(EnvTargetFalls, config.Controls.TargetFalls); err != nil {
		return nil, err
	}
	if config.Controls.ShowTrajectory, err = getEnvBool(EnvShowTrajectory, config.Controls.ShowTrajectory); err != nil {
		return nil, err
	}
	if config.Render.FrameRate, err = getEnvInt(EnvFrameRate, config.Render.FrameRate); err != nil {
		return nil, err
	}
	config.Controls.Gravity = getEnvString(EnvGravity, config.Controls.Gravity)
	config.Aim.Mode = getEnvString(EnvAimMode, config.Aim.Mode)
	config.Render.Renderer = getEnvString(EnvRenderer, config.Render.Renderer)
	config.Physics.Engine = getEnvString(EnvPhysicsEngine, config.Physics.Engine)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid environment configuration: %w", err)
	}
	return config, nil
}

func getEnvString(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return i, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
