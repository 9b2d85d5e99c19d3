// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-monkeyhunt/pkg/aim"
	"github.com/opd-ai/go-monkeyhunt/pkg/layout"
	"github.com/opd-ai/go-monkeyhunt/pkg/validation"
)

// SimulationConfig contains configuration for a hunter and monkey scene
type SimulationConfig struct {
	Canvas      CanvasConfig      `json:"canvas" yaml:"canvas"`
	Controls    ControlsConfig    `json:"controls" yaml:"controls"`
	Aim         AimConfig         `json:"aim" yaml:"aim"`
	Physics     PhysicsConfig     `json:"physics" yaml:"physics"`
	Hit         HitConfig         `json:"hit" yaml:"hit"`
	Trajectory  TrajectoryConfig  `json:"trajectory" yaml:"trajectory"`
	Interaction InteractionConfig `json:"interaction" yaml:"interaction"`
	Scene       SceneConfig       `json:"scene" yaml:"scene"`
	Render      RenderConfig      `json:"render" yaml:"render"`
}

// CanvasConfig is the initial drawable area in pixels
type CanvasConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// ControlsConfig holds the initial values of the user-facing controls
type ControlsConfig struct {
	TargetX        float64 `json:"targetX" yaml:"targetX"`
	TargetY        float64 `json:"targetY" yaml:"targetY"`
	LaunchX        float64 `json:"launchX" yaml:"launchX"`
	LaunchY        float64 `json:"launchY" yaml:"launchY"`
	Speed          float64 `json:"speed" yaml:"speed"`
	Angle          float64 `json:"angle" yaml:"angle"`
	Gravity        string  `json:"gravity" yaml:"gravity"`
	HunterFalls    bool    `json:"hunterFalls" yaml:"hunterFalls"`
	TargetFalls    bool    `json:"targetFalls" yaml:"targetFalls"`
	ShowGuideLine  bool    `json:"showGuideLine" yaml:"showGuideLine"`
	ShowTrajectory bool    `json:"showTrajectory" yaml:"showTrajectory"`
}

// AimConfig selects how the launch direction is determined
type AimConfig struct {
	Mode string `json:"mode" yaml:"mode"`
}

// GravityPreset is one selectable gravity setting
type GravityPreset struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// PhysicsConfig contains physics-related configuration
type PhysicsConfig struct {
	Engine       string          `json:"engine" yaml:"engine"`
	GravityScale float64         `json:"gravityScale" yaml:"gravityScale"`
	DeltaMS      float64         `json:"deltaMs" yaml:"deltaMs"`
	Presets      []GravityPreset `json:"presets" yaml:"presets"`
}

// Physics engines accepted by PhysicsConfig.Engine
const (
	EngineChipmunk = "chipmunk"
	EngineWorld    = "world"
)

// HitConfig controls proximity detection and the hit overlay
type HitConfig struct {
	Threshold float64 `json:"threshold" yaml:"threshold"`
	DisplayMS int     `json:"displayMs" yaml:"displayMs"`
}

// TrajectoryConfig bounds the recorded trail
type TrajectoryConfig struct {
	MaxPoints int `json:"maxPoints" yaml:"maxPoints"`
}

// InteractionConfig controls pointer picking
type InteractionConfig struct {
	PickRadius float64 `json:"pickRadius" yaml:"pickRadius"`
}

// SceneConfig selects which bodies exist
type SceneConfig struct {
	// SeparateHunter models the hunter as its own body co-located with
	// the projectile. When false the projectile alone marks the launch point.
	SeparateHunter bool `json:"separateHunter" yaml:"separateHunter"`
}

// RenderConfig selects the rendering surface
type RenderConfig struct {
	Renderer  string `json:"renderer" yaml:"renderer"`
	FrameRate int    `json:"frameRate" yaml:"frameRate"`
	Title     string `json:"title" yaml:"title"`
}

// Renderer names accepted by RenderConfig.Renderer
const (
	RendererEngo     = "engo"
	RendererEbiten   = "ebiten"
	RendererTerminal = "terminal"
	RendererHeadless = "headless"
)

// Format identifies a config file encoding
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the encoding from the file extension
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadConfig loads a configuration from a JSON or YAML file. Fields missing
// from the file keep their default values.
func LoadConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch FormatFor(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file, using YAML for .yaml/.yml
// paths and JSON otherwise.
func SaveConfig(config *SimulationConfig, path string) error {
	var (
		data []byte
		err  error
	)
	switch FormatFor(path) {
	case FormatYAML:
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default scene configuration
func DefaultConfig() *SimulationConfig {
	return &SimulationConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Controls: ControlsConfig{
			TargetX:        70,
			TargetY:        30,
			LaunchX:        10,
			LaunchY:        80,
			Speed:          20,
			Angle:          45,
			Gravity:        "standard",
			HunterFalls:    false,
			TargetFalls:    false,
			ShowGuideLine:  true,
			ShowTrajectory: true,
		},
		Aim: AimConfig{
			Mode: aim.Direction.String(),
		},
		Physics: PhysicsConfig{
			Engine:       EngineChipmunk,
			GravityScale: 0.001,
			DeltaMS:      1000.0 / 60.0,
			Presets: []GravityPreset{
				{Name: "standard", Value: 1},
				{Name: "low", Value: 0.17},
				{Name: "zero", Value: 0},
				{Name: "negative", Value: -1},
			},
		},
		Hit: HitConfig{
			Threshold: 30,
			DisplayMS: 1500,
		},
		Trajectory: TrajectoryConfig{
			MaxPoints: 100,
		},
		Interaction: InteractionConfig{
			PickRadius: 40,
		},
		Scene: SceneConfig{
			SeparateHunter: true,
		},
		Render: RenderConfig{
			Renderer:  RendererEngo,
			FrameRate: 60,
			Title:     "Hunter and Monkey",
		},
	}
}

// Preset returns the gravity value registered under name
func (p PhysicsConfig) Preset(name string) (float64, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, preset := range p.Presets {
		if preset.Name == key {
			return preset.Value, true
		}
	}
	return 0, false
}

// PresetNames returns the preset names in declaration order
func (p PhysicsConfig) PresetNames() []string {
	names := make([]string, len(p.Presets))
	for i, preset := range p.Presets {
		names[i] = preset.Name
	}
	return names
}

// NextPreset returns the preset after current, wrapping around
func (p PhysicsConfig) NextPreset(current string) string {
	if len(p.Presets) == 0 {
		return current
	}
	for i, preset := range p.Presets {
		if preset.Name == current {
			return p.Presets[(i+1)%len(p.Presets)].Name
		}
	}
	return p.Presets[0].Name
}

// Validate checks the configuration for values the scene cannot use
func (c *SimulationConfig) Validate() error {
	var errs []error

	errs = append(errs, validation.ValidateCanvas(c.Canvas.Width, c.Canvas.Height))

	errs = append(errs,
		validation.ValidateRange("controls.targetX", c.Controls.TargetX, layout.TargetBounds.X.Min, layout.TargetBounds.X.Max),
		validation.ValidateRange("controls.targetY", c.Controls.TargetY, layout.TargetBounds.Y.Min, layout.TargetBounds.Y.Max),
		validation.ValidateRange("controls.launchX", c.Controls.LaunchX, layout.LaunchBounds.X.Min, layout.LaunchBounds.X.Max),
		validation.ValidateRange("controls.launchY", c.Controls.LaunchY, layout.LaunchBounds.Y.Min, layout.LaunchBounds.Y.Max),
		validation.ValidateSpeed(c.Controls.Speed),
		validation.ValidateFinite("controls.angle", c.Controls.Angle),
	)

	if _, err := aim.ParseMode(c.Aim.Mode); err != nil {
		errs = append(errs, err)
	}

	switch c.Physics.Engine {
	case EngineChipmunk, EngineWorld:
	default:
		errs = append(errs, fmt.Errorf("physics.engine: unknown engine %q", c.Physics.Engine))
	}
	errs = append(errs,
		validation.ValidatePositive("physics.gravityScale", c.Physics.GravityScale),
		validation.ValidatePositive("physics.deltaMs", c.Physics.DeltaMS),
	)
	if len(c.Physics.Presets) == 0 {
		errs = append(errs, errors.New("physics.presets: at least one gravity preset is required"))
	}
	seen := make(map[string]bool, len(c.Physics.Presets))
	for i, preset := range c.Physics.Presets {
		name, err := validation.ValidatePresetName(preset.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("physics.presets[%d]: %w", i, err))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("physics.presets[%d]: duplicate preset %q", i, name))
		}
		seen[name] = true
		c.Physics.Presets[i].Name = name
		errs = append(errs, validation.ValidateFinite(fmt.Sprintf("physics.presets[%d].value", i), preset.Value))
	}
	if _, ok := c.Physics.Preset(c.Controls.Gravity); !ok {
		errs = append(errs, fmt.Errorf("controls.gravity: unknown preset %q", c.Controls.Gravity))
	}

	errs = append(errs,
		validation.ValidatePositive("hit.threshold", c.Hit.Threshold),
		validation.ValidatePositive("hit.displayMs", float64(c.Hit.DisplayMS)),
		validation.ValidatePositive("trajectory.maxPoints", float64(c.Trajectory.MaxPoints)),
		validation.ValidatePositive("interaction.pickRadius", c.Interaction.PickRadius),
		validation.ValidateFrameRate(c.Render.FrameRate),
	)

	switch c.Render.Renderer {
	case RendererEngo, RendererEbiten, RendererTerminal, RendererHeadless:
	default:
		errs = append(errs, fmt.Errorf("render.renderer: unknown renderer %q", c.Render.Renderer))
	}

	return errors.Join(errs...)
}
