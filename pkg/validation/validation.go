// Package validation checks numeric settings before they reach the scene.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Limits for values read from configuration files and the environment
const (
	MaxCanvasExtent = 16384
	MaxSpeed        = 1000
	MaxFrameRate    = 240
	MaxPresetName   = 32
)

// Sentinel errors wrapped by the validators
var (
	ErrNotFinite  = errors.New("value is not finite")
	ErrOutOfRange = errors.New("value out of range")
	ErrEmpty      = errors.New("value is empty")
)

// ValidateFinite rejects NaN and infinities
func ValidateFinite(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s: %w", field, ErrNotFinite)
	}
	return nil
}

// ValidateRange checks that value lies inside [min, max]
func ValidateRange(field string, value, min, max float64) error {
	if err := ValidateFinite(field, value); err != nil {
		return err
	}
	if value < min || value > max {
		return fmt.Errorf("%s: %v not in [%v, %v]: %w", field, value, min, max, ErrOutOfRange)
	}
	return nil
}

// ValidatePositive checks that value is finite and strictly greater than zero
func ValidatePositive(field string, value float64) error {
	if err := ValidateFinite(field, value); err != nil {
		return err
	}
	if value <= 0 {
		return fmt.Errorf("%s: %v must be positive: %w", field, value, ErrOutOfRange)
	}
	return nil
}

// ValidateCanvas checks a canvas size in pixels
func ValidateCanvas(width, height float64) error {
	return errors.Join(
		ValidateRange("canvas width", width, 1, MaxCanvasExtent),
		ValidateRange("canvas height", height, 1, MaxCanvasExtent),
	)
}

// ValidateSpeed checks a launch speed in pixels per frame
func ValidateSpeed(speed float64) error {
	return ValidateRange("speed", speed, 0, MaxSpeed)
}

// ValidateFrameRate checks a tick rate in frames per second
func ValidateFrameRate(fps int) error {
	if fps < 1 || fps > MaxFrameRate {
		return fmt.Errorf("frame rate: %d not in [1, %d]: %w", fps, MaxFrameRate, ErrOutOfRange)
	}
	return nil
}

// ValidatePresetName checks and normalizes a gravity preset name
func ValidatePresetName(name string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return "", fmt.Errorf("preset name: %w", ErrEmpty)
	}
	if len(trimmed) > MaxPresetName {
		return "", fmt.Errorf("preset name too long: %d characters (max %d)", len(trimmed), MaxPresetName)
	}
	for _, r := range trimmed {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return "", fmt.Errorf("preset name %q contains invalid characters", name)
		}
	}
	return trimmed, nil
}
