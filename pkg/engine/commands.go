// pkg/engine/commands.go
package engine

import (
	"math"
	"unicode"

	"github.com/opd-ai/go-monkeyhunt/pkg/validation"
)

// Command is a discrete user action shared by every input surface
type Command int

const (
	CommandNone Command = iota
	CommandFire
	CommandReset
	CommandCycleGravity
	CommandToggleHunterFalls
	CommandToggleTargetFalls
	CommandToggleGuideLine
	CommandToggleTrajectory
	CommandSpeedUp
	CommandSpeedDown
	CommandAngleUp
	CommandAngleDown
	CommandQuit
)

// SpeedStep and AngleStep are the increments applied by the arrow keys
const (
	SpeedStep = 1.0
	AngleStep = 1.0
)

var commandNames = map[Command]string{
	CommandNone:              "none",
	CommandFire:              "fire",
	CommandReset:             "reset",
	CommandCycleGravity:      "cycle-gravity",
	CommandToggleHunterFalls: "toggle-hunter-falls",
	CommandToggleTargetFalls: "toggle-target-falls",
	CommandToggleGuideLine:   "toggle-guide-line",
	CommandToggleTrajectory:  "toggle-trajectory",
	CommandSpeedUp:           "speed-up",
	CommandSpeedDown:         "speed-down",
	CommandAngleUp:           "angle-up",
	CommandAngleDown:         "angle-down",
	CommandQuit:              "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// CommandForRune maps a printable key to its command. Letters are case
// insensitive; arrows and escape are mapped by each surface.
func CommandForRune(r rune) Command {
	switch unicode.ToLower(r) {
	case ' ', 'f':
		return CommandFire
	case 'r':
		return CommandReset
	case 'g':
		return CommandCycleGravity
	case 'h':
		return CommandToggleHunterFalls
	case 'm':
		return CommandToggleTargetFalls
	case 'l':
		return CommandToggleGuideLine
	case 't':
		return CommandToggleTrajectory
	case 'q':
		return CommandQuit
	}
	return CommandNone
}

// Apply runs cmd against the simulation. It returns false once the user
// asked to quit.
func (s *Simulation) Apply(cmd Command) bool {
	switch cmd {
	case CommandFire:
		s.Fire()
	case CommandReset:
		s.Reset()
	case CommandCycleGravity:
		_ = s.SetGravity(s.Config.Physics.NextPreset(s.controls.Gravity))
	case CommandToggleHunterFalls:
		s.SetHunterFalls(!s.controls.HunterFalls)
	case CommandToggleTargetFalls:
		s.SetTargetFalls(!s.controls.TargetFalls)
	case CommandToggleGuideLine:
		s.SetShowGuideLine(!s.controls.ShowGuideLine)
	case CommandToggleTrajectory:
		s.SetShowTrajectory(!s.controls.ShowTrajectory)
	case CommandSpeedUp:
		_ = s.SetSpeed(math.Min(s.controls.Speed+SpeedStep, validation.MaxSpeed))
	case CommandSpeedDown:
		_ = s.SetSpeed(math.Max(s.controls.Speed-SpeedStep, 0))
	case CommandAngleUp:
		_ = s.SetAngle(s.controls.AngleDegrees + AngleStep)
	case CommandAngleDown:
		_ = s.SetAngle(s.controls.AngleDegrees - AngleStep)
	case CommandQuit:
		return false
	}
	return true
}
