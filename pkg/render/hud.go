// pkg/render/hud.go
package render

import (
	"fmt"
	"strings"
)

// HelpText lists the keyboard bindings shown under the HUD
const HelpText = "[Space/F] fire  [R] reset  [G] gravity  [H] hunter falls  [M] target falls  [L] guide  [T] trail  [Arrows] speed/angle"

// HUDText formats the HUD panel, one value per line
func HUDText(hud HUD) string {
	state := "ready"
	if hud.Fired {
		state = "fired"
	}

	lines := []string{
		fmt.Sprintf("Speed: %.1f px/frame", hud.Speed),
		fmt.Sprintf("Angle: %.1f°", hud.Angle),
		fmt.Sprintf("Gravity: %s (%g)", hud.Gravity, hud.GravityValue),
		fmt.Sprintf("Aim: %s, %s", hud.Mode, state),
		fmt.Sprintf("Hunter falls: %s  Target falls: %s", onOff(hud.HunterFalls), onOff(hud.TargetFalls)),
		fmt.Sprintf("Guide line: %s  Trail: %s", onOff(hud.ShowGuideLine), onOff(hud.ShowTrajectory)),
		HelpText,
	}
	return strings.Join(lines, "\n")
}

// StatusLine formats the HUD as a single line of text
func StatusLine(hud HUD) string {
	state := "ready"
	if hud.Fired {
		state = "fired"
	}
	return fmt.Sprintf("speed %.1f  angle %.1f°  gravity %s (%g)  aim %s  %s  hunter-falls:%s target-falls:%s",
		hud.Speed, hud.Angle, hud.Gravity, hud.GravityValue, hud.Mode, state,
		onOff(hud.HunterFalls), onOff(hud.TargetFalls))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
