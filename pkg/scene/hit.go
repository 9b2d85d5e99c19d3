package scene

import (
	"time"

	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

// Default hit detection parameters
const (
	DefaultHitThreshold = 30.0
	DefaultHitWindow    = 1500 * time.Millisecond
)

// HitDetector checks projectile-target proximity once per frame
type HitDetector struct {
	Threshold float64
	Window    time.Duration
}

// NewHitDetector creates a detector with the given distance threshold and
// indicator window. Non-positive values fall back to the defaults.
func NewHitDetector(threshold float64, window time.Duration) HitDetector {
	if threshold <= 0 {
		threshold = DefaultHitThreshold
	}
	if window <= 0 {
		window = DefaultHitWindow
	}
	return HitDetector{Threshold: threshold, Window: window}
}

// Observe marks a hit at now when the projectile is closer than the
// threshold, whether or not it has been fired. It reports true only when
// this observation switched the indicator on.
func (d HitDetector) Observe(s *State, now time.Time) bool {
	if !physics.Within(s.Projectile.Position, s.Target.Position, d.Threshold) {
		return false
	}
	wasActive := d.Active(s.LastHit, now)
	s.LastHit = now
	return !wasActive
}

// Active reports whether the indicator is showing at now
func (d HitDetector) Active(last, now time.Time) bool {
	return HitActive(now, last, d.Window)
}

// HitActive reports whether a hit recorded at last is still displayed at
// now. A zero last means no hit has been recorded.
func HitActive(now, last time.Time, window time.Duration) bool {
	return !last.IsZero() && now.Sub(last) < window
}
