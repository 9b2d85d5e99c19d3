package scene

import "github.com/opd-ai/go-monkeyhunt/pkg/physics"

// Trajectory is a bounded trail of projectile positions. Once full, each
// new point evicts the oldest.
type Trajectory struct {
	points []physics.Vector2D
	start  int
	size   int
}

// NewTrajectory creates a trail holding at most limit points
func NewTrajectory(limit int) *Trajectory {
	if limit <= 0 {
		limit = DefaultMaxTrajectory
	}
	return &Trajectory{points: make([]physics.Vector2D, limit)}
}

// Append records p, dropping the oldest point when full
func (t *Trajectory) Append(p physics.Vector2D) {
	idx := (t.start + t.size) % len(t.points)
	t.points[idx] = p
	if t.size < len(t.points) {
		t.size++
		return
	}
	t.start = (t.start + 1) % len(t.points)
}

// Points returns the recorded points, oldest first
func (t *Trajectory) Points() []physics.Vector2D {
	out := make([]physics.Vector2D, t.size)
	for i := range out {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}

// Len returns the number of recorded points
func (t *Trajectory) Len() int {
	return t.size
}

// Cap returns the maximum number of points kept
func (t *Trajectory) Cap() int {
	return len(t.points)
}

// Clear drops every point
func (t *Trajectory) Clear() {
	t.start = 0
	t.size = 0
}
