// pkg/engine/clock.go
package engine

import "time"

//go:generate go tool mockgen -destination=./mocks/clock_mock.go -package=mocks . Clock

// Clock supplies the wall-clock time the hit indicator is measured against
type Clock interface {
	Now() time.Time
}

// SystemClock is the real clock
type SystemClock struct{}

// Now returns time.Now
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FrameClock advances by a fixed step on every call to Advance. It lets
// headless runs measure the hit window in simulated frames.
type FrameClock struct {
	current time.Time
	step    time.Duration
}

// NewFrameClock creates a clock starting at start that advances by step
func NewFrameClock(start time.Time, step time.Duration) *FrameClock {
	return &FrameClock{current: start, step: step}
}

// Now returns the current simulated time
func (c *FrameClock) Now() time.Time {
	return c.current
}

// Advance moves the clock forward one step
func (c *FrameClock) Advance() {
	c.current = c.current.Add(c.step)
}
