// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are overlapping
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// Contains reports whether point lies strictly inside the circle
func (c Circle) Contains(point Vector2D) bool {
	return c.Center.Distance(point) < c.Radius
}

// Within reports whether two centers are closer than threshold.
// The bodies' own radii play no part in the test.
func Within(a, b Vector2D, threshold float64) bool {
	return a.Sub(b).LengthSquared() < threshold*threshold
}
