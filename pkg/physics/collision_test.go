// pkg/physics/collision_test.go
package physics

import (
	"testing"
)

func TestCircle_Collides(t *testing.T) {
	tests := []struct {
		name     string
		circle1  Circle
		circle2  Circle
		expected bool
	}{
		{
			name:     "circles_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 10, Y: 0}, Radius: 5},
			expected: false, // Distance equals sum of radii, collision logic uses <
		},
		{
			name:     "circles_overlapping",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 5, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "circles_same_position",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 3},
			circle2:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 2},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.circle1.Collides(tt.circle2)
			if result != tt.expected {
				t.Errorf("Circle.Collides() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestCircle_Contains(t *testing.T) {
	pick := Circle{Center: Vector2D{X: 100, Y: 100}, Radius: 40}
	if !pick.Contains(Vector2D{X: 130, Y: 100}) {
		t.Error("expected point 30px away to be inside a 40px circle")
	}
	if pick.Contains(Vector2D{X: 140, Y: 100}) {
		t.Error("expected point on the boundary to be outside")
	}
}

func TestWithin(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Vector2D
		threshold float64
		expected  bool
	}{
		{"inside", Vector2D{X: 0, Y: 0}, Vector2D{X: 18, Y: 24}, 30.0001, true},
		{"exactly_at_threshold", Vector2D{X: 0, Y: 0}, Vector2D{X: 18, Y: 24}, 30, false},
		{"outside", Vector2D{X: 0, Y: 0}, Vector2D{X: 31, Y: 0}, 30, false},
		{"same_point", Vector2D{X: 5, Y: 5}, Vector2D{X: 5, Y: 5}, 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Within(tt.a, tt.b, tt.threshold); got != tt.expected {
				t.Errorf("Within() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
