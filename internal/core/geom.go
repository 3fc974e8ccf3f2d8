// Package core provides fundamental types for the snake game: grid vectors,
// colours, abstract keys and the software framebuffer surface.
// It contains no UI dependencies (especially no Bubble Tea or Ebitengine) to
// keep game logic pure and testable.
package core

import "fmt"

// Vec2 is an integer grid position or step. Comparable, so it works as a map key.
type Vec2 struct {
	X, Y int
}

// Unit direction vectors. The grid origin is bottom-left, so Up is +y.
var (
	Right = Vec2{X: 1, Y: 0}
	Left  = Vec2{X: -1, Y: 0}
	Up    = Vec2{X: 0, Y: 1}
	Down  = Vec2{X: 0, Y: -1}
)

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// IsDirection reports whether v is one of the four unit directions.
func (v Vec2) IsDirection() bool {
	return v == Right || v == Left || v == Up || v == Down
}

// String returns "(x, y)".
func (v Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// DirectionName returns "right", "left", "up", "down" or "unknown".
func DirectionName(v Vec2) string {
	switch v {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection is the inverse of DirectionName.
func ParseDirection(name string) (Vec2, bool) {
	switch name {
	case "right":
		return Right, true
	case "left":
		return Left, true
	case "up":
		return Up, true
	case "down":
		return Down, true
	default:
		return Vec2{}, false
	}
}

// InBounds reports whether v lies in [0,w) x [0,h).
func InBounds(v Vec2, w, h int) bool {
	return v.X >= 0 && v.X < w && v.Y >= 0 && v.Y < h
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
