package core

// Key is an abstract key code, translated from backend-specific key events.
// The driver only needs to tell the four navigation keys and the exit key apart.
type Key int

const (
	KeyOther  Key = iota
	KeyUp         // Up arrow, W, K
	KeyDown       // Down arrow, S, J
	KeyLeft       // Left arrow, A, H
	KeyRight      // Right arrow, D, L
	KeyEscape     // Esc - exit the game
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEscape:
		return "Escape"
	default:
		return "Other"
	}
}

// Direction returns the grid step for a navigation key.
// The second result is false for keys that do not steer.
func (k Key) Direction() (Vec2, bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	default:
		return Vec2{}, false
	}
}
