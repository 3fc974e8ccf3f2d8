package core

// RuntimeConfig contains platform settings passed to a backend at startup.
// None of these change the game rules; grid size and timings live in the
// embedded game config.
type RuntimeConfig struct {
	ScreenW  int   // Physical width (terminal columns or window pixels)
	ScreenH  int   // Physical height (terminal rows or window pixels)
	TickRate int   // Event-source polls per second (default 60)
	Seed     int64 // RNG seed for food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time
	}
}
