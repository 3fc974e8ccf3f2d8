package snake

import (
	"slices"

	"github.com/vovakirdan/snake-pixels/internal/core"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Steps     uint64
	Head      core.Vec2
	Tail      []core.Vec2
	Food      []core.Vec2 // Sorted by row, then column
	Direction core.Vec2
	Outcome   Outcome
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	food := make([]core.Vec2, 0, len(g.food))
	for p := range g.food {
		food = append(food, p)
	}
	slices.SortFunc(food, func(a, b core.Vec2) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	return Snapshot{
		Steps:     g.steps,
		Head:      g.head,
		Tail:      slices.Clone(g.tail),
		Food:      food,
		Direction: g.dir,
		Outcome:   g.outcome,
	}
}
