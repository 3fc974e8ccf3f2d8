// Package snake implements the snake game state machine: a fixed-tick
// simulation on a small grid that renders one pixel per cell.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-pixels/internal/config"
	"github.com/vovakirdan/snake-pixels/internal/core"
)

// fpsReportInterval throttles the frame-rate log line.
const fpsReportInterval = time.Second

// Outcome describes why the game is (or is not) over.
type Outcome int

const (
	OutcomeRunning   Outcome = iota
	OutcomeCollision         // Hit a wall or the snake's own body
	OutcomeBoardFull         // No room left to place food
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeCollision:
		return "collision"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Game implements the snake state machine.
type Game struct {
	rng     *rand.Rand
	logger  *log.Logger
	palette config.Palette

	tick        time.Duration
	foodTick    time.Duration
	nextUpdate  time.Time
	nextFood    time.Time
	fpsReportAt time.Time

	width  int
	height int

	// Snake state
	dir  core.Vec2   // Pending direction, last write wins
	head core.Vec2
	tail []core.Vec2 // tail[0] is the cell nearest the head
	food map[core.Vec2]struct{}

	outcome Outcome
	steps   uint64
}

// New creates a game from validated constants. A zero seed picks a time-based one.
func New(cfg config.SnakeConfig, seed int64, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Palette.Parse()
	if err != nil {
		return nil, err
	}
	dir, _ := core.ParseDirection(cfg.Start.Direction)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tail := make([]core.Vec2, len(cfg.Start.Tail))
	for i, p := range cfg.Start.Tail {
		tail[i] = p.Vec2()
	}

	g := &Game{
		rng:      rand.New(rand.NewSource(seed)),
		logger:   logger,
		palette:  palette,
		tick:     cfg.Timing.Tick(),
		foodTick: cfg.Timing.Food(),
		width:    cfg.Grid.Width,
		height:   cfg.Grid.Height,
		dir:      dir,
		head:     cfg.Start.Head.Vec2(),
		tail:     tail,
		food:     make(map[core.Vec2]struct{}),
	}
	g.Start(time.Now())
	return g, nil
}

// Start arms the simulation and food deadlines relative to now.
func (g *Game) Start(now time.Time) {
	g.nextUpdate = now.Add(g.tick)
	g.nextFood = now.Add(g.foodTick)
	g.fpsReportAt = now
}

// Width returns the grid width in cells.
func (g *Game) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Game) Height() int {
	return g.height
}

// Outcome returns the current game outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Over reports whether the game has terminated.
func (g *Game) Over() bool {
	return g.outcome != OutcomeRunning
}

// Len returns the snake length including the head.
func (g *Game) Len() int {
	return len(g.tail) + 1
}

// AdvanceIfDue runs whatever timed actions are due at now: one movement step
// when the tick deadline has passed, then one food spawn attempt when the
// food deadline has passed or the board has no food. It returns true once the
// game has terminated.
func (g *Game) AdvanceIfDue(now time.Time) bool {
	if g.Over() {
		return true
	}

	if now.After(g.nextUpdate) {
		if g.Step() {
			return true
		}
		g.nextUpdate = now.Add(g.tick)
	}

	if len(g.food) == 0 || now.After(g.nextFood) {
		if g.SpawnFood() {
			return true
		}
		g.nextFood = now.Add(g.foodTick)
	}

	return false
}

// Step moves the snake one cell in the pending direction.
// It returns true and leaves the snake untouched on a collision.
func (g *Game) Step() bool {
	newHead := g.head.Add(g.dir)

	if !core.InBounds(newHead, g.width, g.height) || g.hitsBody(newHead) {
		g.outcome = OutcomeCollision
		return true
	}

	if _, ok := g.food[newHead]; ok {
		g.tail = append(g.tail, core.Vec2{}) // Placeholder, overwritten by the shift
		delete(g.food, newHead)
	}

	for i := len(g.tail) - 1; i > 0; i-- {
		g.tail[i] = g.tail[i-1]
	}
	if len(g.tail) > 0 {
		g.tail[0] = g.head
	}
	g.head = newHead
	g.steps++
	return false
}

// hitsBody checks the tail except its last cell, which is vacated this tick.
func (g *Game) hitsBody(p core.Vec2) bool {
	if len(g.tail) == 0 {
		return false
	}
	for _, seg := range g.tail[:len(g.tail)-1] {
		if seg == p {
			return true
		}
	}
	return false
}

// SpawnFood places one food cell on a random free cell.
// It returns true without placing anything when the board is saturated.
func (g *Game) SpawnFood() bool {
	total := g.width * g.height
	if len(g.tail)+len(g.food)+2 >= total {
		g.outcome = OutcomeBoardFull
		return true
	}

	for {
		idx := g.rng.Intn(total)
		pos := core.Vec2{X: idx % g.width, Y: idx / g.width}
		if g.isFree(pos) {
			g.food[pos] = struct{}{}
			return false
		}
	}
}

// isFree reports whether p holds neither food nor any part of the snake.
func (g *Game) isFree(p core.Vec2) bool {
	if p == g.head {
		return false
	}
	if _, ok := g.food[p]; ok {
		return false
	}
	for _, seg := range g.tail {
		if seg == p {
			return false
		}
	}
	return true
}

// HandleDirectionalInput overwrites the pending direction. Reversing into the
// body is not rejected here; the next Step reports it as a collision.
// Vectors that are not unit directions are ignored so dir is never zero.
func (g *Game) HandleDirectionalInput(d core.Vec2) {
	if !d.IsDirection() {
		return
	}
	g.dir = d
}

// RenderInto draws the board into dst, one pixel per cell, and logs the
// surface frame rate at most once per second.
func (g *Game) RenderInto(dst *core.Surface, now time.Time) {
	dst.Clear(g.palette.Background)
	dst.SetPixel(g.head.X, g.head.Y, g.palette.Head)
	for _, seg := range g.tail {
		dst.SetPixel(seg.X, seg.Y, g.palette.Tail)
	}
	for pos := range g.food {
		dst.SetPixel(pos.X, pos.Y, g.palette.Food)
	}

	if now.After(g.fpsReportAt) {
		g.logger.Info("frame rate", "fps", dst.FPS())
		g.fpsReportAt = now.Add(fpsReportInterval)
	}
}

// DebugState returns a one-line description of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("steps=%d head=%v dir=%s len=%d food=%d outcome=%s",
		g.steps, g.head, core.DirectionName(g.dir), g.Len(), len(g.food), g.outcome)
}
