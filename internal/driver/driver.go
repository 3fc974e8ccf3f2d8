// Package driver translates event-source events into calls on the snake game
// and the framebuffer surface. It is the only glue between a backend
// (terminal, window, SSH session) and the core.
package driver

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-pixels/internal/config"
	"github.com/vovakirdan/snake-pixels/internal/core"
	"github.com/vovakirdan/snake-pixels/internal/games/snake"
)

// EventKind tags an Event.
type EventKind int

const (
	EventInit           EventKind = iota // Event source started
	EventPollTick                        // Run update, render and present
	EventRedraw                          // Render and present without updating
	EventResize                          // Physical output size changed
	EventCloseRequested                  // Window or session asked to close
	EventKeyPressed
	EventKeyReleased
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventInit:
		return "init"
	case EventPollTick:
		return "poll_tick"
	case EventRedraw:
		return "redraw"
	case EventResize:
		return "resize"
	case EventCloseRequested:
		return "close_requested"
	case EventKeyPressed:
		return "key_pressed"
	case EventKeyReleased:
		return "key_released"
	default:
		return "unknown"
	}
}

// Event is one tagged event from an event source.
// Width and Height are set for EventResize; Key for key events.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
	Key    core.Key
}

// Flow tells the event source whether to keep running.
type Flow int

const (
	FlowContinue      Flow = iota
	FlowExit               // Close request or exit key
	FlowGameOver           // The game terminated
	FlowPresentFailed      // The presenter returned an error
)

// Stop reports whether the loop must end.
func (f Flow) Stop() bool {
	return f != FlowContinue
}

// String returns a short name for the flow.
func (f Flow) String() string {
	switch f {
	case FlowContinue:
		return "continue"
	case FlowExit:
		return "exit"
	case FlowGameOver:
		return "game_over"
	case FlowPresentFailed:
		return "present_failed"
	default:
		return "unknown"
	}
}

// Driver owns one game and its surface for the lifetime of a loop.
// It is not safe for concurrent use; each event source drives it from a
// single goroutine.
type Driver struct {
	game    *snake.Game
	surface *core.Surface
	logger  *log.Logger
	now     func() time.Time

	flow Flow
	err  error
}

// New creates a driver around an existing game and surface.
func New(game *snake.Game, surface *core.Surface, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		game:    game,
		surface: surface,
		logger:  logger,
		now:     time.Now,
	}
}

// Build wires config, game, surface and presenter into a ready driver.
// The surface has one logical pixel per grid cell.
func Build(cfg config.SnakeConfig, rt core.RuntimeConfig, p core.Presenter, logger *log.Logger) (*Driver, error) {
	game, err := snake.New(cfg, rt.Seed, logger)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	surface, err := core.NewSurface(game.Width(), game.Height(), p)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	if rt.ScreenW > 0 && rt.ScreenH > 0 {
		surface.ResizeSurface(rt.ScreenW, rt.ScreenH)
	}
	return New(game, surface, logger), nil
}

// Game returns the driven game.
func (d *Driver) Game() *snake.Game {
	return d.game
}

// Surface returns the framebuffer surface.
func (d *Driver) Surface() *core.Surface {
	return d.surface
}

// Flow returns the last flow decision.
func (d *Driver) Flow() Flow {
	return d.flow
}

// Err returns the presentation error that stopped the loop, if any.
func (d *Driver) Err() error {
	return d.err
}

// Handle processes one event. Once a stopping flow has been returned every
// later event returns the same flow without touching the game.
func (d *Driver) Handle(ev Event) Flow {
	if d.flow.Stop() {
		return d.flow
	}

	switch ev.Kind {
	case EventInit:
		d.logger.Info("initializing events")
		d.game.Start(d.now())

	case EventPollTick:
		now := d.now()
		if d.game.AdvanceIfDue(now) {
			d.logger.Info("game over",
				"outcome", d.game.Outcome(),
				"length", d.game.Len(),
			)
			d.logger.Debug("final state", "state", d.game.DebugState())
			return d.stop(FlowGameOver)
		}
		return d.draw(now)

	case EventRedraw:
		d.logger.Debug("redraw requested")
		return d.draw(d.now())

	case EventResize:
		d.logger.Info("window resized", "width", ev.Width, "height", ev.Height)
		d.surface.ResizeSurface(ev.Width, ev.Height)

	case EventCloseRequested:
		d.logger.Info("close requested")
		return d.stop(FlowExit)

	case EventKeyPressed:
		return d.keyPressed(ev.Key)

	case EventKeyReleased:
		d.logger.Debug("key released", "key", ev.Key)

	default:
		d.logger.Debug("event ignored", "kind", ev.Kind)
	}

	return d.flow
}

// keyPressed maps navigation keys to direction changes and the exit key to a stop.
func (d *Driver) keyPressed(k core.Key) Flow {
	if k == core.KeyEscape {
		d.logger.Info("exit key pressed")
		return d.stop(FlowExit)
	}
	if dir, ok := k.Direction(); ok {
		d.logger.Debug("direction", "key", k, "dir", core.DirectionName(dir))
		d.game.HandleDirectionalInput(dir)
	}
	return d.flow
}

// draw renders the game and presents the surface.
func (d *Driver) draw(now time.Time) Flow {
	d.game.RenderInto(d.surface, now)
	if err := d.surface.Present(); err != nil {
		d.logger.Error("pixels error", "err", err)
		d.err = err
		return d.stop(FlowPresentFailed)
	}
	return d.flow
}

func (d *Driver) stop(f Flow) Flow {
	d.logger.Debug("setting control flow", "flow", f)
	d.flow = f
	return f
}
