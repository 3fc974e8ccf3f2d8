package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/snake-pixels/internal/driver"
	"github.com/vovakirdan/snake-pixels/internal/registry"
)

// windowScale is the initial window size in screen pixels per logical pixel.
const windowScale = 32

// hostGame adapts a driver to the ebiten.Game interface.
type hostGame struct {
	driver    *driver.Driver
	presenter *Presenter

	started bool
	outW    int
	outH    int
	keys    []ebiten.Key
}

func newHostGame(d *driver.Driver, p *Presenter) *hostGame {
	return &hostGame{driver: d, presenter: p}
}

// Update feeds window events to the driver, then polls it once.
func (g *hostGame) Update() error {
	if !g.started {
		g.started = true
		if g.send(driver.Event{Kind: driver.EventInit}) {
			return ebiten.Termination
		}
	}

	if ebiten.IsWindowBeingClosed() {
		if g.send(driver.Event{Kind: driver.EventCloseRequested}) {
			return ebiten.Termination
		}
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if g.send(driver.Event{Kind: driver.EventKeyPressed, Key: translateKey(k)}) {
			return ebiten.Termination
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if g.send(driver.Event{Kind: driver.EventKeyReleased, Key: translateKey(k)}) {
			return ebiten.Termination
		}
	}

	if g.send(driver.Event{Kind: driver.EventPollTick}) {
		return ebiten.Termination
	}
	return nil
}

// send passes ev to the driver and reports whether the loop must stop.
func (g *hostGame) send(ev driver.Event) bool {
	return g.driver.Handle(ev).Stop()
}

// Draw uploads the last presented frame.
func (g *hostGame) Draw(screen *ebiten.Image) {
	w, h := g.presenter.Size()
	b := screen.Bounds()
	if w != b.Dx() || h != b.Dy() {
		return
	}
	screen.WritePixels(g.presenter.Pixels())
}

// Layout reports physical size changes and keeps the logical resolution.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		g.driver.Handle(driver.Event{
			Kind:   driver.EventResize,
			Width:  outsideWidth,
			Height: outsideHeight,
		})
	}
	s := g.driver.Surface()
	return s.Width(), s.Height()
}

// Backend runs the game in a desktop window.
type Backend struct{}

func init() {
	registry.Register("window", func() registry.Backend { return Backend{} })
}

// ID returns the backend identifier.
func (Backend) ID() string { return "window" }

// Title returns the backend display name.
func (Backend) Title() string { return "Desktop window (Ebitengine)" }

// Run opens the window and blocks until the game stops or the window closes.
func (Backend) Run(opts registry.RunOptions) error {
	rt := opts.Runtime
	rt.ScreenW = opts.Game.Grid.Width * windowScale
	rt.ScreenH = opts.Game.Grid.Height * windowScale

	presenter := NewPresenter()
	d, err := driver.Build(opts.Game, rt, presenter, opts.Logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("snakepix")
	ebiten.SetWindowSize(rt.ScreenW, rt.ScreenH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}

	if err := ebiten.RunGame(newHostGame(d, presenter)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	if d.Flow() == driver.FlowPresentFailed {
		return fmt.Errorf("window backend: %w", d.Err())
	}
	return nil
}
