package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-pixels/internal/core"
	"github.com/vovakirdan/snake-pixels/internal/driver"
	"github.com/vovakirdan/snake-pixels/internal/registry"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that feeds terminal events to a driver.
// The driver and presenter are shared pointers, so value copies of the
// model all observe the same game.
type Model struct {
	driver    *driver.Driver
	presenter *TermPresenter
	keys      KeyMap
	help      help.Model
	helpStyle lipgloss.Style
	tickRate  int
	quitting  bool
}

// NewModel creates a model around a driver whose surface presents to p.
func NewModel(d *driver.Driver, p *TermPresenter, tickRate int) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		driver:    d,
		presenter: p,
		keys:      DefaultKeyMap(),
		help:      h,
		helpStyle: helpStyle,
		tickRate:  tickRate,
	}
}

// Init starts the event source and the poll loop.
func (m Model) Init() tea.Cmd {
	if m.driver.Handle(driver.Event{Kind: driver.EventInit}).Stop() {
		return tea.Quit
	}
	return tickCmd(m.tickRate)
}

// Update handles messages and forwards them to the driver.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handle(m.keys.Event(msg), nil)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m.handle(driver.Event{
			Kind:   driver.EventResize,
			Width:  msg.Width,
			Height: msg.Height,
		}, nil)

	case TickMsg:
		return m.handle(driver.Event{Kind: driver.EventPollTick}, tickCmd(m.tickRate))
	}

	return m, nil
}

// handle passes ev to the driver and quits once it says stop.
func (m Model) handle(ev driver.Event, next tea.Cmd) (tea.Model, tea.Cmd) {
	if m.driver.Handle(ev).Stop() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, next
}

// Flow returns the driver's last flow decision.
func (m Model) Flow() driver.Flow {
	return m.driver.Flow()
}

// View renders the last presented frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.presenter.View() + "\n" + m.helpStyle.Render(m.help.View(m.keys))
}

// Backend runs the game in the local terminal.
type Backend struct{}

func init() {
	registry.Register("terminal", func() registry.Backend { return Backend{} })
}

// ID returns the backend identifier.
func (Backend) ID() string { return "terminal" }

// Title returns the backend display name.
func (Backend) Title() string { return "Terminal (half-block pixels)" }

// Run starts the Bubble Tea program on the alternate screen and blocks until
// the game stops.
func (Backend) Run(opts registry.RunOptions) error {
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = terminalSize()
	}

	presenter := NewTermPresenter(nil)
	d, err := driver.Build(opts.Game, rt, presenter, opts.Logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(d, presenter, rt.TickRate),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal program: %w", err)
	}
	return flowError(d)
}

// flowError converts a present failure into the error returned to the caller.
func flowError(d *driver.Driver) error {
	if d.Flow() == driver.FlowPresentFailed {
		return fmt.Errorf("terminal backend: %w", d.Err())
	}
	return nil
}

// terminalSize returns the stdout size, falling back to the defaults.
func terminalSize() (int, int) {
	def := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return def.ScreenW, def.ScreenH
}
