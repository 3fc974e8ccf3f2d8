// Package tui runs the snake game in a terminal with Bubble Tea, locally or
// over SSH, drawing the framebuffer with half-block characters.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the runtime config leaves TickRate unset.
const defaultTickRate = 60

// TickMsg is sent to poll the driver.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
