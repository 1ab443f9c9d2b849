// Package tui provides the Bubble Tea integration for kickup. It owns
// the terminal loop, tap mapping, the render projection of the world
// snapshot, and the screens around the game itself.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given rate. Ticks are scheduled one at a time, so a slow tick delays
// the next one instead of overlapping it.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
