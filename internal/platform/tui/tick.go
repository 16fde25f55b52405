// Package tui provides the Bubble Tea integration for the gallows game.
// It owns the terminal UI loop, the per-guess countdown, and round
// orchestration; the engine itself never waits or schedules.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per second to drive the guess countdown.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
