// Package tui provides the Bubble Tea integration for zsweep.
// It handles the drill session loop, replay viewer, stats screen and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockMsg refreshes the session timer.
type ClockMsg time.Time

// clockCmd returns a Bubble Tea command that sends a ClockMsg after interval.
func clockCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}
