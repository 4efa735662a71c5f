// Package tui provides the Bubble Tea integration for flappy.
// It handles the terminal UI loop, input mapping, the scoreboard and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// the fixed step interval.
func tickCmd(step core.FixedStep) tea.Cmd {
	return tea.Tick(step.Interval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
