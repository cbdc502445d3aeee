// Package tui provides the Bubble Tea integration for viper.
// It handles the terminal UI loop, input mapping, rendering and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game tick or one menu poll.
// Seq identifies the tick chain that scheduled it.
type TickMsg struct {
	Seq  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a single tick after d.
func tickCmd(seq uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Seq: seq, Time: t}
	})
}
