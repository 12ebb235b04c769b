// Package tui provides the Bubble Tea integration for tusk.
// It handles the terminal UI loop, input mapping, and level selection.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 30

// TickMsg drains the queued moves once per tick.
type TickMsg time.Time

// tickInterval returns the delay between ticks. Non-positive rates fall back
// to the default.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
