// Package tui is the terminal front end: a Bubble Tea model that forwards
// keys to a clock.Loop and draws its snapshots, plus an SSH server that
// gives every connection its own game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to pick up a fresh snapshot and redraw.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
