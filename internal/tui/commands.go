package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameCmd schedules the next animation frame.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// transitionDoneCmd schedules the end of a navigation phase.
func transitionDoneCmd(d time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return transitionDoneMsg{seq: seq}
	})
}
