// Package tui hosts the pinball table in the terminal with Bubble Tea.
// It owns the frame clock, maps keys onto game actions and draws the
// physics world into a character grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per presentation frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given frames per second.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// maxFrameTime caps the time credited to a single frame after a stall.
const maxFrameTime = 0.25

// frameDelta converts two tick timestamps into seconds. A zero previous
// tick yields one nominal frame.
func frameDelta(prev, now time.Time, fps int) float64 {
	if fps <= 0 {
		fps = 60
	}
	if prev.IsZero() {
		return 1.0 / float64(fps)
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxFrameTime {
		return maxFrameTime
	}
	return dt
}
