// Package tui provides the Bubble Tea front-end for Limitless: the local and
// SSH game loop, input mapping, the variant picker and the scoreboard.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen ties the tick to the model that scheduled it, so a chain left
// behind by a finished game never drives the next one.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a fresh tick chain id.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
