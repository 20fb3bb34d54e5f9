// Package tui runs Hop Square in a terminal with Bubble Tea: the game loop,
// the menu, the rules and scoreboard screens, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hopsquare/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(config.TickDuration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
