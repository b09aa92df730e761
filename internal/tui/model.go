package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tockdev/tock/internal/timer"
)

// Model is the root Bubble Tea model. It owns the countdown state; the tick
// and resize handlers receive it through Update, never as ambient state, so
// nothing outside this model can mutate the timer.
type Model struct {
	countdown timer.Countdown
	width     int
	height    int

	// keymap for consistent keybindings
	keys keyMap
}

// NewModel constructs a Model counting down from totalSeconds.
func NewModel(totalSeconds int) Model {
	return Model{
		countdown: timer.New(totalSeconds),
		keys:      newKeyMap(),
	}
}

// Countdown exposes the timer state for the final message after the program exits.
func (m Model) Countdown() timer.Countdown {
	return m.countdown
}

// Init implements tea.Model. The countdown does not start immediately: a
// short grace delay lets the announcement be read first.
func (m Model) Init() tea.Cmd {
	return m.startGrace()
}

// startGrace returns a Tea command that waits out the start delay.
func (m Model) startGrace() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(startDelay)
		return startedMsg{}
	}
}

// tick schedules the next countdown tick. Each tick is scheduled
// independently; the period is fixed and not drift-corrected.
func (m Model) tick() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(tickInterval)
		return tickMsg{}
	}
}
