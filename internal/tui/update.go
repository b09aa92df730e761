package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tockdev/tock/internal/timer"
)

// Update implements tea.Model. Tick, resize, and cancel all arrive here on a
// single goroutine, so the countdown has exactly one thread of control.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		// Resize only reflows the next frame; remaining time is untouched.
		m.width, m.height = x.Width, x.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(x, m.keys.Cancel) {
			m.countdown = m.countdown.Cancel()
			return m, tea.Quit
		}
		return m, nil

	case startedMsg:
		m.countdown = m.countdown.Start()
		if m.countdown.Phase != timer.Running {
			// Cancelled during the grace delay; never start ticking.
			return m, nil
		}
		return m, m.tick()

	case tickMsg:
		if m.countdown.Phase != timer.Running {
			// Cancelled between scheduling and delivery; drop the tick.
			return m, nil
		}
		m.countdown = m.countdown.Tick()
		if m.countdown.Done() {
			return m, tea.Quit
		}
		return m, m.tick()
	}

	return m, nil
}
