//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tockdev/tock/internal/layout"
	"github.com/tockdev/tock/internal/timer"
)

// step runs one Update and casts the result back to the concrete model.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

// requireQuit asserts that a command resolves to Bubble Tea's quit message.
func requireQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_StartedMsgBeginsRunning(t *testing.T) {
	t.Parallel()

	m := NewModel(5)
	require.Equal(t, timer.Starting, m.countdown.Phase)

	m, cmd := step(t, m, startedMsg{})
	assert.Equal(t, timer.Running, m.countdown.Phase)
	assert.Equal(t, 5, m.countdown.Remaining)
	assert.NotNil(t, cmd, "first tick must be scheduled")
}

func TestUpdate_ResizeNeverTouchesRemaining(t *testing.T) {
	t.Parallel()

	m := NewModel(10)
	m, _ = step(t, m, startedMsg{})
	m, _ = step(t, m, tickMsg{})
	require.Equal(t, 9, m.countdown.Remaining)

	for i := 0; i < 7; i++ {
		m, _ = step(t, m, tea.WindowSizeMsg{Width: 100 + i, Height: 40})
	}
	assert.Equal(t, 9, m.countdown.Remaining)
	assert.Equal(t, 106, m.width)
	assert.Equal(t, 40, m.height)
}

func TestUpdate_CancelDuringStarting(t *testing.T) {
	t.Parallel()

	m := NewModel(10)
	m, cmd := step(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC}))
	assert.Equal(t, timer.Cancelled, m.countdown.Phase)
	assert.Equal(t, 10, m.countdown.Remaining, "no ticks processed before cancel")
	requireQuit(t, cmd)
}

func TestUpdate_CancelWithQKey(t *testing.T) {
	t.Parallel()

	m := NewModel(10)
	m, _ = step(t, m, startedMsg{})
	m, cmd := step(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}}))
	assert.Equal(t, timer.Cancelled, m.countdown.Phase)
	requireQuit(t, cmd)
}

func TestUpdate_UnboundKeysIgnored(t *testing.T) {
	t.Parallel()

	m := NewModel(10)
	m, _ = step(t, m, startedMsg{})
	m, cmd := step(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{'x'}}))
	assert.Equal(t, timer.Running, m.countdown.Phase)
	assert.Nil(t, cmd)
}

func TestUpdate_GraceDelayAfterCancelNeverStartsTicking(t *testing.T) {
	t.Parallel()

	m := NewModel(10)
	m, _ = step(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC}))

	// The grace-delay message was already in flight when the cancel landed.
	m, cmd := step(t, m, startedMsg{})
	assert.Equal(t, timer.Cancelled, m.countdown.Phase)
	assert.Nil(t, cmd, "no tick scheduled after cancel")
}

func TestUpdate_TickAfterCancelIsDropped(t *testing.T) {
	t.Parallel()

	m := NewModel(10)
	m, _ = step(t, m, startedMsg{})
	m, _ = step(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC}))

	// A tick already in flight when the cancel landed must not reschedule.
	m, cmd := step(t, m, tickMsg{})
	assert.Equal(t, 10, m.countdown.Remaining)
	assert.Nil(t, cmd)
}

func TestUpdate_CountdownToCompletion(t *testing.T) {
	t.Parallel()

	m := NewModel(5)
	m, _ = step(t, m, startedMsg{})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	barWidth := layout.BarWidth(80)
	lastFilled := -1
	var cmd tea.Cmd
	for i, wantRemaining := range []int{4, 3, 2, 1, 0} {
		m, cmd = step(t, m, tickMsg{})
		assert.Equal(t, wantRemaining, m.countdown.Remaining, "tick %d", i+1)

		// Bar fill is non-decreasing across ticks.
		filled := layout.FilledCells(barWidth, m.countdown.Fraction())
		assert.GreaterOrEqual(t, filled, lastFilled, "tick %d", i+1)
		lastFilled = filled
	}

	assert.Equal(t, timer.Completed, m.countdown.Phase)
	requireQuit(t, cmd)
}
