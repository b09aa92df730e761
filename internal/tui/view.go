package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tockdev/tock/internal/layout"
	"github.com/tockdev/tock/internal/timer"
)

func (m Model) View() string {
	switch m.countdown.Phase {
	case timer.Starting:
		return renderAnnouncement(m.countdown)
	case timer.Completed, timer.Cancelled:
		// The final message is printed after the alt screen is torn down.
		return ""
	default:
	}

	minutes, seconds := m.countdown.Clock()
	return layout.Render(m.countdown.Fraction(), minutes, seconds, m.viewport())
}

// viewport returns the terminal dimensions to render against, falling back to
// 80x24 until the terminal has reported its size.
func (m Model) viewport() layout.Viewport {
	vp := layout.Viewport{Columns: m.width, Rows: m.height}
	if vp.Columns <= 0 {
		vp.Columns = fallbackColumns
	}
	if vp.Rows <= 0 {
		vp.Rows = fallbackRows
	}
	return vp
}

func renderAnnouncement(c timer.Countdown) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	minutes, seconds := c.Clock()
	return fmt.Sprintf("Counting down %s (press q to cancel)\n",
		style.Render(fmt.Sprintf("%02d:%02d", minutes, seconds)))
}
