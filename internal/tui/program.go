package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/tockdev/tock/internal/timer"
)

// Run starts the Bubble Tea countdown program and blocks until it finishes.
// The program runs on the alternate screen with the cursor hidden; both are
// restored on exit, after which the completion or cancellation message is
// written to stdout. Completion rings the terminal bell exactly once.
func Run(totalSeconds int) error {
	model := NewModel(totalSeconds)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Silence external logs (WARN/ERRO) during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	final, err := p.Run()
	logrus.SetOutput(prevOut)

	msg, err := resolveOutcome(final, err)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, msg)
	return nil
}

// resolveOutcome maps the program result to the final message. A real SIGINT
// never reaches Update: the runtime delivers it as an interrupt error from
// Run, so it is folded into the Cancelled outcome here. Only a ctrl+c
// keypress in raw mode takes the key-handler route.
func resolveOutcome(final tea.Model, err error) (string, error) {
	m, ok := final.(Model)
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			c := timer.Countdown{Phase: timer.Cancelled}
			if ok {
				c = m.Countdown().Cancel()
			}
			logrus.Debugf("countdown interrupted with %d/%d seconds remaining", c.Remaining, c.Total)
			return finalMessage(c), nil
		}
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("unexpected final model type %T", final)
	}

	c := m.Countdown()
	logrus.Debugf("countdown finished in phase %s with %d/%d seconds remaining",
		c.Phase, c.Remaining, c.Total)
	return finalMessage(c), nil
}

// finalMessage renders the terminal-phase message, including the alert byte
// on completion.
func finalMessage(c timer.Countdown) string {
	if c.Phase == timer.Completed {
		done := lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true).Render("Time is up!")
		return done + "\a"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render("Countdown cancelled.")
}
