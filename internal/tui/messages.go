package tui

// Message types for Bubble Tea update loop.

// startedMsg fires once after the start grace delay and begins the countdown.
type startedMsg struct{}

// tickMsg fires every second to advance the countdown by one.
type tickMsg struct{}
