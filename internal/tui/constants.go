package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	tickSeconds       = 1
	startDelaySeconds = 1

	// fallbackColumns/fallbackRows are used until the terminal reports its
	// real size (and when it cannot).
	fallbackColumns = 80
	fallbackRows    = 24

	tickInterval = time.Duration(tickSeconds) * time.Second
	startDelay   = time.Duration(startDelaySeconds) * time.Second
)
