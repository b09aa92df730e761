// Package timer holds the countdown state machine. It owns no goroutines and
// performs no I/O; the TUI driver feeds it tick events and reads it back out
// for rendering, which keeps the transition rules testable without a terminal.
package timer

// Phase represents the countdown lifecycle.
type Phase int

const (
	Starting Phase = iota
	Running
	Completed
	Cancelled
)

// String returns the phase name for log output.
func (p Phase) String() string {
	switch p {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Countdown is the timer state advanced once per tick.
// Invariant: 0 <= Remaining <= Total.
type Countdown struct {
	Total     int
	Remaining int
	Phase     Phase
}

// New returns a countdown of the given total duration in seconds, in the
// Starting phase with the full duration remaining.
func New(totalSeconds int) Countdown {
	return Countdown{Total: totalSeconds, Remaining: totalSeconds, Phase: Starting}
}

// Start moves the countdown into the Running phase. Starting a countdown that
// has already reached a terminal phase is a no-op.
func (c Countdown) Start() Countdown {
	if c.Phase == Starting {
		c.Phase = Running
	}
	return c
}

// Tick advances the countdown by exactly one second. Remaining is clamped at
// zero, and the tick that reaches zero transitions the countdown to Completed.
// Ticks in any phase other than Running are ignored.
func (c Countdown) Tick() Countdown {
	if c.Phase != Running {
		return c
	}
	if c.Remaining > 0 {
		c.Remaining--
	}
	if c.Remaining == 0 {
		c.Phase = Completed
	}
	return c
}

// Cancel moves the countdown to the Cancelled phase. Safe in any phase,
// including before the first tick; a completed countdown stays completed.
func (c Countdown) Cancel() Countdown {
	if c.Phase != Completed {
		c.Phase = Cancelled
	}
	return c
}

// Done reports whether the countdown reached a terminal phase.
func (c Countdown) Done() bool {
	return c.Phase == Completed || c.Phase == Cancelled
}

// Fraction returns the proportion of the total duration already elapsed,
// in [0,1]. A zero total is defined as fraction 0.
func (c Countdown) Fraction() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Total-c.Remaining) / float64(c.Total)
}

// Clock returns the remaining time split into minutes and seconds.
func (c Countdown) Clock() (minutes, seconds int) {
	return c.Remaining / 60, c.Remaining % 60
}
