// Package layout composes countdown frames as plain text. It is purely
// functional: given an elapsed fraction, the remaining clock time, and the
// current viewport it returns the full frame, and nothing here touches the
// terminal or holds state between calls.
package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Package-level constants to avoid magic numbers and improve readability.
const (
	// barMargin is reserved on each side of the progress bar for centering.
	barMargin = 4
	// barMinWidth is the floor for the usable bar width on narrow terminals.
	barMinWidth = 10
	// clockReservedRows keeps room above the digit block for the bar and spacer.
	clockReservedRows = 4
	// clockBaseWidth estimates the unscaled width of a MM:SS digit block
	// (five 5-wide glyphs plus four 2-wide separators, rounded up).
	clockBaseWidth = 35

	barFilledGlyph = "█"
	barEmptyGlyph  = "░"
	cellGlyph      = "█"
)

// Viewport holds the terminal dimensions a frame is rendered against.
type Viewport struct {
	Columns int
	Rows    int
}

// Render composes the complete frame for one moment of the countdown: the
// centered progress bar, a blank spacer line, and the scaled digit readout.
func Render(elapsedFraction float64, minutes, seconds int, vp Viewport) string {
	var b strings.Builder
	b.WriteString(renderBar(elapsedFraction, vp.Columns))
	b.WriteString("\n\n")
	b.WriteString(renderClock(minutes, seconds, vp))
	return b.String()
}

// BarWidth returns the usable bar width for a terminal of the given column
// count, excluding the enclosing brackets.
func BarWidth(columns int) int {
	w := columns - 2*barMargin - 2
	if w < barMinWidth {
		w = barMinWidth
	}
	return w
}

// FilledCells returns how many bar cells are filled for the given elapsed
// fraction, clamped so slightly out-of-range fractions never overflow the bar.
func FilledCells(barWidth int, elapsedFraction float64) int {
	filled := int(math.Round(float64(barWidth) * elapsedFraction))
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return filled
}

func renderBar(elapsedFraction float64, columns int) string {
	width := BarWidth(columns)
	filled := FilledCells(width, elapsedFraction)
	bar := "[" + strings.Repeat(barFilledGlyph, filled) + strings.Repeat(barEmptyGlyph, width-filled) + "]"
	return center(bar, columns)
}

// Scale returns the largest integer glyph scale that fits both the available
// rows (minus the bar and spacer) and the available columns. Never below 1,
// so even a 1x1 viewport renders something.
func Scale(vp Viewport) int {
	s := (vp.Rows - clockReservedRows) / glyphRows
	if byWidth := vp.Columns / clockBaseWidth; byWidth < s {
		s = byWidth
	}
	if s < 1 {
		s = 1
	}
	return s
}

// renderClock draws the zero-padded MM:SS readout as a block of scaled
// glyphs, each row centered within the viewport.
func renderClock(minutes, seconds int, vp Viewport) string {
	text := fmt.Sprintf("%02d:%02d", minutes, seconds)
	s := Scale(vp)
	sep := strings.Repeat(" ", 2*s)

	rows := make([]string, 0, glyphRows*s)
	for row := 0; row < glyphRows*s; row++ {
		cells := make([]string, 0, len(text))
		for _, ch := range text {
			cells = append(cells, expandGlyphRow(lookupGlyph(ch)[row/s], s))
		}
		rows = append(rows, center(strings.Join(cells, sep), vp.Columns))
	}
	return strings.Join(rows, "\n")
}

// expandGlyphRow replicates each cell of a base glyph row s times horizontally.
func expandGlyphRow(row string, s int) string {
	var b strings.Builder
	b.Grow(len(row) * s)
	for _, cell := range row {
		if cell == '#' {
			b.WriteString(strings.Repeat(cellGlyph, s))
		} else {
			b.WriteString(strings.Repeat(" ", s))
		}
	}
	return b.String()
}

// center left-pads a line so it sits in the middle of the given column count.
// Lines wider than the viewport are returned unpadded rather than truncated.
func center(line string, columns int) string {
	pad := (columns - lipgloss.Width(line)) / 2
	if pad < 1 {
		return line
	}
	return strings.Repeat(" ", pad) + line
}
