// Package render paints a vt.Screen to a string of ANSI-styled lines, and
// wraps that in a bubbletea model that drives a pty.Terminal. It is the
// external collaborator the core vt package never talks to directly:
// vt owns cell state, render owns turning that state into pixels.
//
// Grounded on the teacher's internal/vterm/render.go styleToANSI/colorToANSI
// walk, adapted to vt.Pen/vt.Color via vt.PenToANSI.
package render

import (
	"strings"

	"github.com/andyrewlee/vtmux/internal/vt"
)

// Screen renders the visible grid of s as a multi-line string with ANSI
// SGR codes, coalescing runs of cells that share a Pen into one escape.
func Screen(s *vt.Screen) string {
	var buf strings.Builder
	w, h := s.Width(), s.Height()
	buf.Grow(w * h * 2)

	var lastPen vt.Pen
	first := true

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := s.Cell(x, y)
			if cell.Width == 0 {
				continue // continuation cell of a wide rune to its left
			}
			if first || cell.Pen != lastPen {
				buf.WriteString(vt.PenToANSI(cell.Pen))
				lastPen = cell.Pen
				first = false
			}
			if cell.Rune == 0 {
				buf.WriteByte(' ')
			} else {
				buf.WriteRune(cell.Rune)
			}
		}
		if y < h-1 {
			buf.WriteByte('\n')
		}
	}

	buf.WriteString("\x1b[0m")
	return buf.String()
}

// CursorLine returns the 0-indexed row the cursor sits on, for a caller
// that wants to move a UI cursor indicator independent of the ANSI text.
func CursorLine(s *vt.Screen) int {
	_, y := s.Cursor()
	return y
}
