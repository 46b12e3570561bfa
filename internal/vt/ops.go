package vt

import "github.com/mattn/go-runewidth"

// putChar places a decoded, charset-mapped rune at the cursor and advances
// it, handling auto-wrap and wide-character bookkeeping. Grounded on the
// teacher's VTerm.putChar, adapted to stamp the current Pen (not a style
// struct living on VTerm) and to honor InsertMode.
func (s *Screen) putChar(r rune) {
	width := runewidth.RuneWidth(r)

	if width == 0 {
		// Combining characters have no cell of their own in this grid and
		// are dropped.
		return
	}

	if s.modes.InsertMode {
		s.shiftRowRight(s.cursorY, s.cursorX, width)
	}

	if width == 2 && s.cursorX == s.width-1 {
		s.grid[s.cursorY][s.cursorX] = Cell{Rune: ' ', Pen: s.pen, Width: 1}
		s.wrapLine()
	} else if s.cursorX >= s.width {
		s.wrapLine()
	}

	y, x := s.cursorY, s.cursorX
	if y < 0 || y >= s.height || x < 0 || x >= s.width {
		return
	}

	current := s.grid[y][x]
	if current.Width == 0 && x > 0 {
		s.grid[y][x-1] = blankCell(s.grid[y][x-1].Pen)
	}
	if current.Width == 2 && x+1 < s.width {
		s.grid[y][x+1] = blankCell(s.grid[y][x+1].Pen)
	}

	s.grid[y][x] = Cell{Rune: r, Pen: s.pen, Width: width}

	if width == 2 && x+1 < s.width {
		next := s.grid[y][x+1]
		if next.Width == 2 && x+2 < s.width {
			s.grid[y][x+2] = blankCell(s.pen)
		}
		s.grid[y][x+1] = Cell{Rune: 0, Pen: s.pen, Width: 0}
	}

	if s.modes.AutoWrap {
		s.cursorX += width
		if s.cursorX >= s.width {
			s.wrapLine()
		}
	} else {
		s.cursorX += width
		if s.cursorX > s.width-1 {
			s.cursorX = s.width - 1
		}
	}
}

// wrapLine moves the cursor to column 0 of the next line, scrolling the
// region if already at its bottom.
func (s *Screen) wrapLine() {
	s.cursorX = 0
	s.index()
}

// shiftRowRight implements IRM: make room for n columns at x by shifting
// the rest of the row right, dropping overflow off the end.
func (s *Screen) shiftRowRight(y, x, n int) {
	if y < 0 || y >= s.height {
		return
	}
	row := s.grid[y]
	for i := s.width - 1; i >= x+n; i-- {
		row[i] = row[i-n]
	}
	for i := x; i < x+n && i < s.width; i++ {
		row[i] = blankCell(s.pen)
	}
}

// index implements IND: cursor down, scrolling the region if at its
// bottom, without touching the column.
func (s *Screen) index() {
	if s.cursorY == s.scrollBottom {
		s.scrollUp(1)
		return
	}
	s.cursorY++
	s.clampCursor()
}

// reverseIndex implements RI: cursor up, scrolling the region if at its
// top.
func (s *Screen) reverseIndex() {
	if s.cursorY == s.scrollTop {
		s.scrollDown(1)
		return
	}
	s.cursorY--
	s.clampCursor()
}

// newline implements LF/VT/FF: index plus carriage return, matching the
// original vte_terminal.c's '\n' handling (panel->cursor_x = 0 unconditionally
// on '\n'). Modes.LineFeedNewline (LNM) is tracked for embedders that need to
// know how to translate a keyboard Enter press, but does not gate this CR:
// LF always resets the column here.
func (s *Screen) newline() {
	s.index()
	s.cursorX = 0
}

func (s *Screen) carriageReturn() {
	s.cursorX = 0
}

func (s *Screen) backspace() {
	if s.cursorX > 0 {
		s.cursorX--
	}
}

// eraseDisplay implements ED. Cleared cells adopt the current Pen, not a
// fixed default: ED immediately after an SGR background-color change should
// paint with that background, matching how modern terminal emulators
// behave (see DESIGN.md's resolution of the erase-pen Open Question).
func (s *Screen) eraseDisplay(mode int) {
	switch mode {
	case 0:
		s.eraseLine(0)
		for y := s.cursorY + 1; y < s.height; y++ {
			s.grid[y] = makeBlankLine(s.width, s.pen)
		}
	case 1:
		for y := 0; y < s.cursorY; y++ {
			s.grid[y] = makeBlankLine(s.width, s.pen)
		}
		s.eraseLine(1)
	case 2, 3:
		for y := 0; y < s.height; y++ {
			s.grid[y] = makeBlankLine(s.width, s.pen)
		}
	}
}

// eraseLine implements EL, with the same current-pen policy as eraseDisplay.
func (s *Screen) eraseLine(mode int) {
	if s.cursorY < 0 || s.cursorY >= s.height {
		return
	}
	row := s.grid[s.cursorY]
	switch mode {
	case 0:
		for x := s.cursorX; x < s.width; x++ {
			row[x] = blankCell(s.pen)
		}
	case 1:
		for x := 0; x <= s.cursorX && x < s.width; x++ {
			row[x] = blankCell(s.pen)
		}
	case 2:
		s.grid[s.cursorY] = makeBlankLine(s.width, s.pen)
	}
}
