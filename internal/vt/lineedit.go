package vt

// insertLines implements IL: only acts when the cursor is inside the
// scrolling region, pushing the rest of the region down and filling the
// vacated rows with the current pen's blank.
func (s *Screen) insertLines(n int) {
	if s.cursorY < s.scrollTop || s.cursorY > s.scrollBottom {
		return
	}
	maxN := s.scrollBottom - s.cursorY + 1
	if n > maxN {
		n = maxN
	}

	for i := s.scrollBottom; i >= s.cursorY+n; i-- {
		s.grid[i] = s.grid[i-n]
	}
	for i := s.cursorY; i < s.cursorY+n && i <= s.scrollBottom; i++ {
		s.grid[i] = makeBlankLine(s.width, s.pen)
	}
}

// deleteLines implements DL, the mirror of insertLines.
func (s *Screen) deleteLines(n int) {
	if s.cursorY < s.scrollTop || s.cursorY > s.scrollBottom {
		return
	}
	maxN := s.scrollBottom - s.cursorY + 1
	if n > maxN {
		n = maxN
	}

	for i := s.cursorY; i <= s.scrollBottom-n; i++ {
		s.grid[i] = s.grid[i+n]
	}
	for i := s.scrollBottom - n + 1; i <= s.scrollBottom; i++ {
		s.grid[i] = makeBlankLine(s.width, s.pen)
	}
}

// insertChars implements ICH: shift the current row right from the cursor,
// filling vacated columns with the current pen's blank.
func (s *Screen) insertChars(n int) {
	if s.cursorY < 0 || s.cursorY >= s.height {
		return
	}
	line := s.grid[s.cursorY]
	normalizeLine(line)

	for i := s.width - 1; i >= s.cursorX+n; i-- {
		line[i] = line[i-n]
	}
	for i := s.cursorX; i < s.cursorX+n && i < s.width; i++ {
		line[i] = blankCell(s.pen)
	}
	normalizeLine(line)
}

// deleteChars implements DCH, the mirror of insertChars.
func (s *Screen) deleteChars(n int) {
	if s.cursorY < 0 || s.cursorY >= s.height {
		return
	}
	if n > s.width-s.cursorX {
		n = s.width - s.cursorX
	}
	line := s.grid[s.cursorY]
	normalizeLine(line)

	for i := s.cursorX; i < s.width-n; i++ {
		line[i] = line[i+n]
	}
	for i := s.width - n; i < s.width; i++ {
		if i >= 0 {
			line[i] = blankCell(s.pen)
		}
	}
	normalizeLine(line)
}

// eraseChars implements ECH: overwrite n cells at the cursor in place,
// without shifting the rest of the row.
func (s *Screen) eraseChars(n int) {
	if s.cursorY < 0 || s.cursorY >= s.height {
		return
	}
	line := s.grid[s.cursorY]
	for i := s.cursorX; i < s.cursorX+n && i < s.width; i++ {
		line[i] = blankCell(s.pen)
	}
	normalizeLine(line)
}

// normalizeLine repairs the Width invariant after an in-place edit: a
// continuation cell (Width 0) must be immediately preceded by a wide cell
// (Width 2), and a wide cell must be immediately followed by a continuation
// cell, else both collapse to plain blanks.
func normalizeLine(line []Cell) {
	for i := 0; i < len(line); i++ {
		switch line[i].Width {
		case 0:
			if i == 0 || line[i-1].Width != 2 {
				line[i] = blankCell(line[i].Pen)
			}
		case 2:
			if i+1 >= len(line) || line[i+1].Width != 0 {
				line[i] = blankCell(line[i].Pen)
			}
		}
	}
}
