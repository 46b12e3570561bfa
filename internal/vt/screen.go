package vt

// Screen is a single terminal panel's state: the cell grid, cursor, pen,
// scrolling region, tab stops, modes, and charset selection. It is the sole
// owner of its cells and implements Performer directly, so a Parser can
// drive it with no intermediate dispatcher object.
//
// Grounded on the teacher's internal/vterm.VTerm, reduced to the core spec's
// scope: no scrollback, no selection, no synchronized output, no render
// cache. The alternate screen buffer (private mode 1049) is kept, see
// setAltScreen.
type Screen struct {
	width, height int
	grid          [][]Cell

	cursorX, cursorY int
	pen              Pen

	scrollTop, scrollBottom int // inclusive row bounds

	tabStops []bool

	modes   Modes
	g0, g1  Charset
	usingG1 bool

	saved savedCursor

	// altGrid holds whichever of the primary/alternate screen buffers is not
	// currently active (nil until private mode 1049 is used for the first
	// time). usingAlt reports which one s.grid currently points at.
	altGrid       [][]Cell
	usingAlt      bool
	savedAltEntry savedCursor

	titleFunc func(string) // OSC 0/2 window title callback, may be nil

	parser *Parser
}

type savedCursor struct {
	x, y    int
	pen     Pen
	g0, g1  Charset
	usingG1 bool
}

// New returns a Screen of the given dimensions, cursor at the origin, in
// GROUND state with default modes (auto-wrap and cursor-visible on).
func New(width, height int) *Screen {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s := &Screen{
		width:         width,
		height:        height,
		scrollBottom:  height - 1,
		modes:         defaultModes(),
		parser:        NewParser(),
	}
	s.grid = make([][]Cell, height)
	for y := range s.grid {
		s.grid[y] = makeBlankLine(width, s.pen)
	}
	s.tabStops = defaultTabStops(width)
	return s
}

// Feed parses bytes and dispatches them against this Screen.
func (s *Screen) Feed(data []byte) {
	s.parser.Feed(s, data)
}

// Reset returns the parser to GROUND. It does not clear the grid; use this
// to recover a Screen after feeding it untrusted/corrupt data, mirroring
// what a child sending CAN/SUB achieves for the parser alone.
func (s *Screen) Reset() {
	s.parser.Reset()
}

// SetTitleFunc installs a callback invoked when the child sets the window
// title via OSC 0 or OSC 2. A nil func (the default) makes title OSC a
// no-op beyond being parsed and discarded.
func (s *Screen) SetTitleFunc(f func(string)) {
	s.titleFunc = f
}

// Width and Height report the grid dimensions.
func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Cell returns the cell at (x, y), or a blank cell if out of range.
func (s *Screen) Cell(x, y int) Cell {
	if y < 0 || y >= s.height || x < 0 || x >= s.width {
		return blankCell(Pen{})
	}
	return s.grid[y][x]
}

// Cursor returns the current cursor position.
func (s *Screen) Cursor() (x, y int) { return s.cursorX, s.cursorY }

// Pen returns the attributes that would be stamped on the next Print.
func (s *Screen) Pen() Pen { return s.pen }

// Modes returns a copy of the current mode flags.
func (s *Screen) Modes() Modes { return s.modes }

// ScrollRegion returns the current scrolling region, 0-indexed inclusive.
func (s *Screen) ScrollRegion() (top, bottom int) { return s.scrollTop, s.scrollBottom }

// Resize changes the grid dimensions, preserving content top-left-aligned
// and clamping the cursor and scrolling region into the new bounds. Unlike
// the teacher's VTerm.Resize, there is no scrollback to reflow.
func (s *Screen) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == s.width && height == s.height {
		return
	}

	newGrid := make([][]Cell, height)
	for y := range newGrid {
		if y < len(s.grid) {
			old := s.grid[y]
			line := makeBlankLine(width, Pen{})
			n := width
			if len(old) < n {
				n = len(old)
			}
			copy(line, old[:n])
			newGrid[y] = line
		} else {
			newGrid[y] = makeBlankLine(width, Pen{})
		}
	}

	s.grid = newGrid
	s.width = width
	s.height = height
	if s.scrollBottom >= height {
		s.scrollBottom = height - 1
	}
	if s.scrollTop > s.scrollBottom {
		s.scrollTop = 0
	}
	s.tabStops = resizeTabStops(s.tabStops, width)
	s.clampCursor()

	if s.altGrid != nil && (len(s.altGrid) != height || (height > 0 && len(s.altGrid[0]) != width)) {
		s.altGrid = make([][]Cell, height)
		for y := range s.altGrid {
			s.altGrid[y] = makeBlankLine(width, Pen{})
		}
	}
}

// setAltScreen implements private mode 1049: switch between the primary and
// alternate screen buffers, saving/restoring cursor position, pen, and
// charset state the way DECSC/DECRC do. Entering always clears the buffer
// being switched to, matching xterm's behavior for 1049 (unlike 47/1047,
// which this core does not implement separately).
func (s *Screen) setAltScreen(enabled bool) {
	if enabled == s.usingAlt {
		return
	}
	if enabled {
		s.savedAltEntry = savedCursor{x: s.cursorX, y: s.cursorY, pen: s.pen, g0: s.g0, g1: s.g1, usingG1: s.usingG1}
		if s.altGrid == nil || len(s.altGrid) != s.height || (s.height > 0 && len(s.altGrid[0]) != s.width) {
			s.altGrid = make([][]Cell, s.height)
			for y := range s.altGrid {
				s.altGrid[y] = makeBlankLine(s.width, s.pen)
			}
		}
		s.grid, s.altGrid = s.altGrid, s.grid
		for y := range s.grid {
			s.grid[y] = makeBlankLine(s.width, s.pen)
		}
	} else {
		s.grid, s.altGrid = s.altGrid, s.grid
		c := s.savedAltEntry
		s.cursorX, s.cursorY = c.x, c.y
		s.pen = c.pen
		s.g0, s.g1, s.usingG1 = c.g0, c.g1, c.usingG1
	}
	s.usingAlt = enabled
	s.clampCursor()
}
