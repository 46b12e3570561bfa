package vt

// This file is the Dispatcher: it implements Performer on *Screen, mapping
// each parsed event to the screen operations defined in cursor.go, ops.go,
// scroll.go, lineedit.go, sgr.go, and tabstops.go. No method here returns
// an error or writes anything back to the child — per the core's scope,
// reply queries (DA, DSR, DECRQM) are parsed and dropped rather than
// answered; see the Non-goals in SPEC_FULL.md.

// Print implements Performer.
func (s *Screen) Print(r rune) {
	cs := s.g0
	if s.usingG1 {
		cs = s.g1
	}
	s.putChar(mapCharset(cs, r))
}

// Execute implements Performer for C0/C1 control bytes.
func (s *Screen) Execute(b byte) {
	switch b {
	case 0x07: // BEL
	case 0x08: // BS
		s.backspace()
	case 0x09: // HT
		s.tabForward(1)
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		s.newline()
	case 0x0D: // CR
		s.carriageReturn()
	case 0x0E: // SO
		s.usingG1 = true
	case 0x0F: // SI
		s.usingG1 = false
	case 0x84: // IND (C1)
		s.index()
	case 0x85: // NEL (C1)
		s.index()
		s.cursorX = 0
	case 0x88: // HTS (C1)
		s.setTabStop()
	case 0x8D: // RI (C1)
		s.reverseIndex()
	}
}

// EscDispatch implements Performer for ESC sequences that aren't
// CSI/DCS/OSC/SOS-PM-APC introducers.
func (s *Screen) EscDispatch(intermediates []byte, ignore bool, final byte) {
	if ignore {
		return
	}
	if len(intermediates) == 1 {
		switch intermediates[0] {
		case '(':
			s.g0 = charsetFromDesignator(final)
			return
		case ')':
			s.g1 = charsetFromDesignator(final)
			return
		}
	}
	if len(intermediates) != 0 {
		return
	}
	switch final {
	case 'D': // IND
		s.index()
	case 'E': // NEL
		s.index()
		s.cursorX = 0
	case 'H': // HTS
		s.setTabStop()
	case 'M': // RI
		s.reverseIndex()
	case '7': // DECSC
		s.saveCursor()
	case '8': // DECRC
		s.restoreCursor()
	case 'c': // RIS
		s.reset()
	case '=': // DECKPAM
		s.modes.ApplicationKeypad = true
	case '>': // DECKPNM
		s.modes.ApplicationKeypad = false
	}
}

// reset implements RIS: clear the grid, home the cursor, and restore
// default modes/pen/charsets/tab stops, without touching grid dimensions.
func (s *Screen) reset() {
	for y := range s.grid {
		s.grid[y] = makeBlankLine(s.width, Pen{})
	}
	s.cursorX, s.cursorY = 0, 0
	s.pen = Pen{}
	s.scrollTop, s.scrollBottom = 0, s.height-1
	s.modes = defaultModes()
	s.g0, s.g1 = CharsetASCII, CharsetASCII
	s.usingG1 = false
	s.tabStops = defaultTabStops(s.width)
	s.saved = savedCursor{}
}

// CsiDispatch implements Performer.
func (s *Screen) CsiDispatch(params *Params, intermediates []byte, ignore bool, final byte) {
	if ignore {
		return
	}
	private := len(intermediates) == 1 && isPrivateMarker(intermediates[0])

	if private {
		switch final {
		case 'h':
			s.setPrivateModes(params, true)
		case 'l':
			s.setPrivateModes(params, false)
		}
		return
	}
	if len(intermediates) != 0 {
		return
	}

	p1 := func(def int) int {
		v := int(params.Param(0, uint16(def)))
		if v == 0 {
			return def
		}
		return v
	}

	switch final {
	case 'h':
		s.setANSIModes(params, true)
	case 'l':
		s.setANSIModes(params, false)
	case 'A':
		s.moveCursor(-p1(1), 0)
	case 'B':
		s.moveCursor(p1(1), 0)
	case 'C':
		s.moveCursor(0, p1(1))
	case 'D':
		s.moveCursor(0, -p1(1))
	case 'E':
		s.moveCursor(p1(1), 0)
		s.cursorX = 0
	case 'F':
		s.moveCursor(-p1(1), 0)
		s.cursorX = 0
	case 'G':
		s.cursorX = p1(1) - 1
		s.clampCursor()
	case 'H', 'f':
		row := int(params.Param(0, 1))
		if row == 0 {
			row = 1
		}
		col := int(params.Param(1, 1))
		if col == 0 {
			col = 1
		}
		s.setCursorPos(row, col)
	case 'I':
		s.tabForward(p1(1))
	case 'J':
		s.eraseDisplay(int(params.Param(0, 0)))
	case 'K':
		s.eraseLine(int(params.Param(0, 0)))
	case 'L':
		s.insertLines(p1(1))
	case 'M':
		s.deleteLines(p1(1))
	case 'P':
		s.deleteChars(p1(1))
	case 'S':
		s.scrollUp(p1(1))
	case 'T':
		s.scrollDown(p1(1))
	case 'X':
		s.eraseChars(p1(1))
	case 'Z':
		s.tabBackward(p1(1))
	case '@':
		s.insertChars(p1(1))
	case 'd':
		row := p1(1)
		if s.modes.OriginMode {
			s.cursorY = s.scrollTop + row - 1
		} else {
			s.cursorY = row - 1
		}
		s.clampCursor()
	case 'g':
		switch params.Param(0, 0) {
		case 0:
			s.clearTabStop()
		case 3:
			s.clearAllTabStops()
		}
	case 'm':
		s.applySGR(params)
	case 'r':
		top := int(params.Param(0, 1))
		bottom := int(params.Param(1, uint16(s.height)))
		if top == 0 {
			top = 1
		}
		if bottom == 0 {
			bottom = s.height
		}
		s.setScrollRegion(top, bottom)
	case 's':
		s.saveCursor()
	case 'u':
		s.restoreCursor()
	case 'n', 'c':
		// DSR / DA reply queries: recognized, never answered (§ scope).
	}
}

func isPrivateMarker(b byte) bool {
	return b == '?' || b == '<' || b == '=' || b == '>'
}

// setANSIModes handles CSI Ps h/l with no intermediate byte: the non-DEC-
// private mode set, distinct from setPrivateModes' CSI ? Ps h/l.
func (s *Screen) setANSIModes(params *Params, set bool) {
	for i := 0; i < params.Len(); i++ {
		if params.IsSub(i) {
			continue
		}
		switch params.Get(i) {
		case 4:
			s.modes.InsertMode = set
		case 20:
			s.modes.LineFeedNewline = set
		}
	}
}

func (s *Screen) setPrivateModes(params *Params, set bool) {
	for i := 0; i < params.Len(); i++ {
		if params.IsSub(i) {
			continue
		}
		switch params.Get(i) {
		case 1:
			s.modes.ApplicationCursorKeys = set
		case 5:
			s.modes.ReverseVideo = set
		case 6:
			s.modes.OriginMode = set
			s.cursorX = 0
			if set {
				s.cursorY = s.scrollTop
			} else {
				s.cursorY = 0
			}
			s.clampCursor()
		case 7:
			s.modes.AutoWrap = set
		case 25:
			s.modes.CursorVisible = set
		case 2004:
			s.modes.BracketedPaste = set
		case 1049:
			s.setAltScreen(set)
		}
	}
}

// OscDispatch implements Performer. Only title-setting (0, 2) is acted on;
// icon-name (1) and everything else, including OSC 52 clipboard access, is
// recognized syntactically by the parser and then discarded here.
func (s *Screen) OscDispatch(params [][]byte, bellTerminated bool) {
	if len(params) < 2 {
		return
	}
	switch string(params[0]) {
	case "0", "2":
		if s.titleFunc != nil {
			s.titleFunc(string(params[1]))
		}
	case "1":
		// icon name: no distinct callback: embedders that care reuse
		// SetTitleFunc and ignore OSC 1, since most terminals also fold
		// icon-name into the title bar.
	}
}

// Hook implements Performer: begin a DCS sequence.
func (s *Screen) Hook(params *Params, intermediates []byte, ignore bool, final byte) {
	// No DCS command is implemented; Put/Unhook simply let the passthrough
	// run to completion without corrupting GROUND (sixel graphics and
	// DECRQSS queries are the common payloads here).
}

// Put implements Performer: a DCS payload byte. Discarded.
func (s *Screen) Put(b byte) {}

// Unhook implements Performer: end of a DCS sequence. No-op.
func (s *Screen) Unhook() {}
