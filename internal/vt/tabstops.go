package vt

// defaultTabStops returns a stop vector with a stop at every 8th column,
// the ECMA-48 default.
func defaultTabStops(width int) []bool {
	stops := make([]bool, width)
	for i := 0; i < width; i += 8 {
		stops[i] = true
	}
	return stops
}

func resizeTabStops(old []bool, width int) []bool {
	stops := make([]bool, width)
	n := len(old)
	if n > width {
		n = width
	}
	copy(stops, old[:n])
	for i := len(old); i < width; i += 8 {
		stops[i] = true
	}
	return stops
}

// tabForward advances the cursor to the n-th next tab stop, or the last
// column if none remain.
func (s *Screen) tabForward(n int) {
	for ; n > 0; n-- {
		x := s.cursorX + 1
		for x < s.width && !s.tabStops[x] {
			x++
		}
		if x >= s.width {
			s.cursorX = s.width - 1
			return
		}
		s.cursorX = x
	}
}

// tabBackward retreats the cursor to the n-th previous tab stop, or column
// 0 if none remain.
func (s *Screen) tabBackward(n int) {
	for ; n > 0; n-- {
		x := s.cursorX - 1
		for x > 0 && !s.tabStops[x] {
			x--
		}
		if x < 0 {
			x = 0
		}
		s.cursorX = x
		if x == 0 {
			return
		}
	}
}

func (s *Screen) setTabStop() {
	if s.cursorX >= 0 && s.cursorX < len(s.tabStops) {
		s.tabStops[s.cursorX] = true
	}
}

func (s *Screen) clearTabStop() {
	if s.cursorX >= 0 && s.cursorX < len(s.tabStops) {
		s.tabStops[s.cursorX] = false
	}
}

func (s *Screen) clearAllTabStops() {
	for i := range s.tabStops {
		s.tabStops[i] = false
	}
}
