package vt

// scrollUp shifts the scrolling region up by n lines (SU / a bottom-of-
// region line feed), discarding the top n lines — there is no scrollback in
// this core, per the Non-goals; an embedder wanting history captures lines
// itself before they scroll off, e.g. from a Performer wrapping Screen.
func (s *Screen) scrollUp(n int) {
	if n <= 0 {
		return
	}
	regionHeight := s.scrollBottom - s.scrollTop + 1
	if n > regionHeight {
		n = regionHeight
	}

	for i := s.scrollTop; i <= s.scrollBottom-n; i++ {
		s.grid[i] = s.grid[i+n]
	}
	for i := s.scrollBottom - n + 1; i <= s.scrollBottom; i++ {
		s.grid[i] = makeBlankLine(s.width, s.pen)
	}
}

// scrollDown shifts the scrolling region down by n lines (SD / RI at the
// top of the region).
func (s *Screen) scrollDown(n int) {
	if n <= 0 {
		return
	}
	regionHeight := s.scrollBottom - s.scrollTop + 1
	if n > regionHeight {
		n = regionHeight
	}

	for i := s.scrollBottom; i >= s.scrollTop+n; i-- {
		s.grid[i] = s.grid[i-n]
	}
	for i := s.scrollTop; i < s.scrollTop+n; i++ {
		s.grid[i] = makeBlankLine(s.width, s.pen)
	}
}
