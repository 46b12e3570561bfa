package vt

import "testing"

func TestPrintAdvancesCursor(t *testing.T) {
	s := New(10, 5)
	s.Feed([]byte("hi"))
	if x, y := s.Cursor(); x != 2 || y != 0 {
		t.Fatalf("cursor = (%d,%d), want (2,0)", x, y)
	}
	if c := s.Cell(0, 0); c.Rune != 'h' {
		t.Errorf("cell(0,0) = %q, want 'h'", c.Rune)
	}
	if c := s.Cell(1, 0); c.Rune != 'i' {
		t.Errorf("cell(1,0) = %q, want 'i'", c.Rune)
	}
}

func TestChunkedEscapeSequenceMatchesWhole(t *testing.T) {
	whole := New(10, 5)
	whole.Feed([]byte("\x1b[31mX"))

	chunked := New(10, 5)
	seq := []byte("\x1b[31mX")
	for _, b := range seq {
		chunked.Feed([]byte{b})
	}

	wc := whole.Cell(0, 0)
	cc := chunked.Cell(0, 0)
	if wc != cc {
		t.Fatalf("chunked feed diverged: whole=%+v chunked=%+v", wc, cc)
	}
}

func TestSGRIndexedColor(t *testing.T) {
	s := New(10, 5)
	s.Feed([]byte("\x1b[31;1mA"))
	c := s.Cell(0, 0)
	if c.Pen.Fg.Type != ColorIndexed || c.Pen.Fg.Value != 1 {
		t.Errorf("fg = %+v, want indexed 1", c.Pen.Fg)
	}
	if c.Pen.Attrs&AttrBold == 0 {
		t.Errorf("expected bold attribute set")
	}
}

func TestSGRExtendedRGBSemicolonForm(t *testing.T) {
	s := New(10, 5)
	s.Feed([]byte("\x1b[38;2;10;20;30mA"))
	c := s.Cell(0, 0)
	if c.Pen.Fg.Type != ColorRGB {
		t.Fatalf("fg.Type = %v, want ColorRGB", c.Pen.Fg.Type)
	}
	want := uint32(10)<<16 | uint32(20)<<8 | uint32(30)
	if c.Pen.Fg.Value != want {
		t.Errorf("fg.Value = %06x, want %06x", c.Pen.Fg.Value, want)
	}
}

func TestSGRExtendedRGBColonForm(t *testing.T) {
	s := New(10, 5)
	s.Feed([]byte("\x1b[38:2::10:20:30mA"))
	c := s.Cell(0, 0)
	if c.Pen.Fg.Type != ColorRGB {
		t.Fatalf("fg.Type = %v, want ColorRGB", c.Pen.Fg.Type)
	}
	want := uint32(10)<<16 | uint32(20)<<8 | uint32(30)
	if c.Pen.Fg.Value != want {
		t.Errorf("fg.Value = %06x, want %06x", c.Pen.Fg.Value, want)
	}
}

func TestSGR256Color(t *testing.T) {
	s := New(10, 5)
	s.Feed([]byte("\x1b[48;5;200mA"))
	c := s.Cell(0, 0)
	if c.Pen.Bg.Type != ColorIndexed || c.Pen.Bg.Value != 200 {
		t.Errorf("bg = %+v, want indexed 200", c.Pen.Bg)
	}
}

func TestEraseDisplayUsesCurrentPen(t *testing.T) {
	s := New(5, 3)
	s.Feed([]byte("\x1b[41m")) // red background pen, no glyph printed
	s.Feed([]byte("\x1b[2J"))
	c := s.Cell(2, 1)
	if c.Pen.Bg.Type != ColorIndexed || c.Pen.Bg.Value != 1 {
		t.Errorf("erased cell pen = %+v, want current pen (red bg) per current-pen erase policy", c.Pen)
	}
}

func TestScrollingRegionClampsInsertDelete(t *testing.T) {
	s := New(5, 5)
	s.Feed([]byte("\x1b[2;4r")) // region rows 2..4 (1-indexed)
	s.Feed([]byte("\x1b[1;1H")) // cursor outside region
	s.Feed([]byte("\x1b[1L"))   // IL should no-op: cursor not in region
	if x, y := s.Cursor(); x != 0 || y != 0 {
		t.Fatalf("cursor moved unexpectedly to (%d,%d)", x, y)
	}
}

func TestScrollUpClampsToRegionHeight(t *testing.T) {
	s := New(5, 5)
	s.Feed([]byte("\x1b[2;4r"))
	s.scrollUp(100)
	// region is rows 1..3 zero-indexed (3 rows); scrolling 100 should not panic
	// and should leave a fully blank region.
	for y := 1; y <= 3; y++ {
		if c := s.Cell(0, y); c.Rune != ' ' {
			t.Errorf("row %d not blank after saturating scroll: %+v", y, c)
		}
	}
}

func TestAutoWrapOff(t *testing.T) {
	s := New(3, 2)
	s.Feed([]byte("\x1b[?7l")) // DECAWM off
	s.Feed([]byte("abcd"))
	if x, y := s.Cursor(); x != 2 || y != 0 {
		t.Fatalf("cursor = (%d,%d), want clamped to (2,0) with auto-wrap off", x, y)
	}
	if c := s.Cell(2, 0); c.Rune != 'd' {
		t.Errorf("last column = %q, want 'd' overwritten in place", c.Rune)
	}
}

func TestSaveRestoreCursorRoundTrip(t *testing.T) {
	s := New(10, 5)
	s.Feed([]byte("\x1b[3;3H"))
	s.Feed([]byte("\x1b[31m"))
	s.Feed([]byte("\x1b7")) // DECSC
	s.Feed([]byte("\x1b[1;1H"))
	s.Feed([]byte("\x1b[0m"))
	s.Feed([]byte("\x1b8")) // DECRC
	x, y := s.Cursor()
	if x != 2 || y != 2 {
		t.Fatalf("cursor after restore = (%d,%d), want (2,2)", x, y)
	}
	if s.Pen().Fg.Value != 1 {
		t.Errorf("pen after restore = %+v, want fg indexed 1", s.Pen())
	}
}

func TestUTF8MultibyteAcrossChunks(t *testing.T) {
	s := New(5, 2)
	seq := []byte("caf\xc3\xa9") // "café"
	for _, b := range seq {
		s.Feed([]byte{b})
	}
	if c := s.Cell(3, 0); c.Rune != 'é' {
		t.Errorf("cell(3,0) = %q, want 'é'", c.Rune)
	}
}

func TestInvalidUTF8BecomesReplacementChar(t *testing.T) {
	s := New(5, 2)
	s.Feed([]byte{0xFF, 'x'})
	if c := s.Cell(0, 0); c.Rune != '�' {
		t.Errorf("cell(0,0) = %q, want U+FFFD", c.Rune)
	}
	if c := s.Cell(1, 0); c.Rune != 'x' {
		t.Errorf("cell(1,0) = %q, want 'x'", c.Rune)
	}
}

func TestDCSPassthroughDoesNotCorruptGround(t *testing.T) {
	s := New(10, 2)
	// A DECRQSS-shaped DCS sequence followed by normal text.
	s.Feed([]byte("\x1bP1$qm\x1b\\OK"))
	if c := s.Cell(0, 0); c.Rune != 'O' {
		t.Errorf("cell(0,0) = %q, want 'O' (DCS must not leak into ground)", c.Rune)
	}
	if c := s.Cell(1, 0); c.Rune != 'K' {
		t.Errorf("cell(1,0) = %q, want 'K'", c.Rune)
	}
}

func TestOSCTitleCallback(t *testing.T) {
	s := New(10, 2)
	var got string
	s.SetTitleFunc(func(title string) { got = title })
	s.Feed([]byte("\x1b]0;hello world\x07"))
	if got != "hello world" {
		t.Errorf("title = %q, want %q", got, "hello world")
	}
}

func TestWideCharacterOccupiesTwoCells(t *testing.T) {
	s := New(10, 2)
	s.Feed([]byte("\xe4\xb8\xad")) // 中, east-asian wide
	if x, _ := s.Cursor(); x != 2 {
		t.Fatalf("cursor.X = %d, want 2 after a wide char", x)
	}
	lead := s.Cell(0, 0)
	cont := s.Cell(1, 0)
	if lead.Width != 2 {
		t.Errorf("lead cell width = %d, want 2", lead.Width)
	}
	if cont.Width != 0 {
		t.Errorf("continuation cell width = %d, want 0", cont.Width)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s := New(10, 5)
	s.Feed([]byte("\x1b[31mhello\x1b[2;4r"))
	s.reset()
	first := *s
	s.reset()
	second := *s
	if first.pen != second.pen || first.scrollTop != second.scrollTop || first.scrollBottom != second.scrollBottom {
		t.Errorf("reset is not idempotent: %+v vs %+v", first, second)
	}
}

func TestTabStopsDefaultEveryEightColumns(t *testing.T) {
	s := New(20, 2)
	s.Feed([]byte("\t"))
	if x, _ := s.Cursor(); x != 8 {
		t.Errorf("cursor.X after one tab = %d, want 8", x)
	}
	s.Feed([]byte("\t"))
	if x, _ := s.Cursor(); x != 16 {
		t.Errorf("cursor.X after two tabs = %d, want 16", x)
	}
}

func TestDECSpecialCharsetMapsLineDrawing(t *testing.T) {
	s := New(10, 2)
	s.Feed([]byte("\x1b(0")) // designate G0 as DEC special graphics
	s.Feed([]byte("q"))      // 'q' maps to '─' in DEC special graphics
	if c := s.Cell(0, 0); c.Rune != '─' {
		t.Errorf("cell(0,0) = %q, want '─'", c.Rune)
	}
}

func TestResizePreservesTopLeftContent(t *testing.T) {
	s := New(5, 3)
	s.Feed([]byte("hello"))
	s.Resize(3, 3)
	if c := s.Cell(0, 0); c.Rune != 'h' {
		t.Errorf("cell(0,0) after shrink = %q, want 'h'", c.Rune)
	}
	if s.Width() != 3 {
		t.Errorf("width after resize = %d, want 3", s.Width())
	}
}
