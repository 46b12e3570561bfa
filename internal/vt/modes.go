package vt

// Modes holds the terminal mode flags the dispatcher toggles via CSI Ps h/l.
// AutoWrap and CursorVisible default true; everything else defaults false,
// matching a freshly reset VT220-class terminal.
type Modes struct {
	ApplicationCursorKeys bool // DECCKM, private 1
	OriginMode            bool // DECOM, private 6
	AutoWrap              bool // DECAWM, private 7
	CursorVisible         bool // DECTCEM, private 25
	InsertMode            bool // IRM, ANSI 4
	BracketedPaste        bool // private 2004
	ReverseVideo          bool // private 5
	LineFeedNewline       bool // LNM, ANSI 20; observed only, see newline()
	ApplicationKeypad     bool // DECKPAM/DECKPNM, set via ESC = / ESC >
}

func defaultModes() Modes {
	return Modes{
		AutoWrap:      true,
		CursorVisible: true,
	}
}
