package vt

// ColorType distinguishes how a Color's Value should be interpreted.
type ColorType uint8

const (
	ColorDefault ColorType = iota
	ColorIndexed
	ColorRGB
)

// Color is a terminal foreground/background color. The zero value is
// ColorDefault, meaning "use the palette's default", matching SGR 39/49.
type Color struct {
	Type  ColorType
	Value uint32 // Indexed: 0-255. RGB: 0xRRGGBB.
}

// Attr is a bitset of SGR text attributes.
type Attr uint16

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrike
)

// Pen is the set of rendering attributes that Print stamps onto new cells.
// It is also what DECSC/DECRC save and restore alongside cursor position.
type Pen struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Cell is one grid position: a decoded codepoint plus the Pen in effect
// when it was written, and a width hint for east-asian/combining runes.
type Cell struct {
	Rune  rune
	Pen   Pen
	Width int // 1 normal, 2 wide (this cell is the lead), 0 continuation
}

// blankCell returns a cell holding a space stamped with pen, the shape
// every erase/scroll/insert operation fills vacated positions with.
func blankCell(pen Pen) Cell {
	return Cell{Rune: ' ', Pen: pen, Width: 1}
}

func makeBlankLine(width int, pen Pen) []Cell {
	line := make([]Cell, width)
	for i := range line {
		line[i] = blankCell(pen)
	}
	return line
}
