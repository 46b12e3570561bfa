package vt

// Charset identifies one of the character sets that can be designated into
// G0 or G1 via ESC ( / ESC ).
type Charset uint8

const (
	CharsetASCII Charset = iota
	CharsetDECSpecial
	CharsetUK
)

// charsetFromDesignator maps the final byte of an ESC ( c / ESC ) c
// sequence to a Charset, defaulting to ASCII for anything unrecognized.
func charsetFromDesignator(c byte) Charset {
	switch c {
	case '0':
		return CharsetDECSpecial
	case 'A':
		return CharsetUK
	case 'B':
		return CharsetASCII
	default:
		return CharsetASCII
	}
}

// decSpecialGraphics maps 0x60..0x7E to the VT100 "DEC Special Graphics and
// Line Drawing" character set (box-drawing, block, and symbol glyphs). Any
// byte outside that range, or not present in the table, passes through
// unchanged.
var decSpecialGraphics = map[rune]rune{
	0x60: '◆', // ◆
	0x61: '▒', // ▒
	0x62: '␉', // ␉ (HT symbol)
	0x63: '␌', // ␌ (FF symbol)
	0x64: '␍', // ␍ (CR symbol)
	0x65: '␊', // ␊ (LF symbol)
	0x66: '°', // °
	0x67: '±', // ±
	0x68: '␤', // ␤ (NL symbol)
	0x69: '␋', // ␋ (VT symbol)
	0x6A: '┘', // ┘
	0x6B: '┐', // ┐
	0x6C: '┌', // ┌
	0x6D: '└', // └
	0x6E: '┼', // ┼
	0x6F: '⎺', // ⎺
	0x70: '⎻', // ⎻
	0x71: '─', // ─
	0x72: '⎼', // ⎼
	0x73: '⎽', // ⎽
	0x74: '├', // ├
	0x75: '┤', // ┤
	0x76: '┴', // ┴
	0x77: '┬', // ┬
	0x78: '│', // │
	0x79: '≤', // ≤
	0x7A: '≥', // ≥
	0x7B: 'π', // π
	0x7C: '≠', // ≠
	0x7D: '£', // £
	0x7E: '·', // ·
}

// mapCharset maps r through cs. DEC special graphics uses
// decSpecialGraphics; the UK national set differs from ASCII on one byte
// only: '#' becomes the pound sign.
func mapCharset(cs Charset, r rune) rune {
	switch cs {
	case CharsetDECSpecial:
		if mapped, ok := decSpecialGraphics[r]; ok {
			return mapped
		}
		return r
	case CharsetUK:
		if r == '#' {
			return '£'
		}
		return r
	default:
		return r
	}
}
