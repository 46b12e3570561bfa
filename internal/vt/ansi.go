package vt

import "strings"

// PenToANSI renders a Pen back to an SGR escape sequence. It is not used by
// the parser/screen themselves (the core never writes to the child) — it
// exists for the renderer harness (internal/render), which needs to paint
// cells to a real terminal, and for tests that want a human-readable
// assertion of a cell's style. Grounded on the teacher's
// vterm.StyleToANSI, trimmed to a single full-reset encoding since the
// harness repaints whole frames rather than diffing styles incrementally.
func PenToANSI(p Pen) string {
	var b strings.Builder
	b.WriteString("\x1b[0")

	if p.Attrs&AttrBold != 0 {
		b.WriteString(";1")
	}
	if p.Attrs&AttrDim != 0 {
		b.WriteString(";2")
	}
	if p.Attrs&AttrItalic != 0 {
		b.WriteString(";3")
	}
	if p.Attrs&AttrUnderline != 0 {
		b.WriteString(";4")
	}
	if p.Attrs&AttrBlink != 0 {
		b.WriteString(";5")
	}
	if p.Attrs&AttrReverse != 0 {
		b.WriteString(";7")
	}
	if p.Attrs&AttrHidden != 0 {
		b.WriteString(";8")
	}
	if p.Attrs&AttrStrike != 0 {
		b.WriteString(";9")
	}

	writeColorCode(&b, p.Fg, true)
	writeColorCode(&b, p.Bg, false)

	b.WriteByte('m')
	return b.String()
}

func writeColorCode(b *strings.Builder, c Color, fg bool) {
	base := 30
	if !fg {
		base = 40
	}
	switch c.Type {
	case ColorDefault:
		// nothing to emit beyond the reset already written
	case ColorIndexed:
		if c.Value < 8 {
			b.WriteByte(';')
			writeUint(b, uint32(base)+c.Value)
		} else if c.Value < 16 {
			brightBase := base + 60
			b.WriteByte(';')
			writeUint(b, uint32(brightBase)+(c.Value-8))
		} else {
			b.WriteByte(';')
			writeUint(b, uint32(base)+8)
			b.WriteString(";5;")
			writeUint(b, c.Value)
		}
	case ColorRGB:
		b.WriteByte(';')
		writeUint(b, uint32(base)+8)
		b.WriteString(";2;")
		writeUint(b, (c.Value>>16)&0xFF)
		b.WriteByte(';')
		writeUint(b, (c.Value>>8)&0xFF)
		b.WriteByte(';')
		writeUint(b, c.Value&0xFF)
	}
}

func writeUint(b *strings.Builder, v uint32) {
	if v == 0 {
		b.WriteByte('0')
		return
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	b.Write(buf[i:])
}
