package vt

// applySGR implements CSI Ps ; ... m. It walks params as a flat sequence so
// both the ';'-delimited form (38;2;R;G;B) and the ':'-delimited
// sub-parameter form (38:2:R:G:B, 38:2::R:G:B) are accepted: extended color
// codes 38/48 consume however many following entries they need regardless
// of which separator produced them.
func (s *Screen) applySGR(params *Params) {
	n := params.Len()
	if n == 0 {
		s.pen = Pen{}
		return
	}

	for i := 0; i < n; i++ {
		v := int(params.Get(i))
		switch v {
		case 0:
			s.pen = Pen{}
		case 1:
			s.pen.Attrs |= AttrBold
		case 2:
			s.pen.Attrs |= AttrDim
		case 3:
			s.pen.Attrs |= AttrItalic
		case 4:
			s.pen.Attrs |= AttrUnderline
		case 5, 6:
			s.pen.Attrs |= AttrBlink
		case 7:
			s.pen.Attrs |= AttrReverse
		case 8:
			s.pen.Attrs |= AttrHidden
		case 9:
			s.pen.Attrs |= AttrStrike
		case 21:
			s.pen.Attrs &^= AttrBold
		case 22:
			s.pen.Attrs &^= AttrBold | AttrDim
		case 23:
			s.pen.Attrs &^= AttrItalic
		case 24:
			s.pen.Attrs &^= AttrUnderline
		case 25:
			s.pen.Attrs &^= AttrBlink
		case 27:
			s.pen.Attrs &^= AttrReverse
		case 28:
			s.pen.Attrs &^= AttrHidden
		case 29:
			s.pen.Attrs &^= AttrStrike
		case 30, 31, 32, 33, 34, 35, 36, 37:
			s.pen.Fg = Color{Type: ColorIndexed, Value: uint32(v - 30)}
		case 38:
			i = s.parseExtendedColor(params, i, &s.pen.Fg)
		case 39:
			s.pen.Fg = Color{Type: ColorDefault}
		case 40, 41, 42, 43, 44, 45, 46, 47:
			s.pen.Bg = Color{Type: ColorIndexed, Value: uint32(v - 40)}
		case 48:
			i = s.parseExtendedColor(params, i, &s.pen.Bg)
		case 49:
			s.pen.Bg = Color{Type: ColorDefault}
		// Bright SGR (90-97/100-107) sets only the bright color, never an
		// implicit bold: see DESIGN.md's resolution of the bright-color
		// Open Question.
		case 90, 91, 92, 93, 94, 95, 96, 97:
			s.pen.Fg = Color{Type: ColorIndexed, Value: uint32(v-90) + 8}
		case 100, 101, 102, 103, 104, 105, 106, 107:
			s.pen.Bg = Color{Type: ColorIndexed, Value: uint32(v-100) + 8}
		}
	}
}

// parseExtendedColor consumes the 256-color or RGB form following a 38/48
// code, whether its arguments were pushed as sub-parameters of i (the ':'
// form) or as independent top-level parameters following it (the ';'
// form). It returns the index of the last entry consumed.
//
// Disambiguating the RGB form's optional colorspace-id by "how many entries
// are left in the whole params list" is wrong: trailing SGR codes after a
// ';'-delimited truecolor run (e.g. "38;2;1;2;3;4") inflate that count just
// like a real colorspace id would. The colorspace id only ever exists as a
// sub-parameter of the ':' form, so it must be disambiguated by IsSub, not
// by how many params happen to follow.
func (s *Screen) parseExtendedColor(params *Params, i int, color *Color) int {
	if i+1 >= params.Len() {
		return i
	}
	modeIdx := i + 1
	mode := params.Get(modeIdx)

	switch mode {
	case 5: // indexed: 38;5;N or 38:5:N
		if modeIdx+1 < params.Len() {
			color.Type = ColorIndexed
			color.Value = uint32(params.Get(modeIdx + 1))
			return modeIdx + 1
		}
	case 2: // RGB
		if params.IsSub(modeIdx) {
			// ':' form: every sub-parameter attached to the mode entry
			// belongs to this one extended-color group. An optional empty
			// colorspace-id subparam ("38:2::R:G:B") precedes R:G:B only
			// here, never in the ';' form.
			subCount := 0
			for j := modeIdx; j < params.Len() && params.IsSub(j); j++ {
				subCount++
			}
			valueCount := subCount - 1 // exclude the mode entry itself
			j := modeIdx + 1
			if valueCount >= 4 {
				j++ // skip the colorspace id
			}
			if j+2 < params.Len() && params.IsSub(j) && params.IsSub(j+1) && params.IsSub(j+2) {
				r, g, b := params.Get(j), params.Get(j+1), params.Get(j+2)
				color.Type = ColorRGB
				color.Value = uint32(r)<<16 | uint32(g)<<8 | uint32(b)
				return j + 2
			}
		} else if modeIdx+3 < params.Len() {
			// ';' form: always exactly R;G;B, never a colorspace id.
			r := params.Get(modeIdx + 1)
			g := params.Get(modeIdx + 2)
			b := params.Get(modeIdx + 3)
			color.Type = ColorRGB
			color.Value = uint32(r)<<16 | uint32(g)<<8 | uint32(b)
			return modeIdx + 3
		}
	}
	return i + 1
}
