package vt

import "unicode/utf8"

// Parser implements the Paul Williams DEC-compatible escape sequence state
// machine together with UTF-8 decoding. It is grounded on govte's Parser
// (same state set, same collect/dispatch helper shape) and on the original
// C vte_parser.c/.h, which fixes the scratch capacities reused here:
// MaxParams (32), maxIntermediates (2), maxOSCRaw (1024), and a 4-byte
// partial-UTF-8 buffer.
//
// A Parser is reusable across many Feed calls and carries no reference to
// any particular Performer between calls, so one Parser can drive different
// Screens (or test doubles) over its lifetime, though in practice a Screen
// owns exactly one Parser for its whole life.
type Parser struct {
	st state

	params       Params
	intermediate [maxIntermediates]byte
	intermLen    int
	ignoring     bool

	curParam    uint16
	haveParam   bool

	oscRaw    [maxOSCRaw]byte
	oscLen    int
	oscParams [maxOSCParams]int // byte offsets of ';' boundaries within oscRaw
	oscNParam int

	pendingESC bool // DCS/OSC/SOS-PM-APC saw ESC, waiting to see if next byte is '\'

	partial    [4]byte
	partialLen int
	partialWant int
}

// NewParser returns a Parser in the GROUND state with empty scratch.
func NewParser() *Parser {
	return &Parser{}
}

// State reports the parser's current state, primarily for tests.
func (p *Parser) State() string { return p.st.String() }

// Reset returns the parser to GROUND and clears all scratch, the moral
// equivalent of the child sending CAN or SUB.
func (p *Parser) Reset() {
	p.st = stateGround
	p.clearParams()
	p.intermLen = 0
	p.ignoring = false
	p.oscLen = 0
	p.oscNParam = 0
	p.pendingESC = false
	p.partialLen = 0
	p.partialWant = 0
}

func (p *Parser) clearParams() {
	p.params.Clear()
	p.curParam = 0
	p.haveParam = false
}

// Feed consumes bytes, driving the state machine and invoking perf for each
// recognized event. It never fails; malformed input is absorbed by
// returning to GROUND or setting the ignore flag. The only allocation is the
// slice of OSC parameter segments built for each OscDispatch call.
func (p *Parser) Feed(perf Performer, data []byte) {
	i := 0
	for i < len(data) {
		b := data[i]
		i++

		// UTF-8 is only meaningful in GROUND; every other state receives
		// the raw byte, high bytes included, and its own advance method
		// decides what to do with it (0x9C, for example, is ST in the
		// DCS/OSC/SOS-PM-APC string states).
		if p.st == stateGround {
			if b < 0x80 {
				p.advanceGround(perf, b)
				continue
			}
			p.advanceUTF8(perf, b)
			continue
		}

		p.advance(perf, b)
	}
}

func (p *Parser) advanceUTF8(perf Performer, b byte) {
	if p.partialLen == 0 {
		n := utf8SeqLen(b)
		if n <= 1 {
			perf.Print(utf8.RuneError)
			return
		}
		p.partial[0] = b
		p.partialLen = 1
		p.partialWant = n
		return
	}

	if b&0xC0 != 0x80 {
		// not a continuation byte: the previous sequence was truncated
		perf.Print(utf8.RuneError)
		p.partialLen = 0
		p.partialWant = 0
		// reprocess b as a fresh lead byte
		if b < 0x80 {
			p.advanceGround(perf, b)
		} else {
			p.advanceUTF8(perf, b)
		}
		return
	}

	p.partial[p.partialLen] = b
	p.partialLen++
	if p.partialLen < p.partialWant {
		return
	}

	r, size := utf8.DecodeRune(p.partial[:p.partialLen])
	if r == utf8.RuneError && size <= 1 {
		perf.Print(utf8.RuneError)
	} else {
		perf.Print(r)
	}
	p.partialLen = 0
	p.partialWant = 0
}

func utf8SeqLen(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// advance dispatches a single byte according to the current state. ESC
// (anywhere outside GROUND/ESCAPE) aborts the current sequence and starts a
// new ESCAPE, matching the DEC override rule; CAN/SUB abort to GROUND.
func (p *Parser) advance(perf Performer, b byte) {
	switch p.st {
	case stateEscape, stateEscapeIntermediate, stateCSIEntry, stateCSIParam,
		stateCSIIntermediate, stateCSIIgnore, stateDCSEntry, stateDCSParam, stateDCSIntermediate:
		if b == 0x18 || b == 0x1A { // CAN, SUB
			perf.Execute(b)
			p.st = stateGround
			return
		}
		if b == 0x1B && p.st != stateEscape {
			p.enterEscape()
			return
		}
	}

	switch p.st {
	case stateEscape:
		p.advanceEscape(perf, b)
	case stateEscapeIntermediate:
		p.advanceEscapeIntermediate(perf, b)
	case stateCSIEntry:
		p.advanceCSIEntry(perf, b)
	case stateCSIParam:
		p.advanceCSIParam(perf, b)
	case stateCSIIntermediate:
		p.advanceCSIIntermediate(perf, b)
	case stateCSIIgnore:
		p.advanceCSIIgnore(perf, b)
	case stateDCSEntry:
		p.advanceDCSEntry(perf, b)
	case stateDCSParam:
		p.advanceDCSParam(perf, b)
	case stateDCSIntermediate:
		p.advanceDCSIntermediate(perf, b)
	case stateDCSPassthrough:
		p.advanceDCSPassthrough(perf, b)
	case stateDCSIgnore:
		p.advanceDCSIgnore(perf, b)
	case stateOSCString:
		p.advanceOSCString(perf, b)
	case stateSOSPMAPCString:
		p.advanceSOSPMAPCString(perf, b)
	}
}

func (p *Parser) advanceGround(perf Performer, b byte) {
	switch {
	case b == 0x1B:
		p.enterEscape()
	case b < 0x20, b == 0x7F:
		perf.Execute(b)
	default:
		perf.Print(rune(b))
	}
}

func (p *Parser) enterEscape() {
	p.st = stateEscape
	p.intermLen = 0
	p.ignoring = false
}

func (p *Parser) enterCSIEntry() {
	p.st = stateCSIEntry
	p.clearParams()
	p.intermLen = 0
	p.ignoring = false
}

func (p *Parser) enterDCSEntry() {
	p.st = stateDCSEntry
	p.clearParams()
	p.intermLen = 0
	p.ignoring = false
}

func (p *Parser) enterOSCString() {
	p.st = stateOSCString
	p.oscLen = 0
	p.oscNParam = 0
	p.pendingESC = false
}

func (p *Parser) enterSOSPMAPC() {
	p.st = stateSOSPMAPCString
	p.pendingESC = false
}

func (p *Parser) collectIntermediate(b byte) {
	if p.intermLen >= maxIntermediates {
		p.ignoring = true
		return
	}
	p.intermediate[p.intermLen] = b
	p.intermLen++
}

func (p *Parser) intermediates() []byte {
	return p.intermediate[:p.intermLen]
}

func (p *Parser) advanceEscape(perf Performer, b byte) {
	switch {
	case b < 0x20:
		perf.Execute(b)
	case b >= 0x20 && b <= 0x2F:
		p.collectIntermediate(b)
		p.st = stateEscapeIntermediate
	case b == 0x50: // DCS
		p.enterDCSEntry()
	case b == 0x5B: // CSI
		p.enterCSIEntry()
	case b == 0x5D: // OSC
		p.enterOSCString()
	case b == 0x58, b == 0x5E, b == 0x5F: // SOS, PM, APC
		p.enterSOSPMAPC()
	case b == 0x7F:
		// ignore
	case b >= 0x30 && b <= 0x7E:
		perf.EscDispatch(p.intermediates(), p.ignoring, b)
		p.st = stateGround
	default:
		p.st = stateGround
	}
}

func (p *Parser) advanceEscapeIntermediate(perf Performer, b byte) {
	switch {
	case b < 0x20:
		perf.Execute(b)
	case b >= 0x20 && b <= 0x2F:
		p.collectIntermediate(b)
	case b >= 0x30 && b <= 0x7E:
		perf.EscDispatch(p.intermediates(), p.ignoring, b)
		p.st = stateGround
	default:
		// 0x7F ignored, all else returns to ground
		if b != 0x7F {
			p.st = stateGround
		}
	}
}

func (p *Parser) paramDigit(b byte) {
	if !p.haveParam {
		p.haveParam = true
		p.curParam = 0
	}
	v := uint32(p.curParam)*10 + uint32(b-'0')
	if v > 0xFFFF {
		v = 0xFFFF
	}
	p.curParam = uint16(v)
}

func (p *Parser) paramSeparator() {
	if p.params.Full() {
		p.ignoring = true
		p.haveParam = false
		p.curParam = 0
		return
	}
	p.params.Push(p.curParam)
	p.haveParam = false
	p.curParam = 0
}

func (p *Parser) paramSubSeparator() {
	if p.params.Full() {
		p.ignoring = true
		p.haveParam = false
		p.curParam = 0
		return
	}
	p.params.PushSub(p.curParam)
	p.haveParam = false
	p.curParam = 0
}

func (p *Parser) finishParam() {
	if p.haveParam || p.params.Len() == 0 {
		if p.params.Full() {
			p.ignoring = true
		} else {
			p.params.Push(p.curParam)
		}
	}
	p.haveParam = false
	p.curParam = 0
}

func (p *Parser) advanceCSIEntry(perf Performer, b byte) {
	p.csiEntryOrParam(perf, b, stateCSIEntry)
}

func (p *Parser) advanceCSIParam(perf Performer, b byte) {
	p.csiEntryOrParam(perf, b, stateCSIParam)
}

func (p *Parser) csiEntryOrParam(perf Performer, b byte, from state) {
	switch {
	case b < 0x20:
		perf.Execute(b)
	case b >= '0' && b <= '9':
		p.paramDigit(b)
		p.st = stateCSIParam
	case b == ';':
		p.paramSeparator()
		p.st = stateCSIParam
	case b == ':':
		p.paramSubSeparator()
		p.st = stateCSIParam
	case b >= 0x3C && b <= 0x3F: // private markers < = > ?
		if from == stateCSIEntry {
			p.collectIntermediate(b)
			p.st = stateCSIParam
		} else {
			p.ignoring = true
			p.st = stateCSIIgnore
		}
	case b >= 0x20 && b <= 0x2F:
		p.collectIntermediate(b)
		p.st = stateCSIIntermediate
	case b >= 0x40 && b <= 0x7E:
		p.finishParam()
		perf.CsiDispatch(&p.params, p.intermediates(), p.ignoring, b)
		p.st = stateGround
	case b == 0x7F:
		// ignore
	default:
		p.ignoring = true
		p.st = stateCSIIgnore
	}
}

func (p *Parser) advanceCSIIntermediate(perf Performer, b byte) {
	switch {
	case b < 0x20:
		perf.Execute(b)
	case b >= 0x20 && b <= 0x2F:
		p.collectIntermediate(b)
	case b >= 0x40 && b <= 0x7E:
		p.finishParam()
		perf.CsiDispatch(&p.params, p.intermediates(), p.ignoring, b)
		p.st = stateGround
	case b == 0x7F:
		// ignore
	default:
		p.ignoring = true
		p.st = stateCSIIgnore
	}
}

func (p *Parser) advanceCSIIgnore(perf Performer, b byte) {
	switch {
	case b < 0x20:
		perf.Execute(b)
	case b >= 0x40 && b <= 0x7E:
		p.st = stateGround
	default:
		// stay in ignore
	}
}

func (p *Parser) advanceDCSEntry(perf Performer, b byte) {
	p.dcsEntryOrParam(perf, b, stateDCSEntry)
}

func (p *Parser) advanceDCSParam(perf Performer, b byte) {
	p.dcsEntryOrParam(perf, b, stateDCSParam)
}

func (p *Parser) dcsEntryOrParam(perf Performer, b byte, from state) {
	switch {
	case b < 0x20:
		// ignored inside DCS entry/param per DEC
	case b >= '0' && b <= '9':
		p.paramDigit(b)
		p.st = stateDCSParam
	case b == ';':
		p.paramSeparator()
		p.st = stateDCSParam
	case b == ':':
		p.paramSubSeparator()
		p.st = stateDCSParam
	case b >= 0x3C && b <= 0x3F:
		if from == stateDCSEntry {
			p.collectIntermediate(b)
			p.st = stateDCSParam
		} else {
			p.ignoring = true
			p.st = stateDCSIgnore
		}
	case b >= 0x20 && b <= 0x2F:
		p.collectIntermediate(b)
		p.st = stateDCSIntermediate
	case b >= 0x40 && b <= 0x7E:
		p.finishParam()
		perf.Hook(&p.params, p.intermediates(), p.ignoring, b)
		p.st = stateDCSPassthrough
		p.pendingESC = false
	case b == 0x7F:
		// ignore
	default:
		p.ignoring = true
		p.st = stateDCSIgnore
	}
}

func (p *Parser) advanceDCSIntermediate(perf Performer, b byte) {
	switch {
	case b < 0x20:
		// ignored
	case b >= 0x20 && b <= 0x2F:
		p.collectIntermediate(b)
	case b >= 0x40 && b <= 0x7E:
		p.finishParam()
		perf.Hook(&p.params, p.intermediates(), p.ignoring, b)
		p.st = stateDCSPassthrough
		p.pendingESC = false
	case b == 0x7F:
		// ignore
	default:
		p.ignoring = true
		p.st = stateDCSIgnore
	}
}

func (p *Parser) advanceDCSPassthrough(perf Performer, b byte) {
	switch {
	case p.pendingESC:
		p.pendingESC = false
		if b == 0x5C { // ST
			perf.Unhook()
			p.st = stateGround
			return
		}
		// not actually ST: the ESC we buffered belongs to a new sequence.
		perf.Unhook()
		p.enterEscape()
		p.advanceEscape(perf, b)
		return
	case b == 0x1B:
		p.pendingESC = true
	case b == 0x9C: // 8-bit ST
		perf.Unhook()
		p.st = stateGround
	case b == 0x18, b == 0x1A: // CAN, SUB
		perf.Unhook()
		perf.Execute(b)
		p.st = stateGround
	default:
		perf.Put(b)
	}
}

func (p *Parser) advanceDCSIgnore(perf Performer, b byte) {
	switch {
	case p.pendingESC:
		p.pendingESC = false
		if b == 0x5C {
			p.st = stateGround
			return
		}
		p.enterEscape()
		p.advanceEscape(perf, b)
	case b == 0x1B:
		p.pendingESC = true
	case b == 0x9C, b == 0x18, b == 0x1A:
		p.st = stateGround
	default:
		// discard
	}
}

func (p *Parser) oscMarkParam() {
	if p.oscNParam >= maxOSCParams {
		return
	}
	p.oscParams[p.oscNParam] = p.oscLen
	p.oscNParam++
}

func (p *Parser) advanceOSCString(perf Performer, b byte) {
	switch {
	case p.pendingESC:
		p.pendingESC = false
		if b == 0x5C {
			p.finishOSC(perf, true)
			return
		}
		p.finishOSC(perf, true)
		p.enterEscape()
		p.advanceEscape(perf, b)
	case b == 0x07: // BEL
		p.finishOSC(perf, false)
	case b == 0x1B:
		p.pendingESC = true
	case b == 0x9C:
		p.finishOSC(perf, true)
	case b == 0x18, b == 0x1A:
		p.oscLen = 0
		p.oscNParam = 0
		p.st = stateGround
	case b == ';':
		p.oscMarkParam()
		if p.oscLen < maxOSCRaw {
			p.oscRaw[p.oscLen] = b
			p.oscLen++
		}
	default:
		if p.oscLen < maxOSCRaw {
			p.oscRaw[p.oscLen] = b
			p.oscLen++
		}
	}
}

func (p *Parser) finishOSC(perf Performer, stTerminated bool) {
	// split p.oscRaw[:p.oscLen] on recorded ';' boundaries into segments
	var segs [][]byte
	start := 0
	for i := 0; i < p.oscNParam; i++ {
		end := p.oscParams[i]
		segs = append(segs, p.oscRaw[start:end])
		start = end + 1 // skip the ';' byte itself
	}
	segs = append(segs, p.oscRaw[start:p.oscLen])
	perf.OscDispatch(segs, !stTerminated)
	p.oscLen = 0
	p.oscNParam = 0
	p.st = stateGround
}

func (p *Parser) advanceSOSPMAPCString(perf Performer, b byte) {
	switch {
	case p.pendingESC:
		p.pendingESC = false
		if b == 0x5C {
			p.st = stateGround
			return
		}
		p.enterEscape()
		p.advanceEscape(perf, b)
	case b == 0x1B:
		p.pendingESC = true
	case b == 0x9C, b == 0x18, b == 0x1A:
		p.st = stateGround
	default:
		// discarded: sixel and other DCS/APC payloads never reach Print
	}
}
