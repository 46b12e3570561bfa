package vt

import "testing"

type recorder struct {
	NopPerformer
	prints []rune
	execs  []byte
	csis   []byte
	escs   []byte
	hooks  int
	puts   []byte
	unhook int
	osc    [][]string
}

func (r *recorder) Print(c rune)      { r.prints = append(r.prints, c) }
func (r *recorder) Execute(b byte)    { r.execs = append(r.execs, b) }
func (r *recorder) CsiDispatch(params *Params, intermediates []byte, ignore bool, final byte) {
	r.csis = append(r.csis, final)
}
func (r *recorder) EscDispatch(intermediates []byte, ignore bool, final byte) {
	r.escs = append(r.escs, final)
}
func (r *recorder) OscDispatch(params [][]byte, bellTerminated bool) {
	var ss []string
	for _, p := range params {
		ss = append(ss, string(p))
	}
	r.osc = append(r.osc, ss)
}
func (r *recorder) Hook(params *Params, intermediates []byte, ignore bool, final byte) { r.hooks++ }
func (r *recorder) Put(b byte)                                                        { r.puts = append(r.puts, b) }
func (r *recorder) Unhook()                                                           { r.unhook++ }

func TestParserPrintAndExecute(t *testing.T) {
	p := NewParser()
	r := &recorder{}
	p.Feed(r, []byte("hi\n"))
	if string(r.prints) != "hi" {
		t.Errorf("prints = %q, want %q", string(r.prints), "hi")
	}
	if len(r.execs) != 1 || r.execs[0] != '\n' {
		t.Errorf("execs = %v, want [\\n]", r.execs)
	}
}

func TestParserCSIFinalByteDispatches(t *testing.T) {
	p := NewParser()
	r := &recorder{}
	p.Feed(r, []byte("\x1b[1;2H"))
	if len(r.csis) != 1 || r.csis[0] != 'H' {
		t.Fatalf("csis = %v, want ['H']", r.csis)
	}
	if p.State() != "Ground" {
		t.Errorf("state after CSI dispatch = %s, want Ground", p.State())
	}
}

func TestParserCSIIgnoreOnUnexpectedPrivateMarkerPosition(t *testing.T) {
	// A private marker byte appearing after params have started is invalid
	// and should push the sequence into CSI_IGNORE rather than dispatch.
	p := NewParser()
	r := &recorder{}
	p.Feed(r, []byte("\x1b[1;?m"))
	if len(r.csis) != 0 {
		t.Errorf("csis = %v, want none (sequence should be ignored)", r.csis)
	}
	if p.State() != "Ground" {
		t.Errorf("state = %s, want Ground after final byte closes CSI_IGNORE", p.State())
	}
}

func TestParserOSCSplitsOnSemicolon(t *testing.T) {
	p := NewParser()
	r := &recorder{}
	p.Feed(r, []byte("\x1b]0;my title\x07"))
	if len(r.osc) != 1 {
		t.Fatalf("osc dispatches = %d, want 1", len(r.osc))
	}
	got := r.osc[0]
	if len(got) != 2 || got[0] != "0" || got[1] != "my title" {
		t.Errorf("osc params = %v, want [0 \"my title\"]", got)
	}
}

func TestParserDCSHookPutUnhook(t *testing.T) {
	p := NewParser()
	r := &recorder{}
	p.Feed(r, []byte("\x1bP1$qm\x1b\\"))
	if r.hooks != 1 {
		t.Errorf("hooks = %d, want 1", r.hooks)
	}
	if r.unhook != 1 {
		t.Errorf("unhook = %d, want 1", r.unhook)
	}
}

func TestParserSOSPMAPCStringDiscarded(t *testing.T) {
	p := NewParser()
	r := &recorder{}
	p.Feed(r, []byte("\x1b_this is an APC string\x1b\\OK"))
	if string(r.prints) != "OK" {
		t.Errorf("prints = %q, want %q (APC payload must be discarded)", string(r.prints), "OK")
	}
}

func TestParserParamSaturatesAt65535(t *testing.T) {
	p := NewParser()
	r := &recorder{}
	p.Feed(r, []byte("\x1b[999999999m"))
	if len(r.csis) != 1 {
		t.Fatalf("expected one SGR dispatch")
	}
	if p.params.Get(0) != 0xFFFF {
		t.Errorf("param = %d, want saturated 65535", p.params.Get(0))
	}
}

func TestParserOverflowParamsSetsIgnoring(t *testing.T) {
	p := NewParser()
	r := &recorder{}
	var seq []byte
	seq = append(seq, "\x1b["...)
	for i := 0; i < 40; i++ {
		seq = append(seq, "1;"...)
	}
	seq = append(seq, 'm')
	p.Feed(r, seq)
	if len(r.csis) != 1 {
		t.Fatalf("expected dispatch even when ignoring")
	}
}

func TestParserResetReturnsToGround(t *testing.T) {
	p := NewParser()
	r := &recorder{}
	p.Feed(r, []byte("\x1b["))
	if p.State() == "Ground" {
		t.Fatalf("expected non-ground state mid-sequence")
	}
	p.Reset()
	if p.State() != "Ground" {
		t.Errorf("state after Reset = %s, want Ground", p.State())
	}
}

func FuzzFeed(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte("\x1b[31mred\x1b[0m"))
	f.Add([]byte("\x1b[?1049h\x1b[H\x1b[2J"))
	f.Add([]byte("\x1bPsixel-ish-garbage\x1b\\"))
	f.Fuzz(func(t *testing.T, data []byte) {
		s := New(80, 24)
		s.Feed(data)
		x, y := s.Cursor()
		if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
			t.Fatalf("cursor escaped grid bounds: (%d,%d)", x, y)
		}
	})
}
