package vt

// MaxParams bounds the number of CSI/DCS parameters the parser will track in
// one sequence, matching the original vte_parser.h VTE_MAX_PARAMS constant.
const MaxParams = 32

// Params is a fixed-capacity list of CSI/DCS parameters, each of which may
// itself carry sub-parameters (the ":"-separated extended SGR color forms:
// "38:2:255:128:64"). It never allocates after construction.
type Params struct {
	values [MaxParams]uint16
	subs   [MaxParams]uint8 // subparam count that FOLLOWS values[i]
	isSub  [MaxParams]bool  // values[i] is itself a subparam of values[i-1]
	len    int
}

// Clear resets the list to empty without releasing the backing array.
func (p *Params) Clear() {
	p.len = 0
	for i := range p.subs {
		p.subs[i] = 0
		p.isSub[i] = false
	}
}

// Full reports whether the list has reached MaxParams entries.
func (p *Params) Full() bool {
	return p.len >= MaxParams
}

// Push appends a new top-level parameter. If the list is full the value is
// dropped silently; callers are expected to also set the parser's ignoring
// flag when this happens.
func (p *Params) Push(v uint16) {
	if p.Full() {
		return
	}
	p.values[p.len] = v
	p.isSub[p.len] = false
	p.len++
}

// PushSub appends v as a sub-parameter of the most recently pushed parameter.
func (p *Params) PushSub(v uint16) {
	if p.Full() {
		return
	}
	p.values[p.len] = v
	p.isSub[p.len] = true
	if p.len > 0 {
		p.subs[p.len-1]++
	}
	p.len++
}

// Len reports the number of entries, including sub-parameters.
func (p *Params) Len() int {
	return p.len
}

// Get returns the value at index i, or 0 if out of range.
func (p *Params) Get(i int) uint16 {
	if i < 0 || i >= p.len {
		return 0
	}
	return p.values[i]
}

// IsSub reports whether the entry at index i is a sub-parameter.
func (p *Params) IsSub(i int) bool {
	if i < 0 || i >= p.len {
		return false
	}
	return p.isSub[i]
}

// Param returns the i-th top-level parameter's value, falling back to
// def if absent, mirroring ECMA-48's "empty parameter means default" rule.
// Param returns the raw stored value when present, 0 included; callers for
// which 0 also means "default" (motion counts) check for it themselves.
func (p *Params) Param(i int, def uint16) uint16 {
	if i < 0 || i >= p.len {
		return def
	}
	n := -1
	for idx := 0; idx < p.len; idx++ {
		if !p.isSub[idx] {
			n++
			if n == i {
				return p.values[idx]
			}
		}
	}
	return def
}
