package vt

// state is one node of the Paul Williams DEC-compatible parser state
// machine. Naming and transitions are grounded on the original C
// implementation's vte_parser.h state enum and on govte's State type; the
// set below has fourteen states.
type state uint8

const (
	stateGround state = iota
	stateEscape
	stateEscapeIntermediate
	stateCSIEntry
	stateCSIParam
	stateCSIIntermediate
	stateCSIIgnore
	stateDCSEntry
	stateDCSParam
	stateDCSIntermediate
	stateDCSPassthrough
	stateDCSIgnore
	stateOSCString
	stateSOSPMAPCString
)

func (s state) String() string {
	switch s {
	case stateGround:
		return "Ground"
	case stateEscape:
		return "Escape"
	case stateEscapeIntermediate:
		return "EscapeIntermediate"
	case stateCSIEntry:
		return "CSIEntry"
	case stateCSIParam:
		return "CSIParam"
	case stateCSIIntermediate:
		return "CSIIntermediate"
	case stateCSIIgnore:
		return "CSIIgnore"
	case stateDCSEntry:
		return "DCSEntry"
	case stateDCSParam:
		return "DCSParam"
	case stateDCSIntermediate:
		return "DCSIntermediate"
	case stateDCSPassthrough:
		return "DCSPassthrough"
	case stateDCSIgnore:
		return "DCSIgnore"
	case stateOSCString:
		return "OSCString"
	case stateSOSPMAPCString:
		return "SOSPMAPCString"
	default:
		return "Unknown"
	}
}

const (
	maxIntermediates = 2
	maxOSCRaw        = 1024
	maxOSCParams     = 16
)
