// Package vt implements a DEC/ECMA-48-compatible escape sequence parser and
// the screen model it drives: a cell grid with cursor, scrolling region,
// tab stops, modes, and character-set state. It does not own a
// pseudo-terminal, an event loop, or a renderer — see internal/pty and
// internal/render for those.
package vt
