// Package textbuf implements a growable text buffer whose append and
// truncate operations can be undone one step back.
package textbuf

import "fmt"

// Buffer is an extensible text buffer. The zero value is an empty buffer
// ready to use.
//
// Every append or truncation records the previous length, so the most
// recent operation can be reverted with Undo. An operation that changes
// nothing still discards any pending undo, which keeps the behaviour
// predictable: Undo never reaches further back than the last call.
type Buffer struct {
	buf     []byte
	undoLen int
}

// Len returns the length of the current text.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// String returns a copy of the current text.
func (b *Buffer) String() string {
	return string(b.buf)
}

// Append adds tail at the end of the current text.
func (b *Buffer) Append(tail string) {
	b.AppendN(tail, len(tail))
}

// AppendN adds at most n bytes of tail at the end of the current text.
func (b *Buffer) AppendN(tail string, n int) {
	if n > len(tail) {
		n = len(tail)
	}
	b.undoLen = len(b.buf)
	b.buf = append(b.buf, tail[:n]...)
}

// AppendSeparated adds sep followed by tail. Unlike two separate appends,
// the whole addition is undone atomically.
func (b *Buffer) AppendSeparated(sep byte, tail string) {
	b.undoLen = len(b.buf)
	b.buf = append(b.buf, sep)
	b.buf = append(b.buf, tail...)
}

// Appendf adds text formatted according to format.
func (b *Buffer) Appendf(format string, args ...any) {
	b.undoLen = len(b.buf)
	b.buf = fmt.Appendf(b.buf, format, args...)
}

// Truncate cuts the current text after n bytes. Text already shorter than
// n is left alone, but any pending undo is still discarded.
func (b *Buffer) Truncate(n int) {
	b.undoLen = len(b.buf)
	if n < len(b.buf) {
		// The cut bytes stay intact past the new length, so Undo can
		// reinstate them.
		b.buf = b.buf[:n]
	}
}

// Undo reverts the most recent append or truncation. Undoing twice, or
// after Minimize, or after an operation that changed nothing, has no
// effect.
func (b *Buffer) Undo() {
	b.buf = b.buf[:b.undoLen]
}

// Minimize re-allocates the buffer to fit the current text exactly and
// discards any pending undo.
func (b *Buffer) Minimize() {
	b.undoLen = len(b.buf)
	if cap(b.buf) > len(b.buf) {
		next := make([]byte, len(b.buf))
		copy(next, b.buf)
		b.buf = next
	}
}
