package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var b Buffer
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())
}

func TestAppend(t *testing.T) {
	var b Buffer
	b.Append("hello")
	b.Append(", world")
	assert.Equal(t, "hello, world", b.String())
	assert.Equal(t, 12, b.Len())
}

func TestAppendN(t *testing.T) {
	var b Buffer
	b.AppendN("hello", 3)
	assert.Equal(t, "hel", b.String())

	b.AppendN("lo", 10)
	assert.Equal(t, "hello", b.String())
}

func TestAppendSeparated(t *testing.T) {
	var b Buffer
	b.Append("path")
	b.AppendSeparated('.', "ext")
	assert.Equal(t, "path.ext", b.String())

	b.Undo()
	assert.Equal(t, "path", b.String(), "separator and tail undo atomically")
}

func TestAppendf(t *testing.T) {
	var b Buffer
	b.Appendf("%d-%s", 42, "x")
	assert.Equal(t, "42-x", b.String())

	b.Undo()
	assert.Equal(t, "", b.String())
}

func TestTruncate(t *testing.T) {
	var b Buffer
	b.Append("truncate me")
	b.Truncate(8)
	assert.Equal(t, "truncate", b.String())

	// Truncating to a longer length leaves the text alone.
	b.Truncate(100)
	assert.Equal(t, "truncate", b.String())
}

func TestUndoAppend(t *testing.T) {
	var b Buffer
	b.Append("keep")
	b.Append(" drop")
	b.Undo()
	assert.Equal(t, "keep", b.String())

	b.Undo()
	assert.Equal(t, "keep", b.String(), "second undo has no effect")
}

func TestUndoTruncate(t *testing.T) {
	var b Buffer
	b.Append("restore me")
	b.Truncate(7)
	assert.Equal(t, "restore", b.String())

	b.Undo()
	assert.Equal(t, "restore me", b.String())
}

func TestNoOpOperationDiscardsPendingUndo(t *testing.T) {
	var b Buffer
	b.Append("text")
	b.Truncate(99) // no effect, but discards the append's undo
	b.Undo()
	assert.Equal(t, "text", b.String())

	b.Append("tail")
	b.Append("") // no-op append likewise discards the pending undo
	b.Undo()
	assert.Equal(t, "texttail", b.String())
}

func TestMinimize(t *testing.T) {
	var b Buffer
	b.Append("some long text that grows the buffer well beyond its content")
	b.Truncate(4)
	b.Minimize()
	assert.Equal(t, "some", b.String())

	b.Undo()
	assert.Equal(t, "some", b.String(), "undo after minimize has no effect")
}
