// Package intio reads and writes integers on byte streams in
// little-endian order (least significant byte first).
package intio

import (
	"encoding/binary"
	"io"
)

// ReadInt32LE reads four little-endian bytes from r and assembles them
// into a signed 32-bit integer. A short read reports an error.
func ReadInt32LE(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

// WriteInt32LE disassembles num into four little-endian bytes and writes
// them to w.
func WriteInt32LE(w io.Writer, num int32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(num))
	_, err := w.Write(buf[:])
	return err
}
