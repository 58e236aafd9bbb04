package artnet

import (
	"bytes"
	"encoding/binary"
)

// cursor is a bounds-checked reader over a packet body. Every read
// consumes exactly the bytes of one field and fails with ErrTruncated
// instead of reading past the end of the buffer.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) readByte() (byte, error) {
	if c.remaining() < 1 {
		return 0, ErrTruncated
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) readUint16LE() (uint16, error) {
	if c.remaining() < 2 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *cursor) readUint16BE() (uint16, error) {
	if c.remaining() < 2 {
		return 0, ErrTruncated
	}
	v := binary.BigEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

// readInto fills dst with the next len(dst) bytes.
func (c *cursor) readInto(dst []byte) error {
	if c.remaining() < len(dst) {
		return ErrTruncated
	}
	copy(dst, c.buf[c.pos:])
	c.pos += len(dst)
	return nil
}

// rest consumes and returns a copy of all remaining bytes. Used by
// trailing payloads that are not length-prefixed within the field.
func (c *cursor) rest() []byte {
	out := make([]byte, c.remaining())
	copy(out, c.buf[c.pos:])
	c.pos = len(c.buf)
	return out
}

func putUint16LE(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func putUint16BE(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}
