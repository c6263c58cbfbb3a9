package codec

import (
	"encoding/binary"
	"fmt"
)

// Cursor is a bounds-checked reader over a byte buffer. Every read advances
// the position and fails with ErrShortBuffer instead of panicking when the
// buffer runs out. Slices returned by Bytes share the underlying buffer.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps data without copying it.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current read position.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Seek moves the read position to an absolute offset.
func (c *Cursor) Seek(off int) error {
	if off < 0 || off > len(c.data) {
		return fmt.Errorf("%w: seek to %d in %d bytes", ErrShortBuffer, off, len(c.data))
	}
	c.pos = off
	return nil
}

// Bytes returns the next n bytes as a view into the buffer.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, n, c.pos, c.Remaining())
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// U8 reads a single byte.
func (c *Cursor) U8() (uint8, error) {
	b, err := c.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a 16-bit value using the given byte order.
func (c *Cursor) U16(bo binary.ByteOrder) (uint16, error) {
	b, err := c.Bytes(2)
	if err != nil {
		return 0, err
	}
	return bo.Uint16(b), nil
}

// U32 reads a 32-bit value using the given byte order.
func (c *Cursor) U32(bo binary.ByteOrder) (uint32, error) {
	b, err := c.Bytes(4)
	if err != nil {
		return 0, err
	}
	return bo.Uint32(b), nil
}

// U64 reads a 64-bit value using the given byte order.
func (c *Cursor) U64(bo binary.ByteOrder) (uint64, error) {
	b, err := c.Bytes(8)
	if err != nil {
		return 0, err
	}
	return bo.Uint64(b), nil
}

// Writer accumulates an output buffer. It is the write-side counterpart of
// Cursor; appends grow the buffer and cannot fail.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with capacity for size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// PutU8 appends a single byte.
func (w *Writer) PutU8(v uint8) {
	w.buf = append(w.buf, v)
}

// PutU16 appends a 16-bit value using the given byte order.
func (w *Writer) PutU16(bo binary.ByteOrder, v uint16) {
	var b [2]byte
	bo.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PutU32 appends a 32-bit value using the given byte order.
func (w *Writer) PutU32(bo binary.ByteOrder, v uint32) {
	var b [4]byte
	bo.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PutU64 appends a 64-bit value using the given byte order.
func (w *Writer) PutU64(bo binary.ByteOrder, v uint64) {
	var b [8]byte
	bo.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PutBytes appends raw bytes.
func (w *Writer) PutBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// Pad appends n copies of fill.
func (w *Writer) Pad(n int, fill byte) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, fill)
	}
}
