package codec

import "fmt"

// Magic is the four-byte marker every BCSV payload starts with.
var Magic = [4]byte{'B', 'C', 'S', 'V'}

const (
	// Version1 payloads carry no column selection on the wire; every column
	// is included.
	Version1 = 1
	// Version2 payloads carry a selection bitset after the row count.
	Version2 = 2

	// MaxFields bounds the declared column count of untrusted headers.
	MaxFields = 1<<16 - 1

	fieldWireSize = 11
)

// Header is the parsed BCSV preamble: format version, the flags recorded at
// encode time, the schema, and the row count. Selection is nil for Version1
// headers, meaning all columns are included.
type Header struct {
	Version   uint8
	Endian    Endianness
	Signed    bool
	Delim     byte
	Fields    []Field
	RowCount  uint32
	Selection Selection
}

// RowSize returns the byte width of one stored row.
func (h *Header) RowSize() int {
	n := 0
	for _, f := range h.Fields {
		n += int(f.Width)
	}
	return n
}

// Included reports whether column i participates in rendered output.
func (h *Header) Included(i int) bool {
	return h.Selection.Included(i)
}

// IncludedCount returns the number of output columns.
func (h *Header) IncludedCount() int {
	return h.Selection.Count(len(h.Fields))
}

// wireSize returns the serialized header size.
func (h *Header) wireSize() int {
	n := 4 + 1 + 1 + 1 + 1 + 4 + len(h.Fields)*fieldWireSize + 4
	if h.Version >= Version2 {
		n += selectionSize(len(h.Fields))
	}
	return n
}

// ParseHeader consumes the preamble from the cursor. Validation is strict:
// the first structural violation aborts with a typed error and the cursor is
// left in an undefined position.
func ParseHeader(c *Cursor) (*Header, error) {
	magic, err := c.Bytes(4)
	if err != nil {
		return nil, err
	}
	if [4]byte(magic) != Magic {
		return nil, fmt.Errorf("%w: % x", ErrBadMagic, magic)
	}

	h := &Header{}
	if h.Version, err = c.U8(); err != nil {
		return nil, err
	}
	if h.Version < Version1 || h.Version > Version2 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}

	endian, err := c.U8()
	if err != nil {
		return nil, err
	}
	if endian > uint8(LittleEndian) {
		return nil, fmt.Errorf("%w: endianness byte %#02x", ErrInvalidFlag, endian)
	}
	h.Endian = Endianness(endian)

	signed, err := c.U8()
	if err != nil {
		return nil, err
	}
	if signed > 1 {
		return nil, fmt.Errorf("%w: signedness byte %#02x", ErrInvalidFlag, signed)
	}
	h.Signed = signed == 1

	if h.Delim, err = c.U8(); err != nil {
		return nil, err
	}

	bo := h.Endian.ByteOrder()
	cols, err := c.U32(bo)
	if err != nil {
		return nil, err
	}
	if cols > MaxFields {
		return nil, fmt.Errorf("%w: %d columns", ErrSchemaTooLarge, cols)
	}

	h.Fields = make([]Field, cols)
	for i := range h.Fields {
		f := Field{}
		if f.Hash, err = c.U32(bo); err != nil {
			return nil, err
		}
		if f.Bitmask, err = c.U32(bo); err != nil {
			return nil, err
		}
		if f.Width, err = c.U8(); err != nil {
			return nil, err
		}
		if f.Shift, err = c.U8(); err != nil {
			return nil, err
		}
		tag, err := c.U8()
		if err != nil {
			return nil, err
		}
		f.Type = FieldType(tag)
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		h.Fields[i] = f
	}

	if h.RowCount, err = c.U32(bo); err != nil {
		return nil, err
	}

	if h.Version >= Version2 {
		bits, err := c.Bytes(selectionSize(len(h.Fields)))
		if err != nil {
			return nil, err
		}
		h.Selection = Selection(append([]byte(nil), bits...))
	}
	return h, nil
}

// Serialize appends the header to the writer. Output is deterministic: the
// same logical header always produces identical bytes.
func (h *Header) Serialize(w *Writer) {
	w.PutBytes(Magic[:])
	w.PutU8(h.Version)
	w.PutU8(uint8(h.Endian))
	if h.Signed {
		w.PutU8(1)
	} else {
		w.PutU8(0)
	}
	w.PutU8(h.Delim)

	bo := h.Endian.ByteOrder()
	w.PutU32(bo, uint32(len(h.Fields)))
	for _, f := range h.Fields {
		w.PutU32(bo, f.Hash)
		w.PutU32(bo, f.Bitmask)
		w.PutU8(f.Width)
		w.PutU8(f.Shift)
		w.PutU8(uint8(f.Type))
	}
	w.PutU32(bo, h.RowCount)

	if h.Version >= Version2 {
		bits := make([]byte, selectionSize(len(h.Fields)))
		if h.Selection == nil {
			copy(bits, AllColumns(len(h.Fields)))
		} else {
			copy(bits, h.Selection)
		}
		w.PutBytes(bits)
	}
}
