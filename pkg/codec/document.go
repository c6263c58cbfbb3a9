package codec

// Document is a fully decoded BCSV table: the header with its schema and one
// slice of cells per row. Documents are built by Decode (or by the CSV
// import path) and consumed by exactly one renderer; they are never mutated
// in place.
type Document struct {
	Header Header
	Rows   [][]Value
}

// Decode parses a complete BCSV payload. The header's endianness flag
// governs every multi-byte read; the first structural violation aborts with
// a typed error and no partial document.
func Decode(data []byte) (*Document, error) {
	c := NewCursor(data)
	h, err := ParseHeader(c)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows(c, h)
	if err != nil {
		return nil, err
	}
	return &Document{Header: *h, Rows: rows}, nil
}

// Encode serializes the document. The output is deterministic for a given
// document and padded to a 32-byte multiple with 0x40, matching the layout
// Decode expects.
func (d *Document) Encode() ([]byte, error) {
	h := d.Header
	h.RowCount = uint32(len(d.Rows))

	w := NewWriter(h.wireSize() + len(d.Rows)*h.RowSize())
	h.Serialize(w)
	if err := encodeRows(w, &h, d.Rows); err != nil {
		return nil, err
	}
	if pad := w.Len() % 32; pad != 0 {
		w.Pad(32-pad, 0x40)
	}
	return w.Bytes(), nil
}
