package codec

import (
	"fmt"
	"math"
)

// decodeRows consumes RowCount rows from the cursor and resolves string-table
// offsets against the region that follows them. Masked-out columns are still
// stored in every row; the selection only affects rendering.
func decodeRows(c *Cursor, h *Header) ([][]Value, error) {
	rowSize := h.RowSize()
	if rowSize == 0 && h.RowCount > 0 {
		return nil, fmt.Errorf("%w: %d rows declared by a zero-width schema",
			ErrTruncatedRow, h.RowCount)
	}
	need := int(h.RowCount) * rowSize
	if c.Remaining() < need {
		return nil, fmt.Errorf("%w: %d rows of %d bytes need %d bytes, have %d",
			ErrTruncatedRow, h.RowCount, rowSize, need, c.Remaining())
	}

	bo := h.Endian.ByteOrder()
	rows := make([][]Value, h.RowCount)
	for r := range rows {
		row := make([]Value, len(h.Fields))
		for i, f := range h.Fields {
			v := Value{Type: f.Type}
			switch f.Type {
			case TypeLong, TypeULong, TypeStringOff:
				raw, err := c.U32(bo)
				if err != nil {
					return nil, err
				}
				v.Raw = raw
			case TypeFloat:
				raw, err := c.U32(bo)
				if err != nil {
					return nil, err
				}
				v.F32 = math.Float32frombits(raw)
			case TypeShort:
				raw, err := c.U16(bo)
				if err != nil {
					return nil, err
				}
				v.Raw = uint32(raw)
			case TypeChar:
				raw, err := c.U8()
				if err != nil {
					return nil, err
				}
				v.Raw = uint32(raw)
			case TypeString:
				b, err := c.Bytes(int(f.Width))
				if err != nil {
					return nil, err
				}
				v.Text = trimNul(b)
			}
			row[i] = v
		}
		rows[r] = row
	}

	// Everything after the rows is the string table.
	tableStart := c.Pos()
	for _, row := range rows {
		for i := range row {
			if row[i].Type != TypeStringOff {
				continue
			}
			s, err := readTableString(c.data, tableStart, row[i].Raw)
			if err != nil {
				return nil, err
			}
			row[i].Text = s
		}
	}
	return rows, nil
}

// encodeRows appends the row region and the string table. String offsets are
// assigned in first-use order so the output is deterministic.
func encodeRows(w *Writer, h *Header, rows [][]Value) error {
	bo := h.Endian.ByteOrder()
	table := newStringTable()

	for r, row := range rows {
		if len(row) != len(h.Fields) {
			return fmt.Errorf("%w: row %d has %d cells, schema has %d columns",
				ErrTruncatedRow, r, len(row), len(h.Fields))
		}
		for i, f := range h.Fields {
			v := row[i]
			if v.Type != f.Type {
				return fmt.Errorf("%w: row %d column %d holds %s, schema declares %s",
					ErrInvalidColumnType, r, i, v.Type, f.Type)
			}
			switch f.Type {
			case TypeLong, TypeULong:
				w.PutU32(bo, v.Raw)
			case TypeFloat:
				w.PutU32(bo, math.Float32bits(v.F32))
			case TypeShort:
				w.PutU16(bo, uint16(v.Raw))
			case TypeChar:
				w.PutU8(uint8(v.Raw))
			case TypeString:
				if len(v.Text) > int(f.Width) {
					return fmt.Errorf("%w: %q exceeds %d-byte string column",
						ErrValueOutOfRange, v.Text, f.Width)
				}
				w.PutBytes([]byte(v.Text))
				w.Pad(int(f.Width)-len(v.Text), 0)
			case TypeStringOff:
				w.PutU32(bo, table.add(v.Text))
			}
		}
	}

	w.PutBytes(table.bytes())
	return nil
}
