package csvio

import (
	"bytes"

	"github.com/varkrai/bcsv/pkg/codec"
	"github.com/varkrai/bcsv/pkg/namehash"
)

// Renderer turns decoded documents into delimited text. A zero Renderer uses
// ',' and renders integers unsigned with hex column names.
type Renderer struct {
	Delim  byte
	Signed bool
	Names  namehash.Table
}

// Render emits the label line followed by one line per row, honoring the
// document's column selection. Output is deterministic and ends with a
// newline.
func (r *Renderer) Render(doc *codec.Document) []byte {
	delim := r.Delim
	if delim == 0 {
		delim = ','
	}

	var buf bytes.Buffer
	h := &doc.Header

	first := true
	for i, f := range h.Fields {
		if !h.Included(i) {
			continue
		}
		if !first {
			buf.WriteByte(delim)
		}
		writeCell(&buf, FormatLabel(f, r.Names), delim)
		first = false
	}
	buf.WriteByte('\n')

	for _, row := range doc.Rows {
		first = true
		for i, f := range h.Fields {
			if !h.Included(i) {
				continue
			}
			if !first {
				buf.WriteByte(delim)
			}
			writeCell(&buf, row[i].Format(f, r.Signed), delim)
			first = false
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// writeCell appends one cell, quoting it when it contains the delimiter, a
// quote, or a line break. Embedded quotes are doubled.
func writeCell(buf *bytes.Buffer, cell string, delim byte) {
	if !cellNeedsQuote(cell, delim) {
		buf.WriteString(cell)
		return
	}
	buf.WriteByte('"')
	for i := 0; i < len(cell); i++ {
		if cell[i] == '"' {
			buf.WriteByte('"')
		}
		buf.WriteByte(cell[i])
	}
	buf.WriteByte('"')
}

func cellNeedsQuote(cell string, delim byte) bool {
	for i := 0; i < len(cell); i++ {
		switch cell[i] {
		case delim, '"', '\n', '\r':
			return true
		}
	}
	return false
}
