package codec

import "fmt"

// stringTable builds the de-duplicated NUL-terminated string region that
// follows the row data. Strings are laid out in first-use order, so encoding
// is deterministic.
type stringTable struct {
	offs map[string]uint32
	data []byte
}

func newStringTable() *stringTable {
	return &stringTable{offs: make(map[string]uint32)}
}

// add interns s and returns its offset from the start of the table.
func (t *stringTable) add(s string) uint32 {
	if off, ok := t.offs[s]; ok {
		return off
	}
	off := uint32(len(t.data))
	t.offs[s] = off
	t.data = append(t.data, s...)
	t.data = append(t.data, 0)
	return off
}

func (t *stringTable) bytes() []byte { return t.data }

// readTableString resolves a string-table offset against the region starting
// at tableStart. The string must be NUL-terminated inside the buffer.
func readTableString(data []byte, tableStart int, off uint32) (string, error) {
	start := tableStart + int(off)
	if start < tableStart || start > len(data) {
		return "", fmt.Errorf("%w: string offset %d outside table", ErrShortBuffer, off)
	}
	for i := start; i < len(data); i++ {
		if data[i] == 0 {
			return string(data[start:i]), nil
		}
	}
	return "", fmt.Errorf("%w: unterminated string at table offset %d", ErrShortBuffer, off)
}
