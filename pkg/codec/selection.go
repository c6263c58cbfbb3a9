package codec

// Selection is a column inclusion bitset, one bit per schema column in
// declared order. It governs which columns appear in rendered output only;
// row storage always carries every schema column. A nil Selection includes
// everything.
type Selection []byte

// selectionSize returns the wire size of a selection over cols columns.
func selectionSize(cols int) int {
	return (cols + 7) / 8
}

// AllColumns returns a selection with the first cols bits set.
func AllColumns(cols int) Selection {
	s := make(Selection, selectionSize(cols))
	for i := 0; i < cols; i++ {
		s.Set(i)
	}
	return s
}

// Included reports whether column i participates in output.
func (s Selection) Included(i int) bool {
	if s == nil {
		return true
	}
	if i < 0 || i/8 >= len(s) {
		return false
	}
	return s[i/8]&(1<<(uint(i)&7)) != 0
}

// Set marks column i as included. Out-of-range indexes are ignored.
func (s Selection) Set(i int) {
	if i >= 0 && i/8 < len(s) {
		s[i/8] |= 1 << (uint(i) & 7)
	}
}

// Clear marks column i as excluded. Out-of-range indexes are ignored.
func (s Selection) Clear(i int) {
	if i >= 0 && i/8 < len(s) {
		s[i/8] &^= 1 << (uint(i) & 7)
	}
}

// Count returns the number of included columns out of cols.
func (s Selection) Count(cols int) int {
	n := 0
	for i := 0; i < cols; i++ {
		if s.Included(i) {
			n++
		}
	}
	return n
}
