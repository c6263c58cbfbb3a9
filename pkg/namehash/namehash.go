// Package namehash implements the column-name hash functions used by the
// BCSV format and the lookup tables that map hashes back to readable names.
// Columns whose names are unknown render as 0x-prefixed hex hashes and can
// be fed back in that form.
package namehash

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Calc hashes a column name with the current-generation hash:
// h = byte + h*0x1f over the raw bytes.
func Calc(name string) uint32 {
	var h uint32
	for i := 0; i < len(name); i++ {
		h = uint32(name[i]) + h*0x1f
	}
	return h
}

// CalcOld hashes a column name with the older-generation hash:
// h = ((byte << 8) + h) mod 33554393.
func CalcOld(name string) uint32 {
	var h uint32
	for i := 0; i < len(name); i++ {
		h = (uint32(name[i])<<8 + h) % 33554393
	}
	return h
}

// Format returns the hex spelling used for unknown hashes.
func Format(hash uint32) string {
	return fmt.Sprintf("0x%x", hash)
}

// Parse resolves a column name to its hash. Names already in 0x hex form are
// decoded instead of hashed.
func Parse(name string) (uint32, error) {
	if strings.HasPrefix(name, "0x") || strings.HasPrefix(name, "0X") {
		h, err := strconv.ParseUint(name[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("namehash: bad hex name %q: %w", name, err)
		}
		return uint32(h), nil
	}
	return Calc(name), nil
}

// Table maps name hashes back to readable names.
type Table map[uint32]string

// Lookup returns the readable name for hash, falling back to the 0x hex form.
func (t Table) Lookup(hash uint32) string {
	if t != nil {
		if name, ok := t[hash]; ok {
			return name
		}
	}
	return Format(hash)
}

// Load reads a name table from a text file: one name per line, lines
// starting with '#' skipped. Each name is indexed under the hash function fn
// (Calc when nil).
func Load(path string, fn func(string) uint32) (Table, error) {
	if fn == nil {
		fn = Calc
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("namehash: open %s: %w", path, err)
	}
	defer f.Close()

	t := make(Table)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t[fn(line)] = line
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("namehash: read %s: %w", path, err)
	}
	return t, nil
}
