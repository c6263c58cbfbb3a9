package codec

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// FieldType identifies the storage type of a column. The tag values are part
// of the wire format and must not be reordered.
type FieldType uint8

const (
	TypeLong      FieldType = 0 // 32-bit integer
	TypeString    FieldType = 1 // fixed-width inline text, NUL padded
	TypeFloat     FieldType = 2 // 32-bit IEEE float
	TypeULong     FieldType = 3 // 32-bit unsigned integer
	TypeShort     FieldType = 4 // 16-bit integer
	TypeChar      FieldType = 5 // 8-bit integer
	TypeStringOff FieldType = 6 // 32-bit offset into the string table
)

// DefaultStringWidth is the inline width used for TypeString columns unless
// the field declares another one.
const DefaultStringWidth = 32

var fieldTypeNames = [...]string{
	TypeLong:      "Long",
	TypeString:    "String",
	TypeFloat:     "Float",
	TypeULong:     "ULong",
	TypeShort:     "Short",
	TypeChar:      "Char",
	TypeStringOff: "StringOff",
}

// String returns the canonical type name used in CSV column labels.
func (t FieldType) String() string {
	if int(t) < len(fieldTypeNames) {
		return fieldTypeNames[t]
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

// Valid reports whether t is a known type tag.
func (t FieldType) Valid() bool {
	return t <= TypeStringOff
}

// NaturalWidth returns the byte width of t. TypeString returns
// DefaultStringWidth; its actual width is per-field.
func (t FieldType) NaturalWidth() uint8 {
	switch t {
	case TypeLong, TypeFloat, TypeULong, TypeStringOff:
		return 4
	case TypeShort:
		return 2
	case TypeChar:
		return 1
	case TypeString:
		return DefaultStringWidth
	}
	return 0
}

// ParseFieldType resolves a CSV column label type, accepting both canonical
// names (case-insensitive) and numeric tags.
func ParseFieldType(s string) (FieldType, error) {
	for i, name := range fieldTypeNames {
		if strings.EqualFold(s, name) {
			return FieldType(i), nil
		}
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		t := FieldType(n)
		if t.Valid() {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColumnType, s)
}

// Endianness selects the byte order of every multi-byte value in a payload.
// The flag values are part of the wire format.
type Endianness uint8

const (
	BigEndian    Endianness = 0
	LittleEndian Endianness = 1
)

// ByteOrder returns the matching encoding/binary order.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func (e Endianness) String() string {
	if e == LittleEndian {
		return "little"
	}
	return "big"
}

// ParseEndianness resolves "big"/"little" (plus the "be"/"le" shorthands).
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(s) {
	case "big", "be":
		return BigEndian, nil
	case "little", "le":
		return LittleEndian, nil
	}
	return 0, fmt.Errorf("%w: endianness %q", ErrInvalidFlag, s)
}

// Field describes one column of a BCSV schema: the hashed column name, a
// value bitmask and shift applied when rendering integers, the stored byte
// width, and the storage type.
type Field struct {
	Hash    uint32
	Bitmask uint32
	Width   uint8
	Shift   uint8
	Type    FieldType
}

// NewField returns a field of the given type with a full bitmask, no shift,
// and the type's natural width.
func NewField(hash uint32, t FieldType) Field {
	return Field{
		Hash:    hash,
		Bitmask: 0xFFFFFFFF,
		Width:   t.NaturalWidth(),
		Shift:   0,
		Type:    t,
	}
}

// Validate checks the type tag and that the declared width matches it.
// TypeString accepts any non-zero width; every other type is fixed.
func (f Field) Validate() error {
	if !f.Type.Valid() {
		return fmt.Errorf("%w: tag %d", ErrInvalidColumnType, uint8(f.Type))
	}
	if f.Type == TypeString {
		if f.Width == 0 {
			return fmt.Errorf("%w: zero-width string column", ErrInvalidColumnType)
		}
		return nil
	}
	if f.Width != f.Type.NaturalWidth() {
		return fmt.Errorf("%w: %s column declares width %d, want %d",
			ErrInvalidColumnType, f.Type, f.Width, f.Type.NaturalWidth())
	}
	return nil
}
