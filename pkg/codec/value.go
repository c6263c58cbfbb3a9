package codec

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Value is one decoded cell. Integer cells (Long, ULong, Short, Char) and
// string-table offsets keep their raw bits in Raw; sign interpretation,
// bitmask and shift are applied at render time, not at decode time, so a
// table round-trips losslessly regardless of how it is displayed.
type Value struct {
	Type FieldType
	Raw  uint32
	F32  float32
	Text string
}

// Masked applies the field's bitmask and logical shift to the raw bits.
// This is the unsigned rendering of an integer cell; signed rendering
// interprets the masked bits at the column's width first and shifts
// arithmetically, so the sign bit propagates through the shift.
func (v Value) Masked(f Field) uint32 {
	return (v.Raw & f.Bitmask) >> f.Shift
}

// Format renders the value as locale-independent text. For integer columns
// the field's bitmask is applied first; the shift is logical when rendering
// unsigned and arithmetic when rendering signed.
func (v Value) Format(f Field, signed bool) string {
	switch v.Type {
	case TypeLong:
		if signed {
			return strconv.FormatInt(int64(int32(v.Raw&f.Bitmask)>>f.Shift), 10)
		}
		return strconv.FormatUint(uint64(v.Masked(f)), 10)
	case TypeULong:
		return strconv.FormatUint(uint64(v.Masked(f)), 10)
	case TypeShort:
		if signed {
			return strconv.FormatInt(int64(int16(uint16(v.Raw&f.Bitmask))>>f.Shift), 10)
		}
		return strconv.FormatUint(uint64(uint16(v.Masked(f))), 10)
	case TypeChar:
		if signed {
			return strconv.FormatInt(int64(int8(uint8(v.Raw&f.Bitmask))>>f.Shift), 10)
		}
		return strconv.FormatUint(uint64(uint8(v.Masked(f))), 10)
	case TypeFloat:
		return strconv.FormatFloat(float64(v.F32), 'g', -1, 32)
	case TypeString, TypeStringOff:
		return v.Text
	}
	return ""
}

// ParseValue builds a cell from text for the given column. Integer literals
// outside the column's width/signedness range fail with ErrValueOutOfRange;
// empty text yields the zero value of the column type.
func ParseValue(text string, f Field, signed bool) (Value, error) {
	v := Value{Type: f.Type}
	if text == "" && f.Type != TypeString && f.Type != TypeStringOff {
		return v, nil
	}
	switch f.Type {
	case TypeLong:
		raw, err := parseIntBits(text, 32, signed)
		if err != nil {
			return v, err
		}
		v.Raw = raw
	case TypeULong:
		if strings.HasPrefix(text, "-") {
			return v, fmt.Errorf("%w: negative value %q in unsigned column", ErrValueOutOfRange, text)
		}
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return v, numErr(text, f, err)
		}
		v.Raw = uint32(n)
	case TypeShort:
		raw, err := parseIntBits(text, 16, signed)
		if err != nil {
			return v, err
		}
		v.Raw = raw
	case TypeChar:
		raw, err := parseIntBits(text, 8, signed)
		if err != nil {
			return v, err
		}
		v.Raw = raw
	case TypeFloat:
		fv, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return v, numErr(text, f, err)
		}
		v.F32 = float32(fv)
	case TypeString:
		if len(text) > int(f.Width) {
			return v, fmt.Errorf("%w: %q exceeds %d-byte string column", ErrValueOutOfRange, text, f.Width)
		}
		v.Text = text
	case TypeStringOff:
		v.Text = text
	default:
		return v, fmt.Errorf("%w: tag %d", ErrInvalidColumnType, uint8(f.Type))
	}
	return v, nil
}

// parseIntBits parses a decimal literal into the low bits of a uint32,
// honoring the requested bit width and signedness.
func parseIntBits(text string, bits int, signed bool) (uint32, error) {
	if signed {
		n, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			return 0, intErr(text, bits, true, err)
		}
		return uint32(n) & widthMask(bits), nil
	}
	if strings.HasPrefix(text, "-") {
		return 0, fmt.Errorf("%w: negative value %q in unsigned column", ErrValueOutOfRange, text)
	}
	n, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return 0, intErr(text, bits, false, err)
	}
	return uint32(n), nil
}

func widthMask(bits int) uint32 {
	if bits >= 32 {
		return 0xFFFFFFFF
	}
	return (1 << uint(bits)) - 1
}

func intErr(text string, bits int, signed bool, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		sign := "unsigned"
		if signed {
			sign = "signed"
		}
		return fmt.Errorf("%w: %q does not fit %d-bit %s", ErrValueOutOfRange, text, bits, sign)
	}
	return fmt.Errorf("codec: parse %q: %w", text, err)
}

func numErr(text string, f Field, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q does not fit %s column", ErrValueOutOfRange, text, f.Type)
	}
	return fmt.Errorf("codec: parse %q as %s: %w", text, f.Type, err)
}

// trimNul cuts an inline string cell at its first NUL byte.
func trimNul(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
