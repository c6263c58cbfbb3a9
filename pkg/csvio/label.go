package csvio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/varkrai/bcsv/pkg/codec"
	"github.com/varkrai/bcsv/pkg/namehash"
)

// FormatLabel renders a column label for the schema line. The short form is
// "name:Type"; columns with a non-default bitmask or shift use the long form
// "name:bitmask:shift:Type" so those attributes survive a CSV round trip.
func FormatLabel(f codec.Field, names namehash.Table) string {
	name := names.Lookup(f.Hash)
	if f.Bitmask != 0xFFFFFFFF || f.Shift != 0 {
		return fmt.Sprintf("%s:%d:%d:%s", name, f.Bitmask, f.Shift, f.Type)
	}
	return name + ":" + f.Type.String()
}

// ParseLabel builds a field descriptor from a schema-line label. Both label
// forms are accepted, with type spelled by name or numeric tag and names in
// readable or 0x hex form.
func ParseLabel(label string) (codec.Field, error) {
	parts := strings.Split(label, ":")
	var name, typeSpec string
	var bitmask uint64 = 0xFFFFFFFF
	var shift uint64

	switch len(parts) {
	case 2:
		name, typeSpec = parts[0], parts[1]
	case 4:
		name, typeSpec = parts[0], parts[3]
		var err error
		if bitmask, err = parseU32(parts[1]); err != nil {
			return codec.Field{}, fmt.Errorf("%w: %q: bitmask: %v", ErrBadLabel, label, err)
		}
		if shift, err = strconv.ParseUint(parts[2], 10, 8); err != nil {
			return codec.Field{}, fmt.Errorf("%w: %q: shift: %v", ErrBadLabel, label, err)
		}
	default:
		return codec.Field{}, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}

	t, err := codec.ParseFieldType(typeSpec)
	if err != nil {
		return codec.Field{}, fmt.Errorf("%w: %q: %v", ErrBadLabel, label, err)
	}
	hash, err := namehash.Parse(name)
	if err != nil {
		return codec.Field{}, fmt.Errorf("%w: %q: %v", ErrBadLabel, label, err)
	}

	f := codec.NewField(hash, t)
	f.Bitmask = uint32(bitmask)
	f.Shift = uint8(shift)
	return f, nil
}

func parseU32(s string) (uint64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 32)
	}
	return strconv.ParseUint(s, 10, 32)
}
