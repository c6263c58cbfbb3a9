package codec

import "errors"

// Errors reported while decoding or encoding BCSV payloads. Decoding is
// fail-fast: the first violation aborts the operation and no partial table
// is ever returned.
var (
	// ErrBadMagic is returned when a payload does not start with the BCSV magic.
	ErrBadMagic = errors.New("codec: bad magic")
	// ErrUnsupportedVersion is returned for format versions newer than this library supports.
	ErrUnsupportedVersion = errors.New("codec: unsupported format version")
	// ErrInvalidFlag is returned when an endianness or signedness flag byte is unrecognized.
	ErrInvalidFlag = errors.New("codec: invalid header flag")
	// ErrInvalidColumnType is returned for unknown field type tags or mismatched widths.
	ErrInvalidColumnType = errors.New("codec: invalid column type")
	// ErrSchemaTooLarge is returned when the declared column count exceeds MaxFields.
	ErrSchemaTooLarge = errors.New("codec: schema too large")
	// ErrShortBuffer is returned when a read would run past the end of the payload.
	ErrShortBuffer = errors.New("codec: short buffer")
	// ErrTruncatedRow is returned when the row region ends inside a row.
	ErrTruncatedRow = errors.New("codec: truncated row")
	// ErrValueOutOfRange is returned when a value does not fit its column's width and signedness.
	ErrValueOutOfRange = errors.New("codec: value out of range")
)
