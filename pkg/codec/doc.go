// Package codec implements the BCSV binary table format: a compact,
// schema-carrying representation of tabular data that converts losslessly to
// and from delimited text.
//
// # Wire Format
//
// A payload is laid out as follows (all multi-byte values in the byte order
// declared by the endianness flag):
//
//	[Magic "BCSV"(4)][Version(1)][Endian(1)][Signed(1)][Delim(1)]
//	[ColumnCount(4)][Fields: ColumnCount x 11][RowCount(4)]
//	[Selection: ceil(ColumnCount/8), version 2 only]
//	[Rows: RowCount x row size][StringTable][Padding to 32 with 0x40]
//
// Each field descriptor is:
//
//	[Hash(4)][Bitmask(4)][Width(1)][Shift(1)][Type(1)]
//
// Hash is the hashed column name (see the namehash package). Bitmask and
// Shift are applied when an integer cell is rendered: (raw & Bitmask) >> Shift,
// with the shift arithmetic under signed rendering and logical otherwise.
// Width is the stored byte width and must match the type, except String
// columns, whose width is the fixed inline text size.
//
// Field types:
//
//	0 Long       32-bit integer (sign interpretation is a render-time flag)
//	1 String     fixed-width inline text, NUL padded
//	2 Float      32-bit IEEE float
//	3 ULong      32-bit unsigned integer
//	4 Short      16-bit integer
//	5 Char       8-bit integer
//	6 StringOff  32-bit offset into the string table
//
// The string table holds de-duplicated NUL-terminated strings and starts
// immediately after the last row. Version 1 payloads omit the selection
// bitset; every column is included. The selection governs rendered output
// only. Rows always store every schema column, so re-encoding never loses
// data.
//
// # Decoding
//
// Decode parses untrusted bytes defensively: every read is bounds-checked,
// header flags and type tags are validated, the column count is capped, and
// a row region shorter than RowCount rows fails with ErrTruncatedRow. No
// partial document is ever returned.
//
// # Thread Safety
//
// Decode and Encode share no state; they are safe to call concurrently as
// long as each call owns its buffers.
package codec
