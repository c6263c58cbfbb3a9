//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"testing"
)

// FuzzDecode verifies that no input, however mangled, makes Decode panic,
// and that anything it accepts re-encodes to a decodable payload.
func FuzzDecode(f *testing.F) {
	for _, endian := range []Endianness{BigEndian, LittleEndian} {
		doc := testDocument(endian, Version2)
		payload, err := doc.Encode()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(payload)
		f.Add(payload[:len(payload)/2])
	}
	f.Add([]byte("BCSV"))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := Decode(data)
		if err != nil {
			return
		}
		again, err := doc.Encode()
		if err != nil {
			t.Fatalf("decoded document failed to encode: %v", err)
		}
		back, err := Decode(again)
		if err != nil {
			t.Fatalf("re-encoded payload failed to decode: %v", err)
		}
		if len(back.Rows) != len(doc.Rows) {
			t.Fatalf("row count drifted: %d != %d", len(back.Rows), len(doc.Rows))
		}
	})
}

// FuzzHeaderRoundTrip checks that any header Decode accepts serializes back
// byte-identically.
func FuzzHeaderRoundTrip(f *testing.F) {
	w := NewWriter(0)
	testHeader(Version2).Serialize(w)
	f.Add(w.Bytes())

	f.Fuzz(func(t *testing.T, data []byte) {
		c := NewCursor(data)
		h, err := ParseHeader(c)
		if err != nil {
			return
		}
		out := NewWriter(0)
		h.Serialize(out)
		if !bytes.Equal(out.Bytes(), data[:c.Pos()]) {
			t.Fatalf("header did not round-trip byte-identically")
		}
	})
}
