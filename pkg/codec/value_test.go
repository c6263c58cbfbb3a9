package codec

import (
	"errors"
	"testing"
)

func TestValue_Format(t *testing.T) {
	full := NewField(0, TypeLong)
	testCases := []struct {
		name   string
		value  Value
		field  Field
		signed bool
		want   string
	}{
		{"long unsigned", Value{Type: TypeLong, Raw: 5}, full, false, "5"},
		{"long signed negative", Value{Type: TypeLong, Raw: 0xFFFFFFFF}, full, true, "-1"},
		{"long sign bit unsigned", Value{Type: TypeLong, Raw: 0xFFFFFFFF}, full, false, "4294967295"},
		{
			"masked and shifted",
			Value{Type: TypeLong, Raw: 0x0000AB00},
			Field{Bitmask: 0x0000FF00, Shift: 8, Width: 4, Type: TypeLong},
			false,
			"171",
		},
		{"ulong ignores signed flag", Value{Type: TypeULong, Raw: 0xFFFFFFFF}, NewField(0, TypeULong), true, "4294967295"},
		{"short signed", Value{Type: TypeShort, Raw: 0xFFFF}, NewField(0, TypeShort), true, "-1"},
		{"short unsigned", Value{Type: TypeShort, Raw: 0xFFFF}, NewField(0, TypeShort), false, "65535"},
		{"char signed", Value{Type: TypeChar, Raw: 0x80}, NewField(0, TypeChar), true, "-128"},
		{"char unsigned", Value{Type: TypeChar, Raw: 0x80}, NewField(0, TypeChar), false, "128"},
		{"float", Value{Type: TypeFloat, F32: 1.5}, NewField(0, TypeFloat), false, "1.5"},
		{"string", Value{Type: TypeString, Text: "Ann"}, NewField(0, TypeString), false, "Ann"},
		{"string off", Value{Type: TypeStringOff, Text: "Bo,b"}, NewField(0, TypeStringOff), false, "Bo,b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.value.Format(tc.field, tc.signed)
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValue_Format_SignedShift(t *testing.T) {
	// The shift becomes arithmetic under signed rendering, so a negative
	// masked value keeps its sign instead of turning into a large positive.
	long := Field{Bitmask: 0xFFFFFF00, Shift: 8, Width: 4, Type: TypeLong}
	v := Value{Type: TypeLong, Raw: 0xFFFFFF00}
	if got := v.Format(long, true); got != "-1" {
		t.Errorf("long signed: got %q, want \"-1\"", got)
	}
	if got := v.Format(long, false); got != "16777215" {
		t.Errorf("long unsigned: got %q, want \"16777215\"", got)
	}

	short := Field{Bitmask: 0xFF00, Shift: 4, Width: 2, Type: TypeShort}
	sv := Value{Type: TypeShort, Raw: 0x8000}
	if got := sv.Format(short, true); got != "-2048" {
		t.Errorf("short signed: got %q, want \"-2048\"", got)
	}
	if got := sv.Format(short, false); got != "2048" {
		t.Errorf("short unsigned: got %q, want \"2048\"", got)
	}

	char := Field{Bitmask: 0xF0, Shift: 2, Width: 1, Type: TypeChar}
	cv := Value{Type: TypeChar, Raw: 0xA0}
	if got := cv.Format(char, true); got != "-24" {
		t.Errorf("char signed: got %q, want \"-24\"", got)
	}
	if got := cv.Format(char, false); got != "40" {
		t.Errorf("char unsigned: got %q, want \"40\"", got)
	}
}

func TestParseValue_RoundTrip(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		field  Field
		signed bool
	}{
		{"long", "-42", NewField(0, TypeLong), true},
		{"long unsigned", "4000000000", NewField(0, TypeLong), false},
		{"ulong", "4294967295", NewField(0, TypeULong), false},
		{"short", "-32768", NewField(0, TypeShort), true},
		{"char", "255", NewField(0, TypeChar), false},
		{"float", "3.25", NewField(0, TypeFloat), false},
		{"string", "hello", NewField(0, TypeString), false},
		{"string off", "a longer string cell", NewField(0, TypeStringOff), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ParseValue(tc.text, tc.field, tc.signed)
			if err != nil {
				t.Fatalf("ParseValue failed: %v", err)
			}
			got := v.Format(tc.field, tc.signed)
			if got != tc.text {
				t.Errorf("round trip: got %q, want %q", got, tc.text)
			}
		})
	}
}

func TestParseValue_OutOfRange(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		field  Field
		signed bool
	}{
		{"long signed overflow", "2147483648", NewField(0, TypeLong), true},
		{"long unsigned overflow", "4294967296", NewField(0, TypeLong), false},
		{"negative into unsigned", "-1", NewField(0, TypeLong), false},
		{"short overflow", "65536", NewField(0, TypeShort), false},
		{"char overflow", "999", NewField(0, TypeChar), false},
		{"float overflow", "1e50", NewField(0, TypeFloat), false},
		{"inline string too long", string(make([]byte, 33)), NewField(0, TypeString), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseValue(tc.text, tc.field, tc.signed)
			if !errors.Is(err, ErrValueOutOfRange) {
				t.Errorf("got %v, want ErrValueOutOfRange", err)
			}
		})
	}
}

func TestParseValue_EmptyNumericIsZero(t *testing.T) {
	v, err := ParseValue("", NewField(0, TypeLong), true)
	if err != nil {
		t.Fatalf("ParseValue failed: %v", err)
	}
	if v.Raw != 0 {
		t.Errorf("empty cell: got %d, want 0", v.Raw)
	}
}

func TestParseValue_Garbage(t *testing.T) {
	_, err := ParseValue("not a number", NewField(0, TypeLong), true)
	if err == nil {
		t.Fatal("expected an error for non-numeric text")
	}
	if errors.Is(err, ErrValueOutOfRange) {
		t.Error("syntax errors must not be reported as out of range")
	}
}

func TestSelection_Bits(t *testing.T) {
	s := AllColumns(10)
	if !s.Included(0) || !s.Included(9) {
		t.Error("AllColumns must include every column")
	}
	if s.Included(10) {
		t.Error("bit beyond the set must not be included")
	}
	s.Clear(3)
	if s.Included(3) {
		t.Error("cleared column still included")
	}
	if got := s.Count(10); got != 9 {
		t.Errorf("Count: got %d, want 9", got)
	}
	var nilSel Selection
	if !nilSel.Included(1234) {
		t.Error("nil selection must include everything")
	}
}
