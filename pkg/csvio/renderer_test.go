package csvio

import (
	"testing"

	"github.com/varkrai/bcsv/pkg/codec"
	"github.com/varkrai/bcsv/pkg/namehash"
)

func namedTable(names ...string) namehash.Table {
	t := make(namehash.Table)
	for _, n := range names {
		t[namehash.Calc(n)] = n
	}
	return t
}

func TestRenderer_QuotesEmbeddedDelimiter(t *testing.T) {
	doc := &codec.Document{
		Header: codec.Header{
			Version: codec.Version1,
			Endian:  codec.BigEndian,
			Fields: []codec.Field{
				codec.NewField(namehash.Calc("id"), codec.TypeLong),
				codec.NewField(namehash.Calc("name"), codec.TypeStringOff),
			},
		},
		Rows: [][]codec.Value{
			{{Type: codec.TypeLong, Raw: 1}, {Type: codec.TypeStringOff, Text: "Ann"}},
			{{Type: codec.TypeLong, Raw: 2}, {Type: codec.TypeStringOff, Text: "Bo,b"}},
		},
	}

	r := Renderer{Signed: true, Names: namedTable("id", "name")}
	got := string(r.Render(doc))
	want := "id:Long,name:StringOff\n1,Ann\n2,\"Bo,b\"\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderer_QuotesQuotesAndNewlines(t *testing.T) {
	doc := &codec.Document{
		Header: codec.Header{
			Version: codec.Version1,
			Fields:  []codec.Field{codec.NewField(namehash.Calc("s"), codec.TypeStringOff)},
		},
		Rows: [][]codec.Value{
			{{Type: codec.TypeStringOff, Text: `say "hi"`}},
			{{Type: codec.TypeStringOff, Text: "two\nlines"}},
		},
	}
	r := Renderer{Names: namedTable("s")}
	got := string(r.Render(doc))
	want := "s:StringOff\n\"say \"\"hi\"\"\"\n\"two\nlines\"\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderer_HonorsSelection(t *testing.T) {
	doc := &codec.Document{
		Header: codec.Header{
			Version: codec.Version2,
			Fields: []codec.Field{
				codec.NewField(namehash.Calc("a"), codec.TypeLong),
				codec.NewField(namehash.Calc("b"), codec.TypeLong),
				codec.NewField(namehash.Calc("c"), codec.TypeLong),
			},
			Selection: codec.Selection{0b101},
		},
		Rows: [][]codec.Value{
			{{Type: codec.TypeLong, Raw: 1}, {Type: codec.TypeLong, Raw: 2}, {Type: codec.TypeLong, Raw: 3}},
		},
	}
	r := Renderer{Names: namedTable("a", "b", "c")}
	got := string(r.Render(doc))
	want := "a:Long,c:Long\n1,3\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderer_CustomDelimiter(t *testing.T) {
	doc := &codec.Document{
		Header: codec.Header{
			Version: codec.Version1,
			Fields: []codec.Field{
				codec.NewField(namehash.Calc("a"), codec.TypeStringOff),
				codec.NewField(namehash.Calc("b"), codec.TypeLong),
			},
		},
		Rows: [][]codec.Value{
			{{Type: codec.TypeStringOff, Text: "x;y"}, {Type: codec.TypeLong, Raw: 1}},
		},
	}
	r := Renderer{Delim: ';', Names: namedTable("a", "b")}
	got := string(r.Render(doc))
	want := "a:StringOff;b:Long\n\"x;y\";1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderer_UnknownNamesFallBackToHex(t *testing.T) {
	doc := &codec.Document{
		Header: codec.Header{
			Version: codec.Version1,
			Fields:  []codec.Field{codec.NewField(0xAB, codec.TypeLong)},
		},
		Rows: nil,
	}
	r := Renderer{}
	got := string(r.Render(doc))
	want := "0xab:Long\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
