// Package convert wires the BCSV codec, the integrity check, and the CSV and
// spreadsheet renderers into the three public conversion operations. Every
// operation is a self-contained, synchronous transformation: it either
// completes or fails with no partial output, and calls share no state, so
// the package is safe for concurrent use as long as each call owns its
// buffers and output paths.
package convert

import (
	"fmt"
	"os"

	"github.com/varkrai/bcsv/pkg/codec"
	"github.com/varkrai/bcsv/pkg/csvio"
	"github.com/varkrai/bcsv/pkg/integrity"
	"github.com/varkrai/bcsv/pkg/namehash"
	"github.com/varkrai/bcsv/pkg/xlsx"
)

// Options is the configuration shared by all conversions.
//
// Signed and Delimiter govern rendering and CSV parsing; Endian governs
// which byte order encoded payloads are written in (decoding always follows
// the payload's own flag). Mask, when non-nil, is embedded into encoded
// headers as the column selection and restricts which columns rendered
// output emits; row storage always keeps every column. SumPath, when
// non-empty, names the integrity sidecar checked before any decode. Names
// labels columns in rendered output.
type Options struct {
	Signed    bool
	Endian    codec.Endianness
	Delimiter byte
	Mask      codec.Selection
	SumPath   string
	Names     namehash.Table
}

func (o Options) delim() byte {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// ToCSV decodes a BCSV payload and renders it as delimited text. When
// opts.SumPath is set the payload is verified first and a mismatch aborts
// before any row is interpreted.
func ToCSV(data []byte, opts Options) ([]byte, error) {
	doc, err := decodeVerified(data, opts)
	if err != nil {
		return nil, err
	}
	r := csvio.Renderer{Delim: opts.delim(), Signed: opts.Signed, Names: opts.Names}
	return r.Render(doc), nil
}

// ToXLSX decodes a BCSV payload and writes it as a single-sheet spreadsheet
// at outPath, overwriting any existing file.
func ToXLSX(data []byte, outPath string, opts Options) error {
	doc, err := decodeVerified(data, opts)
	if err != nil {
		return err
	}
	w := xlsx.Writer{Signed: opts.Signed, Names: opts.Names}
	return w.Write(doc, outPath)
}

// FromCSV parses delimited text whose first record is the column schema and
// encodes it as BCSV. The payload records opts.Endian, opts.Signed and the
// delimiter; a non-nil opts.Mask makes it a version 2 payload carrying that
// column selection.
func FromCSV(data []byte, opts Options) ([]byte, error) {
	p := csvio.Parser{Delim: opts.delim()}
	records, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty input, no schema line", csvio.ErrBadLabel)
	}

	fields := make([]codec.Field, len(records[0]))
	for i, label := range records[0] {
		f, err := csvio.ParseLabel(label)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}

	doc := &codec.Document{
		Header: codec.Header{
			Version: codec.Version1,
			Endian:  opts.Endian,
			Signed:  opts.Signed,
			Delim:   opts.delim(),
			Fields:  fields,
		},
	}
	if opts.Mask != nil {
		doc.Header.Version = codec.Version2
		doc.Header.Selection = opts.Mask
	}

	for _, record := range records[1:] {
		row := make([]codec.Value, len(fields))
		for i, cell := range record {
			v, err := codec.ParseValue(cell, fields[i], opts.Signed)
			if err != nil {
				return nil, err
			}
			row[i] = v
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc.Encode()
}

// FromCSVFile reads a CSV file and encodes it as BCSV.
func FromCSVFile(path string, opts Options) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("convert: read %s: %w", path, err)
	}
	return FromCSV(data, opts)
}

// decodeVerified runs the integrity check, if requested, before trusting the
// payload for decode.
func decodeVerified(data []byte, opts Options) (*codec.Document, error) {
	if err := integrity.Verify(data, opts.SumPath); err != nil {
		return nil, err
	}
	return codec.Decode(data)
}
