// Package csvio renders decoded BCSV tables as delimited text and parses
// that text back into records. Quoting follows the usual CSV convention:
// a cell containing the delimiter, a quote, or a line break is wrapped in
// quotes and embedded quotes are doubled. Only single-byte delimiters are
// supported.
package csvio

import (
	"errors"
	"fmt"
)

var (
	// ErrBareQuote is returned when a quote appears inside a non-quoted field
	// or after a closing quote.
	ErrBareQuote = errors.New("csvio: bare quote in non-quoted field")
	// ErrUnterminatedQuote is returned when a quoted field is still open at
	// end of input.
	ErrUnterminatedQuote = errors.New("csvio: unterminated quoted field")
	// ErrFieldCount is returned when a record's cell count differs from the
	// first record's.
	ErrFieldCount = errors.New("csvio: wrong number of fields")
	// ErrBadLabel is returned for column labels the schema line cannot parse.
	ErrBadLabel = errors.New("csvio: bad column label")
)

// ParseError carries the line a parsing failure was detected on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("csvio: parse error on line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parser splits delimited text into records. A zero Parser uses ',' as the
// delimiter and '"' as the quote character.
type Parser struct {
	Delim byte
}

// Parse consumes the whole input and returns one string slice per record.
// Records end at LF, CRLF, or a lone CR outside quotes; a trailing line
// break does not produce an empty record. Every record must have the same
// cell count as the first one.
func (p *Parser) Parse(data []byte) ([][]string, error) {
	delim := p.Delim
	if delim == 0 {
		delim = ','
	}
	const quote = '"'

	var (
		records  [][]string
		fields   []string
		cell     []byte
		inQuotes bool
		closed   bool // current field was quoted and the quote is closed
		width    = -1
		line     = 1
		recLine  = 1
	)

	flushField := func() {
		fields = append(fields, string(cell))
		cell = cell[:0]
		closed = false
	}
	endRecord := func() error {
		flushField()
		if width < 0 {
			width = len(fields)
		} else if len(fields) != width {
			return &ParseError{Line: recLine, Err: fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), width)}
		}
		records = append(records, fields)
		fields = nil
		return nil
	}

	i := 0
	for i < len(data) {
		b := data[i]
		if inQuotes {
			switch b {
			case quote:
				if i+1 < len(data) && data[i+1] == quote {
					cell = append(cell, quote)
					i += 2
					continue
				}
				inQuotes = false
				closed = true
				i++
			case '\n':
				cell = append(cell, b)
				line++
				i++
			default:
				cell = append(cell, b)
				i++
			}
			continue
		}

		switch b {
		case delim:
			flushField()
			i++
		case '\n':
			if err := endRecord(); err != nil {
				return nil, err
			}
			line++
			recLine = line
			i++
		case '\r':
			if err := endRecord(); err != nil {
				return nil, err
			}
			line++
			recLine = line
			i++
			if i < len(data) && data[i] == '\n' {
				i++
			}
		case quote:
			if len(cell) == 0 && !closed {
				inQuotes = true
				i++
				continue
			}
			return nil, &ParseError{Line: line, Err: ErrBareQuote}
		default:
			if closed {
				return nil, &ParseError{Line: line, Err: ErrBareQuote}
			}
			cell = append(cell, b)
			i++
		}
	}

	if inQuotes {
		return nil, &ParseError{Line: line, Err: ErrUnterminatedQuote}
	}
	if len(cell) > 0 || closed || len(fields) > 0 {
		if err := endRecord(); err != nil {
			return nil, err
		}
	}
	return records, nil
}
