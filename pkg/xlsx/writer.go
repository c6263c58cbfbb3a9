// Package xlsx writes decoded BCSV tables as single-sheet spreadsheets.
// Numeric columns become numeric cells, text columns become text cells; the
// document's column selection and per-field bitmask/shift apply the same way
// they do for CSV rendering.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/varkrai/bcsv/pkg/codec"
	"github.com/varkrai/bcsv/pkg/namehash"
)

// Writer maps documents onto a worksheet. The zero Writer renders integers
// unsigned, labels columns with hex hashes, and starts with a label row.
type Writer struct {
	Signed     bool
	Names      namehash.Table
	OmitLabels bool
}

// Write builds the spreadsheet and saves it to outPath, overwriting any
// existing file. Filesystem failures are wrapped with the path.
func (w *Writer) Write(doc *codec.Document, outPath string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	h := &doc.Header
	rowIdx := 1

	if !w.OmitLabels {
		colIdx := 1
		for i, fld := range h.Fields {
			if !h.Included(i) {
				continue
			}
			name := w.Names.Lookup(fld.Hash)
			if err := setCell(f, sheet, colIdx, rowIdx, name+":"+fld.Type.String()); err != nil {
				return err
			}
			colIdx++
		}
		rowIdx++
	}

	for _, row := range doc.Rows {
		colIdx := 1
		for i, fld := range h.Fields {
			if !h.Included(i) {
				continue
			}
			if err := setCell(f, sheet, colIdx, rowIdx, cellValue(row[i], fld, w.Signed)); err != nil {
				return err
			}
			colIdx++
		}
		rowIdx++
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("xlsx: write %s: %w", outPath, err)
	}
	return nil
}

// cellValue picks a typed spreadsheet value for one cell.
func cellValue(v codec.Value, f codec.Field, signed bool) interface{} {
	switch v.Type {
	case codec.TypeLong:
		if signed {
			return int64(int32(v.Raw&f.Bitmask) >> f.Shift)
		}
		return uint64(v.Masked(f))
	case codec.TypeULong:
		return uint64(v.Masked(f))
	case codec.TypeShort:
		if signed {
			return int64(int16(uint16(v.Raw&f.Bitmask)) >> f.Shift)
		}
		return uint64(uint16(v.Masked(f)))
	case codec.TypeChar:
		if signed {
			return int64(int8(uint8(v.Raw&f.Bitmask)) >> f.Shift)
		}
		return uint64(uint8(v.Masked(f)))
	case codec.TypeFloat:
		return float64(v.F32)
	default:
		return v.Text
	}
}

func setCell(f *excelize.File, sheet string, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("xlsx: cell %d,%d: %w", col, row, err)
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("xlsx: set %s: %w", cell, err)
	}
	return nil
}
