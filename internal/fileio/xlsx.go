package fileio

import (
	"bytes"
	"io"
	"strconv"

	excelize "github.com/xuri/excelize/v2"

	"alternates-service/internal/table"
)

func readXLSX(r io.Reader, sheets []string) (map[string]table.Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// excelize matches sheet names case-insensitively, the lookup here must not
	have := f.GetSheetList()
	out := make(map[string]table.Table, len(sheets))
	for _, name := range sheets {
		if !findSheet(have, name) {
			return nil, &SheetNotFoundError{Sheet: name, Available: have}
		}
		// stored values; a number format would round or rescale quantities
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}
		t, err := buildTable(rows)
		if err != nil {
			return nil, err
		}
		out[name] = t
	}
	return out, nil
}

// WriteXLSX writes t as the only sheet of a new workbook. Cells holding a
// canonical decimal number are stored as numbers, everything else as text.
func WriteXLSX(w io.Writer, sheet string, t table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i := range t.Rows {
		vals := make([]interface{}, len(t.Columns))
		for j := range vals {
			vals[j] = cellValue(t.Cell(i, j))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, vals); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

// "00123" stays text, "12" and "12.5" become numbers.
func cellValue(s string) interface{} {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || strconv.FormatFloat(f, 'f', -1, 64) != s {
		return s
	}
	return f
}
