package fileio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"alternates-service/internal/table"
)

// Format is the upload kind, picked by file extension.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// ErrEmpty is returned when a file or sheet holds no header row at all.
var ErrEmpty = errors.New("no columns to parse")

// UnsupportedFormatError carries the rejected file name.
type UnsupportedFormatError struct{ Name string }

func (e *UnsupportedFormatError) Error() string { return "unsupported file: " + e.Name }

// SheetNotFoundError is returned when a workbook lacks a named sheet.
// Lookup is exact and case-sensitive.
type SheetNotFoundError struct {
	Sheet     string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("worksheet named '%s' not found (available: %s)", e.Sheet, strings.Join(e.Available, ", "))
}

// DetectFormat maps a file name to a Format.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	default:
		return "", &UnsupportedFormatError{Name: filename}
	}
}

// ReadSheets reads the named sheets of a workbook (.xlsx or .xls) in one
// pass over r. The result is keyed by sheet name.
func ReadSheets(r io.Reader, filename string, sheets ...string) (map[string]table.Table, error) {
	f, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatXLSX:
		return readXLSX(r, sheets)
	case FormatXLS:
		return readXLS(r, sheets)
	default:
		return nil, fmt.Errorf("%s is not a workbook", filename)
	}
}

func findSheet(have []string, want string) bool {
	for _, h := range have {
		if h == want {
			return true
		}
	}
	return false
}

// buildTable turns an array of rows into a Table. Leading blank rows are
// skipped, the first non-blank row is the header, fully blank data rows are
// dropped.
func buildTable(rows [][]string) (table.Table, error) {
	start := 0
	for start < len(rows) && blankRow(rows[start]) {
		start++
	}
	if start >= len(rows) {
		return table.Table{}, ErrEmpty
	}

	width := 0
	for _, r := range rows[start:] {
		if len(r) > width {
			width = len(r)
		}
	}
	t := table.Table{Columns: pickHeader(rows[start], width)}
	for _, rec := range rows[start+1:] {
		if blankRow(rec) {
			continue
		}
		row := make([]string, width)
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// pickHeader trims header names, substitutes Column N for blanks and
// suffixes repeats with .1, .2 so every name is unique.
func pickHeader(h []string, width int) []string {
	out := make([]string, width)
	used := make(map[string]bool, width)
	for i := 0; i < width; i++ {
		var v string
		if i < len(h) {
			v = strings.TrimSpace(h[i])
		}
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		name := v
		for n := 1; used[name]; n++ {
			name = v + "." + strconv.Itoa(n)
		}
		used[name] = true
		out[i] = name
	}
	return out
}

func blankRow(r []string) bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
