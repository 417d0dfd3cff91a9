// Legacy .xls reader. Table width is fixed by probing cells instead of
// trusting Row.LastCol(), which is unreliable on 1C/ERP exports.
package fileio

import (
	"bytes"
	"errors"
	"io"
	"strings"

	xls "github.com/extrame/xls"

	"alternates-service/internal/table"
)

const probeMaxCols = 512

func computeMaxCols(sheet *xls.WorkSheet) int {
	maxCols := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		r := sheetRow(sheet, i)
		if r == nil {
			continue
		}
		for j := maxCols; j < probeMaxCols; j++ {
			if normalizeCell(r.Col(j)) != "" {
				maxCols = j + 1
			}
		}
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

func normalizeCell(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

func openXLS(b []byte) (*xls.WorkBook, error) {
	var lastErr error
	for _, ch := range []string{"utf-8", "windows-1251", "windows-1252"} {
		wb, err := xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			return wb, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("xls: failed to open workbook")
	}
	return nil, lastErr
}

// sheetRow is nil for a row the sheet never stored. WorkSheet.Row panics on
// those instead of returning nil.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

func readXLS(r io.Reader, sheets []string) (map[string]table.Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	wb, err := openXLS(b)
	if err != nil {
		return nil, err
	}
	// Without XF records RK cells render as plain numbers. With them the
	// library turns custom and date formats into date strings.
	wb.Xfs = nil

	byName := make(map[string]*xls.WorkSheet, wb.NumSheets())
	var have []string
	for i := 0; i < wb.NumSheets(); i++ {
		if s := wb.GetSheet(i); s != nil {
			byName[s.Name] = s
			have = append(have, s.Name)
		}
	}

	out := make(map[string]table.Table, len(sheets))
	for _, name := range sheets {
		sheet, ok := byName[name]
		if !ok {
			return nil, &SheetNotFoundError{Sheet: name, Available: have}
		}
		maxCols := computeMaxCols(sheet)
		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for i := 0; i <= int(sheet.MaxRow); i++ {
			row := sheetRow(sheet, i)
			cols := make([]string, maxCols)
			if row != nil {
				for j := 0; j < maxCols; j++ {
					cols[j] = normalizeCell(row.Col(j))
				}
			}
			rows = append(rows, cols)
		}
		t, err := buildTable(rows)
		if err != nil {
			return nil, err
		}
		out[name] = t
	}
	return out, nil
}
