package service

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"alternates-service/internal/alternates/model"
	"alternates-service/internal/fileio"
	"alternates-service/internal/table"
)

const (
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Artifact is the processed file handed back to the uploader.
type Artifact struct {
	Name        string
	ContentType string
	Format      fileio.Format
	Data        []byte
	Summary     model.Summary
}

// Process reads an uploaded file, computes alternates and encodes the
// result in the upload's format. A .csv file serves as both the sales and
// the mapped table; workbooks must carry both named sheets. Legacy .xls
// uploads come back as .xlsx.
func Process(r io.Reader, filename string) (Artifact, error) {
	name := filepath.Base(filename)
	format, err := fileio.DetectFormat(name)
	if err != nil {
		return Artifact{}, model.UnsupportedFormat(name)
	}

	sales, target, err := readTables(r, name, format)
	if err != nil {
		return Artifact{}, err
	}

	out, sum, err := Run(sales, target)
	if err != nil {
		return Artifact{}, err
	}

	art := Artifact{Name: name, Format: format, Summary: sum}
	var buf bytes.Buffer
	switch format {
	case fileio.FormatCSV:
		art.ContentType = ContentTypeCSV
		err = fileio.WriteCSV(&buf, out)
	default:
		art.ContentType = ContentTypeXLSX
		if format == fileio.FormatXLS {
			art.Name = strings.TrimSuffix(name, filepath.Ext(name)) + ".xlsx"
		}
		err = fileio.WriteXLSX(&buf, model.SheetMapped, out)
	}
	if err != nil {
		return Artifact{}, model.Computation("write result: %v", err)
	}
	art.Data = buf.Bytes()
	return art, nil
}

func readTables(r io.Reader, name string, format fileio.Format) (table.Table, table.Table, error) {
	if format == fileio.FormatCSV {
		t, err := fileio.ReadCSV(r)
		if err != nil {
			return table.Table{}, table.Table{}, model.Unreadable(name, err)
		}
		return t, t.Clone(), nil
	}

	sheets, err := fileio.ReadSheets(r, name, model.SheetSales, model.SheetMapped)
	if err != nil {
		var se *fileio.SheetNotFoundError
		if errors.As(err, &se) {
			return table.Table{}, table.Table{}, model.SheetNotFound(se.Sheet, err)
		}
		return table.Table{}, table.Table{}, model.Unreadable(name, err)
	}
	return sheets[model.SheetSales], sheets[model.SheetMapped], nil
}
