package fileio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"alternates-service/internal/table"
)

const peekSize = 4096

// ReadCSV reads a CSV file whose first non-blank line is the header. The
// charset is detected from the leading bytes and converted to UTF-8; a BOM
// always wins over detection.
func ReadCSV(r io.Reader) (table.Table, error) {
	br := bufio.NewReaderSize(r, peekSize)
	peek, _ := br.Peek(peekSize)

	dec := transform.NewReader(br, unicode.BOMOverride(detectEncoding(peek, len(peek) < peekSize).NewDecoder()))

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return table.Table{}, err
		}
		rows = append(rows, rec)
	}
	return buildTable(rows)
}

// detectEncoding trusts valid UTF-8 and falls back to chardet for legacy
// exports (windows-1251, windows-1252 and friends).
func detectEncoding(peek []byte, complete bool) encoding.Encoding {
	if len(peek) == 0 || validUTF8(peek, complete) {
		return unicode.UTF8
	}
	det, err := chardet.NewTextDetector().DetectBest(peek)
	if err != nil || det == nil {
		return charmap.Windows1252
	}
	cs := strings.ToLower(det.Charset)
	if cs == "utf-8" {
		return unicode.UTF8
	}
	if enc, err := htmlindex.Get(cs); err == nil {
		return enc
	}
	return charmap.Windows1252
}

// validUTF8 tolerates a rune cut in half at the end of a partial peek.
func validUTF8(b []byte, complete bool) bool {
	if utf8.Valid(b) {
		return true
	}
	if complete {
		return false
	}
	for i := 1; i < utf8.UTFMax && i < len(b); i++ {
		if utf8.Valid(b[:len(b)-i]) {
			return true
		}
	}
	return false
}

// WriteCSV writes the header then every row, padded to the header width.
func WriteCSV(w io.Writer, t table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	rec := make([]string, len(t.Columns))
	for i := range t.Rows {
		for j := range rec {
			rec[j] = t.Cell(i, j)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
