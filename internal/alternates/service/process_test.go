package service

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"

	"alternates-service/internal/alternates/model"
	"alternates-service/internal/fileio"
)

const e2eCSV = "Salt + Strength,Item Name,Qty sold\n" +
	"S1,A,10\nS1,B,30\nS1,C,20\nS1,D,5\nS2,X,5\n"

func TestProcessCSV(t *testing.T) {
	art, err := Process(strings.NewReader(e2eCSV), "UFM List.csv")
	require.NoError(t, err)
	require.Equal(t, "UFM List.csv", art.Name)
	require.Equal(t, ContentTypeCSV, art.ContentType)
	require.Equal(t, fileio.FormatCSV, art.Format)
	require.Equal(t, 5, art.Summary.TargetRows)

	lines := strings.Split(strings.TrimSpace(string(art.Data)), "\n")
	require.Equal(t, []string{
		"Salt + Strength,Item Name,Qty sold,Alt 1 (UFM/SFM/FM),Alt 2 (UFM/SFM/FM),Alt 3 (UFM/SFM/FM)",
		"S1,A,10,B,C,A",
		"S1,B,30,B,C,A",
		"S1,C,20,B,C,A",
		"S1,D,5,B,C,A",
		"S2,X,5,X,,",
	}, lines)
}

func TestProcessCSVMissingColumns(t *testing.T) {
	_, err := Process(strings.NewReader("Salt + Strength,Item Name\nS1,A\n"), "list.csv")
	me := requireKind(t, err, model.KindMissingColumns)
	require.Equal(t, model.TableInput, me.Table)
	require.Equal(t, []string{"Qty sold"}, me.Missing)
}

func TestProcessUnreadableCSV(t *testing.T) {
	_, err := Process(strings.NewReader(""), "empty.csv")
	requireKind(t, err, model.KindUnreadableInput)
}

func TestProcessUnsupportedFormat(t *testing.T) {
	_, err := Process(strings.NewReader("x"), "list.ods")
	me := requireKind(t, err, model.KindUnsupportedFormat)
	require.Contains(t, me.Error(), "list.ods")
}

func ufmWorkbook(t *testing.T, sheets map[string][][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, r := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			row := r
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestProcessXLSX(t *testing.T) {
	b := ufmWorkbook(t, map[string][][]interface{}{
		model.SheetSales: {
			{"Salt + Strength", "Item Name", "Qty sold", "Vendor"},
			{"S1", "A", 10, "v1"}, {"S1", "B", 30, "v2"}, {"S1", "C", 20, "v3"}, {"S1", "D", 5, "v4"},
			{"S2", "X", 5, "v5"},
		},
		model.SheetMapped: {
			{"Salt + Strength ", "Category"},
			{"S1", "analgesic"}, {"S2", "antacid"}, {"S3", "vitamin"},
		},
	})

	art, err := Process(bytes.NewReader(b), "/tmp/uploads/UFM.xlsx")
	require.NoError(t, err)
	require.Equal(t, "UFM.xlsx", art.Name)
	require.Equal(t, ContentTypeXLSX, art.ContentType)
	require.Equal(t, model.Summary{SalesRows: 5, TargetRows: 3, Groups: 2, Matched: 2}, art.Summary)

	f, err := excelize.OpenReader(bytes.NewReader(art.Data))
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, []string{model.SheetMapped}, f.GetSheetList())
	rows, err := f.GetRows(model.SheetMapped)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"Salt + Strength", "Category", "Alt 1 (UFM/SFM/FM)", "Alt 2 (UFM/SFM/FM)", "Alt 3 (UFM/SFM/FM)"},
		{"S1", "analgesic", "B", "C", "A"},
		{"S2", "antacid", "X"},
		{"S3", "vitamin"},
	}, rows)
}

func TestProcessXLSXMissingSheet(t *testing.T) {
	b := ufmWorkbook(t, map[string][][]interface{}{
		model.SheetSales:            {{"Salt + Strength", "Item Name", "Qty sold"}, {"S1", "A", 1}},
		"new ufm list(mapped list)": {{"Salt + Strength"}, {"S1"}},
	})
	_, err := Process(bytes.NewReader(b), "UFM.xlsx")
	me := requireKind(t, err, model.KindSheetNotFound)
	require.Equal(t, "worksheet named 'New UFM List(Mapped List)' not found", me.Error())

	var se *fileio.SheetNotFoundError
	require.True(t, errors.As(err, &se))
}

func TestProcessCorruptWorkbook(t *testing.T) {
	_, err := Process(strings.NewReader("not a zip"), "UFM.xlsx")
	requireKind(t, err, model.KindUnreadableInput)
}

func TestProcessXLSXRanksStoredQuantities(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", model.SheetSales))
	_, err := f.NewSheet(model.SheetMapped)
	require.NoError(t, err)

	sales := [][]interface{}{
		{"Salt + Strength", "Item Name", "Qty sold"},
		{"S1", "Low", 10.2},
		{"S1", "High", 10.4},
		{"S1", "Pct", 1200},
		{"S1", "Tiny", 0.4},
	}
	for i, r := range sales {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow(model.SheetSales, cell, &row))
	}
	require.NoError(t, f.SetSheetRow(model.SheetMapped, "A1", &[]interface{}{"Salt + Strength", "Pack"}))
	require.NoError(t, f.SetSheetRow(model.SheetMapped, "A2", &[]interface{}{"S1", 2.5}))

	whole, err := f.NewStyle(&excelize.Style{NumFmt: 1})
	require.NoError(t, err)
	pct, err := f.NewStyle(&excelize.Style{NumFmt: 9})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(model.SheetSales, "C2", "C3", whole))
	require.NoError(t, f.SetCellStyle(model.SheetSales, "C4", "C4", pct))
	require.NoError(t, f.SetCellStyle(model.SheetSales, "C5", "C5", whole))
	require.NoError(t, f.SetCellStyle(model.SheetMapped, "B2", "B2", whole))

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	require.NoError(t, err)

	art, err := Process(bytes.NewReader(buf.Bytes()), "UFM.xlsx")
	require.NoError(t, err)

	out, err := excelize.OpenReader(bytes.NewReader(art.Data))
	require.NoError(t, err)
	defer out.Close()
	rows, err := out.GetRows(model.SheetMapped)
	require.NoError(t, err)
	require.Equal(t, []string{"S1", "2.5", "Pct", "High", "Low"}, rows[1])
}

func TestProcessXLS(t *testing.T) {
	in, err := os.Open(filepath.Join("..", "..", "fileio", "testdata", "ufm.xls"))
	require.NoError(t, err)
	defer in.Close()

	art, err := Process(in, "ufm.xls")
	require.NoError(t, err)
	require.Equal(t, "ufm.xlsx", art.Name)
	require.Equal(t, fileio.FormatXLS, art.Format)
	require.Equal(t, ContentTypeXLSX, art.ContentType)
	require.Equal(t, model.Summary{SalesRows: 5, TargetRows: 2, Groups: 2, Matched: 1}, art.Summary)

	f, err := excelize.OpenReader(bytes.NewReader(art.Data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(model.SheetMapped)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"Salt + Strength", "Code", "Alt 1 (UFM/SFM/FM)", "Alt 2 (UFM/SFM/FM)", "Alt 3 (UFM/SFM/FM)"},
		{"S1", "123", "B", "A", "C"},
		{"S3", "00123"},
	}, rows)
}
