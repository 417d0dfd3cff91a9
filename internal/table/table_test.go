package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnIndexTrimsHeaders(t *testing.T) {
	tb := Table{Columns: []string{"  Salt + Strength ", "Item Name"}}
	require.Equal(t, 0, tb.ColumnIndex("Salt + Strength"))
	require.Equal(t, 1, tb.ColumnIndex(" Item Name"))
	require.Equal(t, -1, tb.ColumnIndex("item name"))
}

func TestMissingKeepsRequestedOrder(t *testing.T) {
	tb := Table{Columns: []string{"Item Name"}}
	require.Equal(t, []string{"Salt + Strength", "Qty sold"}, tb.Missing("Salt + Strength", "Item Name", "Qty sold"))
	require.Empty(t, tb.Missing("Item Name"))
}

func TestCellOnRaggedRows(t *testing.T) {
	tb := Table{Columns: []string{"a", "b", "c"}, Rows: [][]string{{"1"}}}
	require.Equal(t, "1", tb.Cell(0, 0))
	require.Equal(t, "", tb.Cell(0, 2))
	require.Equal(t, "", tb.Cell(3, 0))
}

func TestCloneIsDeep(t *testing.T) {
	tb := Table{Columns: []string{"a"}, Rows: [][]string{{"x"}}}
	c := tb.Clone()
	c.Columns[0] = "b"
	c.Rows[0][0] = "y"
	require.Equal(t, "a", tb.Columns[0])
	require.Equal(t, "x", tb.Rows[0][0])
}
