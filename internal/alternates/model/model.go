package model

// Column and sheet names are fixed by the upstream UFM export.
const (
	ColSaltStrength = "Salt + Strength"
	ColItemName     = "Item Name"
	ColQtySold      = "Qty sold"

	SheetSales  = "new UFM List"
	SheetMapped = "New UFM List(Mapped List)"

	// logical table names used in error messages
	TableInput  = "input file"
	TableMapped = "mapped list"
)

// TopN is how many alternates are suggested per salt.
const TopN = 3

var (
	SalesColumns  = []string{ColSaltStrength, ColItemName, ColQtySold}
	TargetColumns = []string{ColSaltStrength}
	AltColumns    = [TopN]string{"Alt 1 (UFM/SFM/FM)", "Alt 2 (UFM/SFM/FM)", "Alt 3 (UFM/SFM/FM)"}
)

type SalesRecord struct {
	SaltStrength string // group key, compared verbatim
	ItemName     string
	QtySold      float64
	HasQty       bool // false for a blank cell; such rows rank last
}

// Alternates holds up to TopN item names; unused slots are "".
type Alternates [TopN]string

// Summary describes one engine run for logging and response headers.
type Summary struct {
	SalesRows  int `json:"salesRows"`
	TargetRows int `json:"targetRows"`
	Groups     int `json:"groups"`
	Matched    int `json:"matched"`
}
