package service

import (
	"cmp"
	"slices"
	"strings"

	"alternates-service/internal/alternates/model"
	"alternates-service/internal/table"
	"alternates-service/internal/utils"
)

// Compute suggests up to three alternates per salt from sales and appends
// them to target. Neither input is modified.
func Compute(sales, target table.Table) (table.Table, error) {
	out, _, err := Run(sales, target)
	return out, err
}

// Run is Compute plus counters describing the run.
func Run(sales, target table.Table) (table.Table, model.Summary, error) {
	sum := model.Summary{SalesRows: sales.Len(), TargetRows: target.Len()}

	// 1) columns, sales first
	if missing := sales.Missing(model.SalesColumns...); len(missing) > 0 {
		return table.Table{}, sum, model.MissingColumns(model.TableInput, missing, columnHints(sales.Columns, missing))
	}
	if missing := target.Missing(model.TargetColumns...); len(missing) > 0 {
		return table.Table{}, sum, model.MissingColumns(model.TableMapped, missing, columnHints(target.Columns, missing))
	}

	// 2) typed records
	recs, err := salesRecords(sales)
	if err != nil {
		return table.Table{}, sum, err
	}

	// 3) rank and group
	rankByQty(recs)
	alts := topAlternates(recs)
	sum.Groups = len(alts)

	// 4) left join onto target
	out, matched := merge(target, alts)
	sum.Matched = matched
	return out, sum, nil
}

func salesRecords(t table.Table) ([]model.SalesRecord, error) {
	salt := t.ColumnIndex(model.ColSaltStrength)
	item := t.ColumnIndex(model.ColItemName)
	qty := t.ColumnIndex(model.ColQtySold)

	recs := make([]model.SalesRecord, 0, t.Len())
	for i := range t.Rows {
		r := model.SalesRecord{
			SaltStrength: t.Cell(i, salt),
			ItemName:     t.Cell(i, item),
		}
		if raw := t.Cell(i, qty); !utils.IsBlank(raw) {
			v, ok := utils.ParseQty(raw)
			if !ok {
				return nil, model.Computation("%s: cannot convert %q to a number (data row %d of %s)",
					model.ColQtySold, raw, i+1, model.TableInput)
			}
			r.QtySold, r.HasQty = v, true
		}
		recs = append(recs, r)
	}
	return recs, nil
}

// rankByQty orders records by quantity, highest first, blanks last. Equal
// quantities keep table order.
func rankByQty(recs []model.SalesRecord) {
	slices.SortStableFunc(recs, func(a, b model.SalesRecord) int {
		switch {
		case a.HasQty != b.HasQty:
			if a.HasQty {
				return -1
			}
			return 1
		case !a.HasQty:
			return 0
		default:
			return cmp.Compare(b.QtySold, a.QtySold)
		}
	})
}

// topAlternates takes the first TopN item names of every salt from ranked
// records. Names are not deduplicated. A blank salt is not a group.
func topAlternates(recs []model.SalesRecord) map[string]model.Alternates {
	alts := make(map[string]model.Alternates)
	filled := make(map[string]int)
	for _, r := range recs {
		key := r.SaltStrength
		if key == "" {
			continue
		}
		n := filled[key]
		if n == model.TopN {
			continue
		}
		a := alts[key]
		a[n] = r.ItemName
		alts[key] = a
		filled[key] = n + 1
	}
	return alts
}

// merge keeps every target row in order and appends the alternate columns.
// Alternate columns already present in target are replaced, not duplicated.
func merge(target table.Table, alts map[string]model.Alternates) (table.Table, int) {
	stale := make(map[string]bool, model.TopN)
	for _, c := range model.AltColumns {
		stale[c] = true
	}
	keep := make([]int, 0, len(target.Columns))
	for i, c := range target.Columns {
		if !stale[strings.TrimSpace(c)] {
			keep = append(keep, i)
		}
	}

	out := table.Table{
		Columns: make([]string, 0, len(keep)+model.TopN),
		Rows:    make([][]string, 0, target.Len()),
	}
	for _, i := range keep {
		out.Columns = append(out.Columns, strings.TrimSpace(target.Columns[i]))
	}
	out.Columns = append(out.Columns, model.AltColumns[:]...)

	salt := target.ColumnIndex(model.ColSaltStrength)
	matched := 0
	for r := range target.Rows {
		row := make([]string, 0, len(out.Columns))
		for _, i := range keep {
			row = append(row, target.Cell(r, i))
		}
		a, ok := alts[target.Cell(r, salt)]
		if ok {
			matched++
		}
		row = append(row, a[:]...)
		out.Rows = append(out.Rows, row)
	}
	return out, matched
}
