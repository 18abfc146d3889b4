package parser

import (
	"strconv"

	"github.com/minexcel/minexcel-go/pkg/minexcel/grid"
	"github.com/minexcel/minexcel-go/pkg/minexcel/models"
)

// Read applies a resolved template to a data grid and assembles one block
// record. It is a pure function: the template is never mutated, so one
// template may serve any number of concurrent reads.
//
// The data grid must have exactly the template's bounding shape. Metadata
// lookups are merge-aware: an empty cell covered by a merge range in the data
// sheet reads the range anchor's value. A metadata cell that is still empty
// after that fails the read; data-region cells may be empty and come through
// as nil.
func Read(t *Template, g grid.Grid) (*models.Block, error) {
	rows, cols := g.Shape()
	if rows != t.Rows || cols != t.Cols {
		return nil, &ShapeError{WantRows: t.Rows, WantCols: t.Cols, GotRows: rows, GotCols: cols}
	}

	merges := g.MergeRanges()
	lookup := func(r, c int) string {
		if v := g.CellValue(r, c); v != "" {
			return v
		}
		for _, m := range merges {
			if m.Contains(r, c) {
				return g.CellValue(m.Anchor())
			}
		}
		return ""
	}

	blk := &models.Block{
		TableMeta: map[string]any{},
		RowMeta:   map[string][]any{},
		ColMeta:   map[string][]any{},
		Data:      [][]any{},
	}

	for name, at := range t.TableMeta {
		v := lookup(at.Row, at.Col)
		if v == "" {
			return nil, &DataError{Label: name, Row: at.Row, Col: at.Col}
		}
		blk.TableMeta[name] = parseValue(v)
	}

	// Row and column metadata are emitted strictly in grid order, one entry
	// per data row (resp. column), so callers can zip them with the data
	// matrix positionally.
	for name, col := range t.RowMeta {
		vals := make([]any, 0, t.Data.Rows())
		for r := t.Data.R1; r <= t.Data.R2; r++ {
			v := lookup(r, col)
			if v == "" {
				return nil, &DataError{Label: name, Row: r, Col: col}
			}
			vals = append(vals, parseValue(v))
		}
		blk.RowMeta[name] = vals
	}

	for name, row := range t.ColMeta {
		vals := make([]any, 0, t.Data.Cols())
		for c := t.Data.C1; c <= t.Data.C2; c++ {
			v := lookup(row, c)
			if v == "" {
				return nil, &DataError{Label: name, Row: row, Col: c}
			}
			vals = append(vals, parseValue(v))
		}
		blk.ColMeta[name] = vals
	}

	if !t.Data.Empty() {
		blk.Data = make([][]any, 0, t.Data.Rows())
		for r := t.Data.R1; r <= t.Data.R2; r++ {
			row := make([]any, t.Data.Cols())
			for c := t.Data.C1; c <= t.Data.C2; c++ {
				if v := lookup(r, c); v != "" {
					row[c-t.Data.C1] = parseValue(v)
				}
			}
			blk.Data = append(blk.Data, row)
		}
	}

	return blk, nil
}

// parseValue coerces cell text to a typed value: int64 where the text is an
// integer, float64 where it is a decimal, the original string otherwise.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
