package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// FromExcelFile reads one sheet of an open workbook into a Slice grid.
// Cell values come from excelize's row iterator; merge ranges come from the
// sheet's explicit merge-cell records. The grid extends to the widest row and
// to the far corner of the outermost merge range, whichever is larger.
func FromExcelFile(f *excelize.File, sheet string) (*Slice, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	merges, err := mergeRanges(f, sheet)
	if err != nil {
		return nil, err
	}

	// Trailing empty rows and columns only exist in the sheet XML when some
	// cell record reaches them, so pad out to the merge extent if needed.
	nrows := len(rows)
	ncols := 0
	for _, row := range rows {
		if len(row) > ncols {
			ncols = len(row)
		}
	}
	for _, m := range merges {
		if m.R2+1 > nrows {
			nrows = m.R2 + 1
		}
		if m.C2+1 > ncols {
			ncols = m.C2 + 1
		}
	}
	for len(rows) < nrows {
		rows = append(rows, nil)
	}
	if ncols > 0 {
		for i := range rows {
			for len(rows[i]) < ncols {
				rows[i] = append(rows[i], "")
			}
		}
	}

	return NewSlice(rows, merges)
}

// mergeRanges collects the sheet's merge rectangles as 0-based coordinates.
func mergeRanges(f *excelize.File, sheet string) ([]MergeRange, error) {
	mcs, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading merge cells of sheet %q: %w", sheet, err)
	}
	ranges := make([]MergeRange, 0, len(mcs))
	for _, mc := range mcs {
		c1, r1, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return nil, fmt.Errorf("merge range %q: %w", mc.GetStartAxis(), err)
		}
		c2, r2, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("merge range %q: %w", mc.GetEndAxis(), err)
		}
		ranges = append(ranges, MergeRange{R1: r1 - 1, C1: c1 - 1, R2: r2 - 1, C2: c2 - 1})
	}
	return ranges, nil
}
