// Package grid exposes a worksheet as a flat 2-D grid of cell values plus
// merge-range metadata. It is the only seam between the block parser and any
// concrete spreadsheet library.
package grid

import "fmt"

// MergeRange is a rectangular span of cells sharing one logical value.
// Coordinates are 0-based and inclusive; the value lives at the anchor
// (top-left) cell.
type MergeRange struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

// Anchor returns the coordinate of the range's top-left cell.
func (m MergeRange) Anchor() (row, col int) {
	return m.R1, m.C1
}

// Contains reports whether (row, col) lies inside the range.
func (m MergeRange) Contains(row, col int) bool {
	return row >= m.R1 && row <= m.R2 && col >= m.C1 && col <= m.C2
}

// Overlaps reports whether two ranges share at least one cell.
func (m MergeRange) Overlaps(o MergeRange) bool {
	return m.R1 <= o.R2 && o.R1 <= m.R2 && m.C1 <= o.C2 && o.C1 <= m.C2
}

// Grid is the capability surface the block parser depends on. Implementations
// must return "" for cells covered by a merge range but not at its anchor.
type Grid interface {
	// Shape returns the grid dimensions.
	Shape() (rows, cols int)
	// CellValue returns the raw text of the cell at (row, col), or "" when
	// the cell is empty or out of bounds.
	CellValue(row, col int) string
	// MergeRanges returns the sheet's merge ranges. Ranges never overlap.
	MergeRanges() []MergeRange
}

// Slice is an in-memory Grid backed by a [][]string.
type Slice struct {
	cells  [][]string
	cols   int
	merges []MergeRange
}

// NewSlice builds a Slice grid from row-major cell text and merge ranges.
// Rows may be ragged; the grid width is the widest row. Merge ranges must lie
// inside the grid and must not overlap one another.
func NewSlice(cells [][]string, merges []MergeRange) (*Slice, error) {
	cols := 0
	for _, row := range cells {
		if len(row) > cols {
			cols = len(row)
		}
	}
	for i, m := range merges {
		if m.R1 < 0 || m.C1 < 0 || m.R1 > m.R2 || m.C1 > m.C2 {
			return nil, fmt.Errorf("malformed merge range %+v", m)
		}
		if m.R2 >= len(cells) || m.C2 >= cols {
			return nil, fmt.Errorf("merge range %+v exceeds grid bounds %dx%d", m, len(cells), cols)
		}
		for _, o := range merges[:i] {
			if m.Overlaps(o) {
				return nil, fmt.Errorf("overlapping merge ranges %+v and %+v", o, m)
			}
		}
	}
	return &Slice{cells: cells, cols: cols, merges: merges}, nil
}

// Shape returns the grid dimensions.
func (s *Slice) Shape() (rows, cols int) {
	return len(s.cells), s.cols
}

// CellValue returns the cell text at (row, col), or "" when out of bounds.
func (s *Slice) CellValue(row, col int) string {
	if row < 0 || row >= len(s.cells) || col < 0 || col >= s.cols {
		return ""
	}
	if col >= len(s.cells[row]) {
		return ""
	}
	return s.cells[row][col]
}

// MergeRanges returns the sheet's merge ranges.
func (s *Slice) MergeRanges() []MergeRange {
	return s.merges
}

// section is a rectangular view into a parent grid.
type section struct {
	parent     Grid
	r0, c0     int
	rows, cols int
	merges     []MergeRange
}

// Section returns a read-only view of the rows x cols rectangle of g whose
// top-left corner is (r0, c0). Merge ranges fully contained in the rectangle
// are carried over, translated to section coordinates; ranges crossing the
// section boundary are dropped. Sheets holding several blocks are addressed
// by taking one section per block.
func Section(g Grid, r0, c0, rows, cols int) (Grid, error) {
	gr, gc := g.Shape()
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > gr || c0+cols > gc {
		return nil, fmt.Errorf("section %dx%d at (%d,%d) exceeds grid bounds %dx%d", rows, cols, r0, c0, gr, gc)
	}
	sec := &section{parent: g, r0: r0, c0: c0, rows: rows, cols: cols}
	outer := MergeRange{R1: r0, C1: c0, R2: r0 + rows - 1, C2: c0 + cols - 1}
	for _, m := range g.MergeRanges() {
		if outer.Contains(m.R1, m.C1) && outer.Contains(m.R2, m.C2) {
			sec.merges = append(sec.merges, MergeRange{
				R1: m.R1 - r0,
				C1: m.C1 - c0,
				R2: m.R2 - r0,
				C2: m.C2 - c0,
			})
		}
	}
	return sec, nil
}

func (s *section) Shape() (rows, cols int) {
	return s.rows, s.cols
}

func (s *section) CellValue(row, col int) string {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return ""
	}
	return s.parent.CellValue(s.r0+row, s.c0+col)
}

func (s *section) MergeRanges() []MergeRange {
	return s.merges
}
