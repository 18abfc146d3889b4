package parser

// Coord addresses one cell, 0-based.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Rect is an inclusive cell rectangle. An empty rectangle has R2 < R1 (and
// C2 < C1); see Empty.
type Rect struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

// emptyRect is the canonical zero-area rectangle.
var emptyRect = Rect{R1: 0, C1: 0, R2: -1, C2: -1}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.R2 < r.R1 || r.C2 < r.C1
}

// Rows returns the rectangle's height.
func (r Rect) Rows() int {
	if r.Empty() {
		return 0
	}
	return r.R2 - r.R1 + 1
}

// Cols returns the rectangle's width.
func (r Rect) Cols() int {
	if r.Empty() {
		return 0
	}
	return r.C2 - r.C1 + 1
}

// Contains reports whether (row, col) lies inside the rectangle.
func (r Rect) Contains(row, col int) bool {
	return row >= r.R1 && row <= r.R2 && col >= r.C1 && col <= r.C2
}

// Template is the resolved role geometry of one block shape. It is built once
// by Resolve, never mutated afterwards, and may be shared across concurrent
// Read calls.
type Template struct {
	// Rows and Cols are the bounding shape the template was resolved from;
	// every conforming data grid must match it exactly.
	Rows int `json:"rows"`
	Cols int `json:"cols"`
	// Roles holds the resolved role of every cell position.
	Roles [][]Role `json:"roles"`
	// TableMeta maps each table-metadata label to its value cell.
	TableMeta map[string]Coord `json:"table_meta"`
	// RowMeta maps each row-metadata label to the column holding its values.
	RowMeta map[string]int `json:"row_meta"`
	// ColMeta maps each column-metadata label to the row holding its values.
	ColMeta map[string]int `json:"col_meta"`
	// Data is the bounding rectangle of the core data region. It is empty
	// for a pure metadata block.
	Data Rect `json:"data"`
}

// RoleAt returns the resolved role at (row, col). Positions outside the
// bounding shape are RoleIgnore.
func (t *Template) RoleAt(row, col int) Role {
	if row < 0 || row >= t.Rows || col < 0 || col >= t.Cols {
		return RoleIgnore
	}
	return t.Roles[row][col]
}
