package parser

import (
	"github.com/minexcel/minexcel-go/pkg/minexcel/grid"
)

// Resolve builds a Template from an annotated template grid.
//
// Cell text decides the initial role: a marker token gives its role, empty
// text gives RoleData, and any other text is a metadata label and resolves to
// RoleIgnore. Merge ranges then propagate the anchor's role and text to every
// covered cell. Finally each marker is paired with its label cell:
//
//   - [rowmeta]: the cell immediately above the marker span's anchor,
//   - [colmeta]: the cell immediately left of the anchor,
//   - [tablemeta]: the cell immediately left of the anchor, falling back to
//     the cell immediately above.
//
// A missing, empty, or marker-valued label cell fails the resolve. The grid's
// merge ranges are assumed in-bounds and non-overlapping; the grid package
// enforces both when a grid is built.
func Resolve(g grid.Grid) (*Template, error) {
	rows, cols := g.Shape()

	roles := make([][]Role, rows)
	text := make([][]string, rows)
	for r := 0; r < rows; r++ {
		roles[r] = make([]Role, cols)
		text[r] = make([]string, cols)
		for c := 0; c < cols; c++ {
			v := g.CellValue(r, c)
			text[r][c] = v
			switch role, ok := markerRole(v); {
			case ok:
				roles[r][c] = role
			case v == "":
				roles[r][c] = RoleData
			default:
				roles[r][c] = RoleIgnore // label candidate
			}
		}
	}

	merges := g.MergeRanges()
	for _, m := range merges {
		ar, ac := m.Anchor()
		for r := m.R1; r <= m.R2; r++ {
			for c := m.C1; c <= m.C2; c++ {
				roles[r][c] = roles[ar][ac]
				text[r][c] = text[ar][ac]
			}
		}
	}

	rs := &resolver{roles: roles, text: text, rows: rows, cols: cols, merges: merges}

	tmpl := &Template{
		Rows:      rows,
		Cols:      cols,
		TableMeta: map[string]Coord{},
		RowMeta:   map[string]int{},
		ColMeta:   map[string]int{},
		Data:      emptyRect,
	}

	if err := rs.collectTableMeta(tmpl); err != nil {
		return nil, err
	}
	rowSpans, err := rs.collectRowMeta(tmpl)
	if err != nil {
		return nil, err
	}
	colSpans, err := rs.collectColMeta(tmpl)
	if err != nil {
		return nil, err
	}
	if err := rs.resolveDataRect(tmpl); err != nil {
		return nil, err
	}

	for col, span := range rowSpans {
		if span.lo < tmpl.Data.R1 || span.hi > tmpl.Data.R2 {
			return nil, &TemplateError{Reason: "row metadata outside data rows", Row: span.lo, Col: col}
		}
	}
	for row, span := range colSpans {
		if span.lo < tmpl.Data.C1 || span.hi > tmpl.Data.C2 {
			return nil, &TemplateError{Reason: "column metadata outside data columns", Row: row, Col: span.lo}
		}
	}

	tmpl.Roles = roles
	return tmpl, nil
}

// span is an inclusive index interval along one axis.
type span struct {
	lo, hi int
}

type resolver struct {
	roles  [][]Role
	text   [][]string
	rows   int
	cols   int
	merges []grid.MergeRange
}

// isAnchor reports whether (r, c) is either unmerged or the anchor of its
// merge range, so that each merged marker counts once.
func (rs *resolver) isAnchor(r, c int) bool {
	for _, m := range rs.merges {
		if m.Contains(r, c) {
			return m.R1 == r && m.C1 == c
		}
	}
	return true
}

// label returns the metadata name held at (r, c). ok is false when the cell
// is out of bounds, empty, or a marker.
func (rs *resolver) label(r, c int) (string, bool) {
	if r < 0 || r >= rs.rows || c < 0 || c >= rs.cols {
		return "", false
	}
	v := rs.text[r][c]
	if v == "" {
		return "", false
	}
	if _, isMarker := markerRole(v); isMarker {
		return "", false
	}
	return v, true
}

func (rs *resolver) collectTableMeta(tmpl *Template) error {
	for r := 0; r < rs.rows; r++ {
		for c := 0; c < rs.cols; c++ {
			if rs.roles[r][c] != RoleTableMeta || !rs.isAnchor(r, c) {
				continue
			}
			lr, lc := r, c-1
			name, ok := rs.label(lr, lc)
			if !ok {
				lr, lc = r-1, c
				name, ok = rs.label(lr, lc)
			}
			if !ok {
				return &TemplateError{Reason: "unresolved metadata label", Row: r, Col: c}
			}
			if _, dup := tmpl.TableMeta[name]; dup {
				return &TemplateError{Reason: "ambiguous table metadata", Row: r, Col: c}
			}
			rs.roles[lr][lc] = RoleIgnore
			tmpl.TableMeta[name] = Coord{Row: r, Col: c}
		}
	}
	return nil
}

func (rs *resolver) collectRowMeta(tmpl *Template) (map[int]span, error) {
	spans := make(map[int]span)
	for c := 0; c < rs.cols; c++ {
		var marked []int
		for r := 0; r < rs.rows; r++ {
			if rs.roles[r][c] == RoleRowMeta {
				marked = append(marked, r)
			}
		}
		if len(marked) == 0 {
			continue
		}
		if !IntSerial(marked, false) {
			return nil, &TemplateError{Reason: "row metadata rows not contiguous", Row: marked[0], Col: c}
		}
		anchor := marked[0]
		name, ok := rs.label(anchor-1, c)
		if !ok {
			return nil, &TemplateError{Reason: "unresolved metadata label", Row: anchor, Col: c}
		}
		if _, dup := tmpl.RowMeta[name]; dup {
			return nil, &TemplateError{Reason: "duplicate row metadata label", Row: anchor, Col: c}
		}
		rs.roles[anchor-1][c] = RoleIgnore
		tmpl.RowMeta[name] = c
		spans[c] = span{lo: marked[0], hi: marked[len(marked)-1]}
	}
	return spans, nil
}

func (rs *resolver) collectColMeta(tmpl *Template) (map[int]span, error) {
	spans := make(map[int]span)
	for r := 0; r < rs.rows; r++ {
		var marked []int
		for c := 0; c < rs.cols; c++ {
			if rs.roles[r][c] == RoleColMeta {
				marked = append(marked, c)
			}
		}
		if len(marked) == 0 {
			continue
		}
		if !IntSerial(marked, false) {
			return nil, &TemplateError{Reason: "column metadata columns not contiguous", Row: r, Col: marked[0]}
		}
		anchor := marked[0]
		name, ok := rs.label(r, anchor-1)
		if !ok {
			return nil, &TemplateError{Reason: "unresolved metadata label", Row: r, Col: anchor}
		}
		if _, dup := tmpl.ColMeta[name]; dup {
			return nil, &TemplateError{Reason: "duplicate column metadata label", Row: r, Col: anchor}
		}
		rs.roles[r][anchor-1] = RoleIgnore
		tmpl.ColMeta[name] = r
		spans[r] = span{lo: marked[0], hi: marked[len(marked)-1]}
	}
	return spans, nil
}

// resolveDataRect finds the bounding rectangle of all cells still holding the
// default RoleData and verifies it is filled by them exactly. Zero data cells
// leave the rectangle empty, which is a valid pure-metadata block.
func (rs *resolver) resolveDataRect(tmpl *Template) error {
	rect := emptyRect
	count := 0
	for r := 0; r < rs.rows; r++ {
		for c := 0; c < rs.cols; c++ {
			if rs.roles[r][c] != RoleData {
				continue
			}
			if count == 0 {
				rect = Rect{R1: r, C1: c, R2: r, C2: c}
			} else {
				if r < rect.R1 {
					rect.R1 = r
				}
				if r > rect.R2 {
					rect.R2 = r
				}
				if c < rect.C1 {
					rect.C1 = c
				}
				if c > rect.C2 {
					rect.C2 = c
				}
			}
			count++
		}
	}
	if count > 0 && count != rect.Rows()*rect.Cols() {
		return &TemplateError{Reason: "non-rectangular or contaminated data region", Row: -1, Col: -1}
	}
	tmpl.Data = rect
	return nil
}
