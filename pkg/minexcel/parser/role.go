// Package parser resolves annotated template grids into reusable block
// templates and applies them to data grids.
package parser

// Role classifies what one cell position holds inside a block.
type Role int

const (
	// RoleData marks a core data cell (empty template cell text).
	RoleData Role = iota
	// RoleTableMeta marks a scalar table-level metadata value cell.
	RoleTableMeta
	// RoleRowMeta marks a per-row metadata value cell.
	RoleRowMeta
	// RoleColMeta marks a per-column metadata value cell.
	RoleColMeta
	// RoleIgnore marks a cell the reader skips (markup labels, padding).
	RoleIgnore
)

// Marker tokens recognized as exact, case-sensitive cell text.
const (
	markerTableMeta = "[tablemeta]"
	markerRowMeta   = "[rowmeta]"
	markerColMeta   = "[colmeta]"
	markerIgnore    = "[ignore]"
)

// markerRole maps a marker token to its role. ok is false for any other text.
func markerRole(text string) (Role, bool) {
	switch text {
	case markerTableMeta:
		return RoleTableMeta, true
	case markerRowMeta:
		return RoleRowMeta, true
	case markerColMeta:
		return RoleColMeta, true
	case markerIgnore:
		return RoleIgnore, true
	}
	return RoleData, false
}

func (r Role) String() string {
	switch r {
	case RoleData:
		return "data"
	case RoleTableMeta:
		return "tablemeta"
	case RoleRowMeta:
		return "rowmeta"
	case RoleColMeta:
		return "colmeta"
	case RoleIgnore:
		return "ignore"
	}
	return "unknown"
}

// MarshalJSON renders the role as its token name.
func (r Role) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}
