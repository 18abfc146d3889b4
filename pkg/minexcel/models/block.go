// Package models defines the data structures returned by block extraction.
package models

// Block is one extracted table block: scalar table metadata, positional row
// and column metadata, and the core data matrix. Row and column metadata
// sequences are ordered top-to-bottom and left-to-right, matching the data
// matrix's axes. Values are int64, float64, or string; empty data cells are
// nil. A Block is owned solely by the caller.
type Block struct {
	TableMeta map[string]any   `json:"table_meta"`
	RowMeta   map[string][]any `json:"row_meta"`
	ColMeta   map[string][]any `json:"col_meta"`
	Data      [][]any          `json:"data"`
}
