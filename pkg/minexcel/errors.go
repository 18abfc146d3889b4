package minexcel

import "github.com/minexcel/minexcel-go/pkg/minexcel/parser"

// Error types surfaced by ParseTemplate and ReadBlock, re-exported so callers
// of the package root need not import the parser package to match them.
type (
	// TemplateError reports template markup or geometry that violates a
	// resolver invariant. Fatal to ParseTemplate; a template authoring bug.
	TemplateError = parser.TemplateError
	// ShapeError reports a data sheet whose dimensions differ from the
	// template's bounding shape. Fatal to that ReadBlock call only.
	ShapeError = parser.ShapeError
	// DataError reports a required metadata value cell that is empty at
	// read time. Fatal to that ReadBlock call only.
	DataError = parser.DataError
)
