package parser

import "fmt"

// TemplateError reports a template sheet whose markup or geometry violates a
// resolver invariant. Row/Col point at the offending cell, or are -1 when the
// violation has no single cell.
type TemplateError struct {
	Reason string
	Row    int
	Col    int
}

func (e *TemplateError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("template error: %s", e.Reason)
	}
	return fmt.Sprintf("template error at row %d, col %d: %s", e.Row, e.Col, e.Reason)
}

// ShapeError reports a data grid whose dimensions differ from the template's
// bounding shape.
type ShapeError struct {
	WantRows int
	WantCols int
	GotRows  int
	GotCols  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("data grid is %dx%d, template expects %dx%d",
		e.GotRows, e.GotCols, e.WantRows, e.WantCols)
}

// DataError reports a metadata value cell that is empty at read time.
type DataError struct {
	Label string
	Row   int
	Col   int
}

func (e *DataError) Error() string {
	return fmt.Sprintf("empty value for metadata %q at row %d, col %d", e.Label, e.Row, e.Col)
}
