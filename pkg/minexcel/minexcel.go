// Package minexcel extracts templated table blocks from Excel workbooks.
//
// A small annotated template workbook declares the role of every cell in a
// block through marker tokens ([tablemeta], [rowmeta], [colmeta], [ignore]);
// ParseTemplate resolves it into a reusable Template, and ReadBlock applies
// that template to data workbooks sharing the same layout.
package minexcel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/minexcel/minexcel-go/pkg/minexcel/grid"
	"github.com/minexcel/minexcel-go/pkg/minexcel/models"
	"github.com/minexcel/minexcel-go/pkg/minexcel/parser"
)

// ParseTemplate opens a template workbook and resolves one sheet into a
// Template.
func ParseTemplate(path string, opts Options) (*parser.Template, error) {
	g, err := openGrid(path, opts)
	if err != nil {
		return nil, err
	}
	return parser.Resolve(g)
}

// ReadBlock opens a data workbook and reads one block from it using a
// previously resolved template.
func ReadBlock(path string, tmpl *parser.Template, opts Options) (*models.Block, error) {
	g, err := openGrid(path, opts)
	if err != nil {
		return nil, err
	}
	return parser.Read(tmpl, g)
}

// openGrid materializes the requested sheet as an in-memory grid. All file
// I/O happens here; the parser only ever sees the grid.
func openGrid(path string, opts Options) (*grid.Slice, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}
	return grid.FromExcelFile(f, sheet)
}
