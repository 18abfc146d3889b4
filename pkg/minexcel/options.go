package minexcel

// Options configures how a workbook is opened.
type Options struct {
	// Sheet names the sheet to read. Empty selects the workbook's first
	// sheet.
	Sheet string
}

// DefaultOptions returns the default open options.
func DefaultOptions() Options {
	return Options{}
}
