// Package export renders tabular portal data (list views) into portable
// formats. The data is always the already-filtered display set: columns are
// the view's declared display columns, rows are stringified field values.
package export

import "fmt"

// Table is the tabular content handed to an exporter.
type Table struct {
	Title   string
	Columns []string
	Rows    []map[string]string
}

// Exporter renders a Table into a byte payload.
type Exporter interface {
	Render(t Table) ([]byte, error)
	Extension() string
}

// ForFormat returns the exporter for a format name ("csv" or "pdf").
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "csv":
		return CSVExporter{}, nil
	case "pdf":
		return PDFExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
