package listview

import (
	"github.com/noah-isme/sdms-portal/pkg/export"
)

// Export renders the current filtered set (all pages) in the given format.
func (v *View) Export(format string) ([]byte, string, error) {
	exporter, err := export.ForFormat(format)
	if err != nil {
		return nil, "", err
	}

	v.mu.Lock()
	filtered := v.filteredLocked()
	rows := make([]map[string]string, 0, len(filtered))
	for _, record := range filtered {
		row := make(map[string]string, len(v.cfg.Columns))
		for _, col := range v.cfg.Columns {
			row[col] = record.String(col)
		}
		rows = append(rows, row)
	}
	table := export.Table{Title: v.cfg.Title, Columns: v.cfg.Columns, Rows: rows}
	v.mu.Unlock()

	payload, err := exporter.Render(table)
	if err != nil {
		return nil, "", err
	}
	return payload, exporter.Extension(), nil
}
