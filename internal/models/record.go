package models

import "fmt"

// Record is a server-owned entity row. The portal treats fields as opaque
// display values and only recognises the unique-id column declared by each
// list view; it never invents or validates business fields.
type Record map[string]any

// String renders a field as its display form. Missing fields render empty,
// matching how the backend omits optional columns.
func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	// JSON numbers decode as float64; keep integral values short.
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", v)
}

// ID returns the value of the declared unique-id field.
func (r Record) ID(idField string) string {
	return r.String(idField)
}
