package finbook

import "fmt"

// Diagnostics collects notes about fields that were silently defaulted
// during normalization. The defaulting behavior itself never changes:
// diagnostics only make it observable, so a stricter mode can be layered on
// top without touching the permissive semantics.
//
// A nil *Diagnostics is valid and collects nothing.
type Diagnostics struct {
	row   int
	notes []Diagnostic
}

// Diagnostic records a single defaulted field.
type Diagnostic struct {
	Row    int    // 1-based data row, 0 when unknown (e.g. manual entry)
	Field  string // canonical field name
	Reason string
}

func (d Diagnostic) String() string {
	if d.Row == 0 {
		return fmt.Sprintf("field %s defaulted: %s", d.Field, d.Reason)
	}
	return fmt.Sprintf("field %s on row %d defaulted: %s", d.Field, d.Row, d.Reason)
}

// SetRow sets the row number attached to subsequent notes.
func (d *Diagnostics) SetRow(row int) {
	if d == nil {
		return
	}
	d.row = row
}

func (d *Diagnostics) note(field, format string, args ...any) {
	if d == nil {
		return
	}
	d.notes = append(d.notes, Diagnostic{Row: d.row, Field: field, Reason: fmt.Sprintf(format, args...)})
}

// Notes returns the collected diagnostics in collection order.
func (d *Diagnostics) Notes() []Diagnostic {
	if d == nil {
		return nil
	}
	return d.notes
}
