package diag

import (
	"sable/internal/source"
)

// Note is a secondary annotation attached to a diagnostic.
type Note struct {
	Loc source.Loc
	Msg string
}

// FixEdit is a single textual replacement; an empty NewText deletes the
// spanned characters.
type FixEdit struct {
	Loc     source.Loc
	NewText string
}

// Fix is a suggested repair made of one or more edits.
type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is one rendered-to-the-user finding. File is stamped by the
// reporter that collected it, so phases report without knowing their file.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	File     string
	Primary  source.Loc
	Notes    []Note
	Fixes    []Fix
}

// WithNote returns a copy of d with an extra note.
func (d Diagnostic) WithNote(loc source.Loc, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Loc: loc, Msg: msg})
	return d
}

// WithFix returns a copy of d with an extra suggested fix.
func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
