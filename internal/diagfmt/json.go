package diagfmt

import (
	"encoding/json"
	"io"

	"sable/internal/diag"
)

// DiagnosticOutput is the JSON shape of one diagnostic.
type DiagnosticOutput struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	File     string       `json:"file"`
	Line     uint32       `json:"line"`
	Start    uint32       `json:"start"`
	End      uint32       `json:"end"`
	Notes    []string     `json:"notes,omitempty"`
	Fixes    []FixOutput  `json:"fixes,omitempty"`
}

// FixOutput is the JSON shape of one suggested fix.
type FixOutput struct {
	Title string `json:"title"`
}

// JSON writes the bag as an indented JSON array.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}
	output := make([]DiagnosticOutput, 0, len(items))
	for _, d := range items {
		out := DiagnosticOutput{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
			File:     d.File,
			Line:     d.Primary.Line,
			Start:    d.Primary.Span.Start,
			End:      d.Primary.Span.End,
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				out.Notes = append(out.Notes, n.Msg)
			}
		}
		if opts.IncludeFixes {
			for _, f := range d.Fixes {
				out.Fixes = append(out.Fixes, FixOutput{Title: f.Title})
			}
		}
		output = append(output, out)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
