// Package diagfmt renders compiler output for humans and tools:
// diagnostics with source snippets and caret underlines, token dumps,
// AST dumps and symbol table listings.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sable/internal/diag"
	"sable/internal/source"
)

// Pretty writes every diagnostic in bag with its source context. Call
// bag.Sort() first for file and line order. Files are resolved through
// fs; a diagnostic whose file is missing falls back to a bare header.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		p.print(d)
	}
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) paint(c *color.Color, s string) string {
	if !p.opts.Color {
		return s
	}
	return c.Sprint(s)
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	gutterColor  = color.New(color.FgBlue, color.Bold)
	caretColor   = color.New(color.FgRed, color.Bold)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	}
	return infoColor
}

func (p *prettyPrinter) print(d diag.Diagnostic) {
	head := d.Severity.String() + "[" + d.Code.String() + "]"
	fmt.Fprintf(p.w, "%s: %s\n", p.paint(severityColor(d.Severity), head), d.Message)

	file := p.fs.Get(d.File)
	col := d.Primary.Span.Start + 1
	fmt.Fprintf(p.w, "  %s %s:%d:%d\n", p.paint(gutterColor, "-->"), d.File, d.Primary.Line, col)
	if file != nil {
		p.snippet(file, d.Primary)
	}

	if p.opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(p.w, "  %s %s\n", p.paint(gutterColor, "= note:"), n.Msg)
		}
	}
	if p.opts.ShowFixes {
		for _, f := range d.Fixes {
			fmt.Fprintf(p.w, "%s: %s\n", p.paint(infoColor, "help"), f.Title)
		}
	}
}

// snippet prints the primary line with its caret underline, surrounded
// by up to opts.Context lines each way.
func (p *prettyPrinter) snippet(file *source.File, loc source.Loc) {
	line := int(loc.Line)
	first := line - p.opts.Context
	if first < 1 {
		first = 1
	}
	last := line + p.opts.Context
	if n := file.NumLines(); last > n {
		last = n
	}

	width := len(fmt.Sprintf("%d", last))
	gutter := strings.Repeat(" ", width)
	fmt.Fprintf(p.w, " %s %s\n", gutter, p.paint(gutterColor, "|"))

	for n := first; n <= last; n++ {
		text := file.Line(n)
		num := fmt.Sprintf("%*d", width, n)
		fmt.Fprintf(p.w, " %s %s %s\n", p.paint(gutterColor, num), p.paint(gutterColor, "|"), text)
		if n == line {
			p.underline(gutter, text, loc.Span)
		}
	}
	fmt.Fprintf(p.w, " %s %s\n", gutter, p.paint(gutterColor, "|"))
}

// underline aligns the carets by display width, not byte count, so
// wide runes in the prefix keep the marker under the right characters.
func (p *prettyPrinter) underline(gutter, text string, span source.Span) {
	start := int(span.Start)
	end := int(span.End)
	if start > len(text) {
		start = len(text)
	}
	if end > len(text) {
		end = len(text)
	}
	pad := runewidth.StringWidth(text[:start])
	marks := runewidth.StringWidth(text[start:end])
	if marks < 1 {
		marks = 1
	}
	fmt.Fprintf(p.w, " %s %s %s%s\n",
		gutter,
		p.paint(gutterColor, "|"),
		strings.Repeat(" ", pad),
		p.paint(caretColor, strings.Repeat("^", marks)))
}
