// Package sema performs semantic analysis over a parsed module: a
// populate pass collects module-level declarations into scoped symbol
// tables, then a check pass walks function bodies inferring expression
// types and verifying them structurally. All findings are reported as
// diagnostics; analysis never stops at the first error.
package sema

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/symbols"
)

// Options configures an analysis run.
type Options struct {
	// Reporter receives semantic diagnostics. May be nil.
	Reporter diag.Reporter
}

// Check analyses m and returns the populated symbol tables.
func Check(m *ast.Module, opts Options) *symbols.MultiTable {
	table := Populate(m, opts)
	c := NewChecker(table, opts)
	c.CheckModule(m)
	return table
}
