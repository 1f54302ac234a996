package diagfmt

import (
	"fmt"
	"io"

	"sable/internal/ast"
	"sable/internal/symbols"
)

// DumpSymbols lists the module-level bindings of every namespace.
func DumpSymbols(w io.Writer, table *symbols.MultiTable) {
	dumpNamespace(w, "types", table.Types)
	dumpNamespace(w, "values", table.Values)
	dumpNamespace(w, "struct fields", table.StructFields)
	dumpNamespace(w, "enum variants", table.EnumVariants)
}

func dumpNamespace(w io.Writer, label string, t *symbols.Table) {
	syms := t.Base().Symbols()
	if len(syms) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, sym := range syms {
		if sym.Type != nil {
			fmt.Fprintf(w, "  %-10s %s: %s\n", sym.Kind, sym.Name, ast.TypeString(sym.Type))
		} else {
			fmt.Fprintf(w, "  %-10s %s\n", sym.Kind, sym.Name)
		}
	}
}
