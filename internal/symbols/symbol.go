// Package symbols implements the scoped symbol tables produced by name
// resolution. Lookups walk a scope stack from innermost outward, and the
// separate namespaces (types, values, enum variants, struct fields)
// never shadow one another.
package symbols

import (
	"sable/internal/ast"
	"sable/internal/source"
)

// SymbolKind classifies what a name refers to.
type SymbolKind uint8

const (
	// SymVariable is a let binding.
	SymVariable SymbolKind = iota
	// SymFunction is a top-level or extension function.
	SymFunction
	// SymStruct is a struct type.
	SymStruct
	// SymEnum is an enum type.
	SymEnum
	// SymTrait is a trait.
	SymTrait
	// SymType covers primitives and aliases.
	SymType
	// SymParameter is a function parameter binding.
	SymParameter
	// SymField is a struct field, keyed "Struct.field".
	SymField
	// SymVariant is an enum variant, keyed "Enum.Variant".
	SymVariant
	// SymModule is an import alias.
	SymModule
)

var symbolKindNames = [...]string{
	SymVariable:  "variable",
	SymFunction:  "function",
	SymStruct:    "struct",
	SymEnum:      "enum",
	SymTrait:     "trait",
	SymType:      "type",
	SymParameter: "parameter",
	SymField:     "field",
	SymVariant:   "variant",
	SymModule:    "module",
}

func (k SymbolKind) String() string {
	if int(k) < len(symbolKindNames) {
		return symbolKindNames[k]
	}
	return "unknown"
}

// Symbol is one resolved name. Type is nil for symbols that have no
// expressible type of their own (traits, modules). Fields and Variants
// are populated for struct and enum symbols respectively.
type Symbol struct {
	Name     string
	Kind     SymbolKind
	Type     ast.Type
	Loc      *source.Loc
	Fields   []*ast.Field
	Variants []*ast.Variant
}
