package sema

import "sable/internal/ast"

// Compatible reports whether two types are structurally interchangeable.
// Comparison recurses over shape: primitives and named types by name,
// generic instantiations elementwise, arrays by element and size, tuples
// and function types pointwise. A nil on either side means the type
// could not be determined earlier; treating it as compatible keeps one
// inference failure from fanning out into mismatch noise.
func Compatible(a, b ast.Type) bool {
	if a == nil || b == nil {
		return true
	}
	switch a := a.(type) {
	case *ast.PrimitiveType:
		b, ok := b.(*ast.PrimitiveType)
		return ok && a.Name.Text == b.Name.Text

	case *ast.NamedType:
		b, ok := b.(*ast.NamedType)
		if !ok || a.Name.Text != b.Name.Text || len(a.Generics) != len(b.Generics) {
			return false
		}
		for i := range a.Generics {
			if !Compatible(a.Generics[i], b.Generics[i]) {
				return false
			}
		}
		return true

	case *ast.TypeVar:
		b, ok := b.(*ast.TypeVar)
		return ok && a.Name.Text == b.Name.Text

	case *ast.ArrayType:
		b, ok := b.(*ast.ArrayType)
		return ok && a.Size == b.Size && Compatible(a.Elem, b.Elem)

	case *ast.TupleType:
		b, ok := b.(*ast.TupleType)
		if !ok || len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Compatible(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true

	case *ast.FuncType:
		b, ok := b.(*ast.FuncType)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !Compatible(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return Compatible(a.Return, b.Return)
	}
	return false
}

func isPrimitive(t ast.Type, name string) bool {
	p, ok := t.(*ast.PrimitiveType)
	return ok && p.Name.Text == name
}

func isNumeric(t ast.Type) bool {
	return isPrimitive(t, "int") || isPrimitive(t, "float")
}
