package ast

import (
	"strconv"
	"strings"

	"sable/internal/source"
	"sable/internal/token"
)

// PrimitiveType is one of the built-in scalar types (int, float, bool,
// string, char, void).
type PrimitiveType struct {
	Name token.Token
	Pos  source.Loc
}

// NamedType is a user type reference, optionally generic: 'Pair<int, T>'.
type NamedType struct {
	Name     token.Token
	Generics []Type
	Pos      source.Loc
}

// TypeVar is a generic type variable in scope, like the T of 'Pair<T>'.
type TypeVar struct {
	Name token.Token
	Pos  source.Loc
}

// ArrayType is '[elem]' or '[elem; N]'. Size is -1 when unsized.
type ArrayType struct {
	Elem Type
	Size int64
	Pos  source.Loc
}

// TupleType is '(a, b, ...)'.
type TupleType struct {
	Elems []Type
	Pos   source.Loc
}

// FuncType is 'func(params) -> ret'.
type FuncType struct {
	Params []Type
	Return Type
	Pos    source.Loc
}

// BadType stands in for a type the parser had to give up on.
type BadType struct {
	Pos source.Loc
}

func (t *PrimitiveType) Loc() source.Loc { return t.Pos }
func (t *NamedType) Loc() source.Loc     { return t.Pos }
func (t *TypeVar) Loc() source.Loc       { return t.Pos }
func (t *ArrayType) Loc() source.Loc     { return t.Pos }
func (t *TupleType) Loc() source.Loc     { return t.Pos }
func (t *FuncType) Loc() source.Loc      { return t.Pos }
func (t *BadType) Loc() source.Loc       { return t.Pos }

func (*PrimitiveType) typeNode() {}
func (*NamedType) typeNode()     {}
func (*TypeVar) typeNode()       {}
func (*ArrayType) typeNode()     {}
func (*TupleType) typeNode()     {}
func (*FuncType) typeNode()      {}
func (*BadType) typeNode()       {}

// TypeString renders a type the way it would be written in source,
// for diagnostics.
func TypeString(t Type) string {
	switch t := t.(type) {
	case nil:
		return "<unknown>"
	case *PrimitiveType:
		return t.Name.Text
	case *TypeVar:
		return t.Name.Text
	case *NamedType:
		if len(t.Generics) == 0 {
			return t.Name.Text
		}
		parts := make([]string, len(t.Generics))
		for i, g := range t.Generics {
			parts[i] = TypeString(g)
		}
		return t.Name.Text + "<" + strings.Join(parts, ", ") + ">"
	case *ArrayType:
		if t.Size >= 0 {
			return "[" + TypeString(t.Elem) + "; " + strconv.FormatInt(t.Size, 10) + "]"
		}
		return "[" + TypeString(t.Elem) + "]"
	case *TupleType:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = TypeString(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *FuncType:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = TypeString(p)
		}
		out := "func(" + strings.Join(parts, ", ") + ")"
		if t.Return != nil {
			out += " -> " + TypeString(t.Return)
		}
		return out
	default:
		return "<bad type>"
	}
}
