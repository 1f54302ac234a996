package ast

import (
	"sable/internal/source"
	"sable/internal/token"
)

// Module is one parsed source file: a 'module name;' header followed by
// declarations. Statements at the top level are wrapped in StmtDecl.
type Module struct {
	Name  token.Token
	Decls []Decl
	Pos   source.Loc
}

// Import is 'import "path" as alias;'. Alias may be the zero token.
type Import struct {
	Path  token.Token
	Alias token.Token
	Pos   source.Loc
}

// Function is a named function or method declaration. Return is nil for
// functions without a declared result. Body is nil for extern functions.
type Function struct {
	Access AccessModifier
	Name   token.Token
	Params []*Param
	Return Type
	Body   *Block
	Method bool
	Extern bool
	Pos    source.Loc
}

// Param is one function parameter.
type Param struct {
	Name token.Token
	Ty   Type
	Pos  source.Loc
}

// Struct declares a record type with optional generic parameters.
type Struct struct {
	Access   AccessModifier
	Name     token.Token
	Generics []Type
	Fields   []*Field
	Pos      source.Loc
}

// Field is one struct field.
type Field struct {
	Access AccessModifier
	Name   token.Token
	Ty     Type
	Pos    source.Loc
}

// Enum declares a sum type; variants may carry payload type lists.
type Enum struct {
	Access   AccessModifier
	Name     token.Token
	Generics []Type
	Variants []*Variant
	Pos      source.Loc
}

// Variant is one enum alternative.
type Variant struct {
	Name    token.Token
	Payload []Type
	Pos     source.Loc
}

// Trait declares a set of method signatures.
type Trait struct {
	Access   AccessModifier
	Name     token.Token
	Generics []Type
	Methods  []*Function
	Pos      source.Loc
}

// Extend attaches methods to a named type, optionally implementing a
// trait: 'extend Name<T> : TraitName<U> { ... }'.
type Extend struct {
	Name          token.Token
	Generics      []Type
	TraitName     *token.Token
	TraitGenerics []Type
	Methods       []*Function
	Pos           source.Loc
}

// StmtDecl wraps a statement appearing at the top level of a module.
type StmtDecl struct {
	Stmt Stmt
	Pos  source.Loc
}

func (d *Module) Loc() source.Loc   { return d.Pos }
func (d *Import) Loc() source.Loc   { return d.Pos }
func (d *Function) Loc() source.Loc { return d.Pos }
func (d *Param) Loc() source.Loc    { return d.Pos }
func (d *Struct) Loc() source.Loc   { return d.Pos }
func (d *Field) Loc() source.Loc    { return d.Pos }
func (d *Enum) Loc() source.Loc     { return d.Pos }
func (d *Variant) Loc() source.Loc  { return d.Pos }
func (d *Trait) Loc() source.Loc    { return d.Pos }
func (d *Extend) Loc() source.Loc   { return d.Pos }
func (d *StmtDecl) Loc() source.Loc { return d.Pos }

func (*Import) declNode()   {}
func (*Function) declNode() {}
func (*Struct) declNode()   {}
func (*Enum) declNode()     {}
func (*Trait) declNode()    {}
func (*Extend) declNode()   {}
func (*StmtDecl) declNode() {}
