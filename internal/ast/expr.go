package ast

import (
	"sable/internal/source"
	"sable/internal/token"
)

// Ident is a name reference.
type Ident struct {
	Name token.Token
	Pos  source.Loc
}

// LitKind discriminates Literal values.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitBool
	LitNull
	LitString
	LitChar
)

// Literal is a literal value. The decoded value lives in the field
// matching Kind; Tok always keeps the original token.
type Literal struct {
	Kind  LitKind
	Int   int64
	Float float64
	Bool  bool
	Tok   token.Token
	Pos   source.Loc
}

// Unary is a prefix operator application.
type Unary struct {
	Op  token.Token
	X   Expr
	Pos source.Loc
}

// Binary is an infix operator application.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
	Pos   source.Loc
}

// Assign is 'target op value' where op is '=' or a compound assignment.
// Assignment is right-associative, so Value may be another Assign.
type Assign struct {
	Target Expr
	Op     token.Token
	Value  Expr
	Pos    source.Loc
}

// Call applies a callee to arguments, optionally with explicit generic
// arguments: 'f<int>(x)'.
type Call struct {
	Callee      Expr
	GenericArgs []Type
	Args        []Expr
	Pos         source.Loc
}

// FieldExpr is 'base.name'.
type FieldExpr struct {
	Base Expr
	Name token.Token
	Pos  source.Loc
}

// IndexExpr is 'base[index]'.
type IndexExpr struct {
	Base  Expr
	Index Expr
	Pos   source.Loc
}

// FieldInit is one 'name: value' entry of a struct literal. Shorthand
// '{x}' arrives here already expanded to '{x: x}'.
type FieldInit struct {
	Name  token.Token
	Value Expr
	Pos   source.Loc
}

// StructLit is 'Name { field: value, ... }'.
type StructLit struct {
	Name   token.Token
	Fields []*FieldInit
	Pos    source.Loc
}

// ArrayLit is '[a, b, c]'.
type ArrayLit struct {
	Elems []Expr
	Pos   source.Loc
}

// TupleLit is '(a, b)'; always two or more elements, a single
// parenthesised expression stays a Grouping.
type TupleLit struct {
	Elems []Expr
	Pos   source.Loc
}

// Cast is 'expr as type'.
type Cast struct {
	X   Expr
	Ty  Type
	Pos source.Loc
}

// Closure is '|params| -> type body'.
type Closure struct {
	Params []*Param
	Return Type
	Body   Stmt
	Pos    source.Loc
}

// Grouping is a parenthesised expression kept for faithful spans.
type Grouping struct {
	X   Expr
	Pos source.Loc
}

// BadExpr stands in for an expression the parser had to give up on.
type BadExpr struct {
	Pos source.Loc
}

func (e *Ident) Loc() source.Loc     { return e.Pos }
func (e *Literal) Loc() source.Loc   { return e.Pos }
func (e *Unary) Loc() source.Loc     { return e.Pos }
func (e *Binary) Loc() source.Loc    { return e.Pos }
func (e *Assign) Loc() source.Loc    { return e.Pos }
func (e *Call) Loc() source.Loc      { return e.Pos }
func (e *FieldExpr) Loc() source.Loc { return e.Pos }
func (e *IndexExpr) Loc() source.Loc { return e.Pos }
func (e *FieldInit) Loc() source.Loc { return e.Pos }
func (e *StructLit) Loc() source.Loc { return e.Pos }
func (e *ArrayLit) Loc() source.Loc  { return e.Pos }
func (e *TupleLit) Loc() source.Loc  { return e.Pos }
func (e *Cast) Loc() source.Loc      { return e.Pos }
func (e *Closure) Loc() source.Loc   { return e.Pos }
func (e *Grouping) Loc() source.Loc  { return e.Pos }
func (e *BadExpr) Loc() source.Loc   { return e.Pos }

func (*Ident) exprNode()     {}
func (*Literal) exprNode()   {}
func (*Unary) exprNode()     {}
func (*Binary) exprNode()    {}
func (*Assign) exprNode()    {}
func (*Call) exprNode()      {}
func (*FieldExpr) exprNode() {}
func (*IndexExpr) exprNode() {}
func (*StructLit) exprNode() {}
func (*ArrayLit) exprNode()  {}
func (*TupleLit) exprNode()  {}
func (*Cast) exprNode()      {}
func (*Closure) exprNode()   {}
func (*Grouping) exprNode()  {}
func (*BadExpr) exprNode()   {}
