package ast

import (
	"sable/internal/source"
	"sable/internal/token"
)

// IdentPattern binds the matched value to a name. For enum variants it
// may destructure a payload: 'Some(x)'.
type IdentPattern struct {
	Name token.Token
	Args []Pattern
	Pos  source.Loc
}

// LiteralPattern matches an exact literal value.
type LiteralPattern struct {
	Lit *Literal
	Pos source.Loc
}

// WildcardPattern is '_', matching anything without binding.
type WildcardPattern struct {
	Pos source.Loc
}

// TuplePattern destructures a tuple: '(a, _, c)'.
type TuplePattern struct {
	Elems []Pattern
	Pos   source.Loc
}

// StructPatternField is one 'name: pattern' entry.
type StructPatternField struct {
	Name token.Token
	Pat  Pattern
	Pos  source.Loc
}

// StructPattern destructures a struct: '{ x: a, y: _ }'.
type StructPattern struct {
	Fields []*StructPatternField
	Pos    source.Loc
}

// BadPattern stands in for a pattern the parser had to give up on.
type BadPattern struct {
	Pos source.Loc
}

func (p *IdentPattern) Loc() source.Loc       { return p.Pos }
func (p *LiteralPattern) Loc() source.Loc     { return p.Pos }
func (p *WildcardPattern) Loc() source.Loc    { return p.Pos }
func (p *TuplePattern) Loc() source.Loc       { return p.Pos }
func (p *StructPatternField) Loc() source.Loc { return p.Pos }
func (p *StructPattern) Loc() source.Loc      { return p.Pos }
func (p *BadPattern) Loc() source.Loc         { return p.Pos }

func (*IdentPattern) patternNode()    {}
func (*LiteralPattern) patternNode()  {}
func (*WildcardPattern) patternNode() {}
func (*TuplePattern) patternNode()    {}
func (*StructPattern) patternNode()   {}
func (*BadPattern) patternNode()      {}
