package ast

import (
	"sable/internal/source"
	"sable/internal/token"
)

// Let is 'let name: type = value;'. Ty and Value are both optional.
type Let struct {
	Name  token.Token
	Ty    Type
	Value Expr
	Pos   source.Loc
}

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	X   Expr
	Pos source.Loc
}

// Return is 'return expr;'. Value may be nil.
type Return struct {
	Value Expr
	Pos   source.Loc
}

type Break struct {
	Pos source.Loc
}

type Continue struct {
	Pos source.Loc
}

// Block is '{ stmts }'.
type Block struct {
	Stmts []Stmt
	Pos   source.Loc
}

// If is 'if cond body else body'. Else may be nil, or another If for
// else-if chains.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
	Pos  source.Loc
}

type While struct {
	Cond Expr
	Body Stmt
	Pos  source.Loc
}

// For is 'for var in iterable body'.
type For struct {
	Var  token.Token
	Iter Expr
	Body Stmt
	Pos  source.Loc
}

// Match is 'match subject { case pattern: body ... }'.
type Match struct {
	Subject Expr
	Cases   []*Case
	Pos     source.Loc
}

// Case is one match arm.
type Case struct {
	Pat  Pattern
	Body Stmt
	Pos  source.Loc
}

// BadStmt stands in for a statement the parser had to give up on.
type BadStmt struct {
	Pos source.Loc
}

func (s *Let) Loc() source.Loc      { return s.Pos }
func (s *ExprStmt) Loc() source.Loc { return s.Pos }
func (s *Return) Loc() source.Loc   { return s.Pos }
func (s *Break) Loc() source.Loc    { return s.Pos }
func (s *Continue) Loc() source.Loc { return s.Pos }
func (s *Block) Loc() source.Loc    { return s.Pos }
func (s *If) Loc() source.Loc       { return s.Pos }
func (s *While) Loc() source.Loc    { return s.Pos }
func (s *For) Loc() source.Loc      { return s.Pos }
func (s *Match) Loc() source.Loc    { return s.Pos }
func (s *Case) Loc() source.Loc     { return s.Pos }
func (s *BadStmt) Loc() source.Loc  { return s.Pos }

func (*Let) stmtNode()      {}
func (*ExprStmt) stmtNode() {}
func (*Return) stmtNode()   {}
func (*Break) stmtNode()    {}
func (*Continue) stmtNode() {}
func (*Block) stmtNode()    {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*For) stmtNode()      {}
func (*Match) stmtNode()    {}
func (*BadStmt) stmtNode()  {}
