// Package ast defines the syntax tree produced by the parser. Node families
// are closed interface sums: declarations, statements, expressions, types
// and patterns, each with an unexported marker method.
package ast

import "sable/internal/source"

// Node is the common interface of every syntax tree node.
type Node interface {
	Loc() source.Loc
}

// Decl is a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression.
type Expr interface {
	Node
	exprNode()
}

// Type is a type expression.
type Type interface {
	Node
	typeNode()
}

// Pattern is a match-case pattern.
type Pattern interface {
	Node
	patternNode()
}

// AccessModifier is the visibility attached to a declaration.
type AccessModifier uint8

const (
	// AccessDefault means no modifier was written.
	AccessDefault AccessModifier = iota
	AccessPub
	AccessPriv
	AccessProtected
)

func (a AccessModifier) String() string {
	switch a {
	case AccessPub:
		return "pub"
	case AccessPriv:
		return "priv"
	case AccessProtected:
		return "protected"
	default:
		return ""
	}
}
