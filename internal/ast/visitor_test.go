package ast

import (
	"testing"

	"sable/internal/token"
)

func ident(name string) *Ident {
	return &Ident{Name: token.Token{Kind: token.Ident, Text: name}}
}

type exprCollector struct {
	Base
	names []string
}

func (c *exprCollector) VisitExpr(e Expr) error {
	if id, ok := e.(*Ident); ok {
		c.names = append(c.names, id.Name.Text)
	}
	return WalkExpr(c.Self, e)
}

func TestWalkCollectsIdentifiers(t *testing.T) {
	// func f(a: int) { let x = a + g(b); }
	m := &Module{
		Decls: []Decl{
			&Function{
				Name:   token.Token{Kind: token.Ident, Text: "f"},
				Params: []*Param{{Name: token.Token{Kind: token.Ident, Text: "a"}}},
				Body: &Block{Stmts: []Stmt{
					&Let{
						Name: token.Token{Kind: token.Ident, Text: "x"},
						Value: &Binary{
							Left: ident("a"),
							Op:   token.Token{Kind: token.Plus, Text: "+"},
							Right: &Call{
								Callee: ident("g"),
								Args:   []Expr{ident("b")},
							},
						},
					},
				}},
			},
		},
	}

	c := &exprCollector{}
	c.Self = c
	if err := c.VisitModule(m); err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "g", "b"}
	if len(c.names) != len(want) {
		t.Fatalf("collected %v, want %v", c.names, want)
	}
	for i := range want {
		if c.names[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, c.names[i], want[i])
		}
	}
}

type pruner struct {
	Base
	visited int
}

func (p *pruner) VisitStmt(s Stmt) error {
	p.visited++
	// do not walk: children must stay unvisited
	return nil
}

func TestVisitorPrunesWithoutWalk(t *testing.T) {
	block := &Block{Stmts: []Stmt{
		&ExprStmt{X: ident("a")},
		&ExprStmt{X: ident("b")},
	}}
	p := &pruner{}
	p.Self = p
	if err := p.VisitStmt(block); err != nil {
		t.Fatal(err)
	}
	if p.visited != 1 {
		t.Errorf("visited %d statements, want 1 (descent pruned)", p.visited)
	}
}

func TestTypeString(t *testing.T) {
	intTok := token.Token{Kind: token.Ident, Text: "int"}
	boolTok := token.Token{Kind: token.Ident, Text: "bool"}
	pair := &NamedType{
		Name: token.Token{Kind: token.Ident, Text: "Pair"},
		Generics: []Type{
			&PrimitiveType{Name: intTok},
			&PrimitiveType{Name: boolTok},
		},
	}
	if got := TypeString(pair); got != "Pair<int, bool>" {
		t.Errorf("TypeString = %q, want %q", got, "Pair<int, bool>")
	}
	arr := &ArrayType{Elem: &ArrayType{Elem: &TypeVar{Name: token.Token{Text: "T"}}, Size: -1}, Size: -1}
	if got := TypeString(arr); got != "[[T]]" {
		t.Errorf("TypeString = %q, want %q", got, "[[T]]")
	}
	fn := &FuncType{
		Params: []Type{&PrimitiveType{Name: intTok}},
		Return: &PrimitiveType{Name: boolTok},
	}
	if got := TypeString(fn); got != "func(int) -> bool" {
		t.Errorf("TypeString = %q, want %q", got, "func(int) -> bool")
	}
}
