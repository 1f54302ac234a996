package symbols

import (
	"testing"

	"sable/internal/ast"
	"sable/internal/token"
)

func intType() ast.Type {
	return &ast.PrimitiveType{Name: token.Token{Kind: token.Ident, Text: "int"}}
}

func stringType() ast.Type {
	return &ast.PrimitiveType{Name: token.Token{Kind: token.Ident, Text: "string"}}
}

func TestLookupWalksOutward(t *testing.T) {
	tbl := NewTable()
	tbl.Insert(&Symbol{Name: "x", Kind: SymVariable, Type: intType()})

	tbl.EnterScope()
	if sym, ok := tbl.Lookup("x"); !ok || sym.Kind != SymVariable {
		t.Fatal("inner scope must see outer binding")
	}
	if _, ok := tbl.LookupLocal("x"); ok {
		t.Error("LookupLocal must not see outer bindings")
	}
	tbl.ExitScope()
}

func TestShadowing(t *testing.T) {
	tbl := NewTable()
	tbl.Insert(&Symbol{Name: "x", Kind: SymVariable, Type: intType()})

	tbl.EnterScope()
	tbl.Insert(&Symbol{Name: "x", Kind: SymVariable, Type: stringType()})
	sym, ok := tbl.Lookup("x")
	if !ok {
		t.Fatal("shadowed name must still resolve")
	}
	if ast.TypeString(sym.Type) != "string" {
		t.Errorf("inner binding type = %s, want string", ast.TypeString(sym.Type))
	}
	tbl.ExitScope()

	sym, _ = tbl.Lookup("x")
	if ast.TypeString(sym.Type) != "int" {
		t.Errorf("outer binding type = %s, want int after exit", ast.TypeString(sym.Type))
	}
}

func TestSameScopeRedeclarationWins(t *testing.T) {
	tbl := NewTable()
	tbl.Insert(&Symbol{Name: "x", Kind: SymVariable, Type: intType()})
	tbl.Insert(&Symbol{Name: "x", Kind: SymVariable, Type: stringType()})
	sym, _ := tbl.Lookup("x")
	if ast.TypeString(sym.Type) != "string" {
		t.Error("later insert in the same scope must replace the earlier one")
	}
}

func TestBaseScopeSurvivesExit(t *testing.T) {
	tbl := NewTable()
	tbl.ExitScope()
	tbl.ExitScope()
	if tbl.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", tbl.Depth())
	}
	tbl.Insert(&Symbol{Name: "f", Kind: SymFunction})
	if _, ok := tbl.Lookup("f"); !ok {
		t.Error("base scope must accept inserts after spurious exits")
	}
}

func TestNamespacesAreIndependent(t *testing.T) {
	m := NewMultiTable()
	m.Types.Insert(&Symbol{Name: "Point", Kind: SymStruct})
	m.Values.Insert(&Symbol{Name: "Point", Kind: SymFunction})
	m.StructFields.Insert(&Symbol{Name: "Point.x", Kind: SymField, Type: intType()})
	m.EnumVariants.Insert(&Symbol{Name: "Color.Red", Kind: SymVariant})

	if !m.HasType("Point") || !m.HasValue("Point") {
		t.Error("the same name must be insertable in separate namespaces")
	}
	if !m.HasField("Point.x") || m.HasField("Point.y") {
		t.Error("field lookup must be keyed per struct member")
	}
	if !m.HasVariant("Color.Red") || m.HasVariant("Red") {
		t.Error("variant lookup must use the qualified key")
	}

	sym, _ := m.Types.Lookup("Point")
	if sym.Kind != SymStruct {
		t.Errorf("type namespace kind = %v, want struct", sym.Kind)
	}
}

func TestMultiTableScopesMoveTogether(t *testing.T) {
	m := NewMultiTable()
	m.EnterScope()
	m.Values.Insert(&Symbol{Name: "tmp", Kind: SymVariable})
	m.ExitScope()
	if m.HasValue("tmp") {
		t.Error("exiting a scope must drop bindings in every namespace")
	}
	if m.Values.Depth() != 1 || m.Types.Depth() != 1 {
		t.Error("namespaces must share scope depth")
	}
}
