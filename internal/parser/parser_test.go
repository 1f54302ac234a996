package parser

import (
	"testing"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/source"
	"sable/internal/token"
)

func parse(t *testing.T, src string) (*ast.Module, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(64)
	file := source.NewVirtual("test.sb", []byte(src))
	reporter := diag.BagReporter{Bag: bag, File: file.Name}
	toks := lexer.New(file, lexer.Options{Reporter: reporter}).ScanTokens()
	m := ParseModule(toks, Options{Reporter: reporter})
	return m, bag
}

func parseClean(t *testing.T, src string) *ast.Module {
	t.Helper()
	m, bag := parse(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	return m
}

// exprFrom digs the expression out of 'module m; <expr>;'.
func exprFrom(t *testing.T, src string) ast.Expr {
	t.Helper()
	m := parseClean(t, "module m; "+src+";")
	if len(m.Decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(m.Decls))
	}
	sd, ok := m.Decls[0].(*ast.StmtDecl)
	if !ok {
		t.Fatalf("declaration is %T, want StmtDecl", m.Decls[0])
	}
	es, ok := sd.Stmt.(*ast.ExprStmt)
	if !ok {
		t.Fatalf("statement is %T, want ExprStmt", sd.Stmt)
	}
	return es.X
}

func TestModuleHeader(t *testing.T) {
	m := parseClean(t, "module demo; func main() {}")
	if m.Name.Text != "demo" {
		t.Errorf("module name = %q, want %q", m.Name.Text, "demo")
	}
	if len(m.Decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(m.Decls))
	}
	fn, ok := m.Decls[0].(*ast.Function)
	if !ok || fn.Name.Text != "main" {
		t.Errorf("declaration = %#v, want function main", m.Decls[0])
	}

	_, bag := parse(t, "func main() {}")
	if bag.Len() == 0 {
		t.Error("missing module header must be diagnosed")
	}
}

func TestPrecedenceMultiplicationBindsTighter(t *testing.T) {
	root, ok := exprFrom(t, "1 + 2 * 3").(*ast.Binary)
	if !ok || root.Op.Kind != token.Plus {
		t.Fatalf("root is not '+': %#v", root)
	}
	right, ok := root.Right.(*ast.Binary)
	if !ok || right.Op.Kind != token.Star {
		t.Fatalf("right child is not '2 * 3': %#v", root.Right)
	}
	if lit, ok := root.Left.(*ast.Literal); !ok || lit.Int != 1 {
		t.Errorf("left child = %#v, want literal 1", root.Left)
	}
}

func TestExponentIsLeftAssociative(t *testing.T) {
	root, ok := exprFrom(t, "2 ** 3 ** 2").(*ast.Binary)
	if !ok || root.Op.Kind != token.StarStar {
		t.Fatalf("root is not '**': %#v", root)
	}
	// (2 ** 3) ** 2
	left, ok := root.Left.(*ast.Binary)
	if !ok || left.Op.Kind != token.StarStar {
		t.Fatalf("left child is not '2 ** 3': %#v", root.Left)
	}
	if lit, ok := root.Right.(*ast.Literal); !ok || lit.Int != 2 {
		t.Errorf("right child = %#v, want literal 2", root.Right)
	}
}

func TestComparisonStillParses(t *testing.T) {
	root, ok := exprFrom(t, "a < b").(*ast.Binary)
	if !ok || root.Op.Kind != token.Lt {
		t.Fatalf("'a < b' did not parse as comparison: %#v", root)
	}
	chain, ok := exprFrom(t, "a < b == c > d").(*ast.Binary)
	if !ok || chain.Op.Kind != token.EqEq {
		t.Fatalf("equality must bind looser than comparison: %#v", chain)
	}
}

func TestGenericCallArguments(t *testing.T) {
	call, ok := exprFrom(t, "max<int>(a, b)").(*ast.Call)
	if !ok {
		t.Fatal("'max<int>(a, b)' did not parse as a call")
	}
	if len(call.GenericArgs) != 1 {
		t.Fatalf("got %d generic args, want 1", len(call.GenericArgs))
	}
	if prim, ok := call.GenericArgs[0].(*ast.PrimitiveType); !ok || prim.Name.Text != "int" {
		t.Errorf("generic arg = %#v, want int", call.GenericArgs[0])
	}
	if len(call.Args) != 2 {
		t.Errorf("got %d args, want 2", len(call.Args))
	}
}

func TestPostfixChain(t *testing.T) {
	expr := exprFrom(t, "a.b(x)[0]")
	idx, ok := expr.(*ast.IndexExpr)
	if !ok {
		t.Fatalf("outermost is %T, want IndexExpr", expr)
	}
	call, ok := idx.Base.(*ast.Call)
	if !ok {
		t.Fatalf("index base is %T, want Call", idx.Base)
	}
	field, ok := call.Callee.(*ast.FieldExpr)
	if !ok || field.Name.Text != "b" {
		t.Fatalf("callee = %#v, want field access .b", call.Callee)
	}
}

func TestStructLiteralDisambiguation(t *testing.T) {
	lit, ok := exprFrom(t, "Foo { x: 1 }").(*ast.StructLit)
	if !ok {
		t.Fatal("'Foo { x: 1 }' did not parse as a struct literal")
	}
	if len(lit.Fields) != 1 || lit.Fields[0].Name.Text != "x" {
		t.Fatalf("fields = %#v, want one field x", lit.Fields)
	}

	// shorthand: '{ x }' means '{ x: x }'
	short, ok := exprFrom(t, "Foo{ x }").(*ast.StructLit)
	if !ok {
		t.Fatal("'Foo{ x }' did not parse as a struct literal")
	}
	val, ok := short.Fields[0].Value.(*ast.Ident)
	if !ok || val.Name.Text != "x" {
		t.Errorf("shorthand value = %#v, want identifier x", short.Fields[0].Value)
	}
}

func TestAssignmentRightAssociative(t *testing.T) {
	root, ok := exprFrom(t, "a = b = c").(*ast.Assign)
	if !ok {
		t.Fatal("'a = b = c' did not parse as assignment")
	}
	if _, ok := root.Value.(*ast.Assign); !ok {
		t.Errorf("value = %#v, want nested assignment", root.Value)
	}
	compound, ok := exprFrom(t, "x += 1").(*ast.Assign)
	if !ok || compound.Op.Kind != token.PlusAssign {
		t.Errorf("'x += 1' = %#v, want compound assignment", compound)
	}
}

func TestErrorRecovery(t *testing.T) {
	src := `module demo;
let = ;
func a() {}
struct B { x: int }
func c() -> int { return 1; }
`
	m, bag := parse(t, src)
	if got := bag.Len(); got != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1: %v", got, bag.Items())
	}
	if len(m.Decls) != 3 {
		t.Fatalf("got %d declarations, want the 3 well-formed ones", len(m.Decls))
	}
	names := []string{"a", "B", "c"}
	for i, d := range m.Decls {
		var got string
		switch d := d.(type) {
		case *ast.Function:
			got = d.Name.Text
		case *ast.Struct:
			got = d.Name.Text
		}
		if got != names[i] {
			t.Errorf("declaration %d = %q, want %q", i, got, names[i])
		}
	}
}

func TestDeclarationGenerics(t *testing.T) {
	m := parseClean(t, "module demo; struct Pair<A, B> { first: A, second: B }")
	st := m.Decls[0].(*ast.Struct)
	if len(st.Generics) != 2 {
		t.Fatalf("got %d generics, want 2", len(st.Generics))
	}
	for i, want := range []string{"A", "B"} {
		tv, ok := st.Generics[i].(*ast.TypeVar)
		if !ok || tv.Name.Text != want {
			t.Errorf("generic %d = %#v, want type var %s", i, st.Generics[i], want)
		}
	}
	if len(st.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(st.Fields))
	}
	if nt, ok := st.Fields[0].Ty.(*ast.NamedType); !ok || nt.Name.Text != "A" {
		t.Errorf("field type = %#v, want named type A", st.Fields[0].Ty)
	}

	// declaration-site generics reject nested generic expressions
	_, bag := parse(t, "module demo; struct Bad<Pair<T>> { x: int }")
	if !bag.HasErrors() {
		t.Error("nested generic in a declaration list must be diagnosed")
	}
}

func TestTypeGrammar(t *testing.T) {
	m := parseClean(t, `module demo;
func f(xs: [[int]], pair: (int, bool), cb: (int) -> bool) -> Pair<int, bool> { return make(); }
`)
	fn := m.Decls[0].(*ast.Function)
	outer, ok := fn.Params[0].Ty.(*ast.ArrayType)
	if !ok {
		t.Fatalf("xs type = %#v, want array", fn.Params[0].Ty)
	}
	if _, ok := outer.Elem.(*ast.ArrayType); !ok {
		t.Errorf("xs element = %#v, want nested array", outer.Elem)
	}
	if tt, ok := fn.Params[1].Ty.(*ast.TupleType); !ok || len(tt.Elems) != 2 {
		t.Errorf("pair type = %#v, want 2-tuple", fn.Params[1].Ty)
	}
	ft, ok := fn.Params[2].Ty.(*ast.FuncType)
	if !ok || len(ft.Params) != 1 {
		t.Fatalf("cb type = %#v, want function type", fn.Params[2].Ty)
	}
	ret, ok := fn.Return.(*ast.NamedType)
	if !ok || ret.Name.Text != "Pair" || len(ret.Generics) != 2 {
		t.Errorf("return type = %#v, want Pair<int, bool>", fn.Return)
	}
}

func TestMatchPatterns(t *testing.T) {
	m := parseClean(t, `module demo;
func f(x: int) {
	match (x) {
		1 -> { return; },
		(a, _) -> { return; },
		{ x: 1 } -> { return; },
		other -> { return; }
	}
}
`)
	fn := m.Decls[0].(*ast.Function)
	match := fn.Body.Stmts[0].(*ast.Match)
	if len(match.Cases) != 4 {
		t.Fatalf("got %d cases, want 4", len(match.Cases))
	}
	if _, ok := match.Cases[0].Pat.(*ast.LiteralPattern); !ok {
		t.Errorf("case 0 = %#v, want literal pattern", match.Cases[0].Pat)
	}
	tup, ok := match.Cases[1].Pat.(*ast.TuplePattern)
	if !ok || len(tup.Elems) != 2 {
		t.Fatalf("case 1 = %#v, want 2-element tuple pattern", match.Cases[1].Pat)
	}
	if _, ok := tup.Elems[1].(*ast.WildcardPattern); !ok {
		t.Errorf("tuple element 1 = %#v, want wildcard", tup.Elems[1])
	}
	if _, ok := match.Cases[2].Pat.(*ast.StructPattern); !ok {
		t.Errorf("case 2 = %#v, want struct pattern", match.Cases[2].Pat)
	}
	if _, ok := match.Cases[3].Pat.(*ast.IdentPattern); !ok {
		t.Errorf("case 3 = %#v, want identifier pattern", match.Cases[3].Pat)
	}
}

func TestExtendForms(t *testing.T) {
	m := parseClean(t, `module demo;
extend Point {
	func norm(self: Point) -> float { return 0.0; }
}
extend Show<T> for Box<T> {
	func show(self: Box<T>) -> string { return "box"; }
}
`)
	plain := m.Decls[0].(*ast.Extend)
	if plain.Name.Text != "Point" || plain.TraitName != nil {
		t.Errorf("plain extend = %#v, want target Point with no trait", plain)
	}
	impl := m.Decls[1].(*ast.Extend)
	if impl.Name.Text != "Box" {
		t.Errorf("impl target = %q, want Box", impl.Name.Text)
	}
	if impl.TraitName == nil || impl.TraitName.Text != "Show" {
		t.Errorf("impl trait = %#v, want Show", impl.TraitName)
	}
	if !impl.Methods[0].Method {
		t.Error("extend methods must carry the method flag")
	}
}

func TestClosureAndMisc(t *testing.T) {
	m := parseClean(t, `module demo;
import "std/io" as io;
let f = |a: int, b: int| -> int { return a + b; };
extern func now() -> int;
`)
	if _, ok := m.Decls[0].(*ast.Import); !ok {
		t.Errorf("declaration 0 = %T, want import", m.Decls[0])
	}
	let := m.Decls[1].(*ast.StmtDecl).Stmt.(*ast.Let)
	cl, ok := let.Value.(*ast.Closure)
	if !ok {
		t.Fatalf("let value = %#v, want closure", let.Value)
	}
	if len(cl.Params) != 2 {
		t.Errorf("closure has %d params, want 2", len(cl.Params))
	}
	ext := m.Decls[2].(*ast.Function)
	if !ext.Extern || ext.Body != nil {
		t.Errorf("extern function = %#v, want body-less extern", ext)
	}
}

func TestModifierWithoutDeclaration(t *testing.T) {
	_, bag := parse(t, "module demo; pub let x = 1;")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynMisplacedModifier {
			found = true
		}
	}
	if !found {
		t.Error("'pub let' at top level must report a misplaced modifier")
	}
}
