package sema

import (
	"strings"
	"testing"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/source"
	"sable/internal/token"
)

func analyze(t *testing.T, src string) *diag.Bag {
	t.Helper()
	bag := diag.NewBag(64)
	file := source.NewVirtual("test.sb", []byte(src))
	reporter := diag.BagReporter{Bag: bag, File: file.Name}
	toks := lexer.New(file, lexer.Options{Reporter: reporter}).ScanTokens()
	m := parser.ParseModule(toks, parser.Options{Reporter: reporter})
	if bag.HasErrors() {
		t.Fatalf("source does not parse: %v", bag.Items())
	}
	Check(m, Options{Reporter: reporter})
	return bag
}

func analyzeClean(t *testing.T, src string) {
	t.Helper()
	if bag := analyze(t, src); bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func named(name string, generics ...ast.Type) ast.Type {
	return &ast.NamedType{
		Name:     token.Token{Kind: token.Ident, Text: name},
		Generics: generics,
	}
}

func TestCompatible(t *testing.T) {
	pairIntBool := named("Pair", intType(), boolType())

	cases := []struct {
		name string
		a, b ast.Type
		want bool
	}{
		{"same primitive", intType(), intType(), true},
		{"different primitive", intType(), floatType(), false},
		{"same instantiation", pairIntBool, named("Pair", intType(), boolType()), true},
		{"different argument", pairIntBool, named("Pair", intType(), intType()), false},
		{"different arity", pairIntBool, named("Pair", intType()), false},
		{"different name", pairIntBool, named("Tuple", intType(), boolType()), false},
		{"primitive vs named", intType(), named("int"), false},
		{"array elem", &ast.ArrayType{Elem: intType(), Size: -1}, &ast.ArrayType{Elem: intType(), Size: -1}, true},
		{"array size", &ast.ArrayType{Elem: intType(), Size: 3}, &ast.ArrayType{Elem: intType(), Size: -1}, false},
		{"tuple pointwise", &ast.TupleType{Elems: []ast.Type{intType(), boolType()}}, &ast.TupleType{Elems: []ast.Type{intType(), boolType()}}, true},
		{"func return", &ast.FuncType{Params: []ast.Type{intType()}, Return: boolType()}, &ast.FuncType{Params: []ast.Type{intType()}, Return: intType()}, false},
		{"unknown is open", nil, intType(), true},
	}
	for _, tc := range cases {
		if got := Compatible(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: Compatible(%s, %s) = %v, want %v",
				tc.name, ast.TypeString(tc.a), ast.TypeString(tc.b), got, tc.want)
		}
	}
}

func TestCleanProgram(t *testing.T) {
	analyzeClean(t, `module demo;
struct Point { x: int, y: int }

func dot(a: Point, b: Point) -> int {
	return a.x * b.x + a.y * b.y;
}

func main() {
	let p = Point { x: 1, y: 2 };
	let q = Point { x: 3, y: 4 };
	let d: int = dot(p, q);
	if (d > 0) {
		let msg = "positive";
	}
}
`)
}

func TestUndefinedIdentifier(t *testing.T) {
	bag := analyze(t, `module demo;
func main() { let x = missing; }
`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SemaUndefinedIdent {
		t.Fatalf("diagnostics = %v, want one undefined identifier", bag.Items())
	}
}

func TestLetTypeMismatch(t *testing.T) {
	bag := analyze(t, `module demo;
func main() { let x: int = "oops"; }
`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SemaTypeMismatch {
		t.Fatalf("diagnostics = %v, want one type mismatch", bag.Items())
	}
}

func TestReturnMismatch(t *testing.T) {
	bag := analyze(t, `module demo;
func f() -> int { return "no"; }
`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SemaReturnMismatch {
		t.Fatalf("diagnostics = %v, want one return mismatch", bag.Items())
	}
}

func TestCallChecks(t *testing.T) {
	bag := analyze(t, `module demo;
func add(a: int, b: int) -> int { return a + b; }
func main() {
	let n = 1;
	add(1);
	add(1, "two");
	n(3);
}
`)
	codes := map[diag.Code]int{}
	for _, d := range bag.Items() {
		codes[d.Code]++
	}
	if codes[diag.SemaArityMismatch] != 1 {
		t.Errorf("arity mismatches = %d, want 1", codes[diag.SemaArityMismatch])
	}
	if codes[diag.SemaTypeMismatch] != 1 {
		t.Errorf("argument mismatches = %d, want 1", codes[diag.SemaTypeMismatch])
	}
	if codes[diag.SemaNotCallable] != 1 {
		t.Errorf("not-callable = %d, want 1", codes[diag.SemaNotCallable])
	}
}

func TestNumericPromotion(t *testing.T) {
	analyzeClean(t, `module demo;
func main() {
	let a: float = 1 + 2.5;
	let b: int = 3 * 4;
	let c: bool = true && false;
}
`)

	bag := analyze(t, `module demo;
func main() {
	let x = 1 + "one";
	let y = "a" + "b";
	let z = 1 && true;
}
`)
	if bag.Len() != 3 {
		t.Fatalf("got %d diagnostics, want 3: %v", bag.Len(), bag.Items())
	}
	for _, d := range bag.Items() {
		if d.Code != diag.SemaInvalidOperands {
			t.Fatalf("diagnostics = %v, want only invalid-operands", bag.Items())
		}
	}
}

func TestOperatorsFollowPromotionTable(t *testing.T) {
	analyzeClean(t, `module demo;
func main() {
	let a: int = 1 < 2;
	let b: int = 1 == 2;
	let c: int = 1 & 2;
	let d: int = 1 ?? 2;
	let e: float = 1 < 2.5;
}
`)
}

func TestBareReturnIsUnchecked(t *testing.T) {
	analyzeClean(t, `module demo;
func f() -> int { return; }
`)
}

func TestScopingAndShadowing(t *testing.T) {
	analyzeClean(t, `module demo;
func main() {
	let x = 1;
	{
		let x = "inner";
		let s: string = x;
	}
	let n: int = x;
}
`)

	bag := analyze(t, `module demo;
func main() {
	{
		let hidden = 1;
	}
	let y = hidden;
}
`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SemaUndefinedIdent {
		t.Fatalf("diagnostics = %v, want block-local name to be invisible", bag.Items())
	}
}

func TestErrorsAccumulateInSourceOrder(t *testing.T) {
	bag := analyze(t, `module demo;
func main() {
	let a = one;
	let b = two;
	let c = three;
}
`)
	if bag.Len() != 3 {
		t.Fatalf("got %d diagnostics, want 3 independent ones: %v", bag.Len(), bag.Items())
	}
	wantOrder := []string{"one", "two", "three"}
	for i, d := range bag.Items() {
		if !strings.Contains(d.Message, wantOrder[i]) {
			t.Errorf("diagnostic %d = %q, want mention of %q", i, d.Message, wantOrder[i])
		}
	}
}

func TestDuplicateDeclaration(t *testing.T) {
	bag := analyze(t, `module demo;
func f() {}
func f() {}
`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SemaDuplicateDecl {
		t.Fatalf("diagnostics = %v, want one duplicate declaration", bag.Items())
	}
}

func TestForwardReference(t *testing.T) {
	analyzeClean(t, `module demo;
func first() -> int { return second(); }
func second() -> int { return 2; }
`)
}

func TestStructLiteralChecks(t *testing.T) {
	bag := analyze(t, `module demo;
struct Point { x: int, y: int }
func main() {
	let bad = Point { x: "one", y: 2 };
	let unknown = Point { z: 1 };
	let ghost = Ghost { a: 1 };
}
`)
	codes := map[diag.Code]int{}
	for _, d := range bag.Items() {
		codes[d.Code]++
	}
	if codes[diag.SemaTypeMismatch] != 1 {
		t.Errorf("field mismatches = %d, want 1", codes[diag.SemaTypeMismatch])
	}
	if codes[diag.SemaUndefinedIdent] != 2 {
		t.Errorf("undefined reports = %d, want 2 (field and struct)", codes[diag.SemaUndefinedIdent])
	}
}

func TestConditionTypeIsUnconstrained(t *testing.T) {
	analyzeClean(t, `module demo;
func main() {
	if (1) { return; }
	while (0) { return; }
}
`)

	bag := analyze(t, `module demo;
func main() { if (missing) { return; } }
`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SemaUndefinedIdent {
		t.Fatalf("diagnostics = %v, want the condition to still be inferred", bag.Items())
	}
}

func TestTraitMethodBodiesAreChecked(t *testing.T) {
	bag := analyze(t, `module demo;
trait Show {
	show(value: int) -> int { return missing; }
}
`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SemaUndefinedIdent {
		t.Fatalf("diagnostics = %v, want the undefined name inside the trait body", bag.Items())
	}
}

func TestMatchBindsSubject(t *testing.T) {
	analyzeClean(t, `module demo;
func main() {
	let v = 3;
	match (v) {
		1 -> { return; },
		other -> { let n: int = other; }
	}
}
`)
}

func TestClosureChecksAgainstOwnReturn(t *testing.T) {
	bag := analyze(t, `module demo;
func outer() -> int {
	let f = |x: int| -> string { return x; };
	return 1;
}
`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SemaReturnMismatch {
		t.Fatalf("diagnostics = %v, want the closure's own return mismatch", bag.Items())
	}
}
