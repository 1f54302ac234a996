package sema

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/symbols"
	"sable/internal/token"
)

// Checker is the body-level pass. It walks statements in source order,
// opening a scope per function and per block, and infers the type of
// every expression it meets. The expected return type is saved and
// restored around each function so nested closures check against their
// own signature.
type Checker struct {
	table *symbols.MultiTable
	opts  Options

	expectedReturn ast.Type
}

// NewChecker returns a checker over an already populated table.
func NewChecker(table *symbols.MultiTable, opts Options) *Checker {
	return &Checker{table: table, opts: opts}
}

// CheckModule checks every declaration of m.
func (c *Checker) CheckModule(m *ast.Module) {
	for _, d := range m.Decls {
		switch d := d.(type) {
		case *ast.Function:
			c.checkFunction(d)
		case *ast.Trait:
			for _, method := range d.Methods {
				c.checkFunction(method)
			}
		case *ast.Extend:
			for _, method := range d.Methods {
				c.checkFunction(method)
			}
		case *ast.StmtDecl:
			c.checkStmt(d.Stmt)
		}
	}
}

func (c *Checker) checkFunction(f *ast.Function) {
	if f.Body == nil {
		return
	}
	saved := c.expectedReturn
	c.expectedReturn = f.Return
	c.table.EnterScope()
	for _, p := range f.Params {
		c.table.Values.Insert(&symbols.Symbol{
			Name: p.Name.Text,
			Kind: symbols.SymParameter,
			Type: p.Ty,
			Loc:  locOf(p.Name),
		})
	}
	c.checkStmt(f.Body)
	c.table.ExitScope()
	c.expectedReturn = saved
}

func (c *Checker) checkStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Let:
		c.checkLet(s)
	case *ast.ExprStmt:
		c.inferExpr(s.X)
	case *ast.Return:
		c.checkReturn(s)
	case *ast.Block:
		c.table.EnterScope()
		for _, stmt := range s.Stmts {
			c.checkStmt(stmt)
		}
		c.table.ExitScope()
	case *ast.If:
		c.inferExpr(s.Cond)
		c.checkStmt(s.Then)
		if s.Else != nil {
			c.checkStmt(s.Else)
		}
	case *ast.While:
		c.inferExpr(s.Cond)
		c.checkStmt(s.Body)
	case *ast.For:
		iter := c.inferExpr(s.Iter)
		var elem ast.Type
		if arr, ok := iter.(*ast.ArrayType); ok {
			elem = arr.Elem
		}
		c.table.EnterScope()
		c.table.Values.Insert(&symbols.Symbol{
			Name: s.Var.Text,
			Kind: symbols.SymVariable,
			Type: elem,
			Loc:  locOf(s.Var),
		})
		c.checkStmt(s.Body)
		c.table.ExitScope()
	case *ast.Match:
		subject := c.inferExpr(s.Subject)
		for _, cs := range s.Cases {
			c.table.EnterScope()
			c.bindPattern(cs.Pat, subject)
			c.checkStmt(cs.Body)
			c.table.ExitScope()
		}
	}
}

func (c *Checker) checkLet(s *ast.Let) {
	var inferred ast.Type
	if s.Value != nil {
		inferred = c.inferExpr(s.Value)
	}
	declared := s.Ty
	if declared != nil && inferred != nil && !Compatible(declared, inferred) {
		c.report(diag.SemaTypeMismatch, s.Value.Loc(),
			"Cannot initialize '"+s.Name.Text+"' of type "+ast.TypeString(declared)+
				" with a value of type "+ast.TypeString(inferred))
	}
	ty := declared
	if ty == nil {
		ty = inferred
	}
	c.table.Values.Insert(&symbols.Symbol{
		Name: s.Name.Text,
		Kind: symbols.SymVariable,
		Type: ty,
		Loc:  locOf(s.Name),
	})
}

// checkReturn checks a returned value against the enclosing signature.
// A bare return and a value whose type is unknown both pass without
// comment; the mismatch only fires when both sides are known.
func (c *Checker) checkReturn(s *ast.Return) {
	if s.Value == nil {
		return
	}
	got := c.inferExpr(s.Value)
	if got != nil && c.expectedReturn != nil && !Compatible(c.expectedReturn, got) {
		c.report(diag.SemaReturnMismatch, s.Value.Loc(),
			"Cannot return a value of type "+ast.TypeString(got)+
				" from a function declared to return "+ast.TypeString(c.expectedReturn))
	}
}

// bindPattern introduces the names a pattern captures. A bare
// identifier binds the whole subject; destructured positions bind with
// an open type since payload layouts are not instantiated here.
func (c *Checker) bindPattern(p ast.Pattern, subject ast.Type) {
	switch p := p.(type) {
	case *ast.IdentPattern:
		if len(p.Args) == 0 {
			c.table.Values.Insert(&symbols.Symbol{
				Name: p.Name.Text,
				Kind: symbols.SymVariable,
				Type: subject,
				Loc:  locOf(p.Name),
			})
			return
		}
		for _, a := range p.Args {
			c.bindPattern(a, nil)
		}
	case *ast.TuplePattern:
		tup, _ := subject.(*ast.TupleType)
		for i, el := range p.Elems {
			var elTy ast.Type
			if tup != nil && i < len(tup.Elems) {
				elTy = tup.Elems[i]
			}
			c.bindPattern(el, elTy)
		}
	case *ast.StructPattern:
		for _, f := range p.Fields {
			c.bindPattern(f.Pat, c.fieldTypeOf(subject, f.Name.Text))
		}
	}
}

// fieldTypeOf resolves "Struct.field" against the field namespace when
// the subject is a named struct type.
func (c *Checker) fieldTypeOf(subject ast.Type, field string) ast.Type {
	named, ok := subject.(*ast.NamedType)
	if !ok {
		return nil
	}
	sym, ok := c.table.StructFields.Lookup(named.Name.Text + "." + field)
	if !ok {
		return nil
	}
	return sym.Type
}

func (c *Checker) report(code diag.Code, loc source.Loc, msg string) {
	if c.opts.Reporter != nil {
		diag.ReportError(c.opts.Reporter, code, loc, msg).Emit()
	}
}

func primType(name string) *ast.PrimitiveType {
	return &ast.PrimitiveType{Name: token.Token{Kind: token.Ident, Text: name}}
}

func intType() ast.Type { return primType("int") }

func floatType() ast.Type { return primType("float") }

func boolType() ast.Type { return primType("bool") }

func stringType() ast.Type { return primType("string") }

func charType() ast.Type { return primType("char") }
