package ast

// Visitor is the double-dispatch protocol over the syntax tree. Each
// method decides whether to keep descending by calling the matching Walk
// function; returning without walking prunes that subtree.
type Visitor interface {
	VisitModule(*Module) error
	VisitDecl(Decl) error
	VisitFunction(*Function) error
	VisitStruct(*Struct) error
	VisitEnum(*Enum) error
	VisitTrait(*Trait) error
	VisitExtend(*Extend) error
	VisitImport(*Import) error
	VisitStmt(Stmt) error
	VisitExpr(Expr) error
	VisitType(Type) error
	VisitPattern(Pattern) error
}

// Base supplies the default structural recursion for every Visitor
// method. Embed it and set Self to the outermost visitor so that
// overridden methods keep receiving the dispatch during default walks.
type Base struct {
	Self Visitor
}

func (b *Base) VisitModule(m *Module) error     { return WalkModule(b.Self, m) }
func (b *Base) VisitDecl(d Decl) error          { return WalkDecl(b.Self, d) }
func (b *Base) VisitFunction(f *Function) error { return WalkFunction(b.Self, f) }
func (b *Base) VisitStruct(s *Struct) error     { return WalkStruct(b.Self, s) }
func (b *Base) VisitEnum(e *Enum) error         { return WalkEnum(b.Self, e) }
func (b *Base) VisitTrait(t *Trait) error       { return WalkTrait(b.Self, t) }
func (b *Base) VisitExtend(e *Extend) error     { return WalkExtend(b.Self, e) }
func (b *Base) VisitImport(*Import) error       { return nil }
func (b *Base) VisitStmt(s Stmt) error          { return WalkStmt(b.Self, s) }
func (b *Base) VisitExpr(e Expr) error          { return WalkExpr(b.Self, e) }
func (b *Base) VisitType(Type) error            { return nil }
func (b *Base) VisitPattern(p Pattern) error    { return WalkPattern(b.Self, p) }

// WalkModule visits every declaration of m.
func WalkModule(v Visitor, m *Module) error {
	for _, d := range m.Decls {
		if err := v.VisitDecl(d); err != nil {
			return err
		}
	}
	return nil
}

// WalkDecl dispatches to the concrete declaration visit method.
func WalkDecl(v Visitor, d Decl) error {
	switch d := d.(type) {
	case *Function:
		return v.VisitFunction(d)
	case *Struct:
		return v.VisitStruct(d)
	case *Enum:
		return v.VisitEnum(d)
	case *Trait:
		return v.VisitTrait(d)
	case *Extend:
		return v.VisitExtend(d)
	case *Import:
		return v.VisitImport(d)
	case *StmtDecl:
		return v.VisitStmt(d.Stmt)
	default:
		return nil
	}
}

// WalkFunction visits parameter types, the result type and the body.
func WalkFunction(v Visitor, f *Function) error {
	for _, p := range f.Params {
		if p.Ty != nil {
			if err := v.VisitType(p.Ty); err != nil {
				return err
			}
		}
	}
	if f.Return != nil {
		if err := v.VisitType(f.Return); err != nil {
			return err
		}
	}
	if f.Body != nil {
		return v.VisitStmt(f.Body)
	}
	return nil
}

// WalkStruct visits generic parameters and field types.
func WalkStruct(v Visitor, s *Struct) error {
	for _, g := range s.Generics {
		if err := v.VisitType(g); err != nil {
			return err
		}
	}
	for _, f := range s.Fields {
		if f.Ty != nil {
			if err := v.VisitType(f.Ty); err != nil {
				return err
			}
		}
	}
	return nil
}

// WalkEnum visits generic parameters and variant payload types.
func WalkEnum(v Visitor, e *Enum) error {
	for _, g := range e.Generics {
		if err := v.VisitType(g); err != nil {
			return err
		}
	}
	for _, variant := range e.Variants {
		for _, ty := range variant.Payload {
			if err := v.VisitType(ty); err != nil {
				return err
			}
		}
	}
	return nil
}

// WalkTrait visits the trait's method signatures.
func WalkTrait(v Visitor, t *Trait) error {
	for _, m := range t.Methods {
		if err := v.VisitFunction(m); err != nil {
			return err
		}
	}
	return nil
}

// WalkExtend visits the extension's methods.
func WalkExtend(v Visitor, e *Extend) error {
	for _, m := range e.Methods {
		if err := v.VisitFunction(m); err != nil {
			return err
		}
	}
	return nil
}

// WalkStmt descends into the children of one statement.
func WalkStmt(v Visitor, s Stmt) error {
	switch s := s.(type) {
	case *Let:
		if s.Ty != nil {
			if err := v.VisitType(s.Ty); err != nil {
				return err
			}
		}
		if s.Value != nil {
			return v.VisitExpr(s.Value)
		}
	case *ExprStmt:
		return v.VisitExpr(s.X)
	case *Return:
		if s.Value != nil {
			return v.VisitExpr(s.Value)
		}
	case *Block:
		for _, stmt := range s.Stmts {
			if err := v.VisitStmt(stmt); err != nil {
				return err
			}
		}
	case *If:
		if err := v.VisitExpr(s.Cond); err != nil {
			return err
		}
		if err := v.VisitStmt(s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			return v.VisitStmt(s.Else)
		}
	case *While:
		if err := v.VisitExpr(s.Cond); err != nil {
			return err
		}
		return v.VisitStmt(s.Body)
	case *For:
		if err := v.VisitExpr(s.Iter); err != nil {
			return err
		}
		return v.VisitStmt(s.Body)
	case *Match:
		if err := v.VisitExpr(s.Subject); err != nil {
			return err
		}
		for _, c := range s.Cases {
			if err := v.VisitPattern(c.Pat); err != nil {
				return err
			}
			if err := v.VisitStmt(c.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

// WalkExpr descends into the children of one expression.
func WalkExpr(v Visitor, e Expr) error {
	switch e := e.(type) {
	case *Unary:
		return v.VisitExpr(e.X)
	case *Binary:
		if err := v.VisitExpr(e.Left); err != nil {
			return err
		}
		return v.VisitExpr(e.Right)
	case *Assign:
		if err := v.VisitExpr(e.Target); err != nil {
			return err
		}
		return v.VisitExpr(e.Value)
	case *Call:
		if err := v.VisitExpr(e.Callee); err != nil {
			return err
		}
		for _, g := range e.GenericArgs {
			if err := v.VisitType(g); err != nil {
				return err
			}
		}
		for _, a := range e.Args {
			if err := v.VisitExpr(a); err != nil {
				return err
			}
		}
	case *FieldExpr:
		return v.VisitExpr(e.Base)
	case *IndexExpr:
		if err := v.VisitExpr(e.Base); err != nil {
			return err
		}
		return v.VisitExpr(e.Index)
	case *StructLit:
		for _, f := range e.Fields {
			if err := v.VisitExpr(f.Value); err != nil {
				return err
			}
		}
	case *ArrayLit:
		for _, el := range e.Elems {
			if err := v.VisitExpr(el); err != nil {
				return err
			}
		}
	case *TupleLit:
		for _, el := range e.Elems {
			if err := v.VisitExpr(el); err != nil {
				return err
			}
		}
	case *Cast:
		if err := v.VisitExpr(e.X); err != nil {
			return err
		}
		return v.VisitType(e.Ty)
	case *Closure:
		for _, p := range e.Params {
			if p.Ty != nil {
				if err := v.VisitType(p.Ty); err != nil {
					return err
				}
			}
		}
		if e.Return != nil {
			if err := v.VisitType(e.Return); err != nil {
				return err
			}
		}
		return v.VisitStmt(e.Body)
	case *Grouping:
		return v.VisitExpr(e.X)
	}
	return nil
}

// WalkPattern descends into the children of one pattern.
func WalkPattern(v Visitor, p Pattern) error {
	switch p := p.(type) {
	case *IdentPattern:
		for _, a := range p.Args {
			if err := v.VisitPattern(a); err != nil {
				return err
			}
		}
	case *TuplePattern:
		for _, el := range p.Elems {
			if err := v.VisitPattern(el); err != nil {
				return err
			}
		}
	case *StructPattern:
		for _, f := range p.Fields {
			if err := v.VisitPattern(f.Pat); err != nil {
				return err
			}
		}
	}
	return nil
}
