package sema

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/symbols"
	"sable/internal/token"
)

// primitiveNames seeds the type namespace so annotations like 'int'
// always resolve.
var primitiveNames = []string{"int", "float", "string", "char", "bool", "void"}

// Populate runs the declaration pass: every module-level name lands in
// its namespace before any body is checked, so forward references
// between declarations resolve.
func Populate(m *ast.Module, opts Options) *symbols.MultiTable {
	p := &populator{table: symbols.NewMultiTable(), opts: opts}
	p.Base.Self = p

	for _, name := range primitiveNames {
		p.table.Types.Insert(&symbols.Symbol{Name: name, Kind: symbols.SymType})
	}
	_ = p.VisitModule(m)
	return p.table
}

type populator struct {
	ast.Base
	table *symbols.MultiTable
	opts  Options
}

func (p *populator) duplicate(name token.Token, tbl *symbols.Table) bool {
	if _, ok := tbl.LookupLocal(name.Text); ok {
		if p.opts.Reporter != nil {
			loc := name.Loc()
			diag.ReportError(p.opts.Reporter, diag.SemaDuplicateDecl, loc,
				"'"+name.Text+"' is already declared in this module").Emit()
		}
		return true
	}
	return false
}

func locOf(tok token.Token) *source.Loc {
	loc := tok.Loc()
	return &loc
}

func (p *populator) VisitFunction(f *ast.Function) error {
	// extension and trait methods are looked up through their receiver,
	// not the module value namespace
	if f.Method {
		return nil
	}
	if p.duplicate(f.Name, p.table.Values) {
		return nil
	}
	p.table.Values.Insert(&symbols.Symbol{
		Name: f.Name.Text,
		Kind: symbols.SymFunction,
		Type: signatureOf(f),
		Loc:  locOf(f.Name),
	})
	return nil
}

// signatureOf builds the function type the value namespace carries for
// a declared function.
func signatureOf(f *ast.Function) *ast.FuncType {
	params := make([]ast.Type, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Ty
	}
	return &ast.FuncType{Params: params, Return: f.Return, Pos: f.Pos}
}

func (p *populator) VisitStruct(s *ast.Struct) error {
	if p.duplicate(s.Name, p.table.Types) {
		return nil
	}
	p.table.Types.Insert(&symbols.Symbol{
		Name:   s.Name.Text,
		Kind:   symbols.SymStruct,
		Loc:    locOf(s.Name),
		Fields: s.Fields,
	})
	for _, f := range s.Fields {
		p.table.StructFields.Insert(&symbols.Symbol{
			Name: s.Name.Text + "." + f.Name.Text,
			Kind: symbols.SymField,
			Type: f.Ty,
			Loc:  locOf(f.Name),
		})
	}
	return nil
}

func (p *populator) VisitEnum(e *ast.Enum) error {
	if p.duplicate(e.Name, p.table.Types) {
		return nil
	}
	p.table.Types.Insert(&symbols.Symbol{
		Name:     e.Name.Text,
		Kind:     symbols.SymEnum,
		Loc:      locOf(e.Name),
		Variants: e.Variants,
	})
	enumType := &ast.NamedType{Name: e.Name, Pos: e.Name.Loc()}
	for _, v := range e.Variants {
		p.table.EnumVariants.Insert(&symbols.Symbol{
			Name: e.Name.Text + "." + v.Name.Text,
			Kind: symbols.SymVariant,
			Type: enumType,
			Loc:  locOf(v.Name),
		})
	}
	return nil
}

func (p *populator) VisitTrait(t *ast.Trait) error {
	if p.duplicate(t.Name, p.table.Types) {
		return nil
	}
	p.table.Types.Insert(&symbols.Symbol{
		Name: t.Name.Text,
		Kind: symbols.SymTrait,
		Loc:  locOf(t.Name),
	})
	return nil
}

func (p *populator) VisitExtend(e *ast.Extend) error {
	// methods become "Type.method" fields so member access resolves
	for _, m := range e.Methods {
		p.table.StructFields.Insert(&symbols.Symbol{
			Name: e.Name.Text + "." + m.Name.Text,
			Kind: symbols.SymFunction,
			Type: signatureOf(m),
			Loc:  locOf(m.Name),
		})
	}
	return nil
}

func (p *populator) VisitImport(imp *ast.Import) error {
	p.table.Values.Insert(&symbols.Symbol{
		Name: imp.Alias.Text,
		Kind: symbols.SymModule,
		Loc:  locOf(imp.Alias),
	})
	return nil
}

// VisitStmt registers module-level let bindings and stops. Statements
// nested inside blocks belong to the check pass, which owns scoping.
func (p *populator) VisitStmt(s ast.Stmt) error {
	if let, ok := s.(*ast.Let); ok {
		p.table.Values.Insert(&symbols.Symbol{
			Name: let.Name.Text,
			Kind: symbols.SymVariable,
			Type: let.Ty,
			Loc:  locOf(let.Name),
		})
	}
	return nil
}
