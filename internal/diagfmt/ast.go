package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"sable/internal/ast"
)

// DumpAST writes an indented tree of the module, one node per line.
func DumpAST(w io.Writer, m *ast.Module) {
	p := astPrinter{w: w}
	p.line(0, "Module %s", m.Name.Text)
	for _, d := range m.Decls {
		p.decl(1, d)
	}
}

type astPrinter struct {
	w io.Writer
}

func (p *astPrinter) line(depth int, format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (p *astPrinter) decl(depth int, d ast.Decl) {
	switch d := d.(type) {
	case *ast.Function:
		kind := "Function"
		if d.Extern {
			kind = "ExternFunction"
		}
		p.line(depth, "%s %s%s -> %s", kind, d.Name.Text, paramList(d.Params), ast.TypeString(d.Return))
		if d.Body != nil {
			p.stmt(depth+1, d.Body)
		}
	case *ast.Struct:
		p.line(depth, "Struct %s%s", d.Name.Text, genericList(d.Generics))
		for _, f := range d.Fields {
			p.line(depth+1, "Field %s: %s", f.Name.Text, ast.TypeString(f.Ty))
		}
	case *ast.Enum:
		p.line(depth, "Enum %s%s", d.Name.Text, genericList(d.Generics))
		for _, v := range d.Variants {
			if len(v.Payload) == 0 {
				p.line(depth+1, "Variant %s", v.Name.Text)
				continue
			}
			payload := make([]string, len(v.Payload))
			for i, t := range v.Payload {
				payload[i] = ast.TypeString(t)
			}
			p.line(depth+1, "Variant %s(%s)", v.Name.Text, strings.Join(payload, ", "))
		}
	case *ast.Trait:
		p.line(depth, "Trait %s%s", d.Name.Text, genericList(d.Generics))
		for _, m := range d.Methods {
			p.line(depth+1, "Method %s%s -> %s", m.Name.Text, paramList(m.Params), ast.TypeString(m.Return))
		}
	case *ast.Extend:
		if d.TraitName != nil {
			p.line(depth, "Extend %s for %s", d.TraitName.Text, d.Name.Text)
		} else {
			p.line(depth, "Extend %s", d.Name.Text)
		}
		for _, m := range d.Methods {
			p.decl(depth+1, m)
		}
	case *ast.Import:
		p.line(depth, "Import %s as %s", d.Path.Text, d.Alias.Text)
	case *ast.StmtDecl:
		p.stmt(depth, d.Stmt)
	}
}

func (p *astPrinter) stmt(depth int, s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Let:
		if s.Ty != nil {
			p.line(depth, "Let %s: %s", s.Name.Text, ast.TypeString(s.Ty))
		} else {
			p.line(depth, "Let %s", s.Name.Text)
		}
		if s.Value != nil {
			p.expr(depth+1, s.Value)
		}
	case *ast.ExprStmt:
		p.line(depth, "ExprStmt")
		p.expr(depth+1, s.X)
	case *ast.Return:
		p.line(depth, "Return")
		if s.Value != nil {
			p.expr(depth+1, s.Value)
		}
	case *ast.Break:
		p.line(depth, "Break")
	case *ast.Continue:
		p.line(depth, "Continue")
	case *ast.Block:
		p.line(depth, "Block")
		for _, stmt := range s.Stmts {
			p.stmt(depth+1, stmt)
		}
	case *ast.If:
		p.line(depth, "If")
		p.expr(depth+1, s.Cond)
		p.stmt(depth+1, s.Then)
		if s.Else != nil {
			p.line(depth, "Else")
			p.stmt(depth+1, s.Else)
		}
	case *ast.While:
		p.line(depth, "While")
		p.expr(depth+1, s.Cond)
		p.stmt(depth+1, s.Body)
	case *ast.For:
		p.line(depth, "For %s", s.Var.Text)
		p.expr(depth+1, s.Iter)
		p.stmt(depth+1, s.Body)
	case *ast.Match:
		p.line(depth, "Match")
		p.expr(depth+1, s.Subject)
		for _, c := range s.Cases {
			p.line(depth+1, "Case %s", patternString(c.Pat))
			p.stmt(depth+2, c.Body)
		}
	case *ast.BadStmt:
		p.line(depth, "BadStmt")
	}
}

func (p *astPrinter) expr(depth int, e ast.Expr) {
	switch e := e.(type) {
	case *ast.Ident:
		p.line(depth, "Ident %s", e.Name.Text)
	case *ast.Literal:
		p.line(depth, "Literal %s", e.Tok.Text)
	case *ast.Unary:
		p.line(depth, "Unary %s", e.Op.Text)
		p.expr(depth+1, e.X)
	case *ast.Binary:
		p.line(depth, "Binary %s", e.Op.Text)
		p.expr(depth+1, e.Left)
		p.expr(depth+1, e.Right)
	case *ast.Assign:
		p.line(depth, "Assign %s", e.Op.Text)
		p.expr(depth+1, e.Target)
		p.expr(depth+1, e.Value)
	case *ast.Call:
		if len(e.GenericArgs) > 0 {
			p.line(depth, "Call%s", genericList(e.GenericArgs))
		} else {
			p.line(depth, "Call")
		}
		p.expr(depth+1, e.Callee)
		for _, a := range e.Args {
			p.expr(depth+1, a)
		}
	case *ast.FieldExpr:
		p.line(depth, "Field .%s", e.Name.Text)
		p.expr(depth+1, e.Base)
	case *ast.IndexExpr:
		p.line(depth, "Index")
		p.expr(depth+1, e.Base)
		p.expr(depth+1, e.Index)
	case *ast.StructLit:
		p.line(depth, "StructLit %s", e.Name.Text)
		for _, f := range e.Fields {
			p.line(depth+1, "FieldInit %s", f.Name.Text)
			p.expr(depth+2, f.Value)
		}
	case *ast.ArrayLit:
		p.line(depth, "ArrayLit")
		for _, el := range e.Elems {
			p.expr(depth+1, el)
		}
	case *ast.TupleLit:
		p.line(depth, "TupleLit")
		for _, el := range e.Elems {
			p.expr(depth+1, el)
		}
	case *ast.Cast:
		p.line(depth, "Cast as %s", ast.TypeString(e.Ty))
		p.expr(depth+1, e.X)
	case *ast.Closure:
		p.line(depth, "Closure%s -> %s", paramList(e.Params), ast.TypeString(e.Return))
		p.stmt(depth+1, e.Body)
	case *ast.Grouping:
		p.expr(depth, e.X)
	case *ast.BadExpr:
		p.line(depth, "BadExpr")
	}
}

func paramList(params []*ast.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name.Text + ": " + ast.TypeString(p.Ty)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func genericList(generics []ast.Type) string {
	if len(generics) == 0 {
		return ""
	}
	parts := make([]string, len(generics))
	for i, g := range generics {
		parts[i] = ast.TypeString(g)
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

func patternString(p ast.Pattern) string {
	switch p := p.(type) {
	case *ast.IdentPattern:
		if len(p.Args) == 0 {
			return p.Name.Text
		}
		parts := make([]string, len(p.Args))
		for i, a := range p.Args {
			parts[i] = patternString(a)
		}
		return p.Name.Text + "(" + strings.Join(parts, ", ") + ")"
	case *ast.LiteralPattern:
		return p.Lit.Tok.Text
	case *ast.WildcardPattern:
		return "_"
	case *ast.TuplePattern:
		parts := make([]string, len(p.Elems))
		for i, el := range p.Elems {
			parts[i] = patternString(el)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *ast.StructPattern:
		parts := make([]string, len(p.Fields))
		for i, f := range p.Fields {
			parts[i] = f.Name.Text + ": " + patternString(f.Pat)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "<bad pattern>"
}
