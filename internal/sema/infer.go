package sema

import (
	"strconv"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/symbols"
	"sable/internal/token"
)

// inferExpr derives the type of one expression, reporting any semantic
// error found along the way. A nil result means the type is unknown;
// callers treat unknown as compatible with anything so a single error
// surfaces once.
func (c *Checker) inferExpr(e ast.Expr) ast.Type {
	switch e := e.(type) {
	case *ast.Ident:
		sym, ok := c.table.Values.Lookup(e.Name.Text)
		if !ok {
			c.report(diag.SemaUndefinedIdent, e.Loc(),
				"Undefined identifier '"+e.Name.Text+"'")
			return nil
		}
		return sym.Type

	case *ast.Literal:
		switch e.Kind {
		case ast.LitInt:
			return intType()
		case ast.LitFloat:
			return floatType()
		case ast.LitBool:
			return boolType()
		case ast.LitString:
			return stringType()
		case ast.LitChar:
			return charType()
		default: // null carries no type of its own
			return nil
		}

	case *ast.Grouping:
		return c.inferExpr(e.X)

	case *ast.Unary:
		return c.inferUnary(e)

	case *ast.Binary:
		return c.inferBinary(e)

	case *ast.Assign:
		target := c.inferExpr(e.Target)
		value := c.inferExpr(e.Value)
		if target != nil && value != nil && !Compatible(target, value) {
			c.report(diag.SemaTypeMismatch, e.Value.Loc(),
				"Cannot assign a value of type "+ast.TypeString(value)+
					" to a target of type "+ast.TypeString(target))
		}
		return target

	case *ast.Call:
		return c.inferCall(e)

	case *ast.FieldExpr:
		base := c.inferExpr(e.Base)
		if base == nil {
			return nil
		}
		if ty := c.fieldTypeOf(base, e.Name.Text); ty != nil {
			return ty
		}
		if named, ok := base.(*ast.NamedType); ok {
			c.report(diag.SemaUndefinedIdent, e.Name.Loc(),
				"'"+named.Name.Text+"' has no member '"+e.Name.Text+"'")
		}
		return nil

	case *ast.IndexExpr:
		base := c.inferExpr(e.Base)
		index := c.inferExpr(e.Index)
		if index != nil && !isPrimitive(index, "int") {
			c.report(diag.SemaTypeMismatch, e.Index.Loc(),
				"Index must be int, got "+ast.TypeString(index))
		}
		if arr, ok := base.(*ast.ArrayType); ok {
			return arr.Elem
		}
		return nil

	case *ast.StructLit:
		return c.inferStructLit(e)

	case *ast.ArrayLit:
		var elem ast.Type
		for _, el := range e.Elems {
			ty := c.inferExpr(el)
			if elem == nil {
				elem = ty
			} else if ty != nil && !Compatible(elem, ty) {
				c.report(diag.SemaTypeMismatch, el.Loc(),
					"Array element of type "+ast.TypeString(ty)+
						" does not match the element type "+ast.TypeString(elem))
			}
		}
		return &ast.ArrayType{Elem: elem, Size: -1, Pos: e.Pos}

	case *ast.TupleLit:
		elems := make([]ast.Type, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = c.inferExpr(el)
		}
		return &ast.TupleType{Elems: elems, Pos: e.Pos}

	case *ast.Cast:
		c.inferExpr(e.X)
		return e.Ty

	case *ast.Closure:
		params := make([]ast.Type, len(e.Params))
		for i, p := range e.Params {
			params[i] = p.Ty
		}
		saved := c.expectedReturn
		c.expectedReturn = e.Return
		c.table.EnterScope()
		for _, p := range e.Params {
			c.table.Values.Insert(&symbols.Symbol{
				Name: p.Name.Text,
				Kind: symbols.SymParameter,
				Type: p.Ty,
				Loc:  locOf(p.Name),
			})
		}
		c.checkStmt(e.Body)
		c.table.ExitScope()
		c.expectedReturn = saved
		return &ast.FuncType{Params: params, Return: e.Return, Pos: e.Pos}
	}
	return nil
}

func (c *Checker) inferUnary(e *ast.Unary) ast.Type {
	operand := c.inferExpr(e.X)
	if operand == nil {
		return nil
	}
	switch e.Op.Kind {
	case token.Bang:
		if !isPrimitive(operand, "bool") {
			c.report(diag.SemaInvalidOperands, e.X.Loc(),
				"Operator '!' requires bool, got "+ast.TypeString(operand))
			return nil
		}
		return boolType()
	case token.Minus:
		if !isNumeric(operand) {
			c.report(diag.SemaInvalidOperands, e.X.Loc(),
				"Operator '-' requires a numeric operand, got "+ast.TypeString(operand))
			return nil
		}
		return operand
	}
	return nil
}

// inferBinary applies the numeric promotion table regardless of the
// operator: int with int stays int, float with float stays float, a
// mix of the two promotes to float, and the logical operators pair two
// bools. Every other combination is an error.
func (c *Checker) inferBinary(e *ast.Binary) ast.Type {
	left := c.inferExpr(e.Left)
	right := c.inferExpr(e.Right)
	if left == nil || right == nil {
		return nil
	}

	switch {
	case isPrimitive(left, "int") && isPrimitive(right, "int"):
		return left
	case isPrimitive(left, "float") && isPrimitive(right, "float"):
		return left
	case isNumeric(left) && isNumeric(right):
		return floatType()
	case isPrimitive(left, "bool") && isPrimitive(right, "bool") &&
		(e.Op.Kind == token.AndAnd || e.Op.Kind == token.OrOr):
		return left
	}
	c.invalidOperands(e, left, right)
	return nil
}

func (c *Checker) invalidOperands(e *ast.Binary, left, right ast.Type) {
	c.report(diag.SemaInvalidOperands, e.Loc(),
		"Operator '"+e.Op.Text+"' cannot be applied to "+
			ast.TypeString(left)+" and "+ast.TypeString(right))
}

func (c *Checker) inferCall(e *ast.Call) ast.Type {
	callee := c.inferExpr(e.Callee)
	if callee == nil {
		for _, a := range e.Args {
			c.inferExpr(a)
		}
		return nil
	}
	fn, ok := callee.(*ast.FuncType)
	if !ok {
		c.report(diag.SemaNotCallable, e.Callee.Loc(),
			"Expression of type "+ast.TypeString(callee)+" is not callable")
		for _, a := range e.Args {
			c.inferExpr(a)
		}
		return nil
	}
	if len(e.Args) != len(fn.Params) {
		c.report(diag.SemaArityMismatch, e.Loc(),
			"Call takes "+strconv.Itoa(len(fn.Params))+" argument(s), got "+
				strconv.Itoa(len(e.Args)))
	}
	for i, a := range e.Args {
		got := c.inferExpr(a)
		if i >= len(fn.Params) {
			continue
		}
		if got != nil && !Compatible(fn.Params[i], got) {
			c.report(diag.SemaTypeMismatch, a.Loc(),
				"Argument of type "+ast.TypeString(got)+
					" is not compatible with parameter type "+ast.TypeString(fn.Params[i]))
		}
	}
	return fn.Return
}

// inferStructLit checks field initializers against the declared struct
// and yields the named type.
func (c *Checker) inferStructLit(e *ast.StructLit) ast.Type {
	sym, ok := c.table.Types.Lookup(e.Name.Text)
	if !ok || sym.Kind != symbols.SymStruct {
		c.report(diag.SemaUndefinedIdent, e.Name.Loc(),
			"Undefined struct '"+e.Name.Text+"'")
		for _, f := range e.Fields {
			c.inferExpr(f.Value)
		}
		return nil
	}
	for _, f := range e.Fields {
		got := c.inferExpr(f.Value)
		want := fieldDeclType(sym, f.Name.Text)
		if want == nil {
			c.report(diag.SemaUndefinedIdent, f.Name.Loc(),
				"'"+e.Name.Text+"' has no field '"+f.Name.Text+"'")
			continue
		}
		if got != nil && !Compatible(want, got) {
			c.report(diag.SemaTypeMismatch, f.Value.Loc(),
				"Field '"+f.Name.Text+"' has type "+ast.TypeString(want)+
					", got "+ast.TypeString(got))
		}
	}
	return &ast.NamedType{Name: e.Name, Pos: e.Pos}
}

func fieldDeclType(sym *symbols.Symbol, name string) ast.Type {
	for _, f := range sym.Fields {
		if f.Name.Text == name {
			return f.Ty
		}
	}
	return nil
}
