package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

func isPrimitiveName(name string) bool {
	switch name {
	case "int", "float", "string", "char", "bool", "void":
		return true
	}
	return false
}

// parseType reads one type expression. Inside an open generic list
// (genericDepth > 0) a bare identifier with no generics of its own is a
// type variable; in typeVarOnly mode nothing else is accepted at all.
func (p *Parser) parseType() ast.Type {
	start := p.peek()

	if p.typeVarOnly {
		if p.match(token.Ident) {
			name := p.prev()
			return &ast.TypeVar{Name: name, Pos: name.Loc()}
		}
		p.errorCode(diag.SynExpectType, "Generic parameter lists only accept type variables here")
	}

	if p.match(token.Ident) {
		name := p.prev()
		if isPrimitiveName(name.Text) {
			return &ast.PrimitiveType{Name: name, Pos: name.Loc()}
		}

		var generics []ast.Type
		if p.match(token.Lt) {
			p.genericDepth++
			for {
				generics = append(generics, p.parseType())
				if !p.match(token.Comma) {
					break
				}
			}
			p.expect(token.Gt, diag.SynUnexpectedToken, "Expected '>' after generic type")
			p.genericDepth--
		}
		if len(generics) == 0 && p.genericDepth > 0 {
			return &ast.TypeVar{Name: name, Pos: name.Loc()}
		}
		return &ast.NamedType{Name: name, Generics: generics, Pos: p.locFrom(start)}
	}

	// count consecutive '[' so [[T]] nests arrays to the right depth
	depth := 0
	for p.match(token.LBracket) {
		depth++
	}
	if depth > 0 {
		inner := p.parseType()
		for i := 0; i < depth; i++ {
			p.expect(token.RBracket, diag.SynUnexpectedToken, "Expected ']' after type")
			inner = &ast.ArrayType{Elem: inner, Size: -1, Pos: p.locFrom(start)}
		}
		return inner
	}

	if p.match(token.LParen) {
		var elems []ast.Type
		for !p.check(token.RParen) && !p.eof() {
			elems = append(elems, p.parseType())
			if !p.check(token.RParen) {
				p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after type")
			}
		}
		p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after type")

		// '(T, U) -> V' is a function type, otherwise a tuple
		if p.match(token.Arrow) {
			ret := p.parseType()
			return &ast.FuncType{Params: elems, Return: ret, Pos: p.locFrom(start)}
		}
		return &ast.TupleType{Elems: elems, Pos: p.locFrom(start)}
	}

	p.errorCode(diag.SynExpectType, "Expected type expression")
	return &ast.BadType{Pos: start.Loc()}
}
