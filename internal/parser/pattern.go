package parser

import (
	"strconv"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

// parsePattern reads one match-case pattern.
func (p *Parser) parsePattern() ast.Pattern {
	start := p.peek()
	switch {
	case p.match(token.Ident):
		name := p.prev()
		// 'Variant(a, b)' destructures an enum payload
		if p.match(token.LParen) {
			var args []ast.Pattern
			for !p.check(token.RParen) && !p.eof() {
				args = append(args, p.parsePattern())
				if !p.check(token.RParen) {
					p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after pattern")
				}
			}
			p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after pattern")
			return &ast.IdentPattern{Name: name, Args: args, Pos: p.locFrom(start)}
		}
		return &ast.IdentPattern{Name: name, Pos: name.Loc()}

	case p.match(token.IntLit):
		tok := p.prev()
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			p.errorAt(tok.Loc(), diag.SynUnexpectedToken, "Invalid integer literal")
			return &ast.BadPattern{Pos: tok.Loc()}
		}
		return &ast.LiteralPattern{
			Lit: &ast.Literal{Kind: ast.LitInt, Int: v, Tok: tok, Pos: tok.Loc()},
			Pos: tok.Loc(),
		}

	case p.match(token.StringLit):
		tok := p.prev()
		return &ast.LiteralPattern{
			Lit: &ast.Literal{Kind: ast.LitString, Tok: tok, Pos: tok.Loc()},
			Pos: tok.Loc(),
		}

	case p.match(token.CharLit):
		tok := p.prev()
		return &ast.LiteralPattern{
			Lit: &ast.Literal{Kind: ast.LitChar, Tok: tok, Pos: tok.Loc()},
			Pos: tok.Loc(),
		}

	case p.match(token.KwTrue), p.match(token.KwFalse):
		tok := p.prev()
		return &ast.LiteralPattern{
			Lit: &ast.Literal{Kind: ast.LitBool, Bool: tok.Kind == token.KwTrue, Tok: tok, Pos: tok.Loc()},
			Pos: tok.Loc(),
		}

	case p.match(token.LParen):
		var elems []ast.Pattern
		for !p.check(token.RParen) && !p.eof() {
			elems = append(elems, p.parsePattern())
			if !p.check(token.RParen) {
				p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after pattern")
			}
		}
		p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after pattern")
		return &ast.TuplePattern{Elems: elems, Pos: p.locFrom(start)}

	case p.match(token.LBrace):
		var fields []*ast.StructPatternField
		for !p.check(token.RBrace) && !p.eof() {
			name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected field name")
			p.expect(token.Colon, diag.SynUnexpectedToken, "Expected ':' after field name")
			pat := p.parsePattern()
			fields = append(fields, &ast.StructPatternField{Name: name, Pat: pat, Pos: p.locFrom(name)})
			if !p.check(token.RBrace) {
				p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after field")
			}
		}
		p.expect(token.RBrace, diag.SynUnexpectedToken, "Expected '}' after pattern")
		return &ast.StructPattern{Fields: fields, Pos: p.locFrom(start)}

	case p.match(token.Underscore):
		return &ast.WildcardPattern{Pos: p.prev().Loc()}

	default:
		p.errorCode(diag.SynUnexpectedToken, "Expected pattern")
		return &ast.BadPattern{Pos: start.Loc()}
	}
}
