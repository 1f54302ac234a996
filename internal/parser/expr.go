package parser

import (
	"strconv"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssign()
}

// parseAssign is right-associative: 'a = b = c' folds to a = (b = c).
func (p *Parser) parseAssign() ast.Expr {
	start := p.peek()
	expr := p.parseOr()

	if p.peek().Kind.IsAssignment() {
		op := p.advance()
		value := p.parseAssign()
		return &ast.Assign{Target: expr, Op: op, Value: value, Pos: p.locFrom(start)}
	}
	return expr
}

// binaryLevel implements one left-associative rung of the precedence
// ladder: a loop folding into a left-deepening tree.
func (p *Parser) binaryLevel(next func() ast.Expr, kinds ...token.Kind) ast.Expr {
	start := p.peek()
	expr := next()
	for p.matchAny(kinds...) {
		op := p.prev()
		right := next()
		expr = &ast.Binary{Left: expr, Op: op, Right: right, Pos: p.locFrom(start)}
	}
	return expr
}

func (p *Parser) matchAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.match(k) {
			return true
		}
	}
	return false
}

func (p *Parser) parseOr() ast.Expr {
	return p.binaryLevel(p.parseAnd, token.OrOr)
}

func (p *Parser) parseAnd() ast.Expr {
	return p.binaryLevel(p.parseCoalesce, token.AndAnd)
}

func (p *Parser) parseCoalesce() ast.Expr {
	return p.binaryLevel(p.parseBitOr, token.QuestionQuestion)
}

func (p *Parser) parseBitOr() ast.Expr {
	return p.binaryLevel(p.parseBitXor, token.Pipe)
}

func (p *Parser) parseBitXor() ast.Expr {
	return p.binaryLevel(p.parseBitAnd, token.Caret)
}

func (p *Parser) parseBitAnd() ast.Expr {
	return p.binaryLevel(p.parseEquality, token.Amp)
}

func (p *Parser) parseEquality() ast.Expr {
	return p.binaryLevel(p.parseComparison, token.EqEq, token.BangEq)
}

func (p *Parser) parseComparison() ast.Expr {
	return p.binaryLevel(p.parseAdditive, token.Lt, token.LtEq, token.Gt, token.GtEq)
}

func (p *Parser) parseAdditive() ast.Expr {
	return p.binaryLevel(p.parseMultiplicative, token.Plus, token.Minus)
}

func (p *Parser) parseMultiplicative() ast.Expr {
	return p.binaryLevel(p.parseExponent, token.Star, token.Slash, token.Percent)
}

// parseExponent folds '**' left to right, same as every other level.
func (p *Parser) parseExponent() ast.Expr {
	return p.binaryLevel(p.parseUnary, token.StarStar)
}

func (p *Parser) parseUnary() ast.Expr {
	if p.match(token.Bang) || p.match(token.Minus) {
		op := p.prev()
		operand := p.parseCast()
		loc := op.Loc()
		loc.Span = loc.Span.Cover(operand.Loc().Span)
		return &ast.Unary{Op: op, X: operand, Pos: loc}
	}
	return p.parseCast()
}

func (p *Parser) parseCast() ast.Expr {
	start := p.peek()
	expr := p.parsePostfix()
	for p.match(token.KwAs) {
		ty := p.parseType()
		expr = &ast.Cast{X: expr, Ty: ty, Pos: p.locFrom(start)}
	}
	return expr
}

// parsePostfix is the unified call/field/index/generic-argument chain,
// so 'a.b<T>(x)[0]' parses in any trailing order. A '<' is treated as a
// generic argument list only tentatively: if no well-formed type list
// closed by '>' and followed by '(' is found, the cursor rewinds and the
// '<' is left for the comparison level.
func (p *Parser) parsePostfix() ast.Expr {
	start := p.peek()
	expr := p.parsePrimary()

	for {
		if p.check(token.Lt) {
			save := p.mark()
			generics, ok := p.tryGenericArgs()
			if ok && p.check(token.LParen) {
				p.advance()
				expr = p.finishCall(start, expr, generics)
				continue
			}
			p.restore(save)
			break
		}
		if p.match(token.LParen) {
			expr = p.finishCall(start, expr, nil)
			continue
		}
		if p.match(token.Dot) {
			name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected property name")
			expr = &ast.FieldExpr{Base: expr, Name: name, Pos: p.locFrom(start)}
			continue
		}
		if p.match(token.LBracket) {
			index := p.parseExpr()
			p.expect(token.RBracket, diag.SynUnexpectedToken, "Expected ']' after index")
			expr = &ast.IndexExpr{Base: expr, Index: index, Pos: p.locFrom(start)}
			continue
		}
		break
	}
	return expr
}

type savepoint struct {
	pos         int
	hadError    bool
	errors      uint
	quietFailed bool
}

func (p *Parser) mark() savepoint {
	return savepoint{pos: p.pos, hadError: p.hadError, errors: p.errors, quietFailed: p.quietFailed}
}

func (p *Parser) restore(s savepoint) {
	p.pos = s.pos
	p.hadError = s.hadError
	p.errors = s.errors
	p.quietFailed = s.quietFailed
}

// tryGenericArgs speculatively parses '<type, ...>'. It runs in quiet
// mode; the caller rewinds on failure.
func (p *Parser) tryGenericArgs() ([]ast.Type, bool) {
	p.quiet++
	defer func() { p.quiet-- }()
	p.quietFailed = false

	if !p.match(token.Lt) {
		return nil, false
	}
	p.genericDepth++
	defer func() { p.genericDepth-- }()

	var generics []ast.Type
	for !p.check(token.Gt) && !p.eof() {
		generics = append(generics, p.parseType())
		if p.quietFailed {
			return nil, false
		}
		if !p.check(token.Gt) && !p.match(token.Comma) {
			return nil, false
		}
	}
	if !p.match(token.Gt) {
		return nil, false
	}
	return generics, !p.quietFailed
}

func (p *Parser) finishCall(start token.Token, callee ast.Expr, generics []ast.Type) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RParen) {
		for {
			if len(args) >= 255 {
				p.errorCode(diag.SynTooManyParams, "Cannot have more than 255 arguments")
			}
			args = append(args, p.parseExpr())
			if p.check(token.RParen) {
				break
			}
			p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after argument")
			if p.eof() {
				break
			}
		}
	}
	p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after arguments")
	return &ast.Call{Callee: callee, GenericArgs: generics, Args: args, Pos: p.locFrom(start)}
}

func (p *Parser) parsePrimary() ast.Expr {
	switch {
	case p.match(token.KwTrue), p.match(token.KwFalse):
		tok := p.prev()
		return &ast.Literal{Kind: ast.LitBool, Bool: tok.Kind == token.KwTrue, Tok: tok, Pos: tok.Loc()}
	case p.match(token.KwNull):
		tok := p.prev()
		return &ast.Literal{Kind: ast.LitNull, Tok: tok, Pos: tok.Loc()}
	case p.match(token.IntLit):
		tok := p.prev()
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			p.errorAt(tok.Loc(), diag.SynUnexpectedToken, "Invalid integer literal")
			return &ast.BadExpr{Pos: tok.Loc()}
		}
		return &ast.Literal{Kind: ast.LitInt, Int: v, Tok: tok, Pos: tok.Loc()}
	case p.match(token.FloatLit):
		tok := p.prev()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.errorAt(tok.Loc(), diag.SynUnexpectedToken, "Invalid float literal")
			return &ast.BadExpr{Pos: tok.Loc()}
		}
		return &ast.Literal{Kind: ast.LitFloat, Float: v, Tok: tok, Pos: tok.Loc()}
	case p.match(token.StringLit):
		tok := p.prev()
		return &ast.Literal{Kind: ast.LitString, Tok: tok, Pos: tok.Loc()}
	case p.match(token.CharLit):
		tok := p.prev()
		return &ast.Literal{Kind: ast.LitChar, Tok: tok, Pos: tok.Loc()}
	case p.match(token.Ident):
		name := p.prev()
		// an identifier followed by '{' is always a struct literal;
		// contexts that need a block after a bare identifier keep the
		// ambiguity out by parenthesizing (see parseIf)
		if p.match(token.LBrace) {
			return p.parseStructLit(name)
		}
		return &ast.Ident{Name: name, Pos: name.Loc()}
	case p.match(token.Pipe):
		return p.parseClosure()
	case p.match(token.LBracket):
		return p.parseArrayLit()
	case p.match(token.LParen):
		return p.parseParenExpr()
	default:
		p.errorCode(diag.SynUnexpectedToken, "Expected expression")
		return &ast.BadExpr{Pos: p.peek().Loc()}
	}
}

// parseStructLit reads the field list after 'Name {'. The shorthand
// '{x}' expands to '{x: x}' here, not in a later pass.
func (p *Parser) parseStructLit(name token.Token) ast.Expr {
	var fields []*ast.FieldInit
	for !p.check(token.RBrace) && !p.eof() {
		fieldName := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected field name")
		var value ast.Expr
		if p.match(token.Colon) {
			value = p.parseExpr()
		} else {
			value = &ast.Ident{Name: fieldName, Pos: fieldName.Loc()}
		}
		fields = append(fields, &ast.FieldInit{Name: fieldName, Value: value, Pos: p.locFrom(fieldName)})
		if !p.check(token.RBrace) {
			p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after field")
		}
	}
	p.expect(token.RBrace, diag.SynUnexpectedToken, "Expected '}' after struct literal")
	return &ast.StructLit{Name: name, Fields: fields, Pos: p.locFrom(name)}
}

func (p *Parser) parseArrayLit() ast.Expr {
	start := p.prev()
	var elems []ast.Expr
	for !p.check(token.RBracket) && !p.eof() {
		elems = append(elems, p.parseExpr())
		if !p.check(token.RBracket) {
			p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after array element")
		}
	}
	p.expect(token.RBracket, diag.SynUnexpectedToken, "Expected ']' after array literal")
	return &ast.ArrayLit{Elems: elems, Pos: p.locFrom(start)}
}

// parseParenExpr resolves '(' into a grouping or, when a comma follows
// the first element, a tuple literal.
func (p *Parser) parseParenExpr() ast.Expr {
	start := p.prev()
	expr := p.parseExpr()
	if p.match(token.Comma) {
		elems := []ast.Expr{expr}
		for !p.check(token.RParen) && !p.eof() {
			elems = append(elems, p.parseExpr())
			if !p.check(token.RParen) {
				p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after tuple element")
			}
		}
		p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after tuple literal")
		return &ast.TupleLit{Elems: elems, Pos: p.locFrom(start)}
	}
	p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after expression")
	return &ast.Grouping{X: expr, Pos: p.locFrom(start)}
}

// parseClosure reads '|params| -> type body' after the opening '|'.
// The arrow is optional; the result type is not.
func (p *Parser) parseClosure() ast.Expr {
	start := p.prev()
	params := p.parseParameters(token.Pipe)
	p.expect(token.Pipe, diag.SynUnexpectedToken, "Expected '|' after closure parameters")
	p.match(token.Arrow)
	ret := p.parseType()
	body := p.parseStmt()
	return &ast.Closure{Params: params, Return: ret, Body: body, Pos: p.locFrom(start)}
}
