package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

func (p *Parser) parseStmt() ast.Stmt {
	switch {
	case p.match(token.KwLet):
		return p.parseLet()
	case p.match(token.KwIf):
		return p.parseIf()
	case p.match(token.KwWhile):
		return p.parseWhile()
	case p.match(token.KwFor):
		return p.parseFor()
	case p.match(token.KwMatch):
		return p.parseMatch()
	case p.match(token.KwReturn):
		return p.parseReturn()
	case p.match(token.KwBreak):
		start := p.prev()
		p.expect(token.Semicolon, diag.SynUnexpectedToken, "Expected ';' after 'break'")
		return &ast.Break{Pos: p.locFrom(start)}
	case p.match(token.KwContinue):
		start := p.prev()
		p.expect(token.Semicolon, diag.SynUnexpectedToken, "Expected ';' after 'continue'")
		return &ast.Continue{Pos: p.locFrom(start)}
	case p.match(token.LBrace):
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLet() ast.Stmt {
	start := p.prev()
	name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected variable name")

	var ty ast.Type
	if p.match(token.Colon) {
		ty = p.parseType()
	}
	var value ast.Expr
	if p.match(token.Assign) {
		value = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynUnexpectedToken, "Expected ';' after variable declaration")

	return &ast.Let{Name: name, Ty: ty, Value: value, Pos: p.locFrom(start)}
}

// parseBlock assumes the opening '{' is already consumed.
func (p *Parser) parseBlock() *ast.Block {
	start := p.prev()
	var stmts []ast.Stmt
	for !p.check(token.RBrace) && !p.eof() {
		stmts = append(stmts, p.parseStmt())
	}
	p.expect(token.RBrace, diag.SynUnexpectedToken, "Expected '}' after block")
	return &ast.Block{Stmts: stmts, Pos: p.locFrom(start)}
}

// Conditions are parenthesized, which keeps 'if (x) { ... }' free of the
// struct-literal ambiguity an identifier before '{' would trigger.
func (p *Parser) parseIf() ast.Stmt {
	start := p.prev()
	p.expect(token.LParen, diag.SynUnexpectedToken, "Expected '(' after 'if'")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after 'if' condition")
	then := p.parseStmt()

	var els ast.Stmt
	if p.match(token.KwElse) {
		els = p.parseStmt()
	}
	return &ast.If{Cond: cond, Then: then, Else: els, Pos: p.locFrom(start)}
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.prev()
	p.expect(token.LParen, diag.SynUnexpectedToken, "Expected '(' after 'while'")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after 'while' condition")
	body := p.parseStmt()
	return &ast.While{Cond: cond, Body: body, Pos: p.locFrom(start)}
}

func (p *Parser) parseFor() ast.Stmt {
	start := p.prev()
	p.expect(token.LParen, diag.SynUnexpectedToken, "Expected '(' after 'for'")
	name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected variable name")
	p.expect(token.KwIn, diag.SynUnexpectedToken, "Expected 'in' after variable name")
	iter := p.parseExpr()
	p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after 'for' clause")
	body := p.parseStmt()
	return &ast.For{Var: name, Iter: iter, Body: body, Pos: p.locFrom(start)}
}

func (p *Parser) parseMatch() ast.Stmt {
	start := p.prev()
	p.expect(token.LParen, diag.SynUnexpectedToken, "Expected '(' after 'match'")
	subject := p.parseExpr()
	p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after 'match' subject")
	p.expect(token.LBrace, diag.SynUnexpectedToken, "Expected '{' after 'match' subject")

	var cases []*ast.Case
	for !p.check(token.RBrace) && !p.eof() {
		cases = append(cases, p.parseCase())
		if !p.check(token.RBrace) {
			p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after match case")
		}
	}
	p.expect(token.RBrace, diag.SynUnexpectedToken, "Expected '}' after match statement")

	return &ast.Match{Subject: subject, Cases: cases, Pos: p.locFrom(start)}
}

func (p *Parser) parseCase() *ast.Case {
	start := p.peek()
	pat := p.parsePattern()
	p.expect(token.Arrow, diag.SynUnexpectedToken, "Expected '->' after match pattern")
	body := p.parseStmt()
	return &ast.Case{Pat: pat, Body: body, Pos: p.locFrom(start)}
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.prev()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynUnexpectedToken, "Expected ';' after return statement")
	return &ast.Return{Value: value, Pos: p.locFrom(start)}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.peek()
	expr := p.parseExpr()
	p.expect(token.Semicolon, diag.SynUnexpectedToken, "Expected ';' after expression")
	return &ast.ExprStmt{X: expr, Pos: p.locFrom(start)}
}
