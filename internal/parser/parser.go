// Package parser turns a token stream into an ast.Module by recursive
// descent with a single token of lookahead. Errors are reported
// immediately; the parser then resynchronizes at the next statement or
// declaration boundary and keeps going, so a parse always yields a
// best-effort tree.
package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/token"
)

// Options configures a parse.
type Options struct {
	// Reporter receives syntax diagnostics. May be nil.
	Reporter diag.Reporter
	// MaxErrors stops reporting (not parsing) once exceeded. Zero means
	// no limit.
	MaxErrors uint
}

// Parser holds the cursor plus the context state threaded through every
// sub-parser: the pending access modifier, the open generic-list depth
// used to recognise bare type variables, and the declaration-site mode
// that restricts generic parameters to plain type variables.
type Parser struct {
	toks []token.Token
	pos  int
	opts Options

	hadError bool
	errors   uint

	// speculative-parse mode: errors are recorded, not reported
	quiet       int
	quietFailed bool

	modifier     ast.AccessModifier
	genericDepth int
	typeVarOnly  bool
}

// ParseModule parses one file's tokens. The stream must be terminated by
// an EOF token, as produced by the lexer.
func ParseModule(tokens []token.Token, opts Options) *ast.Module {
	p := &Parser{toks: tokens, opts: opts}
	return p.parseModule()
}

// ErrorCount returns the number of syntax errors reported so far.
func (p *Parser) ErrorCount() uint {
	return p.errors
}

func (p *Parser) parseModule() *ast.Module {
	start := p.peek()
	m := &ast.Module{Pos: start.Loc()}

	if p.match(token.KwModule) {
		m.Name = p.expect(token.Ident, diag.SynExpectIdentifier, "Expected module name")
		p.expect(token.Semicolon, diag.SynUnexpectedToken, "Expected ';' after module declaration")
	} else {
		p.errorCode(diag.SynExpectModuleHeader, "Expected 'module' at the start of the file")
	}
	p.hadError = false

	for !p.eof() {
		decl := p.parseDecl()
		if p.hadError {
			p.synchronise()
			p.hadError = false
			continue
		}
		if decl != nil {
			m.Decls = append(m.Decls, decl)
		}
	}
	m.Pos = p.locFrom(start)
	return m
}

// synchronise implements panic-mode recovery: skip forward until just
// past a ';' or until a token that can begin a declaration or statement.
// A failed statement may already have consumed its own ';', in which
// case the cursor is left alone.
func (p *Parser) synchronise() {
	if p.prev().Kind == token.Semicolon {
		return
	}
	for !p.eof() {
		switch p.peek().Kind {
		case token.KwFunc, token.KwStruct, token.KwEnum, token.KwTrait,
			token.KwImport, token.KwExtend,
			token.KwLet, token.KwIf, token.KwWhile, token.KwFor,
			token.KwMatch, token.KwReturn, token.KwBreak, token.KwContinue:
			return
		}
		if p.advance().Kind == token.Semicolon {
			return
		}
	}
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) prev() token.Token {
	if p.pos == 0 {
		return p.toks[0]
	}
	return p.toks[p.pos-1]
}

func (p *Parser) eof() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) advance() token.Token {
	if !p.eof() {
		p.pos++
	}
	return p.prev()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.eof() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the expected token or reports msg at the current one.
// On failure it still advances, matching the panic-mode contract.
func (p *Parser) expect(kind token.Kind, code diag.Code, msg string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorCode(code, msg)
	p.advance()
	return p.prev()
}

// errorCode reports one syntax error at the current token. Only the
// first error per synchronization window is surfaced; follow-on errors
// from the same broken construct are suppressed until recovery.
func (p *Parser) errorCode(code diag.Code, msg string) {
	if p.quiet > 0 {
		p.quietFailed = true
		return
	}
	if p.hadError {
		return
	}
	p.hadError = true
	p.errors++
	if p.opts.MaxErrors > 0 && p.errors > p.opts.MaxErrors {
		return
	}
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, p.peek().Loc(), msg).Emit()
	}
}

func (p *Parser) errorAt(loc source.Loc, code diag.Code, msg string) {
	if p.quiet > 0 {
		p.quietFailed = true
		return
	}
	if p.hadError {
		return
	}
	p.hadError = true
	p.errors++
	if p.opts.MaxErrors > 0 && p.errors > p.opts.MaxErrors {
		return
	}
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, loc, msg).Emit()
	}
}

// locFrom builds a node location anchored at the construct's first
// token, widened to the last consumed token when both share a line.
func (p *Parser) locFrom(start token.Token) source.Loc {
	loc := start.Loc()
	if prev := p.prev(); prev.Line == start.Line {
		loc.Span = loc.Span.Cover(prev.Span)
	}
	return loc
}
