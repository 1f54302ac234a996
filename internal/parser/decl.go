package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

// parseDecl dispatches one top-level declaration. An access modifier
// applies to exactly the following declaration; a modifier with nothing
// to modify is itself an error.
func (p *Parser) parseDecl() ast.Decl {
	switch {
	case p.match(token.KwPub):
		p.modifier = ast.AccessPub
	case p.match(token.KwPriv):
		p.modifier = ast.AccessPriv
	case p.match(token.KwProtected):
		p.modifier = ast.AccessProtected
	}

	switch {
	case p.match(token.KwFunc):
		return p.parseFunction(false)
	case p.match(token.KwStruct):
		return p.parseStruct()
	case p.match(token.KwEnum):
		return p.parseEnum()
	case p.match(token.KwExtend):
		return p.parseExtend()
	case p.match(token.KwTrait):
		return p.parseTrait()
	case p.match(token.KwImport):
		return p.parseImport()
	case p.match(token.KwExtern):
		return p.parseExternFunction()
	default:
		if p.modifier != ast.AccessDefault {
			p.errorCode(diag.SynMisplacedModifier, "Access modifier must be used with a declaration")
		}
		p.modifier = ast.AccessDefault
		stmt := p.parseStmt()
		return &ast.StmtDecl{Stmt: stmt, Pos: stmt.Loc()}
	}
}

// parseFunction parses a function after its introducing keyword. Trait
// and extend bodies reuse it with method set.
func (p *Parser) parseFunction(method bool) *ast.Function {
	start := p.prev()
	access := p.modifier
	p.modifier = ast.AccessDefault

	name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected function name")
	p.expect(token.LParen, diag.SynUnexpectedToken, "Expected '(' after function name")
	params := p.parseParameters(token.RParen)
	p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after function parameters")

	var ret ast.Type
	if p.match(token.Arrow) {
		ret = p.parseType()
	} else {
		ret = voidType()
	}

	p.expect(token.LBrace, diag.SynUnexpectedToken, "Expected '{' after function declaration")
	body := p.parseBlock()

	return &ast.Function{
		Access: access,
		Name:   name,
		Params: params,
		Return: ret,
		Body:   body,
		Method: method,
		Pos:    p.locFrom(start),
	}
}

// parseExternFunction parses 'extern func name(params) -> type;', a
// body-less declaration for symbols provided elsewhere.
func (p *Parser) parseExternFunction() *ast.Function {
	start := p.prev()
	access := p.modifier
	p.modifier = ast.AccessDefault

	p.expect(token.KwFunc, diag.SynUnexpectedToken, "Expected 'func' after 'extern'")
	name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected function name")
	p.expect(token.LParen, diag.SynUnexpectedToken, "Expected '(' after function name")
	params := p.parseParameters(token.RParen)
	p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after function parameters")

	var ret ast.Type
	if p.match(token.Arrow) {
		ret = p.parseType()
	} else {
		ret = voidType()
	}
	p.expect(token.Semicolon, diag.SynUnexpectedToken, "Expected ';' after extern declaration")

	return &ast.Function{
		Access: access,
		Name:   name,
		Params: params,
		Return: ret,
		Extern: true,
		Pos:    p.locFrom(start),
	}
}

func voidType() ast.Type {
	return &ast.PrimitiveType{Name: token.Token{Kind: token.Ident, Text: "void"}}
}

// parseParameters reads 'name: type' pairs until end, at most 255.
func (p *Parser) parseParameters(end token.Kind) []*ast.Param {
	var params []*ast.Param
	for !p.check(end) && !p.eof() {
		if len(params) > 255 {
			p.errorCode(diag.SynTooManyParams, "Too many parameters, maximum is 255")
			return params
		}
		name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected parameter name")
		p.expect(token.Colon, diag.SynUnexpectedToken, "Expected ':' after parameter name")
		ty := p.parseType()
		params = append(params, &ast.Param{Name: name, Ty: ty, Pos: p.locFrom(name)})
		if !p.check(end) {
			p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after parameter")
		}
	}
	return params
}

// parseDeclGenerics reads a declaration-site '<T, U>' list. Only bare
// type variables are allowed here, enforced through typeVarOnly.
func (p *Parser) parseDeclGenerics() []ast.Type {
	var generics []ast.Type
	if !p.match(token.Lt) {
		return generics
	}
	p.genericDepth++
	for !p.check(token.Gt) && !p.eof() {
		p.typeVarOnly = true
		g := p.parseType()
		p.typeVarOnly = false
		generics = append(generics, g)
		if !p.check(token.Gt) {
			p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after generic type")
		}
	}
	p.expect(token.Gt, diag.SynUnexpectedToken, "Expected '>' after generic type")
	p.genericDepth--
	return generics
}

func (p *Parser) parseStruct() *ast.Struct {
	start := p.prev()
	access := p.modifier
	p.modifier = ast.AccessDefault

	name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected struct name")
	generics := p.parseDeclGenerics()
	p.expect(token.LBrace, diag.SynUnexpectedToken, "Expected '{' after struct name")

	var fields []*ast.Field
	for !p.check(token.RBrace) && !p.eof() {
		fields = append(fields, p.parseField())
		if !p.check(token.RBrace) {
			p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after field")
		}
	}
	p.expect(token.RBrace, diag.SynUnexpectedToken, "Expected '}' after struct declaration")

	return &ast.Struct{
		Access:   access,
		Name:     name,
		Generics: generics,
		Fields:   fields,
		Pos:      p.locFrom(start),
	}
}

func (p *Parser) parseField() *ast.Field {
	access := ast.AccessDefault
	switch {
	case p.match(token.KwPub):
		access = ast.AccessPub
	case p.match(token.KwPriv):
		access = ast.AccessPriv
	case p.match(token.KwProtected):
		access = ast.AccessProtected
	}
	name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected field name")
	p.expect(token.Colon, diag.SynUnexpectedToken, "Expected ':' after field name")
	ty := p.parseType()
	return &ast.Field{Access: access, Name: name, Ty: ty, Pos: p.locFrom(name)}
}

func (p *Parser) parseEnum() *ast.Enum {
	start := p.prev()
	access := p.modifier
	p.modifier = ast.AccessDefault

	name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected enum name")
	generics := p.parseDeclGenerics()
	p.expect(token.LBrace, diag.SynUnexpectedToken, "Expected '{' after enum name")

	var variants []*ast.Variant
	for !p.check(token.RBrace) && !p.eof() {
		variants = append(variants, p.parseVariant())
		if !p.check(token.RBrace) {
			p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after enum variant")
		}
	}
	p.expect(token.RBrace, diag.SynUnexpectedToken, "Expected '}' after enum declaration")

	return &ast.Enum{
		Access:   access,
		Name:     name,
		Generics: generics,
		Variants: variants,
		Pos:      p.locFrom(start),
	}
}

// parseVariant reads one enum alternative with an optional payload type
// list: 'Name' or 'Name(int, string)'.
func (p *Parser) parseVariant() *ast.Variant {
	name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected enum variant name")
	var payload []ast.Type
	if p.match(token.LParen) {
		for !p.check(token.RParen) && !p.eof() {
			payload = append(payload, p.parseType())
			if !p.check(token.RParen) {
				p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after enum variant field")
			}
		}
		p.expect(token.RParen, diag.SynUnexpectedToken, "Expected ')' after enum variant fields")
	}
	return &ast.Variant{Name: name, Payload: payload, Pos: p.locFrom(name)}
}

func (p *Parser) parseTrait() *ast.Trait {
	start := p.prev()
	access := p.modifier
	p.modifier = ast.AccessDefault

	name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected trait name")
	generics := p.parseDeclGenerics()
	p.expect(token.LBrace, diag.SynUnexpectedToken, "Expected '{' after trait name")

	var methods []*ast.Function
	for !p.check(token.RBrace) && !p.eof() {
		methods = append(methods, p.parseFunction(true))
		if !p.check(token.RBrace) {
			p.expect(token.Comma, diag.SynUnexpectedToken, "Expected ',' after trait method")
		}
	}
	p.expect(token.RBrace, diag.SynUnexpectedToken, "Expected '}' after trait declaration")

	return &ast.Trait{
		Access:   access,
		Name:     name,
		Generics: generics,
		Methods:  methods,
		Pos:      p.locFrom(start),
	}
}

// parseExtend reads 'extend Type<T> { ... }' or
// 'extend Trait<T> for Type<U> { ... }'. The first name is the trait
// only when a 'for' clause follows.
func (p *Parser) parseExtend() *ast.Extend {
	start := p.prev()
	firstName := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected struct or trait name")
	firstGenerics := p.parseDeclGenerics()

	var secondName *token.Token
	var secondGenerics []ast.Type
	if p.match(token.KwFor) {
		name := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected trait name")
		secondName = &name
		secondGenerics = p.parseDeclGenerics()
	}

	p.expect(token.LBrace, diag.SynUnexpectedToken, "Expected '{' after extend declaration")
	var methods []*ast.Function
	for !p.check(token.RBrace) && !p.eof() {
		switch {
		case p.match(token.KwPub):
			p.modifier = ast.AccessPub
		case p.match(token.KwPriv):
			p.modifier = ast.AccessPriv
		case p.match(token.KwProtected):
			p.modifier = ast.AccessProtected
		}
		p.expect(token.KwFunc, diag.SynUnexpectedToken, "Expected 'func' before extend method")
		methods = append(methods, p.parseFunction(true))
	}
	p.expect(token.RBrace, diag.SynUnexpectedToken, "Expected '}' after extend declaration")

	if secondName == nil {
		return &ast.Extend{
			Name:     firstName,
			Generics: firstGenerics,
			Methods:  methods,
			Pos:      p.locFrom(start),
		}
	}
	return &ast.Extend{
		Name:          *secondName,
		Generics:      secondGenerics,
		TraitName:     &firstName,
		TraitGenerics: firstGenerics,
		Methods:       methods,
		Pos:           p.locFrom(start),
	}
}

func (p *Parser) parseImport() *ast.Import {
	start := p.prev()
	path := p.expect(token.StringLit, diag.SynUnexpectedToken, "Expected import path")
	p.expect(token.KwAs, diag.SynUnexpectedToken, "Expected 'as' after import path")
	alias := p.expect(token.Ident, diag.SynExpectIdentifier, "Expected alias name")
	p.expect(token.Semicolon, diag.SynUnexpectedToken, "Expected ';' after import declaration")
	return &ast.Import{Path: path, Alias: alias, Pos: p.locFrom(start)}
}
