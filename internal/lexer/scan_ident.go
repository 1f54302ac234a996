package lexer

import "sable/internal/token"

// scanIdent consumes an identifier and reclassifies it as a keyword when
// the keyword table says so. A lone '_' becomes Underscore.
func (lx *Lexer) scanIdent() {
	for isIdentPart(lx.peek()) {
		lx.advance()
	}
	if kind, ok := token.LookupKeyword(lx.text()); ok {
		lx.addToken(kind)
		return
	}
	lx.addToken(token.Ident)
}
