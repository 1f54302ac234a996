package lexer

import "sable/internal/token"

// scanNumber consumes an integer or float literal. A dot only makes a
// float when a digit follows it, so "1." lexes as IntLit followed by Dot
// and "1..2" keeps its range operator.
func (lx *Lexer) scanNumber() {
	for isDigit(lx.peek()) {
		lx.advance()
	}
	if lx.peek() == '.' && isDigit(lx.peekNext()) {
		lx.advance()
		for isDigit(lx.peek()) {
			lx.advance()
		}
		lx.addToken(token.FloatLit)
		return
	}
	lx.addToken(token.IntLit)
}
