package lexer

import (
	"sable/internal/diag"
	"sable/internal/token"
)

// scanString consumes a string or char literal. Literals may span lines;
// an unterminated literal produces a single Invalid token covering the
// rest of the input and exactly one diagnostic.
func (lx *Lexer) scanString(delim byte) {
	for !lx.eof() {
		b := lx.peek()
		if b == delim {
			lx.advance()
			if delim == '\'' {
				lx.addToken(token.CharLit)
			} else {
				lx.addToken(token.StringLit)
			}
			return
		}
		if b == '\\' {
			// eat the backslash and whatever it escapes, including \( for
			// interpolation; validation happens later
			lx.advance()
			if lx.eof() {
				break
			}
			if lx.peek() == '\n' {
				lx.newline()
				lx.off++
				continue
			}
			lx.advance()
			continue
		}
		if b == '\n' {
			lx.newline()
			lx.off++
			continue
		}
		lx.advance()
	}
	what := "string"
	if delim == '\'' {
		what = "char"
	}
	lx.addInvalid(diag.LexUnterminatedString, "unterminated "+what+" literal", false)
}
