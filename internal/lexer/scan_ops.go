package lexer

import (
	"fmt"

	"sable/internal/diag"
	"sable/internal/token"
)

// scanOperator resolves punctuation with maximal munch: the longest
// spelling wins, so '==' never splits into two '=' tokens.
func (lx *Lexer) scanOperator(c byte) {
	switch c {
	case '+':
		lx.addIf('=', token.PlusAssign, token.Plus)
	case '-':
		switch {
		case lx.match('>'):
			lx.addToken(token.Arrow)
		case lx.match('='):
			lx.addToken(token.MinusAssign)
		default:
			lx.addToken(token.Minus)
		}
	case '*':
		switch {
		case lx.match('*'):
			lx.addToken(token.StarStar)
		case lx.match('='):
			lx.addToken(token.StarAssign)
		default:
			lx.addToken(token.Star)
		}
	case '/':
		// '//' comments are consumed in scanToken; only '/' and '/=' land here
		lx.addIf('=', token.SlashAssign, token.Slash)
	case '%':
		lx.addIf('=', token.PercentAssign, token.Percent)
	case '^':
		lx.addIf('=', token.CaretAssign, token.Caret)
	case '&':
		switch {
		case lx.match('&'):
			lx.addToken(token.AndAnd)
		case lx.match('='):
			lx.addToken(token.AmpAssign)
		default:
			lx.addToken(token.Amp)
		}
	case '|':
		switch {
		case lx.match('|'):
			lx.addToken(token.OrOr)
		case lx.match('='):
			lx.addToken(token.PipeAssign)
		default:
			lx.addToken(token.Pipe)
		}
	case '=':
		lx.addIf('=', token.EqEq, token.Assign)
	case '!':
		lx.addIf('=', token.BangEq, token.Bang)
	case '<':
		lx.addIf('=', token.LtEq, token.Lt)
	case '>':
		lx.addIf('=', token.GtEq, token.Gt)
	case '.':
		lx.addIf('.', token.DotDot, token.Dot)
	case '?':
		lx.addIf('?', token.QuestionQuestion, token.Question)
	case '(':
		lx.addToken(token.LParen)
	case ')':
		lx.addToken(token.RParen)
	case '{':
		lx.addToken(token.LBrace)
	case '}':
		lx.addToken(token.RBrace)
	case '[':
		lx.addToken(token.LBracket)
	case ']':
		lx.addToken(token.RBracket)
	case ',':
		lx.addToken(token.Comma)
	case ';':
		lx.addToken(token.Semicolon)
	case ':':
		lx.addToken(token.Colon)
	case '#':
		lx.addToken(token.Hash)
	default:
		lx.addInvalid(diag.LexUnexpectedChar, fmt.Sprintf("unexpected token '%s'", lx.text()), true)
	}
}

func (lx *Lexer) addIf(next byte, long, short token.Kind) {
	if lx.match(next) {
		lx.addToken(long)
	} else {
		lx.addToken(short)
	}
}
