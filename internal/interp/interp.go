// Package interp splits string literals into plain text runs and
// embedded '\(expression)' segments. Each expression is re-lexed at its
// original position in the file, so every token a segment yields
// carries spans that point back into the source string.
package interp

import (
	"sable/internal/lexer"
	"sable/internal/source"
	"sable/internal/token"
)

// Part is one segment of an interpolated string. Exactly one of Text
// and Tokens is meaningful: a text run carries the raw characters, an
// expression segment carries its lexed tokens (without the trailing
// EOF).
type Part struct {
	Text   string
	Tokens []token.Token
	Loc    source.Loc
}

// IsExpr reports whether the part is an embedded expression.
func (p Part) IsExpr() bool {
	return p.Tokens != nil
}

// Parts splits the string literal tok. The token text must include the
// surrounding quotes, as the lexer produces it. Options are passed to
// the nested lexer so unterminated or malformed embedded expressions
// surface through the usual reporter.
func Parts(file *source.File, tok token.Token, opts lexer.Options) []Part {
	text := tok.Text
	if len(text) >= 2 {
		text = text[1 : len(text)-1]
	}

	line := tok.Line
	col := tok.Span.Start + 1 // skip the opening quote

	var parts []Part
	textStart := 0
	textLine, textCol := line, col

	flush := func(end int) {
		if end > textStart {
			parts = append(parts, Part{
				Text: text[textStart:end],
				Loc: source.Loc{
					Line: textLine,
					Span: source.NewSpan(textCol, col),
				},
			})
		}
	}

	i := 0
	for i < len(text) {
		if text[i] == '\n' {
			line++
			col = 0
			i++
			continue
		}
		if text[i] == '\\' && i+1 < len(text) && text[i+1] == '(' {
			flush(i)

			exprLine, exprCol := line, col+2
			end, ok := matchParen(text, i+2)
			if !ok {
				// no closing paren: treat the rest as plain text
				textStart = i
				textLine, textCol = line, col
				i = len(text)
				break
			}

			inner := text[i+2 : end]
			sub := source.NewVirtual(file.Name, []byte(inner))
			toks := lexer.NewAt(sub, opts, exprLine, exprCol).ScanTokens()
			if n := len(toks); n > 0 && toks[n-1].Kind == token.EOF {
				toks = toks[:n-1]
			}
			parts = append(parts, Part{
				Tokens: toks,
				Loc: source.Loc{
					Line: exprLine,
					Span: source.NewSpan(exprCol, advanceCols(exprCol, inner)),
				},
			})

			col += 2 // '\('
			for _, b := range []byte(inner) {
				if b == '\n' {
					line++
					col = 0
				} else {
					col++
				}
			}
			col++ // ')'
			i = end + 1
			textStart = i
			textLine, textCol = line, col
			continue
		}
		if text[i] == '\\' && i+1 < len(text) {
			// other escapes stay in the text run
			col += 2
			i += 2
			continue
		}
		col++
		i++
	}
	flush(len(text))
	return parts
}

// matchParen returns the index of the ')' balancing the '(' that ends
// at start-1, skipping nested parens and string escapes.
func matchParen(s string, start int) (int, bool) {
	depth := 1
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func advanceCols(col uint32, s string) uint32 {
	for _, b := range []byte(s) {
		if b == '\n' {
			col = 0
		} else {
			col++
		}
	}
	return col
}
