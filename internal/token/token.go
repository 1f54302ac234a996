package token

import (
	"fmt"

	"sable/internal/source"
)

// Token is a single lexeme. Text is the exact source slice; Span holds the
// column range on Line (columns reset at every newline).
type Token struct {
	Kind Kind
	Text string
	Line uint32
	Span source.Span
}

// Loc returns the token's position as a line-pinned span.
func (t Token) Loc() source.Loc {
	return source.Loc{Line: t.Line, Span: t.Span}
}

func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("%d:%s EOF", t.Line, t.Span)
	}
	return fmt.Sprintf("%d:%s %s %q", t.Line, t.Span, t.Kind, t.Text)
}
