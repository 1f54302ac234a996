package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/token"
)

// Lexer scans a File into a flat token slice in one forward pass.
// Columns are line-relative and reset at each newline; erroneous bytes
// become Invalid tokens and are reported in a batch after the scan.
type Lexer struct {
	file *source.File
	opts Options
	src  []byte

	start     int // byte offset of the current token
	off       int // byte offset of the cursor
	line      uint32
	startLine uint32
	colStart  uint32
	col       uint32

	tokens  []token.Token
	pending []pendingErr
}

type pendingErr struct {
	tok  token.Token
	code diag.Code
	msg  string
	// fixable errors get a "Remove this character" suggestion
	fixable bool
}

// New returns a lexer positioned at the start of file.
func New(file *source.File, opts Options) *Lexer {
	return NewAt(file, opts, 1, 0)
}

// NewAt returns a lexer whose cursor pretends to sit at line/col. The
// interpolation scanner uses this to map tokens scanned from an embedded
// fragment back onto the enclosing literal's coordinates.
func NewAt(file *source.File, opts Options, line, col uint32) *Lexer {
	if _, err := safecast.Conv[uint32](len(file.Content)); err != nil {
		panic(fmt.Errorf("source file %q too large: %w", file.Name, err))
	}
	return &Lexer{
		file: file,
		opts: opts,
		src:  file.Content,
		line: line,
		col:  col,
	}
}

// ScanTokens scans the whole input and returns the token slice, always
// terminated by a single EOF token. Lexical errors are reported through
// the configured Reporter after the scan completes.
func (lx *Lexer) ScanTokens() []token.Token {
	for !lx.eof() {
		lx.start = lx.off
		lx.startLine = lx.line
		lx.colStart = lx.col
		lx.scanToken()
	}
	lx.tokens = append(lx.tokens, token.Token{
		Kind: token.EOF,
		Line: lx.line,
		Span: source.NewSpan(lx.col, lx.col),
	})
	lx.reportPending()
	return lx.tokens
}

func (lx *Lexer) scanToken() {
	c := lx.advance()
	switch {
	case c == ' ' || c == '\t' || c == '\r':
		// skip
	case c == '\n':
		lx.newline()
	case c == '/' && lx.match('/'):
		for !lx.eof() && lx.peek() != '\n' {
			lx.advance()
		}
	case c == '"' || c == '\'':
		lx.scanString(c)
	case isDigit(c):
		lx.scanNumber()
	case isIdentStart(c):
		lx.scanIdent()
	default:
		lx.scanOperator(c)
	}
}

func (lx *Lexer) eof() bool {
	return lx.off >= len(lx.src)
}

func (lx *Lexer) peek() byte {
	if lx.eof() {
		return 0
	}
	return lx.src[lx.off]
}

func (lx *Lexer) peekNext() byte {
	if lx.off+1 >= len(lx.src) {
		return 0
	}
	return lx.src[lx.off+1]
}

func (lx *Lexer) advance() byte {
	c := lx.src[lx.off]
	lx.off++
	lx.col++
	return c
}

// match consumes the next byte only if it equals expected.
func (lx *Lexer) match(expected byte) bool {
	if lx.eof() || lx.src[lx.off] != expected {
		return false
	}
	lx.off++
	lx.col++
	return true
}

func (lx *Lexer) newline() {
	lx.line++
	lx.col = 0
}

func (lx *Lexer) text() string {
	return string(lx.src[lx.start:lx.off])
}

func (lx *Lexer) addToken(kind token.Kind) {
	lx.tokens = append(lx.tokens, token.Token{
		Kind: kind,
		Text: lx.text(),
		Line: lx.startLine,
		Span: source.NewSpan(lx.colStart, lx.col),
	})
}

// addInvalid emits an Invalid token into the stream and queues its
// diagnostic for the post-scan batch.
func (lx *Lexer) addInvalid(code diag.Code, msg string, fixable bool) {
	tok := token.Token{
		Kind: token.Invalid,
		Text: lx.text(),
		Line: lx.startLine,
		Span: source.NewSpan(lx.colStart, lx.col),
	}
	lx.tokens = append(lx.tokens, tok)
	lx.pending = append(lx.pending, pendingErr{tok: tok, code: code, msg: msg, fixable: fixable})
}

func (lx *Lexer) reportPending() {
	if lx.opts.Reporter == nil {
		return
	}
	for _, pe := range lx.pending {
		rb := diag.ReportError(lx.opts.Reporter, pe.code, pe.tok.Loc(), pe.msg)
		if pe.fixable {
			rb = rb.WithFix("Remove this character", diag.FixEdit{Loc: pe.tok.Loc()})
		}
		rb.Emit()
	}
	lx.pending = nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
