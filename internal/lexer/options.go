package lexer

import "sable/internal/diag"

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil, in which case
	// errors still surface as Invalid tokens in the stream.
	Reporter diag.Reporter
}
