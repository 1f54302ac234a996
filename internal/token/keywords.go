package token

var keywords = map[string]Kind{
	"module":    KwModule,
	"import":    KwImport,
	"as":        KwAs,
	"let":       KwLet,
	"func":      KwFunc,
	"struct":    KwStruct,
	"enum":      KwEnum,
	"trait":     KwTrait,
	"extend":    KwExtend,
	"extern":    KwExtern,
	"type":      KwType,
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
	"for":       KwFor,
	"in":        KwIn,
	"break":     KwBreak,
	"continue":  KwContinue,
	"return":    KwReturn,
	"match":     KwMatch,
	"case":      KwCase,
	"pub":       KwPub,
	"priv":      KwPriv,
	"protected": KwProtected,
	"true":      KwTrue,
	"false":     KwFalse,
	"null":      KwNull,
	"_":         Underscore,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case sensitive, only lowercase spellings are recognised.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
