package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Underscore represents the standalone '_' token.
	Underscore // _

	// KwModule represents the 'module' keyword.
	KwModule // module
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwFunc represents the 'func' keyword.
	KwFunc // func
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwExtend represents the 'extend' keyword.
	KwExtend // extend
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwType represents the 'type' keyword.
	KwType // type
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwPriv represents the 'priv' keyword.
	KwPriv // priv
	// KwProtected represents the 'protected' keyword.
	KwProtected // protected
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the string literal token.
	StringLit
	// CharLit represents the character literal token.
	CharLit

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// Semicolon represents ';'.
	Semicolon // ;
	// Colon represents ':'.
	Colon // :
	// Question represents '?'.
	Question // ?
	// Hash represents '#'.
	Hash // #

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Caret represents the caret operator token.
	Caret // ^
	// Amp represents the ampersand operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Lt represents the less-than operator token.
	Lt // <
	// Gt represents the greater-than operator token.
	Gt // >
	// Assign represents the assignment operator token.
	Assign // =
	// Bang represents the logical-not operator token.
	Bang // !

	// EqEq represents '=='.
	EqEq // ==
	// BangEq represents '!='.
	BangEq // !=
	// LtEq represents '<='.
	LtEq // <=
	// GtEq represents '>='.
	GtEq // >=
	// AndAnd represents '&&'.
	AndAnd // &&
	// OrOr represents '||'.
	OrOr // ||
	// StarStar represents the exponent operator '**'.
	StarStar // **
	// DotDot represents the range operator '..'.
	DotDot // ..
	// Arrow represents '->'.
	Arrow // ->
	// QuestionQuestion represents the null-coalescing operator '??'.
	QuestionQuestion // ??
	// PlusAssign represents '+='.
	PlusAssign // +=
	// MinusAssign represents '-='.
	MinusAssign // -=
	// StarAssign represents '*='.
	StarAssign // *=
	// SlashAssign represents '/='.
	SlashAssign // /=
	// PercentAssign represents '%='.
	PercentAssign // %=
	// CaretAssign represents '^='.
	CaretAssign // ^=
	// AmpAssign represents '&='.
	AmpAssign // &=
	// PipeAssign represents '|='.
	PipeAssign // |=

	kindCount
)

var kindNames = [...]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	Underscore:       "Underscore",
	KwModule:         "module",
	KwImport:         "import",
	KwAs:             "as",
	KwLet:            "let",
	KwFunc:           "func",
	KwStruct:         "struct",
	KwEnum:           "enum",
	KwTrait:          "trait",
	KwExtend:         "extend",
	KwExtern:         "extern",
	KwType:           "type",
	KwIf:             "if",
	KwElse:           "else",
	KwWhile:          "while",
	KwFor:            "for",
	KwIn:             "in",
	KwBreak:          "break",
	KwContinue:       "continue",
	KwReturn:         "return",
	KwMatch:          "match",
	KwCase:           "case",
	KwPub:            "pub",
	KwPriv:           "priv",
	KwProtected:      "protected",
	KwTrue:           "true",
	KwFalse:          "false",
	KwNull:           "null",
	IntLit:           "IntLit",
	FloatLit:         "FloatLit",
	StringLit:        "StringLit",
	CharLit:          "CharLit",
	LParen:           "(",
	RParen:           ")",
	LBrace:           "{",
	RBrace:           "}",
	LBracket:         "[",
	RBracket:         "]",
	Comma:            ",",
	Dot:              ".",
	Semicolon:        ";",
	Colon:            ":",
	Question:         "?",
	Hash:             "#",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	Slash:            "/",
	Percent:          "%",
	Caret:            "^",
	Amp:              "&",
	Pipe:             "|",
	Lt:               "<",
	Gt:               ">",
	Assign:           "=",
	Bang:             "!",
	EqEq:             "==",
	BangEq:           "!=",
	LtEq:             "<=",
	GtEq:             ">=",
	AndAnd:           "&&",
	OrOr:             "||",
	StarStar:         "**",
	DotDot:           "..",
	Arrow:            "->",
	QuestionQuestion: "??",
	PlusAssign:       "+=",
	MinusAssign:      "-=",
	StarAssign:       "*=",
	SlashAssign:      "/=",
	PercentAssign:    "%=",
	CaretAssign:      "^=",
	AmpAssign:        "&=",
	PipeAssign:       "|=",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwModule && k <= KwNull
}

// IsLiteral reports whether k is a literal class.
func (k Kind) IsLiteral() bool {
	return k >= IntLit && k <= CharLit
}

// IsAssignment reports whether k is '=' or a member of the compound
// assignment family.
func (k Kind) IsAssignment() bool {
	return k == Assign || (k >= PlusAssign && k <= PipeAssign)
}

// IsComparison reports whether k compares two operands.
func (k Kind) IsComparison() bool {
	switch k {
	case Lt, Gt, LtEq, GtEq, EqEq, BangEq:
		return true
	}
	return false
}
