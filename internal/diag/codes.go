package diag

// Code is a stable identifier for a diagnostic class. The numeric blocks
// group codes by phase: 0xxx I/O, 1xxx lexical, 2xxx syntactic, 3xxx
// semantic.
type Code uint16

const (
	CodeNone Code = 0

	// IOLoadFile reports a file that could not be read.
	IOLoadFile Code = 1

	// LexUnexpectedChar reports a byte no token can start with.
	LexUnexpectedChar Code = 1001
	// LexUnterminatedString reports a string or char literal without its
	// closing delimiter.
	LexUnterminatedString Code = 1002

	// SynUnexpectedToken reports a token the grammar cannot accept here.
	SynUnexpectedToken Code = 2001
	// SynExpectIdentifier reports a missing identifier.
	SynExpectIdentifier Code = 2002
	// SynExpectType reports a missing type annotation.
	SynExpectType Code = 2003
	// SynTooManyParams reports a parameter or argument list over the limit.
	SynTooManyParams Code = 2004
	// SynMisplacedModifier reports an access modifier on a declaration that
	// does not take one.
	SynMisplacedModifier Code = 2005
	// SynExpectModuleHeader reports a file that does not start with a
	// module declaration.
	SynExpectModuleHeader Code = 2006

	// SemaUndefinedIdent reports a name with no visible binding.
	SemaUndefinedIdent Code = 3001
	// SemaTypeMismatch reports a value of one type used where another is
	// required.
	SemaTypeMismatch Code = 3002
	// SemaNotCallable reports a call whose callee is not a function.
	SemaNotCallable Code = 3003
	// SemaArityMismatch reports a call with the wrong number of arguments.
	SemaArityMismatch Code = 3004
	// SemaInvalidOperands reports a binary operator applied to operand
	// types it does not accept.
	SemaInvalidOperands Code = 3005
	// SemaReturnMismatch reports a return value incompatible with the
	// enclosing function's declared result.
	SemaReturnMismatch Code = 3006
	// SemaDuplicateDecl reports a top-level name declared twice.
	SemaDuplicateDecl Code = 3007
)

var codeIDs = map[Code]string{
	IOLoadFile:            "IO0001",
	LexUnexpectedChar:     "LEX1001",
	LexUnterminatedString: "LEX1002",
	SynUnexpectedToken:    "SYN2001",
	SynExpectIdentifier:   "SYN2002",
	SynExpectType:         "SYN2003",
	SynTooManyParams:      "SYN2004",
	SynMisplacedModifier:  "SYN2005",
	SynExpectModuleHeader: "SYN2006",
	SemaUndefinedIdent:    "SEM3001",
	SemaTypeMismatch:      "SEM3002",
	SemaNotCallable:       "SEM3003",
	SemaArityMismatch:     "SEM3004",
	SemaInvalidOperands:   "SEM3005",
	SemaReturnMismatch:    "SEM3006",
	SemaDuplicateDecl:     "SEM3007",
}

func (c Code) String() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return "XXX0000"
}
