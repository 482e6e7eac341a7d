package syntax

import "github.com/termfx/sysml-core/token"

// Code is a closed, stable diagnostic identifier in the E0101..E0999
// range, styled after a CLIError/ErrorCode shape
// (internal/core/errorfmt.go, internal/model/errors.go): a small
// string-backed enum with a category and a recoverability classification,
// rather than a bag of ad hoc error strings.
type Code string

// Category groups codes the way IDE hosts typically bucket diagnostics.
type Category string

const (
	CategoryLexical     Category = "lexical"
	CategoryStructural  Category = "structural"
	CategoryDeclaration Category = "declaration"
	CategoryExpression  Category = "expression"
	CategoryImport      Category = "import"
	CategoryRelationship Category = "relationship"
	CategoryActionState Category = "action_state"
	CategoryRequirement Category = "requirement"
	CategoryGeneric     Category = "generic"
	CategoryInternal    Category = "internal"
)

const (
	// E01xx — lexical.
	E0101 Code = "E0101" // invalid character
	E0102 Code = "E0102" // unterminated string literal
	E0103 Code = "E0103" // unterminated block comment

	// E02xx — structural (braces/semicolons).
	E0201 Code = "E0201" // expected token
	E0202 Code = "E0202" // unclosed '{'
	E0203 Code = "E0203" // missing ';'
	E0204 Code = "E0204" // unexpected token, no recovery point found before EOF

	// E03xx — declarations.
	E0301 Code = "E0301" // missing identifier after declaration keyword
	E0302 Code = "E0302" // duplicate short name
	E0303 Code = "E0303" // unknown definition/usage keyword

	// E04xx — expressions.
	E0401 Code = "E0401" // expected expression
	E0402 Code = "E0402" // unbalanced parenthesis
	E0403 Code = "E0403" // invalid argument list
	E0404 Code = "E0404" // expected '}' to close arrow-invocation body

	// E05xx — imports.
	E0501 Code = "E0501" // malformed import target
	E0502 Code = "E0502" // missing qualified name after 'import'

	// E06xx — relationships.
	E0601 Code = "E0601" // expected relationship target
	E0602 Code = "E0602" // conflicting specialization keyword and operator form

	// E07xx — action/state.
	E0701 Code = "E0701" // malformed transition
	E0702 Code = "E0702" // malformed connector end list

	// E08xx — requirements.
	E0801 Code = "E0801" // malformed requirement constraint body

	// E09xx — generic / internal invariants. These should never fire on a
	// valid run; they indicate a bug in the parser itself, not in the
	// input: a distinct unrecoverable code.
	E0901 Code = "E0901" // internal: context stack underflow
	E0902 Code = "E0902" // internal: tree integrity violation
)

type codeInfo struct {
	category     Category
	message      string
	structural   bool
	recoverable  bool
}

var codeTable = map[Code]codeInfo{
	E0101: {CategoryLexical, "invalid character", false, true},
	E0102: {CategoryLexical, "unterminated string literal", false, true},
	E0103: {CategoryLexical, "unterminated block comment", false, true},

	E0201: {CategoryStructural, "unexpected token", true, true},
	E0202: {CategoryStructural, "unclosed '{'", true, true},
	E0203: {CategoryStructural, "missing ';'", true, true},
	E0204: {CategoryStructural, "unexpected token with no recovery point before end of file", true, false},

	E0301: {CategoryDeclaration, "expected an identifier", false, true},
	E0302: {CategoryDeclaration, "duplicate short name", false, true},
	E0303: {CategoryDeclaration, "unknown definition or usage keyword", false, true},

	E0401: {CategoryExpression, "expected an expression", false, true},
	E0402: {CategoryExpression, "unbalanced parenthesis", true, true},
	E0403: {CategoryExpression, "invalid argument list", false, true},
	E0404: {CategoryExpression, "expected '}' to close arrow-invocation body", true, true},

	E0501: {CategoryImport, "malformed import target", false, true},
	E0502: {CategoryImport, "expected a qualified name after 'import'", false, true},

	E0601: {CategoryRelationship, "expected a relationship target", false, true},
	E0602: {CategoryRelationship, "conflicting specialization forms", false, true},

	E0701: {CategoryActionState, "malformed transition", false, true},
	E0702: {CategoryActionState, "malformed connector end list", false, true},

	E0801: {CategoryRequirement, "malformed requirement constraint body", false, true},

	E0901: {CategoryInternal, "internal error: context stack underflow", false, false},
	E0902: {CategoryInternal, "internal error: tree integrity violation", false, false},
}

// Category returns the diagnostic category for c.
func (c Code) Category() Category { return codeTable[c].category }

// DefaultMessage returns the default single-line message template for c.
func (c Code) DefaultMessage() string { return codeTable[c].message }

// IsStructural reports whether c represents a brace/semicolon-class error.
func (c Code) IsStructural() bool { return codeTable[c].structural }

// IsRecoverable reports whether the parser can keep producing a usable
// tree after emitting c.
func (c Code) IsRecoverable() bool { return codeTable[c].recoverable }

// Severity classifies a Diagnostic the way a host IDE would.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// RelatedInfo pairs a secondary message with a secondary range — used for
// e.g. pointing at the opening brace of an unclosed block.
type RelatedInfo struct {
	Message string
	Range   token.Range
}

// Diagnostic is one emitted parser error or warning.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Range    token.Range
	Message  string
	Hint     string
	Related  []RelatedInfo
}
