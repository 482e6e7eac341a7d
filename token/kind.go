// Package token defines the terminal token kinds shared by the lexer,
// parser core, and both dialect grammars.
package token

// Kind identifies the lexical category of a token. The lexer only ever
// produces the "raw" kinds (trivia, literals, punctuation, and a single
// generic Ident kind); keyword kinds are assigned later by the parser,
// which reclassifies an Ident token's Kind once it knows the language mode
// and the grammatical position — the lexer itself never looks at a
// per-dialect keyword table.
type Kind uint16

const (
	// Error and structural bookkeeping.
	Error Kind = iota
	EOF

	// Trivia — always preserved, never dropped.
	Whitespace
	LineComment
	BlockComment

	// Names and literals.
	Ident
	IntLiteral
	RealLiteral
	StringLiteral

	// Punctuation.
	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	Semicolon // ;
	Colon     // :
	ColonColon
	ColonGT      // :>
	ColonGTGT    // :>>
	ColonColonGT // ::>
	Comma
	Dot
	DotDot // ..
	Arrow  // ->
	FatArrow
	Hash     // #
	At       // @
	AtAt     // @@
	Question // ?
	QuestionQuestion
	QuestionDot // .?
	Backtick

	// Operators.
	Eq
	EqEq
	NotEq
	EqEqEq
	NotEqEq
	Lt
	GT
	LE
	GE
	Plus
	Minus
	Star
	Slash
	Percent
	StarStar // **
	Caret    // ^
	Amp      // &
	Pipe     // |
	Tilde    // ~
	Underscore

	// Keyword kinds. These never come directly out of the lexer; the
	// parser reclassifies an Ident token into one of these once the
	// dialect's keyword table confirms the spelling, via Parser.BumpAs.
	KwPackage
	KwLibrary
	KwPrivate
	KwProtected
	KwPublic
	KwImport
	KwAlias
	KwAs
	KwFor
	KwDependency
	KwFrom
	KwTo
	KwDoc
	KwComment
	KwAbout
	KwLocale
	KwFilter
	KwSpecializes
	KwSubsets
	KwRedefines
	KwReferences
	KwTypedBy
	KwConjugates
	KwConjugate
	KwDisjoint
	KwUnions
	KwIntersects
	KwDifferences
	KwInverseOf
	KwChains
	KwFeatured
	KwBy
	KwClass
	KwStruct
	KwDatatype
	KwBehavior
	KwFunction
	KwClassifier
	KwInteraction
	KwPredicate
	KwMetaclass
	KwAssoc
	KwAssociation
	KwAbstract
	KwVariation
	KwReadonly
	KwDerived
	KwComposite
	KwPortion
	KwIndividual
	KwConst
	KwEnd
	KwIn
	KwOut
	KwInout
	KwReturn
	KwFeature
	KwDef
	KwPart
	KwItem
	KwPort
	KwAction
	KwState
	KwCalc
	KwCalculation
	KwConstraint
	KwRequirement
	KwConcern
	KwAllocation
	KwConnection
	KwInterface
	KwFlow
	KwMessage
	KwView
	KwViewpoint
	KwRendering
	KwMetadata
	KwEnum
	KwEnumeration
	KwAttribute
	KwOccurrence
	KwUseCase
	KwAnalysis
	KwVerification
	KwVerify
	KwSatisfy
	KwExhibit
	KwInclude
	KwAssert
	KwAssume
	KwRequire
	KwFrame
	KwSubject
	KwActor
	KwStakeholder
	KwObjective
	KwRef
	KwVar
	KwSnapshot
	KwTimeslice
	KwSuccession
	KwThen
	KwFirst
	KwIf
	KwElse
	KwWhile
	KwLoop
	KwUntil
	KwDo
	KwEntry
	KwExit
	KwFork
	KwJoin
	KwMerge
	KwDecide
	KwAccept
	KwSend
	KwVia
	KwAt
	KwAfter
	KwWhen
	KwTransition
	KwTransitionTo
	KwConnect
	KwBind
	KwAssign
	KwAllocate
	KwNew
	KwExpose
	KwRender
	KwAll
	KwAnd
	KwOr
	KwXor
	KwNot
	KwImplies
	KwIstype
	KwHastype
	KwMeta
	KwTrue
	KwFalse
	KwNull
	KwNonunique
	KwOrdered
	KwUnique
	KwDefault
	KwMultiplicity
	KwExpr
	KwBooleanExpression
	KwInv
	KwLanguage
	KwComment2 // reserved slot kept for keyword table alignment

	kindSentinel
)

// IsKeyword reports whether k is one of the reclassified keyword kinds.
func IsKeyword(k Kind) bool { return k >= KwPackage && k < kindSentinel }

// IsTrivia reports whether k is whitespace or a comment.
func IsTrivia(k Kind) bool { return k == Whitespace || k == LineComment || k == BlockComment }

var names = map[Kind]string{
	Error: "ERROR", EOF: "EOF",
	Whitespace: "WHITESPACE", LineComment: "LINE_COMMENT", BlockComment: "BLOCK_COMMENT",
	Ident: "IDENT", IntLiteral: "INT_LITERAL", RealLiteral: "REAL_LITERAL", StringLiteral: "STRING_LITERAL",
	LBrace: "{", RBrace: "}", LParen: "(", RParen: ")", LBracket: "[", RBracket: "]",
	Semicolon: ";", Colon: ":", ColonColon: "::", ColonGT: ":>", ColonGTGT: ":>>", ColonColonGT: "::>",
	Comma: ",", Dot: ".", DotDot: "..", Arrow: "->", FatArrow: "=>",
	Hash: "#", At: "@", AtAt: "@@", Question: "?", QuestionQuestion: "??", QuestionDot: ".?", Backtick: "`",
	Eq: "=", EqEq: "==", NotEq: "!=", EqEqEq: "===", NotEqEq: "!==",
	Lt: "<", GT: ">", LE: "<=", GE: ">=",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", StarStar: "**", Caret: "^",
	Amp: "&", Pipe: "|", Tilde: "~", Underscore: "_",
}

// String returns a debug-friendly label for k, falling back to the
// keyword's canonical spelling for keyword kinds.
func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	if IsKeyword(k) {
		if spelling, ok := KeywordSpelling[k]; ok {
			return spelling
		}
	}
	return "UNKNOWN"
}
