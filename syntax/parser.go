package syntax

import (
	"fmt"
	"strings"

	stoken "github.com/termfx/sysml-core/token"
)

// Parser is the shared, hand-written recursive-descent core. It is
// event-driven: dialect grammars and the expression sublanguage
// call its typed primitives, which forward StartNode/Token/FinishNode/Error
// events into a Builder. Parser never recurses through anything but
// ordinary Go function calls for grammar productions; the only *explicit*
// stack it keeps is the Context stack used for error messages and
// recovery-token-set lookups ("context stack, not
// recursion-only").
//
// Every exported method here is part of the grammar-host contract: the
// expression sublanguage and both dialect grammars live in separate
// packages and drive a *Parser purely through this surface, the way two
// language providers share one grammar trait.
type Parser struct {
	toks    []stoken.Token
	pos     int
	dialect stoken.Dialect
	builder *Builder
	ctx     []Context
}

// NewParser creates a Parser over src's raw token stream for the given
// dialect. Construction never fails: the lexer already guarantees full
// coverage of src regardless of content.
func NewParser(src string, dialect stoken.Dialect) *Parser {
	p := &Parser{
		toks:    stoken.Lex(src),
		dialect: dialect,
		builder: NewBuilder(),
		ctx:     []Context{ContextTopLevel},
	}
	p.flagUnterminatedLiterals()
	return p
}

// flagUnterminatedLiterals scans the raw token stream for the lexer's
// Error-kind tokens that cover an unterminated string or block comment
// and raises the matching diagnostic. The lexer itself stays
// context-free and never emits diagnostics directly.
func (p *Parser) flagUnterminatedLiterals() {
	for _, t := range p.toks {
		if t.Kind != stoken.Error {
			continue
		}
		switch {
		case strings.HasPrefix(t.Text, `"`):
			p.builder.Error(Diagnostic{Code: E0102, Severity: SeverityError, Range: t.Range, Message: "unterminated string literal"})
		case strings.HasPrefix(t.Text, "/*"):
			p.builder.Error(Diagnostic{Code: E0103, Severity: SeverityError, Range: t.Range, Message: "unterminated block comment"})
		}
	}
}

// Dialect returns the language mode this parser was constructed with.
func (p *Parser) Dialect() stoken.Dialect { return p.dialect }

// Pos returns the parser's raw token-stream cursor. Dialect grammars live
// in separate packages and cannot see the unexported field directly; this
// is the same progress check ParseBracedBody uses internally, exposed so
// a top-level member loop outside this package can guarantee termination
// the same way.
func (p *Parser) Pos() int { return p.pos }

// ---- token inspection -------------------------------------------------

// nthSignificant returns the raw index of the nth non-trivia token at or
// after pos (n=0 is "current"), without mutating any state.
func (p *Parser) nthSignificant(n int) int {
	i := p.pos
	for {
		if i >= len(p.toks) {
			return len(p.toks) - 1 // EOF is always the last token
		}
		if !stoken.IsTrivia(p.toks[i].Kind) {
			if n == 0 {
				return i
			}
			n--
		}
		i++
	}
}

// Current returns the next significant (non-trivia) token without
// consuming it or any leading trivia.
func (p *Parser) Current() stoken.Token {
	return p.toks[p.nthSignificant(0)]
}

// Peek returns the nth significant token ahead of current (Peek(0) ==
// Current()).
func (p *Parser) Peek(n int) stoken.Token {
	return p.toks[p.nthSignificant(n)]
}

// At reports whether Current's kind is k.
func (p *Parser) At(k stoken.Kind) bool { return p.Current().Kind == k }

// AtAny reports whether Current's kind is any of ks.
func (p *Parser) AtAny(ks ...stoken.Kind) bool {
	c := p.Current().Kind
	for _, k := range ks {
		if c == k {
			return true
		}
	}
	return false
}

// AtEOF reports whether the cursor has reached end of input.
func (p *Parser) AtEOF() bool { return p.At(stoken.EOF) }

// AtKeyword reports whether Current is an identifier spelled exactly like
// the named keyword in the parser's dialect. It does not consume.
func (p *Parser) AtKeyword(spelling string) bool {
	c := p.Current()
	if c.Kind != stoken.Ident {
		return false
	}
	kind, ok := stoken.LookupKeyword(p.dialect, spelling)
	if !ok {
		return false
	}
	expected, _ := stoken.LookupKeyword(p.dialect, c.Text)
	return c.Text == spelling && expected == kind
}

// AtAnyKeyword reports whether Current matches any of the given spellings.
func (p *Parser) AtAnyKeyword(spellings ...string) bool {
	for _, s := range spellings {
		if p.AtKeyword(s) {
			return true
		}
	}
	return false
}

// PeekKeyword reports whether the nth significant token ahead is spelled
// like the named keyword, without consuming anything.
func (p *Parser) PeekKeyword(n int, spelling string) bool {
	c := p.Peek(n)
	if c.Kind != stoken.Ident {
		return false
	}
	kind, ok := stoken.LookupKeyword(p.dialect, spelling)
	if !ok {
		return false
	}
	expected, _ := stoken.LookupKeyword(p.dialect, c.Text)
	return c.Text == spelling && expected == kind
}

// ---- consumption -------------------------------------------------------

// flushTrivia pushes every trivia token between pos and the next
// significant token into the currently open node, advancing pos. This is
// the trivia-attachment policy: trivia attaches to whichever node is
// open at the moment it is encountered.
func (p *Parser) flushTrivia() {
	for p.pos < len(p.toks) && stoken.IsTrivia(p.toks[p.pos].Kind) {
		p.builder.Token(p.toks[p.pos])
		p.pos++
	}
}

// FlushTriviaExceptBlockComments is the variant used where a following
// block comment should remain available to be read as a leading doc
// comment by a not-yet-opened sibling node, rather than being swallowed
// into the node that is currently open.
func (p *Parser) FlushTriviaExceptBlockComments() {
	for p.pos < len(p.toks) {
		k := p.toks[p.pos].Kind
		if !stoken.IsTrivia(k) || k == stoken.BlockComment {
			return
		}
		p.builder.Token(p.toks[p.pos])
		p.pos++
	}
}

// Bump consumes (and attaches leading trivia for) the current significant
// token verbatim.
func (p *Parser) Bump() stoken.Token {
	p.flushTrivia()
	tok := p.toks[p.pos]
	p.builder.Token(tok)
	if tok.Kind != stoken.EOF {
		p.pos++
	}
	return tok
}

// BumpAs consumes the current token but records it in the tree with kind
// reclassified to `as` (used when an Ident has been recognized as a
// contextual keyword).
func (p *Parser) BumpAs(as stoken.Kind) stoken.Token {
	p.flushTrivia()
	tok := p.toks[p.pos]
	p.builder.TokenAs(as, tok.Text)
	if tok.Kind != stoken.EOF {
		p.pos++
	}
	return tok
}

// BumpKeyword consumes current as the keyword kind for `spelling`; callers
// must have already verified AtKeyword(spelling).
func (p *Parser) BumpKeyword(spelling string) stoken.Token {
	kind, _ := stoken.LookupKeyword(p.dialect, spelling)
	return p.BumpAs(kind)
}

// Expect consumes current if it matches k; otherwise it emits an error and
// does NOT consume, leaving the mismatched token for the caller's own
// recovery to handle.
func (p *Parser) Expect(k stoken.Kind) bool {
	if p.At(k) {
		p.Bump()
		return true
	}
	p.errorExpected(k.String())
	return false
}

// ExpectKeyword is the keyword analogue of Expect.
func (p *Parser) ExpectKeyword(spelling string) bool {
	if p.AtKeyword(spelling) {
		p.BumpKeyword(spelling)
		return true
	}
	p.errorExpected("'" + spelling + "'")
	return false
}

// ---- node construction --------------------------------------------------

// Start opens a node of the given kind.
func (p *Parser) Start(kind Kind) { p.builder.StartNode(kind) }

// Finish closes the most recently opened node.
func (p *Parser) Finish() *GreenNode { return p.builder.FinishNode() }

// Checkpoint marks the current position for a later StartNodeAt — the
// mechanism that lets left-associative binary expression levels parse
// their left operand before deciding whether it needs wrapping.
func (p *Parser) Checkpoint() Checkpoint { return p.builder.Checkpoint() }

// StartNodeAt opens kind, adopting every node/token produced since cp as
// its children.
func (p *Parser) StartNodeAt(cp Checkpoint, kind Kind) { p.builder.StartNodeAt(cp, kind) }

// ---- context stack -------------------------------------------------------

// PushContext enters a grammatical position.
func (p *Parser) PushContext(c Context) { p.ctx = append(p.ctx, c) }

// PopContext leaves the current grammatical position. Popping the
// bottom-most TopLevel context is an internal-invariant violation (E0901)
// and should never happen on a correctly paired push/pop in the grammar
// code; it is guarded defensively rather than allowed to panic, since
// Parser must never panic on any input.
func (p *Parser) PopContext() {
	if len(p.ctx) <= 1 {
		p.builder.Error(Diagnostic{
			Code: E0901, Severity: SeverityError,
			Range:   p.Current().Range,
			Message: E0901.DefaultMessage(),
		})
		return
	}
	p.ctx = p.ctx[:len(p.ctx)-1]
}

// ContextOf returns the grammatical position currently on top of the stack.
func (p *Parser) ContextOf() Context { return p.ctx[len(p.ctx)-1] }

// ---- diagnostics ---------------------------------------------------------

func (p *Parser) errorExpected(what string) {
	ctx := p.ContextOf()
	msg := fmt.Sprintf("expected %s in %s, found %s", what, ctx.description(), describeToken(p.Current()))
	p.Error(E0201, msg)
}

// Error records a diagnostic at Current's range with no hint or related
// info attached.
func (p *Parser) Error(code Code, message string) {
	p.builder.Error(Diagnostic{
		Code: code, Severity: SeverityError,
		Range: p.Current().Range, Message: message,
	})
}

// ErrorWithHint records a diagnostic with an additional fix hint.
func (p *Parser) ErrorWithHint(code Code, message, hint string) {
	p.builder.Error(Diagnostic{
		Code: code, Severity: SeverityError,
		Range: p.Current().Range, Message: message, Hint: hint,
	})
}

// ErrorRelated records a diagnostic carrying paired-location context (e.g.
// the opening brace of an unclosed block).
func (p *Parser) ErrorRelated(code Code, message string, related ...RelatedInfo) {
	p.builder.Error(Diagnostic{
		Code: code, Severity: SeverityError,
		Range: p.Current().Range, Message: message, Related: related,
	})
}

// ErrorRecover emits a diagnostic then drops tokens — wrapping each
// dropped token (trivia included) into an Error-kind node so the tree
// still covers every byte — until Current() is in the active context's
// recovery set or EOF is reached.
func (p *Parser) ErrorRecover(code Code, message string) {
	p.Error(code, message)
	recovery := p.ContextOf().recoverySet()
	p.Start(Error)
	for !p.AtEOF() && !recovery[p.Current().Kind] {
		p.Bump()
	}
	p.Finish()
}

// Diagnostics returns every diagnostic recorded so far, in emission order.
func (p *Parser) Diagnostics() []Diagnostic { return p.builder.Diagnostics() }

// describeToken renders a short human label for a token, used in default
// error messages.
func describeToken(t stoken.Token) string {
	if t.Kind == stoken.EOF {
		return "end of file"
	}
	if t.Kind == stoken.Ident {
		return fmt.Sprintf("identifier %q", t.Text)
	}
	return fmt.Sprintf("%q", t.Text)
}
