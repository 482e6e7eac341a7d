package syntax

import stoken "github.com/termfx/sysml-core/token"

// ParsedFile is the result of Parse: the green tree root plus every
// diagnostic collected during parsing.
type ParsedFile struct {
	Green       *GreenNode
	Diagnostics []Diagnostic
	Dialect     stoken.Dialect
	Source      string
}

// Root returns a red-tree view over the parsed file's green root.
func (f *ParsedFile) Root() *RedNode { return NewRed(f.Green) }

// ParseBracedBody is the shared "body" driver used by every dialect
// grammar production that looks like `{ member* }`: NAMESPACE_BODY,
// DEFINITION_BODY, USAGE_BODY, and the narrower bodies (state, filter,
// metadata, requirement). It opens bodyKind, consumes '{', repeatedly
// calls parseMember until '}' or EOF, then consumes '}' — emitting E0202
// with related info pointing at the opening brace if the body is never
// closed. parseMember should consume exactly one member (including its
// own terminating ';' or nested '}') and return false if it could not
// make progress, in which case ParseBracedBody forces recovery so the
// parser can never spin forever on a single malformed member.
func (p *Parser) ParseBracedBody(bodyKind Kind, ctx Context, parseMember func() bool) *GreenNode {
	p.Start(bodyKind)
	openRange := p.Current().Range
	p.Expect(stoken.LBrace)
	p.PushContext(ctx)
	for !p.At(stoken.RBrace) && !p.AtEOF() {
		before := p.pos
		if !parseMember() {
			p.ErrorRecover(E0201, "expected "+ctx.expectedDescription()+" in "+ctx.description())
		}
		if p.pos == before {
			// Defensive: parseMember claimed success but consumed nothing.
			// Force one token of progress to guarantee termination.
			p.Bump()
		}
	}
	if p.At(stoken.RBrace) {
		p.Bump()
	} else {
		p.ErrorRelated(E0202, "unclosed '{' in "+ctx.description(),
			RelatedInfo{Message: "unclosed delimiter", Range: openRange})
	}
	p.PopContext()
	return p.Finish()
}
