package grammar

import (
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/syntax/expr"
	"github.com/termfx/sysml-core/token"
)

// ParseSourceFile drives p over src's full token stream, producing a
// SourceFile green node containing every top-level namespace member.
func ParseSourceFile(p *syntax.Parser, spec Spec) *syntax.GreenNode {
	p.Start(syntax.SourceFile)
	for !p.AtEOF() {
		before := p.Pos()
		if !parseMember(p, spec) {
			p.ErrorRecover(syntax.E0201, "expected a namespace member")
		}
		if p.Pos() == before {
			p.Bump()
		}
	}
	p.Bump() // EOF: attaches trailing trivia so the tree covers every byte
	return p.Finish()
}

// parseMember consumes exactly one namespace member, including its
// terminating ';' or nested '}'. It reports false (consuming nothing) if
// Current does not start any recognized member, letting the caller decide
// how to recover.
func parseMember(p *syntax.Parser, spec Spec) bool {
	switch {
	case p.AtKeyword("library") && p.PeekKeyword(1, "package"):
		parsePackageMember(p, spec, syntax.LibraryPackage)
		return true
	case p.AtKeyword("package"):
		parsePackageMember(p, spec, syntax.Package)
		return true
	case p.AtKeyword("import"):
		parseImport(p)
		return true
	case p.AtKeyword("alias"):
		parseAlias(p)
		return true
	case p.AtKeyword("dependency"):
		parseDependency(p)
		return true
	case p.AtKeyword("doc"):
		parseDoc(p)
		return true
	case p.AtKeyword("comment"):
		parseComment(p)
		return true
	case p.AtKeyword("filter"):
		parseFilter(p)
		return true
	case p.At(token.At):
		parseMetadata(p, spec)
		return true
	case p.AtKeyword("bind"):
		parseBindingConnector(p)
		return true
	case p.AtKeyword("connect"):
		parseConnectUsage(p)
		return true
	case p.AtKeyword("succession") || p.AtKeyword("first"):
		parseSuccession(p)
		return true
	case p.AtKeyword("transition"):
		parseTransition(p)
		return true
	case p.AtKeyword("send"):
		parseSendAction(p)
		return true
	case p.AtKeyword("accept"):
		parseAcceptAction(p)
		return true
	case p.AtKeyword("perform"):
		parsePerformAction(p)
		return true
	case p.AtAnyKeyword("entry", "do", "exit"):
		parseStateSubaction(p, spec)
		return true
	case p.AtAnyKeyword("fork", "join", "merge", "decide"):
		parseControlNode(p)
		return true
	case p.AtKeyword("if"):
		parseIfAction(p, spec)
		return true
	case p.AtKeyword("while") || p.AtKeyword("until"):
		parseWhileAction(p, spec)
		return true
	case p.AtKeyword("for"):
		parseForAction(p, spec)
		return true
	case p.AtKeyword("inv"):
		parseInvariant(p)
		return true
	case p.AtKeyword("render"):
		parseViewMember(p, syntax.ViewRenderingMember, "render")
		return true
	case p.AtKeyword("expose"):
		parseViewMember(p, syntax.ViewExposeMember, "expose")
		return true
	}

	if isDef, isUsage := classifyDefOrUsage(p, spec); isDef {
		parseDefinition(p, spec)
		return true
	} else if isUsage {
		parseUsage(p, spec)
		return true
	}

	// Constraint/calculation/requirement bodies are themselves expression-
	// valued: a member position that
	// isn't any declared construct but can start an expression is taken to
	// be that body's result expression, reusing ValuePart rather than
	// inventing a dedicated statement-wrapper kind for a single bare value.
	if canStartExpression(p) {
		p.Start(syntax.ValuePart)
		expr.Parse(p)
		p.Finish()
		if p.At(token.Semicolon) {
			p.Bump()
		}
		return true
	}
	return false
}

func canStartExpression(p *syntax.Parser) bool {
	switch p.Current().Kind {
	case token.Ident, token.IntLiteral, token.RealLiteral, token.StringLiteral,
		token.LParen, token.Plus, token.Minus, token.Tilde, token.LBrace:
		return true
	}
	return p.AtAnyKeyword("not", "all", "true", "false", "null", "new")
}

// ---- lookahead classification -------------------------------------------

func isModifierAtPeek(p *syntax.Parser, n int) bool {
	for _, kw := range modifierKeywords {
		if p.PeekKeyword(n, kw) {
			return true
		}
	}
	return false
}

func skipModifiersAheadFrom(p *syntax.Parser, start int) int {
	n := start
	for isModifierAtPeek(p, n) {
		n++
	}
	return n - start
}

func isVisibilityAtPeek(p *syntax.Parser, n int) bool {
	for _, kw := range visibilityKeywords {
		if p.PeekKeyword(n, kw) {
			return true
		}
	}
	return false
}

// classifyDefOrUsage looks past any visibility/modifier prefix to decide
// whether Current starts a Definition, a Usage, or neither.
func classifyDefOrUsage(p *syntax.Parser, spec Spec) (isDef, isUsage bool) {
	n := 0
	if isVisibilityAtPeek(p, n) {
		n++
	}
	n += skipModifiersAheadFrom(p, n)
	if p.PeekKeyword(n, "in") || p.PeekKeyword(n, "out") || p.PeekKeyword(n, "inout") {
		n++
	}
	for _, kw := range spec.BareDefs {
		if p.PeekKeyword(n, kw) {
			return true, false
		}
	}
	for _, noun := range spec.Nouns {
		if p.PeekKeyword(n, noun) {
			if p.PeekKeyword(n+1, "def") {
				return true, false
			}
			return false, true
		}
	}
	if spec.FeatureKeyword != "" && p.PeekKeyword(n, spec.FeatureKeyword) {
		return false, true
	}
	return false, false
}

// ---- small shared helpers -------------------------------------------------

func bumpKeywordAny(p *syntax.Parser, spellings ...string) bool {
	for _, s := range spellings {
		if p.AtKeyword(s) {
			p.BumpKeyword(s)
			return true
		}
	}
	return false
}

func parseShortName(p *syntax.Parser) bool {
	if !p.At(token.Lt) {
		return false
	}
	p.Start(syntax.ShortName)
	p.Bump()
	p.Expect(token.Ident)
	p.Expect(token.GT)
	p.Finish()
	return true
}

func parseNameIfPresent(p *syntax.Parser, stopAt ...string) bool {
	if p.At(token.Ident) {
		for _, s := range stopAt {
			if p.AtKeyword(s) {
				return false
			}
		}
		p.Start(syntax.Name)
		p.Bump()
		p.Finish()
		return true
	}
	return false
}

func parseTargetList(p *syntax.Parser) {
	expr.ParseQualifiedName(p)
	for p.At(token.Comma) {
		p.Bump()
		expr.ParseQualifiedName(p)
	}
}

func parseDirection(p *syntax.Parser) bool {
	if !p.AtAnyKeyword("in", "out", "inout") {
		return false
	}
	p.Start(syntax.Direction)
	bumpKeywordAny(p, "in", "out", "inout")
	p.Finish()
	return true
}

func parseModifiers(p *syntax.Parser) {
	for bumpKeywordAny(p, modifierKeywords...) {
	}
}
