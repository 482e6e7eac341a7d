package grammar

import (
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/syntax/expr"
	"github.com/termfx/sysml-core/token"
)

func parseSuccession(p *syntax.Parser) {
	p.Start(syntax.Succession)
	if p.AtKeyword("succession") {
		p.BumpKeyword("succession")
		parseNameIfPresent(p, "first")
	}
	p.ExpectKeyword("first")
	parseSuccessionItem(p)
	for p.AtKeyword("then") {
		p.BumpKeyword("then")
		parseSuccessionItem(p)
	}
	p.Expect(token.Semicolon)
	p.Finish()
}

func parseSuccessionItem(p *syntax.Parser) {
	p.Start(syntax.SuccessionItem)
	expr.ParseQualifiedName(p)
	p.Finish()
}

func parseBindingConnector(p *syntax.Parser) {
	p.Start(syntax.BindingConnector)
	p.BumpKeyword("bind")
	expr.ParseQualifiedName(p)
	p.Expect(token.Eq)
	expr.ParseQualifiedName(p)
	p.Expect(token.Semicolon)
	p.Finish()
}

// parseConnectUsage parses "connect (a, b, ...) ;" or "connect a to b ;",
// where each end may carry an endpoint name via "::>".
func parseConnectUsage(p *syntax.Parser) {
	p.Start(syntax.ConnectorPart)
	p.BumpKeyword("connect")
	p.PushContext(syntax.ContextConnectorEnds)
	if p.At(token.LParen) {
		p.Bump()
		parseConnectorEnd(p)
		for p.At(token.Comma) {
			p.Bump()
			parseConnectorEnd(p)
		}
		p.Expect(token.RParen)
	} else {
		parseConnectorEnd(p)
		p.ExpectKeyword("to")
		parseConnectorEnd(p)
	}
	p.PopContext()
	p.Expect(token.Semicolon)
	p.Finish()
}

func parseConnectorEnd(p *syntax.Parser) {
	p.Start(syntax.ConnectorEnd)
	if p.At(token.Ident) && p.Peek(1).Kind == token.ColonColonGT {
		p.Start(syntax.Name)
		p.Bump()
		p.Finish()
		p.Bump() // ::>
	}
	expr.ParseQualifiedName(p)
	p.Finish()
}

// parseTransition parses "transition [Name] first S [accept Trigger] [if
// Guard] [then T] ;" — a simplified but structurally faithful rendering of
// the full state-machine transition grammar.
func parseTransition(p *syntax.Parser) {
	p.Start(syntax.TransitionUsage)
	p.BumpKeyword("transition")
	parseNameIfPresent(p, "first")
	p.PushContext(syntax.ContextTransition)
	p.ExpectKeyword("first")
	expr.ParseQualifiedName(p)
	if p.AtKeyword("accept") {
		p.Start(syntax.TransitionTrigger)
		p.BumpKeyword("accept")
		expr.ParseQualifiedName(p)
		p.Finish()
	}
	if p.AtKeyword("if") {
		p.Start(syntax.TransitionGuard)
		p.BumpKeyword("if")
		expr.Parse(p)
		p.Finish()
	}
	if p.AtKeyword("then") {
		p.BumpKeyword("then")
		p.Start(syntax.TransitionEffect)
		expr.ParseQualifiedName(p)
		p.Finish()
	}
	p.PopContext()
	p.Expect(token.Semicolon)
	p.Finish()
}

func parseSendAction(p *syntax.Parser) {
	p.Start(syntax.SendActionUsage)
	p.BumpKeyword("send")
	expr.Parse(p)
	if p.AtKeyword("via") {
		p.BumpKeyword("via")
		expr.ParseQualifiedName(p)
	}
	if p.AtKeyword("to") {
		p.BumpKeyword("to")
		expr.ParseQualifiedName(p)
	}
	p.Expect(token.Semicolon)
	p.Finish()
}

func parseAcceptAction(p *syntax.Parser) {
	p.Start(syntax.AcceptActionUsage)
	p.BumpKeyword("accept")
	parseNameIfPresent(p, "via")
	if p.At(token.Colon) {
		p.Start(syntax.Typing)
		p.Bump()
		expr.ParseQualifiedName(p)
		p.Finish()
	}
	if p.AtKeyword("via") {
		p.BumpKeyword("via")
		expr.ParseQualifiedName(p)
	}
	p.Expect(token.Semicolon)
	p.Finish()
}

func parsePerformAction(p *syntax.Parser) {
	p.Start(syntax.PerformActionUsage)
	p.BumpKeyword("perform")
	expr.ParseQualifiedName(p)
	p.Expect(token.Semicolon)
	p.Finish()
}

// parseStateSubaction parses "entry|do|exit [Target] [body|;]" — the
// sub-action members of a state usage.
func parseStateSubaction(p *syntax.Parser, spec Spec) {
	p.Start(syntax.StateSubactionMember)
	bumpKeywordAny(p, "entry", "do", "exit")
	if p.At(token.Ident) {
		expr.ParseQualifiedName(p)
	}
	parseBodyOrSemi(p, spec, syntax.UsageBody, syntax.ContextUsageBody)
	p.Finish()
}

func parseControlNode(p *syntax.Parser) {
	p.Start(syntax.ControlNode)
	bumpKeywordAny(p, "fork", "join", "merge", "decide")
	parseNameIfPresent(p)
	p.Expect(token.Semicolon)
	p.Finish()
}

func parseIfAction(p *syntax.Parser, spec Spec) {
	p.Start(syntax.IfActionUsage)
	p.BumpKeyword("if")
	expr.Parse(p)
	p.ParseBracedBody(syntax.UsageBody, syntax.ContextUsageBody, func() bool { return parseMember(p, spec) })
	if p.AtKeyword("else") {
		p.BumpKeyword("else")
		if p.AtKeyword("if") {
			parseIfAction(p, spec)
		} else {
			p.ParseBracedBody(syntax.UsageBody, syntax.ContextUsageBody, func() bool { return parseMember(p, spec) })
		}
	}
	p.Finish()
}

// parseWhileAction parses "while|until Cond [loop] { members }".
func parseWhileAction(p *syntax.Parser, spec Spec) {
	p.Start(syntax.WhileLoopActionUsage)
	bumpKeywordAny(p, "while", "until")
	expr.Parse(p)
	if p.AtKeyword("loop") {
		p.BumpKeyword("loop")
	}
	p.ParseBracedBody(syntax.UsageBody, syntax.ContextUsageBody, func() bool { return parseMember(p, spec) })
	p.Finish()
}

// parseForAction parses "for Name in Expr { members }".
func parseForAction(p *syntax.Parser, spec Spec) {
	p.Start(syntax.ForLoopActionUsage)
	p.BumpKeyword("for")
	parseNameIfPresent(p, "in")
	p.ExpectKeyword("in")
	expr.Parse(p)
	p.ParseBracedBody(syntax.UsageBody, syntax.ContextUsageBody, func() bool { return parseMember(p, spec) })
	p.Finish()
}

// parseInvariant parses "inv [Name] Expr ;", modeled as a Usage wrapping
// the "inv" keyword and a FeatureValue, matching KerML's treatment of an
// invariant as a boolean-expression feature.
func parseInvariant(p *syntax.Parser) {
	p.Start(syntax.Usage)
	p.BumpKeyword("inv")
	parseNameIfPresent(p)
	p.Start(syntax.FeatureValue)
	p.Start(syntax.ValuePart)
	expr.Parse(p)
	p.Finish()
	p.Finish()
	p.Expect(token.Semicolon)
	p.Finish()
}

func parseViewMember(p *syntax.Parser, kind syntax.Kind, keyword string) {
	p.Start(kind)
	p.BumpKeyword(keyword)
	parseImportTarget(p)
	p.Expect(token.Semicolon)
	p.Finish()
}
