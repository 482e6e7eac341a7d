// Package expr implements the expression sublanguage: the single
// precedence-climbing grammar shared by both dialect grammars. It drives a
// *syntax.Parser purely through the exported Parser primitives — it never
// reaches into dialect-specific grammar code, and neither dialect grammar
// reaches into this package's unexported helpers.
package expr

import (
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

// Parse parses one expression at the top of the precedence chain
// (conditional) into whatever node is currently open on the host parser.
// Callers that need their own wrapping node (e.g. a FEATURE_VALUE) must
// Start/Finish it themselves around the call.
func Parse(p *syntax.Parser) {
	parseConditional(p)
}

// ---- precedence chain ----------------------------------------------------
//
// conditional -> nullCoalesce -> implies -> or -> xor -> and -> equality ->
// classification -> relational -> range -> additive -> multiplicative ->
// exponent -> unary -> extent -> postfix chain -> base

func binaryLeft(p *syntax.Parser, kind syntax.Kind, next func(*syntax.Parser), match func(*syntax.Parser) bool, consume func(*syntax.Parser)) {
	cp := p.Checkpoint()
	next(p)
	for match(p) {
		p.StartNodeAt(cp, kind)
		consume(p)
		next(p)
		p.Finish()
		cp = p.Checkpoint()
	}
}

func binaryRight(p *syntax.Parser, kind syntax.Kind, next func(*syntax.Parser), match func(*syntax.Parser) bool, consume func(*syntax.Parser)) {
	cp := p.Checkpoint()
	next(p)
	if match(p) {
		p.StartNodeAt(cp, kind)
		consume(p)
		binaryRight(p, kind, next, match, consume)
		p.Finish()
	}
}

func parseConditional(p *syntax.Parser) {
	cp := p.Checkpoint()
	parseNullCoalesce(p)
	if !p.At(token.Question) {
		return
	}
	p.StartNodeAt(cp, syntax.ExprConditional)
	p.Bump() // ?
	p.PushContext(syntax.ContextExpression)
	parseConditional(p)
	p.Expect(token.Colon)
	parseConditional(p)
	p.PopContext()
	p.Finish()
}

func parseNullCoalesce(p *syntax.Parser) {
	binaryLeft(p, syntax.ExprNullCoalesce, parseImplies,
		func(p *syntax.Parser) bool { return p.At(token.QuestionQuestion) },
		func(p *syntax.Parser) { p.Bump() })
}

func parseImplies(p *syntax.Parser) {
	binaryRight(p, syntax.ExprImplies, parseOr,
		func(p *syntax.Parser) bool { return p.AtKeyword("implies") },
		func(p *syntax.Parser) { p.BumpKeyword("implies") })
}

func parseOr(p *syntax.Parser) {
	binaryLeft(p, syntax.ExprOr, parseXor,
		func(p *syntax.Parser) bool { return p.AtKeyword("or") || p.At(token.Pipe) },
		func(p *syntax.Parser) {
			if p.AtKeyword("or") {
				p.BumpKeyword("or")
			} else {
				p.Bump()
			}
		})
}

func parseXor(p *syntax.Parser) {
	binaryLeft(p, syntax.ExprXor, parseAnd,
		func(p *syntax.Parser) bool { return p.AtKeyword("xor") },
		func(p *syntax.Parser) { p.BumpKeyword("xor") })
}

func parseAnd(p *syntax.Parser) {
	binaryLeft(p, syntax.ExprAnd, parseEquality,
		func(p *syntax.Parser) bool { return p.AtKeyword("and") || p.At(token.Amp) },
		func(p *syntax.Parser) {
			if p.AtKeyword("and") {
				p.BumpKeyword("and")
			} else {
				p.Bump()
			}
		})
}

func parseEquality(p *syntax.Parser) {
	binaryLeft(p, syntax.ExprEquality, parseClassification,
		func(p *syntax.Parser) bool {
			return p.AtAny(token.EqEq, token.NotEq, token.EqEqEq, token.NotEqEq)
		},
		func(p *syntax.Parser) { p.Bump() })
}

// parseClassification handles istype/hastype/as/meta/@/@@, whose
// right-hand side is a type name rather than a nested expression, so it
// cannot reuse binaryLeft's "next on both sides" shape. istype/hastype
// also have a prefix form with an implicit self operand ("istype T"),
// checked before falling through to the relational operand. Unlike the
// other binary levels, the infix operator applies at most once here.
func parseClassification(p *syntax.Parser) {
	if p.AtAnyKeyword("istype", "hastype") {
		p.Start(syntax.ExprClassification)
		if p.AtKeyword("istype") {
			p.BumpKeyword("istype")
		} else {
			p.BumpKeyword("hastype")
		}
		parseQualifiedNameNode(p)
		p.Finish()
		return
	}

	cp := p.Checkpoint()
	parseRelational(p)

	if p.AtAnyKeyword("istype", "hastype", "as", "meta") || p.AtAny(token.At, token.AtAt) {
		p.StartNodeAt(cp, syntax.ExprClassification)
		switch {
		case p.AtKeyword("istype"):
			p.BumpKeyword("istype")
		case p.AtKeyword("hastype"):
			p.BumpKeyword("hastype")
		case p.AtKeyword("as"):
			p.BumpKeyword("as")
		case p.AtKeyword("meta"):
			p.BumpKeyword("meta")
		default:
			p.Bump()
		}
		parseQualifiedNameNode(p)
		p.Finish()
	}
}

func parseRelational(p *syntax.Parser) {
	binaryLeft(p, syntax.ExprRelational, parseRange,
		func(p *syntax.Parser) bool { return p.AtAny(token.Lt, token.GT, token.LE, token.GE) },
		func(p *syntax.Parser) { p.Bump() })
}

func parseRange(p *syntax.Parser) {
	binaryLeft(p, syntax.ExprRange, parseAdditive,
		func(p *syntax.Parser) bool { return p.At(token.DotDot) },
		func(p *syntax.Parser) { p.Bump() })
}

func parseAdditive(p *syntax.Parser) {
	binaryLeft(p, syntax.ExprAdditive, parseMultiplicative,
		func(p *syntax.Parser) bool { return p.AtAny(token.Plus, token.Minus) },
		func(p *syntax.Parser) { p.Bump() })
}

func parseMultiplicative(p *syntax.Parser) {
	binaryLeft(p, syntax.ExprMultiplicative, parseExponent,
		func(p *syntax.Parser) bool { return p.AtAny(token.Star, token.Slash, token.Percent) },
		func(p *syntax.Parser) { p.Bump() })
}

func parseExponent(p *syntax.Parser) {
	binaryRight(p, syntax.ExprExponent, parseUnary,
		func(p *syntax.Parser) bool { return p.At(token.StarStar) },
		func(p *syntax.Parser) { p.Bump() })
}

func parseUnary(p *syntax.Parser) {
	if p.At(token.Plus) || p.At(token.Minus) || p.At(token.Tilde) || p.AtKeyword("not") {
		p.Start(syntax.ExprUnary)
		if p.AtKeyword("not") {
			p.BumpKeyword("not")
		} else {
			p.Bump()
		}
		parseUnary(p) // allows stacking, e.g. "not not done"
		p.Finish()
		return
	}
	parseExtent(p)
}

func parseExtent(p *syntax.Parser) {
	if p.AtKeyword("all") {
		p.Start(syntax.ExprExtent)
		p.BumpKeyword("all")
		parsePostfixChain(p)
		p.Finish()
		return
	}
	parsePostfixChain(p)
}

// ---- postfix chain --------------------------------------------------------

// parsePostfixChain parses a base expression then any sequence of postfix
// operators: feature-chain segments (.name[(args)]), shorthand select
// (.?{...}), shorthand collect (.{...}), arrow invocation (->name{...}),
// bracket index (#(...)), and array index ([...]). Consecutive feature
// chain segments are flattened into a single ExprFeatureChain node rather
// than nested one-per-dot, matching how a reader walks "a.b.c" as one
// chain; every other postfix operator wraps individually.
func parsePostfixChain(p *syntax.Parser) {
	cp := p.Checkpoint()
	parseBase(p)

	chainOpen := false
	closeChain := func() {
		if chainOpen {
			p.Finish()
			chainOpen = false
			cp = p.Checkpoint()
		}
	}

	for {
		switch {
		case p.At(token.QuestionDot):
			closeChain()
			p.StartNodeAt(cp, syntax.ExprSelect)
			p.Bump()
			p.Expect(token.LBrace)
			p.PushContext(syntax.ContextExpression)
			Parse(p)
			p.PopContext()
			p.Expect(token.RBrace)
			p.Finish()
			cp = p.Checkpoint()

		case p.At(token.Dot) && p.Peek(1).Kind == token.LBrace:
			closeChain()
			p.StartNodeAt(cp, syntax.ExprCollect)
			p.Bump()
			p.Expect(token.LBrace)
			p.PushContext(syntax.ContextExpression)
			Parse(p)
			p.PopContext()
			p.Expect(token.RBrace)
			p.Finish()
			cp = p.Checkpoint()

		case p.At(token.Dot):
			if !chainOpen {
				p.StartNodeAt(cp, syntax.ExprFeatureChain)
				chainOpen = true
			}
			p.Bump() // .
			p.Start(syntax.ExprFeatureChainSegment)
			p.Expect(token.Ident)
			if p.At(token.LParen) {
				parseArgumentList(p)
			}
			p.Finish()

		case p.At(token.Arrow):
			closeChain()
			p.StartNodeAt(cp, syntax.ExprArrowInvocation)
			p.Bump() // ->
			p.Expect(token.Ident)
			parseArrowBody(p)
			p.Finish()
			cp = p.Checkpoint()

		case p.At(token.Hash) && p.Peek(1).Kind == token.LParen:
			closeChain()
			p.StartNodeAt(cp, syntax.ExprBracketIndex)
			p.Bump() // #
			p.Expect(token.LParen)
			p.PushContext(syntax.ContextArgumentList)
			parseExprCommaList(p, token.RParen)
			p.PopContext()
			p.Expect(token.RParen)
			p.Finish()
			cp = p.Checkpoint()

		case p.At(token.LBracket):
			closeChain()
			p.StartNodeAt(cp, syntax.ExprIndex)
			p.Bump()
			Parse(p)
			p.Expect(token.RBracket)
			p.Finish()
			cp = p.Checkpoint()

		default:
			closeChain()
			return
		}
	}
}

// parseBase parses one base expression: a literal, a `new` instantiation,
// a `{ ... }` block, a parenthesized expression or sequence, a `@` metadata
// access, or a plain (possibly called) qualified-name reference.
func parseBase(p *syntax.Parser) {
	switch {
	case p.AtAny(token.IntLiteral, token.RealLiteral, token.StringLiteral) ||
		p.AtAnyKeyword("true", "false", "null"):
		p.Start(syntax.ExprLiteral)
		consumeLiteralToken(p)
		p.Finish()

	case p.AtKeyword("new"):
		p.Start(syntax.ExprInstantiation)
		p.BumpKeyword("new")
		parseQualifiedNameNode(p)
		if p.At(token.LParen) {
			parseArgumentList(p)
		}
		p.Finish()

	case p.At(token.LBrace):
		p.Start(syntax.ExprBlock)
		p.Bump()
		p.PushContext(syntax.ContextExpression)
		for !p.At(token.RBrace) && !p.AtEOF() {
			Parse(p)
			if p.At(token.Semicolon) {
				p.Bump()
			} else {
				break
			}
		}
		p.PopContext()
		p.Expect(token.RBrace)
		p.Finish()

	case p.At(token.LParen):
		p.Start(syntax.ExprParenOrSeq)
		p.Bump()
		p.PushContext(syntax.ContextExpression)
		if !p.At(token.RParen) {
			Parse(p)
			for p.At(token.Comma) {
				p.Bump()
				Parse(p)
			}
		}
		p.PopContext()
		p.Expect(token.RParen)
		p.Finish()

	case p.At(token.At):
		p.Start(syntax.ExprMetadataAccess)
		p.Bump()
		parseQualifiedNameNode(p)
		p.Finish()

	case p.At(token.Ident):
		p.Start(syntax.ExprName)
		parseQualifiedNameNode(p)
		if p.At(token.LParen) {
			parseArgumentList(p)
		}
		p.Finish()

	default:
		p.ErrorRecover(syntax.E0401, syntax.E0401.DefaultMessage())
	}
}

func consumeLiteralToken(p *syntax.Parser) {
	switch {
	case p.AtKeyword("true"):
		p.BumpKeyword("true")
	case p.AtKeyword("false"):
		p.BumpKeyword("false")
	case p.AtKeyword("null"):
		p.BumpKeyword("null")
	default:
		p.Bump()
	}
}

// ParseQualifiedName parses a `::`-separated qualified name into whatever
// node is currently open. Dialect grammars use this directly for
// relationship targets, import targets, and name references outside of a
// full expression context.
func ParseQualifiedName(p *syntax.Parser) {
	parseQualifiedNameNode(p)
}

func parseQualifiedNameNode(p *syntax.Parser) {
	p.Start(syntax.QualifiedName)
	p.Expect(token.Ident)
	for p.At(token.ColonColon) {
		p.Bump()
		p.Expect(token.Ident)
	}
	p.Finish()
}

// parseArgumentList parses a parenthesized, comma-separated argument list.
// An argument may be positional or named (`name = expr`); which form a
// given grammar position accepts is left to the caller's own validation —
// this shared rule accepts either, since both dialects use it identically
// for invocation arguments.
func parseArgumentList(p *syntax.Parser) {
	p.Start(syntax.ExprArgumentList)
	p.Expect(token.LParen)
	p.PushContext(syntax.ContextArgumentList)
	if !p.At(token.RParen) {
		parseArgument(p)
		for p.At(token.Comma) {
			p.Bump()
			parseArgument(p)
		}
	}
	p.PopContext()
	p.Expect(token.RParen)
	p.Finish()
}

func parseArgument(p *syntax.Parser) {
	p.Start(syntax.ExprArgument)
	if p.At(token.Ident) && p.Peek(1).Kind == token.Eq {
		p.Bump() // name
		p.Bump() // =
	}
	Parse(p)
	p.Finish()
}

// parseExprCommaList parses a bare comma-separated expression list up to
// (not including) closeKind, used by the bracket-index postfix operator.
func parseExprCommaList(p *syntax.Parser, closeKind token.Kind) {
	if p.At(closeKind) {
		return
	}
	Parse(p)
	for p.At(token.Comma) {
		p.Bump()
		Parse(p)
	}
}

// parseArrowBody parses the `{ params... trailingExpr }` body of an
// arrow-invocation postfix operator: zero or more directed `in` parameters
// (with optional `: Type`), followed by a single trailing expression.
func parseArrowBody(p *syntax.Parser) {
	p.Start(syntax.ExprArrowBody)
	if !p.Expect(token.LBrace) {
		p.Finish()
		return
	}
	p.PushContext(syntax.ContextArrowBody)
	for !p.At(token.RBrace) && !p.AtEOF() && (p.AtKeyword("in") || (p.At(token.Ident) && p.Peek(1).Kind != token.LBrace)) {
		if !parseArrowParam(p) {
			break
		}
		if p.At(token.Comma) {
			p.Bump()
			continue
		}
		break
	}
	if !p.At(token.RBrace) && !p.AtEOF() {
		Parse(p)
	}
	p.PopContext()
	if p.At(token.RBrace) {
		p.Bump()
	} else {
		p.ErrorRelated(syntax.E0404, syntax.E0404.DefaultMessage())
	}
	p.Finish()
}

func parseArrowParam(p *syntax.Parser) bool {
	p.Start(syntax.ExprArgument)
	if p.AtKeyword("in") {
		p.BumpKeyword("in")
	}
	if !p.At(token.Ident) {
		p.Finish()
		return false
	}
	p.Bump()
	if p.At(token.Colon) {
		p.Bump()
		parseQualifiedNameNode(p)
	}
	p.Finish()
	return true
}
