package grammar

import (
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/syntax/expr"
	"github.com/termfx/sysml-core/token"
)

// parseRelationshipClauses consumes zero or more specialization/subsetting/
// redefinition/referencing/typing/conjugation clauses. The ":>"/"specializes"
// symbol is shared between Specialization (definition context) and
// Subsetting (usage context); every other operator maps to exactly one
// relationship kind regardless of context.
func parseRelationshipClauses(p *syntax.Parser, definitionCtx bool) {
	for {
		switch {
		case p.At(token.ColonGTGT) || p.AtKeyword("redefines"):
			p.Start(syntax.Redefinition)
			consumeRelOp(p, token.ColonGTGT, "redefines")
			parseTargetList(p)
			p.Finish()

		case p.At(token.ColonColonGT) || p.AtKeyword("references"):
			p.Start(syntax.Referencing)
			consumeRelOp(p, token.ColonColonGT, "references")
			parseTargetList(p)
			p.Finish()

		case p.At(token.ColonGT) || p.AtKeyword("specializes") || p.AtKeyword("subsets"):
			kind := syntax.Subsetting
			if definitionCtx {
				kind = syntax.Specialization
			}
			p.Start(kind)
			consumeRelOp(p, token.ColonGT, "specializes", "subsets")
			parseTargetList(p)
			p.Finish()

		case p.At(token.Colon) || (p.AtKeyword("typed") && p.PeekKeyword(1, "by")):
			p.Start(syntax.Typing)
			if p.At(token.Colon) {
				p.Bump()
			} else {
				p.BumpKeyword("typed")
				p.ExpectKeyword("by")
			}
			cp := p.Checkpoint()
			expr.ParseQualifiedName(p)
			count := 1
			for p.At(token.Comma) {
				p.Bump()
				expr.ParseQualifiedName(p)
				count++
			}
			if count > 1 {
				p.StartNodeAt(cp, syntax.TypingList)
				p.Finish()
			}
			p.Finish()

		case p.AtKeyword("conjugates") || p.AtKeyword("conjugate"):
			p.Start(syntax.Conjugation)
			bumpKeywordAny(p, "conjugates", "conjugate")
			parseTargetList(p)
			p.Finish()

		case p.AtKeyword("disjoint"):
			p.Start(syntax.Disjoining)
			p.BumpKeyword("disjoint")
			p.ExpectKeyword("from")
			parseTargetList(p)
			p.Finish()

		case p.AtKeyword("chains"):
			p.Start(syntax.FeatureChaining)
			p.BumpKeyword("chains")
			parseTargetList(p)
			p.Finish()

		case p.AtKeyword("inverse") || (p.AtKeyword("featured") && p.PeekKeyword(1, "by")):
			p.Start(syntax.FeatureInversion)
			if p.AtKeyword("inverse") {
				p.BumpKeyword("inverse")
			} else {
				p.BumpKeyword("featured")
				p.ExpectKeyword("by")
			}
			parseTargetList(p)
			p.Finish()

		default:
			return
		}
	}
}

func consumeRelOp(p *syntax.Parser, symbol token.Kind, keywords ...string) {
	if p.At(symbol) {
		p.Bump()
		return
	}
	bumpKeywordAny(p, keywords...)
}

// parseMultiplicity consumes "[lower..upper]", "[n]", or "[*]".
func parseMultiplicity(p *syntax.Parser) bool {
	if !p.At(token.LBracket) {
		return false
	}
	p.Start(syntax.Multiplicity)
	p.Bump()
	p.PushContext(syntax.ContextMultiplicity)
	p.Start(syntax.MultiplicityRange)
	if p.At(token.Star) {
		p.Bump()
	} else {
		p.Expect(token.IntLiteral)
		if p.At(token.DotDot) {
			p.Bump()
			if p.At(token.Star) {
				p.Bump()
			} else {
				p.Expect(token.IntLiteral)
			}
		}
	}
	p.Finish()
	p.PopContext()
	p.Expect(token.RBracket)
	p.Finish()
	bumpKeywordAny(p, "ordered", "nonunique", "unique")
	return true
}

// parseFeatureValue consumes "= expr" or "default = expr", wrapped as
// FeatureValue > ValuePart.
func parseFeatureValue(p *syntax.Parser) bool {
	if !p.AtAnyKeyword("default") && !p.At(token.Eq) {
		return false
	}
	p.Start(syntax.FeatureValue)
	if p.AtKeyword("default") {
		p.BumpKeyword("default")
	}
	p.Expect(token.Eq)
	p.Start(syntax.ValuePart)
	expr.Parse(p)
	p.Finish()
	p.Finish()
	return true
}
