package grammar

import (
	"github.com/termfx/sysml-core/syntax"
)

// parseDefinition parses "[modifiers] keyword [def] [<sn>] [Name]
// relationships* [body|;]". The definition-introducing keyword is either
// one of spec.BareDefs (KerML: class, struct, ...) or a spec.Nouns entry
// immediately followed by "def" (SysML: part def, action def, ...).
func parseDefinition(p *syntax.Parser, spec Spec) {
	p.Start(syntax.Definition)
	bumpKeywordAny(p, visibilityKeywords...)
	parseModifiers(p)

	consumed := false
	for _, kw := range spec.BareDefs {
		if p.AtKeyword(kw) {
			p.BumpKeyword(kw)
			consumed = true
			break
		}
	}
	if !consumed {
		for _, noun := range spec.Nouns {
			if p.AtKeyword(noun) {
				p.BumpKeyword(noun)
				p.ExpectKeyword("def")
				consumed = true
				break
			}
		}
	}
	if !consumed {
		p.Error(syntax.E0303, syntax.E0303.DefaultMessage())
	}

	parseShortName(p)
	if !parseNameIfPresent(p) {
		// Unlike a Usage, a Definition always needs a name: it is never
		// the implicit-name target of a redefinition the way a usage can
		// be (e.g. "part def ;").
		p.Error(syntax.E0301, syntax.E0301.DefaultMessage())
	}
	parseRelationshipClauses(p, true)
	parseBodyOrSemi(p, spec, syntax.DefinitionBody, syntax.ContextDefinitionBody)
	p.Finish()
}

// parseUsage parses "[direction] [modifiers] keyword [<sn>] [Name]
// relationships* multiplicity? value? [body|;]".
func parseUsage(p *syntax.Parser, spec Spec) {
	p.Start(syntax.Usage)
	bumpKeywordAny(p, visibilityKeywords...)
	parseDirection(p)
	parseModifiers(p)

	consumed := false
	if spec.FeatureKeyword != "" && p.AtKeyword(spec.FeatureKeyword) {
		p.BumpKeyword(spec.FeatureKeyword)
		consumed = true
	}
	if !consumed {
		for _, noun := range spec.Nouns {
			if p.AtKeyword(noun) {
				p.BumpKeyword(noun)
				consumed = true
				break
			}
		}
	}
	if !consumed {
		p.Error(syntax.E0303, syntax.E0303.DefaultMessage())
	}

	parseShortName(p)
	parseNameIfPresent(p)
	parseRelationshipClauses(p, false)
	parseMultiplicity(p)
	parseFeatureValue(p)
	parseBodyOrSemi(p, spec, syntax.UsageBody, syntax.ContextUsageBody)
	p.Finish()
}
