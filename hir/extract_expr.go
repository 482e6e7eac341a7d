package hir

import (
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

// extractExpressionReferences walks a value/guard expression subtree for
// feature-chain and name references, recording each as an Expression
// relationship plus a matching type_ref entry so hover/go-to-definition
// can resolve a reference inside "= a.b.c" the same way it resolves a
// declared ":> Base" relationship. Chains of length 1 get a simple
// relationship; chains of length >1 get one ChainPart per segment.
// Descending stops at a nested namespace body, usage, or definition —
// those surface their own references when that child symbol is
// extracted in turn.
func extractExpressionReferences(ctx *extractionContext, sym *HirSymbol, expr *syntax.RedNode) {
	if expr == nil {
		return
	}
	walkExpressionReferences(ctx, sym, expr)
}

func walkExpressionReferences(ctx *extractionContext, sym *HirSymbol, n *syntax.RedNode) {
	switch n.Green.Kind {
	case syntax.NamespaceBody, syntax.Usage, syntax.Definition:
		return
	case syntax.ExprFeatureChain:
		recordChainReference(ctx, sym, n)
		return
	case syntax.ExprName:
		recordNameReference(ctx, sym, n)
		return
	}
	for _, c := range n.ChildNodes() {
		walkExpressionReferences(ctx, sym, c)
	}
}

func recordNameReference(ctx *extractionContext, sym *HirSymbol, n *syntax.RedNode) {
	qn := n.FirstChild(syntax.QualifiedName)
	if qn == nil {
		return
	}
	var first, last *syntax.RedToken
	for _, t := range qn.ChildTokens() {
		if t.Green.Kind != token.Ident {
			continue
		}
		if first == nil {
			first = t
		}
		last = t
	}
	if first == nil {
		return
	}
	name := qualifiedNameString(qn)
	if hasSimpleExpressionRef(sym, name) {
		return
	}
	rng := ctx.span(first.Range().Start, last.Range().End)
	sym.Relationships = append(sym.Relationships, Relationship{Kind: RelExpression, Target: name, Range: rng})
	sym.TypeRefs = append(sym.TypeRefs, TypeRefEntry{Simple: &TypeRef{Target: name, Kind: RefExpression, Range: rng}})
}

func recordChainReference(ctx *extractionContext, sym *HirSymbol, n *syntax.RedNode) {
	var parts []ChainPart
	nodes := n.ChildNodes()
	if len(nodes) > 0 {
		if base := nodes[0].FirstChild(syntax.QualifiedName); base != nil {
			if id := base.FirstToken(token.Ident); id != nil {
				parts = append(parts, ChainPart{Name: id.Green.Text, Range: ctx.span(id.Range().Start, id.Range().End)})
			}
		}
	}
	for _, seg := range n.ChildrenOfKind(syntax.ExprFeatureChainSegment) {
		if id := seg.FirstToken(token.Ident); id != nil {
			parts = append(parts, ChainPart{Name: id.Green.Text, Range: ctx.span(id.Range().Start, id.Range().End)})
		}
	}
	if len(parts) == 0 {
		return
	}

	flat := parts[0].Name
	for _, p := range parts[1:] {
		flat += "." + p.Name
	}
	first, last := parts[0].Range, parts[len(parts)-1].Range
	rel := Relationship{
		Kind:   RelExpression,
		Target: flat,
		Chain:  parts,
		Range:  Span{StartLine: first.StartLine, StartCol: first.StartCol, EndLine: last.EndLine, EndCol: last.EndCol},
	}
	sym.Relationships = append(sym.Relationships, rel)

	chain := &TypeRefChain{}
	for _, p := range parts {
		chain.Parts = append(chain.Parts, TypeRef{Target: p.Name, Kind: RefExpression, Range: p.Range})
	}
	sym.TypeRefs = append(sym.TypeRefs, TypeRefEntry{Chain: chain})
}

func hasSimpleExpressionRef(sym *HirSymbol, target string) bool {
	for _, rel := range sym.Relationships {
		if rel.Kind == RelExpression && rel.Target == target && len(rel.Chain) == 0 {
			return true
		}
	}
	return false
}
