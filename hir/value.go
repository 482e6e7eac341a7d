package hir

import (
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

// binaryExprKinds lists every operator node of the precedence chain,
// parseConditional through parseExponent. Most wrap a left operand, an
// operator and a right operand; a conditional has three operands and a
// prefix-form classification only one, and every operand node present
// becomes one entry of Operands.
var binaryExprKinds = map[syntax.Kind]bool{
	syntax.ExprConditional:    true,
	syntax.ExprNullCoalesce:   true,
	syntax.ExprImplies:        true,
	syntax.ExprOr:             true,
	syntax.ExprXor:            true,
	syntax.ExprAnd:            true,
	syntax.ExprEquality:       true,
	syntax.ExprClassification: true,
	syntax.ExprRelational:     true,
	syntax.ExprRange:          true,
	syntax.ExprAdditive:       true,
	syntax.ExprMultiplicative: true,
	syntax.ExprExponent:       true,
}

// buildValue converts one expression subtree into a Value, walking just
// enough of the shape to support display and round-tripping — it does not
// evaluate anything.
func buildValue(r *syntax.RedNode) *Value {
	if r == nil {
		return nil
	}
	switch {
	case binaryExprKinds[r.Green.Kind]:
		nodes := r.ChildNodes()
		v := &Value{Kind: "binary", Operator: operatorText(r)}
		for _, n := range nodes {
			v.Operands = append(v.Operands, buildValue(n))
		}
		return v

	case r.Green.Kind == syntax.ExprUnary:
		nodes := r.ChildNodes()
		v := &Value{Kind: "unary", Operator: operatorText(r)}
		if len(nodes) > 0 {
			v.Operands = []*Value{buildValue(nodes[0])}
		}
		return v

	case r.Green.Kind == syntax.ExprExtent:
		nodes := r.ChildNodes()
		v := &Value{Kind: "unary", Operator: "all"}
		if len(nodes) > 0 {
			v.Operands = []*Value{buildValue(nodes[0])}
		}
		return v

	case r.Green.Kind == syntax.ExprLiteral:
		// The node also holds any leading trivia; Text is the literal token alone.
		for _, t := range r.ChildTokens() {
			if !token.IsTrivia(t.Green.Kind) {
				return &Value{Kind: "literal", Text: t.Green.Text}
			}
		}
		return &Value{Kind: "literal", Text: r.Text()}

	case r.Green.Kind == syntax.ExprName:
		qn := r.FirstChild(syntax.QualifiedName)
		name := ""
		if qn != nil {
			name = qualifiedNameString(qn)
		}
		if args := r.FirstChild(syntax.ExprArgumentList); args != nil {
			v := &Value{Kind: "invocation", Text: name}
			for _, a := range args.ChildrenOfKind(syntax.ExprArgument) {
				v.Operands = append(v.Operands, buildArgument(a))
			}
			return v
		}
		return &Value{Kind: "name", Text: name}

	case r.Green.Kind == syntax.ExprFeatureChain:
		v := &Value{Kind: "chain"}
		nodes := r.ChildNodes()
		if len(nodes) > 0 {
			if base := buildValue(nodes[0]); base != nil {
				v.Chain = append(v.Chain, base.Text)
			}
		}
		for _, seg := range r.ChildrenOfKind(syntax.ExprFeatureChainSegment) {
			if id := seg.FirstToken(token.Ident); id != nil {
				v.Chain = append(v.Chain, id.Green.Text)
			}
		}
		return v

	case r.Green.Kind == syntax.ExprInstantiation:
		qn := r.FirstChild(syntax.QualifiedName)
		v := &Value{Kind: "invocation", Operator: "new"}
		if qn != nil {
			v.Text = qualifiedNameString(qn)
		}
		if args := r.FirstChild(syntax.ExprArgumentList); args != nil {
			for _, a := range args.ChildrenOfKind(syntax.ExprArgument) {
				v.Operands = append(v.Operands, buildArgument(a))
			}
		}
		return v

	case r.Green.Kind == syntax.ExprParenOrSeq:
		nodes := r.ChildNodes()
		if len(nodes) == 1 {
			return buildValue(nodes[0])
		}
		v := &Value{Kind: "sequence"}
		for _, n := range nodes {
			v.Operands = append(v.Operands, buildValue(n))
		}
		return v

	default:
		return &Value{Kind: "raw", Text: r.Text()}
	}
}

func buildArgument(a *syntax.RedNode) *Value {
	nodes := a.ChildNodes()
	if len(nodes) == 0 {
		return &Value{Kind: "raw", Text: a.Text()}
	}
	return buildValue(nodes[len(nodes)-1])
}

// operatorText returns the first non-identifier, non-trivia token's
// spelling among a binary/unary node's direct children — the operator
// that distinguishes one precedence-chain node from its siblings.
func operatorText(r *syntax.RedNode) string {
	for _, t := range r.ChildTokens() {
		if token.IsTrivia(t.Green.Kind) || t.Green.Kind == token.Ident {
			continue
		}
		return t.Green.Text
	}
	return ""
}

func qualifiedNameString(qn *syntax.RedNode) string {
	var parts []string
	for _, t := range qn.ChildTokens() {
		if t.Green.Kind == token.Ident {
			parts = append(parts, t.Green.Text)
		}
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "::"
		}
		out += p
	}
	return out
}
