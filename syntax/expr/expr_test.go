package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/syntax/expr"
	"github.com/termfx/sysml-core/token"
)

func parseExpr(t *testing.T, src string) (*syntax.GreenNode, *syntax.Parser) {
	t.Helper()
	p := syntax.NewParser(src, token.KerML)
	p.Start(syntax.SourceFile)
	expr.Parse(p)
	if p.AtEOF() {
		p.Bump() // EOF: attaches any trailing trivia to the tree
	}
	root := p.Finish()
	return root, p
}

func TestExpr_RoundTrip(t *testing.T) {
	srcs := []string{
		"a + b * c",
		"a . b . c",
		"a -> foo { in x : T x + 1 }",
		"not a and b or c",
		"x ? y : z",
		"a ?? b",
		"2 ** 3 ** 4",
		"new Vehicle ( a , b )",
		"a istype Vehicle",
		"istype Vehicle",
		"hastype Vehicle",
		"a as Vehicle",
		"a meta Meta",
		"all Vehicle",
		"( a , b , c )",
		"a # ( 1 , 2 )",
		"a [ 0 ]",
		"a .? { b > 0 }",
		"a .{ b }",
		"@ Meta",
	}
	for _, src := range srcs {
		root, p := parseExpr(t, src)
		assert.Empty(t, p.Diagnostics(), "src=%q", src)
		assert.Equal(t, src, syntax.Text(root), "src=%q", src)
	}
}

func TestExpr_AdditiveBindsLooserThanMultiplicative(t *testing.T) {
	root, _ := parseExpr(t, "a+b*c")
	red := syntax.NewRed(root)
	add := red.FirstChild(syntax.ExprAdditive)
	require.NotNil(t, add)
	mul := add.FirstChild(syntax.ExprMultiplicative)
	require.NotNil(t, mul)
}

func TestExpr_ExponentIsRightAssociative(t *testing.T) {
	root, _ := parseExpr(t, "2**3**4")
	red := syntax.NewRed(root)
	outer := red.FirstChild(syntax.ExprExponent)
	require.NotNil(t, outer)
	inner := outer.FirstChild(syntax.ExprExponent)
	require.NotNil(t, inner, "right operand of the outer exponent must itself be an exponent node")
}

func TestExpr_FeatureChainFlattensConsecutiveSegments(t *testing.T) {
	root, _ := parseExpr(t, "a.b.c")
	red := syntax.NewRed(root)
	chain := red.FirstChild(syntax.ExprFeatureChain)
	require.NotNil(t, chain)
	segs := chain.ChildrenOfKind(syntax.ExprFeatureChainSegment)
	assert.Len(t, segs, 2, "a.b.c has one base (a) plus two chained segments (.b, .c)")

	nested := chain.FirstChild(syntax.ExprFeatureChain)
	assert.Nil(t, nested, "chain segments must not nest one ExprFeatureChain per dot")
}

func TestExpr_UnclosedParenEmitsE0402OrStructuralError(t *testing.T) {
	p := syntax.NewParser("( a", token.KerML)
	p.Start(syntax.SourceFile)
	expr.Parse(p)
	root := p.Finish()

	assert.NotEmpty(t, p.Diagnostics())
	assert.Equal(t, "( a", syntax.Text(root))
}

func TestExpr_MissingOperandRecoversRatherThanPanicking(t *testing.T) {
	require.NotPanics(t, func() {
		root, p := parseExpr(t, "a + ")
		assert.Equal(t, "a + ", syntax.Text(root))
		assert.NotEmpty(t, p.Diagnostics())
	})
}

func TestExpr_ClassificationPrefixFormUsesImplicitSelfOperand(t *testing.T) {
	root, _ := parseExpr(t, "istype Vehicle")
	red := syntax.NewRed(root)
	cls := red.FirstChild(syntax.ExprClassification)
	require.NotNil(t, cls)
	assert.Nil(t, cls.FirstChild(syntax.ExprRelational))
}

func TestExpr_ClassificationInfixAppliesAtMostOnce(t *testing.T) {
	root, _ := parseExpr(t, "a istype Vehicle istype Other")
	red := syntax.NewRed(root)
	cls := red.FirstChild(syntax.ExprClassification)
	require.NotNil(t, cls)
	assert.Equal(t, "a istype Vehicle", cls.Text(), "the second istype must be left unparsed, not chained")
}
