package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/termfx/sysml-core/token"
)

func TestGreenNode_LengthInvariant(t *testing.T) {
	a := &GreenToken{Kind: token.Ident, Text: "foo"}
	b := &GreenToken{Kind: token.Whitespace, Text: " "}
	c := &GreenToken{Kind: token.Ident, Text: "bar"}
	leaf := NewGreenNode(Name, []Element{a, b, c})
	assert.Equal(t, len("foo bar"), leaf.Len())

	root := NewGreenNode(SourceFile, []Element{leaf})
	assert.Equal(t, leaf.Len(), root.Len())
	assert.Equal(t, "foo bar", Text(root))
}

func TestBuilder_RoundTrip(t *testing.T) {
	src := "part def Vehicle ;"
	toks := token.Lex(src)

	b := NewBuilder()
	b.StartNode(SourceFile)
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		b.Token(tok)
	}
	root := b.FinishNode()

	assert.Equal(t, src, Text(root))
	assert.Equal(t, len(src), root.Len())
}
