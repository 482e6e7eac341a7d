package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stoken "github.com/termfx/sysml-core/token"
)

// parseSimpleBody drives ParseBracedBody over a toy grammar where every
// member is a single Name node built from one identifier token, terminated
// by ';'. It exists purely to exercise Parser/ParseBracedBody/ErrorRecover
// without depending on any dialect grammar.
func parseSimpleBody(p *Parser) *GreenNode {
	p.Start(SourceFile)
	p.ExpectKeyword("package")
	p.Start(Name)
	p.Expect(stoken.Ident)
	p.Finish()
	body := p.ParseBracedBody(NamespaceBody, ContextNamespaceBody, func() bool {
		if !p.At(stoken.Ident) {
			return false
		}
		p.Start(Name)
		p.Bump()
		p.Expect(stoken.Semicolon)
		p.Finish()
		return true
	})
	_ = body
	return p.Finish()
}

func TestParseBracedBody_WellFormed(t *testing.T) {
	src := "package P { a ; b ; c ; }"
	p := NewParser(src, stoken.KerML)
	root := parseSimpleBody(p)

	require.Empty(t, p.Diagnostics())
	assert.Equal(t, src, Text(root))
	assert.Equal(t, len(src), root.Len())

	red := NewRed(root)
	body := red.FirstChild(NamespaceBody)
	require.NotNil(t, body)
	names := body.ChildrenOfKind(Name)
	assert.Len(t, names, 3)
}

func TestParseBracedBody_UnclosedEmitsE0202WithRelatedRange(t *testing.T) {
	src := "package P { a ; b ;"
	p := NewParser(src, stoken.KerML)
	root := parseSimpleBody(p)

	diags := p.Diagnostics()
	require.NotEmpty(t, diags)
	last := diags[len(diags)-1]
	assert.Equal(t, E0202, last.Code)
	require.Len(t, last.Related, 1)
	assert.Equal(t, "{", src[last.Related[0].Range.Start:last.Related[0].Range.End])

	// Tree must still cover every byte even though the brace never closed.
	assert.Equal(t, src, Text(root))
}

func TestParseBracedBody_RecoversFromGarbageMember(t *testing.T) {
	src := "package P { a ; ### b ; }"
	p := NewParser(src, stoken.KerML)
	root := parseSimpleBody(p)

	assert.Equal(t, src, Text(root))

	red := NewRed(root)
	body := red.FirstChild(NamespaceBody)
	require.NotNil(t, body)
	names := body.ChildrenOfKind(Name)
	// "a" and "b" both parse as members. '#' is in the body's recovery
	// set, so each one gets an E0201 and an empty Error node and is then
	// consumed by ParseBracedBody's progress guard instead of stalling
	// the member loop.
	assert.Len(t, names, 2)
	assert.NotNil(t, body.FirstChild(Error))

	var sawE0201 bool
	for _, d := range p.Diagnostics() {
		if d.Code == E0201 {
			sawE0201 = true
		}
	}
	assert.True(t, sawE0201)
}

func TestContextStack_PopUnderflowEmitsE0901InsteadOfPanicking(t *testing.T) {
	p := NewParser("", stoken.KerML)
	p.PopContext() // the stack holds only ContextTopLevel, so this already underflows
	require.NotPanics(t, func() { p.PopContext() })

	var sawInternal bool
	for _, d := range p.Diagnostics() {
		if d.Code == E0901 {
			sawInternal = true
		}
	}
	assert.True(t, sawInternal)
}

func TestAtKeyword_MatchesOnlyItsOwnSpelling(t *testing.T) {
	p := NewParser("part", stoken.SysML)
	assert.True(t, p.AtKeyword("part"))
	assert.False(t, p.AtKeyword("action"))
}
