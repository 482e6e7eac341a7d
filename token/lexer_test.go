package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconstitute(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text)
	}
	return b.String()
}

func TestLex_RoundTrip(t *testing.T) {
	srcs := []string{
		"part def Vehicle;",
		"package P { part x : T; }",
		"/* block */ // line\n abstract part def V :> Base;",
		"attribute x = a.b.c;",
		"x = 'weird name' + `also weird`;",
		"connect (a, b, c);",
		"",
	}
	for _, src := range srcs {
		toks := Lex(src)
		require.NotEmpty(t, toks)
		assert.Equal(t, EOF, toks[len(toks)-1].Kind)
		assert.Equal(t, src, reconstitute(toks))
	}
}

func TestLex_NumberKinds(t *testing.T) {
	toks := Lex("1 1.5 1e10 1.5e-3 .5")
	var kinds []Kind
	for _, tok := range toks {
		if tok.Kind != Whitespace && tok.Kind != EOF {
			kinds = append(kinds, tok.Kind)
		}
	}
	// ".5" lexes as Dot + IntLiteral since a leading bare dot is not part
	// of the number grammar (mirrors the source: `n[..upper]` relies on
	// `.` being its own token).
	assert.Equal(t, []Kind{IntLiteral, RealLiteral, RealLiteral, RealLiteral, Dot, IntLiteral}, kinds)
}

func TestLex_MultiCharPunctuation(t *testing.T) {
	toks := Lex(":>> :> ::> :: .. -> => @@ ?? .? === !==")
	var kinds []Kind
	for _, tok := range toks {
		if tok.Kind != Whitespace && tok.Kind != EOF {
			kinds = append(kinds, tok.Kind)
		}
	}
	assert.Equal(t, []Kind{
		ColonGTGT, ColonGT, ColonColonGT, ColonColon, DotDot, Arrow, FatArrow,
		AtAt, QuestionQuestion, QuestionDot, EqEqEq, NotEqEq,
	}, kinds)
}

func TestLex_UnterminatedBlockComment(t *testing.T) {
	toks := Lex("/* never closed")
	require.Len(t, toks, 2)
	assert.Equal(t, Error, toks[0].Kind)
	assert.Equal(t, "/* never closed", toks[0].Text)
	assert.Equal(t, EOF, toks[1].Kind)
}

func TestLex_UnterminatedStringLiteral(t *testing.T) {
	toks := Lex(`"never closed`)
	require.Len(t, toks, 2)
	assert.Equal(t, Error, toks[0].Kind)
	assert.Equal(t, `"never closed`, toks[0].Text)
	assert.Equal(t, EOF, toks[1].Kind)
}

func TestLex_UnknownByteIsErrorButCovers(t *testing.T) {
	toks := Lex("a \x01 b")
	assert.Equal(t, "a \x01 b", reconstitute(toks))
	foundErr := false
	for _, tok := range toks {
		if tok.Kind == Error {
			foundErr = true
			assert.Equal(t, "\x01", tok.Text)
		}
	}
	assert.True(t, foundErr)
}
