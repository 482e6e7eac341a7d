package token

// Range is a half-open byte range [Start, End) into the source text.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Token is a single lexical unit: a kind, the exact source text it covers,
// and its byte range. Trivia tokens (whitespace, comments) are ordinary
// Tokens — nothing about the type distinguishes them from significant
// tokens; callers use IsTrivia(tok.Kind) to filter.
type Token struct {
	Kind Kind
	Text string
	Range
}
