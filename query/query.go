// Package query is the pure, stateless entry point into the parser and
// symbol extractor: lex+parse a source string for a named dialect, then
// extract its symbols, without ever touching a cache or the filesystem
// itself. query/cache layers memoization on top of these two calls.
package query

import (
	"fmt"

	"github.com/termfx/sysml-core/dialect/kerml"
	"github.com/termfx/sysml-core/dialect/sysml"
	"github.com/termfx/sysml-core/hir"
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

// Parse lexes and parses source under the named dialect, returning the
// lossless green tree plus every diagnostic collected along the way.
// It never returns an error: a malformed source produces a tree with
// diagnostics attached, not a failed call — the parser never panics and
// always recovers far enough to finish the file.
func Parse(dialect token.Dialect, source string) *syntax.ParsedFile {
	switch dialect {
	case token.SysML:
		return sysml.Parse(source)
	case token.KerML:
		return kerml.Parse(source)
	default:
		panic(fmt.Sprintf("query: unknown dialect %v", dialect))
	}
}

// ExtractSymbols runs the pure symbol extractor over an already-parsed
// file. It is a thin wrapper over hir.ExtractSymbols; callers still use
// hir's types for the result (query/cache and cmd/sysmlc import hir).
func ExtractSymbols(fileID string, pf *syntax.ParsedFile) hir.ExtractionResult {
	return hir.ExtractSymbols(fileID, pf)
}

// ParseAndExtract is the common two-step call: parse then extract,
// returning both results so a caller can report diagnostics even when
// extraction also succeeds (the two are independent — extraction runs
// over whatever tree shape the parser recovered, valid or not).
func ParseAndExtract(fileID string, dialect token.Dialect, source string) (*syntax.ParsedFile, hir.ExtractionResult) {
	pf := Parse(dialect, source)
	return pf, ExtractSymbols(fileID, pf)
}
