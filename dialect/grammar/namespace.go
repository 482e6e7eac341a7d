package grammar

import (
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/syntax/expr"
	"github.com/termfx/sysml-core/token"
)

func parsePackageMember(p *syntax.Parser, spec Spec, kind syntax.Kind) {
	p.Start(kind)
	if kind == syntax.LibraryPackage {
		p.BumpKeyword("library")
	}
	p.BumpKeyword("package")
	parseShortName(p)
	parseNameIfPresent(p)
	parseBodyOrSemi(p, spec, syntax.NamespaceBody, syntax.ContextNamespaceBody)
	p.Finish()
}

// parseImportTarget parses a qualified name that may end in a "::*"
// wildcard segment, which expr.ParseQualifiedName does not handle (import
// and the view render/expose members are the only places a bare "*"
// segment is legal).
func parseImportTarget(p *syntax.Parser) {
	p.Start(syntax.QualifiedName)
	p.Expect(token.Ident)
	for p.At(token.ColonColon) {
		p.Bump()
		if p.At(token.Star) {
			p.Bump()
			break
		}
		p.Expect(token.Ident)
	}
	p.Finish()
}

func parseImport(p *syntax.Parser) {
	p.Start(syntax.Import)
	p.BumpKeyword("import")
	p.PushContext(syntax.ContextImport)
	parseImportTarget(p)
	p.PopContext()
	if p.At(token.LBracket) {
		parseFilterBracket(p)
	}
	p.Expect(token.Semicolon)
	p.Finish()
}

// parseFilterBracket parses an element-filter annotation on an import,
// e.g. "import Pkg::* [@Published];".
func parseFilterBracket(p *syntax.Parser) {
	p.Start(syntax.Filter)
	p.Bump() // [
	p.PushContext(syntax.ContextFilter)
	for p.At(token.At) {
		p.Bump()
		expr.ParseQualifiedName(p)
		if !p.At(token.Comma) {
			break
		}
		p.Bump()
	}
	p.PopContext()
	p.Expect(token.RBracket)
	p.Finish()
}

func parseAlias(p *syntax.Parser) {
	p.Start(syntax.Alias)
	p.BumpKeyword("alias")
	parseShortName(p)
	parseNameIfPresent(p, "for")
	p.PushContext(syntax.ContextAlias)
	p.ExpectKeyword("for")
	expr.ParseQualifiedName(p)
	p.PopContext()
	p.Expect(token.Semicolon)
	p.Finish()
}

func parseDependency(p *syntax.Parser) {
	p.Start(syntax.Dependency)
	p.BumpKeyword("dependency")
	parseNameIfPresent(p, "from")
	p.PushContext(syntax.ContextDependency)
	p.ExpectKeyword("from")
	parseTargetList(p)
	p.ExpectKeyword("to")
	parseTargetList(p)
	p.PopContext()
	p.Expect(token.Semicolon)
	p.Finish()
}

func parseDoc(p *syntax.Parser) {
	p.Start(syntax.Doc)
	p.BumpKeyword("doc")
	parseShortName(p)
	p.Expect(token.StringLiteral)
	p.Expect(token.Semicolon)
	p.Finish()
}

func parseComment(p *syntax.Parser) {
	p.Start(syntax.Comment)
	p.BumpKeyword("comment")
	parseShortName(p)
	if p.AtKeyword("about") {
		p.BumpKeyword("about")
		parseTargetList(p)
	}
	p.Expect(token.StringLiteral)
	p.Expect(token.Semicolon)
	p.Finish()
}

func parseFilter(p *syntax.Parser) {
	p.Start(syntax.Filter)
	p.BumpKeyword("filter")
	p.PushContext(syntax.ContextFilter)
	expr.Parse(p)
	p.PopContext()
	p.Expect(token.Semicolon)
	p.Finish()
}

func parseMetadata(p *syntax.Parser, spec Spec) {
	p.Start(syntax.Metadata)
	p.Bump() // @
	expr.ParseQualifiedName(p)
	parseBodyOrSemi(p, spec, syntax.MetadataBody, syntax.ContextMetadataBody)
	p.Finish()
}

// parseBodyOrSemi parses either a braced body (recursing back into
// parseMember) or a bare terminating semicolon — the shape shared by
// package, definition, usage, and metadata members.
func parseBodyOrSemi(p *syntax.Parser, spec Spec, bodyKind syntax.Kind, ctx syntax.Context) {
	if p.At(token.LBrace) {
		p.ParseBracedBody(bodyKind, ctx, func() bool { return parseMember(p, spec) })
	} else {
		p.Expect(token.Semicolon)
	}
}
