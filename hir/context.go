package hir

import (
	"fmt"

	"github.com/termfx/sysml-core/internal/lineindex"
)

// scopeFrame is one level of the extraction scope stack: the enclosing
// qualified-name prefix plus its own anonymous-usage counter, which resets
// whenever a new scope is pushed so two different scopes never collide on
// the same ordinal.
type scopeFrame struct {
	name        string
	kind        SymbolKind
	anonCounter int
}

// extractionContext carries the running state a single extraction pass
// threads through every member dispatch: the file identity, the current
// scope-qualification prefix, per-scope anonymous-name counters, and the
// line index used to turn byte offsets into (line, col) pairs.
type extractionContext struct {
	fileID string
	lines  *lineindex.Index
	stack  []scopeFrame
}

func newExtractionContext(fileID string, src string) *extractionContext {
	return &extractionContext{
		fileID: fileID,
		lines:  lineindex.New(src),
		stack:  []scopeFrame{{name: ""}},
	}
}

// pushScope enters a new named scope; its qualified-name prefix is the
// parent's prefix joined with name (or just name at the top level). kind
// records what enclosing construct this scope belongs to, so nested
// extraction can special-case e.g. a bare succession inside a state.
func (ctx *extractionContext) pushScope(name string, kind SymbolKind) {
	ctx.stack = append(ctx.stack, scopeFrame{name: ctx.qualify(name), kind: kind})
}

func (ctx *extractionContext) popScope() {
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
}

// currentScopeName returns the qualified name of the scope extraction is
// presently inside (the top of the stack).
func (ctx *extractionContext) currentScopeName() string {
	return ctx.stack[len(ctx.stack)-1].name
}

// enclosingKind returns the SymbolKind of the scope extraction is
// presently inside.
func (ctx *extractionContext) enclosingKind() SymbolKind {
	return ctx.stack[len(ctx.stack)-1].kind
}

// qualify joins name onto the current scope's prefix with "::".
func (ctx *extractionContext) qualify(name string) string {
	top := ctx.stack[len(ctx.stack)-1]
	if top.name == "" {
		return name
	}
	return top.name + "::" + name
}

// nextAnonOrdinal returns the next disambiguating ordinal for an
// anonymous usage in the current scope, incrementing the counter.
func (ctx *extractionContext) nextAnonOrdinal() int {
	top := &ctx.stack[len(ctx.stack)-1]
	top.anonCounter++
	return top.anonCounter
}

// anonName builds a synthetic scope name for an unnamed usage: the
// relationship-kind sigil, the target it points at (or "" if it has
// none), and the declaring line for readability, with the per-scope
// ordinal as the actual uniqueness guarantee.
func anonName(ctx *extractionContext, kind RelKind, target string, line int) string {
	tag := anonPrefix(kind)
	n := ctx.nextAnonOrdinal()
	if target == "" {
		return fmt.Sprintf("%s$anon%d@L%d", tag, n, line)
	}
	return fmt.Sprintf("%s%s$%d@L%d", tag, target, n, line)
}

func (ctx *extractionContext) span(startOffset, endOffset int) Span {
	s := ctx.lines.LineCol(startOffset)
	e := ctx.lines.LineCol(endOffset)
	return Span{StartLine: s.Line, StartCol: s.Col, EndLine: e.Line, EndCol: e.Col}
}
