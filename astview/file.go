package astview

import "github.com/termfx/sysml-core/syntax"

// SourceFile wraps the root SOURCE_FILE node.
type SourceFile struct{ base }

func CastSourceFile(r *syntax.RedNode) (SourceFile, bool) {
	if r == nil || r.Green.Kind != syntax.SourceFile {
		return SourceFile{}, false
	}
	return SourceFile{base{r}}, true
}

// NewSourceFile wraps a parsed green tree's root as a SourceFile view.
func NewSourceFile(g *syntax.GreenNode) SourceFile {
	sf, _ := CastSourceFile(syntax.NewRed(g))
	return sf
}

// Members returns every top-level namespace member in source order.
func (f SourceFile) Members() []*syntax.RedNode { return f.red.ChildNodes() }
