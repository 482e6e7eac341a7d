// Package astview provides typed wrappers over *syntax.RedNode. Each
// wrapper exposes domain accessors — first matching child of a kind,
// iterators over children of a kind, domain-shaped queries — without
// rebuilding or mutating the underlying tree. A cast predicate constructs a
// wrapper from a red node whose kind matches; everything here borrows from
// the green tree it was handed.
package astview

import (
	"strings"

	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

// Node is satisfied by every typed wrapper in this package; it is the
// constraint Descendants uses to walk the tree generically.
type Node interface {
	Red() *syntax.RedNode
}

// base is embedded by every wrapper to supply Red()/Range()/Text().
type base struct {
	red *syntax.RedNode
}

func (b base) Red() *syntax.RedNode    { return b.red }
func (b base) Range() token.Range      { return b.red.Range() }
func (b base) Text() string            { return b.red.Text() }

// Descendants performs a preorder walk of root, yielding every descendant
// node whose kind cast accepts, wrapped by cast. T names one syntactic
// category and cast is that category's constructor.
func Descendants[T Node](root *syntax.RedNode, cast func(*syntax.RedNode) (T, bool)) []T {
	var out []T
	for _, d := range root.Descendants() {
		if v, ok := cast(d); ok {
			out = append(out, v)
		}
	}
	return out
}

// ---- names ------------------------------------------------------------

// Name wraps a NAME node: a plain (possibly backtick/single-quote
// delimited) identifier.
type Name struct{ base }

func CastName(r *syntax.RedNode) (Name, bool) {
	if r == nil || r.Green.Kind != syntax.Name {
		return Name{}, false
	}
	return Name{base{r}}, true
}

// Text returns the name with any backtick/single-quote delimiters stripped
// so callers see the canonical identifier, not its source spelling.
func (n Name) Text() string {
	return stripNameDelimiters(n.red.Text())
}

func stripNameDelimiters(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if s[0] == '\'' && s[len(s)-1] == '\'' {
			return s[1 : len(s)-1]
		}
		if s[0] == '`' && s[len(s)-1] == '`' {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// ShortName wraps a SHORT_NAME node ("<x>"); Text returns just "x".
type ShortName struct{ base }

func CastShortName(r *syntax.RedNode) (ShortName, bool) {
	if r == nil || r.Green.Kind != syntax.ShortName {
		return ShortName{}, false
	}
	return ShortName{base{r}}, true
}

func (s ShortName) Text() string {
	for _, t := range s.red.ChildTokens() {
		if t.Green.Kind == token.Ident {
			return stripNameDelimiters(t.Green.Text)
		}
	}
	return ""
}

// QualifiedName wraps a QUALIFIED_NAME node: one or more "::"-separated
// identifier segments, each carrying its own source range.
type QualifiedName struct{ base }

func CastQualifiedName(r *syntax.RedNode) (QualifiedName, bool) {
	if r == nil || r.Green.Kind != syntax.QualifiedName {
		return QualifiedName{}, false
	}
	return QualifiedName{base{r}}, true
}

// Segment is one "::"-delimited part of a qualified name, carrying its own
// absolute byte range.
type Segment struct {
	Name  string
	Range token.Range
}

// SegmentsWithRanges returns every identifier segment of qn in source
// order, each with its own span — the basis for per-segment hover support.
func (qn QualifiedName) SegmentsWithRanges() []Segment {
	var out []Segment
	for _, t := range qn.red.ChildTokens() {
		if t.Green.Kind == token.Ident || t.Green.Kind == token.Star {
			out = append(out, Segment{
				Name:  stripNameDelimiters(t.Green.Text),
				Range: t.Range(),
			})
		}
	}
	return out
}

// String joins the segments with "::", the canonical target string used
// for relationship/type-ref targets.
func (qn QualifiedName) String() string {
	segs := qn.SegmentsWithRanges()
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.Name
	}
	return strings.Join(parts, "::")
}

// IsWildcard reports whether the last segment is the bare "*" import form.
func (qn QualifiedName) IsWildcard() bool {
	segs := qn.SegmentsWithRanges()
	return len(segs) > 0 && segs[len(segs)-1].Name == "*"
}

// firstQualifiedName returns the first direct QUALIFIED_NAME child of r.
func firstQualifiedName(r *syntax.RedNode) (QualifiedName, bool) {
	return CastQualifiedName(r.FirstChild(syntax.QualifiedName))
}

// allQualifiedNames returns every direct QUALIFIED_NAME child of r, in
// order — used for comma-separated relationship target lists.
func allQualifiedNames(r *syntax.RedNode) []QualifiedName {
	var out []QualifiedName
	for _, c := range r.ChildrenOfKind(syntax.QualifiedName) {
		out = append(out, QualifiedName{base{c}})
	}
	return out
}
