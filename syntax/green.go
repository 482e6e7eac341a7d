package syntax

import "github.com/termfx/sysml-core/token"

// Element is either a *GreenNode or a *GreenToken. It is the unit stored in
// a GreenNode's Children slice.
type Element interface {
	Len() int
	isElement()
}

// GreenToken is the leaf element of the green tree: an immutable wrapper
// around a lexed token. Its Kind can differ from the lexer's raw Kind for
// identifiers that the parser has reclassified as keywords (see
// Parser.BumpAs) — the Text is always the original source slice.
type GreenToken struct {
	Kind token.Kind
	Text string
}

func (t *GreenToken) Len() int   { return len(t.Text) }
func (t *GreenToken) isElement() {}

// GreenNode is an immutable, structurally-shared interior node. Per
// core invariants: sum(children lengths) == Len(), and a node is
// never re-parented (green nodes are referenced, never mutated, once
// built).
type GreenNode struct {
	Kind     Kind
	Children []Element
	length   int
}

func (n *GreenNode) Len() int   { return n.length }
func (n *GreenNode) isElement() {}

// NewGreenNode constructs a node, computing its length from its children.
// This is the only place node length is derived, which is what guarantees
// the invariant that sum of children lengths == node length
// holds for every node the builder ever produces.
func NewGreenNode(kind Kind, children []Element) *GreenNode {
	total := 0
	for _, c := range children {
		total += c.Len()
	}
	return &GreenNode{Kind: kind, Children: children, length: total}
}

// Text concatenates the full source text covered by an element. For a
// GreenNode this recurses over all children (trivia included), so
// Text(root) always reproduces the original source byte-for-byte.
func Text(e Element) string {
	switch v := e.(type) {
	case *GreenToken:
		return v.Text
	case *GreenNode:
		var b []byte
		for _, c := range v.Children {
			b = append(b, Text(c)...)
		}
		return string(b)
	default:
		return ""
	}
}
