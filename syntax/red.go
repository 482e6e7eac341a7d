package syntax

import "github.com/termfx/sysml-core/token"

// RedNode is an ephemeral, positioned view over a GreenNode: it adds the
// absolute byte offset and the parent link that the green tree itself
// deliberately omits (so the same green subtree can be shared from
// multiple parses). Red nodes are produced on demand by Children()/Parent()
// and are never cached past a single traversal.
type RedNode struct {
	Green  *GreenNode
	Offset int
	Parent *RedNode
}

// NewRed wraps a root green node as a red tree rooted at offset 0.
func NewRed(g *GreenNode) *RedNode {
	return &RedNode{Green: g, Offset: 0, Parent: nil}
}

// Range returns the red node's absolute byte range.
func (r *RedNode) Range() token.Range {
	return token.Range{Start: r.Offset, End: r.Offset + r.Green.Len()}
}

// Text returns the full source text this node covers (trivia included).
func (r *RedNode) Text() string { return Text(r.Green) }

// RedElement is either a *RedNode or a *RedToken, mirroring Element for the
// positioned view.
type RedElement interface {
	Range() token.Range
}

// RedToken is the positioned view over a GreenToken.
type RedToken struct {
	Green  *GreenToken
	Offset int
	Parent *RedNode
}

func (t *RedToken) Range() token.Range {
	return token.Range{Start: t.Offset, End: t.Offset + t.Green.Len()}
}

// Children returns the positioned children of r in source order, skipping
// nothing — callers that want to skip trivia filter on the resulting
// elements' kinds themselves (typed AST views do this).
func (r *RedNode) Children() []RedElement {
	out := make([]RedElement, 0, len(r.Green.Children))
	offset := r.Offset
	for _, c := range r.Green.Children {
		switch v := c.(type) {
		case *GreenNode:
			child := &RedNode{Green: v, Offset: offset, Parent: r}
			out = append(out, child)
		case *GreenToken:
			out = append(out, &RedToken{Green: v, Offset: offset, Parent: r})
		}
		offset += c.Len()
	}
	return out
}

// ChildNodes returns only the node children (no tokens), in source order.
func (r *RedNode) ChildNodes() []*RedNode {
	var out []*RedNode
	for _, c := range r.Children() {
		if n, ok := c.(*RedNode); ok {
			out = append(out, n)
		}
	}
	return out
}

// ChildTokens returns only the token children, in source order.
func (r *RedNode) ChildTokens() []*RedToken {
	var out []*RedToken
	for _, c := range r.Children() {
		if t, ok := c.(*RedToken); ok {
			out = append(out, t)
		}
	}
	return out
}

// FirstChild returns the first child node of the given kind, or nil.
func (r *RedNode) FirstChild(kind Kind) *RedNode {
	for _, c := range r.ChildNodes() {
		if c.Green.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOfKind returns all child nodes of the given kind, in order.
func (r *RedNode) ChildrenOfKind(kind Kind) []*RedNode {
	var out []*RedNode
	for _, c := range r.ChildNodes() {
		if c.Green.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// FirstToken returns the first direct child token of the given kind
// (trivia excluded implicitly since trivia tokens use their own kinds).
func (r *RedNode) FirstToken(kind token.Kind) *RedToken {
	for _, c := range r.ChildTokens() {
		if c.Green.Kind == kind {
			return c
		}
	}
	return nil
}

// Descendants performs a lazy-feeling (but eagerly collected) preorder
// walk over all descendant nodes, innermost last is not guaranteed —
// order is strict document order (parent before children, left to right).
func (r *RedNode) Descendants() []*RedNode {
	var out []*RedNode
	var walk func(n *RedNode)
	walk = func(n *RedNode) {
		out = append(out, n)
		for _, c := range n.ChildNodes() {
			walk(c)
		}
	}
	for _, c := range r.ChildNodes() {
		walk(c)
	}
	return out
}
