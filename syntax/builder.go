package syntax

import "github.com/termfx/sysml-core/token"

// Builder accepts an ordered event stream — StartNode/Token/FinishNode/
// Error — and produces a root GreenNode plus a flat diagnostic list
// It never inspects token text or kind beyond storing it;
// all grammatical decisions live in Parser.
type Builder struct {
	stack []*frame
	diags []Diagnostic
}

type frame struct {
	kind     Kind
	children []Element
}

// NewBuilder returns a Builder ready to receive events for a single file.
func NewBuilder() *Builder {
	return &Builder{}
}

// StartNode opens a new node of the given kind; subsequent Token/StartNode
// calls append children to it until the matching FinishNode.
func (b *Builder) StartNode(kind Kind) {
	b.stack = append(b.stack, &frame{kind: kind})
}

// Token appends a leaf token (trivia or significant) to the node currently
// open on top of the stack.
func (b *Builder) Token(tok token.Token) {
	b.append(&GreenToken{Kind: tok.Kind, Text: tok.Text})
}

// TokenAs appends a leaf token whose Kind is reclassified (e.g. an Ident
// recognized as a contextual keyword) while preserving its original text.
func (b *Builder) TokenAs(kind token.Kind, text string) {
	b.append(&GreenToken{Kind: kind, Text: text})
}

func (b *Builder) append(e Element) {
	if len(b.stack) == 0 {
		// No open node: this should only happen for stray trivia before
		// StartNode(SourceFile); callers always start SourceFile first.
		b.stack = append(b.stack, &frame{kind: SourceFile})
	}
	top := b.stack[len(b.stack)-1]
	top.children = append(top.children, e)
}

// FinishNode closes the node on top of the stack, folding it into its
// parent as a completed GreenNode (or returning it as the root if the
// stack becomes empty).
func (b *Builder) FinishNode() *GreenNode {
	n := len(b.stack)
	top := b.stack[n-1]
	b.stack = b.stack[:n-1]
	green := NewGreenNode(top.kind, top.children)
	if len(b.stack) == 0 {
		return green
	}
	b.append(green)
	return green
}

// Checkpoint marks a position within the currently open node's children,
// to be used later with StartNodeAt. This is what lets a left-associative
// binary expression level parse its left operand first and only decide
// afterward — once it has seen the operator — that the operand needs to
// be wrapped in a binary-expression node: each precedence level is only
// a real node when its operator actually appears.
type Checkpoint int

// Checkpoint returns a mark at the current end of the open node's children.
func (b *Builder) Checkpoint() Checkpoint {
	top := b.stack[len(b.stack)-1]
	return Checkpoint(len(top.children))
}

// StartNodeAt opens a new node of the given kind that retroactively adopts
// every child appended to the current node since cp was taken, removing
// them from the current node and reparenting them under the new one. The
// new node becomes the node on top of the stack, to be closed normally
// with FinishNode.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	top := b.stack[len(b.stack)-1]
	adopted := append([]Element(nil), top.children[cp:]...)
	top.children = top.children[:cp]
	b.stack = append(b.stack, &frame{kind: kind, children: adopted})
}

// Error records a diagnostic. It does not affect tree shape — the builder
// keeps accepting events regardless of how many errors have been recorded,
// which is what lets the tree always cover every byte of input even on
// malformed sources.
func (b *Builder) Error(d Diagnostic) {
	b.diags = append(b.diags, d)
}

// Diagnostics returns all recorded diagnostics in emission order.
func (b *Builder) Diagnostics() []Diagnostic {
	return b.diags
}
