package astview

import (
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

// ---- connectors -----------------------------------------------------------

type ConnectorPart struct{ base }

func CastConnectorPart(r *syntax.RedNode) (ConnectorPart, bool) {
	if r == nil || r.Green.Kind != syntax.ConnectorPart {
		return ConnectorPart{}, false
	}
	return ConnectorPart{base{r}}, true
}

func (c ConnectorPart) Ends() []ConnectorEnd {
	var out []ConnectorEnd
	for _, e := range c.red.ChildrenOfKind(syntax.ConnectorEnd) {
		out = append(out, ConnectorEnd{base{e}})
	}
	return out
}

type ConnectorEnd struct{ base }

func CastConnectorEnd(r *syntax.RedNode) (ConnectorEnd, bool) {
	if r == nil || r.Green.Kind != syntax.ConnectorEnd {
		return ConnectorEnd{}, false
	}
	return ConnectorEnd{base{r}}, true
}

// Name returns the end's own endpoint name, if it has one ("cause1 ::> a").
func (e ConnectorEnd) Name() (Name, bool) { return CastName(e.red.FirstChild(syntax.Name)) }

// Target returns the qualified name the end refers to (the right-hand side
// of "::>", or the end's sole reference if unnamed).
func (e ConnectorEnd) Target() (QualifiedName, bool) { return firstQualifiedName(e.red) }

type BindingConnector struct{ base }

func CastBindingConnector(r *syntax.RedNode) (BindingConnector, bool) {
	if r == nil || r.Green.Kind != syntax.BindingConnector {
		return BindingConnector{}, false
	}
	return BindingConnector{base{r}}, true
}

func (b BindingConnector) Ends() (source, target QualifiedName) {
	qns := allQualifiedNames(b.red)
	if len(qns) > 0 {
		source = qns[0]
	}
	if len(qns) > 1 {
		target = qns[1]
	}
	return
}

// ---- succession / transition ------------------------------------------

type Succession struct{ base }

func CastSuccession(r *syntax.RedNode) (Succession, bool) {
	if r == nil || r.Green.Kind != syntax.Succession {
		return Succession{}, false
	}
	return Succession{base{r}}, true
}

func (s Succession) Name() (Name, bool) { return CastName(s.red.FirstChild(syntax.Name)) }

// Items returns every "first x then y then z" target in source order.
func (s Succession) Items() []SuccessionItem {
	var out []SuccessionItem
	for _, c := range s.red.ChildrenOfKind(syntax.SuccessionItem) {
		out = append(out, SuccessionItem{base{c}})
	}
	return out
}

type SuccessionItem struct{ base }

func (i SuccessionItem) Target() (QualifiedName, bool) { return firstQualifiedName(i.red) }

type Transition struct{ base }

func CastTransition(r *syntax.RedNode) (Transition, bool) {
	if r == nil || r.Green.Kind != syntax.TransitionUsage {
		return Transition{}, false
	}
	return Transition{base{r}}, true
}

func (t Transition) Name() (Name, bool) { return CastName(t.red.FirstChild(syntax.Name)) }

// Source returns the transition's starting state reference — the first
// bare qualified name directly under the node (the "first S" target).
func (t Transition) Source() (QualifiedName, bool) {
	for _, c := range t.red.Children() {
		if n, ok := c.(*syntax.RedNode); ok && n.Green.Kind == syntax.QualifiedName {
			return QualifiedName{base{n}}, true
		}
	}
	return QualifiedName{}, false
}

func (t Transition) Trigger() (QualifiedName, bool) {
	tr := t.red.FirstChild(syntax.TransitionTrigger)
	if tr == nil {
		return QualifiedName{}, false
	}
	return firstQualifiedName(tr)
}

func (t Transition) Guard() *syntax.RedNode {
	g := t.red.FirstChild(syntax.TransitionGuard)
	if g == nil {
		return nil
	}
	nodes := g.ChildNodes()
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func (t Transition) Target() (QualifiedName, bool) {
	eff := t.red.FirstChild(syntax.TransitionEffect)
	if eff == nil {
		return QualifiedName{}, false
	}
	return firstQualifiedName(eff)
}

// ---- send / accept / perform -----------------------------------------

type SendAction struct{ base }

func CastSendAction(r *syntax.RedNode) (SendAction, bool) {
	if r == nil || r.Green.Kind != syntax.SendActionUsage {
		return SendAction{}, false
	}
	return SendAction{base{r}}, true
}

// Payload returns the sent message expression (the first child node).
func (s SendAction) Payload() *syntax.RedNode {
	nodes := s.red.ChildNodes()
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func (s SendAction) Via() (QualifiedName, bool) { return lastQualifiedNameAfterKeyword(s.red, "via") }
func (s SendAction) To() (QualifiedName, bool)  { return lastQualifiedNameAfterKeyword(s.red, "to") }

type AcceptAction struct{ base }

func CastAcceptAction(r *syntax.RedNode) (AcceptAction, bool) {
	if r == nil || r.Green.Kind != syntax.AcceptActionUsage {
		return AcceptAction{}, false
	}
	return AcceptAction{base{r}}, true
}

func (a AcceptAction) Name() (Name, bool) { return CastName(a.red.FirstChild(syntax.Name)) }

func (a AcceptAction) Typing() (QualifiedName, bool) {
	t := a.red.FirstChild(syntax.Typing)
	if t == nil {
		return QualifiedName{}, false
	}
	return firstQualifiedName(t)
}

func (a AcceptAction) Via() (QualifiedName, bool) { return lastQualifiedNameAfterKeyword(a.red, "via") }

type PerformAction struct{ base }

func CastPerformAction(r *syntax.RedNode) (PerformAction, bool) {
	if r == nil || r.Green.Kind != syntax.PerformActionUsage {
		return PerformAction{}, false
	}
	return PerformAction{base{r}}, true
}

func (p PerformAction) Target() (QualifiedName, bool) { return firstQualifiedName(p.red) }

// lastQualifiedNameAfterKeyword returns the first qualified name that
// follows the first occurrence of a direct keyword-token child spelled
// kw — used for the optional trailing "via"/"to" clauses that share a
// namespace-member node with a preceding mandatory qualified name.
func lastQualifiedNameAfterKeyword(r *syntax.RedNode, kw string) (QualifiedName, bool) {
	seen := false
	for _, c := range r.Children() {
		switch v := c.(type) {
		case *syntax.RedToken:
			if token.IsKeyword(v.Green.Kind) && v.Green.Text == kw {
				seen = true
			}
		case *syntax.RedNode:
			if seen && v.Green.Kind == syntax.QualifiedName {
				return QualifiedName{base{v}}, true
			}
		}
	}
	return QualifiedName{}, false
}

// ---- state sub-actions / control nodes / loops -------------------------

type StateSubaction struct{ base }

func CastStateSubaction(r *syntax.RedNode) (StateSubaction, bool) {
	if r == nil || r.Green.Kind != syntax.StateSubactionMember {
		return StateSubaction{}, false
	}
	return StateSubaction{base{r}}, true
}

func (s StateSubaction) Keyword() string {
	for _, t := range s.red.ChildTokens() {
		if token.IsKeyword(t.Green.Kind) {
			return t.Green.Text
		}
	}
	return ""
}

func (s StateSubaction) Target() (QualifiedName, bool) { return firstQualifiedName(s.red) }

func (s StateSubaction) Body() *syntax.RedNode { return s.red.FirstChild(syntax.UsageBody) }

func (s StateSubaction) Members() []*syntax.RedNode {
	if b := s.Body(); b != nil {
		return b.ChildNodes()
	}
	return nil
}

type ControlNode struct{ base }

func CastControlNode(r *syntax.RedNode) (ControlNode, bool) {
	if r == nil || r.Green.Kind != syntax.ControlNode {
		return ControlNode{}, false
	}
	return ControlNode{base{r}}, true
}

func (c ControlNode) Keyword() string {
	for _, t := range c.red.ChildTokens() {
		if token.IsKeyword(t.Green.Kind) {
			return t.Green.Text
		}
	}
	return ""
}

func (c ControlNode) Name() (Name, bool) { return CastName(c.red.FirstChild(syntax.Name)) }

type ForLoopAction struct{ base }

func CastForLoopAction(r *syntax.RedNode) (ForLoopAction, bool) {
	if r == nil || r.Green.Kind != syntax.ForLoopActionUsage {
		return ForLoopAction{}, false
	}
	return ForLoopAction{base{r}}, true
}

func (f ForLoopAction) VariableName() (Name, bool) { return CastName(f.red.FirstChild(syntax.Name)) }

func (f ForLoopAction) Body() *syntax.RedNode { return f.red.FirstChild(syntax.UsageBody) }

func (f ForLoopAction) Members() []*syntax.RedNode {
	if b := f.Body(); b != nil {
		return b.ChildNodes()
	}
	return nil
}

type IfAction struct{ base }

func CastIfAction(r *syntax.RedNode) (IfAction, bool) {
	if r == nil || r.Green.Kind != syntax.IfActionUsage {
		return IfAction{}, false
	}
	return IfAction{base{r}}, true
}

func (a IfAction) Body() *syntax.RedNode { return a.red.FirstChild(syntax.UsageBody) }

func (a IfAction) Members() []*syntax.RedNode {
	if b := a.Body(); b != nil {
		return b.ChildNodes()
	}
	return nil
}

// Else returns the trailing "else { ... }" body (not "else if", which
// nests as a further IF_ACTION_USAGE reachable via ElseIf).
func (a IfAction) Else() (body *syntax.RedNode, ok bool) {
	bodies := a.red.ChildrenOfKind(syntax.UsageBody)
	if len(bodies) < 2 {
		return nil, false
	}
	return bodies[1], true
}

func (a IfAction) ElseIf() (IfAction, bool) {
	return CastIfAction(a.red.FirstChild(syntax.IfActionUsage))
}

type WhileLoopAction struct{ base }

func CastWhileLoopAction(r *syntax.RedNode) (WhileLoopAction, bool) {
	if r == nil || r.Green.Kind != syntax.WhileLoopActionUsage {
		return WhileLoopAction{}, false
	}
	return WhileLoopAction{base{r}}, true
}

// IsUntil reports whether this loop was spelled "until" rather than
// "while" (negated condition, same node shape).
func (w WhileLoopAction) IsUntil() bool {
	for _, t := range w.red.ChildTokens() {
		if token.IsKeyword(t.Green.Kind) && t.Green.Text == "until" {
			return true
		}
	}
	return false
}

func (w WhileLoopAction) Body() *syntax.RedNode { return w.red.FirstChild(syntax.UsageBody) }

func (w WhileLoopAction) Members() []*syntax.RedNode {
	if b := w.Body(); b != nil {
		return b.ChildNodes()
	}
	return nil
}

// ---- view data ----------------------------------------------------------

type ViewMember struct{ base }

func CastViewRendering(r *syntax.RedNode) (ViewMember, bool) {
	if r == nil || r.Green.Kind != syntax.ViewRenderingMember {
		return ViewMember{}, false
	}
	return ViewMember{base{r}}, true
}

func CastViewExpose(r *syntax.RedNode) (ViewMember, bool) {
	if r == nil || r.Green.Kind != syntax.ViewExposeMember {
		return ViewMember{}, false
	}
	return ViewMember{base{r}}, true
}

func (v ViewMember) Target() (QualifiedName, bool) { return firstQualifiedName(v.red) }
