package hir

import (
	"github.com/termfx/sysml-core/astview"
	"github.com/termfx/sysml-core/syntax"
)

// extractSuccession handles a bare "first a then b;" member. Inside a
// state's body this is really a transition in disguise — the grammar
// parses both shapes identically, so the reinterpretation happens here
// rather than in the parser.
func extractSuccession(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	s, _ := astview.CastSuccession(r)
	items := s.Items()

	if ctx.enclosingKind() == KindState {
		extractSuccessionAsTransition(ctx, s, items, out)
		return
	}

	name, hasName := s.Name()
	line := ctx.lines.LineCol(r.Range().Start).Line
	var firstTarget string
	if len(items) > 0 {
		if t, ok := items[0].Target(); ok {
			firstTarget = t.String()
		}
	}
	nameText := firstTarget
	if hasName {
		nameText = name.Text()
	} else {
		nameText = anonName(ctx, RelSuccessionSource, firstTarget, line)
	}

	sym := HirSymbol{
		Name: nameText, QualifiedName: ctx.qualify(nameText), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindSuccession, IsPublic: true,
	}
	if hasName {
		sym.NameRange = spanOf(ctx, name.Range())
	}
	for i, item := range items {
		target, ok := item.Target()
		if !ok {
			continue
		}
		kind := RelSuccessionTarget
		if i == 0 {
			kind = RelSuccessionSource
		}
		addRelationshipTargets(ctx, &sym, kind, []astview.QualifiedName{target})
	}
	out.Symbols = append(out.Symbols, sym)
}

func extractSuccessionAsTransition(ctx *extractionContext, s astview.Succession, items []astview.SuccessionItem, out *ExtractionResult) {
	name, hasName := s.Name()
	var source, target string
	if len(items) > 0 {
		if t, ok := items[0].Target(); ok {
			source = t.String()
		}
	}
	if len(items) > 1 {
		if t, ok := items[len(items)-1].Target(); ok {
			target = t.String()
		}
	}
	line := ctx.lines.LineCol(s.Red().Range().Start).Line
	nameText := target
	if hasName {
		nameText = name.Text()
	} else {
		nameText = anonName(ctx, RelTransitionTarget, target, line)
	}

	sym := HirSymbol{
		Name: nameText, QualifiedName: ctx.qualify(nameText), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindTransition, IsPublic: true,
		Supertypes: []string{"Actions::TransitionAction"},
	}
	if hasName {
		sym.NameRange = spanOf(ctx, name.Range())
	}
	if len(items) > 0 {
		if t, ok := items[0].Target(); ok {
			addRelationshipTargets(ctx, &sym, RelTransitionSource, []astview.QualifiedName{t})
		}
	}
	for _, item := range items[1:] {
		if t, ok := item.Target(); ok {
			addRelationshipTargets(ctx, &sym, RelTransitionTarget, []astview.QualifiedName{t})
		}
	}
	out.Symbols = append(out.Symbols, sym)
}

func extractTransition(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	t, _ := astview.CastTransition(r)
	name, hasName := t.Name()
	target, hasTarget := t.Target()
	targetStr := ""
	if hasTarget {
		targetStr = target.String()
	}
	line := ctx.lines.LineCol(r.Range().Start).Line
	nameText := targetStr
	if hasName {
		nameText = name.Text()
	} else {
		nameText = anonName(ctx, RelTransitionTarget, targetStr, line)
	}

	sym := HirSymbol{
		Name: nameText, QualifiedName: ctx.qualify(nameText), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindTransition, IsPublic: true,
		Supertypes: []string{"Actions::TransitionAction"},
	}
	if hasName {
		sym.NameRange = spanOf(ctx, name.Range())
	}
	if source, ok := t.Source(); ok {
		addRelationshipTargets(ctx, &sym, RelTransitionSource, []astview.QualifiedName{source})
	}
	if hasTarget {
		addRelationshipTargets(ctx, &sym, RelTransitionTarget, []astview.QualifiedName{target})
	}
	if trigger, ok := t.Trigger(); ok {
		addRelationshipTargets(ctx, &sym, RelAcceptedMessage, []astview.QualifiedName{trigger})
	}
	if guard := t.Guard(); guard != nil {
		sym.Value = buildValue(guard)
		extractExpressionReferences(ctx, &sym, guard)
	}
	out.Symbols = append(out.Symbols, sym)
}

func extractSendAction(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	s, _ := astview.CastSendAction(r)
	line := ctx.lines.LineCol(r.Range().Start).Line
	nameText := anonName(ctx, RelSentMessage, "", line)
	sym := HirSymbol{
		Name: nameText, QualifiedName: ctx.qualify(nameText), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindSend, IsPublic: true,
	}
	if payload := s.Payload(); payload != nil {
		sym.Value = buildValue(payload)
	}
	if via, ok := s.Via(); ok {
		addRelationshipTargets(ctx, &sym, RelSendVia, []astview.QualifiedName{via})
	}
	if to, ok := s.To(); ok {
		addRelationshipTargets(ctx, &sym, RelSendTo, []astview.QualifiedName{to})
	}
	out.Symbols = append(out.Symbols, sym)
}

func extractAcceptAction(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	a, _ := astview.CastAcceptAction(r)
	name, hasName := a.Name()
	line := ctx.lines.LineCol(r.Range().Start).Line
	nameText := anonName(ctx, RelAcceptedMessage, "", line)
	if hasName {
		nameText = name.Text()
	}
	sym := HirSymbol{
		Name: nameText, QualifiedName: ctx.qualify(nameText), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindAccept, IsPublic: true,
	}
	if hasName {
		sym.NameRange = spanOf(ctx, name.Range())
	}
	if typ, ok := a.Typing(); ok {
		addRelationshipTargets(ctx, &sym, RelTypedBy, []astview.QualifiedName{typ})
	}
	if via, ok := a.Via(); ok {
		addRelationshipTargets(ctx, &sym, RelAcceptVia, []astview.QualifiedName{via})
	}
	out.Symbols = append(out.Symbols, sym)
}

func extractPerformAction(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	p, _ := astview.CastPerformAction(r)
	target, ok := p.Target()
	targetStr := ""
	if ok {
		targetStr = target.String()
	}
	sym := HirSymbol{
		Name: targetStr, QualifiedName: ctx.qualify(targetStr), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindPerform, IsPublic: true,
	}
	if ok {
		sym.NameRange = spanOf(ctx, target.Range())
		addRelationshipTargets(ctx, &sym, RelPerforms, []astview.QualifiedName{target})
	}
	if super, ok := implicitUsageSupertype(KindAction); ok {
		sym.Supertypes = []string{super}
	}
	out.Symbols = append(out.Symbols, sym)
}

var stateSubactionKind = map[string]SymbolKind{
	"entry": KindEntry, "do": KindDo, "exit": KindExit,
}

func extractStateSubaction(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	s, _ := astview.CastStateSubaction(r)
	kind, ok := stateSubactionKind[s.Keyword()]
	if !ok {
		kind = KindDo
	}
	target, hasTarget := s.Target()
	targetStr := ""
	if hasTarget {
		targetStr = target.String()
	}
	nameText := targetStr
	if nameText == "" {
		nameText = string(kind)
	}
	sym := HirSymbol{
		Name: nameText, QualifiedName: ctx.qualify(nameText), ElementID: newElementID(),
		File: ctx.fileID, Kind: kind, IsPublic: true,
	}
	if hasTarget {
		sym.NameRange = spanOf(ctx, target.Range())
		addRelationshipTargets(ctx, &sym, RelPerforms, []astview.QualifiedName{target})
	}
	if super, ok := implicitUsageSupertype(KindAction); ok {
		sym.Supertypes = []string{super}
	}
	out.Symbols = append(out.Symbols, sym)

	ctx.pushScope(nameText, kind)
	extractChildren(ctx, s.Members(), out)
	ctx.popScope()
}

var controlNodeKind = map[string]SymbolKind{
	"fork": KindFork, "join": KindJoin, "merge": KindMerge, "decide": KindDecide,
}

func extractControlNode(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	c, _ := astview.CastControlNode(r)
	kind, ok := controlNodeKind[c.Keyword()]
	if !ok {
		kind = KindFeature
	}
	name, hasName := c.Name()
	line := ctx.lines.LineCol(r.Range().Start).Line
	nameText := anonName(ctx, RelMeta, "", line)
	if hasName {
		nameText = name.Text()
	}
	sym := HirSymbol{
		Name: nameText, QualifiedName: ctx.qualify(nameText), ElementID: newElementID(),
		File: ctx.fileID, Kind: kind, IsPublic: true,
	}
	if hasName {
		sym.NameRange = spanOf(ctx, name.Range())
	}
	out.Symbols = append(out.Symbols, sym)
}

func extractForLoop(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	f, _ := astview.CastForLoopAction(r)
	name, hasName := f.VariableName()
	line := ctx.lines.LineCol(r.Range().Start).Line
	nameText := anonName(ctx, RelMeta, "", line)
	if hasName {
		nameText = name.Text()
	}
	sym := HirSymbol{
		Name: nameText, QualifiedName: ctx.qualify(nameText), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindForLoop, IsPublic: true,
	}
	if hasName {
		sym.NameRange = spanOf(ctx, name.Range())
	}
	if super, ok := implicitUsageSupertype(KindAction); ok {
		sym.Supertypes = []string{super}
	}
	out.Symbols = append(out.Symbols, sym)

	ctx.pushScope(nameText, KindForLoop)
	extractChildren(ctx, f.Members(), out)
	ctx.popScope()
}

func extractIfAction(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	a, _ := astview.CastIfAction(r)
	line := ctx.lines.LineCol(r.Range().Start).Line
	nameText := anonName(ctx, RelMeta, "", line)
	sym := HirSymbol{
		Name: nameText, QualifiedName: ctx.qualify(nameText), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindIfAction, IsPublic: true,
	}
	if super, ok := implicitUsageSupertype(KindAction); ok {
		sym.Supertypes = []string{super}
	}
	out.Symbols = append(out.Symbols, sym)

	ctx.pushScope(nameText, KindIfAction)
	extractChildren(ctx, a.Members(), out)
	if elseBody, ok := a.Else(); ok {
		extractChildren(ctx, elseBody.ChildNodes(), out)
	}
	ctx.popScope()

	if elseif, ok := a.ElseIf(); ok {
		extractIfAction(ctx, elseif.Red(), out)
	}
}

func extractWhileLoop(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	w, _ := astview.CastWhileLoopAction(r)
	line := ctx.lines.LineCol(r.Range().Start).Line
	nameText := anonName(ctx, RelMeta, "", line)
	sym := HirSymbol{
		Name: nameText, QualifiedName: ctx.qualify(nameText), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindWhileLoop, IsPublic: true,
	}
	if w.IsUntil() {
		sym.MetadataAnnotations = append(sym.MetadataAnnotations, "until")
	}
	if super, ok := implicitUsageSupertype(KindAction); ok {
		sym.Supertypes = []string{super}
	}
	out.Symbols = append(out.Symbols, sym)

	ctx.pushScope(nameText, KindWhileLoop)
	extractChildren(ctx, w.Members(), out)
	ctx.popScope()
}
