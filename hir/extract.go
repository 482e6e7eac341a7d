package hir

import (
	"github.com/google/uuid"

	"github.com/termfx/sysml-core/astview"
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

// ExtractSymbols walks a parsed file's namespace members and returns every
// HirSymbol it finds, in preorder. It is the sole entry point into this
// package: callers never build an extractionContext or call a member
// dispatcher directly.
func ExtractSymbols(fileID string, pf *syntax.ParsedFile) ExtractionResult {
	ctx := newExtractionContext(fileID, pf.Source)
	sf, _ := astview.CastSourceFile(pf.Root())
	out := &ExtractionResult{}
	for _, m := range sf.Members() {
		extractMember(ctx, m, out)
	}
	return *out
}

// extractMember dispatches one namespace-member node, appending every
// symbol it (and, recursively, its descendants) produces to out.
func extractMember(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	switch r.Green.Kind {
	case syntax.Package, syntax.LibraryPackage:
		extractPackage(ctx, r, out)
	case syntax.Definition:
		extractDefinition(ctx, r, out)
	case syntax.Usage:
		extractUsage(ctx, r, out)
	case syntax.Alias:
		extractAlias(ctx, r, out)
	case syntax.Import:
		extractImport(ctx, r, out)
	case syntax.Dependency:
		extractDependency(ctx, r, out)
	case syntax.Comment:
		extractComment(ctx, r, out)
	case syntax.Doc:
		extractDoc(ctx, r, out)
	case syntax.Filter:
		extractFilter(ctx, r, out)
	case syntax.Metadata:
		extractMetadataMember(ctx, r, out)
	case syntax.ConnectorPart:
		extractConnector(ctx, r, out)
	case syntax.BindingConnector:
		extractBindingConnector(ctx, r, out)
	case syntax.Succession:
		extractSuccession(ctx, r, out)
	case syntax.TransitionUsage:
		extractTransition(ctx, r, out)
	case syntax.SendActionUsage:
		extractSendAction(ctx, r, out)
	case syntax.AcceptActionUsage:
		extractAcceptAction(ctx, r, out)
	case syntax.PerformActionUsage:
		extractPerformAction(ctx, r, out)
	case syntax.StateSubactionMember:
		extractStateSubaction(ctx, r, out)
	case syntax.ControlNode:
		extractControlNode(ctx, r, out)
	case syntax.ForLoopActionUsage:
		extractForLoop(ctx, r, out)
	case syntax.IfActionUsage:
		extractIfAction(ctx, r, out)
	case syntax.WhileLoopActionUsage:
		extractWhileLoop(ctx, r, out)
	case syntax.ViewRenderingMember, syntax.ViewExposeMember:
		// Folded into the enclosing View/Viewpoint symbol's ViewData by
		// extractDefinition/extractUsage; nothing to do standalone.
	}
}

func extractChildren(ctx *extractionContext, members []*syntax.RedNode, out *ExtractionResult) {
	for _, m := range members {
		extractMember(ctx, m, out)
	}
}

func newElementID() string { return uuid.NewString() }

// ---- package --------------------------------------------------------------

func extractPackage(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	p, _ := astview.CastPackage(r)
	name, hasName := p.Name()
	shortName, hasShortName := p.ShortName()

	nameText := ""
	if hasName {
		nameText = name.Text()
	} else if hasShortName {
		nameText = shortName.Text()
	}

	kind := KindPackage
	if p.IsLibrary() {
		kind = KindLibraryPackage
	}

	sym := HirSymbol{
		Name:          nameText,
		QualifiedName: ctx.qualify(nameText),
		ElementID:     newElementID(),
		File:          ctx.fileID,
		Kind:          kind,
		IsPublic:      true,
	}
	if hasName {
		sym.NameRange = spanOf(ctx, name.Range())
	}
	if hasShortName {
		sym.ShortName = shortName.Text()
		sn := spanOf(ctx, shortName.Range())
		sym.ShortNameRange = &sn
	}
	out.Symbols = append(out.Symbols, sym)

	ctx.pushScope(nameText, kind)
	extractChildren(ctx, p.Members(), out)
	ctx.popScope()
}

// ---- definitions / usages ---------------------------------------------

func extractDefinition(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	d, _ := astview.CastDefinition(r)
	flags := d.Flags()
	kind := defKeywordKind(d.Keyword())

	name, hasName := d.Name()
	shortName, hasShortName := d.ShortName()
	if !hasName && !hasShortName {
		// A definition always needs a name ("part def ;" is E0301): the
		// malformed declaration gets no symbol.
		return
	}
	nameText := nameOrAnon(ctx, hasName, name, kind, d.Specializations(), r)

	sym := baseSymbol(ctx, nameText, kind, flags)
	if hasName {
		sym.NameRange = spanOf(ctx, name.Range())
	}
	if hasShortName {
		sym.ShortName = shortName.Text()
		sn := spanOf(ctx, shortName.Range())
		sym.ShortNameRange = &sn
	}

	addRelationshipTargets(ctx, &sym, RelSpecializes, d.Specializations())
	addRelationshipTargets(ctx, &sym, RelRedefines, d.Redefinitions())
	addRelationshipTargets(ctx, &sym, RelReferences, d.References())
	addRelationshipTargets(ctx, &sym, RelTypedBy, d.Typings())
	addRelationshipTargets(ctx, &sym, RelConjugates, d.Conjugations())
	addRelationshipTargets(ctx, &sym, RelFeatureChain, d.FeatureChainings())
	addRelationshipTargets(ctx, &sym, RelInverse, d.FeatureInversions())

	if len(sym.Supertypes) == 0 {
		if super, ok := implicitDefinitionSupertype(kind); ok {
			sym.Supertypes = []string{super}
		}
	}

	for _, md := range d.Metadata() {
		if t, ok := md.Target(); ok {
			sym.MetadataAnnotations = append(sym.MetadataAnnotations, t.String())
		}
	}

	if kind == KindView || kind == KindViewpoint || kind == KindRendering {
		sym.ViewData = collectViewData(d.Members())
	}

	out.Symbols = append(out.Symbols, sym)

	ctx.pushScope(nameText, kind)
	extractChildren(ctx, d.Members(), out)
	ctx.popScope()
}

func extractUsage(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	u, _ := astview.CastUsage(r)
	flags := u.Flags()
	kind := usageKeywordKind(u.Keyword())

	name, hasName := u.Name()
	shortName, hasShortName := u.ShortName()
	rels := append(append([]astview.QualifiedName{}, u.Specializations()...), u.Subsettings()...)
	rels = append(rels, u.Typings()...)
	anonFallback := nameOrAnon(ctx, hasName, name, kind, rels, r)
	nameText := shorthandRedefinesName(u, hasName, anonFallback)
	isAnonymous := !hasName && nameText == anonFallback

	sym := baseSymbol(ctx, nameText, kind, flags)
	if hasName {
		sym.NameRange = spanOf(ctx, name.Range())
	}
	if hasShortName {
		sym.ShortName = shortName.Text()
		sn := spanOf(ctx, shortName.Range())
		sym.ShortNameRange = &sn
	}

	if dir, ok := u.Direction(); ok {
		sym.Direction = dir
	}
	if mu, ok := u.Multiplicity(); ok {
		lower, upper := mu.Bounds()
		sym.Multiplicity = &Multiplicity{
			Lower: lower, Upper: upper,
			Ordered: mu.IsOrdered(), Nonunique: mu.IsNonunique(), Unique: mu.IsUnique(),
		}
		sym.IsOrdered, sym.IsNonunique = mu.IsOrdered(), mu.IsNonunique()
	}
	if fv, ok := u.Value(); ok {
		sym.IsDefault = fv.IsDefault()
		valueExpr := fv.Expression()
		sym.Value = buildValue(valueExpr)
		extractExpressionReferences(ctx, &sym, valueExpr)
	}

	addRelationshipTargets(ctx, &sym, RelSpecializes, u.Specializations())
	addRelationshipTargets(ctx, &sym, RelSubsets, u.Subsettings())
	addRelationshipTargets(ctx, &sym, RelRedefines, u.Redefinitions())
	addRelationshipTargets(ctx, &sym, RelReferences, u.References())
	addRelationshipTargets(ctx, &sym, RelTypedBy, u.Typings())
	addRelationshipTargets(ctx, &sym, RelConjugates, u.Conjugations())
	addRelationshipTargets(ctx, &sym, RelFeatureChain, u.FeatureChainings())
	addRelationshipTargets(ctx, &sym, RelInverse, u.FeatureInversions())

	inferImplicitRedefinition(ctx, &sym, out)

	if isAnonymous {
		propagateAnonymousUsageToParent(ctx, &sym, kind, out)
	}

	if len(sym.Supertypes) == 0 {
		if super, ok := implicitUsageSupertype(kind); ok {
			sym.Supertypes = []string{super}
		}
	}

	for _, md := range u.Metadata() {
		if t, ok := md.Target(); ok {
			sym.MetadataAnnotations = append(sym.MetadataAnnotations, t.String())
		}
	}

	if kind == KindView || kind == KindViewpoint || kind == KindRendering {
		sym.ViewData = collectViewData(u.Members())
	}

	out.Symbols = append(out.Symbols, sym)

	ctx.pushScope(nameText, kind)
	extractChildren(ctx, u.Members(), out)
	ctx.popScope()
}

// inferImplicitRedefinition fills in a usage's supertype when it declares
// no explicit specialization/typing of its own: if the enclosing symbol's
// first supertype names a type that itself has a member named the same as
// this usage (i.e. "<parent's first supertype>::<this usage's name>"
// already exists among the symbols extracted so far), this usage
// implicitly redefines that inherited feature even without a ":>>" clause.
func inferImplicitRedefinition(ctx *extractionContext, sym *HirSymbol, out *ExtractionResult) {
	if len(sym.Supertypes) > 0 {
		return
	}
	parentName := ctx.currentScopeName()
	if parentName == "" {
		return
	}
	var parent *HirSymbol
	for i := len(out.Symbols) - 1; i >= 0; i-- {
		if out.Symbols[i].QualifiedName == parentName {
			parent = &out.Symbols[i]
			break
		}
	}
	if parent == nil || len(parent.Supertypes) == 0 {
		return
	}
	parentType := parent.Supertypes[0]
	typeQName := parentType
	for _, s := range out.Symbols {
		if s.Name == parentType || s.QualifiedName == parentType {
			typeQName = s.QualifiedName
			break
		}
	}

	potential := typeQName + "::" + sym.Name
	for _, s := range out.Symbols {
		if s.QualifiedName == potential {
			sym.Supertypes = append(sym.Supertypes, potential)
			return
		}
	}
}

// propagateAnonymousUsageToParent pushes an anonymous usage's own typing and
// supertype information up into its enclosing symbol. An anonymous usage
// like "feature : T;" with no name of its own is really describing the
// parent it sits inside, so its TypedBy refs are folded into the parent's
// type refs, and — unless this usage is a bare expression-valued feature or
// a connection-like usage (connection/flow/interface/allocation), which
// shouldn't borrow a structural supertype from its container — the parent's
// own supertypes are copied onto the anonymous symbol as well.
func propagateAnonymousUsageToParent(ctx *extractionContext, sym *HirSymbol, kind SymbolKind, out *ExtractionResult) {
	parentName := ctx.currentScopeName()
	if parentName == "" {
		return
	}
	var parent *HirSymbol
	for i := len(out.Symbols) - 1; i >= 0; i-- {
		if out.Symbols[i].QualifiedName == parentName {
			parent = &out.Symbols[i]
			break
		}
	}
	if parent == nil || parent.Kind == KindPackage {
		return
	}

	if len(sym.TypeRefs) > 0 {
		for _, tr := range sym.TypeRefs {
			if tr.Chain == nil && tr.Simple != nil && tr.Simple.Kind == RefTypedBy {
				parent.TypeRefs = append(parent.TypeRefs, tr)
			}
		}
	}

	isExpressionScope := true
	for _, rel := range sym.Relationships {
		if rel.Kind != RelExpression {
			isExpressionScope = false
			break
		}
	}
	isConnectionKind := kind == KindConnection || kind == KindFlow || kind == KindInterface || kind == KindAllocation

	if !isExpressionScope && !isConnectionKind {
		for _, super := range parent.Supertypes {
			found := false
			for _, existing := range sym.Supertypes {
				if existing == super {
					found = true
					break
				}
			}
			if !found {
				sym.Supertypes = append(sym.Supertypes, super)
			}
		}
	}
}

func baseSymbol(ctx *extractionContext, name string, kind SymbolKind, f astview.Flags) HirSymbol {
	return HirSymbol{
		Name:          name,
		QualifiedName: ctx.qualify(name),
		ElementID:     newElementID(),
		File:          ctx.fileID,
		Kind:          kind,
		IsAbstract:    f.IsAbstract,
		IsVariation:   f.IsVariation,
		IsReadonly:    f.IsReadonly,
		IsDerived:     f.IsDerived,
		IsIndividual:  f.IsIndividual,
		IsPortion:     f.IsPortion,
		IsEnd:         f.IsEnd,
		IsPublic:      f.IsPublic,
	}
}

// nameOrAnon returns the declared name, or — when the construct has none —
// a synthetic scope name built from the first relationship target it can
// find (so the anonymous scope's name still hints at what it specializes
// or types to).
func nameOrAnon(ctx *extractionContext, hasName bool, name astview.Name, kind SymbolKind, rels []astview.QualifiedName, r *syntax.RedNode) string {
	if hasName {
		return name.Text()
	}
	target := ""
	if len(rels) > 0 {
		target = rels[0].String()
	}
	line := ctx.lines.LineCol(r.Range().Start).Line
	return anonName(ctx, RelTypedBy, target, line)
}

// shorthandRedefinesName implements the "shorthand redefines" naming rule:
// an otherwise-anonymous usage whose sole relationship is ":>> Name" with a
// simple (unqualified) target is named Name directly, rather than getting
// a synthetic "$anon..." scope name.
func shorthandRedefinesName(u astview.Usage, hasName bool, fallback string) string {
	if hasName {
		return fallback
	}
	if len(u.Specializations()) > 0 || len(u.Subsettings()) > 0 || len(u.Typings()) > 0 || len(u.References()) > 0 {
		return fallback
	}
	redefs := u.Redefinitions()
	if len(redefs) != 1 {
		return fallback
	}
	if len(redefs[0].SegmentsWithRanges()) != 1 {
		return fallback
	}
	return redefs[0].String()
}

func addRelationshipTargets(ctx *extractionContext, sym *HirSymbol, kind RelKind, targets []astview.QualifiedName) {
	for _, t := range targets {
		segs := t.SegmentsWithRanges()
		flat := t.String()
		rel := Relationship{Kind: kind, Target: flat}
		if len(segs) > 0 {
			first, last := segs[0], segs[len(segs)-1]
			rel.Range = ctx.span(first.Range.Start, last.Range.End)
		}
		if len(segs) > 1 {
			for _, s := range segs {
				rel.Chain = append(rel.Chain, ChainPart{Name: s.Name, Range: ctx.span(s.Range.Start, s.Range.End)})
			}
		}
		sym.Relationships = append(sym.Relationships, rel)

		// A qualified name ("A::B", "ISQ::*") names one element, so its
		// type ref is a single simple entry for the whole "::" path;
		// chained type refs come only from "a.b.c" expression paths.
		sym.TypeRefs = append(sym.TypeRefs, TypeRefEntry{
			Simple: &TypeRef{Target: flat, Kind: refKindOf(kind), Range: rel.Range},
		})

		if kind == RelSpecializes || kind == RelTypedBy {
			sym.Supertypes = append(sym.Supertypes, flat)
		}
	}
}

func spanOf(ctx *extractionContext, rng token.Range) Span {
	return ctx.span(rng.Start, rng.End)
}

func collectViewData(members []*syntax.RedNode) *ViewData {
	vd := &ViewData{}
	for _, m := range members {
		if v, ok := astview.CastViewRendering(m); ok {
			if t, ok := v.Target(); ok {
				vd.Renders = append(vd.Renders, t.String())
			}
		}
		if v, ok := astview.CastViewExpose(m); ok {
			if t, ok := v.Target(); ok {
				vd.Exposes = append(vd.Exposes, t.String())
			}
		}
		if f, ok := astview.CastFilter(m); ok {
			for _, t := range f.Targets() {
				vd.Filters = append(vd.Filters, t.String())
			}
		}
	}
	if len(vd.Renders) == 0 && len(vd.Exposes) == 0 && len(vd.Filters) == 0 {
		return nil
	}
	return vd
}
