package hir

import (
	"github.com/termfx/sysml-core/astview"
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

func extractAlias(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	a, _ := astview.CastAlias(r)
	name, hasName := a.Name()
	shortName, hasShortName := a.ShortName()
	nameText := ""
	if hasName {
		nameText = name.Text()
	} else if hasShortName {
		nameText = shortName.Text()
	}
	sym := HirSymbol{
		Name: nameText, QualifiedName: ctx.qualify(nameText), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindAlias, IsPublic: true,
	}
	if hasName {
		sym.NameRange = spanOf(ctx, name.Range())
	}
	if t, ok := a.Target(); ok {
		addRelationshipTargets(ctx, &sym, RelReferences, []astview.QualifiedName{t})
	}
	out.Symbols = append(out.Symbols, sym)
}

func extractImport(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	i, _ := astview.CastImport(r)
	target, ok := i.Target()
	targetStr := ""
	if ok {
		targetStr = target.String()
	}
	sym := HirSymbol{
		Name: targetStr, QualifiedName: ctx.qualify(targetStr), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindImport, IsPublic: false,
	}
	if ok {
		sym.NameRange = spanOf(ctx, target.Range())
		addRelationshipTargets(ctx, &sym, RelReferences, []astview.QualifiedName{target})
	}
	out.Symbols = append(out.Symbols, sym)

	if f, ok := i.Filter(); ok {
		var names []string
		for _, t := range f.Targets() {
			names = append(names, t.String())
		}
		if len(names) > 0 {
			out.ImportFilters = append(out.ImportFilters, ImportFilter{
				ImportQualifiedName: targetStr, Names: names,
			})
		}
	}
}

func extractDependency(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	d, _ := astview.CastDependency(r)
	name, hasName := d.Name()
	nameText := ""
	if hasName {
		nameText = name.Text()
	}
	sym := HirSymbol{
		Name: nameText, QualifiedName: ctx.qualify(nameText), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindDependency, IsPublic: true,
	}
	if hasName {
		sym.NameRange = spanOf(ctx, name.Range())
	}
	addRelationshipTargets(ctx, &sym, RelDependencySource, d.Sources())
	addRelationshipTargets(ctx, &sym, RelDependencyTarget, d.Targets())
	out.Symbols = append(out.Symbols, sym)
}

func extractComment(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	c, _ := astview.CastComment(r)
	sym := HirSymbol{
		QualifiedName: ctx.qualify(""), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindComment, Doc: c.Text(), IsPublic: true,
	}
	addRelationshipTargets(ctx, &sym, RelAbout, c.About())
	out.Symbols = append(out.Symbols, sym)
}

func extractDoc(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	d, _ := astview.CastDoc(r)
	sym := HirSymbol{
		QualifiedName: ctx.qualify(""), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindDoc, Doc: d.Text(), IsPublic: true,
	}
	out.Symbols = append(out.Symbols, sym)
}

func extractFilter(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	f, _ := astview.CastFilter(r)
	targets := f.Targets()
	var names []string
	for _, t := range targets {
		names = append(names, t.String())
	}
	sym := HirSymbol{
		QualifiedName: ctx.qualify(""), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindFilter, IsPublic: true,
	}
	addRelationshipTargets(ctx, &sym, RelFilters, targets)
	out.Symbols = append(out.Symbols, sym)

	if len(names) > 0 {
		out.ScopeFilters = append(out.ScopeFilters, ScopeFilter{
			ScopeQualifiedName: ctx.currentScopeName(), Names: names,
		})
	}
}

func extractMetadataMember(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	m, _ := astview.CastMetadata(r)
	target, ok := m.Target()
	targetStr := ""
	if ok {
		targetStr = target.String()
	}
	sym := HirSymbol{
		Name: targetStr, QualifiedName: ctx.qualify(targetStr), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindMetadata, IsPublic: true,
	}
	if ok {
		sym.NameRange = spanOf(ctx, target.Range())
		addRelationshipTargets(ctx, &sym, RelMeta, []astview.QualifiedName{target})
	}
	out.Symbols = append(out.Symbols, sym)
}

// ---- connectors -------------------------------------------------------

func extractConnector(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	c, _ := astview.CastConnectorPart(r)
	ends := c.Ends()
	line := ctx.lines.LineCol(r.Range().Start).Line
	name := anonName(ctx, RelConnectSource, "", line)

	sym := HirSymbol{
		Name: name, QualifiedName: ctx.qualify(name), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindConnector, IsPublic: true,
	}
	if super, ok := implicitUsageSupertype(KindConnection); ok {
		sym.Supertypes = []string{super}
	}

	// "connect (a, b, c)" is the symmetric n-ary form: every end is a
	// ConnectTarget. Only the binary "connect a to b" form distinguishes
	// a source end. ConnectorPart's direct "(" token (not one nested in
	// a ConnectorEnd) is what tells the two forms apart.
	nAry := r.FirstToken(token.LParen) != nil

	var endSyms []HirSymbol
	for idx, end := range ends {
		target, ok := end.Target()
		if !ok {
			continue
		}

		if endName, ok := end.Name(); ok {
			endSym := HirSymbol{
				Name: endName.Text(), QualifiedName: ctx.qualify(name) + "::" + endName.Text(),
				ElementID: newElementID(), File: ctx.fileID, Kind: KindEnd, IsPublic: true,
				NameRange: spanOf(ctx, endName.Range()),
			}
			addRelationshipTargets(ctx, &endSym, RelReferences, []astview.QualifiedName{target})
			endSyms = append(endSyms, endSym)
			continue
		}

		relKind := RelConnectTarget
		if idx == 0 && !nAry {
			relKind = RelConnectSource
		}
		addRelationshipTargets(ctx, &sym, relKind, []astview.QualifiedName{target})
	}

	out.Symbols = append(out.Symbols, sym)
	out.Symbols = append(out.Symbols, endSyms...)
}

func extractBindingConnector(ctx *extractionContext, r *syntax.RedNode, out *ExtractionResult) {
	b, _ := astview.CastBindingConnector(r)
	source, target := b.Ends()
	line := ctx.lines.LineCol(r.Range().Start).Line
	name := anonName(ctx, RelBindSource, "", line)

	sym := HirSymbol{
		Name: name, QualifiedName: ctx.qualify(name), ElementID: newElementID(),
		File: ctx.fileID, Kind: KindBind, IsPublic: true,
	}
	if source.Red() != nil {
		addRelationshipTargets(ctx, &sym, RelBindSource, []astview.QualifiedName{source})
	}
	if target.Red() != nil {
		addRelationshipTargets(ctx, &sym, RelBindTarget, []astview.QualifiedName{target})
	}
	out.Symbols = append(out.Symbols, sym)
}
