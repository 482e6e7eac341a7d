package hir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/sysml-core/dialect/sysml"
	"github.com/termfx/sysml-core/hir"
)

func onlySymbol(t *testing.T, res hir.ExtractionResult, kind hir.SymbolKind) hir.HirSymbol {
	t.Helper()
	syms := symbolsByKind(res, kind)
	require.Len(t, syms, 1)
	return syms[0]
}

func TestExtractSymbols_BarePartDefinitionGetsImplicitSupertypeAndNoTypeRefs(t *testing.T) {
	pf := sysml.Parse(`part def Vehicle;`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("vehicle.sysml", pf)
	require.Len(t, res.Symbols, 1)
	sym := res.Symbols[0]
	assert.Equal(t, hir.KindPart, sym.Kind)
	assert.Equal(t, "Vehicle", sym.Name)
	assert.Equal(t, []string{"Parts::Part"}, sym.Supertypes)
	assert.Empty(t, sym.TypeRefs)
}

func TestExtractSymbols_AbstractPartWithExplicitSpecialization(t *testing.T) {
	pf := sysml.Parse(`abstract part def V :> Base;`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("v.sysml", pf)
	sym := onlySymbol(t, res, hir.KindPart)
	assert.True(t, sym.IsAbstract)
	assert.Equal(t, []string{"Base"}, sym.Supertypes)
	require.Len(t, sym.Relationships, 1)
	assert.Equal(t, hir.RelSpecializes, sym.Relationships[0].Kind)
	assert.Equal(t, "Base", sym.Relationships[0].Target)
}

func TestExtractSymbols_PackageMemberOrderAndQualifiedNames(t *testing.T) {
	pf := sysml.Parse(`package P { part x : T; }`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("p.sysml", pf)
	require.Len(t, res.Symbols, 2)

	pkg := res.Symbols[0]
	assert.Equal(t, hir.KindPackage, pkg.Kind)
	assert.Equal(t, "P", pkg.QualifiedName)

	x := res.Symbols[1]
	assert.Equal(t, hir.KindPart, x.Kind)
	assert.Equal(t, "P::x", x.QualifiedName)
	require.Len(t, x.Relationships, 1)
	assert.Equal(t, hir.RelTypedBy, x.Relationships[0].Kind)
	assert.Equal(t, "T", x.Relationships[0].Target)

	require.Len(t, x.TypeRefs, 1)
	require.NotNil(t, x.TypeRefs[0].Simple)
	assert.Equal(t, "T", x.TypeRefs[0].Simple.Target)
}

func TestExtractSymbols_WildcardImportIsPrivateByDefault(t *testing.T) {
	pf := sysml.Parse(`import ISQ::*;`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("imp.sysml", pf)
	sym := onlySymbol(t, res, hir.KindImport)
	assert.Equal(t, "ISQ::*", sym.Name)
	assert.False(t, sym.IsPublic)
	require.Len(t, sym.TypeRefs, 1)
	require.NotNil(t, sym.TypeRefs[0].Simple)
	assert.Equal(t, "ISQ::*", sym.TypeRefs[0].Simple.Target)
}

func TestExtractSymbols_ParenthesizedConnectIsSymmetric(t *testing.T) {
	pf := sysml.Parse(`part def Assembly {
		part a : Engine;
		part b : Chassis;
		part c : Frame;
		connect (a, b, c);
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("assembly.sysml", pf)
	sym := onlySymbol(t, res, hir.KindConnector)
	require.Len(t, sym.Relationships, 3)
	for _, rel := range sym.Relationships {
		assert.Equal(t, hir.RelConnectTarget, rel.Kind)
	}
	targets := []string{sym.Relationships[0].Target, sym.Relationships[1].Target, sym.Relationships[2].Target}
	assert.Equal(t, []string{"a", "b", "c"}, targets)
}

func TestExtractSymbols_ExplicitTransitionKeywordForm(t *testing.T) {
	pf := sysml.Parse(`state def Lifecycle {
		state S1;
		state S2;
		transition first S1 then S2;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("lifecycle.sysml", pf)
	sym := onlySymbol(t, res, hir.KindTransition)
	assert.Equal(t, []string{"Actions::TransitionAction"}, sym.Supertypes)

	var source, target string
	for _, rel := range sym.Relationships {
		switch rel.Kind {
		case hir.RelTransitionSource:
			source = rel.Target
		case hir.RelTransitionTarget:
			target = rel.Target
		}
	}
	assert.Equal(t, "S1", source)
	assert.Equal(t, "S2", target)
}

func TestExtractSymbols_FeatureChainInValueBecomesRangedTypeRefChain(t *testing.T) {
	pf := sysml.Parse(`part def Holder {
		attribute x = a.b.c;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("holder.sysml", pf)
	sym := onlySymbol(t, res, hir.KindAttribute)

	var chainRef *hir.Relationship
	for i := range sym.Relationships {
		if sym.Relationships[i].Kind == hir.RelExpression && len(sym.Relationships[i].Chain) == 3 {
			chainRef = &sym.Relationships[i]
		}
	}
	require.NotNil(t, chainRef)
	assert.Equal(t, "a.b.c", chainRef.Target)
	assert.Equal(t, "a", chainRef.Chain[0].Name)
	assert.Equal(t, "b", chainRef.Chain[1].Name)
	assert.Equal(t, "c", chainRef.Chain[2].Name)

	// Per-segment ranges are distinct and appear in source order: each
	// segment starts no earlier than the previous one ends.
	for i := 1; i < len(chainRef.Chain); i++ {
		prev, cur := chainRef.Chain[i-1].Range, chainRef.Chain[i].Range
		assert.NotEqual(t, prev, cur)
	}

	var chainEntry *hir.TypeRefEntry
	for i := range sym.TypeRefs {
		if sym.TypeRefs[i].Chain != nil && len(sym.TypeRefs[i].Chain.Parts) == 3 {
			chainEntry = &sym.TypeRefs[i]
		}
	}
	require.NotNil(t, chainEntry)
	assert.Equal(t, "a", chainEntry.Chain.Parts[0].Target)
	assert.Equal(t, "c", chainEntry.Chain.Parts[2].Target)
}

func TestExtractSymbols_UnclosedPackageStillEmitsPackageSymbol(t *testing.T) {
	pf := sysml.Parse(`package P { part`)
	require.NotEmpty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("broken.sysml", pf)
	pkgs := symbolsByKind(res, hir.KindPackage)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "P", pkgs[0].Name)
}

func TestExtractSymbols_MissingIdentifierAfterDefEmitsNoDefinitionSymbol(t *testing.T) {
	pf := sysml.Parse(`part def ;
	part def Engine;`)
	require.NotEmpty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("broken2.sysml", pf)
	defs := symbolsByKind(res, hir.KindPart)
	require.Len(t, defs, 1)
	assert.Equal(t, "Engine", defs[0].Name)
}

func TestExtractSymbols_AnonymousChildrenInSameScopeGetDistinctNames(t *testing.T) {
	pf := sysml.Parse(`part def Car {
		part : Engine;
		part : Chassis;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("car.sysml", pf)
	parts := symbolsByKind(res, hir.KindPart)
	require.Len(t, parts, 3)
	assert.NotEqual(t, parts[1].Name, parts[2].Name)
	assert.NotEqual(t, parts[1].QualifiedName, parts[2].QualifiedName)
}

func TestExtractSymbols_ShorthandRedefinesNamesTheUsage(t *testing.T) {
	pf := sysml.Parse(`part def Base {
		part feature1 : T;
	}
	part def Derived :> Base {
		part :>> feature1;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("redef.sysml", pf)
	parts := symbolsByKind(res, hir.KindPart)
	var redefined *hir.HirSymbol
	for i := range parts {
		if parts[i].Name == "feature1" && parts[i].QualifiedName == "Derived::feature1" {
			redefined = &parts[i]
		}
	}
	require.NotNil(t, redefined)
	require.Len(t, redefined.Relationships, 1)
	assert.Equal(t, hir.RelRedefines, redefined.Relationships[0].Kind)
	assert.Equal(t, "feature1", redefined.Relationships[0].Target)
}

func TestExtractSymbols_DeterministicAcrossRepeatedCalls(t *testing.T) {
	src := `package Vehicles {
		part def Engine;
		part v1 : Engine;
		connect (v1, v1);
	}`
	pf := sysml.Parse(src)
	require.Empty(t, pf.Diagnostics)

	first := hir.ExtractSymbols("vehicles.sysml", pf)
	second := hir.ExtractSymbols("vehicles.sysml", pf)
	require.Equal(t, len(first.Symbols), len(second.Symbols))
	for i := range first.Symbols {
		assert.Equal(t, first.Symbols[i].QualifiedName, second.Symbols[i].QualifiedName)
		assert.Equal(t, first.Symbols[i].Kind, second.Symbols[i].Kind)
	}
}

func TestExtractSymbols_ViewDefCollectsRenderAndExposeTargets(t *testing.T) {
	pf := sysml.Parse(`view def V {
		render Layout;
		expose Pkg::*;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("v.sysml", pf)
	sym := onlySymbol(t, res, hir.KindView)
	require.NotNil(t, sym.ViewData)
	assert.Equal(t, []string{"Layout"}, sym.ViewData.Renders)
	assert.Equal(t, []string{"Pkg::*"}, sym.ViewData.Exposes)
}

func TestExtractSymbols_MultiplicityBareStarAndBareCountForms(t *testing.T) {
	pf := sysml.Parse(`part def Fleet {
		part wheels : Wheel[4];
		part passengers : Person[*];
		part driver : Person;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("fleet.sysml", pf)
	byName := map[string]hir.HirSymbol{}
	for _, p := range symbolsByKind(res, hir.KindPart) {
		byName[p.Name] = p
	}

	wheels := byName["wheels"]
	require.NotNil(t, wheels.Multiplicity)
	assert.Equal(t, "4", wheels.Multiplicity.Lower)
	assert.Equal(t, "4", wheels.Multiplicity.Upper)

	passengers := byName["passengers"]
	require.NotNil(t, passengers.Multiplicity)
	assert.Equal(t, "*", passengers.Multiplicity.Lower)
	assert.Equal(t, "*", passengers.Multiplicity.Upper)

	driver := byName["driver"]
	assert.Nil(t, driver.Multiplicity)
}

func TestExtractSymbols_ImplicitRedefinitionFromParentSupertype(t *testing.T) {
	pf := sysml.Parse(`part def Base {
		part feature1 : T;
	}
	part def Derived :> Base {
		part feature1;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("derived.sysml", pf)
	parts := symbolsByKind(res, hir.KindPart)
	var derivedFeature *hir.HirSymbol
	for i := range parts {
		if parts[i].QualifiedName == "Derived::feature1" {
			derivedFeature = &parts[i]
		}
	}
	require.NotNil(t, derivedFeature)
	assert.Equal(t, []string{"Base::feature1"}, derivedFeature.Supertypes)
}

func TestExtractSymbols_AnonymousUsagePropagatesTypingAndSupertypesToParent(t *testing.T) {
	pf := sysml.Parse(`part def Something;
part def Base;
part def Derived :> Base {
	part : Something;
}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("derived.sysml", pf)
	parts := symbolsByKind(res, hir.KindPart)

	var derived, anon *hir.HirSymbol
	for i := range parts {
		switch parts[i].QualifiedName {
		case "Derived":
			derived = &parts[i]
		case "Derived::Something":
		default:
			if parts[i].QualifiedName != "Something" && parts[i].QualifiedName != "Base" {
				anon = &parts[i]
			}
		}
	}
	require.NotNil(t, derived)
	require.NotNil(t, anon)

	require.NotEmpty(t, derived.TypeRefs)
	found := false
	for _, tr := range derived.TypeRefs {
		if tr.Simple != nil && tr.Simple.Kind == hir.RefTypedBy && tr.Simple.Target == "Something" {
			found = true
		}
	}
	assert.True(t, found, "parent should inherit the anonymous usage's typing ref")

	assert.Contains(t, anon.Supertypes, "Something")
	assert.Contains(t, anon.Supertypes, "Base", "anonymous usage should inherit its non-package parent's supertypes")
}
