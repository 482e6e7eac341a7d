package hir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/sysml-core/dialect/sysml"
	"github.com/termfx/sysml-core/hir"
)

func symbolsByKind(res hir.ExtractionResult, kind hir.SymbolKind) []hir.HirSymbol {
	var out []hir.HirSymbol
	for _, s := range res.Symbols {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

func TestExtractSymbols_PackageAndPart(t *testing.T) {
	pf := sysml.Parse(`package Vehicles {
		part def Engine;
		part v1 : Engine;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("vehicles.sysml", pf)

	pkgs := symbolsByKind(res, hir.KindPackage)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "Vehicles", pkgs[0].Name)
	assert.Equal(t, "Vehicles", pkgs[0].QualifiedName)

	defs := symbolsByKind(res, hir.KindPart)
	require.Len(t, defs, 2)
	assert.Equal(t, "Engine", defs[0].Name)
	assert.Equal(t, "Vehicles::Engine", defs[0].QualifiedName)
	assert.Equal(t, []string{"Parts::Part"}, defs[0].Supertypes)

	assert.Equal(t, "v1", defs[1].Name)
	require.Len(t, defs[1].Relationships, 1)
	assert.Equal(t, hir.RelTypedBy, defs[1].Relationships[0].Kind)
	assert.Equal(t, "Engine", defs[1].Relationships[0].Target)
}

func TestExtractSymbols_AnonymousUsageGetsSyntheticName(t *testing.T) {
	pf := sysml.Parse(`part def Car {
		part : Engine;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("car.sysml", pf)
	parts := symbolsByKind(res, hir.KindPart)
	require.Len(t, parts, 2)
	anon := parts[1]
	assert.NotEmpty(t, anon.Name)
	assert.Contains(t, anon.QualifiedName, "Car::")
}

func TestExtractSymbols_ConnectorEndsBecomeChildSymbols(t *testing.T) {
	pf := sysml.Parse(`part def Assembly {
		part a : Engine;
		part b : Chassis;
		connect first ::> a to second ::> b;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("assembly.sysml", pf)
	ends := symbolsByKind(res, hir.KindEnd)
	require.Len(t, ends, 2)
	assert.Equal(t, "first", ends[0].Name)
	assert.Equal(t, "second", ends[1].Name)
}

func TestExtractSymbols_BareSuccessionInsideStateBecomesTransition(t *testing.T) {
	pf := sysml.Parse(`state def Lifecycle {
		state off;
		state on;
		first off then on;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("lifecycle.sysml", pf)
	transitions := symbolsByKind(res, hir.KindTransition)
	require.Len(t, transitions, 1)
	assert.Equal(t, []string{"Actions::TransitionAction"}, transitions[0].Supertypes)

	var sourceRel, targetRel *hir.Relationship
	for i := range transitions[0].Relationships {
		rel := &transitions[0].Relationships[i]
		switch rel.Kind {
		case hir.RelTransitionSource:
			sourceRel = rel
		case hir.RelTransitionTarget:
			targetRel = rel
		}
	}
	require.NotNil(t, sourceRel)
	require.NotNil(t, targetRel)
	assert.Equal(t, "off", sourceRel.Target)
	assert.Equal(t, "on", targetRel.Target)
}

func TestExtractSymbols_SuccessionOutsideStateStaysSuccession(t *testing.T) {
	pf := sysml.Parse(`part def Process {
		action a1;
		action a2;
		first a1 then a2;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("process.sysml", pf)
	assert.Len(t, symbolsByKind(res, hir.KindTransition), 0)
	assert.Len(t, symbolsByKind(res, hir.KindSuccession), 1)
}

func TestExtractSymbols_ImportFilterPopulatesImportFilters(t *testing.T) {
	pf := sysml.Parse(`package P {
		import Q::*[@Safety];
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("p.sysml", pf)
	require.Len(t, res.ImportFilters, 1)
	assert.Equal(t, []string{"Safety"}, res.ImportFilters[0].Names)
}

func TestExtractSymbols_MultiplicityAndValue(t *testing.T) {
	pf := sysml.Parse(`part def Fleet {
		part members : Vehicle[1..*] ordered;
		attribute count = 3;
	}`)
	require.Empty(t, pf.Diagnostics)

	res := hir.ExtractSymbols("fleet.sysml", pf)
	parts := symbolsByKind(res, hir.KindPart)
	require.Len(t, parts, 1)
	require.NotNil(t, parts[0].Multiplicity)
	assert.Equal(t, "1", parts[0].Multiplicity.Lower)
	assert.Equal(t, "*", parts[0].Multiplicity.Upper)
	assert.True(t, parts[0].IsOrdered)

	attrs := symbolsByKind(res, hir.KindAttribute)
	require.Len(t, attrs, 1)
	require.NotNil(t, attrs[0].Value)
	assert.Equal(t, "literal", attrs[0].Value.Kind)
	assert.Equal(t, "3", attrs[0].Value.Text)
}
