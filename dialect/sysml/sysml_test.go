package sysml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termfx/sysml-core/dialect/sysml"
	"github.com/termfx/sysml-core/syntax"
)

func TestParse_PartDefinition(t *testing.T) {
	pf := sysml.Parse("part def Vehicle;")
	require.Empty(t, pf.Diagnostics)
	assert.Equal(t, "part def Vehicle;", syntax.Text(pf.Green))

	def := syntax.NewRed(pf.Green).FirstChild(syntax.Definition)
	require.NotNil(t, def)
	name := def.FirstChild(syntax.Name)
	require.NotNil(t, name)
	assert.Equal(t, "Vehicle", name.Text())
}

func TestParse_AbstractPartWithSpecialization(t *testing.T) {
	pf := sysml.Parse("abstract part def V :> Base;")
	require.Empty(t, pf.Diagnostics)

	def := syntax.NewRed(pf.Green).FirstChild(syntax.Definition)
	require.NotNil(t, def)
	spec := def.FirstChild(syntax.Specialization)
	require.NotNil(t, spec, "definition-context ':>' must produce Specialization, not Subsetting")
}

func TestParse_PackageWithUsageAndTyping(t *testing.T) {
	pf := sysml.Parse("package P { part x : T; }")
	require.Empty(t, pf.Diagnostics)

	pkg := syntax.NewRed(pf.Green).FirstChild(syntax.Package)
	require.NotNil(t, pkg)
	body := pkg.FirstChild(syntax.NamespaceBody)
	require.NotNil(t, body)
	usage := body.FirstChild(syntax.Usage)
	require.NotNil(t, usage)
	typing := usage.FirstChild(syntax.Typing)
	require.NotNil(t, typing, "usage-context ':' must produce a Typing clause")
}

func TestParse_WildcardImport(t *testing.T) {
	pf := sysml.Parse("import ISQ::*;")
	require.Empty(t, pf.Diagnostics)
	assert.Equal(t, "import ISQ::*;", syntax.Text(pf.Green))

	imp := syntax.NewRed(pf.Green).FirstChild(syntax.Import)
	require.NotNil(t, imp)
}

func TestParse_ConnectUsageWithThreeEnds(t *testing.T) {
	pf := sysml.Parse("part def Whole { connect (a, b, c); }")
	require.Empty(t, pf.Diagnostics)

	def := syntax.NewRed(pf.Green).FirstChild(syntax.Definition)
	require.NotNil(t, def)
	body := def.FirstChild(syntax.DefinitionBody)
	require.NotNil(t, body)
	conn := body.FirstChild(syntax.ConnectorPart)
	require.NotNil(t, conn)
	ends := conn.ChildrenOfKind(syntax.ConnectorEnd)
	assert.Len(t, ends, 3)
}

func TestParse_BareFirstThenInsideStateDef(t *testing.T) {
	// Bare "first ... then ..." is syntactically a Succession regardless of
	// enclosing context; a state-body parent reinterprets it as a
	// transition at the symbol-extraction layer, not at parse time.
	pf := sysml.Parse("state def S { first S1 then S2; }")
	require.Empty(t, pf.Diagnostics)

	def := syntax.NewRed(pf.Green).FirstChild(syntax.Definition)
	require.NotNil(t, def)
	body := def.FirstChild(syntax.DefinitionBody)
	require.NotNil(t, body)
	succ := body.FirstChild(syntax.Succession)
	require.NotNil(t, succ)
	items := succ.ChildrenOfKind(syntax.SuccessionItem)
	assert.Len(t, items, 2)
}

func TestParse_ExplicitTransitionForm(t *testing.T) {
	pf := sysml.Parse("state def S { transition first S1 accept Sig if g then S2; }")
	require.Empty(t, pf.Diagnostics)

	def := syntax.NewRed(pf.Green).FirstChild(syntax.Definition)
	require.NotNil(t, def)
	body := def.FirstChild(syntax.DefinitionBody)
	require.NotNil(t, body)
	tr := body.FirstChild(syntax.TransitionUsage)
	require.NotNil(t, tr)
	assert.NotNil(t, tr.FirstChild(syntax.TransitionTrigger))
	assert.NotNil(t, tr.FirstChild(syntax.TransitionGuard))
	assert.NotNil(t, tr.FirstChild(syntax.TransitionEffect))
}

func TestParse_UnclosedPackageEmitsE0202WithRelatedInfo(t *testing.T) {
	pf := sysml.Parse("package P { part")
	require.NotEmpty(t, pf.Diagnostics)
	last := pf.Diagnostics[len(pf.Diagnostics)-1]
	assert.Equal(t, syntax.E0202, last.Code)
	require.Len(t, last.Related, 1)

	pkg := syntax.NewRed(pf.Green).FirstChild(syntax.Package)
	require.NotNil(t, pkg, "recovery must still surface the package symbol")
}

func TestParse_MissingIdentifierAfterDefEmitsE0301(t *testing.T) {
	pf := sysml.Parse("part def ;")
	require.NotEmpty(t, pf.Diagnostics)

	found := false
	for _, d := range pf.Diagnostics {
		if d.Code == syntax.E0301 {
			found = true
		}
	}
	assert.True(t, found, "missing identifier after 'def' must emit E0301")
}

func TestParse_RequirementWithAttributesAndConstraint(t *testing.T) {
	pf := sysml.Parse(`requirement def R {
		attribute x : Real;
		constraint { x > 0 }
	}`)
	assert.Empty(t, pf.Diagnostics)
}

func TestParse_ActionWithControlNodesAndLoop(t *testing.T) {
	pf := sysml.Parse(`action def A {
		fork f1;
		if x > 0 { accept Sig; } else { send Sig to target; }
		while x > 0 { perform Step; }
		join j1;
	}`)
	assert.Empty(t, pf.Diagnostics)
}

func TestParse_StateWithSubactions(t *testing.T) {
	pf := sysml.Parse(`state def S {
		entry ;
		do Behavior ;
		exit ;
	}`)
	assert.Empty(t, pf.Diagnostics)
}

func TestParse_ViewWithRenderAndExpose(t *testing.T) {
	pf := sysml.Parse(`view def V {
		render Layout;
		expose Pkg::*;
	}`)
	assert.Empty(t, pf.Diagnostics)
}
