package kerml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termfx/sysml-core/dialect/kerml"
	"github.com/termfx/sysml-core/syntax"
)

func TestParse_ClassWithSpecializationAndFeature(t *testing.T) {
	pf := kerml.Parse(`class Vehicle :> Base {
		feature wheels : Integer;
	}`)
	require.Empty(t, pf.Diagnostics)

	def := syntax.NewRed(pf.Green).FirstChild(syntax.Definition)
	require.NotNil(t, def)
	assert.NotNil(t, def.FirstChild(syntax.Specialization))

	body := def.FirstChild(syntax.DefinitionBody)
	require.NotNil(t, body)
	usage := body.FirstChild(syntax.Usage)
	require.NotNil(t, usage)
	assert.NotNil(t, usage.FirstChild(syntax.Typing))
}

func TestParse_AssociationWithRedefines(t *testing.T) {
	pf := kerml.Parse(`assoc Link {
		feature a redefines Base::a;
		feature b :>> Base::b;
	}`)
	require.Empty(t, pf.Diagnostics)
}

func TestParse_PackageImportAliasDependency(t *testing.T) {
	pf := kerml.Parse(`package P {
		import Q::*;
		alias X for Q::Y;
		dependency from P::A to P::B;
	}`)
	require.Empty(t, pf.Diagnostics)
	assert.Equal(t, `package P {
		import Q::*;
		alias X for Q::Y;
		dependency from P::A to P::B;
	}`, syntax.Text(pf.Green))
}

func TestParse_DocAndCommentMembers(t *testing.T) {
	pf := kerml.Parse(`package P {
		doc "hello";
		comment about P "world";
	}`)
	require.Empty(t, pf.Diagnostics)
}

func TestParse_MultiplicityForms(t *testing.T) {
	for _, src := range []string{
		"feature a [1];",
		"feature a [0..1];",
		"feature a [*];",
		"feature a [1..*] ordered;",
	} {
		pf := kerml.Parse(src)
		assert.Empty(t, pf.Diagnostics, "src=%q", src)
	}
}

func TestParse_MetadataAnnotation(t *testing.T) {
	pf := kerml.Parse(`class Vehicle {
		@Published;
	}`)
	require.Empty(t, pf.Diagnostics)
}

func TestParse_UnknownKeywordRecoversAtTopLevel(t *testing.T) {
	pf := kerml.Parse("### garbage ### class C;")
	require.NotEmpty(t, pf.Diagnostics)

	def := syntax.NewRed(pf.Green).FirstChild(syntax.Definition)
	require.NotNil(t, def, "recovery must still reach the well-formed class declaration")
}
