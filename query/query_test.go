package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/sysml-core/hir"
	"github.com/termfx/sysml-core/query"
	"github.com/termfx/sysml-core/token"
)

func TestParse_DispatchesByDialect(t *testing.T) {
	sysmlFile := query.Parse(token.SysML, `part def Engine;`)
	require.Empty(t, sysmlFile.Diagnostics)
	assert.Equal(t, token.SysML, sysmlFile.Dialect)

	kermlFile := query.Parse(token.KerML, `class Engine;`)
	require.Empty(t, kermlFile.Diagnostics)
	assert.Equal(t, token.KerML, kermlFile.Dialect)
}

func TestParse_UnknownDialectPanics(t *testing.T) {
	assert.Panics(t, func() {
		query.Parse(token.Dialect(99), `part def Engine;`)
	})
}

func TestParseAndExtract_RoundTrips(t *testing.T) {
	pf, res := query.ParseAndExtract("engine.sysml", token.SysML, `package P {
		part def Engine;
	}`)
	require.Empty(t, pf.Diagnostics)

	var kinds []hir.SymbolKind
	for _, s := range res.Symbols {
		kinds = append(kinds, s.Kind)
	}
	assert.Contains(t, kinds, hir.KindPackage)
	assert.Contains(t, kinds, hir.KindPart)
}
