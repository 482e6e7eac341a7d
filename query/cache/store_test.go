package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/sysml-core/query/cache"
	"github.com/termfx/sysml-core/token"
)

func openTestStore(t *testing.T) *cache.Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache_test.db")
	s, err := cache.Open(dbPath, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_GetOrParse_CachesDiagnostics(t *testing.T) {
	s := openTestStore(t)
	source := `part def Engine;`

	pf1, hit1, err := s.GetOrParse(token.SysML, source)
	require.NoError(t, err)
	assert.False(t, hit1)
	require.Empty(t, pf1.Diagnostics)

	pf2, hit2, err := s.GetOrParse(token.SysML, source)
	require.NoError(t, err)
	assert.True(t, hit2)
	require.Empty(t, pf2.Diagnostics)

	parseRows, _, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), parseRows)
}

func TestStore_GetOrExtract_CachesSymbols(t *testing.T) {
	s := openTestStore(t)
	source := `package Vehicles {
		part def Engine;
	}`

	res1, hit1, err := s.GetOrExtract("vehicles.sysml", token.SysML, source)
	require.NoError(t, err)
	assert.False(t, hit1)
	require.NotEmpty(t, res1.Symbols)

	res2, hit2, err := s.GetOrExtract("vehicles.sysml", token.SysML, source)
	require.NoError(t, err)
	assert.True(t, hit2)
	assert.Equal(t, len(res1.Symbols), len(res2.Symbols))

	_, extractionRows, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), extractionRows)
}

func TestStore_GetOrExtract_DistinctFileIDsDontShareRows(t *testing.T) {
	s := openTestStore(t)
	source := `part def Engine;`

	_, hitA, err := s.GetOrExtract("a.sysml", token.SysML, source)
	require.NoError(t, err)
	assert.False(t, hitA)

	_, hitB, err := s.GetOrExtract("b.sysml", token.SysML, source)
	require.NoError(t, err)
	assert.False(t, hitB)

	_, extractionRows, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), extractionRows)
}
