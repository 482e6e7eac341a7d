package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/sysml-core/token"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCmd_ValidFileReportsOK(t *testing.T) {
	path := writeTempFile(t, "engine.sysml", `part def Engine;`)
	cmd := newParseCmd()
	cmd.SetArgs([]string{path})
	assert.NoError(t, cmd.Execute())
}

func TestExtractCmd_GlobFindsFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vehicles.sysml")
	require.NoError(t, os.WriteFile(path, []byte(`package Vehicles { part def Engine; }`), 0o644))

	cmd := newExtractCmd()
	cmd.SetArgs([]string{filepath.Join(dir, "*.sysml")})
	assert.NoError(t, cmd.Execute())
}

func TestRuleCmd_ValidFragment(t *testing.T) {
	cmd := newRuleCmd()
	cmd.SetArgs([]string{"succession", "first a then b;"})
	assert.NoError(t, cmd.Execute())
}

func TestDialectFromFlagOrExt(t *testing.T) {
	d, err := dialectFromFlagOrExt("", "foo.kerml")
	require.NoError(t, err)
	assert.Equal(t, token.KerML, d)

	d, err = dialectFromFlagOrExt("", "foo.sysml")
	require.NoError(t, err)
	assert.Equal(t, token.SysML, d)

	_, err = dialectFromFlagOrExt("nonsense", "foo.sysml")
	assert.Error(t, err)
}
