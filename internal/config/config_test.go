package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocal_FindsDotfileFirst(t *testing.T) {
	dir := t.TempDir()
	body := "max_depth: 3\nexclude: \"backup/**\"\nskip_ignore_paths: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".wpscout.yml"), []byte(body), 0644))

	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.MaxDepth)
	assert.Equal(t, 3, *cfg.MaxDepth)
	require.NotNil(t, cfg.Exclude)
	assert.Equal(t, "backup/**", *cfg.Exclude)
	require.NotNil(t, cfg.SkipIgnorePaths)
	assert.True(t, *cfg.SkipIgnorePaths)
	assert.Nil(t, cfg.MinVersion)
}

func TestLoadLocal_MissingIsError(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	assert.Error(t, err)
}

func TestLoadFile_BadYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(p, []byte("max_depth: [oops"), 0644))
	_, err := LoadFile(p)
	assert.Error(t, err)
}

func TestLoadGlobal_UsesXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	require.NoError(t, os.MkdirAll(filepath.Join(base, "wpscout"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "wpscout", "config.yml"), []byte("no_color: true\n"), 0644))

	cfg, err := LoadGlobal()
	require.NoError(t, err)
	require.NotNil(t, cfg.NoColor)
	assert.True(t, *cfg.NoColor)
}
