package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"))
	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.Scroller.Backend = BackendTcell
	cfg.Log.File = "/tmp/scrollpage.log"
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[pager]
prompt = "--More--"

[terminal]
tab_width = 4
`), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "--More--", cfg.Pager.Prompt)
	assert.Equal(t, 2, cfg.Pager.ReservedLines)
	assert.Equal(t, 4, cfg.Terminal.TabWidth)
	assert.Equal(t, 24, cfg.Terminal.FallbackHeight)
	assert.Equal(t, BackendTea, cfg.Scroller.Backend)
}

func TestInvalidValuesAreNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[pager]
reserved_lines = -3
prompt = ""

[scroller]
reserved_lines = -1
backend = "curses"
scrollbar_char = ""

[terminal]
fallback_height = 0
fallback_width = -10
tab_width = 0
`), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[pager\nprompt ="), 0644))

	_, err := NewConfigServiceAt(path).Load()
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadFromPathMissing(t *testing.T) {
	_, err := NewConfigService().LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestDefaultPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if _, err := os.UserConfigDir(); err != nil {
		t.Skip("no user config dir on this platform")
	}
	if got := DefaultPath(); filepath.Dir(filepath.Dir(got)) == dir {
		assert.Equal(t, filepath.Join(dir, "scrollpage", "config.toml"), got)
	}
	assert.Equal(t, "config.toml", filepath.Base(NewConfigService().Path()))
}

func TestValidBackend(t *testing.T) {
	for _, b := range []string{BackendTea, BackendTcell, BackendANSI} {
		assert.True(t, ValidBackend(b), b)
	}
	assert.False(t, ValidBackend(""))
	assert.False(t, ValidBackend("curses"))
}
