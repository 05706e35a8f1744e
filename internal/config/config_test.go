package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), filePerm))
	return path
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "fresh")

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.FileExists(t, filepath.Join(dir, "config.json"))

	cfg := m.Get()
	assert.Equal(t, "omni", cfg.Vomnibar.DefaultCompleter)
	assert.Equal(t, defaultMaxResults, cfg.Vomnibar.MaxResults)
	assert.Equal(t, -1, cfg.InitialSelection())
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
	assert.Contains(t, cfg.SearchEngines, "w")
}

func TestLoad_FileAndEnvironmentOverrides(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "cfg")
	writeConfig(t, dir, `{
  "vomnibar": {"select_first": true, "default_completer": "history"},
  "search_engines": {"rs": {"url": "https://docs.rs/releases/search?query=%s", "description": "docs.rs"}}
}`)
	t.Setenv("VOMNIBAR_VOMNIBAR_MAX_RESULTS", "25")
	t.Setenv("VOMNIBAR_DATABASE_PATH", "/tmp/custom.sqlite")

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.True(t, cfg.Vomnibar.SelectFirst)
	assert.Equal(t, 0, cfg.InitialSelection())
	assert.Equal(t, "history", cfg.Vomnibar.DefaultCompleter)
	assert.Equal(t, 25, cfg.Vomnibar.MaxResults)
	assert.Equal(t, "/tmp/custom.sqlite", cfg.Database.Path)

	engines := cfg.Engines()
	require.Len(t, engines, 1)
	assert.Equal(t, "rs", engines[0].Keyword)
	assert.Equal(t, "docs.rs", engines[0].Description)
}

func TestLoad_CollectsValidationErrors(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "bad")
	writeConfig(t, dir, `{
  "vomnibar": {"default_completer": "bookmarks", "max_results": 0},
  "default_search_engine": "https://example.com/search",
  "logging": {"format": "xml"}
}`)

	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	err = m.Load()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "vomnibar.default_completer")
	assert.Contains(t, err.Error(), "vomnibar.max_results")
	assert.Contains(t, err.Error(), "default_search_engine must contain %s")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestGet_ReturnsIndependentCopy(t *testing.T) {
	isolateXDG(t)
	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.SearchEngines["evil"] = SearchEngine{URL: "x"}
	cfg.Vomnibar.MaxResults = 99

	again := m.Get()
	assert.NotContains(t, again.SearchEngines, "evil")
	assert.Equal(t, defaultMaxResults, again.Vomnibar.MaxResults)
}

func TestStrict(t *testing.T) {
	t.Setenv("ENV", "")
	cfg := DefaultConfig()
	assert.False(t, cfg.Strict())

	cfg.DevMode = true
	assert.True(t, cfg.Strict())

	t.Setenv("ENV", "dev")
	assert.True(t, DefaultConfig().Strict())
}

func TestWatch_ReloadsSearchEngines(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "watch")
	path := writeConfig(t, dir, `{"search_engines": {"w": {"url": "https://en.wikipedia.org/w/index.php?search=%s"}}}`)

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	reloaded := make(chan *Config, 4)
	m.OnConfigChange(func(c *Config) { reloaded <- c })
	m.Watch(context.Background())

	// Give the watcher a moment to register before the write.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"search_engines": {"ddg": {"url": "https://duckduckgo.com/?q=%s"}}}`), filePerm))

	select {
	case c := <-reloaded:
		assert.Contains(t, c.SearchEngines, "ddg")
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "Vomnibar Configuration", schema["title"])
	assert.Contains(t, string(data), "default_search_engine")
	assert.Contains(t, string(data), "search_engines")
}
