package config

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(filepath.Join(tmpDir, "missing.yaml"))
	assert.NilError(t, err)

	assert.Equal(t, cfg.DatabasePath, "")
	assert.Equal(t, cfg.SearchLimit, DefaultSearchLimit)
	assert.Equal(t, cfg.LogLevel, "warn")
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	content := "database:\n  path: /tmp/lib.db\nsearch:\n  limit: 25\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	assert.NilError(t, err)

	assert.Equal(t, cfg.DatabasePath, "/tmp/lib.db")
	assert.Equal(t, cfg.SearchLimit, 25)
	assert.Equal(t, cfg.LogLevel, "debug")
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("   \n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.SearchLimit, DefaultSearchLimit)
}

func TestLoad_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TAGDEX_SEARCH_LIMIT", "7")

	cfg, err := Load(filepath.Join(tmpDir, "missing.yaml"))
	assert.NilError(t, err)
	assert.Equal(t, cfg.SearchLimit, 7)
}

func TestLoad_DirectoryPathIsError(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	assert.ErrorContains(t, err, "is a directory")
}
