package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/localelint/internal/adapters/outbound/config"
	"github.com/abdidvp/localelint/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".localelint.yaml"), []byte(content), 0644))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
paths:
  - i18n
  - resources/strings
rules:
  enable: [placeholder_consistency]
`)

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"i18n", "resources/strings"}, cfg.Paths)
	assert.Equal(t, "main", cfg.BaseRef, "omitted keys keep defaults")
	assert.Equal(t, []string{"placeholder_consistency"}, cfg.Rules.Enable)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "paths: [unclosed")

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".localelint.yaml")
}

func TestLoad_UnknownRuleName(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
rules:
  disable: [placheolder_consistency]
`)

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .localelint.yaml")
	assert.Contains(t, err.Error(), "placheolder_consistency")
}
