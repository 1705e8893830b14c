package config

import (
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"

	"webup/flowup/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverride(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flowup.yml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveRejectsPlaceholderHost(t *testing.T) {
	// compiled-in default is the placeholder; no override file
	_, err := Resolve(filepath.Join(t.TempDir(), "missing.yml"))

	var confErr *domain.ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, "target_host", confErr.Field)
}

func TestResolveAppliesOverrideFile(t *testing.T) {
	path := writeOverride(t, "target_host: demo.example.org\nadmin_user: ops\ninstall_dir: /srv/n8n\n")

	cfg, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, "demo.example.org", cfg.TargetHost)
	assert.Equal(t, "ops", cfg.AdminUser)
	assert.Equal(t, "/srv/n8n", cfg.InstallDir)
}

func TestResolveKeepsDefaultsForEmptyOverrideFields(t *testing.T) {
	path := writeOverride(t, "target_host: demo.example.org\n")

	cfg, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultAdminUser, cfg.AdminUser)
	assert.Equal(t, domain.DefaultInstallDir, cfg.InstallDir)
}

func TestResolveGeneratesDistinctSecrets(t *testing.T) {
	path := writeOverride(t, "target_host: demo.example.org\n")

	cfg, err := Resolve(path)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.DBPassword)
	assert.NotEmpty(t, cfg.AppPassword)
	assert.NotEqual(t, cfg.DBPassword, cfg.AppPassword)
	// 24 bytes of entropy, raw URL-safe base64
	assert.Equal(t, 32, len(cfg.DBPassword))
}

func TestResolveRotatesSecretsOnEveryRun(t *testing.T) {
	path := writeOverride(t, "target_host: demo.example.org\n")

	first, err := Resolve(path)
	require.NoError(t, err)
	second, err := Resolve(path)
	require.NoError(t, err)

	assert.NotEqual(t, first.DBPassword, second.DBPassword)
	assert.NotEqual(t, first.AppPassword, second.AppPassword)
}

func TestResolveFailsOnUnparsableOverride(t *testing.T) {
	path := writeOverride(t, "target_host: [broken\n")

	_, err := Resolve(path)
	assert.Error(t, err)
}
