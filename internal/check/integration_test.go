package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
)

func integrationConfig(source string) *config.Config {
	cfg := &config.Config{}
	cfg.Integration.Name = "ducobox-connectivity-board"
	cfg.Integration.Source = source
	return cfg
}

func TestIntegrationMissingDir(t *testing.T) {
	cfg := integrationConfig(filepath.Join(t.TempDir(), "missing"))

	errs := (&IntegrationCheck{}).Run(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, "integration.source", errs[0].Field)
}

func TestIntegrationNoManifest(t *testing.T) {
	dir := t.TempDir()
	cfg := integrationConfig(dir)

	errs := (&IntegrationCheck{}).Run(cfg)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "manifest.json")
}

func TestIntegrationOK(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(`{"domain": "ducobox"}`), 0644))

	cfg := integrationConfig(dir)
	assert.Empty(t, (&IntegrationCheck{}).Run(cfg))
}

func TestIntegrationDisabledWithoutSource(t *testing.T) {
	cfg := &config.Config{}
	assert.False(t, (&IntegrationCheck{}).Enabled(cfg))
}
