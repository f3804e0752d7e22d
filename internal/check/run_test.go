package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
)

func stubDockerPresent(t *testing.T) {
	t.Helper()
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(name string) (string, error) { return "/usr/bin/" + name, nil }
}

func healthyConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()

	confDir := filepath.Join(root, "ha")
	require.NoError(t, os.MkdirAll(filepath.Join(confDir, "homeassistant"), 0755))

	integration := filepath.Join(root, "custom_components", "ducobox-connectivity-board")
	require.NoError(t, os.MkdirAll(integration, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(integration, "manifest.json"), []byte(`{"domain": "ducobox"}`), 0644))

	cfg := &config.Config{
		ComposeFile: filepath.Join(root, "docker-compose.yml"), // not rendered yet
		ConfDir:     confDir,
	}
	cfg.Integration.Name = "ducobox-connectivity-board"
	cfg.Integration.Source = integration
	return cfg
}

func TestRunAllHealthy(t *testing.T) {
	stubDockerPresent(t)
	t.Setenv("PUID", "1000")
	t.Setenv("PGID", "1000")
	t.Setenv("TZ", "Europe/Amsterdam")

	results, err := RunAll(healthyConfig(t))
	require.NoError(t, err)

	skipped := 0
	for _, r := range results {
		assert.Empty(t, r.Errors, r.Check.Name)
		if r.Skipped {
			skipped++
		}
	}
	assert.Equal(t, 1, skipped, "only the compose-file check should be skipped")
}

func TestRunAllNamesFailingCheck(t *testing.T) {
	stubDockerPresent(t)
	t.Setenv("PUID", "1000")
	t.Setenv("PGID", "1000")
	t.Setenv("TZ", "Europe/Amsterdam")

	cfg := healthyConfig(t)
	cfg.ConfDir = filepath.Join(t.TempDir(), "missing")

	_, err := RunAll(cfg)
	require.Error(t, err)

	var cerr *CheckError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "conf-dir", cerr.Check)
}

func TestRunAllAggregatesCount(t *testing.T) {
	stubDockerPresent(t)
	t.Setenv("PUID", "")
	t.Setenv("PGID", "")
	t.Setenv("TZ", "")

	cfg := healthyConfig(t)
	cfg.ConfDir = ""

	_, err := RunAll(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation errors")

	// the wrapped CheckError still attributes the first failure
	var cerr *CheckError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "conf-dir", cerr.Check)
}
