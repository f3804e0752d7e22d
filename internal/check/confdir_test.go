package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
)

func TestConfDirUnset(t *testing.T) {
	cfg := &config.Config{}

	errs := (&ConfDirCheck{}).Run(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, "conf_dir", errs[0].Field)
	assert.Contains(t, errs[0].Message, "HA_CONF_DIR")
}

func TestConfDirMissingMountSource(t *testing.T) {
	cfg := &config.Config{ConfDir: filepath.Join(t.TempDir(), "nope")}

	errs := (&ConfDirCheck{}).Run(cfg)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Suggestion, "mkdir -p")
}

func TestConfDirOK(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "homeassistant"), 0755))

	cfg := &config.Config{ConfDir: dir}
	assert.Empty(t, (&ConfDirCheck{}).Run(cfg))
}
