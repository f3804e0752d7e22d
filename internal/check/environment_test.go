package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
)

func TestEnvironmentAllSet(t *testing.T) {
	t.Setenv("PUID", "1000")
	t.Setenv("PGID", "1000")
	t.Setenv("TZ", "Europe/Amsterdam")

	assert.Empty(t, (&EnvironmentCheck{}).Run(&config.Config{}))
}

func TestEnvironmentUnsetVars(t *testing.T) {
	t.Setenv("PUID", "")
	t.Setenv("PGID", "1000")
	t.Setenv("TZ", "")

	errs := (&EnvironmentCheck{}).Run(&config.Config{})
	require.Len(t, errs, 2)
	assert.Equal(t, "PUID", errs[0].Field)
	assert.Equal(t, "TZ", errs[1].Field)
	assert.Contains(t, errs[0].Suggestion, "id -u")
}
