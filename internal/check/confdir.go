package check

import (
	"fmt"
	"os"

	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
	"github.com/stuartp44/hacs-ducobox-connector/internal/stack"
	"github.com/stuartp44/hacs-ducobox-connector/internal/util"
)

func init() {
	Register(func() Check { return &ConfDirCheck{} })
}

// ConfDirCheck verifies that HA_CONF_DIR resolves and that the persistent
// config mount source exists. An unset HA_CONF_DIR would interpolate to an
// empty-prefixed mount source and fail at container create; catching it
// here fails fast with a usable message instead.
type ConfDirCheck struct{}

func (c *ConfDirCheck) Metadata() Metadata {
	return Metadata{
		Name:        "conf-dir",
		DisplayName: "Config directory",
		Description: "HA_CONF_DIR is set and the /config mount source exists",
	}
}

func (c *ConfDirCheck) Enabled(cfg *config.Config) bool { return true }

func (c *ConfDirCheck) Run(cfg *config.Config) []ValidationError {
	if cfg.ConfDir == "" {
		return []ValidationError{{
			Field:      "conf_dir",
			Message:    stack.ConfDirVar + " is not set and hadev.yml has no conf_dir",
			Suggestion: "export " + stack.ConfDirVar + "=~/.hadev or set conf_dir in hadev.yml",
		}}
	}

	// Resolve the mount source exactly the way the runtime would
	source := stack.HomeAssistant(stack.Options{}).Volumes[0].Source
	mountSource := util.Interpolate(source, func(name string) (string, bool) {
		if name == stack.ConfDirVar {
			return util.ExpandPath(cfg.ConfDir), true
		}
		return os.LookupEnv(name)
	})
	if info, err := os.Stat(mountSource); err != nil || !info.IsDir() {
		return []ValidationError{{
			Field:      "conf_dir",
			Message:    fmt.Sprintf("mount source does not exist: %s", mountSource),
			Suggestion: fmt.Sprintf("mkdir -p %s", mountSource),
		}}
	}

	return nil
}
