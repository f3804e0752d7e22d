package check

import (
	"os"

	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
	"github.com/stuartp44/hacs-ducobox-connector/internal/stack"
	"github.com/stuartp44/hacs-ducobox-connector/internal/util"
)

func init() {
	Register(func() Check { return &EnvironmentCheck{} })
}

// EnvironmentCheck verifies the pass-through variables the container is
// handed. The runtime substitutes unset variables with empty strings
// silently, so an unset PUID surfaces as root-owned config files rather
// than an error.
type EnvironmentCheck struct{}

func (c *EnvironmentCheck) Metadata() Metadata {
	return Metadata{
		Name:        "environment",
		DisplayName: "Environment",
		Description: "Pass-through variables (PUID, PGID, TZ) are set in the invoking environment",
	}
}

func (c *EnvironmentCheck) Enabled(cfg *config.Config) bool { return true }

func (c *EnvironmentCheck) Run(cfg *config.Config) []ValidationError {
	suggestions := map[string]string{
		"PUID": "export PUID=$(id -u)",
		"PGID": "export PGID=$(id -g)",
		"TZ":   "export TZ=$(cat /etc/timezone) or pick one from the tz database",
	}

	var errs []ValidationError
	for _, e := range stack.HomeAssistant(stack.Options{}).Environment {
		for _, name := range util.Vars(e.Spec()) {
			if name == stack.ConfDirVar {
				continue // ConfDirCheck owns this one
			}
			if os.Getenv(name) == "" {
				errs = append(errs, ValidationError{
					Field:      name,
					Message:    name + " is not set; the container would see an empty value",
					Suggestion: suggestions[name],
				})
			}
		}
	}
	return errs
}
