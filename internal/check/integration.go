package check

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
	"github.com/stuartp44/hacs-ducobox-connector/internal/util"
)

func init() {
	Register(func() Check { return &IntegrationCheck{} })
}

// IntegrationCheck verifies the custom integration source tree that gets
// mounted into the container.
type IntegrationCheck struct{}

func (c *IntegrationCheck) Metadata() Metadata {
	return Metadata{
		Name:        "integration",
		DisplayName: "Integration source",
		Description: "The integration source directory exists and looks like a Home Assistant integration",
	}
}

func (c *IntegrationCheck) Enabled(cfg *config.Config) bool {
	return cfg.Integration.Source != ""
}

func (c *IntegrationCheck) Run(cfg *config.Config) []ValidationError {
	source := util.ExpandPath(cfg.Integration.Source)

	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		return []ValidationError{{
			Field:      "integration.source",
			Message:    fmt.Sprintf("directory not found: %s", cfg.Integration.Source),
			Suggestion: "check the path or set integration.source in hadev.yml",
		}}
	}

	var errs []ValidationError
	if _, err := os.Stat(filepath.Join(source, "manifest.json")); err != nil {
		errs = append(errs, ValidationError{
			Field:      "integration.source",
			Message:    fmt.Sprintf("no manifest.json in %s", cfg.Integration.Source),
			Suggestion: "Home Assistant ignores integrations without a manifest.json",
		})
	}
	return errs
}
