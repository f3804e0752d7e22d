package check

import (
	"fmt"
	"os"

	"github.com/stuartp44/hacs-ducobox-connector/internal/compose"
	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
	"github.com/stuartp44/hacs-ducobox-connector/internal/util"
)

func init() {
	Register(func() Check { return &ComposeFileCheck{} })
}

// ComposeFileCheck loads the rendered compose file and verifies the
// declaration still holds every property the dev stack depends on. Skipped
// when the file has not been rendered yet.
type ComposeFileCheck struct{}

func (c *ComposeFileCheck) Metadata() Metadata {
	return Metadata{
		Name:        "compose-file",
		DisplayName: "Compose file",
		Description: "The rendered compose file matches the dev-stack contract",
	}
}

func (c *ComposeFileCheck) Enabled(cfg *config.Config) bool {
	_, err := os.Stat(util.ExpandPath(cfg.ComposeFile))
	return err == nil
}

func (c *ComposeFileCheck) Run(cfg *config.Config) []ValidationError {
	path := util.ExpandPath(cfg.ComposeFile)

	services, err := compose.Load(path)
	if err != nil {
		return []ValidationError{{
			Field:      "compose_file",
			Message:    fmt.Sprintf("cannot parse %s: %v", cfg.ComposeFile, err),
			Suggestion: "re-run 'hadev render' to regenerate it",
		}}
	}

	var errs []ValidationError
	for _, svc := range services {
		for _, verr := range svc.Validate() {
			errs = append(errs, ValidationError{
				Field:   "compose_file",
				Message: verr.Error(),
			})
		}
	}
	for _, v := range compose.Verify(services) {
		errs = append(errs, ValidationError{
			Field:      "compose_file." + v.Property,
			Message:    v.Message,
			Suggestion: v.Suggestion,
		})
	}
	return errs
}
