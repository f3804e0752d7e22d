package check

import (
	"os/exec"

	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
)

func init() {
	Register(func() Check { return &RuntimeCheck{} })
}

// lookPath wraps exec.LookPath for testability.
var lookPath = exec.LookPath

// RuntimeCheck verifies the external container runtime is reachable from
// PATH. hadev never manages containers itself; without docker there is
// nothing to delegate to.
type RuntimeCheck struct{}

func (c *RuntimeCheck) Metadata() Metadata {
	return Metadata{
		Name:        "runtime",
		DisplayName: "Container runtime",
		Description: "The docker CLI is available",
	}
}

func (c *RuntimeCheck) Enabled(cfg *config.Config) bool { return true }

func (c *RuntimeCheck) Run(cfg *config.Config) []ValidationError {
	if _, err := lookPath("docker"); err != nil {
		return []ValidationError{{
			Field:      "docker",
			Message:    "docker not found in PATH",
			Suggestion: "install Docker: https://docs.docker.com/engine/install/",
		}}
	}
	return nil
}
