package cmd

import (
	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
	"github.com/stuartp44/hacs-ducobox-connector/internal/stack"
)

// buildService maps the loaded config onto the Home Assistant declaration.
func buildService(cfg *config.Config) *stack.Service {
	return stack.HomeAssistant(stack.Options{
		Image:             cfg.Image,
		Port:              cfg.Port,
		IntegrationName:   cfg.Integration.Name,
		IntegrationSource: cfg.Integration.Source,
		HealthInterval:    cfg.Health.Interval,
		HealthTimeout:     cfg.Health.Timeout,
		HealthRetries:     cfg.Health.Retries,
	})
}
