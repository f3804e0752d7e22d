package wizard

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/stuartp44/hacs-ducobox-connector/internal/util"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*Answers, error) {
	answers := &Answers{
		ComposeFile: "docker-compose.yml",
		Image:       "lscr.io/linuxserver/homeassistant:latest",
		Port:        "8123",
		ConfDir:     detection.ConfDir,
	}
	if answers.ConfDir == "" {
		answers.ConfDir = "~/.hadev"
	}

	hints := detectionHints(detection)

	desc := "hadev renders and operates the Home Assistant dev container."
	if len(hints) > 0 {
		desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	// Step 1: integration selection
	var sourceField huh.Field = huh.NewInput().
		Title("Integration source directory").
		Description(desc).
		Value(&answers.IntegrationSource)

	if len(detection.IntegrationDirs) > 0 {
		answers.IntegrationSource = detection.IntegrationDirs[0]
		if len(detection.IntegrationDirs) > 1 {
			var options []huh.Option[string]
			for _, dir := range detection.IntegrationDirs {
				options = append(options, huh.NewOption(dir, dir))
			}
			sourceField = huh.NewSelect[string]().
				Title("Which integration do you want mounted?").
				Description(desc).
				Options(options...).
				Value(&answers.IntegrationSource)
		}
	}

	// Step 2: stack settings
	form := huh.NewForm(
		huh.NewGroup(sourceField),
		huh.NewGroup(
			huh.NewInput().
				Title("Home Assistant config directory (HA_CONF_DIR)").
				Description("Host directory holding the persistent /config mount").
				Value(&answers.ConfDir),
			huh.NewInput().
				Title("Home Assistant image").
				Value(&answers.Image),
			huh.NewInput().
				Title("Host port for the web UI").
				Validate(validatePort).
				Value(&answers.Port),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	if answers.IntegrationName == "" && answers.IntegrationSource != "" {
		answers.IntegrationName = util.SanitizeName(filepath.Base(answers.IntegrationSource))
	}

	return answers, nil
}

// detectionHints summarizes what Detect found for the wizard's intro text.
func detectionHints(detection DetectionResult) []string {
	var hints []string
	if detection.DockerAvailable {
		hints = append(hints, "docker found in PATH")
	}
	if detection.ComposeFile != "" {
		hints = append(hints, fmt.Sprintf("existing compose file: %s", detection.ComposeFile))
	}
	if len(detection.IntegrationDirs) > 0 {
		hints = append(hints, fmt.Sprintf("integrations found: %s", strings.Join(detection.IntegrationDirs, ", ")))
	}
	if detection.Timezone != "" {
		hints = append(hints, fmt.Sprintf("timezone from TZ: %s", detection.Timezone))
	}
	return hints
}

func validatePort(s string) error {
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("must be a port number between 1 and 65535")
	}
	return nil
}
