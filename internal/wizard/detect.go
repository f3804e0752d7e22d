package wizard

import (
	"os"
	"os/exec"
	"path/filepath"
)

// DetectionResult holds what was found while scanning the environment.
type DetectionResult struct {
	IntegrationDirs []string // custom_components/<name> dirs with a manifest.json
	ComposeFile     string   // existing compose file, if any
	DockerAvailable bool
	ConfDir         string // HA_CONF_DIR from the environment
	Timezone        string // TZ from the environment
}

var composeFileNames = []string{
	"docker-compose.yml",
	"docker-compose.yaml",
	"compose.yml",
	"compose.yaml",
}

// Detect scans root (default: the working directory) for an existing dev
// environment: integration source trees, a compose file, and the docker
// binary.
func Detect(root string) DetectionResult {
	if root == "" {
		root = "."
	}

	var result DetectionResult

	componentsDir := filepath.Join(root, "custom_components")
	if entries, err := os.ReadDir(componentsDir); err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			manifest := filepath.Join(componentsDir, entry.Name(), "manifest.json")
			if _, err := os.Stat(manifest); err == nil {
				result.IntegrationDirs = append(result.IntegrationDirs,
					filepath.Join(componentsDir, entry.Name()))
			}
		}
	}

	for _, name := range composeFileNames {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			result.ComposeFile = filepath.Join(root, name)
			break
		}
	}

	if _, err := exec.LookPath("docker"); err == nil {
		result.DockerAvailable = true
	}

	result.ConfDir = os.Getenv("HA_CONF_DIR")
	result.Timezone = os.Getenv("TZ")

	return result
}
