package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectionHints(t *testing.T) {
	detection := DetectionResult{
		IntegrationDirs: []string{"custom_components/ducobox-connectivity-board"},
		ComposeFile:     "docker-compose.yml",
		DockerAvailable: true,
		Timezone:        "Europe/Amsterdam",
	}

	hints := detectionHints(detection)
	require.Len(t, hints, 4)
	assert.Contains(t, hints, "docker found in PATH")
	assert.Contains(t, hints, "existing compose file: docker-compose.yml")
	assert.Contains(t, hints, "timezone from TZ: Europe/Amsterdam")
}

func TestDetectionHintsEmpty(t *testing.T) {
	assert.Empty(t, detectionHints(DetectionResult{}))
}
