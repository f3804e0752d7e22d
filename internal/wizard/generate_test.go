package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"
)

func TestGenerateConfig(t *testing.T) {
	content, err := GenerateConfig(Answers{
		ComposeFile:       "docker-compose.yml",
		ConfDir:           "~/.hadev",
		Image:             "lscr.io/linuxserver/homeassistant:latest",
		Port:              "8123",
		IntegrationName:   "ducobox-connectivity-board",
		IntegrationSource: "./custom_components/ducobox-connectivity-board",
	})
	require.NoError(t, err)

	var cfg map[string]any
	require.NoError(t, yamlv3.Unmarshal([]byte(content), &cfg), "generated config must be valid YAML")

	assert.Equal(t, "docker-compose.yml", cfg["compose_file"])
	assert.Equal(t, "~/.hadev", cfg["conf_dir"])
	assert.Equal(t, 8123, cfg["port"])

	integration, ok := cfg["integration"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ducobox-connectivity-board", integration["name"])
}

func TestGenerateConfigOmitsEmptyOptionals(t *testing.T) {
	content, err := GenerateConfig(Answers{
		ComposeFile:       "docker-compose.yml",
		ConfDir:           "~/.hadev",
		IntegrationName:   "ducobox-connectivity-board",
		IntegrationSource: "./custom_components/ducobox-connectivity-board",
	})
	require.NoError(t, err)

	assert.NotContains(t, content, "image:")
	assert.NotContains(t, content, "port:")
}
