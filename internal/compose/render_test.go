package compose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/stuartp44/hacs-ducobox-connector/internal/stack"
)

func TestRenderDevStack(t *testing.T) {
	svc := stack.HomeAssistant(stack.Options{})

	data, err := Render([]*stack.Service{svc})
	require.NoError(t, err)

	var doc struct {
		Services map[string]struct {
			Image         string      `yaml:"image"`
			ContainerName string      `yaml:"container_name"`
			Environment   []string    `yaml:"environment"`
			Volumes       []string    `yaml:"volumes"`
			Ports         []string    `yaml:"ports"`
			Restart       interface{} `yaml:"restart"`
		} `yaml:"services"`
	}
	require.NoError(t, yamlv3.Unmarshal(data, &doc))
	require.Len(t, doc.Services, 1)

	ha, ok := doc.Services["homeassistant"]
	require.True(t, ok)
	assert.Equal(t, stack.DefaultImage, ha.Image)
	assert.Equal(t, "homeassistant", ha.ContainerName)

	// restart must survive as the literal string "no", never a boolean
	assert.Equal(t, "no", ha.Restart)

	assert.Contains(t, ha.Environment, "DOCKER_MODS=linuxserver/mods:homeassistant-hacs")
	assert.Contains(t, ha.Environment, "PUID=${PUID}")
	assert.Contains(t, ha.Environment, "TZ=${TZ}")

	require.Len(t, ha.Volumes, 2)
	assert.Equal(t, "${HA_CONF_DIR}/homeassistant:/config", ha.Volumes[0])
	assert.True(t, strings.HasSuffix(ha.Volumes[1], ":/config/custom_components/ducobox-connectivity-board"))

	assert.Equal(t, []string{"8123:8123"}, ha.Ports)
}

func TestRenderRestartQuoted(t *testing.T) {
	svc := stack.HomeAssistant(stack.Options{})
	data, err := Render([]*stack.Service{svc})
	require.NoError(t, err)
	assert.Contains(t, string(data), `restart: "no"`)
}

func TestRenderInvalidService(t *testing.T) {
	_, err := Render([]*stack.Service{{Name: "homeassistant"}})
	assert.Error(t, err, "a service without an image must not render")
}
