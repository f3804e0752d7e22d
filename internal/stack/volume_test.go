package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVolumeMount(t *testing.T) {
	tests := []struct {
		input    string
		expected VolumeMount
	}{
		{
			"${HA_CONF_DIR}/homeassistant:/config",
			VolumeMount{Source: "${HA_CONF_DIR}/homeassistant", Target: "/config"},
		},
		{
			"./custom_components/ducobox-connectivity-board:/config/custom_components/ducobox-connectivity-board",
			VolumeMount{
				Source: "./custom_components/ducobox-connectivity-board",
				Target: "/config/custom_components/ducobox-connectivity-board",
			},
		},
		{
			"./src:/data:ro",
			VolumeMount{Source: "./src", Target: "/data", ReadOnly: true},
		},
		{
			"named-volume",
			VolumeMount{Source: "named-volume"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseVolumeMount(tt.input))
		})
	}
}

func TestVolumeMountSpec(t *testing.T) {
	vm := VolumeMount{Source: "./src", Target: "/data", ReadOnly: true}
	assert.Equal(t, "./src:/data:ro", vm.Spec())

	vm = VolumeMount{Source: "${HA_CONF_DIR}/homeassistant", Target: "/config"}
	assert.Equal(t, "${HA_CONF_DIR}/homeassistant:/config", vm.Spec())
}
