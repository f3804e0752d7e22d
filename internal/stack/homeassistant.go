package stack

import (
	"fmt"
	"path"
	"time"
)

// Fixed points of the Home Assistant dev-stack declaration. The service and
// container names are load-bearing: hadev status and the compose runtime
// both address the container by this name.
const (
	ServiceName   = "homeassistant"
	DefaultImage  = "lscr.io/linuxserver/homeassistant:latest"
	DefaultPort   = 8123
	HACSMod       = "linuxserver/mods:homeassistant-hacs"
	ConfDirVar    = "HA_CONF_DIR"
	ComponentsDir = "/config/custom_components"
)

// Options tune the Home Assistant declaration. Zero values fall back to
// the canonical dev stack.
type Options struct {
	Image             string
	Port              int
	IntegrationName   string // e.g. "ducobox-connectivity-board"
	IntegrationSource string // host path of the integration source tree
	HealthInterval    time.Duration
	HealthTimeout     time.Duration
	HealthRetries     int
}

// HomeAssistant builds the Home Assistant service declaration: the
// linuxserver image with HACS installed via DOCKER_MODS, the persistent
// config dir mounted from ${HA_CONF_DIR}, and the custom integration
// source mounted into the container's custom_components directory.
//
// PUID, PGID and TZ pass through from the invoking environment so the
// container runs as the developer's own uid/gid in their timezone. The
// restart policy is "no" on purpose: a crashing or unhealthy dev container
// should stay down and be looked at, not flap.
func HomeAssistant(opts Options) *Service {
	image := opts.Image
	if image == "" {
		image = DefaultImage
	}
	port := opts.Port
	if port == 0 {
		port = DefaultPort
	}
	integration := opts.IntegrationName
	if integration == "" {
		integration = "ducobox-connectivity-board"
	}
	source := opts.IntegrationSource
	if source == "" {
		source = "./custom_components/" + integration
	}
	interval := opts.HealthInterval
	if interval == 0 {
		interval = 10 * time.Second
	}
	timeout := opts.HealthTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	retries := opts.HealthRetries
	if retries == 0 {
		retries = 30
	}

	return &Service{
		Name:          ServiceName,
		ContainerName: ServiceName,
		Image:         image,
		Environment: []EnvVar{
			{Name: "PUID", Passthrough: true},
			{Name: "PGID", Passthrough: true},
			{Name: "TZ", Passthrough: true},
			{Name: "DOCKER_MODS", Value: HACSMod},
		},
		Volumes: []VolumeMount{
			{Source: fmt.Sprintf("${%s}/homeassistant", ConfDirVar), Target: "/config"},
			{Source: source, Target: path.Join(ComponentsDir, integration)},
		},
		Ports: []PortMapping{
			{HostPort: port, ContainerPort: DefaultPort, Protocol: "tcp"},
		},
		Restart: RestartNever,
		HealthCheck: &HealthCheck{
			Test:     []string{"CMD", "curl", "-f", fmt.Sprintf("http://localhost:%d", DefaultPort)},
			Interval: interval,
			Timeout:  timeout,
			Retries:  retries,
		},
	}
}
