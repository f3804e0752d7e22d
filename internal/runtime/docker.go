package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"

	"github.com/stuartp44/hacs-ducobox-connector/internal/stack"
)

// ContainerStatus is a read-only snapshot of what the daemon reports for
// the dev container: lifecycle state, health verdict, and bound ports.
type ContainerStatus struct {
	Name          string
	Running       bool
	State         string // created, running, exited, ...
	ExitCode      int
	Health        string // starting, healthy, unhealthy; "" without a healthcheck
	FailingStreak int
	LastProbe     string // output of the most recent health probe
	Ports         []stack.PortMapping
}

// Inspector reads container state from the Docker daemon. It never
// creates, starts, or stops anything; lifecycle belongs to the compose
// runtime.
type Inspector struct {
	cli client.APIClient
}

// NewInspector connects to the daemon using the standard environment
// (DOCKER_HOST and friends).
func NewInspector() (*Inspector, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("connecting to docker daemon: %w", err)
	}
	return &Inspector{cli: cli}, nil
}

// Close releases the daemon connection.
func (in *Inspector) Close() error {
	return in.cli.Close()
}

// Status inspects the named container.
func (in *Inspector) Status(ctx context.Context, name string) (*ContainerStatus, error) {
	inspect, err := in.cli.ContainerInspect(ctx, name)
	if err != nil {
		if client.IsErrNotFound(err) {
			return nil, fmt.Errorf("container %q does not exist — run 'hadev up' first", name)
		}
		return nil, fmt.Errorf("inspecting %s: %w", name, err)
	}

	status := &ContainerStatus{
		Name: strings.TrimPrefix(inspect.Name, "/"),
	}

	if state := inspect.State; state != nil {
		status.Running = state.Running
		status.State = state.Status
		status.ExitCode = state.ExitCode
		if health := state.Health; health != nil {
			status.Health = health.Status
			status.FailingStreak = health.FailingStreak
			if n := len(health.Log); n > 0 {
				status.LastProbe = strings.TrimSpace(health.Log[n-1].Output)
			}
		}
	}

	var portMap nat.PortMap
	if inspect.NetworkSettings != nil {
		portMap = inspect.NetworkSettings.Ports
	}
	for port, bindings := range portMap {
		for _, b := range bindings {
			pm := stack.ParsePortMapping(b.HostPort)
			pm.HostIP = b.HostIP
			pm.ContainerPort = port.Int()
			pm.Protocol = port.Proto()
			status.Ports = append(status.Ports, pm)
		}
	}

	return status, nil
}
