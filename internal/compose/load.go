package compose

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/compose-spec/compose-go/v2/cli"
	composetypes "github.com/compose-spec/compose-go/v2/types"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/stuartp44/hacs-ducobox-connector/internal/stack"
)

// Load parses a compose file into service declarations. Interpolation is
// left off so ${HA_CONF_DIR} placeholders survive verbatim; the external
// runtime owns substitution.
func Load(path string) ([]*stack.Service, error) {
	ctx := context.Background()

	opts, err := cli.NewProjectOptions(
		[]string{path},
		cli.WithName("hadev"),
		cli.WithDotEnv,
		cli.WithInterpolation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("project options: %w", err)
	}

	project, err := cli.ProjectFromOptions(ctx, opts)
	if err != nil {
		// Fallback: try manual YAML parse
		return loadFallback(path)
	}

	return fromProject(project), nil
}

func fromProject(project *composetypes.Project) []*stack.Service {
	var services []*stack.Service

	for _, svc := range project.Services {
		service := &stack.Service{
			Name:          svc.Name,
			ContainerName: svc.ContainerName,
			Image:         svc.Image,
			Restart:       svc.Restart,
		}

		names := make([]string, 0, len(svc.Environment))
		for name := range svc.Environment {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			service.Environment = append(service.Environment, envVar(name, svc.Environment[name]))
		}

		for _, p := range svc.Ports {
			hostPort, _ := strconv.Atoi(p.Published)
			service.Ports = append(service.Ports, stack.PortMapping{
				HostIP:        p.HostIP,
				HostPort:      hostPort,
				ContainerPort: int(p.Target),
				Protocol:      p.Protocol,
			})
		}

		for _, v := range svc.Volumes {
			service.Volumes = append(service.Volumes, stack.VolumeMount{
				Source:   v.Source,
				Target:   v.Target,
				ReadOnly: v.ReadOnly,
			})
		}

		if hc := svc.HealthCheck; hc != nil {
			check := &stack.HealthCheck{Test: hc.Test}
			if hc.Interval != nil {
				check.Interval = time.Duration(*hc.Interval)
			}
			if hc.Timeout != nil {
				check.Timeout = time.Duration(*hc.Timeout)
			}
			if hc.Retries != nil {
				check.Retries = int(*hc.Retries)
			}
			if hc.StartPeriod != nil {
				check.StartPeriod = time.Duration(*hc.StartPeriod)
			}
			service.HealthCheck = check
		}

		services = append(services, service)
	}

	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	return services
}

func envVar(name string, value *string) stack.EnvVar {
	if value == nil || *value == "${"+name+"}" || *value == "$"+name {
		return stack.EnvVar{Name: name, Passthrough: true}
	}
	return stack.EnvVar{Name: name, Value: *value}
}

// loadFallback uses raw YAML parsing when compose-go rejects the file.
func loadFallback(path string) ([]*stack.Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml parse: %w", err)
	}

	servicesMap, ok := raw["services"].(map[string]interface{})
	if !ok {
		return nil, nil
	}

	var services []*stack.Service
	for name, svcData := range servicesMap {
		svcMap, ok := svcData.(map[string]interface{})
		if !ok {
			continue
		}

		svc := &stack.Service{
			Name:          name,
			ContainerName: toString(svcMap["container_name"]),
			Image:         toString(svcMap["image"]),
			Restart:       toString(svcMap["restart"]),
		}

		if envRaw, ok := svcMap["environment"]; ok {
			svc.Environment = parseEnv(envRaw)
		}
		if portsRaw, ok := svcMap["ports"]; ok {
			svc.Ports = parsePorts(portsRaw)
		}
		if volsRaw, ok := svcMap["volumes"]; ok {
			svc.Volumes = parseVolumes(volsRaw)
		}
		if hcRaw, ok := svcMap["healthcheck"].(map[string]interface{}); ok {
			svc.HealthCheck = parseHealth(hcRaw)
		}

		services = append(services, svc)
	}

	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	return services, nil
}

func toString(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func parseEnv(raw interface{}) []stack.EnvVar {
	var env []stack.EnvVar
	switch v := raw.(type) {
	case []interface{}:
		for _, item := range v {
			s := toString(item)
			name, value, found := strings.Cut(s, "=")
			if !found {
				env = append(env, stack.EnvVar{Name: s, Passthrough: true})
				continue
			}
			env = append(env, envVar(name, &value))
		}
	case map[string]interface{}:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			value := toString(v[name])
			env = append(env, envVar(name, &value))
		}
	}
	return env
}

func parsePorts(raw interface{}) []stack.PortMapping {
	var ports []stack.PortMapping
	if list, ok := raw.([]interface{}); ok {
		for _, p := range list {
			pm := stack.ParsePortMapping(toString(p))
			if pm.HostPort > 0 {
				ports = append(ports, pm)
			}
		}
	}
	return ports
}

func parseVolumes(raw interface{}) []stack.VolumeMount {
	var vols []stack.VolumeMount
	if list, ok := raw.([]interface{}); ok {
		for _, v := range list {
			vols = append(vols, stack.ParseVolumeMount(toString(v)))
		}
	}
	return vols
}

func parseHealth(raw map[string]interface{}) *stack.HealthCheck {
	hc := &stack.HealthCheck{}

	switch test := raw["test"].(type) {
	case []interface{}:
		for _, t := range test {
			hc.Test = append(hc.Test, toString(t))
		}
	case string:
		hc.Test = []string{"CMD-SHELL", test}
	}

	hc.Interval = parseDuration(raw["interval"])
	hc.Timeout = parseDuration(raw["timeout"])
	hc.StartPeriod = parseDuration(raw["start_period"])
	if retries, ok := raw["retries"].(int); ok {
		hc.Retries = retries
	}

	return hc
}

func parseDuration(v interface{}) time.Duration {
	if v == nil {
		return 0
	}
	d, err := time.ParseDuration(toString(v))
	if err != nil {
		return 0
	}
	return d
}
