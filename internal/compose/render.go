package compose

import (
	"fmt"
	"time"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/stuartp44/hacs-ducobox-connector/internal/stack"
)

const header = "# Generated by hadev. Edit hadev.yml and re-run 'hadev render'.\n"

type document struct {
	Services map[string]serviceYAML `yaml:"services"`
}

type serviceYAML struct {
	Image         string      `yaml:"image"`
	ContainerName string      `yaml:"container_name,omitempty"`
	Environment   []string    `yaml:"environment,omitempty"`
	Volumes       []string    `yaml:"volumes,omitempty"`
	Ports         []string    `yaml:"ports,omitempty"`
	Restart       quoted      `yaml:"restart,omitempty"`
	Healthcheck   *healthYAML `yaml:"healthcheck,omitempty"`
}

type healthYAML struct {
	Test        []string `yaml:"test"`
	Interval    string   `yaml:"interval,omitempty"`
	Timeout     string   `yaml:"timeout,omitempty"`
	Retries     int      `yaml:"retries,omitempty"`
	StartPeriod string   `yaml:"start_period,omitempty"`
}

// quoted forces double-quoted scalar style. "no" and friends would
// otherwise read back as booleans under YAML 1.1 rules, and the restart
// policy must survive as the literal string "no".
type quoted string

func (q quoted) MarshalYAML() (interface{}, error) {
	return &yamlv3.Node{Kind: yamlv3.ScalarNode, Style: yamlv3.DoubleQuotedStyle, Value: string(q)}, nil
}

// Render marshals the service declarations to a docker-compose document.
// Interpolation placeholders like ${HA_CONF_DIR} are emitted verbatim; the
// external runtime owns substitution.
func Render(services []*stack.Service) ([]byte, error) {
	doc := document{Services: make(map[string]serviceYAML, len(services))}

	for _, svc := range services {
		if errs := svc.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("service %s: %w", svc.Name, errs[0])
		}

		out := serviceYAML{
			Image:         svc.Image,
			ContainerName: svc.ContainerName,
			Restart:       quoted(svc.Restart),
		}
		for _, e := range svc.Environment {
			out.Environment = append(out.Environment, e.Spec())
		}
		for _, v := range svc.Volumes {
			out.Volumes = append(out.Volumes, v.Spec())
		}
		for _, p := range svc.Ports {
			out.Ports = append(out.Ports, p.Spec())
		}
		if hc := svc.HealthCheck; hc != nil {
			out.Healthcheck = &healthYAML{
				Test:        hc.Test,
				Interval:    formatDuration(hc.Interval),
				Timeout:     formatDuration(hc.Timeout),
				Retries:     hc.Retries,
				StartPeriod: formatDuration(hc.StartPeriod),
			}
		}
		doc.Services[svc.Name] = out
	}

	data, err := yamlv3.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal compose document: %w", err)
	}
	return append([]byte(header), data...), nil
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}
