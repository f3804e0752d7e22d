package stack

import (
	"fmt"
	"regexp"
)

// Restart policy values understood by the compose runtime.
const (
	RestartNever         = "no"
	RestartAlways        = "always"
	RestartOnFailure     = "on-failure"
	RestartUnlessStopped = "unless-stopped"
)

var serviceNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// EnvVar is a single environment binding for a service. A pass-through
// binding takes its value from the invoking environment at container-create
// time and renders as NAME=${NAME}; a literal binding is fixed in the
// descriptor.
type EnvVar struct {
	Name        string
	Value       string
	Passthrough bool
}

// Spec returns the compose environment entry for the binding.
func (e EnvVar) Spec() string {
	if e.Passthrough {
		return fmt.Sprintf("%s=${%s}", e.Name, e.Name)
	}
	return fmt.Sprintf("%s=%s", e.Name, e.Value)
}

// Service is one service declaration: the full runtime contract handed to
// the external container runtime.
type Service struct {
	Name          string
	ContainerName string
	Image         string
	Environment   []EnvVar
	Volumes       []VolumeMount
	Ports         []PortMapping
	Restart       string
	HealthCheck   *HealthCheck
}

// Env returns the value of a named environment binding and whether it is
// declared at all.
func (s *Service) Env(name string) (EnvVar, bool) {
	for _, e := range s.Environment {
		if e.Name == name {
			return e, true
		}
	}
	return EnvVar{}, false
}

// Validate checks the declaration's structural invariants. It does not
// touch the host filesystem; see the check package for environment checks.
func (s *Service) Validate() []error {
	var errs []error
	if !serviceNamePattern.MatchString(s.Name) {
		errs = append(errs, fmt.Errorf("invalid service name %q", s.Name))
	}
	if s.Image == "" {
		errs = append(errs, fmt.Errorf("service %s: image is required", s.Name))
	}
	for i, v := range s.Volumes {
		if v.Source == "" || v.Target == "" {
			errs = append(errs, fmt.Errorf("service %s: volume %d needs both source and target", s.Name, i))
		}
	}
	for i, p := range s.Ports {
		if p.HostPort <= 0 || p.ContainerPort <= 0 {
			errs = append(errs, fmt.Errorf("service %s: port %d is not a valid mapping", s.Name, i))
		}
	}
	switch s.Restart {
	case "", RestartNever, RestartAlways, RestartOnFailure, RestartUnlessStopped:
	default:
		errs = append(errs, fmt.Errorf("service %s: unknown restart policy %q", s.Name, s.Restart))
	}
	return errs
}
