package compose

import (
	"fmt"
	"path"
	"time"

	"github.com/stuartp44/hacs-ducobox-connector/internal/stack"
)

// Violation reports a property of the dev-stack declaration that no longer
// holds, with a suggested fix.
type Violation struct {
	Property   string
	Message    string
	Suggestion string
}

// Verify checks a loaded declaration against the contract the dev stack
// depends on: one homeassistant service with HACS installed via
// DOCKER_MODS, the config and integration mounts in place, the web UI on
// 8123, no auto-restart, and the 300s health budget.
func Verify(services []*stack.Service) []Violation {
	var violations []Violation

	svc := findService(services, stack.ServiceName)
	if len(services) != 1 || svc == nil {
		violations = append(violations, Violation{
			Property:   "services",
			Message:    fmt.Sprintf("expected exactly one service named %q, found %d services", stack.ServiceName, len(services)),
			Suggestion: "re-run 'hadev render' to regenerate the compose file",
		})
		if svc == nil {
			return violations
		}
	}

	if mods, ok := svc.Env("DOCKER_MODS"); !ok || mods.Value != stack.HACSMod {
		violations = append(violations, Violation{
			Property:   "environment.DOCKER_MODS",
			Message:    fmt.Sprintf("DOCKER_MODS must be the literal %q", stack.HACSMod),
			Suggestion: "HACS is installed through this mod; without it the integration store is missing",
		})
	}

	integrationTarget := path.Join(stack.ComponentsDir, "ducobox-connectivity-board")
	if len(svc.Volumes) != 2 {
		violations = append(violations, Violation{
			Property:   "volumes",
			Message:    fmt.Sprintf("expected exactly 2 volume mounts, found %d", len(svc.Volumes)),
			Suggestion: "the stack needs the /config mount and the integration source mount, nothing else",
		})
	} else if svc.Volumes[1].Target != integrationTarget {
		violations = append(violations, Violation{
			Property:   "volumes[1].target",
			Message:    fmt.Sprintf("integration must mount at %s, found %s", integrationTarget, svc.Volumes[1].Target),
			Suggestion: "Home Assistant only discovers custom integrations under /config/custom_components",
		})
	}

	if len(svc.Ports) != 1 || svc.Ports[0].HostPort != stack.DefaultPort || svc.Ports[0].ContainerPort != stack.DefaultPort {
		violations = append(violations, Violation{
			Property:   "ports",
			Message:    fmt.Sprintf("expected exactly %d:%d, found %v", stack.DefaultPort, stack.DefaultPort, portSpecs(svc.Ports)),
			Suggestion: "the web UI and the healthcheck both assume 8123",
		})
	}

	if svc.Restart != stack.RestartNever {
		violations = append(violations, Violation{
			Property:   "restart",
			Message:    fmt.Sprintf("restart policy must be the string %q, found %q", stack.RestartNever, svc.Restart),
			Suggestion: "a crashing dev container should stay down for inspection, not restart",
		})
	}

	if hc := svc.HealthCheck; hc == nil {
		violations = append(violations, Violation{
			Property:   "healthcheck",
			Message:    "healthcheck is missing",
			Suggestion: "re-run 'hadev render' to restore the curl probe",
		})
	} else {
		if hc.URL() == "" {
			violations = append(violations, Violation{
				Property:   "healthcheck.test",
				Message:    fmt.Sprintf("healthcheck does not probe an HTTP URL: %v", hc.Test),
				Suggestion: "the probe must be 'curl -f http://localhost:8123'",
			})
		}
		if budget := hc.UnhealthyAfter(); budget != 300*time.Second {
			violations = append(violations, Violation{
				Property:   "healthcheck.budget",
				Message:    fmt.Sprintf("unhealthy budget is %s, expected 300s (30 retries x 10s)", budget),
				Suggestion: "Home Assistant with DOCKER_MODS can take minutes on first boot; keep the full budget",
			})
		}
	}

	return violations
}

func findService(services []*stack.Service, name string) *stack.Service {
	for _, svc := range services {
		if svc.Name == name {
			return svc
		}
	}
	return nil
}

func portSpecs(ports []stack.PortMapping) []string {
	specs := make([]string, len(ports))
	for i, p := range ports {
		specs[i] = p.Spec()
	}
	return specs
}
