package stack

import (
	"strings"
	"time"
)

// HealthCheck represents the probe the runtime runs inside the container
// to decide whether the service is serving.
type HealthCheck struct {
	Test        []string // exec form, e.g. ["CMD", "curl", "-f", "http://localhost:8123"]
	Interval    time.Duration
	Timeout     time.Duration
	Retries     int
	StartPeriod time.Duration
}

// UnhealthyAfter returns the maximum time between a container becoming
// unreachable and the runtime first marking it unhealthy: the full retry
// budget at the configured interval.
func (h *HealthCheck) UnhealthyAfter() time.Duration {
	return time.Duration(h.Retries) * h.Interval
}

// URL extracts the probed URL from a curl-style test command, or "" when
// the command does not probe HTTP.
func (h *HealthCheck) URL() string {
	for _, arg := range h.Test {
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			return arg
		}
	}
	return ""
}
