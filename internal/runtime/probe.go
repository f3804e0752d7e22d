package runtime

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/stuartp44/hacs-ducobox-connector/internal/stack"
)

// Probe mirrors the container's healthcheck from the host side: the same
// URL, interval, timeout and retry budget, so 'hadev status --wait' gives
// up at the same moment the runtime would first mark the container
// unhealthy.
type Probe struct {
	URL      string
	Interval time.Duration
	Timeout  time.Duration
	Retries  int
	Client   *http.Client
}

// ProbeFor builds a host-side probe from a service healthcheck.
func ProbeFor(hc *stack.HealthCheck) (*Probe, error) {
	if hc == nil {
		return nil, fmt.Errorf("service has no healthcheck")
	}
	url := hc.URL()
	if url == "" {
		return nil, fmt.Errorf("healthcheck does not probe an HTTP URL: %v", hc.Test)
	}
	p := &Probe{
		URL:      url,
		Interval: hc.Interval,
		Timeout:  hc.Timeout,
		Retries:  hc.Retries,
	}
	// A healthcheck can legally omit these; fall back to the runtime's
	// own defaults so Wait always makes progress.
	if p.Retries <= 0 {
		p.Retries = 3
	}
	if p.Interval <= 0 {
		p.Interval = 30 * time.Second
	}
	if p.Timeout <= 0 {
		p.Timeout = 30 * time.Second
	}
	return p, nil
}

// ProbeForService mirrors the healthcheck but targets the service's
// published host port, which can differ from the container-side port the
// in-container probe uses.
func ProbeForService(svc *stack.Service) (*Probe, error) {
	p, err := ProbeFor(svc.HealthCheck)
	if err != nil {
		return nil, err
	}
	if len(svc.Ports) > 0 {
		p.URL = fmt.Sprintf("http://localhost:%d", svc.Ports[0].HostPort)
	}
	return p, nil
}

// Once performs a single probe with curl -f semantics: any response below
// 400 passes, anything else (or no response within the timeout) fails.
func (p *Probe) Once(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return err
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s returned %s", p.URL, resp.Status)
	}
	return nil
}

// Wait probes until a pass or until the retry budget is spent, pausing
// the interval between attempts.
func (p *Probe) Wait(ctx context.Context) error {
	retries := p.Retries
	if retries < 1 {
		retries = 1
	}

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(p.Interval):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if lastErr = p.Once(ctx); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("not serving after %d attempts over %s: %w",
		retries, time.Duration(retries)*p.Interval, lastErr)
}
