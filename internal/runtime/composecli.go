package runtime

import (
	"context"
	"fmt"
	"io"
)

// ComposeCLI drives the external container runtime through the docker
// compose plugin. The runtime stays the sole lifecycle actor: hadev only
// hands it the descriptor and relays its output.
type ComposeCLI struct {
	File   string // compose file path
	Stdout io.Writer
	Stderr io.Writer
}

// Up creates and starts the stack in detached mode.
func (c *ComposeCLI) Up(ctx context.Context) error {
	return c.run(ctx, "up", "-d")
}

// Down stops and removes the stack's containers.
func (c *ComposeCLI) Down(ctx context.Context) error {
	return c.run(ctx, "down")
}

func (c *ComposeCLI) run(ctx context.Context, args ...string) error {
	bin, err := findExecutable("docker")
	if err != nil {
		return fmt.Errorf("docker not found in PATH — install it from https://docs.docker.com/engine/install/")
	}

	full := append([]string{"compose", "-f", c.File}, args...)
	cmd := execCommand(ctx, bin, full...)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker compose %s failed: %w", args[0], err)
	}
	return nil
}
