package runtime

import (
	"context"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRuntime(t *testing.T, lookupErr error) *[]string {
	t.Helper()

	origFind, origExec := findExecutable, execCommand
	t.Cleanup(func() {
		findExecutable = origFind
		execCommand = origExec
	})

	var got []string
	findExecutable = func(name string) (string, error) {
		if lookupErr != nil {
			return "", lookupErr
		}
		return "/usr/bin/" + name, nil
	}
	execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		got = append([]string{name}, args...)
		return exec.CommandContext(ctx, "true")
	}
	return &got
}

func TestComposeCLIUp(t *testing.T) {
	got := stubRuntime(t, nil)

	cli := &ComposeCLI{File: "docker-compose.yml"}
	require.NoError(t, cli.Up(context.Background()))

	assert.Equal(t, []string{"/usr/bin/docker", "compose", "-f", "docker-compose.yml", "up", "-d"}, *got)
}

func TestComposeCLIDown(t *testing.T) {
	got := stubRuntime(t, nil)

	cli := &ComposeCLI{File: "docker-compose.yml"}
	require.NoError(t, cli.Down(context.Background()))

	assert.Equal(t, []string{"/usr/bin/docker", "compose", "-f", "docker-compose.yml", "down"}, *got)
}

func TestComposeCLIDockerMissing(t *testing.T) {
	stubRuntime(t, fmt.Errorf("not found"))

	cli := &ComposeCLI{File: "docker-compose.yml"}
	err := cli.Up(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docker not found in PATH")
}
