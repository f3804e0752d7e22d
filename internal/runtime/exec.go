package runtime

import (
	"context"
	"os/exec"
)

// findExecutable wraps exec.LookPath for testability.
var findExecutable = exec.LookPath

// execCommand wraps exec.CommandContext for testability.
var execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
