package resolve

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single external lookup command. A hung secret
// store should fail the key, not wedge the host shell.
const DefaultTimeout = 5 * time.Second

// CommandRunner executes an external lookup command and returns its
// standard output. Implementations are side-effecting and may be slow;
// callers must not treat Run as pure.
type CommandRunner interface {
	Run(command string) (string, error)
}

// ExecRunner runs commands as a structured argv, never through a shell, so
// .env content cannot smuggle shell syntax into the invocation.
type ExecRunner struct {
	Timeout time.Duration // Zero means DefaultTimeout
}

// Run executes the command, captures stdout and trims exactly one trailing
// newline. Non-zero exit, empty output and timeout all map to
// ErrCommandFailed.
func (e ExecRunner) Run(command string) (string, error) {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return "", fmt.Errorf("%w: empty command", ErrCommandFailed)
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: %s timed out after %s", ErrCommandFailed, argv[0], timeout)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrCommandFailed, argv[0], err)
	}

	out := strings.TrimSuffix(stdout.String(), "\n")
	if out == "" {
		return "", fmt.Errorf("%w: %s produced no output", ErrCommandFailed, argv[0])
	}
	return out, nil
}
