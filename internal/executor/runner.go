package executor

import (
	"context"
	"errors"
	"os/exec"
)

// CommandRunner abstracts the subprocess invocation so tests can script
// compiler behavior without a real toolchain installed.
type CommandRunner interface {
	// Run executes argv (argv[0] is the binary) with the given working
	// directory and returns the process exit code alongside its combined
	// stdout/stderr. A non-nil error means the process could not be run at
	// all; a nonzero exit code is not an error.
	Run(ctx context.Context, dir string, argv []string) (int, []byte, error)
}

// execRunner is the real CommandRunner backed by os/exec.
type execRunner struct{}

// NewExecRunner returns the production CommandRunner.
func NewExecRunner() CommandRunner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, dir string, argv []string) (int, []byte, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err == nil {
		return 0, output, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), output, nil
	}
	return -1, output, err
}
