package remote

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result holds the captured output of one command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes an external program.
//
// Run returns an error only when the program could not be started or was
// interrupted; a program that ran and exited non-zero is reported through
// Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, program string, args ...string) (*Result, error)
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct {
	// Dir is the working directory of every command. Empty means the
	// current directory.
	Dir string
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, program string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return result, nil
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	default:
		result.ExitCode = -1
		return result, err
	}
}
