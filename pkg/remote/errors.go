package remote

import (
	"fmt"
	"strings"

	"github.com/utkarsh5026/megadvc/pkg/common/err"
)

const pkgName = "remote"

// CommandError reports a remote command that could not be run or exited
// with a non-zero status.
type CommandError struct {
	baseError *err.Error
	Args      []string
	ExitCode  int
	Stderr    string
}

func newCommandError(op string, args []string, res *Result, cause error) error {
	ce := &CommandError{Args: args}
	if res != nil {
		ce.ExitCode = res.ExitCode
		ce.Stderr = strings.TrimSpace(res.Stderr)
	}

	msg := strings.Join(args, " ")
	if cause == nil {
		msg = fmt.Sprintf("%s exited with status %d", msg, ce.ExitCode)
		if ce.Stderr != "" {
			msg += ": " + ce.Stderr
		}
	}

	ce.baseError = err.New(pkgName, err.CodeIO, op, msg, cause)
	return ce
}

// Error implements the error interface
func (e *CommandError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *CommandError) Unwrap() error {
	return e.baseError
}

// OutsideRootError reports a local file that does not live under the
// repository root and so has no remote counterpart.
type OutsideRootError struct {
	baseError *err.Error
	Path      string
	Root      string
}

func newOutsideRootError(path, root string) error {
	return &OutsideRootError{
		baseError: err.New(pkgName, err.CodeOutsideRoot, "resolve", fmt.Sprintf("%s is not under %s", path, root), nil),
		Path:      path,
		Root:      root,
	}
}

// Error implements the error interface
func (e *OutsideRootError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *OutsideRootError) Unwrap() error {
	return e.baseError
}

// newResolveError wraps a failed Abs or EvalSymlinks; the cause names the path.
func newResolveError(cause error) error {
	return err.Wrap(cause, pkgName, err.CodeIO, "resolve")
}
