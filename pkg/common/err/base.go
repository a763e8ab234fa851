package err

import (
	"errors"
	"strings"
)

// Error is the base error type shared by every package in the module.
//
// Package-specific errors embed a *Error and add their own domain fields
// (a path, a command line, ...). The Code is what callers match on; the
// remaining fields only feed the rendered message.
type Error struct {
	// Package identifies the originating package (e.g. "snapshot", "remote").
	Package string

	// Code is a machine-readable category, one of the Code* constants below
	// or a package-specific one.
	Code string

	// Op is the operation being performed ("scan", "decode", "push", ...).
	Op string

	// Message is a short human-readable description.
	Message string

	// Err is the wrapped cause, nil for leaf errors.
	Err error
}

// Error renders the error as "[package][code]: op: message: cause".
func (e *Error) Error() string {
	var parts []string

	var prefix strings.Builder
	if e.Package != "" {
		prefix.WriteString("[" + e.Package + "]")
	}
	if e.Code != "" {
		prefix.WriteString("[" + e.Code + "]")
	}
	if prefix.Len() > 0 {
		parts = append(parts, prefix.String())
	}
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	result := strings.Join(parts, ": ")
	if e.Err == nil {
		return result
	}
	if result == "" {
		return e.Err.Error()
	}
	return result + ": " + e.Err.Error()
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *Error carrying the same non-empty code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// New creates a base error.
func New(pkg, code, op, message string, err error) *Error {
	return &Error{
		Package: pkg,
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Wrap wraps err with a package, code and operation. Returns nil if err is nil.
func Wrap(err error, pkg, code, op string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Package: pkg,
		Code:    code,
		Op:      op,
		Err:     err,
	}
}

// Error codes shared across packages.
const (
	// CodeIO marks a failed filesystem or subprocess operation.
	CodeIO = "IO"

	// CodeSerialization marks a persisted record that could not be parsed or rendered.
	CodeSerialization = "SERIALIZATION"

	// CodeRepositoryAbsent marks a directory without repository metadata.
	CodeRepositoryAbsent = "REPOSITORY_ABSENT"

	// CodeFileAbsent marks a referenced file missing from disk.
	CodeFileAbsent = "FILE_ABSENT"

	// CodeAlreadyExists marks an attempt to create something that exists.
	CodeAlreadyExists = "ALREADY_EXISTS"

	// CodeRemoteExists marks a remote that already carries a repository marker.
	CodeRemoteExists = "REMOTE_EXISTS"

	// CodeOutsideRoot marks a path that does not live under the repository root.
	CodeOutsideRoot = "OUTSIDE_ROOT"

	// CodeInvalidInput marks malformed arguments.
	CodeInvalidInput = "INVALID_INPUT"
)

// IsCode reports whether any error in err's chain is a *Error with code.
func IsCode(err error, code string) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Err
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain.
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
