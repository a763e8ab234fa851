package options

import (
	"fmt"

	"github.com/utkarsh5026/megadvc/pkg/common/err"
)

const pkgName = "options"

// ParseError reports an options file that is not valid TOML.
type ParseError struct {
	baseError *err.Error
	Path      string
	Line      int
	Column    int
}

func newParseError(path string, line, col int, cause error) error {
	return &ParseError{
		baseError: err.New(pkgName, err.CodeSerialization, "parse", "invalid options file", cause),
		Path:      path,
		Line:      line,
		Column:    col,
	}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Path == "" {
		return e.baseError.Error()
	}
	return fmt.Sprintf("%s (%s:%d:%d)", e.baseError.Error(), e.Path, e.Line, e.Column)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.baseError
}

// ValidationError reports a required option that is missing or malformed.
type ValidationError struct {
	baseError *err.Error
	Key       string
}

func newValidationError(key, reason string) error {
	return &ValidationError{
		baseError: err.New(pkgName, err.CodeInvalidInput, "validate", key+" "+reason, nil),
		Key:       key,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.baseError
}

func newIOError(op, path string, cause error) error {
	return err.New(pkgName, err.CodeIO, op, path, cause)
}

func newEncodeError(cause error) error {
	return err.Wrap(cause, pkgName, err.CodeSerialization, "encode")
}
