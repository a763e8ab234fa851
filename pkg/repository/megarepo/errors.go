package megarepo

import (
	"fmt"

	"github.com/utkarsh5026/megadvc/pkg/common/err"
)

const pkgName = "megarepo"

// AbsentError reports a directory that is not a repository: one of the
// metadata files is missing.
type AbsentError struct {
	baseError *err.Error
	Root      string
	Missing   string
}

func newAbsentError(root, missing string) error {
	return &AbsentError{
		baseError: err.New(pkgName, err.CodeRepositoryAbsent, "open",
			fmt.Sprintf("not a repository: %s is missing", missing), nil),
		Root:    root,
		Missing: missing,
	}
}

// Error implements the error interface
func (e *AbsentError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *AbsentError) Unwrap() error {
	return e.baseError
}

// ExistsError reports an init over a directory that already holds
// repository metadata.
type ExistsError struct {
	baseError *err.Error
	Root      string
}

func newExistsError(root string) error {
	return &ExistsError{
		baseError: err.New(pkgName, err.CodeAlreadyExists, "init",
			fmt.Sprintf("repository already exists in %s", root), nil),
		Root: root,
	}
}

// Error implements the error interface
func (e *ExistsError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *ExistsError) Unwrap() error {
	return e.baseError
}

// RemoteExistsError reports a remote directory that already holds a lock file.
// The local metadata has been written when this is returned.
type RemoteExistsError struct {
	baseError *err.Error
	Remote    string
}

func newRemoteExistsError(remote string) error {
	return &RemoteExistsError{
		baseError: err.New(pkgName, err.CodeRemoteExists, "init",
			fmt.Sprintf("remote %s already holds a repository", remote), nil),
		Remote: remote,
	}
}

// Error implements the error interface
func (e *RemoteExistsError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *RemoteExistsError) Unwrap() error {
	return e.baseError
}

// FileAbsentError reports a path given to add or remove that does not exist.
type FileAbsentError struct {
	baseError *err.Error
	Path      string
}

func newFileAbsentError(op, path string, cause error) error {
	return &FileAbsentError{
		baseError: err.New(pkgName, err.CodeFileAbsent, op, fmt.Sprintf("%s does not exist", path), cause),
		Path:      path,
	}
}

// Error implements the error interface
func (e *FileAbsentError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *FileAbsentError) Unwrap() error {
	return e.baseError
}

// OutsideRootError reports a path given to add or remove that is not inside
// the repository.
type OutsideRootError struct {
	baseError *err.Error
	Path      string
	Root      string
}

func newOutsideRootError(op, path, root string) error {
	return &OutsideRootError{
		baseError: err.New(pkgName, err.CodeOutsideRoot, op, fmt.Sprintf("%s is outside repository %s", path, root), nil),
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

func newIOError(op, path string, cause error) error {
	return err.New(pkgName, err.CodeIO, op, path, cause)
}

func newInvalidInputError(op, message string) error {
	return err.New(pkgName, err.CodeInvalidInput, op, message, nil)
}
