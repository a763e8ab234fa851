package snapshot

import (
	"fmt"

	"github.com/utkarsh5026/megadvc/pkg/common/err"
)

const pkgName = "snapshot"

// ScanError reports a filesystem failure while building a snapshot.
// A scan that fails produces no snapshot at all.
type ScanError struct {
	baseError *err.Error
	Root      string
	Path      string
}

func newScanError(root, path string, cause error) error {
	return &ScanError{
		baseError: err.New(pkgName, err.CodeIO, "scan", fmt.Sprintf("scan %s failed at %s", root, path), cause),
		Root:      root,
		Path:      path,
	}
}

// Error implements the error interface
func (e *ScanError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *ScanError) Unwrap() error {
	return e.baseError
}

// SerializationError reports a persisted snapshot that could not be decoded,
// or an in-memory snapshot that could not be encoded.
type SerializationError struct {
	baseError *err.Error
}

func newSerializationError(op, message string, cause error) error {
	return &SerializationError{
		baseError: err.New(pkgName, err.CodeSerialization, op, message, cause),
	}
}

// Error implements the error interface
func (e *SerializationError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *SerializationError) Unwrap() error {
	return e.baseError
}
