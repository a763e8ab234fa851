package scpath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RepositoryPath represents the canonical absolute path of a repository root
// Example: "/data/photos"
type RepositoryPath string

// RepositoryPathError reports a repository root that could not be resolved.
type RepositoryPathError struct {
	Path string
	Err  error
}

func (e *RepositoryPathError) Error() string {
	return fmt.Sprintf("resolve repository path %s: %v", e.Path, e.Err)
}

func (e *RepositoryPathError) Unwrap() error {
	return e.Err
}

// NewRepositoryPath makes path absolute and resolves symlinks. The directory
// must exist.
func NewRepositoryPath(path string) (RepositoryPath, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &RepositoryPathError{Path: path, Err: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &RepositoryPathError{Path: path, Err: err}
	}
	return RepositoryPath(resolved), nil
}

// String returns the path as a string
func (rp RepositoryPath) String() string {
	return string(rp)
}

// IsValid checks if this is a valid absolute path
func (rp RepositoryPath) IsValid() bool {
	return filepath.IsAbs(string(rp))
}

// Name returns the last element of the root, the default remote directory.
func (rp RepositoryPath) Name() string {
	return filepath.Base(string(rp))
}

// Join joins path elements to the repository path
func (rp RepositoryPath) Join(elem ...string) string {
	parts := append([]string{string(rp)}, elem...)
	return filepath.Join(parts...)
}

// OptionsPath returns the path of the options file
func (rp RepositoryPath) OptionsPath() string {
	return rp.Join(OptionsFile)
}

// LockPath returns the path of the lock file
func (rp RepositoryPath) LockPath() string {
	return rp.Join(LockFile)
}

// MetadataPaths returns the paths of every metadata file
func (rp RepositoryPath) MetadataPaths() []string {
	paths := make([]string, len(MetadataFiles))
	for i, name := range MetadataFiles {
		paths[i] = rp.Join(name)
	}
	return paths
}

// Resolve turns a user supplied path into an absolute one. Relative paths are
// taken relative to the working directory, like a shell would.
func (rp RepositoryPath) Resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &RepositoryPathError{Path: path, Err: err}
	}
	return abs, nil
}

// Contains reports whether abs lies strictly below the repository root.
func (rp RepositoryPath) Contains(abs string) bool {
	_, err := rp.Rel(abs)
	return err == nil
}

// Rel returns abs relative to the root. It fails when abs is the root itself
// or lies outside it.
func (rp RepositoryPath) Rel(abs string) (RelativePath, error) {
	rel, err := filepath.Rel(string(rp), abs)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("path %s is not inside %s", abs, rp)
	}
	return RelativePath(rel).Normalize(), nil
}
