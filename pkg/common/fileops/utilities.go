package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Exists reports whether anything exists at path.
// Only filesystem errors other than non-existence are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("check existence: %w", err)
}

// AllExist reports whether every path exists, stopping at the first missing one.
// The missing path is returned alongside false.
func AllExist(paths ...string) (bool, string, error) {
	for _, p := range paths {
		ok, err := Exists(p)
		if err != nil {
			return false, p, err
		}
		if !ok {
			return false, p, nil
		}
	}
	return true, "", nil
}

// AnyExist reports whether at least one of paths exists.
func AnyExist(paths ...string) (bool, error) {
	for _, p := range paths {
		ok, err := Exists(p)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// IsDirectory checks if the path exists and is a directory.
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat path: %w", err)
	}
	return info.IsDir(), nil
}
