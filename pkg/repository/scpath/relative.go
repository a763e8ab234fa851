package scpath

import (
	"path/filepath"
	"strings"
)

// RelativePath represents a normalized path below a repository root
// (forward slashes, no leading "./")
// Example: "raw/2024/img_001.cr2"
type RelativePath string

// String returns the path as a string
func (rp RelativePath) String() string {
	return string(rp)
}

// IsValid checks if this is a valid relative path
func (rp RelativePath) IsValid() bool {
	s := string(rp)
	if len(s) == 0 {
		return false
	}

	if filepath.IsAbs(s) || strings.HasPrefix(s, "/") {
		return false
	}

	for _, c := range strings.Split(filepath.ToSlash(s), "/") {
		if c == ".." {
			return false
		}
	}
	return true
}

// Normalize normalizes the path (converts to forward slashes, cleans)
func (rp RelativePath) Normalize() RelativePath {
	normalized := filepath.ToSlash(filepath.Clean(string(rp)))
	normalized = strings.TrimPrefix(normalized, "./")
	return RelativePath(normalized)
}

// Components returns the path components
func (rp RelativePath) Components() []string {
	normalized := rp.Normalize()
	if normalized == "" || normalized == "." {
		return []string{}
	}
	return strings.Split(string(normalized), "/")
}

// Base returns the last element of the path
func (rp RelativePath) Base() string {
	components := rp.Components()
	if len(components) == 0 {
		return ""
	}
	return components[len(components)-1]
}

// Parents returns every ancestor directory, outermost first.
// "a/b/c" -> ["a", "a/b"]
func (rp RelativePath) Parents() []RelativePath {
	components := rp.Components()
	if len(components) <= 1 {
		return nil
	}

	parents := make([]RelativePath, 0, len(components)-1)
	for i := 1; i < len(components); i++ {
		parents = append(parents, RelativePath(strings.Join(components[:i], "/")))
	}
	return parents
}
