package ignore

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/utkarsh5026/megadvc/pkg/repository/scpath"
)

const (
	NegationPrefix  = '!'
	DirectorySuffix = '/'
	RootedPrefix    = '/'
	CommentPrefix   = '#'
	DefaultSource   = "local.ignore"
)

// PatternConfig holds the parsed configuration of an ignore pattern
type PatternConfig struct {
	IsNegation     bool
	IsDirOnly      bool
	IsRooted       bool
	CleanedPattern string
}

// NewPatternConfig parses a pattern string and extracts its configuration
func NewPatternConfig(pattern string) PatternConfig {
	var config PatternConfig

	if after, found := strings.CutPrefix(pattern, string(NegationPrefix)); found {
		config.IsNegation = true
		pattern = after
	}

	if before, found := strings.CutSuffix(pattern, string(DirectorySuffix)); found {
		config.IsDirOnly = true
		pattern = before
	}

	if after, found := strings.CutPrefix(pattern, string(RootedPrefix)); found {
		config.IsRooted = true
		pattern = after
	}

	config.CleanedPattern = strings.TrimSpace(pattern)
	return config
}

// IgnorePattern represents a single entry of the local.ignore option
//
// Pattern Rules:
// - Blank entries and entries starting with # are skipped
// - Trailing spaces are ignored unless escaped with \
// - ! prefix negates the pattern (re-includes files)
// - / suffix matches only directories
// - / prefix, or any other /, anchors the pattern at the repository root
// - ** matches zero or more directories
// - * matches anything except /
// - ? matches any single character except /
// - [...] and {a,b} match character classes and alternatives
//
// Examples:
// - *.tmp          → Ignore all .tmp files
// - cache/         → Ignore every cache directory
// - /scratch       → Ignore scratch in the root only
// - raw/**/*.xmp   → Ignore sidecar files anywhere under raw
// - !keep.tmp      → Don't ignore keep.tmp
type IgnorePattern struct {
	Pattern         string
	OriginalPattern string
	IsNegation      bool
	IsDirOnly       bool
	IsRooted        bool
	Source          string
	LineNumber      int
}

// NewIgnorePattern creates a new ignore pattern with the given parameters.
// It fails when the glob is malformed.
func NewIgnorePattern(pattern, source string, lineNumber int) (*IgnorePattern, error) {
	if source == "" {
		source = DefaultSource
	}

	config := NewPatternConfig(pattern)
	if config.CleanedPattern == "" {
		return nil, fmt.Errorf("%s:%d: empty pattern %q", source, lineNumber, pattern)
	}
	if !doublestar.ValidatePattern(config.CleanedPattern) {
		return nil, fmt.Errorf("%s:%d: invalid pattern %q", source, lineNumber, pattern)
	}

	// A slash in the middle anchors the pattern like a leading one.
	rooted := config.IsRooted || strings.Contains(config.CleanedPattern, "/")

	return &IgnorePattern{
		Pattern:         config.CleanedPattern,
		OriginalPattern: pattern,
		IsNegation:      config.IsNegation,
		IsDirOnly:       config.IsDirOnly,
		IsRooted:        rooted,
		Source:          source,
		LineNumber:      lineNumber,
	}, nil
}

// FromLine creates an IgnorePattern from a single entry.
// Returns nil without error if the entry should be skipped (empty or comment)
func FromLine(line, source string, lineNumber int) (*IgnorePattern, error) {
	line = trimTrailingWhitespace(strings.TrimLeft(line, " \t"))

	if line == "" || strings.HasPrefix(line, string(CommentPrefix)) {
		return nil, nil
	}

	return NewIgnorePattern(line, source, lineNumber)
}

// Matches checks if this pattern matches the given path
// filePath: Slash-separated path relative to the repository root
// isDirectory: Whether the path is a directory
//
// A path also matches when one of its parent directories does.
func (ip *IgnorePattern) Matches(filePath string, isDirectory bool) bool {
	rp := scpath.RelativePath(filePath).Normalize()
	if !rp.IsValid() {
		return false
	}

	for _, parent := range rp.Parents() {
		if ip.matchOne(parent, true) {
			return true
		}
	}
	return ip.matchOne(rp, isDirectory)
}

func (ip *IgnorePattern) matchOne(rp scpath.RelativePath, isDirectory bool) bool {
	if ip.IsDirOnly && !isDirectory {
		return false
	}

	if ip.IsRooted {
		return match(ip.Pattern, string(rp))
	}
	return match(ip.Pattern, rp.Base())
}

func match(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}

// trimTrailingWhitespace removes trailing whitespace unless escaped with backslash
func trimTrailingWhitespace(line string) string {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == line {
		return line
	}

	backslashCount := 0
	for i := len(trimmed) - 1; i >= 0 && trimmed[i] == '\\'; i-- {
		backslashCount++
	}

	// Odd number of backslashes means the first trailing space is escaped
	if backslashCount%2 == 1 {
		return line[:len(trimmed)+1]
	}
	return trimmed
}
